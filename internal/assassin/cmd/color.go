// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// useColor reports whether cmd's output should be coloured: colour must be
// enabled in the configuration, not disabled by --no-color, and the output
// must be a terminal.
func useColor(cmd *cobra.Command) bool {
	if !settings(cmd).Color {
		return false
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return false
	}

	return isTerminal(cmd.OutOrStdout())
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	return ok && isatty.IsTerminal(file.Fd())
}

// status writes a status line to cmd's output with a coloured label.
func status(cmd *cobra.Command, label, text string) {
	c := color.New(color.FgGreen)
	if useColor(cmd) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	fmt.Fprintln(cmd.OutOrStdout(), c.Sprint(label), text)
}
