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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"laptudirm.com/x/assassin/pkg/config"
)

// assassin init
func Init() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [roster-file]",
		Short: "Write a configuration file with the default settings",
		Args:  cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")

			_, err := os.Stat(path)
			switch {
			case err == nil && !force:
				return fmt.Errorf("init: %s already exists, use --force to overwrite it", path)
			case err != nil && !errors.Is(err, fs.ErrNotExist):
				return err
			}

			conf := config.Default()
			if len(args) > 0 {
				roster, err := filepath.Abs(args[0])
				if err != nil {
					return err
				}

				conf.Roster = roster
			}

			if err := config.Save(path, conf); err != nil {
				return err
			}

			status(cmd, "Wrote configuration:", path)
			return nil
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")
	return cmd
}
