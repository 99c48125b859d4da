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
	"github.com/spf13/cobra"

	"laptudirm.com/x/assassin/internal/assassin/game"
)

// assassin ring
func Ring() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ring [roster-file]",
		Short: "Show the kill ring formed from a roster",
		Args:  cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, _, _, err := newTracker(cmd, args)
			if err != nil {
				return err
			}

			game.PrintRing(cmd.OutOrStdout(), tracker)
			return nil
		},
	}

	addRosterFlags(cmd)
	return cmd
}
