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

	"github.com/spf13/cobra"

	"laptudirm.com/x/assassin/internal/assassin/game"
)

// assassin simulate
func Simulate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [roster-file]",
		Short: "Simulate a game of assassin with random kills",
		Args:  cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, _, seed, err := newTracker(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Simulating with seed %d\n\n", seed)
			return game.Simulate(tracker, seed, out)
		},
	}

	addRosterFlags(cmd)
	return cmd
}
