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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/assassin/internal/assassin/game"
)

// assassin play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [roster-file]",
		Short: "Play a game of assassin on the console",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`play reads the players from the roster file, one name per
			line, and forms a kill ring in that order. Lines starting
			with # are ignored.

			Every turn the current kill ring and graveyard are shown and
			the name of the next victim is read from standard input.
			Names are not case sensitive. The game ends when only one
			player is left alive.

			If no roster file is given, the one in the configuration
			file is used.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, names, _, err := newTracker(cmd, args)
			if err != nil {
				return err
			}

			session := game.Session{
				Tracker: tracker,
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
				Names:   names,
				Color:   useColor(cmd),
			}

			if !isTerminal(session.In) {
				logrus.Debug("Reading victims from a non-interactive input")
			}

			return session.Run()
		},
	}

	addRosterFlags(cmd)
	cmd.Flags().Bool("no-color", false, "Disable coloured output")

	return cmd
}
