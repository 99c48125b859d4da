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
	"context"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/assassin/pkg/config"
)

// Version is reported by assassin --version.
var Version = "v0.1.0"

type settingsKey struct{}

// settings returns the configuration loaded by the root command before cmd
// was run, or the defaults if there is none.
func settings(cmd *cobra.Command) config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if conf, ok := ctx.Value(settingsKey{}).(config.Config); ok {
			return conf
		}
	}

	return config.Default()
}

// Root returns the assassin command with all of its subcommands registered.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "assassin",
		Short: "Keep track of a game of assassin",
		Long: heredoc.Doc(`assassin keeps track of a game of assassin. Every player
			stalks the next player in the kill ring, and the last player
			stalks the first. When a player is killed they move to the
			graveyard, and the player who was stalking them is recorded
			as their killer. The last player alive wins.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}

			path, _ := cmd.Flags().GetString("config")
			conf, err := config.Load(path)
			if err != nil {
				return err
			}

			logrus.WithField("config", path).Debug("Loaded configuration")

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, settingsKey{}, conf))
			return nil
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Assassin's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", config.Path, "Path to the configuration file")

	root.SetVersionTemplate(Version + "\n")
	root.Version = Version

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Simulate())
	root.AddCommand(Ring())
	root.AddCommand(Init())

	return root
}
