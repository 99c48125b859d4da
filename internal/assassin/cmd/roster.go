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
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/assassin/pkg/killring"
	"laptudirm.com/x/assassin/pkg/roster"
)

// ErrNoRoster is returned when a command has no roster file to read.
var ErrNoRoster = errors.New("no roster file given and none configured")

// addRosterFlags registers the flags understood by newTracker.
func addRosterFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("shuffle", "s", false, "Shuffle the roster before forming the kill ring")
	cmd.Flags().Int64("seed", 0, "Seed for shuffling and simulation (0 picks one)")
}

// newTracker loads the roster named by args, or the configured one, and
// forms a kill ring from it. The seed in use is returned as well so that
// the game can be reproduced.
func newTracker(cmd *cobra.Command, args []string) (*killring.Tracker, []string, int64, error) {
	conf := settings(cmd)

	path := conf.Roster
	if len(args) > 0 {
		path = args[0]
	}

	if path == "" {
		return nil, nil, 0, ErrNoRoster
	}

	names, err := roster.Load(path)
	if err != nil {
		return nil, nil, 0, err
	}

	shuffle := conf.Shuffle
	if cmd.Flag("shuffle").Changed {
		shuffle, _ = cmd.Flags().GetBool("shuffle")
	}

	seed := conf.Seed
	if cmd.Flag("seed").Changed {
		seed, _ = cmd.Flags().GetInt64("seed")
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if shuffle {
		logrus.WithField("seed", seed).Info("Shuffling roster")
		names = roster.Shuffle(names, seed)
	}

	tracker, err := killring.New(names)
	if err != nil {
		return nil, nil, 0, err
	}

	return tracker, names, seed, nil
}
