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

package game

import (
	"fmt"
	"io"
	"math/rand"

	"laptudirm.com/x/assassin/pkg/killring"
)

// Simulate plays the game without any input: every turn a random live
// assassin, chosen using seed, is killed by whoever is stalking them. Each
// kill is written to w, followed by the winner.
func Simulate(tracker *killring.Tracker, seed int64, w io.Writer) error {
	rng := rand.New(rand.NewSource(seed))

	for round := 1; !tracker.GameOver(); round++ {
		ring := tracker.Ring()
		victim := ring[rng.Intn(len(ring))].Assassin

		if err := tracker.Eliminate(victim); err != nil {
			return err
		}

		fmt.Fprintf(w, "Round #%d: %s\n", round, tracker.Graveyard()[0])
	}

	winner, _ := tracker.Winner()
	fmt.Fprintf(w, "Game was won by %s\n", winner)
	return nil
}
