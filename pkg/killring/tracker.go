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

// Package killring tracks a game of assassin: who is stalking whom in the
// kill ring, and who was killed by whom in the graveyard.
package killring

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidArgument is returned when the tracker is given input it
	// can't work with: an empty roster or a victim who isn't alive.
	ErrInvalidArgument = errors.New("killring: invalid argument")

	// ErrIllegalState is returned by Eliminate once the game is over.
	ErrIllegalState = errors.New("killring: illegal state")
)

// New creates a Tracker whose kill ring follows the order of names: each
// assassin stalks the next one, and the last stalks the first.
func New(names []string) (*Tracker, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no assassins in the kill ring", ErrInvalidArgument)
	}

	var tracker Tracker
	tracker.ring = make([]assassin, len(names))
	for i, name := range names {
		tracker.ring[i] = assassin{name: name, key: fold(name)}
	}

	logrus.WithField("assassins", len(names)).Debug("Created kill ring")
	return &tracker, nil
}

// Tracker owns the kill ring and the graveyard of a single game. It is not
// safe for concurrent use.
type Tracker struct {
	// ring holds the live assassins in stalking order. The successor of
	// ring[i] is ring[(i+1)%len(ring)].
	ring []assassin

	// graveyard holds the kills in the order they happened, so the most
	// recent kill is the last element.
	graveyard []grave
}

type assassin struct {
	name string // name as given, used for display
	key  string // folded name, used for comparisons
}

type grave struct {
	Kill
	key string // folded victim name
}

// Stalking is a single edge of the kill ring.
type Stalking struct {
	Assassin string
	Target   string
}

func (s Stalking) String() string {
	return s.Assassin + " is stalking " + s.Target
}

// Kill is a single graveyard entry.
type Kill struct {
	Victim string
	Killer string
}

func (k Kill) String() string {
	return k.Victim + " was killed by " + k.Killer
}

// Ring returns every live assassin in ring order together with the assassin
// they are stalking. A lone survivor stalks themself.
func (tracker *Tracker) Ring() []Stalking {
	edges := make([]Stalking, len(tracker.ring))
	for i, current := range tracker.ring {
		edges[i] = Stalking{
			Assassin: current.name,
			Target:   tracker.ring[tracker.next(i)].name,
		}
	}

	return edges
}

// Graveyard returns the kills made so far, most recent first.
func (tracker *Tracker) Graveyard() []Kill {
	kills := make([]Kill, len(tracker.graveyard))
	for i, dead := range tracker.graveyard {
		kills[len(kills)-1-i] = dead.Kill
	}

	return kills
}

// InRing reports whether name is alive. Case is ignored.
func (tracker *Tracker) InRing(name string) bool {
	return tracker.find(name) != -1
}

// InGraveyard reports whether name has been killed. Case is ignored.
func (tracker *Tracker) InGraveyard(name string) bool {
	key := fold(name)
	for _, dead := range tracker.graveyard {
		if dead.key == key {
			return true
		}
	}

	return false
}

// Lookup returns the name of the live assassin matching name, in the casing
// it was given to New.
func (tracker *Tracker) Lookup(name string) (string, bool) {
	if i := tracker.find(name); i != -1 {
		return tracker.ring[i].name, true
	}

	return "", false
}

// Len returns the number of assassins still alive.
func (tracker *Tracker) Len() int {
	return len(tracker.ring)
}

// Dead returns the number of assassins in the graveyard.
func (tracker *Tracker) Dead() int {
	return len(tracker.graveyard)
}

// GameOver reports whether only one assassin remains.
func (tracker *Tracker) GameOver() bool {
	return len(tracker.ring) == 1
}

// Winner returns the last assassin standing. The second result is false
// while the game is still being played.
func (tracker *Tracker) Winner() (string, bool) {
	if !tracker.GameOver() {
		return "", false
	}

	return tracker.ring[0].name, true
}

// Eliminate moves name from the kill ring to the graveyard, recording the
// assassin who was stalking them as their killer. Case is ignored. Nothing
// is changed if an error is returned.
func (tracker *Tracker) Eliminate(name string) error {
	if len(tracker.ring) <= 1 {
		return fmt.Errorf("%w: the game is already over", ErrIllegalState)
	}

	i := tracker.find(name)
	if i == -1 {
		return fmt.Errorf("%w: %s is not in the kill ring", ErrInvalidArgument, name)
	}

	victim := tracker.ring[i]
	killer := tracker.ring[tracker.prev(i)]

	tracker.ring = append(tracker.ring[:i], tracker.ring[i+1:]...)
	tracker.graveyard = append(tracker.graveyard, grave{
		Kill: Kill{Victim: victim.name, Killer: killer.name},
		key:  victim.key,
	})

	logrus.WithFields(logrus.Fields{
		"victim":    victim.name,
		"killer":    killer.name,
		"remaining": len(tracker.ring),
	}).Debug("Eliminated assassin")

	return nil
}

// find returns the ring index of name, or -1 if name isn't alive.
func (tracker *Tracker) find(name string) int {
	key := fold(name)
	for i, current := range tracker.ring {
		if current.key == key {
			return i
		}
	}

	return -1
}

func (tracker *Tracker) next(i int) int {
	return (i + 1) % len(tracker.ring)
}

func (tracker *Tracker) prev(i int) int {
	return (i - 1 + len(tracker.ring)) % len(tracker.ring)
}
