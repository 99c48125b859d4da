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

// Package game runs games of assassin on the console.
package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/assassin/pkg/killring"
	"laptudirm.com/x/assassin/pkg/roster"
)

// Indent is printed before every ring and graveyard line.
const Indent = "    "

// Session is an interactive game which reads victims from In and reports
// the state of the game to Out until a winner is found.
type Session struct {
	Tracker *killring.Tracker

	In  io.Reader
	Out io.Writer

	// Names is the full roster, used to suggest names for unknown input.
	Names []string

	// Color enables ANSI colours in the output.
	Color bool
}

// Run plays the game to completion. If In runs out before the game is
// over, io.ErrUnexpectedEOF is returned.
func (session *Session) Run() error {
	scanner := bufio.NewScanner(session.In)

	for !session.Tracker.GameOver() {
		session.header("Current kill ring:")
		PrintRing(session.Out, session.Tracker)
		session.header("Current graveyard:")
		PrintGraveyard(session.Out, session.Tracker)
		fmt.Fprintln(session.Out)

		fmt.Fprint(session.Out, "next victim? ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}

			fmt.Fprintln(session.Out)
			return io.ErrUnexpectedEOF
		}

		if err := session.turn(strings.TrimSpace(scanner.Text())); err != nil {
			return err
		}
		fmt.Fprintln(session.Out)
	}

	winner, _ := session.Tracker.Winner()
	fmt.Fprintf(session.Out, "Game was won by %s\n", session.paint(color.FgGreen, winner))
	session.header("Final graveyard is as follows:")
	PrintGraveyard(session.Out, session.Tracker)
	return nil
}

// turn handles a single line of input.
func (session *Session) turn(name string) error {
	switch {
	case name == "":
		return nil

	case session.Tracker.InGraveyard(name):
		fmt.Fprintf(session.Out, "%s is already dead.\n", name)
		return nil

	case !session.Tracker.InRing(name):
		fmt.Fprintln(session.Out, "Unknown person.")
		if suggestions := roster.Suggest(name, session.alive()); len(suggestions) > 0 {
			fmt.Fprintf(session.Out, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
		return nil
	}

	victim, _ := session.Tracker.Lookup(name)
	logrus.WithField("victim", victim).Trace("Eliminating assassin")
	return session.Tracker.Eliminate(name)
}

// alive returns the roster names which are still in the kill ring.
func (session *Session) alive() []string {
	var names []string
	for _, name := range session.Names {
		if session.Tracker.InRing(name) {
			names = append(names, name)
		}
	}

	return names
}

func (session *Session) header(text string) {
	fmt.Fprintln(session.Out, session.paint(color.FgYellow, text))
}

func (session *Session) paint(attr color.Attribute, text string) string {
	c := color.New(attr)
	if session.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c.Sprint(text)
}

// PrintRing writes one line per live assassin saying whom they stalk.
func PrintRing(w io.Writer, tracker *killring.Tracker) {
	for _, edge := range tracker.Ring() {
		fmt.Fprintln(w, Indent+edge.String())
	}
}

// PrintGraveyard writes one line per dead assassin saying who killed them,
// most recent first.
func PrintGraveyard(w io.Writer, tracker *killring.Tracker) {
	for _, kill := range tracker.Graveyard() {
		fmt.Fprintln(w, Indent+kill.String())
	}
}
