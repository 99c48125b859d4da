package game

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"laptudirm.com/x/assassin/pkg/killring"
)

func newSession(t *testing.T, input string, names ...string) (*Session, *bytes.Buffer) {
	t.Helper()

	tracker, err := killring.New(names)
	if err != nil {
		t.Fatalf("killring.New: %v", err)
	}

	var out bytes.Buffer
	return &Session{
		Tracker: tracker,
		In:      strings.NewReader(input),
		Out:     &out,
		Names:   names,
	}, &out
}

func TestSession_Run(t *testing.T) {
	t.Parallel()

	session, out := newSession(t, "b\nC\n", "A", "B", "C")
	if err := session.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := "" +
		"Current kill ring:\n" +
		"    A is stalking B\n" +
		"    B is stalking C\n" +
		"    C is stalking A\n" +
		"Current graveyard:\n" +
		"\n" +
		"next victim? \n" +
		"Current kill ring:\n" +
		"    A is stalking C\n" +
		"    C is stalking A\n" +
		"Current graveyard:\n" +
		"    B was killed by A\n" +
		"\n" +
		"next victim? \n" +
		"Game was won by A\n" +
		"Final graveyard is as follows:\n" +
		"    C was killed by A\n" +
		"    B was killed by A\n"

	if got := out.String(); got != want {
		t.Errorf("transcript mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestSession_BadInput(t *testing.T) {
	t.Parallel()

	session, out := newSession(t, "Sally\nsally\nsal\nNobody\n\nJoe\n", "Joe", "Sally", "Jim")
	if err := session.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"sally is already dead.\n",
		"Unknown person.\n",
		"Game was won by Jim\n",
		"    Joe was killed by Jim\n    Sally was killed by Joe\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("transcript is missing %q:\n%s", want, got)
		}
	}

	// "sal" only matches the dead Sally, so no suggestion is made for it.
	if strings.Contains(got, "Did you mean: Sally") {
		t.Errorf("dead assassin suggested:\n%s", got)
	}
}

func TestSession_Suggest(t *testing.T) {
	t.Parallel()

	session, out := newSession(t, "car\nCarol\n", "Carol", "Chris")
	if err := session.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "Did you mean: Carol?\n") {
		t.Errorf("no suggestion for car:\n%s", out.String())
	}
}

func TestSession_EOF(t *testing.T) {
	t.Parallel()

	session, _ := newSession(t, "A\n", "A", "B", "C")
	if err := session.Run(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Run() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSession_AlreadyOver(t *testing.T) {
	t.Parallel()

	session, out := newSession(t, "", "Solo")
	if err := session.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := "Game was won by Solo\nFinal graveyard is as follows:\n"
	if got := out.String(); got != want {
		t.Errorf("Run() wrote %q, want %q", got, want)
	}
}

func TestSimulate(t *testing.T) {
	t.Parallel()

	names := []string{"Ann", "Ben", "Cat", "Dan", "Eve"}
	for seed := int64(0); seed < 20; seed++ {
		tracker, err := killring.New(names)
		if err != nil {
			t.Fatal(err)
		}

		var out bytes.Buffer
		if err := Simulate(tracker, seed, &out); err != nil {
			t.Fatalf("Simulate(seed %d): %v", seed, err)
		}

		winner, ok := tracker.Winner()
		if !ok {
			t.Fatalf("Simulate(seed %d) left no winner", seed)
		}
		if tracker.Dead() != len(names)-1 {
			t.Errorf("Simulate(seed %d) killed %d, want %d", seed, tracker.Dead(), len(names)-1)
		}

		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		if len(lines) != len(names) {
			t.Errorf("Simulate(seed %d) wrote %d lines, want %d", seed, len(lines), len(names))
		}
		if last := lines[len(lines)-1]; last != "Game was won by "+winner {
			t.Errorf("last line = %q, want winner %s", last, winner)
		}
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	t.Parallel()

	run := func() string {
		tracker, err := killring.New([]string{"Ann", "Ben", "Cat", "Dan"})
		if err != nil {
			t.Fatal(err)
		}

		var out bytes.Buffer
		if err := Simulate(tracker, 143, &out); err != nil {
			t.Fatal(err)
		}
		return out.String()
	}

	if first, second := run(), run(); first != second {
		t.Errorf("same seed gave different games:\n%s\n%s", first, second)
	}
}
