package core

import (
	"testing"
	"time"

	"termsweep/pkg/board"
)

type keepRNG struct{}

func (keepRNG) Intn(n int) int { return n - 1 }

func TestEvaluate(t *testing.T) {
	b, err := board.New(4, 4, 1, keepRNG{})
	if err != nil {
		t.Fatal(err)
	}
	if got := Evaluate(b); got != Playing {
		t.Fatalf("fresh board: expected playing, got %v", got)
	}

	b.Open(3, 3)
	if got := Evaluate(b); got != Won {
		t.Fatalf("cleared board: expected won, got %v", got)
	}

	b.Reset()
	b.Open(0, 0)
	if got := Evaluate(b); got != Lost {
		t.Fatalf("detonated board: expected lost, got %v", got)
	}
	if !Lost.Over() || Playing.Over() {
		t.Fatal("Over misreports round state")
	}
}

func TestSnapshot(t *testing.T) {
	b, err := board.New(4, 4, 1, keepRNG{})
	if err != nil {
		t.Fatal(err)
	}
	b.ToggleFlag(0, 0)
	b.ToggleFlag(0, 1)
	b.Open(1, 1)

	s := Snapshot(b, 3*time.Second)
	want := Status{
		Rows: 4, Cols: 4, Mines: 1, Flags: 2, MinesLeft: -1,
		Revealed: 1, Outcome: Playing, Elapsed: 3 * time.Second,
	}
	if s != want {
		t.Fatalf("Snapshot = %+v, expected %+v", s, want)
	}
}

func TestStopwatch(t *testing.T) {
	now := time.Unix(1000, 0)
	sw := NewStopwatch(func() time.Time { return now })

	if sw.Elapsed() != 0 {
		t.Fatal("stopwatch must start at zero")
	}
	sw.Start()
	now = now.Add(5 * time.Second)
	if got := sw.Elapsed(); got != 5*time.Second {
		t.Fatalf("running elapsed %v, expected 5s", got)
	}
	sw.Stop()
	now = now.Add(time.Minute)
	sw.Stop()
	if got := sw.Elapsed(); got != 5*time.Second {
		t.Fatalf("stopped elapsed %v, expected 5s", got)
	}
	sw.Start()
	if sw.Elapsed() != 0 {
		t.Fatal("Start must reset the reading")
	}
}
