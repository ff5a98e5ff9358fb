package core

import (
	"time"

	"termsweep/pkg/board"
)

// Outcome is the state of the current round.
type Outcome uint8

const (
	Playing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the round has ended.
func (o Outcome) Over() bool { return o != Playing }

// Evaluate derives the round outcome from the board. A revealed mine wins
// over a cleared board.
func Evaluate(b *board.Board) Outcome {
	switch {
	case b.Detonated():
		return Lost
	case b.IsCleared():
		return Won
	default:
		return Playing
	}
}

// Status captures what front-ends show next to the board.
type Status struct {
	Rows      int
	Cols      int
	Mines     int
	Flags     int
	MinesLeft int
	Revealed  int
	Outcome   Outcome
	Elapsed   time.Duration
}

// Snapshot builds a Status for b.
func Snapshot(b *board.Board, elapsed time.Duration) Status {
	return Status{
		Rows:      b.Rows(),
		Cols:      b.Cols(),
		Mines:     b.Mines(),
		Flags:     b.Flags(),
		MinesLeft: b.MinesLeft(),
		Revealed:  b.Revealed(),
		Outcome:   Evaluate(b),
		Elapsed:   elapsed,
	}
}
