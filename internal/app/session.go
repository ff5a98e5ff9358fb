// Package app runs Minesweeper rounds on a terminal.
package app

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"termsweep/internal/core"
	"termsweep/internal/logging"
	"termsweep/internal/term"
	"termsweep/pkg/board"
)

const (
	msgWon      = "Good-Job!!!  You've sweeped all Mines in success.\n\n"
	msgLost     = "Oops!!! You've hit a Mine...\n\n"
	msgTryAgain = "Try again? [Y/N]"
)

// Session plays rounds on one board until the player stops.
type Session struct {
	board *board.Board
	log   logrus.FieldLogger
	in    io.Reader
	out   *bufio.Writer
	clock *core.Stopwatch

	round *logrus.Entry
	moves int
}

// NewSession constructs a Session reading player input from in and drawing
// to out. A nil logger discards log output.
func NewSession(b *board.Board, in io.Reader, out io.Writer, log logrus.FieldLogger) *Session {
	if log == nil {
		log = logging.Discard()
	}
	return &Session{
		board: b,
		log:   log,
		in:    in,
		out:   bufio.NewWriter(out),
		clock: core.NewStopwatch(nil),
	}
}

// WithClock replaces the stopwatch clock, for tests.
func (s *Session) WithClock(now func() time.Time) *Session {
	s.clock = core.NewStopwatch(now)
	return s
}

func (s *Session) startRound() {
	s.board.Reset()
	s.moves = 0
	s.round = s.log.WithFields(logrus.Fields{
		"round": uuid.NewString(),
		"rows":  s.board.Rows(),
		"cols":  s.board.Cols(),
		"mines": s.board.Mines(),
	})
	s.round.Info("round started")
	s.clock.Start()
}

func (s *Session) apply(cmd term.Command, row, col int) {
	switch cmd {
	case term.CmdOpen:
		s.board.Open(row, col)
	case term.CmdFlag:
		s.board.ToggleFlag(row, col)
	default:
		return
	}
	s.moves++
	s.round.WithFields(logrus.Fields{
		"cmd": cmd.String(),
		"row": row,
		"col": col,
	}).Debug("move")
}

// finishRound draws the final board, every mine shown after a loss, and the
// verdict.
func (s *Session) finishRound(outcome core.Outcome) error {
	s.clock.Stop()
	s.round.WithFields(logrus.Fields{
		"outcome": outcome.String(),
		"moves":   s.moves,
		"elapsed": s.clock.Elapsed().Round(time.Millisecond).String(),
	}).Info("round finished")

	if err := term.Render(s.out, s.board, term.Options{ShowMines: outcome == core.Lost}); err != nil {
		return err
	}
	if outcome == core.Won {
		io.WriteString(s.out, msgWon)
	} else {
		io.WriteString(s.out, msgLost)
	}
	io.WriteString(s.out, msgTryAgain)
	return nil
}

func (s *Session) drawStatus() {
	st := core.Snapshot(s.board, s.clock.Elapsed())
	fmt.Fprintf(s.out, "mines left: %d  time: %ds\n", st.MinesLeft, int(st.Elapsed.Seconds()))
}

func (s *Session) flush() error {
	return s.out.Flush()
}
