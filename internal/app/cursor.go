package app

import (
	"termsweep/internal/core"
	"termsweep/internal/term"
)

// RunCursor plays rounds driven by single keystrokes: h/j/k/l move the
// cursor, o opens and f flags the cell under it, Ctrl-C quits. The caller
// puts the terminal into raw mode.
func (s *Session) RunCursor() error {
	keys := term.NewKeyReader(s.in)
	row, col := 0, 0
	for {
		s.startRound()
		outcome := core.Playing
		for !outcome.Over() {
			if err := s.drawCursorFrame(row, col); err != nil {
				return err
			}
			if err := s.flush(); err != nil {
				return err
			}
			key, err := keys.ReadKey()
			if err != nil {
				return ignoreEOF(err)
			}
			switch key {
			case 'h':
				if col > 0 {
					col--
				}
			case 'j':
				if row < s.board.Rows()-1 {
					row++
				}
			case 'k':
				if row > 0 {
					row--
				}
			case 'l':
				if col < s.board.Cols()-1 {
					col++
				}
			case 'o':
				s.apply(term.CmdOpen, row, col)
			case 'f':
				s.apply(term.CmdFlag, row, col)
			case term.CtrlC:
				s.round.WithField("moves", s.moves).Info("interrupted")
				return s.flush()
			}
			outcome = core.Evaluate(s.board)
		}

		term.Clear(s.out)
		if err := s.finishRound(outcome); err != nil {
			return err
		}
		if err := s.flush(); err != nil {
			return err
		}
		key, err := keys.ReadKey()
		if err != nil {
			return ignoreEOF(err)
		}
		if key == 'n' || key == 'N' || key == term.CtrlC {
			return nil
		}
	}
}

func (s *Session) drawCursorFrame(row, col int) error {
	term.Clear(s.out)
	if err := term.Render(s.out, s.board, term.Options{}); err != nil {
		return err
	}
	s.drawStatus()
	line, column := term.CellPosition(row, col)
	term.MoveTo(s.out, line, column)
	return nil
}
