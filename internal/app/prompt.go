package app

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"termsweep/internal/core"
	"termsweep/internal/term"
)

var errQuit = errors.New("quit")

// RunPrompt plays line-based rounds: a command ("open" or "flag") followed by
// a coordinate such as "c7". Typing "quit" at the coordinate prompt or
// closing the input ends the session.
func (s *Session) RunPrompt() error {
	lines := bufio.NewReader(s.in)
	for {
		s.startRound()
		outcome, err := s.playPrompt(lines)
		if err != nil {
			s.round.WithField("moves", s.moves).Info("session ended mid-round")
			if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
				return s.flush()
			}
			return err
		}

		if err := s.finishRound(outcome); err != nil {
			return err
		}
		if err := s.flush(); err != nil {
			return err
		}
		line, err := readLine(lines)
		if err != nil {
			return ignoreEOF(err)
		}
		if declined(line) {
			return nil
		}
	}
}

func (s *Session) playPrompt(lines *bufio.Reader) (core.Outcome, error) {
	for {
		cmd := term.CmdNone
		for cmd == term.CmdNone {
			if err := term.Render(s.out, s.board, term.Options{}); err != nil {
				return core.Playing, err
			}
			s.drawStatus()
			io.WriteString(s.out, "command? [open|flag] > ")
			if err := s.flush(); err != nil {
				return core.Playing, err
			}
			line, err := readLine(lines)
			if err != nil {
				return core.Playing, err
			}
			cmd = term.ParseCommand(line)
		}

		var row, col int
		for {
			io.WriteString(s.out, "where? > ")
			if err := s.flush(); err != nil {
				return core.Playing, err
			}
			line, err := readLine(lines)
			if err != nil {
				return core.Playing, err
			}
			if term.IsQuit(line) {
				return core.Playing, errQuit
			}
			var ok bool
			if row, col, ok = term.ParseCoordinate(line); ok {
				break
			}
		}

		s.apply(cmd, row, col)
		if outcome := core.Evaluate(s.board); outcome.Over() {
			return outcome, nil
		}
	}
}

// readLine returns the next line including its newline. A final line
// without a newline is returned as is.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

// declined reports whether the answer to "Try again?" was no.
func declined(answer string) bool {
	answer = strings.TrimRight(answer, "\r\n")
	return answer == "n" || answer == "N"
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
