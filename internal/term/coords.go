package term

import "strings"

const alphabet = 26

// ColumnLabel returns the letter for the 0-based column: a..z, then A..Z.
func ColumnLabel(col int) byte {
	if col < alphabet {
		return byte('a' + col)
	}
	return byte('A' + col - alphabet)
}

// Command is an action typed at the prompt.
type Command uint8

const (
	// CmdNone is an unrecognised command.
	CmdNone Command = iota
	// CmdOpen reveals a cell.
	CmdOpen
	// CmdFlag toggles the flag on a cell.
	CmdFlag
)

func (c Command) String() string {
	switch c {
	case CmdOpen:
		return "open"
	case CmdFlag:
		return "flag"
	default:
		return "none"
	}
}

// ParseCommand recognises "open" and "flag" lines.
func ParseCommand(line string) Command {
	switch trimLine(line) {
	case "open":
		return CmdOpen
	case "flag":
		return CmdFlag
	default:
		return CmdNone
	}
}

// IsQuit reports whether the line is the literal "quit".
func IsQuit(line string) bool {
	return trimLine(line) == "quit"
}

// ParseCoordinate reads a coordinate such as "a1", "c12" or "B7": one column
// letter (a-z then A-Z) and a one or two digit row number. It returns
// 0-based (row, col). Range checks are left to the board.
func ParseCoordinate(line string) (row, col int, ok bool) {
	s := trimLine(line)
	if len(s) < 2 || len(s) > 3 {
		return 0, 0, false
	}
	switch ch := s[0]; {
	case ch >= 'a' && ch <= 'z':
		col = int(ch - 'a')
	case ch >= 'A' && ch <= 'Z':
		col = int(ch-'A') + alphabet
	default:
		return 0, 0, false
	}
	n := 0
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n - 1, col, true
}

func trimLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
