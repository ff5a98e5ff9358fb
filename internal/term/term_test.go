package term

import (
	"bytes"
	"strings"
	"testing"

	"termsweep/pkg/board"
)

type keepRNG struct{}

func (keepRNG) Intn(n int) int { return n - 1 }

func TestColumnLabel(t *testing.T) {
	cases := map[int]byte{0: 'a', 25: 'z', 26: 'A', 51: 'Z'}
	for col, want := range cases {
		if got := ColumnLabel(col); got != want {
			t.Fatalf("ColumnLabel(%d) = %q, expected %q", col, got, want)
		}
	}
}

func TestParseCoordinate(t *testing.T) {
	good := []struct {
		in       string
		row, col int
	}{
		{"a1\n", 0, 0},
		{"b10\n", 9, 1},
		{"z9", 8, 25},
		{"A3\n", 2, 26},
		{"Z52\r\n", 51, 51},
		{"c0\n", -1, 2},
	}
	for _, tc := range good {
		row, col, ok := ParseCoordinate(tc.in)
		if !ok || row != tc.row || col != tc.col {
			t.Fatalf("ParseCoordinate(%q) = (%d,%d,%v), expected (%d,%d,true)", tc.in, row, col, ok, tc.row, tc.col)
		}
	}

	for _, in := range []string{"", "\n", "a\n", "1a\n", "a123\n", "?1\n", "ab\n", "a1b\n", "quit\n"} {
		if _, _, ok := ParseCoordinate(in); ok {
			t.Fatalf("ParseCoordinate(%q) should fail", in)
		}
	}
}

func TestParseCommand(t *testing.T) {
	if ParseCommand("open\n") != CmdOpen || ParseCommand("flag\n") != CmdFlag {
		t.Fatal("commands not recognised")
	}
	for _, in := range []string{"Open\n", "o\n", "", "flags\n"} {
		if ParseCommand(in) != CmdNone {
			t.Fatalf("ParseCommand(%q) should be CmdNone", in)
		}
	}
	if !IsQuit("quit\n") || IsQuit("quit now\n") {
		t.Fatal("IsQuit misbehaves")
	}
}

func TestRender(t *testing.T) {
	b, err := board.New(4, 4, 1, keepRNG{})
	if err != nil {
		t.Fatal(err)
	}
	b.ToggleFlag(0, 0)
	b.Open(1, 1)
	b.Open(3, 0)

	var buf bytes.Buffer
	if err := Render(&buf, b, Options{}); err != nil {
		t.Fatal(err)
	}
	// (3,0) floods everything reachable; (0,0) stays flagged.
	want := strings.Join([]string{
		"",
		"",
		"  |abcd",
		"--+----",
		" 1|*1..",
		" 2|11..",
		" 3|....",
		" 4|....",
		"",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("render mismatch:\n%q\nexpected:\n%q", buf.String(), want)
	}
}

func TestRenderShowMines(t *testing.T) {
	b, err := board.New(4, 5, 2, keepRNG{})
	if err != nil {
		t.Fatal(err)
	}
	b.Open(0, 1)

	var buf bytes.Buffer
	if err := Render(&buf, b, Options{ShowMines: true}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[4] != " 1|@@ooo" {
		t.Fatalf("unexpected first row %q", lines[4])
	}
	if lines[5] != " 2|ooooo" {
		t.Fatalf("unexpected second row %q", lines[5])
	}
}

func TestRenderUppercaseLabels(t *testing.T) {
	b, err := board.New(4, 30, 0, keepRNG{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Render(&buf, b, Options{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[2] != "  |abcdefghijklmnopqrstuvwxyzABCD" {
		t.Fatalf("unexpected label row %q", lines[2])
	}
	if lines[3] != "--+"+strings.Repeat("-", 30) {
		t.Fatalf("unexpected separator %q", lines[3])
	}
}

func TestCellPositionMatchesRender(t *testing.T) {
	b, err := board.New(6, 6, 1, keepRNG{})
	if err != nil {
		t.Fatal(err)
	}
	b.ToggleFlag(2, 3)
	var buf bytes.Buffer
	if err := Render(&buf, b, Options{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	line, col := CellPosition(2, 3)
	if got := lines[line-1][col-1]; got != GlyphFlag {
		t.Fatalf("CellPosition points at %q, expected the flag", got)
	}
}

func TestRawWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewRawWriter(&buf)
	n, err := w.Write([]byte("a\nb\r\nc\n"))
	if err != nil || n != 7 {
		t.Fatalf("Write = (%d, %v)", n, err)
	}
	if buf.String() != "a\r\nb\r\nc\r\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestKeyReader(t *testing.T) {
	k := NewKeyReader(strings.NewReader("hj\x03"))
	for _, want := range []byte{'h', 'j', CtrlC} {
		got, err := k.ReadKey()
		if err != nil || got != want {
			t.Fatalf("ReadKey = (%q, %v), expected %q", got, err, want)
		}
	}
	if _, err := k.ReadKey(); err == nil {
		t.Fatal("expected EOF")
	}
}
