package ui

import (
	"strings"
	"testing"
	"time"

	"termsweep/internal/core"
)

func TestWindowSize(t *testing.T) {
	w, h := WindowSize(9, 16, 24)
	if w != 16*24 || h != 9*24+HUDHeight {
		t.Fatalf("unexpected window size %dx%d", w, h)
	}
	w, h = WindowSize(4, 4, 0)
	if w != 4 || h != 4+HUDHeight {
		t.Fatalf("scale below one should clamp, got %dx%d", w, h)
	}
}

func TestCellAt(t *testing.T) {
	const rows, cols, scale = 9, 16, 24
	cases := []struct {
		name     string
		x, y     int
		row, col int
		ok       bool
	}{
		{name: "origin", x: 0, y: HUDHeight, row: 0, col: 0, ok: true},
		{name: "inside cell", x: 24*3 + 5, y: HUDHeight + 24*2 + 23, row: 2, col: 3, ok: true},
		{name: "last cell", x: cols*scale - 1, y: HUDHeight + rows*scale - 1, row: rows - 1, col: cols - 1, ok: true},
		{name: "hud strip", x: 10, y: HUDHeight - 1},
		{name: "right edge", x: cols * scale, y: HUDHeight},
		{name: "bottom edge", x: 0, y: HUDHeight + rows*scale},
		{name: "negative", x: -1, y: HUDHeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row, col, ok := CellAt(tc.x, tc.y, rows, cols, scale)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && (row != tc.row || col != tc.col) {
				t.Fatalf("got (%d,%d), want (%d,%d)", row, col, tc.row, tc.col)
			}
		})
	}
}

func TestStatusLine(t *testing.T) {
	s := core.Status{MinesLeft: 7, Elapsed: 12*time.Second + 900*time.Millisecond}
	if got := StatusLine(s); got != "mines 7  time 12s" {
		t.Fatalf("unexpected playing line %q", got)
	}
	s.Outcome = core.Won
	if got := StatusLine(s); !strings.Contains(got, "cleared") {
		t.Fatalf("won line missing banner: %q", got)
	}
	s.Outcome = core.Lost
	s.MinesLeft = -1
	if got := StatusLine(s); !strings.HasPrefix(got, "mines -1") || !strings.Contains(got, "boom") {
		t.Fatalf("lost line unexpected: %q", got)
	}
}
