// Package ui hosts the windowed front-end. Drawing and input live behind the
// ebiten build tag; the layout math here is shared and tested headless.
package ui

import (
	"fmt"
	"time"

	"termsweep/internal/core"
)

// HUDHeight is the pixel height of the status strip above the board.
const HUDHeight = 20

// WindowSize returns the logical screen size for a rows x cols board.
func WindowSize(rows, cols, scale int) (int, int) {
	if scale < 1 {
		scale = 1
	}
	return cols * scale, rows*scale + HUDHeight
}

// CellAt maps a screen position to board coordinates.
func CellAt(x, y, rows, cols, scale int) (row, col int, ok bool) {
	if scale < 1 || x < 0 || y < HUDHeight {
		return 0, 0, false
	}
	row = (y - HUDHeight) / scale
	col = x / scale
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}

// StatusLine formats the HUD text for s.
func StatusLine(s core.Status) string {
	line := fmt.Sprintf("mines %d  time %ds", s.MinesLeft, int(s.Elapsed/time.Second))
	switch s.Outcome {
	case core.Won:
		line += "  cleared! R to replay"
	case core.Lost:
		line += "  boom! R to replay"
	}
	return line
}
