package render

import (
	"image/color"

	"termsweep/pkg/board"
)

// Palette holds one color per panel class.
type Palette struct {
	Hidden  color.RGBA
	Flagged color.RGBA
	Mine    color.RGBA
	Open    color.RGBA
}

// DefaultPalette returns the standard board colors.
func DefaultPalette() Palette {
	return Palette{
		Hidden:  color.RGBA{R: 120, G: 124, B: 140, A: 255},
		Flagged: color.RGBA{R: 230, G: 160, B: 40, A: 255},
		Mine:    color.RGBA{R: 210, G: 40, B: 40, A: 255},
		Open:    color.RGBA{R: 222, G: 222, B: 214, A: 255},
	}
}

// Color returns the palette entry for a cell. With showMines set, hidden
// unflagged mines use the mine color.
func (p Palette) Color(c board.Cell, showMines bool) color.RGBA {
	if showMines && c.IsMine() && !c.Flagged {
		return p.Mine
	}
	switch c.Panel() {
	case board.PanelFlagged:
		return p.Flagged
	case board.PanelMine:
		return p.Mine
	case board.PanelOpen:
		return p.Open
	default:
		return p.Hidden
	}
}

// FillPanels converts the board into RGBA pixels in buf, one pixel per cell
// in row-major order. buf must hold 4*rows*cols bytes.
func FillPanels(buf []byte, b *board.Board, p Palette, showMines bool) {
	cols := b.Cols()
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < cols; c++ {
			cell, _ := b.Cell(r, c)
			col := p.Color(cell, showMines)
			base := (r*cols + c) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

var countColors = [9]color.RGBA{
	{A: 0},
	{R: 25, G: 60, B: 220, A: 255},
	{R: 30, G: 130, B: 40, A: 255},
	{R: 200, G: 30, B: 30, A: 255},
	{R: 20, G: 20, B: 120, A: 255},
	{R: 130, G: 30, B: 30, A: 255},
	{R: 20, G: 130, B: 130, A: 255},
	{R: 10, G: 10, B: 10, A: 255},
	{R: 110, G: 110, B: 110, A: 255},
}

// CountColor returns the digit color for an adjacency count. Zero is fully
// transparent.
func CountColor(n int) color.RGBA {
	if n < 0 || n >= len(countColors) {
		return countColors[0]
	}
	return countColors[n]
}
