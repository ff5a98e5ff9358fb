package term

import (
	"bufio"
	"fmt"
	"io"

	"termsweep/pkg/board"
)

// Glyphs used for each panel class.
const (
	GlyphFlag   = '*'
	GlyphHidden = 'o'
	GlyphZero   = '.'
	GlyphMine   = '@'
)

// Header rows above the first board row: two blank lines, the column labels
// and the separator.
const headerLines = 4

// Options tweak Render.
type Options struct {
	// ShowMines draws every mine as revealed, for the end of a lost round.
	ShowMines bool
}

// Render draws the board with row numbers and column letters.
func Render(w io.Writer, b *board.Board, opts Options) error {
	bw := bufio.NewWriter(w)
	rows, cols := b.Rows(), b.Cols()

	bw.WriteString("\n\n  |")
	for c := 0; c < cols; c++ {
		bw.WriteByte(ColumnLabel(c))
	}
	bw.WriteString("\n--+")
	for c := 0; c < cols; c++ {
		bw.WriteByte('-')
	}
	bw.WriteByte('\n')

	for r := 0; r < rows; r++ {
		fmt.Fprintf(bw, "%2d|", r+1)
		for c := 0; c < cols; c++ {
			cell, _ := b.Cell(r, c)
			bw.WriteByte(Glyph(cell, opts.ShowMines))
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// Glyph returns the character for a cell.
func Glyph(c board.Cell, showMines bool) byte {
	if showMines && c.IsMine() && !c.Flagged {
		return GlyphMine
	}
	switch c.Panel() {
	case board.PanelFlagged:
		return GlyphFlag
	case board.PanelHidden:
		return GlyphHidden
	case board.PanelMine:
		return GlyphMine
	default:
		if c.Adjacent == 0 {
			return GlyphZero
		}
		return byte('0' + c.Adjacent)
	}
}

// CellPosition returns the 1-based screen (line, column) of a board cell as
// drawn by Render from the top-left corner.
func CellPosition(row, col int) (int, int) {
	return row + headerLines + 1, col + 4
}
