//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"termsweep/pkg/board"
)

// GridPainter keeps a one-pixel-per-cell image of the board and draws it
// scaled up.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows x cols board.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit uploads the board colors and draws them at (0, offsetY) with each
// cell scale pixels wide.
func (gp *GridPainter) Blit(dst *ebiten.Image, b *board.Board, p Palette, showMines bool, scale, offsetY int) {
	if b.Rows() != gp.rows || b.Cols() != gp.cols {
		return
	}
	FillPanels(gp.buf, b, p, showMines)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(0, float64(offsetY))
	dst.DrawImage(gp.img, op)
}
