//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"termsweep/internal/core"
	"termsweep/internal/render"
	"termsweep/pkg/board"
)

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	hudText       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hudWon        = color.RGBA{R: 120, G: 220, B: 120, A: 255}
	hudLost       = color.RGBA{R: 240, G: 110, B: 110, A: 255}
	gridLine      = color.RGBA{R: 40, G: 40, B: 48, A: 255}
)

const (
	hudPadding  = 6
	hudBaseline = 14
)

// drawHUD paints the status strip across the top of the window.
func drawHUD(screen *ebiten.Image, s core.Status, width int) {
	vector.DrawFilledRect(screen, 0, 0, float32(width), HUDHeight, hudBackground, false)
	clr := hudText
	switch s.Outcome {
	case core.Won:
		clr = hudWon
	case core.Lost:
		clr = hudLost
	}
	text.Draw(screen, StatusLine(s), basicfont.Face7x13, hudPadding, hudBaseline, clr)
}

// drawCounts writes the adjacency digit on every open numbered cell and
// outlines the cells.
func drawCounts(screen *ebiten.Image, b *board.Board, scale int) {
	face := basicfont.Face7x13
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			cell, _ := b.Cell(r, c)
			if cell.Panel() != board.PanelOpen || cell.Adjacent == 0 {
				continue
			}
			x := c*scale + (scale-7)/2
			y := HUDHeight + r*scale + (scale+10)/2
			text.Draw(screen, string(rune('0'+cell.Adjacent)), face, x, y, render.CountColor(cell.Adjacent))
		}
	}

	w := float32(b.Cols() * scale)
	h := float32(b.Rows() * scale)
	for r := 0; r <= b.Rows(); r++ {
		y := float32(HUDHeight + r*scale)
		vector.StrokeLine(screen, 0, y, w, y, 1, gridLine, false)
	}
	for c := 0; c <= b.Cols(); c++ {
		x := float32(c * scale)
		vector.StrokeLine(screen, x, HUDHeight, x, HUDHeight+h, 1, gridLine, false)
	}
}
