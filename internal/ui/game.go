//go:build ebiten

package ui

import (
	"image/color"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"termsweep/internal/core"
	"termsweep/internal/logging"
	"termsweep/internal/render"
	"termsweep/pkg/board"
)

// Game adapts a board to the ebiten.Game interface.
type Game struct {
	board   *board.Board
	painter *render.GridPainter
	palette render.Palette
	clock   *core.Stopwatch
	log     logrus.FieldLogger
	round   *logrus.Entry

	scale   int
	moves   int
	outcome core.Outcome
}

// New constructs a Game for b and deals the first round. A nil logger
// discards log output.
func New(b *board.Board, scale int, log logrus.FieldLogger) *Game {
	if scale < 1 {
		scale = 1
	}
	if log == nil {
		log = logging.Discard()
	}
	g := &Game{
		board:   b,
		painter: render.NewGridPainter(b.Rows(), b.Cols()),
		palette: render.DefaultPalette(),
		clock:   core.NewStopwatch(nil),
		log:     log,
		scale:   scale,
	}
	g.Reset()
	return g
}

// Reset deals a new round.
func (g *Game) Reset() {
	g.board.Reset()
	g.moves = 0
	g.outcome = core.Playing
	g.round = g.log.WithField("round", uuid.NewString())
	g.round.WithFields(logrus.Fields{
		"rows":  g.board.Rows(),
		"cols":  g.board.Cols(),
		"mines": g.board.Mines(),
	}).Info("round started")
	g.clock.Start()
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
		return nil
	}
	if g.outcome.Over() {
		return nil
	}

	var open bool
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		open = true
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
	default:
		return nil
	}
	x, y := ebiten.CursorPosition()
	row, col, ok := CellAt(x, y, g.board.Rows(), g.board.Cols(), g.scale)
	if !ok {
		return nil
	}
	g.moves++
	if open {
		g.board.Open(row, col)
	} else {
		g.board.ToggleFlag(row, col)
	}
	g.round.WithFields(logrus.Fields{"open": open, "row": row, "col": col}).Debug("move")

	g.outcome = core.Evaluate(g.board)
	if g.outcome.Over() {
		g.clock.Stop()
		g.round.WithFields(logrus.Fields{
			"outcome": g.outcome,
			"moves":   g.moves,
			"elapsed": g.clock.Elapsed(),
		}).Info("round finished")
	}
	return nil
}

// Draw renders the board and the status strip.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.board, g.palette, g.outcome == core.Lost, g.scale, HUDHeight)
	drawCounts(screen, g.board, g.scale)
	w, _ := WindowSize(g.board.Rows(), g.board.Cols(), g.scale)
	drawHUD(screen, core.Snapshot(g.board, g.clock.Elapsed()), w)
}

// Layout fixes the logical screen to the board size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowSize(g.board.Rows(), g.board.Cols(), g.scale)
}
