// Package board implements the Minesweeper board engine: mine placement,
// adjacency counts, flood-fill reveal, flagging and win detection.
package board

import (
	"fmt"

	"termsweep/pkg/core"
)

// Board is a rows x cols minefield addressed with 0-based (row, col).
type Board struct {
	grid  *core.Grid[Cell]
	mines int
	// dealt is the mine count Reset places, fixed at construction.
	dealt int
	rng   core.Intner

	flags     int
	revealed  int
	safeOpen  int
	detonated bool

	stack []int
}

// New returns a populated board. It fails fast on dimensions below 1, a mine
// count outside [0, rows*cols) or a nil random source.
func New(rows, cols, mines int, rng core.Intner) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, rows, cols)
	}
	if mines < 0 || mines >= rows*cols {
		return nil, fmt.Errorf("%w: got %d for %dx%d", ErrInvalidMineCount, mines, rows, cols)
	}
	if rng == nil {
		return nil, ErrNilRNG
	}
	b := &Board{
		grid:  core.NewGrid[Cell](rows, cols),
		mines: mines,
		dealt: mines,
		rng:   rng,
	}
	b.Reset()
	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.grid.Rows() }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.grid.Cols() }

// Mines returns the number of mines on the board.
func (b *Board) Mines() int { return b.mines }

// Flags returns the number of flagged cells.
func (b *Board) Flags() int { return b.flags }

// MinesLeft is the mine count minus the flag count. It goes negative when
// the player over-flags.
func (b *Board) MinesLeft() int { return b.mines - b.flags }

// Revealed returns the number of revealed cells, mines included.
func (b *Board) Revealed() int { return b.revealed }

// Detonated reports whether a mine has been revealed this round.
func (b *Board) Detonated() bool { return b.detonated }

// InBounds reports whether (row, col) is a playable cell.
func (b *Board) InBounds(row, col int) bool { return b.grid.InBounds(row, col) }

// Cell returns a copy of the cell at (row, col).
func (b *Board) Cell(row, col int) (Cell, bool) {
	c := b.grid.At(row, col)
	if c == nil {
		return Cell{}, false
	}
	return *c, true
}

// Panel returns the rendering classification of (row, col).
func (b *Board) Panel(row, col int) (Panel, bool) {
	c, ok := b.Cell(row, col)
	if !ok {
		return PanelHidden, false
	}
	return c.Panel(), true
}

// Reset clears all cell state and places the constructed number of mines
// with a Fisher-Yates shuffle over the flat cell index space.
func (b *Board) Reset() {
	b.mines = b.dealt
	cells := b.clear()
	for i := 0; i < b.mines; i++ {
		cells[i].Kind = KindMine
	}
	for i := len(cells) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
	b.countAdjacent()
}

// Arrange clears the board and places mines exactly at the given positions.
// Mines reports len(mines) until the next Reset, which deals the
// constructed count again. On error the board is left unchanged.
func (b *Board) Arrange(mines []Pos) error {
	if len(mines) >= b.Rows()*b.Cols() {
		return fmt.Errorf("%w: got %d", ErrInvalidMineCount, len(mines))
	}
	seen := make(map[Pos]struct{}, len(mines))
	for _, p := range mines {
		if !b.grid.InBounds(p.Row, p.Col) {
			return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, p.Row, p.Col)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: (%d,%d)", ErrDuplicateMine, p.Row, p.Col)
		}
		seen[p] = struct{}{}
	}

	b.clear()
	for _, p := range mines {
		b.grid.At(p.Row, p.Col).Kind = KindMine
	}
	b.mines = len(mines)
	b.countAdjacent()
	return nil
}

func (b *Board) clear() []Cell {
	b.grid.Fill(Cell{})
	b.flags = 0
	b.revealed = 0
	b.safeOpen = 0
	b.detonated = false
	return b.grid.Cells()
}

func (b *Board) countAdjacent() {
	g := b.grid
	cells := g.Cells()
	for i := range cells {
		if cells[i].Kind == KindMine {
			continue
		}
		row, col := g.Coords(i)
		n := 0
		g.Neighbors(row, col, func(r, c int) {
			if cells[g.Index(r, c)].Kind == KindMine {
				n++
			}
		})
		cells[i].Adjacent = n
	}
}

// Open reveals (row, col). Out-of-range, revealed and flagged cells are
// ignored. Revealing a cell with no adjacent mines opens its neighbours by
// the same rules until the zero region and its numbered rim are revealed.
func (b *Board) Open(row, col int) {
	if !b.openable(row, col) {
		return
	}
	g := b.grid
	cells := g.Cells()
	b.stack = append(b.stack[:0], g.Index(row, col))
	for len(b.stack) > 0 {
		idx := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]

		c := &cells[idx]
		if c.Revealed || c.Flagged {
			continue
		}
		c.Revealed = true
		b.revealed++
		if c.Kind == KindMine {
			b.detonated = true
			continue
		}
		b.safeOpen++
		if c.Adjacent != 0 {
			continue
		}
		r, cc := g.Coords(idx)
		g.Neighbors(r, cc, func(nr, nc int) {
			if b.openable(nr, nc) {
				b.stack = append(b.stack, g.Index(nr, nc))
			}
		})
	}
}

func (b *Board) openable(row, col int) bool {
	c := b.grid.At(row, col)
	return c != nil && !c.Revealed && !c.Flagged
}

// ToggleFlag flips the flag on a hidden cell. Out-of-range and revealed
// cells are ignored.
func (b *Board) ToggleFlag(row, col int) {
	c := b.grid.At(row, col)
	if c == nil || c.Revealed {
		return
	}
	c.Flagged = !c.Flagged
	if c.Flagged {
		b.flags++
	} else {
		b.flags--
	}
}

// IsCleared reports whether every non-mine cell has been revealed. Flags do
// not count: a flagged safe cell keeps the board uncleared.
func (b *Board) IsCleared() bool {
	return b.safeOpen == b.Rows()*b.Cols()-b.mines
}
