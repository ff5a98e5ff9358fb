package core

// Grid stores a 2D grid of values in row-major order.
type Grid[T any] struct {
	rows, cols int
	data       []T
}

// NewGrid allocates a grid with the given dimensions. Non-positive
// dimensions are clamped to 1.
func NewGrid[T any](rows, cols int) *Grid[T] {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid[T]) Index(row, col int) int { return row*g.cols + col }

// Coords is the inverse of Index.
func (g *Grid[T]) Coords(idx int) (int, int) { return idx / g.cols, idx % g.cols }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns a pointer to the value at (row, col), or nil when out of range.
func (g *Grid[T]) At(row, col int) *T {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.data[g.Index(row, col)]
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Neighbors calls fn for each in-range cell of the 8-neighbourhood of
// (row, col). The cell itself is not visited.
func (g *Grid[T]) Neighbors(row, col int, fn func(r, c int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if g.InBounds(r, c) {
				fn(r, c)
			}
		}
	}
}
