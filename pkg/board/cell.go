package board

// Kind tags what a cell holds.
type Kind uint8

const (
	// KindEmpty is a safe cell; Cell.Adjacent carries its mine count.
	KindEmpty Kind = iota
	// KindMine is a mine.
	KindMine
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindMine:
		return "mine"
	default:
		return "unknown"
	}
}

// Cell is one grid position.
type Cell struct {
	Kind Kind
	// Adjacent is the number of mines among the up to 8 neighbours. Always
	// 0 for a mine.
	Adjacent int
	Revealed bool
	Flagged  bool
}

// IsMine reports whether the cell holds a mine.
func (c Cell) IsMine() bool { return c.Kind == KindMine }

// Panel classifies a cell for rendering.
type Panel uint8

const (
	// PanelHidden is a concealed, unflagged cell.
	PanelHidden Panel = iota
	// PanelFlagged is a concealed cell carrying a flag.
	PanelFlagged
	// PanelMine is a revealed mine.
	PanelMine
	// PanelOpen is a revealed safe cell showing its adjacent count.
	PanelOpen
)

// Panel returns the rendering classification of the cell. For PanelOpen the
// count is c.Adjacent.
func (c Cell) Panel() Panel {
	switch {
	case c.Flagged:
		return PanelFlagged
	case !c.Revealed:
		return PanelHidden
	case c.Kind == KindMine:
		return PanelMine
	default:
		return PanelOpen
	}
}

// Pos is a 0-based (row, col) coordinate.
type Pos struct {
	Row, Col int
}
