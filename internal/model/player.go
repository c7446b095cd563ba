package model

// Cell is the state of a single board position
type Cell uint8

const (
	CellEmpty   Cell = iota
	CellPlayerA      // X, always moves first
	CellPlayerB      // O
)

// Player aliases for readability at call sites that talk about turns
const (
	PlayerA = CellPlayerA
	PlayerB = CellPlayerB
)

// IsPlayer returns true if the cell value belongs to one of the two players
func (c Cell) IsPlayer() bool {
	return c == CellPlayerA || c == CellPlayerB
}

// Other returns the opposing player, or CellEmpty for non-player values
func (c Cell) Other() Cell {
	switch c {
	case CellPlayerA:
		return CellPlayerB
	case CellPlayerB:
		return CellPlayerA
	default:
		return CellEmpty
	}
}

// String returns the display glyph for the cell
func (c Cell) String() string {
	switch c {
	case CellPlayerA:
		return "X"
	case CellPlayerB:
		return "O"
	default:
		return "."
	}
}
