package model

// Board defaults and the run length needed to win
const (
	DefaultBoardWidth  = 7
	DefaultBoardHeight = 6
	WinLength          = 4
)

// Position identifies a cell on the board
type Position struct {
	Col int // 0-indexed from left
	Row int // 0-indexed from top
}

// Board is a fixed-size grid of cells for the drop game
type Board struct {
	Width  int
	Height int
	Cells  []Cell // Row-major: Cells[row*Width+col]
}

// NewBoard creates an empty board of the given dimensions
func NewBoard(width, height int) *Board {
	return &Board{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
}

func (b *Board) index(pos Position) int {
	return pos.Row*b.Width + pos.Col
}

// Get returns the cell at the given position, or CellEmpty if out of range
func (b *Board) Get(pos Position) Cell {
	if !b.IsValidPosition(pos) {
		return CellEmpty
	}
	return b.Cells[b.index(pos)]
}

// Set stores a cell value; out-of-range positions are ignored
func (b *Board) Set(pos Position, cell Cell) {
	if b.IsValidPosition(pos) {
		b.Cells[b.index(pos)] = cell
	}
}

// IsEmpty returns true if the cell at the given position is empty
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos) == CellEmpty
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Col >= 0 && pos.Col < b.Width && pos.Row >= 0 && pos.Row < b.Height
}

// IsValidColumn returns true if the column index is within bounds
func (b *Board) IsValidColumn(col int) bool {
	return col >= 0 && col < b.Width
}

// IsFull returns true if no cell is empty
func (b *Board) IsFull() bool {
	return b.EmptyCount() == 0
}

// EmptyCount returns the number of empty cells
func (b *Board) EmptyCount() int {
	count := 0
	for _, c := range b.Cells {
		if c == CellEmpty {
			count++
		}
	}
	return count
}

// GetRow returns a copy of the given row, left to right
func (b *Board) GetRow(row int) []Cell {
	if row < 0 || row >= b.Height {
		return nil
	}
	result := make([]Cell, b.Width)
	copy(result, b.Cells[row*b.Width:(row+1)*b.Width])
	return result
}

// GetCol returns a copy of the given column, top to bottom
func (b *Board) GetCol(col int) []Cell {
	if !b.IsValidColumn(col) {
		return nil
	}
	result := make([]Cell, b.Height)
	for row := 0; row < b.Height; row++ {
		result[row] = b.Cells[row*b.Width+col]
	}
	return result
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{Width: b.Width, Height: b.Height, Cells: cells}
}

// Snapshot returns the cells in row-major order, top row first
func (b *Board) Snapshot() [][]Cell {
	rows := make([][]Cell, b.Height)
	for row := range rows {
		rows[row] = b.GetRow(row)
	}
	return rows
}
