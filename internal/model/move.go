package model

import "strconv"

// MoveKind distinguishes the shapes a move token can parse to
type MoveKind string

const (
	MoveDrop  MoveKind = "drop"  // Drop a disc into a column
	MoveStack MoveKind = "stack" // Move the top disk between towers
	MoveQuit  MoveKind = "quit"  // Leave the game without a result
)

// QuitToken is the case-insensitive token that ends a game
const QuitToken = "QUIT"

// Move is a validated-shape move, not yet checked against game rules
type Move struct {
	Kind   MoveKind
	Column int  // 0-indexed, MoveDrop only
	From   rune // MoveStack only
	To     rune // MoveStack only
}

// String returns the move in the same form a player would type it
func (m Move) String() string {
	switch m.Kind {
	case MoveDrop:
		return strconv.Itoa(m.Column + 1)
	case MoveStack:
		return string([]rune{m.From, m.To})
	case MoveQuit:
		return QuitToken
	default:
		return string(m.Kind)
	}
}

// MoveRecord is one applied move in a game's history
type MoveRecord struct {
	Number int
	Player Cell
	Move   Move
	Row    int // Landing row for drop moves, -1 otherwise
}
