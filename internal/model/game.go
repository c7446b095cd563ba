package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameKind selects the rules a game is played under
type GameKind string

const (
	GameKindFourInARow GameKind = "fourinarow"
	GameKindHanoi      GameKind = "hanoi"
)

// GameState represents the current phase of a game
type GameState string

const (
	GameStateAwaitingMove GameState = "awaiting_move" // Waiting for Turn to move
	GameStateWon          GameState = "won"           // Winner made a run of four
	GameStateDraw         GameState = "draw"          // Board full, no winner
	GameStateSolved       GameState = "solved"        // Tower rebuilt on another peg
	GameStateQuit         GameState = "quit"          // Player quit, no result
)

// GameConfig holds the construction-time settings for a game
type GameConfig struct {
	Width      int    // Drop game board width
	Height     int    // Drop game board height
	Disks      int    // Stack game disk count
	TowerNames string // Stack game tower labels, first is the start tower
}

// DefaultGameConfig returns the classic 7x6 board and five disk tower
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Width:      DefaultBoardWidth,
		Height:     DefaultBoardHeight,
		Disks:      DefaultDiskCount,
		TowerNames: DefaultTowerNames,
	}
}

// Game is the full state of one game in progress or finished
type Game struct {
	ID     GameID
	Kind   GameKind
	State  GameState
	Config GameConfig

	// Turn management
	Turn   Cell // Player to move while awaiting a move
	Winner Cell // CellEmpty unless State is won

	// Drop game
	Board *Board

	// Stack game
	Towers Towers
	Target []int

	MoveCount int
	History   []MoveRecord

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true once no further moves are accepted
func (g *Game) IsTerminal() bool {
	switch g.State {
	case GameStateWon, GameStateDraw, GameStateSolved, GameStateQuit:
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	clone := *g
	if g.Board != nil {
		clone.Board = g.Board.Clone()
	}
	if g.Towers != nil {
		clone.Towers = g.Towers.Clone()
	}
	if g.Target != nil {
		clone.Target = append([]int(nil), g.Target...)
	}
	if g.History != nil {
		clone.History = append([]MoveRecord(nil), g.History...)
	}
	return &clone
}
