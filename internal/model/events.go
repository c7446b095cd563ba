package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameStarted  EventType = "game_started"
	EventMoveApplied  EventType = "move_applied"
	EventMoveRejected EventType = "move_rejected"
	EventGameWon      EventType = "game_won"
	EventGameDrawn    EventType = "game_drawn"
	EventGameSolved   EventType = "game_solved"
	EventGameQuit     EventType = "game_quit"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID
	Kind      GameKind
	Player    Cell // The player who triggered the event, CellEmpty if none
	Payload   any  // Type-specific data
}

// GameStartedPayload contains data for game started events
type GameStartedPayload struct {
	Config GameConfig
}

// MoveAppliedPayload contains data for move applied events
type MoveAppliedPayload struct {
	Move       Move
	Row        int
	MoveNumber int
}

// MoveRejectedPayload contains data for move rejected events
type MoveRejectedPayload struct {
	Token  string
	Reason string
}

// GameOverPayload contains data for won, drawn, solved and quit events
type GameOverPayload struct {
	Winner    Cell
	MoveCount int
}
