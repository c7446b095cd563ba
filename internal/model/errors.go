package model

import "errors"

// Common errors used across the application
var (
	// Move errors, all recoverable by re-prompting the same player
	ErrInvalidColumn  = errors.New("column out of range")
	ErrColumnFull     = errors.New("column is full")
	ErrEmptySource    = errors.New("source tower has no disks")
	ErrRuleViolation  = errors.New("cannot place a larger disk on a smaller one")
	ErrMalformedInput = errors.New("malformed move")

	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrGameOver        = errors.New("game is already over")
	ErrUnknownGameKind = errors.New("unknown game kind")
	ErrInvalidPlayer   = errors.New("invalid player")
	ErrInvalidConfig   = errors.New("invalid game config")
)

// IsRecoverable returns true for move errors that leave the game unchanged
// and should re-prompt the same player
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrInvalidColumn) ||
		errors.Is(err, ErrColumnFull) ||
		errors.Is(err, ErrEmptySource) ||
		errors.Is(err, ErrRuleViolation) ||
		errors.Is(err, ErrMalformedInput)
}
