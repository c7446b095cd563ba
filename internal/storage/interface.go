package storage

import (
	"context"

	"github.com/mcoot/gridgame-go/internal/model"
)

// Storage defines the interface for keeping games within a process
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
}
