package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/gridgame-go/internal/dependencies/clock"
	"github.com/mcoot/gridgame-go/internal/dependencies/random"
	"github.com/mcoot/gridgame-go/internal/model"
	"github.com/mcoot/gridgame-go/internal/services/board"
	"github.com/mcoot/gridgame-go/internal/services/towers"
	"github.com/mcoot/gridgame-go/internal/storage"
)

// EventSink receives every game event the controller emits
type EventSink interface {
	Publish(ctx context.Context, event model.Event)
}

// NopSink discards events
type NopSink struct{}

// Publish does nothing
func (NopSink) Publish(context.Context, model.Event) {}

// MoveResult describes the outcome of an accepted move
type MoveResult struct {
	Game  *model.Game
	Move  model.Move
	Mover model.Cell
	Row   int // Landing row for drop moves, -1 otherwise
}

// Controller manages the game state machine and turn flow
type Controller struct {
	storage      storage.Storage
	boardService *board.Service
	towerService *towers.Service
	events       EventSink
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	towerService *towers.Service,
	events EventSink,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	if events == nil {
		events = NopSink{}
	}
	return &Controller{
		storage:      storage,
		boardService: boardService,
		towerService: towerService,
		events:       events,
		clock:        clock,
		random:       random,
		logger:       logger,
	}
}

// CreateGame initializes a new game awaiting the first player's move
func (c *Controller) CreateGame(ctx context.Context, kind model.GameKind, cfg model.GameConfig) (*model.Game, error) {
	now := c.clock.Now()
	gameID := model.GameID(c.random.String(8, random.IDAlphabet))

	game := &model.Game{
		ID:        gameID,
		Kind:      kind,
		State:     model.GameStateAwaitingMove,
		Config:    cfg,
		Turn:      model.PlayerA,
		Winner:    model.CellEmpty,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch kind {
	case model.GameKindFourInARow:
		b, err := c.boardService.CreateBoard(cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		game.Board = b
	case model.GameKindHanoi:
		t, err := c.towerService.CreateTowers(cfg.TowerNames, cfg.Disks)
		if err != nil {
			return nil, err
		}
		game.Towers = t
		game.Target = c.towerService.Target(cfg.Disks)
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownGameKind, kind)
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.String("kind", string(kind)),
	)
	c.publish(ctx, game, model.EventGameStarted, model.CellEmpty, model.GameStartedPayload{Config: cfg})

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// SubmitMove parses a raw token from the current player and applies it.
// Rejected moves leave the stored game unchanged.
func (c *Controller) SubmitMove(ctx context.Context, gameID model.GameID, token string) (*MoveResult, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsTerminal() {
		return nil, model.ErrGameOver
	}

	move, err := ParseMove(game, token)
	if err != nil {
		c.reject(ctx, game, token, err)
		return nil, err
	}

	result, err := c.apply(ctx, game, move)
	if err != nil {
		c.reject(ctx, game, token, err)
		return nil, err
	}
	return result, nil
}

// ApplyMove applies an already parsed move for the current player
func (c *Controller) ApplyMove(ctx context.Context, gameID model.GameID, move model.Move) (*MoveResult, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsTerminal() {
		return nil, model.ErrGameOver
	}

	result, err := c.apply(ctx, game, move)
	if err != nil {
		c.reject(ctx, game, move.String(), err)
		return nil, err
	}
	return result, nil
}

// Quit ends a game without a result
func (c *Controller) Quit(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsTerminal() {
		return game, nil // Already finished
	}
	result, err := c.apply(ctx, game, model.Move{Kind: model.MoveQuit})
	if err != nil {
		return nil, err
	}
	return result.Game, nil
}

// apply validates the move against the rules and advances the state machine
func (c *Controller) apply(ctx context.Context, game *model.Game, move model.Move) (*MoveResult, error) {
	mover := game.Turn
	result := &MoveResult{Game: game, Move: move, Mover: mover, Row: -1}

	switch move.Kind {
	case model.MoveQuit:
		game.State = model.GameStateQuit
		game.UpdatedAt = c.clock.Now()
		if err := c.storage.SaveGame(ctx, game); err != nil {
			return nil, err
		}
		c.logger.Info("game quit", slog.String("game_id", string(game.ID)))
		c.publish(ctx, game, model.EventGameQuit, mover, model.GameOverPayload{MoveCount: game.MoveCount})
		return result, nil

	case model.MoveDrop:
		if game.Kind != model.GameKindFourInARow {
			return nil, fmt.Errorf("%w: drop move in a %s game", model.ErrMalformedInput, game.Kind)
		}
		row, next, err := c.boardService.ApplyDropMove(game.Board, move.Column, mover)
		if err != nil {
			return nil, err
		}
		game.Board = next
		result.Row = row

	case model.MoveStack:
		if game.Kind != model.GameKindHanoi {
			return nil, fmt.Errorf("%w: stack move in a %s game", model.ErrMalformedInput, game.Kind)
		}
		next, err := c.towerService.ApplyStackMove(game.Towers, move.From, move.To)
		if err != nil {
			return nil, err
		}
		game.Towers = next

	default:
		return nil, fmt.Errorf("%w: unknown move kind %q", model.ErrMalformedInput, move.Kind)
	}

	game.MoveCount++
	game.History = append(game.History, model.MoveRecord{
		Number: game.MoveCount,
		Player: mover,
		Move:   move,
		Row:    result.Row,
	})
	c.publish(ctx, game, model.EventMoveApplied, mover, model.MoveAppliedPayload{
		Move:       move,
		Row:        result.Row,
		MoveNumber: game.MoveCount,
	})

	c.advance(ctx, game, mover)

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return result, nil
}

// advance moves to the next player's turn or a terminal state
func (c *Controller) advance(ctx context.Context, game *model.Game, mover model.Cell) {
	var event model.EventType

	switch game.Kind {
	case model.GameKindFourInARow:
		switch {
		case c.boardService.CheckWinner(game.Board, mover):
			game.State = model.GameStateWon
			game.Winner = mover
			event = model.EventGameWon
		case c.boardService.IsDraw(game.Board):
			game.State = model.GameStateDraw
			event = model.EventGameDrawn
		default:
			game.Turn = mover.Other()
			return
		}
	case model.GameKindHanoi:
		// Single player puzzle: the turn never alternates and there is no draw
		if !c.towerService.IsSolved(game.Towers, game.Target) {
			return
		}
		game.State = model.GameStateSolved
		event = model.EventGameSolved
	}

	c.logger.Info("game completed",
		slog.String("game_id", string(game.ID)),
		slog.String("state", string(game.State)),
		slog.Int("moves", game.MoveCount),
	)
	c.publish(ctx, game, event, mover, model.GameOverPayload{Winner: game.Winner, MoveCount: game.MoveCount})
}

func (c *Controller) reject(ctx context.Context, game *model.Game, token string, err error) {
	level := slog.LevelDebug
	if !model.IsRecoverable(err) && !errors.Is(err, model.ErrGameOver) {
		level = slog.LevelWarn
	}
	c.logger.Log(ctx, level, "move rejected",
		slog.String("game_id", string(game.ID)),
		slog.String("token", token),
		slog.String("error", err.Error()),
	)
	c.publish(ctx, game, model.EventMoveRejected, game.Turn, model.MoveRejectedPayload{
		Token:  token,
		Reason: err.Error(),
	})
}

func (c *Controller) publish(ctx context.Context, game *model.Game, eventType model.EventType, player model.Cell, payload any) {
	c.events.Publish(ctx, model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		GameID:    game.ID,
		Kind:      game.Kind,
		Player:    player,
		Payload:   payload,
	})
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, kind model.GameKind, cfg model.GameConfig) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	SubmitMove(ctx context.Context, gameID model.GameID, token string) (*MoveResult, error)
	ApplyMove(ctx context.Context, gameID model.GameID, move model.Move) (*MoveResult, error)
	Quit(ctx context.Context, gameID model.GameID) (*model.Game, error)
}

var _ ControllerInterface = (*Controller)(nil)
