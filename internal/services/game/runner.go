package game

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/gridgame-go/internal/dependencies/clock"
	"github.com/mcoot/gridgame-go/internal/model"
)

// MoveProvider supplies one raw token per turn. Returning io.EOF ends the
// game as if the player had typed QUIT, and a recoverable move error such as
// model.ErrMalformedInput asks the same player again.
type MoveProvider interface {
	NextMove(ctx context.Context, game *model.Game, prompt string) (string, error)
}

// Renderer shows the game and user-facing messages
type Renderer interface {
	RenderGame(game *model.Game)
	Message(msg string)
}

// Runner drives a single game from the first prompt to a terminal state
type Runner struct {
	controller ControllerInterface
	moves      MoveProvider
	renderer   Renderer
	clock      clock.Clock
	logger     *slog.Logger
}

// NewRunner creates a turn loop over the given collaborators
func NewRunner(controller ControllerInterface, moves MoveProvider, renderer Renderer, clk clock.Clock, logger *slog.Logger) *Runner {
	return &Runner{
		controller: controller,
		moves:      moves,
		renderer:   renderer,
		clock:      clk,
		logger:     logger,
	}
}

// Run plays the game until it is won, drawn, solved or quit. Invalid moves
// are reported through the renderer and the same player is asked again.
func (r *Runner) Run(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := r.controller.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	started := r.clock.Now()

	r.renderer.RenderGame(game)

	for !game.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return game, err
		}

		token, err := r.moves.NextMove(ctx, game, PromptText(game))
		switch {
		case errors.Is(err, io.EOF):
			quit, err := r.controller.Quit(ctx, gameID)
			if err != nil {
				return game, err
			}
			game = quit
			continue
		case model.IsRecoverable(err):
			r.renderer.Message(UserMessage(game, err))
			continue
		case err != nil:
			return game, err
		}

		result, err := r.controller.SubmitMove(ctx, gameID, token)
		if err != nil {
			if !model.IsRecoverable(err) {
				return game, err
			}
			r.renderer.Message(UserMessage(game, err))
			continue
		}

		game = result.Game
		if game.State != model.GameStateQuit {
			r.renderer.RenderGame(game)
		}
	}

	r.renderer.Message(OutcomeMessage(game))

	r.logger.Info("game finished",
		slog.String("game_id", string(game.ID)),
		slog.String("state", string(game.State)),
		slog.Int("moves", game.MoveCount),
		slog.Duration("duration", clock.Since(r.clock, started)),
	)

	return game, nil
}
