package middleware

import (
	"context"
	"log/slog"

	"github.com/mcoot/gridgame-go/internal/dependencies/clock"
	"github.com/mcoot/gridgame-go/internal/model"
	"github.com/mcoot/gridgame-go/internal/services/game"
)

// loggingMoves wraps a MoveProvider and logs every token it returns
type loggingMoves struct {
	next   game.MoveProvider
	clock  clock.Clock
	logger *slog.Logger
}

// LogMoves creates a MoveProvider that logs each read at debug level with
// how long the player took
func LogMoves(logger *slog.Logger, clk clock.Clock, next game.MoveProvider) game.MoveProvider {
	return &loggingMoves{next: next, clock: clk, logger: logger}
}

func (m *loggingMoves) NextMove(ctx context.Context, g *model.Game, prompt string) (string, error) {
	start := m.clock.Now()

	token, err := m.next.NextMove(ctx, g, prompt)

	attrs := []slog.Attr{
		slog.String("game_id", string(g.ID)),
		slog.Int("move_number", g.MoveCount+1),
		slog.Duration("duration", clock.Since(m.clock, start)),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	} else {
		attrs = append(attrs, slog.String("token", token))
	}
	m.logger.LogAttrs(ctx, slog.LevelDebug, "move read", attrs...)

	return token, err
}
