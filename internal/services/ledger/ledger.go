package ledger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/gridgame-go/internal/model"
)

// Ledger writes one text line per game event to a file or writer
type Ledger struct {
	logger *slog.Logger
	closer io.Closer
}

// New creates a ledger writing debug-level text records to w
func New(w io.Writer) *Ledger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &Ledger{logger: slog.New(handler)}
}

// Open appends to the ledger file at path, creating it if needed
func Open(path string) (*Ledger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	l := New(f)
	l.closer = f
	return l, nil
}

// Publish records the event
func (l *Ledger) Publish(ctx context.Context, event model.Event) {
	attrs := []slog.Attr{
		slog.String("game_id", string(event.GameID)),
		slog.String("kind", string(event.Kind)),
	}
	if event.Player.IsPlayer() {
		attrs = append(attrs, slog.String("player", event.Player.String()))
	}

	level := slog.LevelInfo
	switch p := event.Payload.(type) {
	case model.GameStartedPayload:
		attrs = append(attrs,
			slog.Int("width", p.Config.Width),
			slog.Int("height", p.Config.Height),
			slog.Int("disks", p.Config.Disks),
		)
	case model.MoveAppliedPayload:
		level = slog.LevelDebug
		attrs = append(attrs,
			slog.Int("move_number", p.MoveNumber),
			slog.String("move", p.Move.String()),
		)
		if p.Row >= 0 {
			attrs = append(attrs, slog.Int("row", p.Row))
		}
	case model.MoveRejectedPayload:
		level = slog.LevelWarn
		attrs = append(attrs,
			slog.String("token", p.Token),
			slog.String("reason", p.Reason),
		)
	case model.GameOverPayload:
		attrs = append(attrs, slog.Int("moves", p.MoveCount))
		if p.Winner.IsPlayer() {
			attrs = append(attrs, slog.String("winner", p.Winner.String()))
		}
	}

	l.logger.LogAttrs(ctx, level, string(event.Type), attrs...)
}

// Close closes the underlying file when the ledger owns one
func (l *Ledger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
