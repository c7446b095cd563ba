package mocks

import (
	"context"
	"io"
	"sync"

	"github.com/mcoot/gridgame-go/internal/model"
)

// ScriptedMoves is a move provider that replays a fixed list of tokens and
// then reports io.EOF
type ScriptedMoves struct {
	Tokens  []string
	Prompts []string
	next    int
}

// NewScriptedMoves creates a provider for the given tokens
func NewScriptedMoves(tokens ...string) *ScriptedMoves {
	return &ScriptedMoves{Tokens: tokens}
}

// NextMove returns the next scripted token
func (m *ScriptedMoves) NextMove(ctx context.Context, game *model.Game, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.Prompts = append(m.Prompts, prompt)
	if m.next >= len(m.Tokens) {
		return "", io.EOF
	}
	token := m.Tokens[m.next]
	m.next++
	return token, nil
}

// Remaining returns how many scripted tokens were not consumed
func (m *ScriptedMoves) Remaining() int {
	return len(m.Tokens) - m.next
}

// RecordingRenderer captures everything rendered during a run
type RecordingRenderer struct {
	Games    []*model.Game
	Messages []string
}

// RenderGame records a copy of the game
func (r *RecordingRenderer) RenderGame(game *model.Game) {
	r.Games = append(r.Games, game.Clone())
}

// Message records a user-facing message
func (r *RecordingRenderer) Message(msg string) {
	r.Messages = append(r.Messages, msg)
}

// LastMessage returns the most recent message, or empty
func (r *RecordingRenderer) LastMessage() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1]
}

// EventRecorder is an event sink that keeps every published event
type EventRecorder struct {
	mu     sync.Mutex
	Events []model.Event
}

// Publish records the event
func (r *EventRecorder) Publish(ctx context.Context, event model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, event)
}

// Types returns the recorded event types in order
func (r *EventRecorder) Types() []model.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]model.EventType, len(r.Events))
	for i, e := range r.Events {
		types[i] = e.Type
	}
	return types
}
