package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gridgame-go/internal/dependencies/mocks"
	"github.com/mcoot/gridgame-go/internal/model"
	"github.com/mcoot/gridgame-go/internal/services/board"
	"github.com/mcoot/gridgame-go/internal/services/towers"
	"github.com/mcoot/gridgame-go/internal/storage/memory"
	"github.com/mcoot/gridgame-go/internal/testutil"
)

type RunnerSuite struct {
	suite.Suite
	clock      *mocks.MockClock
	controller *Controller
	renderer   *mocks.RecordingRenderer
	ctx        context.Context
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func (s *RunnerSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.controller = NewController(memory.New(), board.New(logger), towers.New(logger), nil, s.clock, mocks.NewMockRandom(), logger)
	s.renderer = &mocks.RecordingRenderer{}
	s.ctx = context.Background()
}

func (s *RunnerSuite) run(kind model.GameKind, cfg model.GameConfig, moves *mocks.ScriptedMoves) (*model.Game, error) {
	game, err := s.controller.CreateGame(s.ctx, kind, cfg)
	s.Require().NoError(err)
	runner := NewRunner(s.controller, moves, s.renderer, s.clock, testutil.NopLogger())
	return runner.Run(s.ctx, game.ID)
}

func (s *RunnerSuite) TestPlaysDropGameToWin() {
	moves := mocks.NewScriptedMoves("1", "1", "2", "2", "3", "3", "4", "5")

	game, err := s.run(model.GameKindFourInARow, model.DefaultGameConfig(), moves)
	s.Require().NoError(err)

	s.Equal(model.GameStateWon, game.State)
	s.Equal(model.PlayerA, game.Winner)
	s.Equal(1, moves.Remaining())
	s.Equal("Player X has won!", s.renderer.LastMessage())
	// Initial render plus one per accepted move
	s.Len(s.renderer.Games, 8)
}

func (s *RunnerSuite) TestInvalidMovesRepromptSamePlayer() {
	moves := mocks.NewScriptedMoves("9", "hello", "1", "QUIT")

	game, err := s.run(model.GameKindFourInARow, model.DefaultGameConfig(), moves)
	s.Require().NoError(err)

	s.Equal(model.GameStateQuit, game.State)
	s.Equal(1, game.MoveCount)
	s.Equal([]string{
		"Enter a number from 1 to 7.",
		"Enter a number from 1 to 7.",
		"Thanks for playing!",
	}, s.renderer.Messages)
	s.Equal([]string{
		"Player X, enter 1 to 7 or QUIT:",
		"Player X, enter 1 to 7 or QUIT:",
		"Player X, enter 1 to 7 or QUIT:",
		"Player O, enter 1 to 7 or QUIT:",
	}, moves.Prompts)
}

func (s *RunnerSuite) TestColumnFullMessage() {
	moves := mocks.NewScriptedMoves("1", "1", "1", "1", "1", "1", "1", "2")

	game, err := s.run(model.GameKindFourInARow, model.DefaultGameConfig(), moves)
	s.Require().NoError(err)

	s.Contains(s.renderer.Messages, "That column is full, select another one.")
	s.Equal(7, game.MoveCount)
}

func (s *RunnerSuite) TestEndOfInputQuits() {
	moves := mocks.NewScriptedMoves("4")

	game, err := s.run(model.GameKindFourInARow, model.DefaultGameConfig(), moves)
	s.Require().NoError(err)

	s.Equal(model.GameStateQuit, game.State)
	s.Equal("Thanks for playing!", s.renderer.LastMessage())
}

func (s *RunnerSuite) TestEndOfInputPublishesQuit() {
	events := &mocks.EventRecorder{}
	logger := testutil.NopLogger()
	controller := NewController(memory.New(), board.New(logger), towers.New(logger), events, s.clock, mocks.NewMockRandom(), logger)
	game, err := controller.CreateGame(s.ctx, model.GameKindHanoi, model.DefaultGameConfig())
	s.Require().NoError(err)

	runner := NewRunner(controller, mocks.NewScriptedMoves(), s.renderer, s.clock, logger)
	final, err := runner.Run(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Equal(model.GameStateQuit, final.State)
	s.Equal([]model.EventType{model.EventGameStarted, model.EventGameQuit}, events.Types())
	// Only the initial render, quitting does not redraw
	s.Len(s.renderer.Games, 1)
}

func (s *RunnerSuite) TestRecoverableProviderErrorReprompts() {
	moves := &failingMoves{
		errs: []error{
			fmt.Errorf("%w: line too long", model.ErrMalformedInput),
		},
		next: mocks.NewScriptedMoves("QUIT"),
	}
	game, err := s.controller.CreateGame(s.ctx, model.GameKindFourInARow, model.DefaultGameConfig())
	s.Require().NoError(err)

	runner := NewRunner(s.controller, moves, s.renderer, s.clock, testutil.NopLogger())
	final, err := runner.Run(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Equal(model.GameStateQuit, final.State)
	s.Equal([]string{"Enter a number from 1 to 7.", "Thanks for playing!"}, s.renderer.Messages)
}

func (s *RunnerSuite) TestFatalProviderErrorStopsRun() {
	broken := errors.New("terminal closed")
	moves := &failingMoves{errs: []error{broken}, next: mocks.NewScriptedMoves()}
	game, err := s.controller.CreateGame(s.ctx, model.GameKindFourInARow, model.DefaultGameConfig())
	s.Require().NoError(err)

	runner := NewRunner(s.controller, moves, s.renderer, s.clock, testutil.NopLogger())
	_, err = runner.Run(s.ctx, game.ID)
	s.ErrorIs(err, broken)
}

// failingMoves returns the queued errors before delegating to next
type failingMoves struct {
	errs []error
	next *mocks.ScriptedMoves
}

func (m *failingMoves) NextMove(ctx context.Context, game *model.Game, prompt string) (string, error) {
	if len(m.errs) > 0 {
		err := m.errs[0]
		m.errs = m.errs[1:]
		return "", err
	}
	return m.next.NextMove(ctx, game, prompt)
}

func (s *RunnerSuite) TestDrawnGame() {
	moves := mocks.NewScriptedMoves(strings.Split(drawSequence, ",")...)

	game, err := s.run(model.GameKindFourInARow, model.DefaultGameConfig(), moves)
	s.Require().NoError(err)

	s.Equal(model.GameStateDraw, game.State)
	s.Equal("There is a tie!", s.renderer.LastMessage())
}

func (s *RunnerSuite) TestSolvesHanoi() {
	cfg := model.DefaultGameConfig()
	cfg.Disks = 2
	moves := mocks.NewScriptedMoves("BC", "AB", "AB", "AC", "BC")

	game, err := s.run(model.GameKindHanoi, cfg, moves)
	s.Require().NoError(err)

	s.Equal(model.GameStateSolved, game.State)
	s.Equal(3, game.MoveCount)
	s.Equal([]string{
		"You selected a tower with no disks.",
		"Can't put larger disks on top of smaller ones.",
		"You have solved the puzzle! Well done!",
	}, s.renderer.Messages)
}

func (s *RunnerSuite) TestCancelledContext() {
	game, err := s.controller.CreateGame(s.ctx, model.GameKindFourInARow, model.DefaultGameConfig())
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	runner := NewRunner(s.controller, mocks.NewScriptedMoves("1"), s.renderer, s.clock, testutil.NopLogger())
	_, err = runner.Run(ctx, game.ID)
	s.True(errors.Is(err, context.Canceled))
}

func (s *RunnerSuite) TestUnknownGame() {
	runner := NewRunner(s.controller, mocks.NewScriptedMoves(), s.renderer, s.clock, testutil.NopLogger())
	_, err := runner.Run(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}
