package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/gridgame-go/internal/dependencies/clock"
	"github.com/mcoot/gridgame-go/internal/dependencies/random"
	"github.com/mcoot/gridgame-go/internal/services/board"
	"github.com/mcoot/gridgame-go/internal/services/game"
	"github.com/mcoot/gridgame-go/internal/services/ledger"
	"github.com/mcoot/gridgame-go/internal/services/towers"
	"github.com/mcoot/gridgame-go/internal/storage"
	"github.com/mcoot/gridgame-go/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	BoardService   *board.Service
	TowerService   *towers.Service
	GameController *game.Controller

	// Ledger is nil unless a ledger path was configured
	Ledger *ledger.Ledger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// LedgerPath is a text file that receives one line per game event (optional)
	LedgerPath string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var (
		l    *ledger.Ledger
		sink game.EventSink = game.NopSink{}
	)
	if cfg.LedgerPath != "" {
		opened, err := ledger.Open(cfg.LedgerPath)
		if err != nil {
			return nil, err
		}
		l = opened
		sink = opened
	}

	app := newWithDependencies(memory.New(), clock.New(), random.New(), sink, logger)
	app.Ledger = l
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, sink game.EventSink, logger *slog.Logger) *App {
	boardService := board.New(logger)
	towerService := towers.New(logger)
	gameController := game.NewController(store, boardService, towerService, sink, clk, rnd, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Logger:         logger,
		BoardService:   boardService,
		TowerService:   towerService,
		GameController: gameController,
	}
}

// NewRunner creates a turn loop for this app's controller
func (a *App) NewRunner(moves game.MoveProvider, renderer game.Renderer) *game.Runner {
	return game.NewRunner(a.GameController, moves, renderer, a.Clock, a.Logger)
}

// Close releases the ledger file, if any
func (a *App) Close() error {
	if a.Ledger == nil {
		return nil
	}
	return a.Ledger.Close()
}
