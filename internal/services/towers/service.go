package towers

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/mcoot/gridgame-go/internal/model"
)

// Service provides stack-game tower operations. Towers passed in are never
// mutated; moves return new towers.
type Service struct {
	logger *slog.Logger
}

// New creates a new TowerService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// CreateTowers initializes towers with every disk on the first one
func (s *Service) CreateTowers(names string, disks int) (model.Towers, error) {
	if disks < 1 || len([]rune(names)) < 2 {
		return nil, model.ErrInvalidConfig
	}
	seen := make(map[rune]bool)
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate tower %q", model.ErrInvalidConfig, name)
		}
		seen[name] = true
	}
	return model.NewTowers(names, disks), nil
}

// Target returns the fully ordered stack a solved tower must hold
func (s *Service) Target(disks int) []int {
	return model.SolvedTower(disks)
}

// ApplyStackMove moves the top disk of from onto to
func (s *Service) ApplyStackMove(towers model.Towers, from, to rune) (model.Towers, error) {
	src, dst := towers.Index(from), towers.Index(to)
	if src < 0 {
		return nil, fmt.Errorf("%w: no tower %q", model.ErrMalformedInput, from)
	}
	if dst < 0 {
		return nil, fmt.Errorf("%w: no tower %q", model.ErrMalformedInput, to)
	}
	if src == dst {
		return nil, fmt.Errorf("%w: source and destination are both %q", model.ErrMalformedInput, from)
	}

	disk, ok := towers[src].Top()
	if !ok {
		return nil, model.ErrEmptySource
	}
	if top, ok := towers[dst].Top(); ok && top < disk {
		return nil, model.ErrRuleViolation
	}

	next := towers.Clone()
	next[src].Disks = next[src].Disks[:len(next[src].Disks)-1]
	next[dst].Disks = append(next[dst].Disks, disk)

	s.logger.Debug("disk moved",
		slog.Int("disk", disk),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
	)
	return next, nil
}

// IsSolved returns true if any tower other than the starting one holds the
// target stack
func (s *Service) IsSolved(towers model.Towers, target []int) bool {
	for i := 1; i < len(towers); i++ {
		if slices.Equal(towers[i].Disks, target) {
			return true
		}
	}
	return false
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateTowers(names string, disks int) (model.Towers, error)
	Target(disks int) []int
	ApplyStackMove(towers model.Towers, from, to rune) (model.Towers, error)
	IsSolved(towers model.Towers, target []int) bool
}

var _ ServiceInterface = (*Service)(nil)
