package factory

import (
	"time"

	"github.com/mcoot/gridgame-go/internal/dependencies/mocks"
	"github.com/mcoot/gridgame-go/internal/storage/memory"
	"github.com/mcoot/gridgame-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	Events     *mocks.EventRecorder
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	events := &mocks.EventRecorder{}

	app := newWithDependencies(store, mockClock, mockRandom, events, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Events:     events,
	}
}

// HanoiSolution returns the optimal token sequence moving disks from the
// first tower to the last
func HanoiSolution(disks int, from, via, to rune) []string {
	if disks == 0 {
		return nil
	}
	moves := HanoiSolution(disks-1, from, to, via)
	moves = append(moves, string([]rune{from, to}))
	return append(moves, HanoiSolution(disks-1, via, from, to)...)
}
