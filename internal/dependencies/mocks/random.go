package mocks

import (
	"fmt"

	"github.com/mcoot/gridgame-go/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// StringResults is a queue of results to return from String
	StringResults []string
	stringIndex   int
	calls         int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// String returns the next queued result. Once the queue is exhausted it
// returns a deterministic sequence so ids stay unique.
func (r *MockRandom) String(length int, alphabet string) string {
	r.calls++
	if r.stringIndex >= len(r.StringResults) {
		return fmt.Sprintf("MOCK%04d", r.calls)
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}
