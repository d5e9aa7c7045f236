package mocks

import (
	"bytes"

	"github.com/mcubed/cubed/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// BytesResults is a queue of results to return from Bytes
	BytesResults [][]byte
	bytesIndex   int

	// Err, when set, is returned by every call
	Err error
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Bytes returns the next queued result, or n repetitions of 'x' once the queue is drained
func (r *MockRandom) Bytes(n int) ([]byte, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if r.bytesIndex >= len(r.BytesResults) {
		return bytes.Repeat([]byte("x"), n), nil
	}
	result := r.BytesResults[r.bytesIndex]
	r.bytesIndex++
	return result, nil
}

// QueueBytes adds values to the Bytes result queue
func (r *MockRandom) QueueBytes(values ...[]byte) {
	r.BytesResults = append(r.BytesResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.BytesResults = nil
	r.bytesIndex = 0
	r.Err = nil
}
