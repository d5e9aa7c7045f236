package factory

import (
	"time"

	"github.com/mcubed/cubed/internal/dependencies/mocks"
	"github.com/mcubed/cubed/internal/services/auth"
	"github.com/mcubed/cubed/internal/storage"
	"github.com/mcubed/cubed/internal/storage/memory"
	"github.com/mcubed/cubed/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App over the memory store with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithDriver(memory.New())
}

// NewTestAppWithDriver creates a test App over the given driver
func NewTestAppWithDriver(driver storage.Driver) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(driver, mockClock, mockRandom, auth.DefaultConfig(), testutil.NopLogger())
	if err != nil {
		// The mock random source never fails unless told to
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
