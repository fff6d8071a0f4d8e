// Package timeutil provides time-related utilities for testability.
package timeutil

import "time"

// Clock provides an abstraction over time.Now() so that TTL expiry can be
// driven deterministically in tests. Use RealClock in production and
// MockClock in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock uses the actual system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock returns a controllable time for testing. It is not safe for
// concurrent mutation; advance it between assertions, not during them.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a mock clock fixed at the given time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// Now returns the mock's current time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Set moves the mock clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the mock clock forward by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

// Ensure interfaces are implemented.
var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
