package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestMockClock(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)

	assert.Equal(t, start, clock.Now())

	clock.Advance(5 * time.Minute)
	assert.Equal(t, start.Add(5*time.Minute), clock.Now())

	moved := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(moved)
	assert.Equal(t, moved, clock.Now())
}
