// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
)

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// DateRange returns the dates from start to end inclusive, formatted with
// the service's date layout. Fails the test on a reversed or invalid range.
func DateRange(t *testing.T, start, end string) []string {
	t.Helper()
	from := MustParseDate(t, start)
	to := MustParseDate(t, end)
	if to.Before(from) {
		t.Fatalf("Reversed date range %s..%s", start, end)
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(domain.DateLayout))
	}
	return dates
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64.
// Convenience function for price ceiling tests.
func FloatPtr(f float64) *float64 {
	return &f
}

// IntPtr returns a pointer to an int.
// Convenience function for stop filter tests.
func IntPtr(i int) *int {
	return &i
}
