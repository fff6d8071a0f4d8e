package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for request-level validation. These fail the whole call
// before any upstream work starts and are surfaced to the caller verbatim.
var (
	// ErrInvalidRequest indicates malformed input parameters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidRange indicates a date range that is reversed or wider than
	// the calendar search allows.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrEmptyDestinations indicates a route search with no candidate
	// destinations.
	ErrEmptyDestinations = errors.New("destinations list is empty")

	// ErrTooManyDestinations indicates a route search exceeding the
	// destination cap.
	ErrTooManyDestinations = errors.New("too many destinations")

	// ErrFlexibilityTooLarge indicates a flexible-date window wider than the
	// allowed flexibility.
	ErrFlexibilityTooLarge = errors.New("flexibility window too large")

	// ErrEmptyBatch indicates a batch search with no items.
	ErrEmptyBatch = errors.New("batch is empty")

	// ErrTooManyBatchItems indicates a batch search exceeding the item cap.
	ErrTooManyBatchItems = errors.New("too many batch items")

	// ErrEmptySpecs indicates a fan-out call with no sub-queries. This is a
	// caller bug, not a degraded result.
	ErrEmptySpecs = errors.New("no search specs provided")

	// ErrFanOutExceeded indicates a fan-out call with more sub-queries than
	// the coordinator accepts.
	ErrFanOutExceeded = errors.New("fan-out limit exceeded")
)

// UpstreamError wraps a failure of one upstream sub-query with the identity
// of the spec that failed. It is recorded inside a SearchOutcome and never
// aborts sibling sub-queries.
type UpstreamError struct {
	// Key identifies the failed sub-query (date or destination)
	Key string

	// Err is the underlying upstream error
	Err error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream search %q: %v", e.Key, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates an UpstreamError for the given sub-query key.
func NewUpstreamError(key string, err error) *UpstreamError {
	return &UpstreamError{Key: key, Err: err}
}
