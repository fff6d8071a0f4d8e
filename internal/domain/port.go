package domain

import "context"

//go:generate mockgen -source=port.go -destination=mock_port.go -package=domain

// SearchPort is the capability interface for one upstream search round trip.
// Implementations own their connection pooling, auth, and timeout concerns
// and must be safe for concurrent use by many fan-out workers. Individual
// calls may fail; the orchestration layer records such failures per
// sub-query instead of propagating them.
type SearchPort interface {
	// Search executes one upstream query and returns the matching offers.
	// An empty slice with a nil error means the search succeeded but found
	// no fares.
	Search(ctx context.Context, spec SearchSpec) ([]Offer, error)
}
