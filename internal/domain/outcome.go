package domain

// SearchOutcome is the tagged per-sub-query result produced exactly once per
// SearchSpec by the fan-out coordinator and consumed exactly once by an
// aggregator. A failed sub-query never aborts its siblings; the failure is
// recorded here instead.
type SearchOutcome struct {
	// Key identifies the sub-query within its batch (the date for calendar
	// searches, the destination for route searches)
	Key string `json:"key"`

	// Success reports whether the sub-query resolved without error
	Success bool `json:"success"`

	// Offer is the cheapest offer found, or nil when the sub-query failed
	// or the upstream returned no fares
	Offer *Offer `json:"offer,omitempty"`

	// FromCache reports whether the result came from the response cache
	// without touching the network
	FromCache bool `json:"fromCache"`

	// Err holds the upstream failure when Success is false
	Err error `json:"-"`
}

// HasPrice reports whether the outcome carries a defined price.
func (o SearchOutcome) HasPrice() bool {
	return o.Success && o.Offer != nil
}
