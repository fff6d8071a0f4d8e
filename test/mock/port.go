// Package mock provides test doubles for the fare search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, per-date prices).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
)

// SearchPort is a configurable mock implementation of domain.SearchPort.
// It supports configurable delays, errors, and per-sub-query prices for
// testing fan-out scenarios including timeouts and partial failures.
type SearchPort struct {
	offers       []domain.Offer
	pricesByDate map[string]float64
	pricesByDest map[string]float64
	err          error
	delay        time.Duration
	callCount    int
	mu           sync.Mutex
}

// NewSearchPort creates a new mock port. Configure it with the builder
// pattern methods before handing it to a use case.
func NewSearchPort() *SearchPort {
	return &SearchPort{}
}

// WithOffers configures the port to return the given offers for every call.
func (p *SearchPort) WithOffers(offers []domain.Offer) *SearchPort {
	p.offers = offers
	return p
}

// WithPricesByDate configures the port to answer each sub-query with a
// single offer priced by departure date. Dates absent from the map come
// back empty, which reads as "no fares found" to the orchestration layer.
func (p *SearchPort) WithPricesByDate(prices map[string]float64) *SearchPort {
	p.pricesByDate = prices
	return p
}

// WithPricesByDestination prices each sub-query by its destination instead
// of its date. Useful for multi-destination route comparisons.
func (p *SearchPort) WithPricesByDestination(prices map[string]float64) *SearchPort {
	p.pricesByDest = prices
	return p
}

// WithError configures the port to return the given error.
func (p *SearchPort) WithError(err error) *SearchPort {
	p.err = err
	return p
}

// WithDelay configures the port to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (p *SearchPort) WithDelay(d time.Duration) *SearchPort {
	p.delay = d
	return p
}

// Search implements domain.SearchPort. It respects context cancellation,
// applies the configured delay, and returns configured offers or error.
func (p *SearchPort) Search(ctx context.Context, spec domain.SearchSpec) ([]domain.Offer, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}

	if p.pricesByDate != nil {
		price, ok := p.pricesByDate[spec.Date]
		if !ok {
			return nil, nil
		}
		return []domain.Offer{offerFor(spec, price)}, nil
	}

	if p.pricesByDest != nil {
		price, ok := p.pricesByDest[spec.Destination]
		if !ok {
			return nil, nil
		}
		return []domain.Offer{offerFor(spec, price)}, nil
	}

	return p.offers, nil
}

// Ping reports the configured error, letting the mock double as the
// health endpoint's upstream prober.
func (p *SearchPort) Ping(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return p.err
}

// CallCount returns the number of times Search was called. This is useful
// for verifying cache hits avoided upstream round trips.
func (p *SearchPort) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *SearchPort) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure SearchPort implements domain.SearchPort at compile time.
var _ domain.SearchPort = (*SearchPort)(nil)

// offerFor builds a single realistic offer matching the sub-query.
func offerFor(spec domain.SearchSpec, price float64) domain.Offer {
	departure, _ := time.Parse(domain.DateLayout, spec.Date)
	departure = departure.Add(8 * time.Hour)

	return domain.Offer{
		ID:              spec.Origin + "-" + spec.Destination + "-" + spec.Date,
		Price:           domain.PriceInfo{Amount: price, Currency: "USD"},
		Origin:          spec.Origin,
		Destination:     spec.Destination,
		DepartureTime:   departure,
		ArrivalTime:     departure.Add(5*time.Hour + 30*time.Minute),
		DurationMinutes: 330,
		Stops:           0,
	}
}

// SampleOffers returns a slice of sample offers for testing. Prices ascend
// by 25 per offer so the first entry is always the cheapest.
func SampleOffers(origin, destination, date string, count int) []domain.Offer {
	offers := make([]domain.Offer, count)
	departure, _ := time.Parse(domain.DateLayout, date)

	for i := 0; i < count; i++ {
		dep := departure.Add(time.Duration(6+i*2) * time.Hour)
		offers[i] = domain.Offer{
			ID:              destination + "-" + date + "-" + string(rune('a'+i)),
			Price:           domain.PriceInfo{Amount: 200 + float64(i*25), Currency: "USD"},
			Origin:          origin,
			Destination:     destination,
			DepartureTime:   dep,
			ArrivalTime:     dep.Add(5 * time.Hour),
			DurationMinutes: 300,
			Stops:           i % 2,
		}
	}

	return offers
}
