package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fare-search/fare-search-orchestration-service/internal/cache"
	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
)

// FareSearchUseCase defines the orchestration entry points exposed to the
// transport layer. Every method validates and bounds its input before any
// upstream work starts, resolves sub-queries through the shared fan-out
// coordinator, and aggregates the outcomes.
type FareSearchUseCase interface {
	// CheapestDay finds the cheapest day to fly a route within a date window.
	CheapestDay(ctx context.Context, q domain.CheapestDayQuery) (*domain.CheapestDayResult, error)

	// CheapestRoute finds the cheapest of several candidate destinations on
	// a single date.
	CheapestRoute(ctx context.Context, q domain.CheapestRouteQuery) (*domain.CheapestRouteResult, error)

	// FlexibleDates finds the cheapest day within a symmetric window around
	// a target date.
	FlexibleDates(ctx context.Context, q domain.FlexibleDatesQuery) (*domain.FlexibleDatesResult, error)

	// BatchSearch resolves up to MaxBatchItems heterogeneous single-day
	// searches, reporting per-item outcomes in input order.
	BatchSearch(ctx context.Context, items []domain.BatchSearchItem) (*domain.BatchSearchResult, error)

	// PriceCheck returns the cheapest offer for one route and date.
	PriceCheck(ctx context.Context, q domain.PriceCheckQuery) (*domain.PriceCheckResult, error)

	// CacheStats returns a read-only snapshot of the response cache.
	CacheStats() cache.Stats

	// CacheClear removes all cached responses and returns the count removed.
	CacheClear() int
}

// Config contains configuration options for the use case.
type Config struct {
	// MaxFanOut caps the number of sub-queries one call may submit
	MaxFanOut int

	// MaxConcurrent caps the number of upstream calls in flight at once
	MaxConcurrent int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxFanOut:     DefaultMaxFanOut,
		MaxConcurrent: DefaultMaxConcurrent,
	}
}

// fareSearchUseCase implements FareSearchUseCase.
type fareSearchUseCase struct {
	coordinator FanOutCoordinator
	cache       *ResponseCache
	log         zerolog.Logger
}

// NewFareSearchUseCase creates a FareSearchUseCase over the given upstream
// port and shared response cache. If config is nil, defaults are used.
func NewFareSearchUseCase(upstream domain.SearchPort, responseCache *ResponseCache, config *Config, log zerolog.Logger) FareSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.MaxFanOut > 0 {
			cfg.MaxFanOut = config.MaxFanOut
		}
		if config.MaxConcurrent > 0 {
			cfg.MaxConcurrent = config.MaxConcurrent
		}
	}

	return &fareSearchUseCase{
		coordinator: NewFanOutCoordinator(upstream, responseCache, cfg.MaxFanOut, cfg.MaxConcurrent, log),
		cache:       responseCache,
		log:         log,
	}
}

// PriceCheck implements FareSearchUseCase.PriceCheck. It is the single-spec
// degenerate case of the fan-out; batch items and calendar sweeps share its
// cache key scheme, so a warm calendar answers later price checks for free.
func (uc *fareSearchUseCase) PriceCheck(ctx context.Context, q domain.PriceCheckQuery) (*domain.PriceCheckResult, error) {
	q.SetDefaults()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	spec := priceCheckSpec(q.Origin, q.Destination, q.Date, q.Adults, q.MaxStops)
	outcomes, err := uc.coordinator.ResolveAll(ctx, []SubQuery{{Key: q.Date, Spec: spec}})
	if err != nil {
		return nil, err
	}

	out := outcomes[0]
	if !out.Success {
		return nil, out.Err
	}

	return &domain.PriceCheckResult{
		Origin:      q.Origin,
		Destination: q.Destination,
		Date:        q.Date,
		Offer:       out.Offer,
		FromCache:   out.FromCache,
	}, nil
}

// CacheStats implements FareSearchUseCase.CacheStats.
func (uc *fareSearchUseCase) CacheStats() cache.Stats {
	return uc.cache.Stats()
}

// CacheClear implements FareSearchUseCase.CacheClear.
func (uc *fareSearchUseCase) CacheClear() int {
	count := uc.cache.Clear()
	uc.log.Info().Int("cleared", count).Msg("Response cache cleared")
	return count
}

// priceCheckSpec builds the normalized single-day search spec shared by
// every entry point that resolves per-date or per-destination sub-queries.
func priceCheckSpec(origin, destination, date string, adults int, maxStops *int) domain.SearchSpec {
	spec := domain.SearchSpec{
		Kind:        domain.KindPriceCheck,
		Origin:      origin,
		Destination: destination,
		Date:        date,
		Adults:      adults,
		MaxStops:    maxStops,
	}
	spec.SetDefaults()
	return spec
}

// countOutcomes tallies the bookkeeping counts over a batch of outcomes.
func countOutcomes(outcomes []domain.SearchOutcome) domain.SearchCounts {
	counts := domain.SearchCounts{Searched: len(outcomes)}
	for _, o := range outcomes {
		if o.FromCache {
			counts.CacheHits++
		}
		if o.Success {
			counts.Succeeded++
		}
	}
	return counts
}

// Ensure fareSearchUseCase implements FareSearchUseCase at compile time.
var _ FareSearchUseCase = (*fareSearchUseCase)(nil)
