// Package usecase contains the orchestration logic for fare search
// operations. It fans independent sub-queries out over the upstream search
// port with cache-aside per sub-query and aggregates the outcomes.
package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/fare-search/fare-search-orchestration-service/internal/cache"
	"github.com/fare-search/fare-search-orchestration-service/internal/domain"
)

// Default fan-out bounds. MaxFanOut caps how many sub-queries one call may
// submit; MaxConcurrent caps how many upstream calls are in flight at once.
// The two are distinct concerns: the first protects the caller contract,
// the second protects the upstream.
const (
	DefaultMaxFanOut     = domain.MaxCalendarDays
	DefaultMaxConcurrent = 16
)

// ResponseCache is the shared TTL cache instantiation storing raw upstream
// responses keyed by SearchSpec cache keys.
type ResponseCache = cache.TTLCache[[]domain.Offer]

// SubQuery labels one unit of fan-out work with the identity its aggregator
// reports it under (the date for calendar searches, the destination for
// route searches).
type SubQuery struct {
	// Key is the identifying field copied into the resulting SearchOutcome
	Key string

	// Spec describes the upstream query
	Spec domain.SearchSpec
}

// FanOutCoordinator resolves batches of independent sub-queries
// concurrently, applying cache-aside per sub-query and isolating individual
// failures.
type FanOutCoordinator interface {
	// ResolveAll resolves every sub-query and returns one outcome per
	// sub-query in submission order, regardless of completion order. It
	// fails as a whole only on invalid input (empty batch, batch larger
	// than the fan-out limit); individual upstream failures are recorded
	// in their outcome and never abort sibling work.
	ResolveAll(ctx context.Context, subs []SubQuery) ([]domain.SearchOutcome, error)
}

// fanOutCoordinator implements FanOutCoordinator with a bounded goroutine
// fan-out gated by a weighted semaphore.
type fanOutCoordinator struct {
	upstream      domain.SearchPort
	cache         *ResponseCache
	maxFanOut     int
	gate          *semaphore.Weighted
	maxConcurrent int
	log           zerolog.Logger
}

// NewFanOutCoordinator creates a coordinator over the given upstream port
// and shared response cache. Non-positive bounds fall back to the defaults.
func NewFanOutCoordinator(upstream domain.SearchPort, responseCache *ResponseCache, maxFanOut, maxConcurrent int, log zerolog.Logger) FanOutCoordinator {
	if maxFanOut < 1 {
		maxFanOut = DefaultMaxFanOut
	}
	if maxConcurrent < 1 {
		maxConcurrent = DefaultMaxConcurrent
	}

	return &fanOutCoordinator{
		upstream:      upstream,
		cache:         responseCache,
		maxFanOut:     maxFanOut,
		gate:          semaphore.NewWeighted(int64(maxConcurrent)),
		maxConcurrent: maxConcurrent,
		log:           log,
	}
}

// ResolveAll implements FanOutCoordinator.ResolveAll.
func (c *fanOutCoordinator) ResolveAll(ctx context.Context, subs []SubQuery) ([]domain.SearchOutcome, error) {
	if len(subs) == 0 {
		return nil, domain.ErrEmptySpecs
	}
	if len(subs) > c.maxFanOut {
		return nil, fmt.Errorf("%w: got %d sub-queries, limit is %d", domain.ErrFanOutExceeded, len(subs), c.maxFanOut)
	}

	// Outcomes are collected by index so output order matches submission
	// order independent of completion order.
	outcomes := make([]domain.SearchOutcome, len(subs))

	var wg sync.WaitGroup
	for i, sub := range subs {
		wg.Add(1)
		go func(i int, sub SubQuery) {
			defer wg.Done()
			outcomes[i] = c.resolve(ctx, sub)
		}(i, sub)
	}
	wg.Wait()

	return outcomes, nil
}

// resolve answers one sub-query: cache hit, or live upstream call with the
// result stored back in the cache. Panics in the upstream implementation
// are recovered into a failed outcome so one bad sub-query cannot take down
// its siblings.
func (c *fanOutCoordinator) resolve(ctx context.Context, sub SubQuery) (outcome domain.SearchOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = domain.SearchOutcome{
				Key: sub.Key,
				Err: domain.NewUpstreamError(sub.Key, fmt.Errorf("sub-query panic: %v", r)),
			}
		}
	}()

	key := sub.Spec.CacheKey()
	if offers, ok := c.cache.Get(key); ok {
		c.log.Debug().Str("cache_key", key).Msg("Cache hit")
		return domain.SearchOutcome{
			Key:       sub.Key,
			Success:   true,
			Offer:     domain.CheapestOf(offers),
			FromCache: true,
		}
	}

	if err := c.gate.Acquire(ctx, 1); err != nil {
		return domain.SearchOutcome{
			Key: sub.Key,
			Err: domain.NewUpstreamError(sub.Key, err),
		}
	}
	defer c.gate.Release(1)

	offers, err := c.upstream.Search(ctx, sub.Spec)
	if err != nil {
		c.log.Warn().Str("key", sub.Key).Err(err).Msg("Upstream search failed")
		return domain.SearchOutcome{
			Key: sub.Key,
			Err: domain.NewUpstreamError(sub.Key, err),
		}
	}

	c.cache.Set(key, offers)
	c.log.Debug().Str("cache_key", key).Int("offers", len(offers)).Msg("Cache miss, stored")

	return domain.SearchOutcome{
		Key:     sub.Key,
		Success: true,
		Offer:   domain.CheapestOf(offers),
	}
}

// Ensure fanOutCoordinator implements FanOutCoordinator at compile time.
var _ FanOutCoordinator = (*fanOutCoordinator)(nil)
