// Package cache provides the shared TTL response cache used by all
// orchestration entry points. It is the single point of cache-aside logic:
// bounded LRU storage, lazy time-based expiry, and stats introspection.
package cache

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/fare-search/fare-search-orchestration-service/internal/infrastructure/timeutil"
)

// Default cache sizing, matching the daemon's historical configuration.
const (
	DefaultCapacity = 100
	DefaultTTL      = 5 * time.Minute
)

// entry pairs a cached value with its storage time for lazy expiry.
type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTLCache is a bounded, time-expiring key-value store safe for concurrent
// use by many fan-out workers. Capacity pressure evicts the least recently
// used entry; expiry is lazy (checked on read, expired entries are treated
// as absent and removed). No operation blocks beyond the internal lock.
type TTLCache[V any] struct {
	mu       sync.Mutex
	entries  *lru.Cache[string, entry[V]]
	ttl      time.Duration
	capacity int
	clock    timeutil.Clock
	hits     uint64
	misses   uint64
}

// New creates a TTLCache with the given capacity and TTL. The clock is
// injected so tests can drive expiry deterministically; pass
// timeutil.NewRealClock() in production.
func New[V any](capacity int, ttl time.Duration, clock timeutil.Clock) (*TTLCache[V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("cache capacity must be at least 1, got %d", capacity)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %s", ttl)
	}

	entries, err := lru.New[string, entry[V]](capacity)
	if err != nil {
		return nil, fmt.Errorf("create lru store: %w", err)
	}

	return &TTLCache[V]{
		entries:  entries,
		ttl:      ttl,
		capacity: capacity,
		clock:    clock,
	}, nil
}

// MustNew creates a TTLCache or panics. Use in main() and tests where the
// parameters are static.
func MustNew[V any](capacity int, ttl time.Duration, clock timeutil.Clock) *TTLCache[V] {
	c, err := New[V](capacity, ttl, clock)
	if err != nil {
		panic(fmt.Sprintf("failed to create cache: %v", err))
	}
	return c
}

// Get returns the value stored under key. An entry older than the TTL is
// treated as absent and evicted before returning.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V

	e, ok := c.entries.Get(key)
	if !ok {
		c.misses++
		return zero, false
	}

	if c.clock.Now().Sub(e.storedAt) > c.ttl {
		c.entries.Remove(key)
		c.misses++
		return zero, false
	}

	c.hits++
	return e.value, true
}

// Set inserts or overwrites the value under key. When the insertion pushes
// the cache over capacity the least recently used entry is evicted.
func (c *TTLCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Add(key, entry[V]{value: value, storedAt: c.clock.Now()})
}

// Clear removes all entries and returns the number removed.
func (c *TTLCache[V]) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := c.entries.Len()
	c.entries.Purge()
	return count
}

// Stats is a read-only snapshot of the cache for diagnostics.
type Stats struct {
	// EntryCount is the current number of stored entries
	EntryCount int `json:"entryCount"`

	// Capacity is the configured maximum entry count
	Capacity int `json:"capacity"`

	// TTLSeconds is the configured entry lifetime in seconds
	TTLSeconds int `json:"ttlSeconds"`

	// Hits is the total number of cache hits since start
	Hits uint64 `json:"hits"`

	// Misses is the total number of cache misses since start
	Misses uint64 `json:"misses"`

	// HitRate is the hit percentage over all lookups (0 when none)
	HitRate float64 `json:"hitRate"`
}

// Stats returns a snapshot of the cache state and counters.
func (c *TTLCache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	var rate float64
	if total > 0 {
		rate = float64(c.hits) / float64(total) * 100
	}

	return Stats{
		EntryCount: c.entries.Len(),
		Capacity:   c.capacity,
		TTLSeconds: int(c.ttl / time.Second),
		Hits:       c.hits,
		Misses:     c.misses,
		HitRate:    rate,
	}
}
