package cache

import (
	"context"
	"sync"
	"time"

	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
	"github.com/trip-search/trip-offer-aggregation-service/internal/infrastructure/timeutil"
)

type memoryEntry struct {
	offers    []domain.Offer
	expiresAt time.Time
}

// MemoryCache is a process-local OfferCache with lazy expiry. Entries are
// checked against the clock on read; a stale entry is dropped on access.
// Offers are stored and served as deep copies: callers own what they get
// back, and enriching a returned offer never touches the cached entry.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	clock   timeutil.Clock
}

// NewMemoryCache creates an in-memory cache with the given TTL. A nil clock
// defaults to system time.
func NewMemoryCache(ttl time.Duration, clock timeutil.Clock) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get implements OfferCache.Get.
func (c *MemoryCache) Get(_ context.Context, params domain.SearchParams) ([]domain.Offer, bool) {
	key := Key(params)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.clock.Now().After(entry.expiresAt) {
		c.dropIfExpired(key)
		return nil, false
	}
	return cloneOffers(entry.offers), true
}

// dropIfExpired deletes the entry only if it is still expired under the
// write lock; a concurrent Set may have refreshed it since the read.
func (c *MemoryCache) dropIfExpired(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok && c.clock.Now().After(entry.expiresAt) {
		delete(c.entries, key)
	}
}

// Set implements OfferCache.Set.
func (c *MemoryCache) Set(_ context.Context, params domain.SearchParams, offers []domain.Offer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[Key(params)] = memoryEntry{
		offers:    cloneOffers(offers),
		expiresAt: c.clock.Now().Add(c.ttl),
	}
	return nil
}

func cloneOffers(offers []domain.Offer) []domain.Offer {
	out := make([]domain.Offer, len(offers))
	for i := range offers {
		out[i] = offers[i].Clone()
	}
	return out
}

// Flush implements OfferCache.Flush.
func (c *MemoryCache) Flush(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]memoryEntry)
	return nil
}

// Close implements OfferCache.Close.
func (c *MemoryCache) Close() error {
	return c.Flush(context.Background())
}

// Len reports the number of live entries, expired ones included until read.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ OfferCache = (*MemoryCache)(nil)
