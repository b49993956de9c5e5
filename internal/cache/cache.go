// Package cache provides result caching for offer searches. A cache entry is
// keyed by the full search parameter set, so two searches differing in any
// parameter never share an entry.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/trip-search/trip-offer-aggregation-service/internal/domain"
)

// DefaultTTL is how long a cached offer list stays valid.
const DefaultTTL = 5 * time.Minute

// keyPrefix namespaces offer entries in shared backends.
const keyPrefix = "offers:"

// OfferCache stores canonical offer lists per search.
type OfferCache interface {
	// Get returns the cached offers for the given search, if present and
	// unexpired.
	Get(ctx context.Context, params domain.SearchParams) ([]domain.Offer, bool)

	// Set stores the offers for the given search.
	Set(ctx context.Context, params domain.SearchParams, offers []domain.Offer) error

	// Flush drops every offer entry.
	Flush(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// Key derives the deterministic cache key for a search. The parameters are
// serialized in a fixed field order and hashed, so equal searches always map
// to the same key.
func Key(params domain.SearchParams) string {
	data, _ := json.Marshal(params)
	hash := sha256.Sum256(data)
	return keyPrefix + hex.EncodeToString(hash[:])
}

// NoOpCache never hits and discards every write. Used when caching is
// disabled.
type NoOpCache struct{}

// NewNoOpCache creates a cache that stores nothing.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (*NoOpCache) Get(context.Context, domain.SearchParams) ([]domain.Offer, bool) {
	return nil, false
}

func (*NoOpCache) Set(context.Context, domain.SearchParams, []domain.Offer) error {
	return nil
}

func (*NoOpCache) Flush(context.Context) error { return nil }

func (*NoOpCache) Close() error { return nil }

var _ OfferCache = (*NoOpCache)(nil)
