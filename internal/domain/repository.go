package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// KeyValueStore is the persistence port of the store-health registry.
// Implementations: in-memory (tests, default config) and Redis.
// Get returns ErrKeyNotFound for keys that were never written.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ScraperClient defines the interface for the external price-scraper
// backend that actually fetches prices from the retail sites.
type ScraperClient interface {
	Search(ctx context.Context, query string, mode SearchMode, storeIDs []string, locationID string) (*ScrapeResponse, error)
}
