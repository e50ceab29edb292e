package domain

import "errors"

var (
	// ErrNoResults is returned when the scraper backend finds nothing
	// for a query.
	ErrNoResults = errors.New("no products found for query")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrKeyNotFound is returned by a key-value store when the key has
	// never been written.
	ErrKeyNotFound = errors.New("key not found")

	// ErrScraperFailure is returned when the price-scraper backend
	// request fails.
	ErrScraperFailure = errors.New("price-scraper request failed")

	// ErrUnknownStore is returned when a store id is not in the registry
	ErrUnknownStore = errors.New("unknown store id")
)
