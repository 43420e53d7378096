package domain

import "context"

//go:generate mockgen -source=source.go -destination=mock_source.go -package=domain

// DestinationSource supplies the raw destination catalog.
// Implementations must tolerate a backend that answers with something other than a list by
// returning an empty slice rather than an error.
type DestinationSource interface {
	// Name returns a stable identifier used for logging and cache keys.
	Name() string

	// FetchDestinations returns the full catalog in backend order.
	FetchDestinations(ctx context.Context) ([]Destination, error)
}

// FetchInfo describes how a catalog snapshot was obtained.
type FetchInfo struct {
	// CacheHit is true when the snapshot was served from a cache
	CacheHit bool
}

// CachingSource is a DestinationSource that can report whether a fetch was served from cache.
// Callers that care about the hit flag type-assert for it; plain sources need not implement it.
type CachingSource interface {
	DestinationSource

	// FetchDestinationsWithInfo behaves like FetchDestinations and also reports cache usage.
	FetchDestinationsWithInfo(ctx context.Context) ([]Destination, FetchInfo, error)
}
