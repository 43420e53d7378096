// Package cached provides a DestinationSource decorator that keeps catalog snapshots in a TTL
// cache, either in process memory or in Redis.
//
// The catalog changes rarely (admins edit it by hand) while every browse, detail and quote
// request needs the full list, so one snapshot is shared by all callers until it expires.
// Cache failures never fail a request: the decorator logs them and reads the inner source.
package cached

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/aaplitrip/trip-catalog/internal/adapter/source/wire"
	"github.com/aaplitrip/trip-catalog/internal/domain"
	"github.com/aaplitrip/trip-catalog/internal/infrastructure/logger"
)

// KeyPrefix is prepended to the inner source name to form the cache key.
const KeyPrefix = "catalog:"

// DefaultRefreshTimeout bounds a shared inner read when no timeout is configured.
const DefaultRefreshTimeout = 10 * time.Second

// Source caches the catalog of an inner DestinationSource.
type Source struct {
	inner domain.DestinationSource
	cache Cache
	ttl   time.Duration
	key   string
	log   *logger.Logger
	group singleflight.Group

	refreshTimeout time.Duration
}

// NewSource wraps inner with cache. A nil log disables logging.
func NewSource(inner domain.DestinationSource, cache Cache, ttl time.Duration, log *logger.Logger) *Source {
	if log == nil {
		log = logger.Nop()
	}
	return &Source{
		inner: inner,
		cache: cache,
		ttl:   ttl,
		key:   KeyPrefix + inner.Name(),
		log:   log.WithSource(inner.Name()),

		refreshTimeout: DefaultRefreshTimeout,
	}
}

// WithRefreshTimeout sets the bound of a shared inner read. Non-positive values are ignored.
func (s *Source) WithRefreshTimeout(d time.Duration) *Source {
	if d > 0 {
		s.refreshTimeout = d
	}
	return s
}

// Name returns the inner source name; the cache is transparent to callers.
func (s *Source) Name() string {
	return s.inner.Name()
}

// Key returns the cache key used for the snapshot.
func (s *Source) Key() string {
	return s.key
}

// FetchDestinations implements domain.DestinationSource.
func (s *Source) FetchDestinations(ctx context.Context) ([]domain.Destination, error) {
	destinations, _, err := s.FetchDestinationsWithInfo(ctx)
	return destinations, err
}

// FetchDestinationsWithInfo returns the cached snapshot when present, otherwise reads the inner
// source and stores the result.
//
// Concurrent misses share a single inner read. The shared read is detached from every caller's
// cancellation and bounded by the refresh timeout instead; each caller stops waiting when its own
// context is done.
func (s *Source) FetchDestinationsWithInfo(ctx context.Context) ([]domain.Destination, domain.FetchInfo, error) {
	if destinations, ok := s.lookup(ctx); ok {
		return destinations, domain.FetchInfo{CacheHit: true}, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(s.key, func() (interface{}, error) {
		refreshCtx, cancel := context.WithTimeout(shared, s.refreshTimeout)
		defer cancel()
		return s.refresh(refreshCtx)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, domain.FetchInfo{}, domain.NewSourceError(s.inner.Name(), ctx.Err())
	}
	if res.Err != nil {
		return nil, domain.FetchInfo{}, res.Err
	}

	// Each caller gets its own copy; the shared result must not be mutated.
	snapshot := res.Val.([]domain.Destination)
	out := make([]domain.Destination, len(snapshot))
	for i, d := range snapshot {
		out[i] = d.Clone()
	}
	return out, domain.FetchInfo{}, nil
}

func (s *Source) lookup(ctx context.Context) ([]domain.Destination, bool) {
	data, ok, err := s.cache.Get(ctx, s.key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("Catalog cache read failed, fetching from source")
		return nil, false
	}
	if !ok {
		s.log.Debug().Str("key", s.key).Msg("Catalog cache miss")
		return nil, false
	}

	destinations, err := wire.Decode(data)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("Catalog cache entry unreadable, fetching from source")
		return nil, false
	}

	s.log.Debug().Str("key", s.key).Int("destinations", len(destinations)).Msg("Catalog cache hit")
	return destinations, true
}

func (s *Source) refresh(ctx context.Context) ([]domain.Destination, error) {
	destinations, err := s.inner.FetchDestinations(ctx)
	if err != nil {
		return nil, err
	}
	if destinations == nil {
		destinations = []domain.Destination{}
	}

	data, err := wire.Encode(destinations)
	if err != nil {
		s.log.Warn().Err(err).Msg("Catalog snapshot could not be encoded, not caching")
		return destinations, nil
	}
	if err := s.cache.Set(ctx, s.key, data, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("Catalog cache write failed")
	}
	return destinations, nil
}

var (
	_ domain.DestinationSource = (*Source)(nil)
	_ domain.CachingSource     = (*Source)(nil)
)
