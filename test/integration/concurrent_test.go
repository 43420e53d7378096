package integration

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaplitrip/trip-catalog/internal/adapter/source/cached"
	"github.com/aaplitrip/trip-catalog/internal/domain"
	"github.com/aaplitrip/trip-catalog/internal/usecase"
	"github.com/aaplitrip/trip-catalog/test/mock"
	"github.com/aaplitrip/trip-catalog/test/testutil"
)

// TestConcurrent_MultipleBrowseRequests tests that concurrent browse requests
// are handled correctly without interference.
func TestConcurrent_MultipleBrowseRequests(t *testing.T) {
	// Arrange
	source := mock.NewSource("mock").
		WithDelay(10 * time.Millisecond).
		WithDestinations(mock.SampleDestinations())
	ts := NewTestServer(CreateUseCase(source))

	numRequests := 10
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	// Act
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.Get("/api/v1/destinations", true)
		}(i)
	}
	wg.Wait()

	// Assert
	for i := 0; i < numRequests; i++ {
		require.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)

		list, err := results[i].ParseList()
		require.NoError(t, err)
		assert.Len(t, list.Destinations, 5, "request %d should see the whole catalog", i)
	}

	// Without a cache every request reads the source
	assert.Equal(t, numRequests, source.CallCount())
}

// TestConcurrent_IndependentResults tests that each request gets results for its own query.
func TestConcurrent_IndependentResults(t *testing.T) {
	// Arrange
	source := mock.NewSource("mock").WithDestinations(mock.SampleDestinations())
	ts := NewTestServer(CreateUseCase(source))

	queries := map[string]int{
		"/api/v1/destinations?country=India":     3,
		"/api/v1/destinations?country=UAE":       1,
		"/api/v1/destinations?q=goa":             1,
		"/api/v1/destinations?duration=long":     1,
		"/api/v1/destinations?maxPrice=20000":    3,
		"/api/v1/destinations?country=Indonesia": 1,
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	got := make(map[string]int, len(queries))

	// Act
	for path := range queries {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			resp := ts.Get(p, true)
			if resp.Code != http.StatusOK {
				return
			}
			list, err := resp.ParseList()
			if err != nil {
				return
			}
			mu.Lock()
			got[p] = len(list.Destinations)
			mu.Unlock()
		}(path)
	}
	wg.Wait()

	// Assert
	assert.Equal(t, queries, got)
}

// TestConcurrent_MixedSuccessAndFailure tests that a failing catalog on one server does not
// affect requests served by another.
func TestConcurrent_MixedSuccessAndFailure(t *testing.T) {
	// Arrange
	healthy := NewTestServer(CreateUseCase(
		mock.NewSource("healthy").WithDestinations(mock.SampleDestinations()),
	))
	broken := NewTestServer(CreateUseCase(
		mock.NewSource("broken").WithError(errors.New("backend down")),
	))

	numRequests := 20
	var wg sync.WaitGroup
	codes := make([]int, numRequests)

	// Act
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ts := healthy
			if idx%2 == 1 {
				ts = broken
			}
			codes[idx] = ts.Get("/api/v1/destinations/countries", false).Code
		}(i)
	}
	wg.Wait()

	// Assert
	for i, code := range codes {
		if i%2 == 1 {
			assert.Equal(t, http.StatusServiceUnavailable, code, "request %d", i)
		} else {
			assert.Equal(t, http.StatusOK, code, "request %d", i)
		}
	}
}

// TestConcurrent_CachedSourceCollapsesMisses tests that concurrent cache misses share one
// read of the underlying source and later requests are served from cache.
func TestConcurrent_CachedSourceCollapsesMisses(t *testing.T) {
	// Arrange
	clock := testutil.FixedClock()
	inner := mock.NewSource("mock").
		WithDelay(50 * time.Millisecond).
		WithDestinations(mock.SampleDestinations())
	source := cached.NewSource(inner, cached.NewMemoryCache(clock), time.Minute, nil)
	ts := NewTestServer(CreateUseCaseWithConfig(source, clock, nil))

	numRequests := 20
	var wg sync.WaitGroup
	codes := make([]int, numRequests)

	// Act
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			codes[idx] = ts.Get("/api/v1/destinations", true).Code
		}(i)
	}
	wg.Wait()

	// Assert
	for i, code := range codes {
		assert.Equal(t, http.StatusOK, code, "request %d", i)
	}
	calls := inner.CallCount()
	assert.GreaterOrEqual(t, calls, 1)
	assert.Less(t, calls, numRequests, "concurrent misses should share source reads")

	resp := ts.Get("/api/v1/destinations", true)
	list, err := resp.ParseList()
	require.NoError(t, err)
	assert.True(t, list.Metadata.CacheHit)
	assert.Equal(t, calls, inner.CallCount(), "warm cache must not read the source")
}

// TestConcurrent_QuoteReferencesUnique tests that concurrent quotes never share a reference.
func TestConcurrent_QuoteReferencesUnique(t *testing.T) {
	// Arrange
	uc := CreateUseCase(mock.NewSource("mock").WithDestinations(mock.SampleDestinations()))

	numRequests := 50
	var wg sync.WaitGroup
	refs := make([]string, numRequests)
	errs := make([]error, numRequests)

	// Act
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			quote, err := uc.Quote(context.Background(), domain.QuoteRequest{
				DestinationID: 1,
				JoiningPoint:  "Mumbai",
				Persons:       idx%domain.MaxPersons + 1,
			})
			errs[idx] = err
			if err == nil {
				refs[idx] = quote.Reference
			}
		}(i)
	}
	wg.Wait()

	// Assert
	seen := make(map[string]struct{}, numRequests)
	for i := 0; i < numRequests; i++ {
		require.NoError(t, errs[i], "quote %d", i)
		_, dup := seen[refs[i]]
		assert.False(t, dup, "reference %s issued twice", refs[i])
		seen[refs[i]] = struct{}{}
	}
}

// TestConcurrent_SourceDataNotShared tests that callers cannot corrupt each other's snapshot.
func TestConcurrent_SourceDataNotShared(t *testing.T) {
	// Arrange
	clock := testutil.FixedClock()
	inner := mock.NewSource("mock").WithDestinations(mock.SampleDestinations())
	source := cached.NewSource(inner, cached.NewMemoryCache(clock), time.Minute, nil)
	uc := CreateUseCaseWithConfig(source, clock, nil)
	ctx := context.Background()

	numRequests := 10
	var wg sync.WaitGroup

	// Act - every caller mutates its own copy
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			resp, err := uc.Browse(ctx, usecase.BrowseOptions{})
			if err != nil || len(resp.Destinations) == 0 {
				return
			}
			resp.Destinations[0].Name = fmt.Sprintf("mutated-%d", idx)
			if len(resp.Destinations[0].Variants) > 0 {
				resp.Destinations[0].Variants[0].Price = -1
			}
		}(i)
	}
	wg.Wait()

	// Assert
	resp, err := uc.Browse(ctx, usecase.BrowseOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Goa", resp.Destinations[0].Name)
	assert.Equal(t, 4500.0, resp.Destinations[0].Variants[0].Price)
}

// TestConcurrent_HighLoadScenario mixes every read endpoint under load.
func TestConcurrent_HighLoadScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping high load test in short mode")
	}

	// Arrange
	clock := testutil.FixedClock()
	inner := mock.NewSource("mock").
		WithDelay(5 * time.Millisecond).
		WithDestinations(mock.SampleDestinations())
	source := cached.NewSource(inner, cached.NewMemoryCache(clock), time.Minute, nil)
	ts := NewTestServer(CreateUseCaseWithConfig(source, clock, nil))

	paths := []string{
		"/api/v1/destinations?sortBy=price-low",
		"/api/v1/destinations/countries",
		"/api/v1/destinations/1",
		"/api/v1/destinations/2/summary",
		"/api/v1/destinations/1/variants/compare?sourceCity=Mumbai",
	}

	numRequests := 100
	var wg sync.WaitGroup
	codes := make([]int, numRequests)

	// Act
	start := time.Now()
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			codes[idx] = ts.Get(paths[idx%len(paths)], idx%3 != 0).Code
		}(i)
	}
	wg.Wait()
	elapsed := time.Since(start)

	// Assert
	for i, code := range codes {
		assert.Equal(t, http.StatusOK, code, "request %d (%s)", i, paths[i%len(paths)])
	}
	assert.Less(t, elapsed, 5*time.Second)
}
