package cached

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aaplitrip/trip-catalog/internal/domain"
	"github.com/aaplitrip/trip-catalog/internal/infrastructure/timeutil"
)

var sampleCatalog = []domain.Destination{
	{
		ID:      1,
		Name:    "Goa",
		Price:   "4000",
		Country: "India",
		Variants: []domain.Variant{
			{SourceCity: "Mumbai", TravelMode: domain.TravelModeFlight, Price: 4500},
		},
	},
	{ID: 2, Name: "Dubai", Price: "45000", Country: "UAE"},
}

// failingCache fails every operation.
type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func newInner(t *testing.T) *domain.MockDestinationSource {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := domain.NewMockDestinationSource(ctrl)
	inner.EXPECT().Name().Return("remote").AnyTimes()
	return inner
}

func TestSource_NameAndKey(t *testing.T) {
	src := NewSource(newInner(t), NewMemoryCache(nil), time.Minute, nil)

	assert.Equal(t, "remote", src.Name())
	assert.Equal(t, "catalog:remote", src.Key())
}

func TestSource_MissThenHit(t *testing.T) {
	inner := newInner(t)
	inner.EXPECT().FetchDestinations(gomock.Any()).Return(sampleCatalog, nil).Times(1)

	clock := timeutil.NewMockClock(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))
	src := NewSource(inner, NewMemoryCache(clock), time.Minute, nil)

	first, info, err := src.FetchDestinationsWithInfo(context.Background())
	require.NoError(t, err)
	assert.False(t, info.CacheHit)
	assert.Equal(t, sampleCatalog, first)

	second, info, err := src.FetchDestinationsWithInfo(context.Background())
	require.NoError(t, err)
	assert.True(t, info.CacheHit)
	assert.Equal(t, sampleCatalog, second)
}

func TestSource_ExpiryRefetches(t *testing.T) {
	inner := newInner(t)
	inner.EXPECT().FetchDestinations(gomock.Any()).Return(sampleCatalog, nil).Times(2)

	clock := timeutil.NewMockClock(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))
	src := NewSource(inner, NewMemoryCache(clock), time.Minute, nil)

	_, err := src.FetchDestinations(context.Background())
	require.NoError(t, err)

	clock.Advance(time.Minute)

	_, info, err := src.FetchDestinationsWithInfo(context.Background())
	require.NoError(t, err)
	assert.False(t, info.CacheHit)
}

func TestSource_InnerErrorIsNotCached(t *testing.T) {
	inner := newInner(t)
	sourceErr := domain.NewRetryableSourceError("remote", errors.New("503"))
	gomock.InOrder(
		inner.EXPECT().FetchDestinations(gomock.Any()).Return(nil, sourceErr),
		inner.EXPECT().FetchDestinations(gomock.Any()).Return(sampleCatalog, nil),
	)

	cache := NewMemoryCache(nil)
	src := NewSource(inner, cache, time.Minute, nil)

	_, err := src.FetchDestinations(context.Background())
	require.ErrorIs(t, err, sourceErr)
	assert.Equal(t, 0, cache.Len())

	got, err := src.FetchDestinations(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSource_CacheFailureDegradesToInner(t *testing.T) {
	inner := newInner(t)
	inner.EXPECT().FetchDestinations(gomock.Any()).Return(sampleCatalog, nil).Times(2)

	src := NewSource(inner, failingCache{}, time.Minute, nil)

	for i := 0; i < 2; i++ {
		got, info, err := src.FetchDestinationsWithInfo(context.Background())
		require.NoError(t, err)
		assert.False(t, info.CacheHit)
		assert.Equal(t, sampleCatalog, got)
	}
}

func TestSource_CorruptEntryIsTreatedAsMiss(t *testing.T) {
	inner := newInner(t)
	inner.EXPECT().FetchDestinations(gomock.Any()).Return(sampleCatalog, nil).Times(1)

	cache := NewMemoryCache(nil)
	require.NoError(t, cache.Set(context.Background(), "catalog:remote", []byte("{not json"), time.Minute))

	src := NewSource(inner, cache, time.Minute, nil)
	got, info, err := src.FetchDestinationsWithInfo(context.Background())

	require.NoError(t, err)
	assert.False(t, info.CacheHit)
	assert.Len(t, got, 2)
}

func TestSource_CallersCannotMutateSnapshot(t *testing.T) {
	inner := newInner(t)
	inner.EXPECT().FetchDestinations(gomock.Any()).Return(sampleCatalog, nil).Times(1)

	src := NewSource(inner, NewMemoryCache(nil), time.Minute, nil)

	first, err := src.FetchDestinations(context.Background())
	require.NoError(t, err)
	first[0].Name = "changed"
	first[0].Variants[0].Price = 1

	second, err := src.FetchDestinations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Goa", second[0].Name)
	assert.Equal(t, 4500.0, second[0].Variants[0].Price)
}

func TestSource_ConcurrentMissesShareOneFetch(t *testing.T) {
	inner := newInner(t)
	release := make(chan struct{})
	inner.EXPECT().FetchDestinations(gomock.Any()).DoAndReturn(func(context.Context) ([]domain.Destination, error) {
		<-release
		return sampleCatalog, nil
	}).MinTimes(1).MaxTimes(2)

	src := NewSource(inner, NewMemoryCache(nil), time.Minute, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := src.FetchDestinations(context.Background())
			assert.NoError(t, err)
			assert.Len(t, got, 2)
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
}

func TestSource_SharedFetchOutlivesFirstCaller(t *testing.T) {
	inner := newInner(t)
	inner.EXPECT().FetchDestinations(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.Destination, error) {
		select {
		case <-time.After(200 * time.Millisecond):
			return sampleCatalog, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}).Times(1)

	src := NewSource(inner, NewMemoryCache(nil), time.Minute, nil)

	shortCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var (
		wg       sync.WaitGroup
		shortErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, shortErr = src.FetchDestinations(shortCtx)
	}()

	// Let the short caller start the shared fetch before the patient one joins it
	time.Sleep(5 * time.Millisecond)
	got, err := src.FetchDestinations(context.Background())
	wg.Wait()

	require.NoError(t, err)
	assert.Len(t, got, 2)
	require.Error(t, shortErr)
	assert.ErrorIs(t, shortErr, context.DeadlineExceeded)

	_, info, err := src.FetchDestinationsWithInfo(context.Background())
	require.NoError(t, err)
	assert.True(t, info.CacheHit, "shared fetch should still populate the cache")
}

func TestSource_RefreshTimeoutBoundsSharedFetch(t *testing.T) {
	inner := newInner(t)
	inner.EXPECT().FetchDestinations(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.Destination, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}).Times(1)

	src := NewSource(inner, NewMemoryCache(nil), time.Minute, nil).WithRefreshTimeout(20 * time.Millisecond)

	start := time.Now()
	_, err := src.FetchDestinations(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	clock := timeutil.NewMockClock(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))
	cache := NewMemoryCache(clock)

	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte("snapshot")
	require.NoError(t, cache.Set(ctx, "k", value, 10*time.Second))
	value[0] = 'X'

	got, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "snapshot", string(got))

	clock.Advance(10 * time.Second)
	_, ok, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestRedisCache(t *testing.T) {
	server := miniredis.RunT(t)
	client := NewRedisClient(RedisConfig{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewRedisCache(client)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "catalog:file")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "catalog:file", []byte(`[]`), time.Minute))

	got, ok, err := cache.Get(ctx, "catalog:file")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(got))
	assert.Equal(t, time.Minute, server.TTL("catalog:file"))

	server.FastForward(time.Minute)
	_, ok, err = cache.Get(ctx, "catalog:file")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_BackedSource(t *testing.T) {
	server := miniredis.RunT(t)
	client := NewRedisClient(RedisConfig{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	inner := newInner(t)
	inner.EXPECT().FetchDestinations(gomock.Any()).Return(sampleCatalog, nil).Times(1)

	src := NewSource(inner, NewRedisCache(client), time.Minute, nil)

	_, info, err := src.FetchDestinationsWithInfo(context.Background())
	require.NoError(t, err)
	assert.False(t, info.CacheHit)
	assert.True(t, server.Exists("catalog:remote"))

	got, info, err := src.FetchDestinationsWithInfo(context.Background())
	require.NoError(t, err)
	assert.True(t, info.CacheHit)
	assert.Equal(t, sampleCatalog, got)
}

func TestRedisCache_ServerDown(t *testing.T) {
	server := miniredis.RunT(t)
	client := NewRedisClient(RedisConfig{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	server.Close()

	_, _, err := NewRedisCache(client).Get(context.Background(), "catalog:file")
	assert.Error(t, err)
}
