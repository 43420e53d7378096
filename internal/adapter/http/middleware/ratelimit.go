package middleware

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/aaplitrip/trip-catalog/internal/adapter/http/response"
)

// RateLimitConfig configures per-client rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate allowed per client
	RequestsPerSecond float64

	// Burst is the number of requests a client may make at once
	Burst int

	// IdleTTL drops the state of clients not seen for this long
	IdleTTL time.Duration

	// KeyFunc identifies the client (default: real IP)
	KeyFunc func(c echo.Context) string

	// Skipper bypasses the limiter for matching requests
	Skipper func(c echo.Context) bool
}

// DefaultRateLimitConfig returns 10 requests per second with a burst of 20.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		Burst:             20,
		IdleTTL:           3 * time.Minute,
	}
}

// RateLimit returns middleware that rejects clients exceeding their token bucket with 429.
// Each client gets its own rate.Limiter; idle clients are swept lazily.
func RateLimit(config RateLimitConfig) echo.MiddlewareFunc {
	store := newLimiterStore(config, time.Now)
	keyFunc := config.KeyFunc
	if keyFunc == nil {
		keyFunc = func(c echo.Context) string { return c.RealIP() }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper != nil && config.Skipper(c) {
				return next(c)
			}
			if !store.allow(keyFunc(c)) {
				c.Response().Header().Set("Retry-After", "1")
				return response.TooManyRequests(c)
			}
			return next(c)
		}
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore holds one limiter per client key.
type limiterStore struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	clients   map[string]*clientLimiter
	lastSweep time.Time
	now       func() time.Time
}

func newLimiterStore(config RateLimitConfig, now func() time.Time) *limiterStore {
	defaults := DefaultRateLimitConfig()
	if config.RequestsPerSecond <= 0 {
		config.RequestsPerSecond = defaults.RequestsPerSecond
	}
	if config.Burst <= 0 {
		config.Burst = defaults.Burst
	}
	if config.IdleTTL <= 0 {
		config.IdleTTL = defaults.IdleTTL
	}

	return &limiterStore{
		limit:     rate.Limit(config.RequestsPerSecond),
		burst:     config.Burst,
		idleTTL:   config.IdleTTL,
		clients:   make(map[string]*clientLimiter),
		lastSweep: now(),
		now:       now,
	}
}

// allow consumes one token from the client's bucket.
func (s *limiterStore) allow(key string) bool {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > s.idleTTL {
		for k, cl := range s.clients {
			if now.Sub(cl.lastSeen) > s.idleTTL {
				delete(s.clients, k)
			}
		}
		s.lastSweep = now
	}

	cl, ok := s.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.clients[key] = cl
	}
	cl.lastSeen = now

	return cl.limiter.AllowN(now, 1)
}

// size returns the number of tracked clients.
func (s *limiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
