package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Config selects the optional middleware applied by SetupWithConfig.
type Config struct {
	// Recovery configures panic recovery
	Recovery RecoveryConfig

	// RateLimit enables per-client rate limiting when non-nil
	RateLimit *RateLimitConfig
}

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. RequestLogger - Second, logs all requests with request ID (rate-limited ones included)
//  3. Recover - Third, catches panics and returns 500 (wraps handlers)
//  4. RateLimit - Optional, rejects clients over their budget before any work is done
//  5. Session - Last, extracts the caller's session for price gating
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, Config{Recovery: DefaultRecoveryConfig()})
}

// SetupWithConfig registers middleware with custom recovery and rate limit configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, config Config) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, config.Recovery))
	if config.RateLimit != nil {
		e.Use(RateLimit(*config.RateLimit))
	}
	e.Use(Session())
}

// Chain returns the default middleware as a slice for use with route groups.
// Useful when you want to apply middleware to specific route groups only.
func Chain(log zerolog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Recover(log),
		Session(),
	}
}
