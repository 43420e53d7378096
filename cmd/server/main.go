// Package main is the entry point for the trip catalog service.
//
//	@title						Trip Catalog API
//	@version					1.0.0
//	@description				Backend-for-frontend of the travel booking site: destination search, trip details, date validation and booking quotes.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/aaplitrip/trip-catalog/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/aaplitrip/trip-catalog/docs"

	// Application layers
	cataloghttp "github.com/aaplitrip/trip-catalog/internal/adapter/http"
	"github.com/aaplitrip/trip-catalog/internal/adapter/http/middleware"
	"github.com/aaplitrip/trip-catalog/internal/adapter/source/cached"
	"github.com/aaplitrip/trip-catalog/internal/adapter/source/file"
	"github.com/aaplitrip/trip-catalog/internal/adapter/source/remote"
	"github.com/aaplitrip/trip-catalog/internal/config"
	"github.com/aaplitrip/trip-catalog/internal/domain"
	"github.com/aaplitrip/trip-catalog/internal/infrastructure/logger"
	"github.com/aaplitrip/trip-catalog/internal/infrastructure/receipt"
	"github.com/aaplitrip/trip-catalog/internal/infrastructure/retry"
	"github.com/aaplitrip/trip-catalog/internal/infrastructure/timeutil"
	"github.com/aaplitrip/trip-catalog/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	appLog := setupLogger(cfg)

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("catalog_source", cfg.Catalog.Source).
		Str("timezone", cfg.App.Timezone).
		Msg("Configuration loaded")

	clock := timeutil.NewZonedClock(timeutil.NewRealClock(), cfg.Location())

	source, closer := setupSource(cfg, clock, appLog)
	defer func() {
		if err := closer.Close(); err != nil {
			appLog.Warn().Err(err).Msg("Error closing catalog cache")
		}
	}()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	setupMiddleware(e, cfg, appLog)

	// Setup routes
	setupRoutes(e, cfg, source, clock, appLog)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, appLog)
}

// setupLogger builds the application logger and installs it as the zerolog global.
func setupLogger(cfg *config.Config) *logger.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	appLog := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.Caller,
		ServiceName:  "trip-catalog",
	})
	log.Logger = appLog.Logger

	return appLog
}

// setupSource builds the catalog source chain: file or remote, optionally behind a cache.
// The returned closer releases the cache backend.
func setupSource(cfg *config.Config, clock timeutil.Clock, appLog *logger.Logger) (domain.DestinationSource, io.Closer) {
	var source domain.DestinationSource

	switch cfg.Catalog.Source {
	case config.SourceRemote:
		source = remote.NewSource(remote.Config{
			BaseURL:        cfg.Catalog.BaseURL,
			RequestTimeout: cfg.Timeouts.RemoteRequest,
			Retry:          retry.SourceConfig.WithMaxAttempts(cfg.Catalog.RetryAttempts),
			Logger:         appLog,
		})
	default:
		source = file.NewSource(cfg.Catalog.FilePath)
	}

	if !cfg.Cache.Enabled {
		appLog.Info().Str("source", source.Name()).Msg("Catalog cache disabled")
		return source, io.NopCloser(nil)
	}

	var (
		cache  cached.Cache
		closer io.Closer = io.NopCloser(nil)
	)
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		client := cached.NewRedisClient(cached.RedisConfig{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		cache = cached.NewRedisCache(client)
		closer = client
	default:
		cache = cached.NewMemoryCache(clock)
	}

	appLog.Info().
		Str("source", source.Name()).
		Str("backend", cfg.Cache.Backend).
		Dur("ttl", cfg.Cache.TTL).
		Msg("Catalog cache enabled")

	return cached.NewSource(source, cache, cfg.Cache.TTL, appLog).
		WithRefreshTimeout(cfg.Timeouts.CatalogFetch), closer
}

// setupMiddleware configures Echo middleware stack.
func setupMiddleware(e *echo.Echo, cfg *config.Config, appLog *logger.Logger) {
	mwCfg := middleware.Config{
		Recovery: middleware.DefaultRecoveryConfig(),
	}

	if cfg.RateLimit.Enabled {
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RPS
		rl.Burst = cfg.RateLimit.Burst
		rl.Skipper = func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path == "/health" || strings.HasPrefix(path, "/swagger")
		}
		mwCfg.RateLimit = &rl
	}

	middleware.SetupWithConfig(e, appLog.Logger, mwCfg)
}

// setupRoutes configures the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, source domain.DestinationSource, clock timeutil.Clock, appLog *logger.Logger) {
	catalogUseCase := usecase.NewCatalogUseCase(source, clock, appLog, &usecase.Config{
		FetchTimeout: cfg.Timeouts.CatalogFetch,
	})

	receipts := receipt.NewRenderer(receipt.Config{
		FormatAmount: usecase.FormatPrice,
		Clock:        clock,
	})

	// Initialize handler
	catalogHandler := cataloghttp.NewCatalogHandler(catalogUseCase, receipts)

	// Health check and API v1 routes
	cataloghttp.RegisterRoutes(e, catalogHandler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, appLog *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	appLog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error during server shutdown")
	}

	appLog.Info().Msg("Server stopped")
}
