// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/aaplitrip/trip-catalog/internal/infrastructure/timeutil"
)

// Catalog source kinds.
const (
	SourceFile   = "file"
	SourceRemote = "remote"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Timeouts  TimeoutConfig
	Logging   LoggingConfig
	App       AppConfig
	Catalog   CatalogConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// TimeoutConfig holds timeout settings for catalog reads.
type TimeoutConfig struct {
	// CatalogFetch bounds one full catalog read, retries included
	CatalogFetch time.Duration `env:"TIMEOUT_CATALOG_FETCH" envDefault:"5s"`

	// RemoteRequest bounds a single HTTP attempt against the backend
	RemoteRequest time.Duration `env:"TIMEOUT_REMOTE_REQUEST" envDefault:"2s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// Timezone decides which calendar day counts as "today" for booking dates
	Timezone string `env:"APP_TIMEZONE" envDefault:"Asia/Kolkata"`
}

// CatalogConfig selects where destinations are read from.
type CatalogConfig struct {
	Source        string `env:"CATALOG_SOURCE" envDefault:"file"`
	FilePath      string `env:"CATALOG_FILE" envDefault:"data/destinations.json"`
	BaseURL       string `env:"CATALOG_BASE_URL" envDefault:"http://localhost:8081"`
	RetryAttempts int    `env:"CATALOG_RETRY_ATTEMPTS" envDefault:"3"`
}

// CacheConfig holds catalog snapshot cache settings.
type CacheConfig struct {
	Enabled       bool          `env:"CACHE_ENABLED" envDefault:"true"`
	TTL           time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	Backend       string        `env:"CACHE_BACKEND" envDefault:"memory"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
}

// RateLimitConfig holds per-client request rate limits.
type RateLimitConfig struct {
	Enabled bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RPS     float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	Burst   int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.CatalogFetch <= 0 {
		return fmt.Errorf("TIMEOUT_CATALOG_FETCH must be positive")
	}
	if cfg.Timeouts.RemoteRequest <= 0 {
		return fmt.Errorf("TIMEOUT_REMOTE_REQUEST must be positive")
	}
	if cfg.Timeouts.RemoteRequest > cfg.Timeouts.CatalogFetch {
		return fmt.Errorf("TIMEOUT_REMOTE_REQUEST (%s) must not exceed TIMEOUT_CATALOG_FETCH (%s)",
			cfg.Timeouts.RemoteRequest, cfg.Timeouts.CatalogFetch)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}
	if _, err := timeutil.GetLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE is not a known timezone: %q", cfg.App.Timezone)
	}

	if err := validateCatalog(cfg.Catalog); err != nil {
		return err
	}
	if err := validateCache(cfg.Cache); err != nil {
		return err
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.RPS <= 0 {
			return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %g", cfg.RateLimit.RPS)
		}
		if cfg.RateLimit.Burst < 1 {
			return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", cfg.RateLimit.Burst)
		}
	}

	return nil
}

func validateCatalog(c CatalogConfig) error {
	switch c.Source {
	case SourceFile:
		if c.FilePath == "" {
			return fmt.Errorf("CATALOG_FILE is required when CATALOG_SOURCE is %q", SourceFile)
		}
	case SourceRemote:
		u, err := url.Parse(c.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("CATALOG_BASE_URL must be an absolute http(s) URL, got %q", c.BaseURL)
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be one of: file, remote; got %q", c.Source)
	}

	if c.RetryAttempts < 1 || c.RetryAttempts > 10 {
		return fmt.Errorf("CATALOG_RETRY_ATTEMPTS must be between 1 and 10, got %d", c.RetryAttempts)
	}
	return nil
}

func validateCache(c CacheConfig) error {
	if !c.Enabled {
		return nil
	}
	if c.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	switch c.Backend {
	case CacheMemory:
	case CacheRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND is %q", CacheRedis)
		}
		if c.RedisDB < 0 {
			return fmt.Errorf("REDIS_DB must not be negative, got %d", c.RedisDB)
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, redis; got %q", c.Backend)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Location returns the configured business timezone.
// validate guarantees it loads, so a failure here falls back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := timeutil.GetLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
