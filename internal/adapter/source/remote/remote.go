// Package remote provides a DestinationSource backed by the booking backend's REST API.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aaplitrip/trip-catalog/internal/adapter/source/wire"
	"github.com/aaplitrip/trip-catalog/internal/domain"
	"github.com/aaplitrip/trip-catalog/internal/infrastructure/logger"
	"github.com/aaplitrip/trip-catalog/internal/infrastructure/retry"
)

// SourceName is the identifier of the remote source.
const SourceName = "remote"

// DestinationsPath is the backend endpoint that lists the catalog.
const DestinationsPath = "/getDestination"

// maxBodyBytes caps how much of a response is read.
const maxBodyBytes = 8 << 20

// Config contains options for the remote source.
type Config struct {
	// BaseURL is the backend root, e.g. "https://api.aaplitrip.in"
	BaseURL string

	// RequestTimeout bounds a single HTTP attempt (0 = no per-attempt bound)
	RequestTimeout time.Duration

	// Retry controls re-attempts of transient failures
	Retry retry.Config

	// HTTPClient overrides the client used (nil = a default client)
	HTTPClient *http.Client

	// Logger receives retry warnings (nil = no logging)
	Logger *logger.Logger
}

// Source fetches the catalog over HTTP.
type Source struct {
	endpoint string
	timeout  time.Duration
	retryCfg retry.Config
	client   *http.Client
	log      *logger.Logger
}

// NewSource creates a remote Source.
// If cfg.Retry.MaxAttempts is zero, retry.SourceConfig is used.
func NewSource(cfg Config) *Source {
	retryCfg := cfg.Retry
	if retryCfg.MaxAttempts <= 0 {
		retryCfg = retry.SourceConfig
	}
	if retryCfg.RetryIf == nil {
		retryCfg.RetryIf = retry.SkipPermanent
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithSource(SourceName)

	s := &Source{
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + DestinationsPath,
		timeout:  cfg.RequestTimeout,
		client:   client,
		log:      log,
	}
	s.retryCfg = retryCfg.WithOnRetry(s.logRetry)
	return s
}

// Name returns the source identifier.
func (s *Source) Name() string {
	return SourceName
}

// FetchDestinations calls GET {baseURL}/getDestination.
//
// Behavior:
//   - Transport errors and 5xx responses are retried with backoff
//   - 4xx responses and non-JSON bodies fail immediately
//   - A JSON body that is not an array yields an empty catalog
func (s *Source) FetchDestinations(ctx context.Context) ([]domain.Destination, error) {
	destinations, err := retry.DoWithResult(ctx, func() ([]domain.Destination, error) {
		return s.fetchOnce(ctx)
	}, s.retryCfg)
	if err != nil {
		return nil, asSourceError(err)
	}
	return destinations, nil
}

func (s *Source) fetchOnce(ctx context.Context) ([]domain.Destination, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, retry.NewPermanent(domain.NewSourceError(SourceName, fmt.Errorf("build request: %w", err)))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, domain.NewRetryableSourceError(SourceName, fmt.Errorf("request %s: %w", s.endpoint, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, domain.NewRetryableSourceError(SourceName, fmt.Errorf("read body: %w", err))
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, domain.NewRetryableSourceError(SourceName, fmt.Errorf("backend returned %d", resp.StatusCode))
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, retry.NewPermanent(domain.NewSourceError(SourceName, fmt.Errorf("backend returned %d", resp.StatusCode)))
	}

	destinations, err := wire.Decode(body)
	if err != nil {
		return nil, retry.NewPermanent(domain.NewSourceError(SourceName, err))
	}
	return destinations, nil
}

func (s *Source) logRetry(attempt int, err error, wait time.Duration) {
	s.log.Warn().
		Err(err).
		Int("attempt", attempt).
		Dur("backoff", wait).
		Msg("Catalog fetch failed, retrying")
}

// asSourceError unwraps retry.Permanent and guarantees the result is a *domain.SourceError.
func asSourceError(err error) error {
	var se *domain.SourceError
	if errors.As(err, &se) {
		return se
	}
	return domain.NewSourceError(SourceName, err)
}

var _ domain.DestinationSource = (*Source)(nil)
