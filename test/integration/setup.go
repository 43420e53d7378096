// Package integration provides helpers and integration tests for the trip catalog.
// Integration tests verify that components work together correctly, including
// HTTP middleware, handlers, the use case, and catalog sources.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/aaplitrip/trip-catalog/internal/adapter/http"
	"github.com/aaplitrip/trip-catalog/internal/adapter/http/middleware"
	"github.com/aaplitrip/trip-catalog/internal/domain"
	"github.com/aaplitrip/trip-catalog/internal/infrastructure/receipt"
	"github.com/aaplitrip/trip-catalog/internal/infrastructure/timeutil"
	"github.com/aaplitrip/trip-catalog/internal/usecase"
	"github.com/aaplitrip/trip-catalog/test/testutil"
)

// Token is a bearer token accepted by the session middleware.
const Token = "Bearer integration-token"

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.CatalogHandler
}

// NewTestServer creates a test server with the full middleware stack over the given use case.
func NewTestServer(uc usecase.CatalogUseCase) *TestServer {
	return NewTestServerWithConfig(uc, middleware.Config{Recovery: middleware.DefaultRecoveryConfig()})
}

// NewTestServerWithConfig creates a test server with custom middleware configuration.
func NewTestServerWithConfig(uc usecase.CatalogUseCase, cfg middleware.Config) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.SetupWithConfig(e, zerolog.Nop(), cfg)

	renderer := receipt.NewRenderer(receipt.Config{
		FormatAmount: usecase.FormatPrice,
		Clock:        testutil.FixedClock(),
	})
	handler := httpAdapter.NewCatalogHandler(uc, renderer)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string

	// Authenticated adds the bearer token header
	Authenticated bool
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.Authenticated {
		httpReq.Header.Set(echo.HeaderAuthorization, Token)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Get makes a GET request, optionally with a session.
func (ts *TestServer) Get(path string, authenticated bool) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path, Authenticated: authenticated})
}

// Post makes a JSON POST request, optionally with a session.
func (ts *TestServer) Post(path string, body interface{}, authenticated bool) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: path, Body: body, Authenticated: authenticated})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Get("/health", false)
}

// Decode parses the response body into v.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// ParseList parses the response body as a destination listing.
func (r *Response) ParseList() (*httpAdapter.ListDestinationsResponse, error) {
	var resp httpAdapter.ListDestinationsResponse
	if err := r.Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := r.Decode(&errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// CreateUseCase creates a use case over source with the fixed test clock.
func CreateUseCase(source domain.DestinationSource) usecase.CatalogUseCase {
	return usecase.NewCatalogUseCase(source, testutil.FixedClock(), nil, nil)
}

// CreateUseCaseWithConfig creates a use case with custom configuration and clock.
func CreateUseCaseWithConfig(source domain.DestinationSource, clock timeutil.Clock, config *usecase.Config) usecase.CatalogUseCase {
	return usecase.NewCatalogUseCase(source, clock, nil, config)
}
