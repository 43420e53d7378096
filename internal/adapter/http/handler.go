// Package http provides the HTTP handler layer for the trip catalog API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aaplitrip/trip-catalog/internal/adapter/http/middleware"
	"github.com/aaplitrip/trip-catalog/internal/adapter/http/response"
	"github.com/aaplitrip/trip-catalog/internal/domain"
	"github.com/aaplitrip/trip-catalog/internal/usecase"
)

// ReceiptRenderer turns a bookable quote into a printable document.
type ReceiptRenderer interface {
	Render(quote *domain.BookingQuote) ([]byte, error)
}

// CatalogHandler handles HTTP requests for destination and booking endpoints.
type CatalogHandler struct {
	useCase  usecase.CatalogUseCase
	receipts ReceiptRenderer
}

// NewCatalogHandler creates a new CatalogHandler.
// A nil receipt renderer disables the receipt endpoint (it answers 503).
func NewCatalogHandler(uc usecase.CatalogUseCase, receipts ReceiptRenderer) *CatalogHandler {
	return &CatalogHandler{
		useCase:  uc,
		receipts: receipts,
	}
}

// ListDestinations handles GET /api/v1/destinations
//
// @Summary List destinations
// @Description Search, filter and sort the destination catalog. Prices are blanked without a session.
// @Tags destinations
// @Produce json
// @Param q query string false "Free text search"
// @Param country query string false "Country filter (all disables)"
// @Param minPrice query number false "Minimum base price"
// @Param maxPrice query number false "Maximum base price"
// @Param duration query string false "Duration bucket" Enums(short, medium, long, all)
// @Param startDate query string false "Earliest start date (YYYY-MM-DD)"
// @Param sortBy query string false "Sort order" Enums(price-low, price-high, name-asc, name-desc, duration-short, duration-long, popularity)
// @Success 200 {object} SwaggerListResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Catalog unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/destinations [get]
func (h *CatalogHandler) ListDestinations(c echo.Context) error {
	var req ListDestinationsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Browse(c.Request().Context(), ToBrowseOptions(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToListDestinationsResponse(result, middleware.GetSession(c)))
}

// Countries handles GET /api/v1/destinations/countries
//
// @Summary List countries
// @Description Distinct countries of the catalog, used as filter options
// @Tags destinations
// @Produce json
// @Success 200 {object} CountriesResponse
// @Failure 503 {object} response.ErrorDetail "Catalog unavailable"
// @Router /api/v1/destinations/countries [get]
func (h *CatalogHandler) Countries(c echo.Context) error {
	countries, err := h.useCase.Countries(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	if countries == nil {
		countries = []string{}
	}
	return response.OK(c, CountriesResponse{Countries: countries})
}

// TripDetails handles GET /api/v1/destinations/:id
//
// @Summary Trip details
// @Description Destination backfilled with defaults, merged with the selected variant
// @Tags destinations
// @Produce json
// @Param id path int true "Destination id"
// @Param joiningPoint query string false "Joining point (source city)"
// @Param travelMode query string false "Travel mode, Flight when a joining point is given" Enums(Flight, Train, Bus)
// @Success 200 {object} SwaggerTripDetails
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Destination not found"
// @Router /api/v1/destinations/{id} [get]
func (h *CatalogHandler) TripDetails(c echo.Context) error {
	id, err := ParseID(c.Param("id"))
	if err != nil {
		return h.handleValidationError(c, err)
	}

	var req TripDetailsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	details, err := h.useCase.TripDetails(c.Request().Context(), id, req.JoiningPoint, domain.TravelMode(req.TravelMode))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToTripDetailsDTO(details, middleware.GetSession(c)))
}

// TripSummary handles GET /api/v1/destinations/:id/summary
//
// @Summary Trip summary
// @Description Duration, day-by-day itinerary and highlights of a destination
// @Tags destinations
// @Produce json
// @Param id path int true "Destination id"
// @Success 200 {object} SwaggerTripSummary
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Destination not found"
// @Router /api/v1/destinations/{id}/summary [get]
func (h *CatalogHandler) TripSummary(c echo.Context) error {
	id, err := ParseID(c.Param("id"))
	if err != nil {
		return h.handleValidationError(c, err)
	}

	summary, err := h.useCase.TripSummary(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToTripSummaryDTO(summary, middleware.GetSession(c)))
}

// CompareVariants handles GET /api/v1/destinations/:id/variants/compare
//
// @Summary Compare travel options
// @Description Flight and train options from a joining point, the cheapest option and the offered modes
// @Tags destinations
// @Produce json
// @Param id path int true "Destination id"
// @Param sourceCity query string true "Joining point"
// @Success 200 {object} SwaggerVariantOptions
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Destination not found"
// @Router /api/v1/destinations/{id}/variants/compare [get]
func (h *CatalogHandler) CompareVariants(c echo.Context) error {
	id, err := ParseID(c.Param("id"))
	if err != nil {
		return h.handleValidationError(c, err)
	}

	sourceCity := c.QueryParam("sourceCity")
	if strings.TrimSpace(sourceCity) == "" {
		return response.ValidationError(c, map[string]string{"sourceCity": "sourceCity is required"})
	}

	opts, err := h.useCase.VariantOptions(c.Request().Context(), id, sourceCity)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToVariantOptionsDTO(opts, middleware.GetSession(c)))
}

// Recommend handles POST /api/v1/destinations/recommendations
//
// @Summary Recommend destinations
// @Description Up to six destinations matching the traveller's preferences
// @Tags destinations
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Preferences"
// @Success 200 {object} SwaggerRecommendations
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Catalog unavailable"
// @Router /api/v1/destinations/recommendations [post]
func (h *CatalogHandler) Recommend(c echo.Context) error {
	var req RecommendRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	destinations, err := h.useCase.Recommend(c.Request().Context(), ToRecommendationPreferences(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	session := middleware.GetSession(c)
	return response.OK(c, RecommendationsResponse{
		Destinations: ToDestinationDTOs(destinations, session),
		PricesHidden: !session.CanViewPrices(),
	})
}

// ValidateBooking handles POST /api/v1/bookings/validate
//
// @Summary Validate booking dates
// @Description Check a requested travel window against a destination's offering window
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body ValidateBookingRequest true "Travel window"
// @Success 200 {object} SwaggerDateValidation
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Destination not found"
// @Router /api/v1/bookings/validate [post]
func (h *CatalogHandler) ValidateBooking(c echo.Context) error {
	var req ValidateBookingRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.ValidateDates(c.Request().Context(), req.DestinationID, req.StartDate, req.EndDate)
	if err != nil {
		return h.handleError(c, err)
	}
	if result.Errors == nil {
		result.Errors = []string{}
	}

	return response.OK(c, result)
}

// Quote handles POST /api/v1/quotes
//
// @Summary Quote a booking
// @Description Budget, dates and validation result the booking form submits with an enquiry
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body QuoteRequest true "Booking form inputs"
// @Success 200 {object} SwaggerQuote
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 401 {object} response.ErrorDetail "No session"
// @Failure 404 {object} response.ErrorDetail "Destination not found"
// @Router /api/v1/quotes [post]
func (h *CatalogHandler) Quote(c echo.Context) error {
	quote, err := h.quote(c)
	if err != nil {
		return err
	}
	if quote == nil {
		return nil
	}
	return response.OK(c, ToQuoteDTO(quote))
}

// Receipt handles POST /api/v1/quotes/receipt
//
// @Summary Booking receipt
// @Description Render a valid quote as a PDF with a QR code of its reference
// @Tags bookings
// @Accept json
// @Produce application/pdf
// @Security BearerAuth
// @Param request body QuoteRequest true "Booking form inputs"
// @Success 200 {file} binary
// @Failure 400 {object} response.ErrorDetail "Validation error or invalid dates"
// @Failure 401 {object} response.ErrorDetail "No session"
// @Failure 404 {object} response.ErrorDetail "Destination not found"
// @Router /api/v1/quotes/receipt [post]
func (h *CatalogHandler) Receipt(c echo.Context) error {
	if h.receipts == nil {
		return response.ServiceUnavailable(c)
	}

	quote, err := h.quote(c)
	if err != nil {
		return err
	}
	if quote == nil {
		return nil
	}

	if !quote.Valid() {
		return response.ValidationErrorWithDetails(c, "Booking dates are not valid", map[string]string{
			"dates": strings.Join(quote.Errors, "; "),
		})
	}

	data, err := h.receipts.Render(quote)
	if err != nil {
		return h.handleError(c, fmt.Errorf("render receipt %s: %w", quote.Reference, err))
	}

	return response.PDF(c, "receipt-"+quote.Reference+".pdf", data)
}

// quote binds, validates and computes a quote. A nil quote with a nil error means the
// error response has already been written.
func (h *CatalogHandler) quote(c echo.Context) (*domain.BookingQuote, error) {
	var req QuoteRequest

	if err := c.Bind(&req); err != nil {
		return nil, response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return nil, h.handleValidationError(c, err)
	}

	quote, err := h.useCase.Quote(c.Request().Context(), ToDomainQuoteRequest(&req))
	if err != nil {
		return nil, h.handleError(c, err)
	}
	return quote, nil
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *CatalogHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *CatalogHandler) handleError(c echo.Context, err error) error {
	// Timeouts are checked first: a slow source is also reported as unavailable
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if domain.IsInvalidRequest(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if domain.IsNotFound(err) {
		return response.NotFound(c, "Destination not found")
	}

	if domain.IsCatalogUnavailable(err) {
		return response.ServiceUnavailable(c)
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *CatalogHandler) Health(c echo.Context) error {
	return response.Health(c)
}
