// Package http provides the HTTP handler layer for the trip catalog API.
package http

import (
	"github.com/labstack/echo/v4"

	"github.com/aaplitrip/trip-catalog/internal/adapter/http/middleware"
)

// RegisterRoutes registers all trip catalog API routes.
// It creates a versioned API group and attaches the handler methods.
// Quote endpoints require a session.
func RegisterRoutes(e *echo.Echo, h *CatalogHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *CatalogHandler, mw ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1", mw...)

	// Destinations group; static segments are registered before :id
	destinations := api.Group("/destinations")
	destinations.GET("", h.ListDestinations)
	destinations.GET("/countries", h.Countries)
	destinations.POST("/recommendations", h.Recommend)
	destinations.GET("/:id", h.TripDetails)
	destinations.GET("/:id/summary", h.TripSummary)
	destinations.GET("/:id/variants/compare", h.CompareVariants)

	// Bookings group
	bookings := api.Group("/bookings")
	bookings.POST("/validate", h.ValidateBooking)

	// Quotes group
	quotes := api.Group("/quotes", middleware.RequireSession())
	quotes.POST("", h.Quote)
	quotes.POST("/receipt", h.Receipt)
}
