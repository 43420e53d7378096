// Package response provides standardized HTTP response builders for the trip catalog API.
package response

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// MIMEApplicationPDF is the content type of rendered receipts.
const MIMEApplicationPDF = "application/pdf"

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// SearchResults writes a 200 OK response with a destination listing.
func SearchResults(c echo.Context, results interface{}) error {
	return c.JSON(http.StatusOK, results)
}

// PDF writes a 200 OK response carrying a PDF document as an attachment.
func PDF(c echo.Context, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, MIMEApplicationPDF, data)
}
