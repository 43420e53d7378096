// Package http provides the HTTP handler layer for the trip catalog API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aaplitrip/trip-catalog/internal/domain"
)

// ListDestinationsRequest holds the query parameters of the destination listing.
// Prices are kept as text so malformed numbers can be reported per field.
type ListDestinationsRequest struct {
	// Query is free text matched against name, country and description
	Query string `query:"q"`

	// Country keeps destinations in this country ("all" disables)
	Country string `query:"country"`

	// MinPrice and MaxPrice are inclusive base price bounds
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`

	// Duration is one of short, medium, long or all
	Duration string `query:"duration"`

	// StartDate keeps destinations opening on or after this date (YYYY-MM-DD)
	StartDate string `query:"startDate"`

	// SortBy is one of price-low, price-high, name-asc, name-desc, duration-short,
	// duration-long, popularity
	SortBy string `query:"sortBy"`

	minPrice *float64
	maxPrice *float64
}

// TripDetailsRequest holds the optional variant selection of a detail view.
type TripDetailsRequest struct {
	JoiningPoint string `query:"joiningPoint"`
	TravelMode   string `query:"travelMode"`
}

// RecommendRequest represents the request body for recommendations.
type RecommendRequest struct {
	// PreferredCountry keeps only destinations with exactly this country
	PreferredCountry string `json:"preferredCountry,omitempty" example:"India"`

	// MaxBudget keeps destinations priced at or below it (0 = no limit)
	MaxBudget float64 `json:"maxBudget,omitempty" example:"15000"`

	// PreferredDuration orders results by closeness to this trip length
	PreferredDuration string `json:"preferredDuration,omitempty" example:"5 Days"`
}

// ValidateBookingRequest represents the request body for date validation.
type ValidateBookingRequest struct {
	DestinationID int64  `json:"destinationId" example:"1"`
	StartDate     string `json:"startDate" example:"2025-06-02"`
	EndDate       string `json:"endDate" example:"2025-06-05"`
}

// QuoteRequest represents the request body for a booking quote or receipt.
type QuoteRequest struct {
	DestinationID int64  `json:"destinationId" example:"1"`
	JoiningPoint  string `json:"joiningPoint" example:"Mumbai"`
	TravelMode    string `json:"travelMode,omitempty" example:"Flight"`

	// Persons defaults to 1 when omitted
	Persons   int    `json:"persons,omitempty" example:"2"`
	StartDate string `json:"startDate,omitempty" example:"2025-06-02"`
	EndDate   string `json:"endDate,omitempty" example:"2025-06-05"`
}

// Validation regex patterns.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Valid sort options.
var validSortOptions = map[string]bool{
	string(domain.SortByPriceLow):      true,
	string(domain.SortByPriceHigh):     true,
	string(domain.SortByNameAsc):       true,
	string(domain.SortByNameDesc):      true,
	string(domain.SortByDurationShort): true,
	string(domain.SortByDurationLong):  true,
	string(domain.SortByPopularity):    true,
	"":                                 true, // Empty keeps catalog order
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the listing parameters and parses the price bounds.
func (r *ListDestinationsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.minPrice = parsePriceParam(errs, "minPrice", r.MinPrice)
	r.maxPrice = parsePriceParam(errs, "maxPrice", r.MaxPrice)
	if r.minPrice != nil && r.maxPrice != nil && *r.minPrice > *r.maxPrice {
		errs.Add("maxPrice", "maxPrice must be greater than or equal to minPrice")
	}

	if !domain.DurationBucket(strings.ToLower(strings.TrimSpace(r.Duration))).IsValid() {
		errs.Add("duration", "duration must be one of: short, medium, long, all")
	}

	validateOptionalDate(errs, "startDate", r.StartDate)

	if !validSortOptions[strings.ToLower(strings.TrimSpace(r.SortBy))] {
		errs.Add("sortBy", "sortBy must be one of: price-low, price-high, name-asc, name-desc, duration-short, duration-long, popularity")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// SetDefaults trims the joining point and, when one is chosen without a mode, selects Flight,
// the same default a quote applies.
func (r *TripDetailsRequest) SetDefaults() {
	r.JoiningPoint = strings.TrimSpace(r.JoiningPoint)
	r.TravelMode = strings.TrimSpace(r.TravelMode)
	if r.JoiningPoint != "" && r.TravelMode == "" {
		r.TravelMode = string(domain.TravelModeFlight)
	}
}

// Validate checks the optional travel mode.
func (r *TripDetailsRequest) Validate() error {
	errs := &ValidationErrors{}
	validateTravelMode(errs, r.TravelMode)
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the recommendation preferences.
func (r *RecommendRequest) Validate() error {
	errs := &ValidationErrors{}
	if r.MaxBudget < 0 {
		errs.Add("maxBudget", "maxBudget must be a non-negative number")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks the destination reference. Date problems are reported in the result body.
func (r *ValidateBookingRequest) Validate() error {
	errs := &ValidationErrors{}
	validateDestinationID(errs, r.DestinationID)
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the structural fields of a quote request.
// Date plausibility is reported in the quote itself.
func (r *QuoteRequest) Validate() error {
	errs := &ValidationErrors{}

	validateDestinationID(errs, r.DestinationID)
	validateTravelMode(errs, r.TravelMode)

	if r.Persons != 0 && (r.Persons < domain.MinPersons || r.Persons > domain.MaxPersons) {
		errs.Add("persons", "persons must be between 1 and 20")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ParseID parses a destination id path parameter.
func ParseID(raw string) (int64, error) {
	errs := &ValidationErrors{}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		errs.Add("id", "id must be a positive integer")
		return 0, errs
	}
	return id, nil
}

func validateDestinationID(errs *ValidationErrors, id int64) {
	if id <= 0 {
		errs.Add("destinationId", "destinationId must be a positive integer")
	}
}

func validateTravelMode(errs *ValidationErrors, mode string) {
	if mode != "" && !domain.TravelMode(mode).IsValid() {
		errs.Add("travelMode", "travelMode must be one of: Flight, Train, Bus")
	}
}

func validateOptionalDate(errs *ValidationErrors, field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}
	if _, ok := domain.ParseDate(value); !ok {
		errs.Add(field, field+" is not a valid date")
	}
}

// parsePriceParam reads an optional non-negative number; blank disables the bound.
func parsePriceParam(errs *ValidationErrors, field, raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || f != f {
		errs.Add(field, field+" must be a non-negative number")
		return nil
	}
	return &f
}
