// Package http provides swagger type definitions for API documentation.
// These types mirror the response DTOs but are flattened here to help swag generate proper documentation.
package http

// SwaggerListResponse represents the destination listing response for swagger documentation.
// @Description Destination listing with catalog metadata
type SwaggerListResponse struct {
	// Destinations contains the matching destinations in display order
	Destinations []SwaggerDestination `json:"destinations"`

	// Metadata describes the listing and the catalog it ran over
	Metadata SwaggerListMetadata `json:"metadata"`
}

// SwaggerListMetadata contains metadata about a listing.
// @Description Metadata about the listing
type SwaggerListMetadata struct {
	TotalResults int      `json:"total_results" example:"3"`
	CatalogSize  int      `json:"catalog_size" example:"12"`
	Countries    []string `json:"countries" example:"India,Indonesia,UAE"`

	// PriceRange spans the catalog's base prices, {0,0} when prices are hidden
	PriceRange SwaggerPriceRange `json:"price_range"`

	SortBy       string `json:"sort_by,omitempty" example:"price-low"`
	Source       string `json:"source" example:"remote"`
	SearchTimeMs int64  `json:"search_time_ms" example:"4"`
	CacheHit     bool   `json:"cache_hit" example:"true"`
	PricesHidden bool   `json:"prices_hidden" example:"false"`
}

// SwaggerPriceRange is the numeric span of base prices.
// @Description Price slider bounds
type SwaggerPriceRange struct {
	Min float64 `json:"min" example:"4000"`
	Max float64 `json:"max" example:"45000"`
}

// SwaggerDestination represents one destination as rendered to the UI.
// @Description Travel package offered for sale
type SwaggerDestination struct {
	ID          int64  `json:"dest_id" example:"1"`
	Name        string `json:"destination_name" example:"Goa"`
	Description string `json:"description" example:"Sunny beaches and fresh seafood."`

	// Price is the base price per person as text, empty when prices are hidden
	Price     string `json:"Price" example:"4000"`
	ImagePath string `json:"Imgpath" example:"https://example.com/goa.jpg"`
	Country   string `json:"Country" example:"India"`
	StartDate string `json:"start_date" example:"2025-06-01"`
	EndDate   string `json:"end_date" example:"2025-06-10"`
	Route     string `json:"route" example:"Day 1: Arrive\nDay 2: Beach"`
	Exposure  string `json:"exposure" example:"3 Days / 2 Nights"`

	Variants []SwaggerVariant `json:"variants"`

	FormattedPrice string `json:"formatted_price" example:"₹4,000"`
	Days           int    `json:"days" example:"3"`
	IsDomestic     bool   `json:"is_domestic" example:"true"`
}

// SwaggerVariant represents a purchasable option of a destination.
// @Description Joining point and travel mode option
type SwaggerVariant struct {
	SourceCity       string  `json:"source_city" example:"Mumbai"`
	TravelMode       string  `json:"travel_mode" example:"Flight" enums:"Flight,Train,Bus"`
	Price            float64 `json:"price" example:"4500"`
	RouteDescription string  `json:"route_description,omitempty" example:"Day 1: Fly in"`
	Duration         string  `json:"duration,omitempty" example:"2 Days"`
}

// SwaggerTripDetails represents the detail view of a destination.
// @Description Destination backfilled with defaults and merged with the selected variant
type SwaggerTripDetails struct {
	SwaggerDestination

	SelectedVariant    *SwaggerVariant `json:"selectedVariant,omitempty"`
	FormattedItinerary string          `json:"formatted_itinerary" example:"Day 1: Arrive\nDay 2: Beach"`
	StartDateText      string          `json:"start_date_text" example:"1 June 2025"`
	EndDateText        string          `json:"end_date_text" example:"10 June 2025"`
	PricesHidden       bool            `json:"prices_hidden" example:"false"`
}

// SwaggerItineraryDay is one entry of a day-by-day plan.
// @Description Itinerary day
type SwaggerItineraryDay struct {
	Day      int    `json:"day" example:"1"`
	Activity string `json:"activity" example:"Arrive and check in"`
}

// SwaggerTripSummary represents the condensed overview of a destination.
// @Description Trip summary
type SwaggerTripSummary struct {
	Duration       string                `json:"duration" example:"3 Days / 2 Nights"`
	Days           int                   `json:"days" example:"3"`
	Itinerary      []SwaggerItineraryDay `json:"itinerary"`
	Highlights     []string              `json:"highlights" example:"Sunny beaches and fresh seafood"`
	StartDate      string                `json:"startDate" example:"2025-06-01"`
	EndDate        string                `json:"endDate" example:"2025-06-10"`
	IsDomestic     bool                  `json:"isDomestic" example:"true"`
	Description    string                `json:"description"`
	Country        string                `json:"country" example:"India"`
	Price          string                `json:"price" example:"4000"`
	FormattedPrice string                `json:"formattedPrice" example:"₹4,000"`
	PricesHidden   bool                  `json:"pricesHidden" example:"false"`
}

// SwaggerVariantComparison holds the flight and train options of a joining point.
// @Description Flight versus train
type SwaggerVariantComparison struct {
	Flight *SwaggerVariant `json:"flight"`
	Train  *SwaggerVariant `json:"train"`
	Best   *SwaggerVariant `json:"best"`
}

// SwaggerVariantOptions represents the travel options of a joining point.
// @Description Travel options from one joining point
type SwaggerVariantOptions struct {
	DestinationID int64                    `json:"destinationId" example:"1"`
	SourceCity    string                   `json:"sourceCity" example:"Mumbai"`
	Comparison    SwaggerVariantComparison `json:"comparison"`
	BestPrice     *SwaggerVariant          `json:"bestPrice"`
	TravelModes   []string                 `json:"travelModes" example:"Flight,Train"`
	PricesHidden  bool                     `json:"pricesHidden" example:"false"`
}

// SwaggerRecommendations represents the recommendation list.
// @Description Up to six recommended destinations
type SwaggerRecommendations struct {
	Destinations []SwaggerDestination `json:"destinations"`
	PricesHidden bool                 `json:"prices_hidden" example:"false"`
}

// SwaggerDateValidation represents the outcome of a date check.
// @Description Travel window validation
type SwaggerDateValidation struct {
	Valid  bool     `json:"valid" example:"false"`
	Errors []string `json:"errors" example:"End date must be after start date"`
	Days   int      `json:"days" example:"3"`
}

// SwaggerQuote represents a booking quote.
// @Description Figures attached to a booking enquiry
type SwaggerQuote struct {
	Reference       string          `json:"reference" example:"5b7f3a52-9c1e-4c55-8f0e-2f4f1c8e9a10"`
	DestinationID   int64           `json:"destinationId" example:"1"`
	DestinationName string          `json:"destinationName" example:"Goa"`
	Country         string          `json:"country" example:"India"`
	Source          string          `json:"source" example:"Mumbai"`
	TravelMode      string          `json:"travelMode" example:"Flight"`
	Duration        string          `json:"duration" example:"2 Days"`
	StartDate       string          `json:"startDate" example:"2025-06-02"`
	EndDate         string          `json:"endDate" example:"2025-06-05"`
	Persons         int             `json:"persons" example:"2"`
	UnitPrice       float64         `json:"unitPrice" example:"4500"`
	Budget          float64         `json:"budget" example:"9000"`
	FormattedBudget string          `json:"formattedBudget" example:"₹9,000"`
	SelectedVariant *SwaggerVariant `json:"selectedVariant,omitempty"`
	Status          string          `json:"status" example:"PENDING"`
	Errors          []string        `json:"errors"`
	Valid           bool            `json:"valid" example:"true"`
	Days            int             `json:"days" example:"3"`
	StartDateText   string          `json:"startDateText" example:"2 June 2025"`
	EndDateText     string          `json:"endDateText" example:"5 June 2025"`
}

// SwaggerErrorDetail contains structured error information.
// @Description Error details
type SwaggerErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
