package http

import "github.com/aaplitrip/trip-catalog/internal/domain"

// DestinationDTO is a destination as rendered to the browser UI.
// The wire fields are kept as the backend names them and display helpers are added.
type DestinationDTO struct {
	domain.Destination

	// FormattedPrice is the base price in rupees ("₹4,000"), empty when prices are hidden
	FormattedPrice string `json:"formatted_price"`

	// Days is the trip length extracted from the exposure text
	Days int `json:"days"`

	// IsDomestic decides which travel modes are offered
	IsDomestic bool `json:"is_domestic"`
}

// ListDestinationsResponse is the body of the destination listing.
type ListDestinationsResponse struct {
	Destinations []DestinationDTO `json:"destinations"`
	Metadata     ListMetadataDTO  `json:"metadata"`
}

// ListMetadataDTO extends the browse metadata with the price gating flag.
type ListMetadataDTO struct {
	domain.BrowseMetadata

	// PricesHidden is true when the caller has no session and prices were blanked
	PricesHidden bool `json:"prices_hidden"`
}

// TripDetailsDTO is the detail view of one destination.
type TripDetailsDTO struct {
	DestinationDTO

	// SelectedVariant is the variant merged into the view, nil when none matched
	SelectedVariant *domain.Variant `json:"selectedVariant,omitempty"`

	// FormattedItinerary renders the route as "Day N: activity" lines
	FormattedItinerary string `json:"formatted_itinerary"`

	// StartDateText and EndDateText are the long form dates ("1 June 2025")
	StartDateText string `json:"start_date_text"`
	EndDateText   string `json:"end_date_text"`

	PricesHidden bool `json:"prices_hidden"`
}

// TripSummaryDTO is the condensed overview of one destination.
type TripSummaryDTO struct {
	domain.TripSummary

	FormattedPrice string `json:"formattedPrice"`
	PricesHidden   bool   `json:"pricesHidden"`
}

// VariantOptionsDTO is the joining point comparison of one destination.
type VariantOptionsDTO struct {
	domain.VariantOptions

	PricesHidden bool `json:"pricesHidden"`
}

// RecommendationsResponse is the body of the recommendation endpoint.
type RecommendationsResponse struct {
	Destinations []DestinationDTO `json:"destinations"`
	PricesHidden bool             `json:"prices_hidden"`
}

// QuoteDTO is a booking quote with the display fields the confirmation screen shows.
type QuoteDTO struct {
	domain.BookingQuote

	Valid         bool   `json:"valid"`
	Days          int    `json:"days"`
	StartDateText string `json:"startDateText"`
	EndDateText   string `json:"endDateText"`
}

// CountriesResponse is the body of the country listing.
type CountriesResponse struct {
	Countries []string `json:"countries"`
}
