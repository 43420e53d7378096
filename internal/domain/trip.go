package domain

// TripDetails is the display and booking view of a destination: base fields backfilled with
// defaults and, when a matching variant was selected, overridden by that variant.
// It is derived on demand and never persisted.
type TripDetails struct {
	Destination

	// SelectedVariant is a snapshot of the variant that was merged, nil when none matched
	SelectedVariant *Variant `json:"selectedVariant,omitempty"`
}

// ItineraryDay is one entry of a day-by-day plan.
type ItineraryDay struct {
	Day      int    `json:"day"`
	Activity string `json:"activity"`
}

// TripSummary is the condensed overview rendered on detail and confirmation screens.
type TripSummary struct {
	Duration    string         `json:"duration"`
	Days        int            `json:"days"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Highlights  []string       `json:"highlights"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	IsDomestic  bool           `json:"isDomestic"`
	Description string         `json:"description"`
	Country     string         `json:"country"`
	Price       string         `json:"price"`
}

// VariantComparison holds the flight and train options for one joining point.
type VariantComparison struct {
	Flight *Variant `json:"flight"`
	Train  *Variant `json:"train"`
	Best   *Variant `json:"best"`
}

// VariantOptions is everything the booking form needs to offer a joining point's choices.
type VariantOptions struct {
	DestinationID int64             `json:"destinationId"`
	SourceCity    string            `json:"sourceCity"`
	Comparison    VariantComparison `json:"comparison"`
	BestPrice     *Variant          `json:"bestPrice"`
	TravelModes   []TravelMode      `json:"travelModes"`
}

// DateValidation is the outcome of checking a requested travel window.
type DateValidation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`

	// Days is the requested trip length, 0 when the dates are unusable
	Days int `json:"days"`
}
