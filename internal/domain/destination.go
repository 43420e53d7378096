// Package domain contains the core business entities and rules for the trip catalog.
// These entities mirror the wire format served by the booking backend and form the
// foundation upon which all other components are built.
package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used on the wire (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// TravelMode identifies how a traveler reaches a destination from the joining point.
type TravelMode string

// Supported travel modes.
const (
	TravelModeFlight TravelMode = "Flight"
	TravelModeTrain  TravelMode = "Train"
	TravelModeBus    TravelMode = "Bus"
)

// IsValid checks if the travel mode is one of the supported values.
func (m TravelMode) IsValid() bool {
	switch m {
	case TravelModeFlight, TravelModeTrain, TravelModeBus:
		return true
	default:
		return false
	}
}

// Destination represents a travel package offered for sale.
// Optional text fields are empty strings when the admin left them blank.
type Destination struct {
	// ID is the backend identifier of the destination
	ID int64 `json:"dest_id"`

	// Name is the display name (e.g., "Goa")
	Name string `json:"destination_name"`

	// Description is free text shown on detail pages
	Description string `json:"description"`

	// Price is the base price per person as entered by the admin.
	// It is kept as text because the backend stores it that way; use ParsePrice to read it.
	Price string `json:"Price"`

	// ImagePath is the cover image reference
	ImagePath string `json:"Imgpath"`

	// Country decides domestic vs. international handling
	Country string `json:"Country"`

	// StartDate and EndDate bound the offering window (YYYY-MM-DD)
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	// Route is the itinerary text, usually "Day N: activity" lines
	Route string `json:"route"`

	// Exposure is the duration text, e.g. "5 Days / 4 Nights"
	Exposure string `json:"exposure"`

	// Variants are the purchasable (source city, travel mode) options in insertion order
	Variants []Variant `json:"variants"`
}

// Variant is a specific purchasable option for a Destination.
type Variant struct {
	// SourceCity is the joining point of the trip
	SourceCity string `json:"source_city"`

	// TravelMode is how the traveler gets there
	TravelMode TravelMode `json:"travel_mode"`

	// Price is the per-person price for this option
	Price float64 `json:"price"`

	// RouteDescription optionally replaces the destination itinerary
	RouteDescription string `json:"route_description,omitempty"`

	// Duration optionally replaces the destination exposure text
	Duration string `json:"duration,omitempty"`
}

// HasPrice reports whether the variant carries a usable price.
// A zero price is treated the same as a missing one.
func (v Variant) HasPrice() bool {
	return v.Price > 0
}

// ParsePrice converts a textual price into a number.
// Blank or unparseable input yields 0; a leading numeric prefix is honoured ("4500/-" -> 4500).
func ParsePrice(s string) float64 {
	prefix := numericPrefix.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return 0
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// numericPrefix matches the leading decimal number of a string.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// FormatAmount renders a numeric price the way the backend stores it ("4500", "4999.5").
func FormatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// BasePrice returns the parsed base price of the destination.
func (d Destination) BasePrice() float64 {
	return ParsePrice(d.Price)
}

// dayCountRegex extracts the day count from exposure text such as "5 Days / 4 Nights".
var dayCountRegex = regexp.MustCompile(`(?i)(\d+)\s*Days?`)

// ExtractDays returns the number of days encoded in an exposure string, or 0 if none.
func ExtractDays(exposure string) int {
	m := dayCountRegex.FindStringSubmatch(exposure)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// Days returns the trip length derived from the exposure text.
func (d Destination) Days() int {
	return ExtractDays(d.Exposure)
}

// IsDomestic reports whether the destination is in India.
// A destination without a country is treated as domestic.
func (d Destination) IsDomestic() bool {
	country := strings.ToLower(strings.TrimSpace(d.Country))
	if country == "" {
		return true
	}
	return country == "india" || country == "indian"
}

// ParseDate parses a wire date. The boolean is false for blank or malformed input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders t as a wire date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Clone returns a deep copy so callers can derive new values without touching the source record.
func (d Destination) Clone() Destination {
	c := d
	if d.Variants != nil {
		c.Variants = make([]Variant, len(d.Variants))
		copy(c.Variants, d.Variants)
	}
	return c
}
