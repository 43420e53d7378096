package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aaplitrip/trip-catalog/internal/domain"
	"github.com/aaplitrip/trip-catalog/internal/infrastructure/timeutil"
)

// Defaults used when a destination was authored without some fields.
const (
	DefaultDestinationName = "Amazing Destination"
	DefaultCountry         = "India"
	DefaultInternational   = "International"
	DefaultExposure        = "5 Days / 4 Nights"
	DefaultImagePath       = "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?q=80&w=2021&auto=format&fit=crop"
	DefaultTripDays        = 5

	// defaultStartOffsetDays is how far ahead an undated offering is assumed to open
	defaultStartOffsetDays = 30
)

// FillEmptyFields returns a copy of d with every blank display field backfilled.
//
// Backfilled fields: name, description, route, exposure, price, country, image, start and end
// date. Generated text references the destination name and country. Exposure is derived from
// the offering window when both dates are present. Price falls back to the cheapest variant
// price, or "0". Start date falls back to now + 30 days and end date to start + 5 days.
//
// The function is total: if the record cannot be completed (an unreadable start date while the
// end date is missing) it is returned unchanged. Applying it to its own output is a no-op.
func FillEmptyFields(d domain.Destination, now time.Time) domain.Destination {
	filled := d.Clone()

	if isBlank(filled.Country) {
		if d.IsDomestic() {
			filled.Country = DefaultCountry
		} else {
			filled.Country = DefaultInternational
		}
	}
	if isBlank(filled.Name) {
		filled.Name = DefaultDestinationName
	}
	if isBlank(filled.Description) {
		filled.Description = defaultDescription(filled.Name, filled.Country)
	}
	if isBlank(filled.Route) {
		filled.Route = defaultRoute(filled.Name)
	}
	if isBlank(filled.Exposure) {
		filled.Exposure = exposureFromWindow(d.StartDate, d.EndDate)
	}
	if isBlank(filled.Price) {
		filled.Price = defaultPrice(d.Variants)
	}
	if isBlank(filled.ImagePath) {
		filled.ImagePath = DefaultImagePath
	}

	if isBlank(filled.StartDate) {
		filled.StartDate = domain.FormatDate(timeutil.DateOf(now).AddDate(0, 0, defaultStartOffsetDays))
	}
	if isBlank(filled.EndDate) {
		start, ok := domain.ParseDate(filled.StartDate)
		if !ok {
			return d
		}
		filled.EndDate = domain.FormatDate(start.AddDate(0, 0, DefaultTripDays))
	}

	return filled
}

// ReconstructTripDetails builds the display and booking view of a destination.
//
// The destination is backfilled first. When both joiningPoint and mode are given and a variant
// matches, the variant's price, route description and duration override the destination's
// (each only when the variant provides it) and a snapshot of the variant is attached.
// Returns nil only when d is nil.
func ReconstructTripDetails(d *domain.Destination, joiningPoint string, mode domain.TravelMode, now time.Time) *domain.TripDetails {
	if d == nil {
		return nil
	}

	details := &domain.TripDetails{Destination: FillEmptyFields(*d, now)}

	if joiningPoint == "" || mode == "" {
		return details
	}

	v := FindVariant(details.Destination, joiningPoint, mode)
	if v == nil {
		return details
	}

	if v.HasPrice() {
		details.Price = domain.FormatAmount(v.Price)
	}
	if !isBlank(v.RouteDescription) {
		details.Route = v.RouteDescription
	}
	if !isBlank(v.Duration) {
		details.Exposure = v.Duration
	}
	details.SelectedVariant = v

	return details
}

// exposureFromWindow renders "N Days / N-1 Nights" from the offering window, or the default
// exposure when either date is missing or unreadable.
func exposureFromWindow(startDate, endDate string) string {
	start, okStart := domain.ParseDate(startDate)
	end, okEnd := domain.ParseDate(endDate)
	if !okStart || !okEnd {
		return DefaultExposure
	}

	days := daysBetween(start, end)
	nights := days - 1
	if nights < 0 {
		nights = 0
	}
	return fmt.Sprintf("%d Days / %d Nights", days, nights)
}

// defaultPrice is the cheapest variant price, or "0" when there are no variants.
func defaultPrice(variants []domain.Variant) string {
	if len(variants) == 0 {
		return "0"
	}
	min := math.Inf(1)
	for _, v := range variants {
		if v.Price < min {
			min = v.Price
		}
	}
	if min < 0 {
		min = 0
	}
	return domain.FormatAmount(min)
}

func defaultDescription(name, country string) string {
	return fmt.Sprintf("Discover the sights and culture of %s, %s. This curated package balances "+
		"sightseeing, leisure and local experiences, with comfortable stays, guided tours of the "+
		"best-known landmarks and time to explore at your own pace.", name, country)
}

func defaultRoute(name string) string {
	lines := []string{
		fmt.Sprintf("Day 1: Arrive in %s, hotel check-in and welcome briefing. Evening at leisure.", name),
		"Day 2: Guided sightseeing tour of the major attractions and landmarks.",
		fmt.Sprintf("Day 3: Explore the markets, cultural sites and local cuisine of %s.", name),
		"Day 4: Free day for optional activities, followed by an evening cultural program.",
		"Day 5: Last-minute shopping, farewell lunch and departure.",
	}
	return strings.Join(lines, "\n")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
