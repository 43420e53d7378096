package usecase

import (
	"strings"
	"time"

	"github.com/aaplitrip/trip-catalog/internal/domain"
)

// ApplyFilters applies the given criteria to a list of destinations.
// It returns a new slice containing only destinations that match every set criterion.
//
// Behavior:
//   - Returns an empty slice for nil input
//   - Returns the original slice if criteria is nil
//   - Unset criteria are skipped; set criteria compose by AND
//   - An unparseable criteria start date leaves the list unfiltered
//   - Unparseable destination prices count as 0
//   - Does NOT mutate the original slice
//
// Example usage:
//
//	minPrice := float64(5000)
//	filtered := ApplyFilters(destinations, &domain.FilterCriteria{Country: "India", MinPrice: &minPrice})
func ApplyFilters(destinations []domain.Destination, criteria *domain.FilterCriteria) []domain.Destination {
	if destinations == nil {
		return []domain.Destination{}
	}
	if criteria == nil {
		return destinations
	}

	var startFrom *time.Time
	if strings.TrimSpace(criteria.StartDate) != "" {
		t, ok := domain.ParseDate(criteria.StartDate)
		if !ok {
			return destinations
		}
		startFrom = &t
	}

	result := make([]domain.Destination, 0, len(destinations))
	for _, d := range destinations {
		if passesAllFilters(d, criteria, startFrom) {
			result = append(result, d)
		}
	}
	return result
}

// passesAllFilters checks if a destination passes all filter criteria.
func passesAllFilters(d domain.Destination, c *domain.FilterCriteria, startFrom *time.Time) bool {
	if !matchesCountry(d, c.Country) {
		return false
	}

	if c.MinPrice != nil || c.MaxPrice != nil {
		price := d.BasePrice()
		if c.MinPrice != nil && price < *c.MinPrice {
			return false
		}
		if c.MaxPrice != nil && price > *c.MaxPrice {
			return false
		}
	}

	if !c.Duration.Contains(d.Days()) {
		return false
	}

	if startFrom != nil && !startsOnOrAfter(d, *startFrom) {
		return false
	}

	return true
}

// matchesCountry compares countries case-insensitively; blank and "all" match everything.
func matchesCountry(d domain.Destination, country string) bool {
	if country == "" || strings.EqualFold(country, domain.CountryAll) {
		return true
	}
	return strings.EqualFold(d.Country, country)
}

// startsOnOrAfter reports whether the destination window opens on or after the given date.
// Destinations without a readable start date never match.
func startsOnOrAfter(d domain.Destination, from time.Time) bool {
	start, ok := domain.ParseDate(d.StartDate)
	if !ok {
		return false
	}
	return !start.Before(from)
}

// FilterByCountry keeps destinations in the given country (case-insensitive).
// Returns all destinations if country is blank or "all".
func FilterByCountry(destinations []domain.Destination, country string) []domain.Destination {
	return ApplyFilters(destinations, &domain.FilterCriteria{Country: country})
}

// FilterByPriceRange keeps destinations whose base price lies within [min, max].
// Nil bounds are open.
func FilterByPriceRange(destinations []domain.Destination, min, max *float64) []domain.Destination {
	return ApplyFilters(destinations, &domain.FilterCriteria{MinPrice: min, MaxPrice: max})
}

// FilterByDuration keeps destinations whose day count falls into the bucket.
func FilterByDuration(destinations []domain.Destination, bucket domain.DurationBucket) []domain.Destination {
	return ApplyFilters(destinations, &domain.FilterCriteria{Duration: bucket})
}
