package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/aaplitrip/trip-catalog/internal/domain"
)

// UniqueCountries returns the distinct countries of the catalog in alphabetical order.
// Values keep their original case; blank countries are skipped.
func UniqueCountries(destinations []domain.Destination) []string {
	seen := make(map[string]struct{}, len(destinations))
	countries := make([]string, 0, len(destinations))

	for _, d := range destinations {
		if strings.TrimSpace(d.Country) == "" {
			continue
		}
		if _, ok := seen[d.Country]; ok {
			continue
		}
		seen[d.Country] = struct{}{}
		countries = append(countries, d.Country)
	}

	sort.Strings(countries)
	return countries
}

// FindPriceRange finds the minimum and maximum positive base price across the catalog.
// Returns {0, 0} when there are no destinations or none carries a positive price.
func FindPriceRange(destinations []domain.Destination) domain.PriceRange {
	min := math.MaxFloat64
	max := 0.0
	found := false

	for _, d := range destinations {
		price := d.BasePrice()
		if price <= 0 {
			continue
		}
		found = true
		if price < min {
			min = price
		}
		if price > max {
			max = price
		}
	}

	if !found {
		return domain.PriceRange{}
	}
	return domain.PriceRange{Min: min, Max: max}
}

// FindDestination returns the destination with the given id.
func FindDestination(destinations []domain.Destination, id int64) (domain.Destination, bool) {
	for _, d := range destinations {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Destination{}, false
}
