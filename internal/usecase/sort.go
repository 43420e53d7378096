package usecase

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/aaplitrip/trip-catalog/internal/domain"
)

// collationLanguage drives the locale-aware name ordering.
var collationLanguage = language.English

// SortDestinations sorts destinations according to the specified sort option.
// Uses stable sorting so destinations with equal keys keep their relative order.
//
// Sort options:
//   - SortByPriceLow / SortByPriceHigh: by parsed base price (unparseable = 0)
//   - SortByNameAsc / SortByNameDesc: by name, locale-aware collation
//   - SortByDurationShort / SortByDurationLong: by day count extracted from the exposure text
//   - SortByPopularity: by number of variants, most first
//
// Behavior:
//   - Returns an empty slice for nil input
//   - Unknown or empty sortBy keeps the input order
//   - Always returns a copy; the input slice is never reordered
func SortDestinations(destinations []domain.Destination, sortBy domain.SortOption) []domain.Destination {
	if destinations == nil {
		return []domain.Destination{}
	}

	// Copy to avoid mutating input
	result := make([]domain.Destination, len(destinations))
	copy(result, destinations)

	if len(result) < 2 {
		return result
	}

	switch sortBy {
	case domain.SortByPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].BasePrice() < result[j].BasePrice()
		})
	case domain.SortByPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].BasePrice() > result[j].BasePrice()
		})
	case domain.SortByNameAsc:
		col := collate.New(collationLanguage)
		sort.SliceStable(result, func(i, j int) bool {
			return col.CompareString(result[i].Name, result[j].Name) < 0
		})
	case domain.SortByNameDesc:
		col := collate.New(collationLanguage)
		sort.SliceStable(result, func(i, j int) bool {
			return col.CompareString(result[i].Name, result[j].Name) > 0
		})
	case domain.SortByDurationShort:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Days() < result[j].Days()
		})
	case domain.SortByDurationLong:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Days() > result[j].Days()
		})
	case domain.SortByPopularity:
		sort.SliceStable(result, func(i, j int) bool {
			return len(result[i].Variants) > len(result[j].Variants)
		})
	}

	return result
}
