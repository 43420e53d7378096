// Package usecase provides the business logic of the trip catalog: querying the destination
// list, resolving variant prices, reconstructing trip details and validating booking dates.
// Everything except CatalogUseCase is pure and never mutates its input.
package usecase

import (
	"strings"

	"github.com/aaplitrip/trip-catalog/internal/domain"
)

// SearchDestinations keeps destinations whose name, country or description contains the query.
//
// Behavior:
//   - Matching is a case-insensitive substring match
//   - A blank query returns the input unchanged
//   - A nil input returns an empty slice
//   - Blank fields simply never match
func SearchDestinations(destinations []domain.Destination, query string) []domain.Destination {
	if destinations == nil {
		return []domain.Destination{}
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return destinations
	}

	result := make([]domain.Destination, 0, len(destinations))
	for _, d := range destinations {
		if matchesQuery(d, q) {
			result = append(result, d)
		}
	}
	return result
}

// matchesQuery checks a lower-cased query against the searchable fields.
func matchesQuery(d domain.Destination, q string) bool {
	return strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.Country), q) ||
		strings.Contains(strings.ToLower(d.Description), q)
}
