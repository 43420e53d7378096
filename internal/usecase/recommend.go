package usecase

import (
	"sort"

	"github.com/aaplitrip/trip-catalog/internal/domain"
)

// Recommend picks up to six destinations matching the caller's preferences.
//
// Behavior:
//   - PreferredCountry keeps exact country matches only
//   - MaxBudget keeps destinations whose base price does not exceed it
//   - PreferredDuration orders by closeness of the day count, then by price ascending
//   - Without a preferred duration the catalog order is kept
func Recommend(destinations []domain.Destination, prefs domain.RecommendationPreferences) []domain.Destination {
	result := make([]domain.Destination, 0, len(destinations))
	for _, d := range destinations {
		if prefs.PreferredCountry != "" && d.Country != prefs.PreferredCountry {
			continue
		}
		if prefs.MaxBudget > 0 && d.BasePrice() > prefs.MaxBudget {
			continue
		}
		result = append(result, d)
	}

	if prefs.PreferredDuration != "" {
		preferred := domain.ExtractDays(prefs.PreferredDuration)
		sort.SliceStable(result, func(i, j int) bool {
			di, dj := absInt(result[i].Days()-preferred), absInt(result[j].Days()-preferred)
			if di != dj {
				return di < dj
			}
			return result[i].BasePrice() < result[j].BasePrice()
		})
	}

	if len(result) > domain.MaxRecommendations {
		result = result[:domain.MaxRecommendations]
	}
	return result
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
