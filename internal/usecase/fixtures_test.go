package usecase

import (
	"time"

	"github.com/aaplitrip/trip-catalog/internal/domain"
)

// testNow is the reference "today" used across the package tests.
var testNow = time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

// sampleCatalog returns five destinations covering the interesting shapes:
// lower-case country, unparseable price, missing dates and missing exposure.
func sampleCatalog() []domain.Destination {
	return []domain.Destination{
		{
			ID:          1,
			Name:        "Goa",
			Description: "Sunny beaches and fresh seafood",
			Price:       "4000",
			Country:     "India",
			StartDate:   "2025-06-01",
			EndDate:     "2025-06-10",
			Route:       "Day 1: Arrive in Panaji\nDay 2: North Goa beaches\nDay 3: Old Goa churches",
			Exposure:    "3 Days / 2 Nights",
			ImagePath:   "goa.jpg",
			Variants: []domain.Variant{
				{SourceCity: "Mumbai", TravelMode: domain.TravelModeFlight, Price: 4500, Duration: "2 Days"},
				{SourceCity: "Mumbai", TravelMode: domain.TravelModeTrain, Price: 3000},
				{SourceCity: "Delhi", TravelMode: domain.TravelModeFlight, Price: 6000},
			},
		},
		{
			ID:          2,
			Name:        "Kerala",
			Description: "Backwaters and houseboats",
			Price:       "12000",
			Country:     "india",
			StartDate:   "2025-07-01",
			EndDate:     "2025-09-30",
			Exposure:    "6 Days / 5 Nights",
			Variants: []domain.Variant{
				{SourceCity: "Bangalore", TravelMode: domain.TravelModeTrain, Price: 11000},
			},
		},
		{
			ID:          3,
			Name:        "Dubai",
			Description: "Desert safari and skyscrapers",
			Price:       "45000",
			Country:     "UAE",
			StartDate:   "2025-06-15",
			EndDate:     "2025-12-31",
			Exposure:    "5 Days / 4 Nights",
			Variants: []domain.Variant{
				{SourceCity: "Mumbai", TravelMode: domain.TravelModeFlight, Price: 42000},
				{SourceCity: "Delhi", TravelMode: domain.TravelModeFlight, Price: 47500},
			},
		},
		{
			ID:          4,
			Name:        "Bali",
			Description: "Temples and rice terraces",
			Price:       "abc",
			Country:     "Indonesia",
			Exposure:    "8 Days",
		},
		{
			ID:        5,
			Name:      "Ladakh",
			Price:     "28000",
			Country:   "India",
			StartDate: "2025-05-20",
			EndDate:   "2025-09-30",
		},
	}
}

// ids extracts destination ids in order.
func ids(destinations []domain.Destination) []int64 {
	out := make([]int64, len(destinations))
	for i, d := range destinations {
		out[i] = d.ID
	}
	return out
}

// mustFind returns the sample destination with the given id.
func mustFind(id int64) domain.Destination {
	d, ok := FindDestination(sampleCatalog(), id)
	if !ok {
		panic("fixture not found")
	}
	return d
}
