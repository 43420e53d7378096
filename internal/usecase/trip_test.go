package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaplitrip/trip-catalog/internal/domain"
)

func TestFillEmptyFields_BareRecord(t *testing.T) {
	filled := FillEmptyFields(domain.Destination{ID: 10, Name: "Goa", Country: "India"}, testNow)

	assert.Equal(t, int64(10), filled.ID)
	assert.Equal(t, "Goa", filled.Name)
	assert.Contains(t, filled.Description, "Goa")
	assert.Contains(t, filled.Description, "India")
	assert.Contains(t, filled.Route, "Day 1:")
	assert.Contains(t, filled.Route, "Goa")
	assert.Equal(t, DefaultExposure, filled.Exposure)
	assert.Equal(t, "0", filled.Price)
	assert.Equal(t, DefaultImagePath, filled.ImagePath)
	assert.Equal(t, "2025-06-14", filled.StartDate)
	assert.Equal(t, "2025-06-19", filled.EndDate)
}

func TestFillEmptyFields_NoBlankFieldsRemain(t *testing.T) {
	inputs := []domain.Destination{
		{},
		{Name: "   ", Description: "\t"},
		{Country: "UAE"},
		{StartDate: "2025-08-01"},
		{EndDate: "2025-08-01"},
		mustFind(5),
	}

	for _, in := range inputs {
		filled := FillEmptyFields(in, testNow)
		for field, value := range map[string]string{
			"name": filled.Name, "description": filled.Description, "route": filled.Route,
			"exposure": filled.Exposure, "price": filled.Price, "country": filled.Country,
			"image": filled.ImagePath, "start": filled.StartDate, "end": filled.EndDate,
		} {
			assert.NotEmpty(t, value, "field %s left blank for %+v", field, in)
		}
	}
}

func TestFillEmptyFields_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		in    domain.Destination
		check func(t *testing.T, got domain.Destination)
	}{
		{
			name: "missing country is domestic",
			in:   domain.Destination{Name: "Ooty"},
			check: func(t *testing.T, got domain.Destination) {
				assert.Equal(t, DefaultCountry, got.Country)
				assert.Equal(t, DefaultDestinationName, FillEmptyFields(domain.Destination{}, testNow).Name)
			},
		},
		{
			name: "price from cheapest variant",
			in: domain.Destination{Variants: []domain.Variant{
				{SourceCity: "Mumbai", TravelMode: domain.TravelModeFlight, Price: 4500},
				{SourceCity: "Mumbai", TravelMode: domain.TravelModeTrain, Price: 3000},
			}},
			check: func(t *testing.T, got domain.Destination) {
				assert.Equal(t, "3000", got.Price)
			},
		},
		{
			name: "exposure from window",
			in:   domain.Destination{StartDate: "2025-06-01", EndDate: "2025-06-10"},
			check: func(t *testing.T, got domain.Destination) {
				assert.Equal(t, "9 Days / 8 Nights", got.Exposure)
			},
		},
		{
			name: "end date from start date",
			in:   domain.Destination{StartDate: "2025-08-01"},
			check: func(t *testing.T, got domain.Destination) {
				assert.Equal(t, "2025-08-06", got.EndDate)
				assert.Equal(t, DefaultExposure, got.Exposure)
			},
		},
		{
			name: "existing fields untouched",
			in:   mustFind(1),
			check: func(t *testing.T, got domain.Destination) {
				assert.Equal(t, mustFind(1), got)
			},
		},
		{
			name: "whitespace counts as blank",
			in:   domain.Destination{Name: "Goa", Description: "   "},
			check: func(t *testing.T, got domain.Destination) {
				assert.Contains(t, got.Description, "Goa")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, FillEmptyFields(tt.in, testNow))
		})
	}
}

func TestFillEmptyFields_Idempotent(t *testing.T) {
	inputs := append(sampleCatalog(), domain.Destination{}, domain.Destination{Country: "UAE", StartDate: "2025-07-01"})

	for _, in := range inputs {
		once := FillEmptyFields(in, testNow)
		twice := FillEmptyFields(once, testNow)
		assert.Equal(t, once, twice)

		// a later clock must not change an already filled record
		later := FillEmptyFields(once, testNow.AddDate(0, 3, 0))
		assert.Equal(t, once, later)
	}
}

func TestFillEmptyFields_UnreadableStartWithoutEnd(t *testing.T) {
	in := domain.Destination{Name: "Goa", StartDate: "soon"}

	assert.Equal(t, in, FillEmptyFields(in, testNow))
}

func TestFillEmptyFields_DoesNotMutateInput(t *testing.T) {
	in := mustFind(1)
	in.Price = ""

	filled := FillEmptyFields(in, testNow)
	filled.Variants[0].Price = 1

	assert.Equal(t, "", in.Price)
	assert.Equal(t, 4500.0, in.Variants[0].Price)
}

func TestFillEmptyFields_UsesCalendarDay(t *testing.T) {
	lateEvening := time.Date(2025, 5, 15, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "2025-06-14", FillEmptyFields(domain.Destination{}, lateEvening).StartDate)
}

func TestReconstructTripDetails(t *testing.T) {
	base := mustFind(1)

	t.Run("variant overrides price and duration", func(t *testing.T) {
		details := ReconstructTripDetails(&base, "Mumbai", domain.TravelModeFlight, testNow)

		require.NotNil(t, details)
		require.NotNil(t, details.SelectedVariant)
		assert.Equal(t, "4500", details.Price)
		assert.Equal(t, "2 Days", details.Exposure)
		assert.Equal(t, base.Route, details.Route)
		assert.Equal(t, base.Variants[0], *details.SelectedVariant)
	})

	t.Run("no joining point keeps base", func(t *testing.T) {
		details := ReconstructTripDetails(&base, "", domain.TravelModeFlight, testNow)

		require.NotNil(t, details)
		assert.Nil(t, details.SelectedVariant)
		assert.Equal(t, "4000", details.Price)
		assert.Equal(t, "3 Days / 2 Nights", details.Exposure)
	})

	t.Run("no mode keeps base", func(t *testing.T) {
		details := ReconstructTripDetails(&base, "Mumbai", "", testNow)

		require.NotNil(t, details)
		assert.Nil(t, details.SelectedVariant)
	})

	t.Run("no matching variant keeps base", func(t *testing.T) {
		details := ReconstructTripDetails(&base, "Chennai", domain.TravelModeTrain, testNow)

		require.NotNil(t, details)
		assert.Nil(t, details.SelectedVariant)
		assert.Equal(t, "4000", details.Price)
	})

	t.Run("partial variant only overrides what it provides", func(t *testing.T) {
		d := domain.Destination{
			Name:     "Coorg",
			Price:    "4000",
			Exposure: "3 Days / 2 Nights",
			Route:    "Day 1: Coffee estates",
			Variants: []domain.Variant{
				{SourceCity: "Bangalore", TravelMode: domain.TravelModeBus, RouteDescription: "Overnight bus -> Estates"},
			},
		}
		details := ReconstructTripDetails(&d, "Bangalore", domain.TravelModeBus, testNow)

		require.NotNil(t, details.SelectedVariant)
		assert.Equal(t, "4000", details.Price)
		assert.Equal(t, "Overnight bus -> Estates", details.Route)
		assert.Equal(t, "3 Days / 2 Nights", details.Exposure)
	})

	t.Run("fractional variant price", func(t *testing.T) {
		d := domain.Destination{Variants: []domain.Variant{
			{SourceCity: "Pune", TravelMode: domain.TravelModeTrain, Price: 4999.5},
		}}
		details := ReconstructTripDetails(&d, "Pune", domain.TravelModeTrain, testNow)

		assert.Equal(t, "4999.5", details.Price)
	})

	t.Run("backfills before merging", func(t *testing.T) {
		d := domain.Destination{Name: "Hampi"}
		details := ReconstructTripDetails(&d, "", "", testNow)

		assert.Equal(t, DefaultExposure, details.Exposure)
		assert.Equal(t, "2025-06-14", details.StartDate)
	})

	t.Run("nil destination", func(t *testing.T) {
		assert.Nil(t, ReconstructTripDetails(nil, "Mumbai", domain.TravelModeFlight, testNow))
	})

	t.Run("input not mutated", func(t *testing.T) {
		d := mustFind(1)
		_ = ReconstructTripDetails(&d, "Mumbai", domain.TravelModeFlight, testNow)

		assert.Equal(t, mustFind(1), d)
	})
}
