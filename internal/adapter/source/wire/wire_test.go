package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaplitrip/trip-catalog/internal/domain"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantCount int
		wantErr   error
		check     func(*testing.T, []domain.Destination)
	}{
		{
			name: "full record",
			payload: `[{
				"dest_id": 1,
				"destination_name": "Goa",
				"description": "Beaches",
				"Price": "4000",
				"Imgpath": "goa.jpg",
				"Country": "India",
				"start_date": "2025-06-01",
				"end_date": "2025-06-10",
				"route": "Day 1: Arrive",
				"exposure": "3 Days / 2 Nights",
				"variants": [
					{"source_city": "Mumbai", "travel_mode": "Flight", "price": 4500, "route_description": "Fly", "duration": "2 Days"}
				]
			}]`,
			wantCount: 1,
			check: func(t *testing.T, ds []domain.Destination) {
				d := ds[0]
				assert.Equal(t, int64(1), d.ID)
				assert.Equal(t, "Goa", d.Name)
				assert.Equal(t, "4000", d.Price)
				assert.Equal(t, "goa.jpg", d.ImagePath)
				assert.Equal(t, "India", d.Country)
				assert.Equal(t, "2025-06-01", d.StartDate)
				assert.Equal(t, "3 Days / 2 Nights", d.Exposure)
				require.Len(t, d.Variants, 1)
				assert.Equal(t, domain.Variant{
					SourceCity:       "Mumbai",
					TravelMode:       domain.TravelModeFlight,
					Price:            4500,
					RouteDescription: "Fly",
					Duration:         "2 Days",
				}, d.Variants[0])
			},
		},
		{
			name:      "numeric price and string id",
			payload:   `[{"dest_id": "7", "destination_name": "Kerala", "Price": 12000.5, "variants": [{"source_city": "Delhi", "travel_mode": "Train", "price": "3500/-"}]}]`,
			wantCount: 1,
			check: func(t *testing.T, ds []domain.Destination) {
				assert.Equal(t, int64(7), ds[0].ID)
				assert.Equal(t, "12000.5", ds[0].Price)
				assert.Equal(t, 3500.0, ds[0].Variants[0].Price)
			},
		},
		{
			name:      "null fields decode to blanks",
			payload:   `[{"dest_id": 3, "destination_name": null, "Country": null, "variants": null}]`,
			wantCount: 1,
			check: func(t *testing.T, ds []domain.Destination) {
				assert.Empty(t, ds[0].Name)
				assert.Empty(t, ds[0].Country)
				assert.Nil(t, ds[0].Variants)
			},
		},
		{
			name:      "unreadable elements are skipped",
			payload:   `[42, "text", {"dest_id": 2, "destination_name": "Bali"}, {"dest_id": 3, "variants": [1, {"source_city": "Pune"}]}]`,
			wantCount: 2,
			check: func(t *testing.T, ds []domain.Destination) {
				assert.Equal(t, "Bali", ds[0].Name)
				require.Len(t, ds[1].Variants, 1)
				assert.Equal(t, "Pune", ds[1].Variants[0].SourceCity)
			},
		},
		{name: "object body is an empty catalog", payload: `{"message": "ok"}`, wantCount: 0},
		{name: "null body is an empty catalog", payload: `null`, wantCount: 0},
		{name: "empty body is an empty catalog", payload: "  \n", wantCount: 0},
		{name: "empty array", payload: `[]`, wantCount: 0},
		{name: "not JSON", payload: `<html>502</html>`, wantErr: ErrMalformed},
		{name: "truncated array", payload: `[{"dest_id": 1`, wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.payload))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Len(t, got, tt.wantCount)
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestEncode_DecodesBack(t *testing.T) {
	original := []domain.Destination{
		{
			ID:       1,
			Name:     "Goa",
			Price:    "4000",
			Country:  "India",
			Exposure: "3 Days / 2 Nights",
			Variants: []domain.Variant{
				{SourceCity: "Mumbai", TravelMode: domain.TravelModeFlight, Price: 4500, Duration: "2 Days"},
			},
		},
		{ID: 2, Name: "Dubai", Price: "25000", Country: "UAE"},
	}

	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestEncode_Nil(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}
