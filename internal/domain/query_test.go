package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortOption_IsValid(t *testing.T) {
	for _, s := range []SortOption{
		SortByPriceLow, SortByPriceHigh, SortByNameAsc, SortByNameDesc,
		SortByDurationShort, SortByDurationLong, SortByPopularity,
	} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, SortOption("rating").IsValid())
	assert.False(t, SortOption("").IsValid())
}

func TestDurationBucket(t *testing.T) {
	tests := []struct {
		bucket DurationBucket
		days   int
		want   bool
	}{
		{DurationShort, 0, true},
		{DurationShort, 3, true},
		{DurationShort, 4, false},
		{DurationMedium, 3, false},
		{DurationMedium, 4, true},
		{DurationMedium, 6, true},
		{DurationMedium, 7, false},
		{DurationLong, 6, false},
		{DurationLong, 7, true},
		{DurationAll, 42, true},
		{"", 1, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.bucket.Contains(tt.days), "%s contains %d", tt.bucket, tt.days)
	}

	assert.True(t, DurationBucket("").IsValid())
	assert.True(t, DurationLong.IsValid())
	assert.False(t, DurationBucket("weekend").IsValid())
}

func TestFilterCriteria_IsEmpty(t *testing.T) {
	price := 100.0

	tests := []struct {
		name     string
		criteria *FilterCriteria
		want     bool
	}{
		{name: "nil", criteria: nil, want: true},
		{name: "zero value", criteria: &FilterCriteria{}, want: true},
		{name: "all sentinels", criteria: &FilterCriteria{Country: CountryAll, Duration: DurationAll}, want: true},
		{name: "country", criteria: &FilterCriteria{Country: "India"}, want: false},
		{name: "min price", criteria: &FilterCriteria{MinPrice: &price}, want: false},
		{name: "max price", criteria: &FilterCriteria{MaxPrice: &price}, want: false},
		{name: "duration", criteria: &FilterCriteria{Duration: DurationShort}, want: false},
		{name: "start date", criteria: &FilterCriteria{StartDate: "2025-06-01"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.IsEmpty())
		})
	}
}
