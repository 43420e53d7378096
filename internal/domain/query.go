package domain

// SortOption defines the available orderings for a destination list.
type SortOption string

// Available sort options.
const (
	// SortByPriceLow sorts by parsed base price ascending (cheapest first)
	SortByPriceLow SortOption = "price-low"

	// SortByPriceHigh sorts by parsed base price descending
	SortByPriceHigh SortOption = "price-high"

	// SortByNameAsc sorts by destination name using locale-aware collation
	SortByNameAsc SortOption = "name-asc"

	// SortByNameDesc is the reverse of SortByNameAsc
	SortByNameDesc SortOption = "name-desc"

	// SortByDurationShort sorts by extracted day count ascending
	SortByDurationShort SortOption = "duration-short"

	// SortByDurationLong sorts by extracted day count descending
	SortByDurationLong SortOption = "duration-long"

	// SortByPopularity sorts by number of variants descending.
	// Variant count is the only popularity signal the catalog carries.
	SortByPopularity SortOption = "popularity"
)

// IsValid checks if the sort option is a known value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByPriceLow, SortByPriceHigh, SortByNameAsc, SortByNameDesc,
		SortByDurationShort, SortByDurationLong, SortByPopularity:
		return true
	default:
		return false
	}
}

// DurationBucket groups destinations by trip length.
type DurationBucket string

// Duration buckets. DurationAll and the empty value disable the filter.
const (
	DurationAll    DurationBucket = "all"
	DurationShort  DurationBucket = "short"  // up to 3 days
	DurationMedium DurationBucket = "medium" // 4 to 6 days
	DurationLong   DurationBucket = "long"   // more than 6 days
)

// IsValid checks if the bucket is a known value (empty counts as "all").
func (b DurationBucket) IsValid() bool {
	switch b {
	case "", DurationAll, DurationShort, DurationMedium, DurationLong:
		return true
	default:
		return false
	}
}

// Contains reports whether a day count falls into the bucket.
// Unknown buckets accept everything.
func (b DurationBucket) Contains(days int) bool {
	switch b {
	case DurationShort:
		return days <= 3
	case DurationMedium:
		return days > 3 && days <= 6
	case DurationLong:
		return days > 6
	default:
		return true
	}
}

// CountryAll is the sentinel country value that disables the country filter.
const CountryAll = "all"

// FilterCriteria defines optional filters for a destination list.
// Every criterion is independent; zero values disable it and set criteria compose by AND.
type FilterCriteria struct {
	// Country keeps destinations whose country matches case-insensitively
	Country string `json:"country,omitempty"`

	// MinPrice and MaxPrice are inclusive bounds on the parsed base price
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// Duration keeps destinations whose day count falls into the bucket
	Duration DurationBucket `json:"duration,omitempty"`

	// StartDate keeps destinations starting on or after this date (YYYY-MM-DD)
	StartDate string `json:"startDate,omitempty"`
}

// IsEmpty reports whether no criterion is set.
func (f *FilterCriteria) IsEmpty() bool {
	if f == nil {
		return true
	}
	return (f.Country == "" || f.Country == CountryAll) &&
		f.MinPrice == nil && f.MaxPrice == nil &&
		(f.Duration == "" || f.Duration == DurationAll) &&
		f.StartDate == ""
}

// PriceRange is the numeric span of base prices across a catalog.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RecommendationPreferences steer the recommendation list.
type RecommendationPreferences struct {
	// PreferredCountry keeps only destinations with exactly this country
	PreferredCountry string `json:"preferredCountry,omitempty"`

	// MaxBudget keeps destinations whose base price does not exceed it
	MaxBudget float64 `json:"maxBudget,omitempty"`

	// PreferredDuration is exposure-style text ("5 Days") used for closeness ordering
	PreferredDuration string `json:"preferredDuration,omitempty"`
}

// MaxRecommendations caps the recommendation list.
const MaxRecommendations = 6
