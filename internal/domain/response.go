package domain

// BrowseResponse is the result of a search/filter/sort pass over the catalog.
type BrowseResponse struct {
	// Destinations contains the matching destinations in display order
	Destinations []Destination `json:"destinations"`

	// Metadata describes the pass
	Metadata BrowseMetadata `json:"metadata"`
}

// BrowseMetadata contains information about a browse pass and the catalog it ran over.
type BrowseMetadata struct {
	// TotalResults is the number of destinations returned
	TotalResults int `json:"total_results"`

	// CatalogSize is the number of destinations before search and filters
	CatalogSize int `json:"catalog_size"`

	// Countries lists the distinct countries of the whole catalog (filter options)
	Countries []string `json:"countries"`

	// PriceRange spans the base prices of the whole catalog (slider bounds)
	PriceRange PriceRange `json:"price_range"`

	// SortBy echoes the applied ordering, empty when the catalog order was kept
	SortBy SortOption `json:"sort_by,omitempty"`

	// Source names the catalog source that served the data
	Source string `json:"source"`

	// SearchTimeMs is the total duration of the pass in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`

	// CacheHit indicates whether the catalog came from cache
	CacheHit bool `json:"cache_hit"`
}

// NewBrowseResponse creates a BrowseResponse, normalising a nil result to an empty list.
func NewBrowseResponse(destinations []Destination, metadata BrowseMetadata) BrowseResponse {
	if destinations == nil {
		destinations = []Destination{}
	}
	if metadata.Countries == nil {
		metadata.Countries = []string{}
	}
	metadata.TotalResults = len(destinations)
	return BrowseResponse{
		Destinations: destinations,
		Metadata:     metadata,
	}
}
