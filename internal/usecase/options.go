package usecase

import "github.com/aaplitrip/trip-catalog/internal/domain"

// BrowseOptions contains the user-supplied parameters of a catalog listing.
type BrowseOptions struct {
	// Query is free text matched against name, country and description
	Query string

	// Filters contains optional filtering criteria (nil = no filtering)
	Filters *domain.FilterCriteria

	// SortBy specifies the ordering (empty = catalog order)
	SortBy domain.SortOption
}

// DefaultBrowseOptions returns options that list the whole catalog in backend order.
func DefaultBrowseOptions() BrowseOptions {
	return BrowseOptions{}
}
