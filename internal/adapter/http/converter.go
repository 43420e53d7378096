package http

import (
	"strings"

	"github.com/aaplitrip/trip-catalog/internal/domain"
	"github.com/aaplitrip/trip-catalog/internal/usecase"
)

// ToBrowseOptions converts a validated ListDestinationsRequest to usecase.BrowseOptions.
// Validate must have been called so the price bounds are parsed.
func ToBrowseOptions(req *ListDestinationsRequest) usecase.BrowseOptions {
	filters := &domain.FilterCriteria{
		Country:   strings.TrimSpace(req.Country),
		MinPrice:  req.minPrice,
		MaxPrice:  req.maxPrice,
		Duration:  domain.DurationBucket(strings.ToLower(strings.TrimSpace(req.Duration))),
		StartDate: strings.TrimSpace(req.StartDate),
	}
	if filters.IsEmpty() {
		filters = nil
	}

	return usecase.BrowseOptions{
		Query:   req.Query,
		Filters: filters,
		SortBy:  domain.SortOption(strings.ToLower(strings.TrimSpace(req.SortBy))),
	}
}

// ToRecommendationPreferences converts a RecommendRequest to domain preferences.
func ToRecommendationPreferences(req *RecommendRequest) domain.RecommendationPreferences {
	return domain.RecommendationPreferences{
		PreferredCountry:  strings.TrimSpace(req.PreferredCountry),
		MaxBudget:         req.MaxBudget,
		PreferredDuration: strings.TrimSpace(req.PreferredDuration),
	}
}

// ToDomainQuoteRequest converts a QuoteRequest to domain.QuoteRequest.
func ToDomainQuoteRequest(req *QuoteRequest) domain.QuoteRequest {
	return domain.QuoteRequest{
		DestinationID: req.DestinationID,
		JoiningPoint:  strings.TrimSpace(req.JoiningPoint),
		TravelMode:    domain.TravelMode(req.TravelMode),
		Persons:       req.Persons,
		StartDate:     strings.TrimSpace(req.StartDate),
		EndDate:       strings.TrimSpace(req.EndDate),
	}
}

// ToDestinationDTO renders a destination, blanking prices when the session may not see them.
func ToDestinationDTO(d domain.Destination, session domain.Session) DestinationDTO {
	if !session.CanViewPrices() {
		d = domain.RedactPrices(d)
	}

	dto := DestinationDTO{
		Destination: d,
		Days:        d.Days(),
		IsDomestic:  d.IsDomestic(),
	}
	if session.CanViewPrices() {
		dto.FormattedPrice = usecase.FormatPriceText(d.Price)
	}
	return dto
}

// ToDestinationDTOs renders a list of destinations. A nil input yields an empty list.
func ToDestinationDTOs(destinations []domain.Destination, session domain.Session) []DestinationDTO {
	result := make([]DestinationDTO, 0, len(destinations))
	for _, d := range destinations {
		result = append(result, ToDestinationDTO(d, session))
	}
	return result
}

// ToListDestinationsResponse renders a browse pass. Without a session the price range is
// reported as {0,0} so slider bounds leak nothing.
func ToListDestinationsResponse(resp *domain.BrowseResponse, session domain.Session) ListDestinationsResponse {
	metadata := ListMetadataDTO{
		BrowseMetadata: resp.Metadata,
		PricesHidden:   !session.CanViewPrices(),
	}
	if metadata.PricesHidden {
		metadata.PriceRange = domain.PriceRange{}
	}

	return ListDestinationsResponse{
		Destinations: ToDestinationDTOs(resp.Destinations, session),
		Metadata:     metadata,
	}
}

// ToTripDetailsDTO renders the detail view of a destination.
func ToTripDetailsDTO(details *domain.TripDetails, session domain.Session) TripDetailsDTO {
	dto := TripDetailsDTO{
		DestinationDTO:     ToDestinationDTO(details.Destination, session),
		FormattedItinerary: usecase.FormatItinerary(details.Route),
		StartDateText:      usecase.FormatDate(details.StartDate),
		EndDateText:        usecase.FormatDate(details.EndDate),
		PricesHidden:       !session.CanViewPrices(),
	}

	if details.SelectedVariant != nil {
		v := *details.SelectedVariant
		if dto.PricesHidden {
			v.Price = 0
		}
		dto.SelectedVariant = &v
	}
	return dto
}

// ToTripSummaryDTO renders a trip summary.
func ToTripSummaryDTO(summary *domain.TripSummary, session domain.Session) TripSummaryDTO {
	dto := TripSummaryDTO{
		TripSummary:  *summary,
		PricesHidden: !session.CanViewPrices(),
	}
	if dto.PricesHidden {
		dto.Price = ""
	} else {
		dto.FormattedPrice = usecase.FormatPriceText(summary.Price)
	}
	return dto
}

// ToVariantOptionsDTO renders a joining point comparison.
func ToVariantOptionsDTO(opts *domain.VariantOptions, session domain.Session) VariantOptionsDTO {
	dto := VariantOptionsDTO{
		VariantOptions: *opts,
		PricesHidden:   !session.CanViewPrices(),
	}
	if dto.PricesHidden {
		dto.Comparison = domain.VariantComparison{
			Flight: redactVariant(opts.Comparison.Flight),
			Train:  redactVariant(opts.Comparison.Train),
			Best:   redactVariant(opts.Comparison.Best),
		}
		dto.BestPrice = redactVariant(opts.BestPrice)
	}
	return dto
}

// ToQuoteDTO renders a booking quote.
func ToQuoteDTO(quote *domain.BookingQuote) QuoteDTO {
	q := *quote
	if q.Errors == nil {
		q.Errors = []string{}
	}
	return QuoteDTO{
		BookingQuote:  q,
		Valid:         quote.Valid(),
		Days:          usecase.CalculateDays(quote.StartDate, quote.EndDate),
		StartDateText: usecase.FormatDate(quote.StartDate),
		EndDateText:   usecase.FormatDate(quote.EndDate),
	}
}

// redactVariant returns a copy of v without its price, nil for nil.
func redactVariant(v *domain.Variant) *domain.Variant {
	if v == nil {
		return nil
	}
	c := *v
	c.Price = 0
	return &c
}
