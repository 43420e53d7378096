package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aaplitrip/trip-catalog/internal/domain"
	"github.com/aaplitrip/trip-catalog/internal/infrastructure/logger"
	"github.com/aaplitrip/trip-catalog/internal/infrastructure/timeutil"
)

// DefaultFetchTimeout bounds one catalog read when no configuration is given.
const DefaultFetchTimeout = 5 * time.Second

// CatalogUseCase defines the catalog operations exposed to the HTTP layer.
// Every operation reads a fresh catalog snapshot from the configured source.
type CatalogUseCase interface {
	// Browse runs search, filters and sort over the catalog.
	Browse(ctx context.Context, opts BrowseOptions) (*domain.BrowseResponse, error)

	// Countries lists the distinct countries of the catalog.
	Countries(ctx context.Context) ([]string, error)

	// TripDetails reconstructs the display and booking view of one destination.
	TripDetails(ctx context.Context, id int64, joiningPoint string, mode domain.TravelMode) (*domain.TripDetails, error)

	// TripSummary condenses one destination into duration, itinerary and highlights.
	TripSummary(ctx context.Context, id int64) (*domain.TripSummary, error)

	// VariantOptions compares the travel options departing from one joining point.
	VariantOptions(ctx context.Context, id int64, sourceCity string) (*domain.VariantOptions, error)

	// Recommend returns up to MaxRecommendations destinations matching the preferences.
	Recommend(ctx context.Context, prefs domain.RecommendationPreferences) ([]domain.Destination, error)

	// ValidateDates checks a requested travel window against a destination.
	ValidateDates(ctx context.Context, id int64, startDate, endDate string) (*domain.DateValidation, error)

	// Quote computes the figures a booking enquiry is submitted with.
	Quote(ctx context.Context, req domain.QuoteRequest) (*domain.BookingQuote, error)
}

// Config contains configuration options for the use case.
type Config struct {
	// FetchTimeout bounds one catalog read, retries included
	FetchTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{FetchTimeout: DefaultFetchTimeout}
}

// catalogUseCase implements CatalogUseCase over a DestinationSource.
type catalogUseCase struct {
	source       domain.DestinationSource
	clock        timeutil.Clock
	log          *logger.Logger
	fetchTimeout time.Duration
	newReference func() string
}

// NewCatalogUseCase creates a CatalogUseCase.
// A nil config uses DefaultConfig; a nil clock uses the system time; a nil log disables logging.
func NewCatalogUseCase(source domain.DestinationSource, clock timeutil.Clock, log *logger.Logger, config *Config) CatalogUseCase {
	cfg := DefaultConfig()
	if config != nil && config.FetchTimeout > 0 {
		cfg.FetchTimeout = config.FetchTimeout
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &catalogUseCase{
		source:       source,
		clock:        clock,
		log:          log,
		fetchTimeout: cfg.FetchTimeout,
		newReference: uuid.NewString,
	}
}

// Browse implements CatalogUseCase.Browse.
// Countries and price range describe the whole catalog so filter controls stay stable while the
// user narrows the list.
func (uc *catalogUseCase) Browse(ctx context.Context, opts BrowseOptions) (*domain.BrowseResponse, error) {
	startTime := time.Now()

	catalog, info, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if opts.Filters != nil && strings.TrimSpace(opts.Filters.StartDate) != "" {
		if _, ok := domain.ParseDate(opts.Filters.StartDate); !ok {
			logger.FromContext(ctx, uc.log).Warn().
				Str("start_date", opts.Filters.StartDate).
				Msg("Unreadable start date filter, returning unfiltered results")
		}
	}

	results := SearchDestinations(catalog, opts.Query)
	results = ApplyFilters(results, opts.Filters)
	if opts.SortBy != "" {
		results = SortDestinations(results, opts.SortBy)
	}

	response := domain.NewBrowseResponse(results, domain.BrowseMetadata{
		CatalogSize:  len(catalog),
		Countries:    UniqueCountries(catalog),
		PriceRange:   FindPriceRange(catalog),
		SortBy:       opts.SortBy,
		Source:       uc.source.Name(),
		SearchTimeMs: time.Since(startTime).Milliseconds(),
		CacheHit:     info.CacheHit,
	})
	return &response, nil
}

// Countries implements CatalogUseCase.Countries.
func (uc *catalogUseCase) Countries(ctx context.Context) ([]string, error) {
	catalog, _, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return UniqueCountries(catalog), nil
}

// TripDetails implements CatalogUseCase.TripDetails.
func (uc *catalogUseCase) TripDetails(ctx context.Context, id int64, joiningPoint string, mode domain.TravelMode) (*domain.TripDetails, error) {
	d, err := uc.findDestination(ctx, id)
	if err != nil {
		return nil, err
	}
	return ReconstructTripDetails(&d, strings.TrimSpace(joiningPoint), mode, uc.clock.Now()), nil
}

// TripSummary implements CatalogUseCase.TripSummary.
func (uc *catalogUseCase) TripSummary(ctx context.Context, id int64) (*domain.TripSummary, error) {
	d, err := uc.findDestination(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := GetTripSummary(d, uc.clock.Now())
	return &summary, nil
}

// VariantOptions implements CatalogUseCase.VariantOptions.
func (uc *catalogUseCase) VariantOptions(ctx context.Context, id int64, sourceCity string) (*domain.VariantOptions, error) {
	d, err := uc.findDestination(ctx, id)
	if err != nil {
		return nil, err
	}

	sourceCity = strings.TrimSpace(sourceCity)
	return &domain.VariantOptions{
		DestinationID: d.ID,
		SourceCity:    sourceCity,
		Comparison:    CompareVariants(d, sourceCity),
		BestPrice:     BestPriceVariant(d, sourceCity),
		TravelModes:   AvailableTravelModes(d),
	}, nil
}

// Recommend implements CatalogUseCase.Recommend.
func (uc *catalogUseCase) Recommend(ctx context.Context, prefs domain.RecommendationPreferences) ([]domain.Destination, error) {
	catalog, _, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return Recommend(catalog, prefs), nil
}

// ValidateDates implements CatalogUseCase.ValidateDates.
func (uc *catalogUseCase) ValidateDates(ctx context.Context, id int64, startDate, endDate string) (*domain.DateValidation, error) {
	d, err := uc.findDestination(ctx, id)
	if err != nil {
		return nil, err
	}

	errs := ValidateBookingDates(startDate, endDate, d, uc.clock.Now())
	return &domain.DateValidation{
		Valid:  len(errs) == 0,
		Errors: errs,
		Days:   CalculateDays(startDate, endDate),
	}, nil
}

// Quote implements CatalogUseCase.Quote.
//
// Behavior:
//   - Travel mode defaults to Flight and persons to 1
//   - Blank dates default to the reconstructed trip's dates, as the booking form prefills them
//   - The budget comes from the matched variant, else the (backfilled) base price
//   - Date problems are reported in Errors; structural problems return ErrInvalidRequest
func (uc *catalogUseCase) Quote(ctx context.Context, req domain.QuoteRequest) (*domain.BookingQuote, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := uc.findDestination(ctx, req.DestinationID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	details := ReconstructTripDetails(&d, req.JoiningPoint, req.TravelMode, now)

	startDate := strings.TrimSpace(req.StartDate)
	if startDate == "" {
		startDate = details.StartDate
	}
	endDate := strings.TrimSpace(req.EndDate)
	if endDate == "" {
		endDate = details.EndDate
	}

	unitPrice := CalculateTotalPrice(details.Destination, details.SelectedVariant, 1)
	budget := CalculateTotalPrice(details.Destination, details.SelectedVariant, req.Persons)

	errs := ValidateBookingDates(startDate, endDate, d, now)

	quote := &domain.BookingQuote{
		Reference:       uc.newReference(),
		DestinationID:   d.ID,
		DestinationName: details.Name,
		Country:         details.Country,
		Source:          req.JoiningPoint,
		TravelMode:      req.TravelMode,
		Duration:        details.Exposure,
		StartDate:       startDate,
		EndDate:         endDate,
		Persons:         req.Persons,
		UnitPrice:       unitPrice,
		Budget:          budget,
		FormattedBudget: FormatPrice(budget),
		SelectedVariant: details.SelectedVariant,
		Status:          domain.BookingPending,
		Errors:          errs,
	}

	logger.FromContext(ctx, uc.log).WithDestination(d.ID).Debug().
		Str("reference", quote.Reference).
		Str("joining_point", req.JoiningPoint).
		Str("travel_mode", string(req.TravelMode)).
		Int("persons", req.Persons).
		Float64("budget", budget).
		Bool("variant_matched", details.SelectedVariant != nil).
		Int("date_errors", len(errs)).
		Msg("Quote computed")

	return quote, nil
}

// findDestination loads the catalog and returns the destination with the given id.
func (uc *catalogUseCase) findDestination(ctx context.Context, id int64) (domain.Destination, error) {
	if id <= 0 {
		return domain.Destination{}, domain.WrapInvalidRequest("destination id must be a positive integer")
	}

	catalog, _, err := uc.loadCatalog(ctx)
	if err != nil {
		return domain.Destination{}, err
	}

	d, ok := FindDestination(catalog, id)
	if !ok {
		return domain.Destination{}, fmt.Errorf("%w: id %d", domain.ErrDestinationNotFound, id)
	}
	return d, nil
}

// loadCatalog reads the catalog with the fetch timeout and panic recovery.
// Any source failure is wrapped in ErrCatalogUnavailable.
func (uc *catalogUseCase) loadCatalog(ctx context.Context) (catalog []domain.Destination, info domain.FetchInfo, err error) {
	ctx, cancel := context.WithTimeout(ctx, uc.fetchTimeout)
	defer cancel()

	start := time.Now()
	log := logger.FromContext(ctx, uc.log).WithSource(uc.source.Name())

	// A misbehaving source must not take the request down with it
	defer func() {
		if r := recover(); r != nil {
			catalog = nil
			info = domain.FetchInfo{}
			err = fmt.Errorf("%w: source panic: %v", domain.ErrCatalogUnavailable, r)
			log.Error().Interface("panic", r).Msg("Catalog source panicked")
		}
	}()

	if cs, ok := uc.source.(domain.CachingSource); ok {
		catalog, info, err = cs.FetchDestinationsWithInfo(ctx)
	} else {
		catalog, err = uc.source.FetchDestinations(ctx)
	}

	if err != nil {
		log.Error().
			Err(err).
			Dur("elapsed", time.Since(start)).
			Msg("Catalog fetch failed")
		return nil, domain.FetchInfo{}, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	if catalog == nil {
		catalog = []domain.Destination{}
	}

	log.Debug().
		Int("destinations", len(catalog)).
		Bool("cache_hit", info.CacheHit).
		Dur("elapsed", time.Since(start)).
		Msg("Catalog loaded")
	return catalog, info, nil
}
