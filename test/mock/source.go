// Package mock provides test doubles for the trip catalog.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific catalogs).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/aaplitrip/trip-catalog/internal/domain"
)

// Source is a configurable mock implementation of domain.DestinationSource.
// It supports configurable delays, errors, and catalogs for testing
// scenarios such as timeouts and backend outages.
type Source struct {
	name         string
	destinations []domain.Destination
	err          error
	delay        time.Duration
	callCount    int
	mu           sync.Mutex
}

// NewSource creates a new mock source with the given name.
// The source is configured using the builder pattern methods.
func NewSource(name string) *Source {
	return &Source{name: name}
}

// WithDestinations configures the source to return the given catalog.
func (s *Source) WithDestinations(destinations []domain.Destination) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destinations = destinations
	return s
}

// WithError configures the source to return the given error.
func (s *Source) WithError(err error) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
	return s
}

// Name returns the source identifier.
func (s *Source) Name() string {
	return s.name
}

// FetchDestinations implements domain.DestinationSource.
// It respects context cancellation, applies the configured delay,
// and returns a copy of the configured catalog or error.
func (s *Source) FetchDestinations(ctx context.Context) ([]domain.Destination, error) {
	s.mu.Lock()
	s.callCount++
	delay, err := s.delay, s.err
	catalog := make([]domain.Destination, len(s.destinations))
	for i, d := range s.destinations {
		catalog[i] = d.Clone()
	}
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if err != nil {
		return nil, err
	}

	return catalog, nil
}

// CallCount returns the number of times FetchDestinations was called.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Reset resets the call count to zero.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
}

// Ensure Source implements domain.DestinationSource at compile time.
var _ domain.DestinationSource = (*Source)(nil)

// SampleDestinations returns a small catalog covering the shapes the UI meets:
// domestic and international trips, a lowercase country, an unparseable price,
// and a record with most optional fields blank.
func SampleDestinations() []domain.Destination {
	return []domain.Destination{
		{
			ID:          1,
			Name:        "Goa",
			Description: "Visit the Basilica of Bom Jesus. Enjoy fresh seafood on the beach.",
			Price:       "4000",
			ImagePath:   "goa.jpg",
			Country:     "India",
			StartDate:   "2025-06-01",
			EndDate:     "2025-06-10",
			Route:       "Day 1: Arrive -> Day 2: Beach -> Day 3: Depart",
			Exposure:    "3 Days / 2 Nights",
			Variants: []domain.Variant{
				{SourceCity: "Mumbai", TravelMode: domain.TravelModeFlight, Price: 4500, Duration: "2 Days"},
				{SourceCity: "Mumbai", TravelMode: domain.TravelModeTrain, Price: 3000},
				{SourceCity: "Delhi", TravelMode: domain.TravelModeFlight, Price: 6000},
			},
		},
		{
			ID:          2,
			Name:        "Kerala",
			Description: "Houseboats on quiet backwaters.",
			Price:       "12000",
			Country:     "india",
			StartDate:   "2025-07-01",
			EndDate:     "2025-09-30",
			Route:       "Day 1: Kochi\nDay 2: Munnar\nDay 3: Alleppey",
			Exposure:    "6 Days / 5 Nights",
			Variants: []domain.Variant{
				{SourceCity: "Bangalore", TravelMode: domain.TravelModeTrain, Price: 11000},
			},
		},
		{
			ID:          3,
			Name:        "Dubai",
			Description: "Explore the desert dunes and the tallest tower in the world.",
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
			ID:       4,
			Name:     "Bali",
			Price:    "abc",
			Country:  "Indonesia",
			Exposure: "8 Days",
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
