package domain

import (
	"fmt"
	"strings"
)

// BookingStatus is the lifecycle state of an enquiry held by the backend.
type BookingStatus string

// Booking statuses.
const (
	BookingPending   BookingStatus = "PENDING"
	BookingApproved  BookingStatus = "APPROVED"
	BookingRejected  BookingStatus = "REJECTED"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// bookingTransitions lists the states reachable from each state.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingApproved, BookingRejected},
	BookingApproved:  {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCancelled},
}

// IsValid checks if the status is a known value.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected, BookingConfirmed, BookingCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the backend lifecycle allows moving from s to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s BookingStatus) IsTerminal() bool {
	return s.IsValid() && len(bookingTransitions[s]) == 0
}

// Person limits for a single enquiry.
const (
	MinPersons = 1
	MaxPersons = 20
)

// QuoteRequest carries the booking form inputs that determine price and dates.
type QuoteRequest struct {
	DestinationID int64      `json:"destinationId"`
	JoiningPoint  string     `json:"joiningPoint"`
	TravelMode    TravelMode `json:"travelMode,omitempty"`
	Persons       int        `json:"persons"`
	StartDate     string     `json:"startDate"`
	EndDate       string     `json:"endDate"`
}

// SetDefaults applies default values to empty optional fields.
func (q *QuoteRequest) SetDefaults() {
	if q.TravelMode == "" {
		q.TravelMode = TravelModeFlight
	}
	if q.Persons == 0 {
		q.Persons = MinPersons
	}
	q.JoiningPoint = strings.TrimSpace(q.JoiningPoint)
}

// Validate checks the structural constraints of the request.
// Date plausibility is reported through the quote's Errors, not here.
func (q *QuoteRequest) Validate() error {
	if q.DestinationID <= 0 {
		return fmt.Errorf("%w: destinationId must be a positive integer", ErrInvalidRequest)
	}
	if q.TravelMode != "" && !q.TravelMode.IsValid() {
		return fmt.Errorf("%w: travelMode must be one of: Flight, Train, Bus; got %q", ErrInvalidRequest, q.TravelMode)
	}
	if q.Persons < MinPersons || q.Persons > MaxPersons {
		return fmt.Errorf("%w: persons must be between %d and %d", ErrInvalidRequest, MinPersons, MaxPersons)
	}
	return nil
}

// BookingQuote is the set of figures the booking form attaches to an enquiry before submission.
type BookingQuote struct {
	// Reference identifies this quote on receipts
	Reference string `json:"reference"`

	DestinationID   int64      `json:"destinationId"`
	DestinationName string     `json:"destinationName"`
	Country         string     `json:"country"`
	Source          string     `json:"source"`
	TravelMode      TravelMode `json:"travelMode"`
	Duration        string     `json:"duration"`
	StartDate       string     `json:"startDate"`
	EndDate         string     `json:"endDate"`
	Persons         int        `json:"persons"`

	// UnitPrice is the per-person price that was applied
	UnitPrice float64 `json:"unitPrice"`

	// Budget is UnitPrice multiplied by Persons
	Budget          float64 `json:"budget"`
	FormattedBudget string  `json:"formattedBudget"`

	// SelectedVariant is set when the joining point and mode matched a variant
	SelectedVariant *Variant `json:"selectedVariant,omitempty"`

	Status BookingStatus `json:"status"`

	// Errors lists date validation failures; the quote is bookable only when empty
	Errors []string `json:"errors"`
}

// Valid reports whether the quote passed date validation.
func (q *BookingQuote) Valid() bool {
	return len(q.Errors) == 0
}
