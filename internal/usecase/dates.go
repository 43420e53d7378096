package usecase

import (
	"fmt"
	"math"
	"time"

	"github.com/aaplitrip/trip-catalog/internal/domain"
	"github.com/aaplitrip/trip-catalog/internal/infrastructure/timeutil"
)

// Booking date validation messages.
const (
	MsgDatesRequired     = "Please select both start and end dates"
	MsgDatesMalformed    = "Dates must be in YYYY-MM-DD format"
	MsgStartInPast       = "Start date cannot be in the past"
	MsgEndBeforeStart    = "End date must be after start date"
	MsgTripTooShort      = "Trip must be at least 1 day"
	msgOutsideWindowTmpl = "Dates must be between %s and %s"
)

// ValidateBookingDates checks a requested travel window and returns every failure found.
//
// Checks (all reported, none short-circuits the others):
//   - start date not before today (calendar dates, time of day ignored)
//   - end date not before start date
//   - the range lies inside the destination's own window when it has one (inclusive)
//   - the trip lasts at least one day
//
// Missing or malformed dates make the other checks meaningless, so they are reported alone.
// An empty slice means the dates are acceptable.
func ValidateBookingDates(startDate, endDate string, d domain.Destination, now time.Time) []string {
	errs := []string{}

	if isBlank(startDate) || isBlank(endDate) {
		return append(errs, MsgDatesRequired)
	}

	start, okStart := domain.ParseDate(startDate)
	end, okEnd := domain.ParseDate(endDate)
	if !okStart || !okEnd {
		return append(errs, MsgDatesMalformed)
	}

	if start.Before(timeutil.DateOf(now)) {
		errs = append(errs, MsgStartInPast)
	}

	if end.Before(start) {
		errs = append(errs, MsgEndBeforeStart)
	}

	windowStart, okWS := domain.ParseDate(d.StartDate)
	windowEnd, okWE := domain.ParseDate(d.EndDate)
	if okWS && okWE && (start.Before(windowStart) || end.After(windowEnd)) {
		errs = append(errs, fmt.Sprintf(msgOutsideWindowTmpl, d.StartDate, d.EndDate))
	}

	if daysBetween(start, end) < 1 {
		errs = append(errs, MsgTripTooShort)
	}

	return errs
}

// CalculateDays returns the whole number of days between two wire dates (order ignored).
// Returns 0 when either date is missing or unreadable.
func CalculateDays(startDate, endDate string) int {
	start, okStart := domain.ParseDate(startDate)
	end, okEnd := domain.ParseDate(endDate)
	if !okStart || !okEnd {
		return 0
	}
	return daysBetween(start, end)
}

// daysBetween rounds the absolute distance between two instants up to whole days.
func daysBetween(a, b time.Time) int {
	diff := b.Sub(a)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}
