// Package timeutil provides the clock abstraction and the calendar-date helpers used by the
// catalog. Booking dates are plain calendar days, so every helper here works on dates pinned to
// midnight UTC regardless of where the process runs.
package timeutil

import (
	"sync"
	"time"
)

// Clock provides an abstraction over time.Now() for testability.
// Use RealClock in production and MockClock in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock uses the actual system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ZonedClock reports the time of an inner clock in a fixed location.
// "Today" for booking purposes is the calendar day in the business timezone,
// not the day on the server.
type ZonedClock struct {
	inner Clock
	loc   *time.Location
}

// NewZonedClock wraps inner so Now is expressed in loc.
func NewZonedClock(inner Clock, loc *time.Location) *ZonedClock {
	if loc == nil {
		loc = time.UTC
	}
	return &ZonedClock{inner: inner, loc: loc}
}

// Now returns the inner clock's time in the configured location.
func (z *ZonedClock) Now() time.Time {
	return z.inner.Now().In(z.loc)
}

// Location returns the configured location.
func (z *ZonedClock) Location() *time.Location {
	return z.loc
}

// MockClock returns a controllable time for testing.
// It is safe for concurrent use so it can back an HTTP test server.
type MockClock struct {
	mu        sync.RWMutex
	fixedTime time.Time
}

// NewMockClock creates a mock clock with the given fixed time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixedTime: t}
}

// NewMockClockFromString creates a mock clock from an RFC3339 time string.
// Panics if the time string is invalid (for use in tests only).
func NewMockClockFromString(timeStr string) *MockClock {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return &MockClock{fixedTime: t}
}

// Now returns the fixed time.
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fixedTime
}

// Set sets the mock clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	m.fixedTime = t
	m.mu.Unlock()
}

// Advance moves the mock clock forward by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.fixedTime = m.fixedTime.Add(d)
	m.mu.Unlock()
}

// AdvanceDays moves the mock clock forward by the given number of calendar days.
func (m *MockClock) AdvanceDays(days int) {
	m.mu.Lock()
	m.fixedTime = m.fixedTime.AddDate(0, 0, days)
	m.mu.Unlock()
}

// Ensure interfaces are implemented.
var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*ZonedClock)(nil)
	_ Clock = (*MockClock)(nil)
)
