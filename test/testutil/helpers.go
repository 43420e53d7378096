// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/aaplitrip/trip-catalog/internal/infrastructure/timeutil"
)

// TestNow is the fixed "today" used by date-dependent tests: 15 May 2025, 10:00 UTC.
var TestNow = time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)

// projectRoot returns the repository root (testutil is in test/testutil).
func projectRoot(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// TestDataPath returns the absolute path of a file in the test/testdata directory.
func TestDataPath(t *testing.T, filename string) string {
	t.Helper()
	return filepath.Join(projectRoot(t), "test", "testdata", filename)
}

// LoadTestJSON loads a JSON file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(TestDataPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// CatalogFilePath returns the path of the catalog shipped in data/ for local runs.
func CatalogFilePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(projectRoot(t), "data", "destinations.json")
}

// WriteTempFile writes content to a file in a per-test temporary directory and returns its path.
func WriteTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("Failed to write temp file %s: %v", name, err)
	}
	return path
}

// FixedClock returns a MockClock set to TestNow.
func FixedClock() *timeutil.MockClock {
	return timeutil.NewMockClock(TestNow)
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// DaysFrom returns the YYYY-MM-DD date n days after base.
func DaysFrom(base time.Time, n int) string {
	return base.AddDate(0, 0, n).Format("2006-01-02")
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to a float64.
// Convenience function for price filter tests.
func FloatPtr(f float64) *float64 {
	return &f
}
