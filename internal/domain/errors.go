package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the catalog use case and its adapters.
var (
	// ErrInvalidRequest indicates the caller supplied malformed input
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDestinationNotFound indicates no destination has the requested id
	ErrDestinationNotFound = errors.New("destination not found")

	// ErrCatalogUnavailable indicates the destination source could not be read
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// SourceError wraps a failure of a destination source.
type SourceError struct {
	// Source is the name of the failing source
	Source string

	// Err is the underlying error
	Err error

	// Retryable marks transient failures (network, 5xx)
	Retryable bool
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a non-retryable SourceError.
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}

// NewRetryableSourceError creates a SourceError that a retry loop may repeat.
func NewRetryableSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err, Retryable: true}
}

// IsRetryableSourceError reports whether err is a retryable SourceError.
func IsRetryableSourceError(err error) bool {
	var se *SourceError
	return errors.As(err, &se) && se.Retryable
}

// ValidationError is a field-level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest formats a message wrapped around ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsNotFound reports whether err wraps ErrDestinationNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDestinationNotFound)
}

// IsCatalogUnavailable reports whether err wraps ErrCatalogUnavailable.
func IsCatalogUnavailable(err error) bool {
	return errors.Is(err, ErrCatalogUnavailable)
}
