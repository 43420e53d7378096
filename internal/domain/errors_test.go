package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceError(t *testing.T) {
	tests := []struct {
		name          string
		source        string
		underlyingErr error
		retryable     bool
		wantContains  []string
	}{
		{
			name:          "file source",
			source:        "file",
			underlyingErr: errors.New("no such file"),
			wantContains:  []string{"file", "no such file"},
		},
		{
			name:          "remote source, retryable",
			source:        "remote",
			underlyingErr: errors.New("status 503"),
			retryable:     true,
			wantContains:  []string{"remote", "status 503"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err *SourceError
			if tt.retryable {
				err = NewRetryableSourceError(tt.source, tt.underlyingErr)
			} else {
				err = NewSourceError(tt.source, tt.underlyingErr)
			}

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}
			assert.True(t, errors.Is(err, tt.underlyingErr))
			assert.Equal(t, tt.retryable, err.Retryable)
			assert.Equal(t, tt.retryable, IsRetryableSourceError(fmt.Errorf("wrapped: %w", err)))
		})
	}
}

func TestIsRetryableSourceError_PlainError(t *testing.T) {
	assert.False(t, IsRetryableSourceError(errors.New("plain")))
	assert.False(t, IsRetryableSourceError(nil))
}

func TestErrorPredicates(t *testing.T) {
	invalid := WrapInvalidRequest("persons must be between %d and %d", 1, 20)
	notFound := fmt.Errorf("%w: id %d", ErrDestinationNotFound, 7)
	unavailable := fmt.Errorf("%w: %w", ErrCatalogUnavailable, NewSourceError("remote", errors.New("down")))

	assert.Equal(t, "invalid request: persons must be between 1 and 20", invalid.Error())
	assert.True(t, IsInvalidRequest(invalid))
	assert.False(t, IsInvalidRequest(notFound))

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(unavailable))

	assert.True(t, IsCatalogUnavailable(unavailable))
	assert.False(t, IsCatalogUnavailable(invalid))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("sortBy", "unknown value")

	assert.Equal(t, "sortBy: unknown value", err.Error())
}
