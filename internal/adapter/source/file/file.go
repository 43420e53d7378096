// Package file provides a DestinationSource that reads the catalog from a JSON document on disk.
// It serves local development and demo deployments that run without the booking backend.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aaplitrip/trip-catalog/internal/adapter/source/wire"
	"github.com/aaplitrip/trip-catalog/internal/domain"
)

// SourceName is the identifier of the file source.
const SourceName = "file"

// Source reads destinations from a JSON file on every fetch.
type Source struct {
	path string
}

// NewSource creates a Source for the file at path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Name returns the source identifier.
func (s *Source) Name() string {
	return SourceName
}

// FetchDestinations reads and decodes the catalog file.
// A file that holds valid JSON other than an array yields an empty catalog.
func (s *Source) FetchDestinations(ctx context.Context) ([]domain.Destination, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewSourceError(SourceName, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NewSourceError(SourceName, fmt.Errorf("catalog file %s not found", s.path))
		}
		return nil, domain.NewSourceError(SourceName, fmt.Errorf("read catalog file: %w", err))
	}

	destinations, err := wire.Decode(data)
	if err != nil {
		return nil, domain.NewSourceError(SourceName, fmt.Errorf("decode %s: %w", s.path, err))
	}
	return destinations, nil
}

var _ domain.DestinationSource = (*Source)(nil)
