// Package wire decodes the destination catalog as served by the booking backend.
//
// The backend is lenient about types: prices and ids arrive as either JSON numbers or strings,
// and optional fields may be null. Decode normalises all of that into domain.Destination and
// skips records it cannot read instead of failing the whole catalog.
package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/aaplitrip/trip-catalog/internal/domain"
)

// ErrMalformed indicates the payload is not JSON at all.
var ErrMalformed = errors.New("malformed catalog payload")

// destinationRecord is one catalog entry as it appears on the wire.
type destinationRecord struct {
	ID          flexInt           `json:"dest_id"`
	Name        flexString        `json:"destination_name"`
	Description flexString        `json:"description"`
	Price       flexString        `json:"Price"`
	ImagePath   flexString        `json:"Imgpath"`
	Country     flexString        `json:"Country"`
	StartDate   flexString        `json:"start_date"`
	EndDate     flexString        `json:"end_date"`
	Route       flexString        `json:"route"`
	Exposure    flexString        `json:"exposure"`
	Variants    []json.RawMessage `json:"variants"`
}

// variantRecord is one variant entry as it appears on the wire.
type variantRecord struct {
	SourceCity       flexString `json:"source_city"`
	TravelMode       flexString `json:"travel_mode"`
	Price            flexFloat  `json:"price"`
	RouteDescription flexString `json:"route_description"`
	Duration         flexString `json:"duration"`
}

// Decode converts a catalog payload into destinations in payload order.
//
// Behavior:
//   - A top-level array is decoded element by element; unreadable elements are skipped
//   - Any other valid JSON value (object, null, scalar) or an empty body yields an empty catalog
//   - A body that is not JSON returns ErrMalformed
func Decode(data []byte) ([]domain.Destination, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []domain.Destination{}, nil
	}
	if !json.Valid(trimmed) {
		return nil, ErrMalformed
	}
	if trimmed[0] != '[' {
		return []domain.Destination{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, ErrMalformed
	}

	result := make([]domain.Destination, 0, len(raw))
	for _, elem := range raw {
		var rec destinationRecord
		if err := json.Unmarshal(elem, &rec); err != nil {
			continue
		}
		result = append(result, rec.toDomain())
	}
	return result, nil
}

// Encode serialises destinations in the wire layout. Decode(Encode(x)) reproduces x, except that
// an empty variant list comes back as nil.
func Encode(destinations []domain.Destination) ([]byte, error) {
	if destinations == nil {
		destinations = []domain.Destination{}
	}
	return json.Marshal(destinations)
}

func (r destinationRecord) toDomain() domain.Destination {
	d := domain.Destination{
		ID:          int64(r.ID),
		Name:        string(r.Name),
		Description: string(r.Description),
		Price:       string(r.Price),
		ImagePath:   string(r.ImagePath),
		Country:     string(r.Country),
		StartDate:   string(r.StartDate),
		EndDate:     string(r.EndDate),
		Route:       string(r.Route),
		Exposure:    string(r.Exposure),
	}

	if len(r.Variants) > 0 {
		d.Variants = make([]domain.Variant, 0, len(r.Variants))
	}
	for _, elem := range r.Variants {
		var v variantRecord
		if err := json.Unmarshal(elem, &v); err != nil {
			continue
		}
		d.Variants = append(d.Variants, domain.Variant{
			SourceCity:       string(v.SourceCity),
			TravelMode:       domain.TravelMode(v.TravelMode),
			Price:            float64(v.Price),
			RouteDescription: string(v.RouteDescription),
			Duration:         string(v.Duration),
		})
	}
	return d
}

// flexString accepts a JSON string, number or bool; null and composite values decode to "".
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*s = ""
		return nil
	}
	switch b[0] {
	case '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
	case 'n', '{', '[':
		*s = ""
	default:
		*s = flexString(b)
	}
	return nil
}

// flexInt accepts a JSON number or a numeric string; anything else decodes to 0.
type flexInt int64

func (i *flexInt) UnmarshalJSON(b []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	text := strings.TrimSpace(string(s))
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		*i = flexInt(n)
		return nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		*i = 0
		return nil
	}
	*i = flexInt(int64(f))
	return nil
}

// flexFloat accepts a JSON number or a price string ("4500", "4500/-").
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	*f = flexFloat(domain.ParsePrice(string(s)))
	return nil
}
