package usecase

import (
	"math"

	"github.com/aaplitrip/trip-catalog/internal/domain"
)

// CalculateTotalPrice returns the budget for a group of persons.
// The variant price wins when the variant carries one; otherwise the destination base price
// (unparseable = 0) is used.
func CalculateTotalPrice(d domain.Destination, v *domain.Variant, persons int) float64 {
	if v != nil && v.HasPrice() {
		return v.Price * float64(persons)
	}
	return d.BasePrice() * float64(persons)
}

// FindVariant returns the first variant whose source city and travel mode both match.
// Returns nil when the destination has no variants or none matches; callers fall back to the
// base price. Duplicate (city, mode) pairs are not rejected, so the first one in catalog
// order wins.
func FindVariant(d domain.Destination, sourceCity string, mode domain.TravelMode) *domain.Variant {
	for _, v := range d.Variants {
		if v.SourceCity == sourceCity && v.TravelMode == mode {
			found := v
			return &found
		}
	}
	return nil
}

// BestPriceVariant returns the cheapest variant departing from sourceCity.
//
// Behavior:
//   - Ties keep the earlier variant
//   - Variants without a price rank last
//   - When no variant departs from sourceCity the first variant of the catalog entry is returned
//   - Returns nil when the destination has no variants
func BestPriceVariant(d domain.Destination, sourceCity string) *domain.Variant {
	if len(d.Variants) == 0 {
		return nil
	}

	var best *domain.Variant
	bestPrice := math.Inf(1)

	for i := range d.Variants {
		v := d.Variants[i]
		if v.SourceCity != sourceCity {
			continue
		}
		price := comparablePrice(v)
		if best == nil || price < bestPrice {
			found := v
			best = &found
			bestPrice = price
		}
	}

	if best == nil {
		first := d.Variants[0]
		return &first
	}
	return best
}

// comparablePrice maps a missing price to +Inf so it never wins a cheapest-first comparison.
func comparablePrice(v domain.Variant) float64 {
	if !v.HasPrice() {
		return math.Inf(1)
	}
	return v.Price
}

// CompareVariants returns the flight and train options departing from sourceCity and the better
// of the two. When both exist the strictly cheaper flight wins, otherwise the train; when only
// one exists it is the best; when neither exists the first variant from that city is the best.
func CompareVariants(d domain.Destination, sourceCity string) domain.VariantComparison {
	var (
		cmp       domain.VariantComparison
		firstCity *domain.Variant
	)

	for _, v := range d.Variants {
		if v.SourceCity != sourceCity {
			continue
		}
		v := v
		if firstCity == nil {
			firstCity = &v
		}
		switch v.TravelMode {
		case domain.TravelModeFlight:
			if cmp.Flight == nil {
				cmp.Flight = &v
			}
		case domain.TravelModeTrain:
			if cmp.Train == nil {
				cmp.Train = &v
			}
		}
	}

	switch {
	case cmp.Flight != nil && cmp.Train != nil:
		if cmp.Flight.Price < cmp.Train.Price {
			cmp.Best = cmp.Flight
		} else {
			cmp.Best = cmp.Train
		}
	case cmp.Flight != nil:
		cmp.Best = cmp.Flight
	case cmp.Train != nil:
		cmp.Best = cmp.Train
	default:
		cmp.Best = firstCity
	}

	return cmp
}

// AvailableTravelModes returns the modes offered for a destination.
// This is a fixed policy: domestic trips offer flight and train, international trips flight only,
// regardless of which variants exist.
func AvailableTravelModes(d domain.Destination) []domain.TravelMode {
	if d.IsDomestic() {
		return []domain.TravelMode{domain.TravelModeFlight, domain.TravelModeTrain}
	}
	return []domain.TravelMode{domain.TravelModeFlight}
}
