package station

import "github.com/sevici/backend-go/internal/models"

// Classify buckets a station by the share of its docks holding a bike:
// at least two thirds is HIGH, at least one third is MEDIUM, anything
// above zero is LOW. Zero-capacity stations are EMPTY.
func Classify(s models.Station) models.Category {
	if s.Capacity <= 0 || s.AvailableBikes <= 0 {
		return models.CategoryEmpty
	}

	// Compare bikes/capacity against 2/3 and 1/3 without leaving integers.
	switch {
	case 3*s.AvailableBikes >= 2*s.Capacity:
		return models.CategoryHigh
	case 3*s.AvailableBikes >= s.Capacity:
		return models.CategoryMedium
	default:
		return models.CategoryLow
	}
}

// AvailabilityRatio returns bikes/capacity, or 0 for zero-capacity stations
func AvailabilityRatio(s models.Station) float64 {
	if s.Capacity <= 0 {
		return 0
	}
	return float64(s.AvailableBikes) / float64(s.Capacity)
}
