package bikeshare

import (
	"github.com/sevici/backend-go/internal/models"
	"github.com/sevici/backend-go/internal/station"
)

// MarkerColor maps a category to the map marker colour
func MarkerColor(c models.Category) string {
	switch c {
	case models.CategoryHigh:
		return "green"
	case models.CategoryMedium:
		return "orange"
	case models.CategoryLow:
		return "red"
	default:
		return "gray"
	}
}

// NewStationView classifies a station for presentation
func NewStationView(s models.Station) models.StationView {
	category := station.Classify(s)
	return models.StationView{
		Station:           s,
		Category:          category,
		MarkerColor:       MarkerColor(category),
		AvailabilityRatio: station.AvailabilityRatio(s),
	}
}

func newStationViews(stations []models.Station) []models.StationView {
	views := make([]models.StationView, len(stations))
	for i, s := range stations {
		views[i] = NewStationView(s)
	}
	return views
}
