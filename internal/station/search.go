package station

import (
	"strings"

	"github.com/sevici/backend-go/internal/models"
)

// DefaultMinAvailability is the bikes/capacity ratio used when callers
// don't ask for a specific one.
const DefaultMinAvailability = 0.5

// SearchByAddress returns the stations whose address contains query,
// ignoring case. An empty query matches everything.
func SearchByAddress(stations []models.Station, query string) []models.Station {
	needle := strings.ToLower(query)

	result := make([]models.Station, 0, len(stations))
	for _, s := range stations {
		if strings.Contains(strings.ToLower(s.Address), needle) {
			result = append(result, s)
		}
	}
	return result
}

// FilterByAvailability keeps stations with bikes/capacity >= minRatio.
// Stations without capacity never qualify.
func FilterByAvailability(stations []models.Station, minRatio float64) []models.Station {
	result := make([]models.Station, 0, len(stations))
	for _, s := range stations {
		if s.Capacity <= 0 {
			continue
		}
		if float64(s.AvailableBikes)/float64(s.Capacity) >= minRatio {
			result = append(result, s)
		}
	}
	return result
}

// FindByName returns the first station with the given name
func FindByName(stations []models.Station, name string) (models.Station, bool) {
	for _, s := range stations {
		if s.Name == name {
			return s, true
		}
	}
	return models.Station{}, false
}
