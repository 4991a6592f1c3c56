package station

import "github.com/sevici/backend-go/internal/models"

// Aggregate sums bikes and capacity over stations. OccupancyPercent is
// (1 - bikes/capacity) * 100 and is 0 when there is no capacity at all,
// which covers the empty fleet.
func Aggregate(stations []models.Station) models.Stats {
	stats := models.Stats{StationCount: len(stations)}
	for _, s := range stations {
		stats.TotalBikes += s.AvailableBikes
		stats.TotalCapacity += s.Capacity
	}

	if stats.TotalCapacity > 0 {
		stats.OccupancyPercent = (1 - float64(stats.TotalBikes)/float64(stats.TotalCapacity)) * 100
	}

	return stats
}
