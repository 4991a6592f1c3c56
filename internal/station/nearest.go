package station

import (
	"math"

	"github.com/sevici/backend-go/internal/models"
)

// Distance is the straight-line distance between two points in degree
// space. It is not a great-circle distance.
func Distance(p1, p2 models.Point) float64 {
	dLat := p2.Latitude - p1.Latitude
	dLon := p2.Longitude - p1.Longitude
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// NearestAvailable returns the station closest to p that has at least one
// bike. On exact ties the earliest station in the input wins. The boolean
// is false when no station has bikes.
func NearestAvailable(stations []models.Station, p models.Point) (models.Station, bool) {
	var (
		best     models.Station
		bestDist float64
		found    bool
	)

	for _, s := range stations {
		if s.AvailableBikes <= 0 {
			continue
		}
		d := Distance(s.Position(), p)
		if !found || d < bestDist {
			best, bestDist, found = s, d, true
		}
	}

	return best, found
}
