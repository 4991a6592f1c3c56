package station

import "github.com/sevici/backend-go/internal/models"

// ResolveRoute picks the pick-up station nearest to origin and the drop-off
// station nearest to destination. The two lookups are independent, so both
// ends may be the same station and either may be missing.
func ResolveRoute(stations []models.Station, origin, destination models.Point) models.Route {
	route := models.Route{Origin: origin, Destination: destination}
	route.Start, route.HasStart = NearestAvailable(stations, origin)
	route.End, route.HasEnd = NearestAvailable(stations, destination)
	return route
}
