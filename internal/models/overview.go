package models

// StationQuery narrows a snapshot. An empty Address matches every station.
type StationQuery struct {
	Address         string  `json:"address"`
	MinAvailability float64 `json:"minAvailability"`
}

// StationView decorates a station with its availability classification
type StationView struct {
	Station
	Category          Category `json:"category"`
	MarkerColor       string   `json:"markerColor"`
	AvailabilityRatio float64  `json:"availabilityRatio"`
}

type OverviewResponse struct {
	ResponseType string        `json:"responseType"`
	Contract     string        `json:"contract"`
	Query        StationQuery  `json:"query"`
	Stations     []StationView `json:"stations"`
	Stats        Stats         `json:"stats"`
	Shown        int           `json:"shown"`
	Total        int           `json:"total"`
}

type LegKind string

const (
	LegWalkToStart LegKind = "WALK_TO_START"
	LegRide        LegKind = "RIDE"
	LegWalkFromEnd LegKind = "WALK_FROM_END"
)

// RouteLeg is a straight segment of the path overlay
type RouteLeg struct {
	Kind     LegKind `json:"kind"`
	From     Point   `json:"from"`
	To       Point   `json:"to"`
	Distance float64 `json:"distance"`
}

type RouteResponse struct {
	ResponseType string      `json:"responseType"`
	Contract     string      `json:"contract"`
	Origin       Point       `json:"origin"`
	Destination  Point       `json:"destination"`
	Start        StationView `json:"start"`
	End          StationView `json:"end"`
	SameStation  bool        `json:"sameStation"`
	Legs         []RouteLeg  `json:"legs"`
	RideDistance float64     `json:"rideDistance"`
}
