package models

import "fmt"

// Station is a single bike dock location as reported by the provider.
// Stations are values: every refresh builds new ones and nothing mutates
// them in place.
type Station struct {
	Name           string  `json:"name" dynamodbav:"name"`
	Address        string  `json:"address" dynamodbav:"address"`
	Latitude       float64 `json:"latitude" dynamodbav:"latitude"`
	Longitude      float64 `json:"longitude" dynamodbav:"longitude"`
	Capacity       int     `json:"capacity" dynamodbav:"capacity"`
	FreeSlots      int     `json:"freeSlots" dynamodbav:"freeSlots"`
	AvailableBikes int     `json:"availableBikes" dynamodbav:"availableBikes"`
}

// Position returns the station coordinates as a Point
func (s Station) Position() Point {
	return Point{Latitude: s.Latitude, Longitude: s.Longitude}
}

// Point is a (latitude, longitude) pair in degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Category buckets a station by the share of its docks holding a bike.
// The zero value is CategoryEmpty and the constants are ordered so that a
// fuller station never compares lower than an emptier one.
type Category int

const (
	CategoryEmpty Category = iota
	CategoryLow
	CategoryMedium
	CategoryHigh
)

func (c Category) String() string {
	switch c {
	case CategoryLow:
		return "LOW"
	case CategoryMedium:
		return "MEDIUM"
	case CategoryHigh:
		return "HIGH"
	default:
		return "EMPTY"
	}
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	switch string(text) {
	case "EMPTY":
		*c = CategoryEmpty
	case "LOW":
		*c = CategoryLow
	case "MEDIUM":
		*c = CategoryMedium
	case "HIGH":
		*c = CategoryHigh
	default:
		return fmt.Errorf("unknown category %q", text)
	}
	return nil
}

// Stats aggregates a set of stations.
// OccupancyPercent is the share of capacity NOT holding a bike.
type Stats struct {
	TotalBikes       int     `json:"totalBikes"`
	TotalCapacity    int     `json:"totalCapacity"`
	OccupancyPercent float64 `json:"occupancyPercent"`
	StationCount     int     `json:"stationCount"`
}

// Route pairs the pick-up and drop-off stations for a trip. Either half may
// be missing when no station with bikes exists; check HasStart/HasEnd
// before reading Start/End.
type Route struct {
	Origin      Point
	Destination Point
	Start       Station
	End         Station
	HasStart    bool
	HasEnd      bool
}

// Complete reports whether both ends of the route were resolved
func (r Route) Complete() bool {
	return r.HasStart && r.HasEnd
}
