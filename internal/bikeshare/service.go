package bikeshare

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/sevici/backend-go/internal/models"
	"github.com/sevici/backend-go/internal/station"
)

type Service struct {
	source   station.Source
	contract string
}

var _ BikeService = (*Service)(nil)

func NewService(source station.Source, contract string) *Service {
	return &Service{
		source:   source,
		contract: contract,
	}
}

func (s *Service) snapshot(ctx context.Context) ([]models.Station, error) {
	stations, err := s.source.FetchStations(ctx)
	if err != nil {
		return nil, NewProviderAPIError("fetching stations", err)
	}
	return stations, nil
}

// Overview narrows the snapshot by address, then by availability, and
// aggregates the stations left.
func (s *Service) Overview(ctx context.Context, query models.StationQuery) (*models.OverviewResponse, error) {
	if math.IsNaN(query.MinAvailability) || query.MinAvailability < 0 || query.MinAvailability > 1 {
		return nil, NewInvalidFilterError(fmt.Sprintf("minimum availability must be between 0 and 1, got %v", query.MinAvailability))
	}

	all, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	stations := all
	if query.Address != "" {
		stations = station.SearchByAddress(stations, query.Address)
	}
	stations = station.FilterByAvailability(stations, query.MinAvailability)

	log.Debug().
		Str("address", query.Address).
		Float64("min_availability", query.MinAvailability).
		Int("shown", len(stations)).
		Int("total", len(all)).
		Msg("Filtered stations")

	return &models.OverviewResponse{
		ResponseType: "stations",
		Contract:     s.contract,
		Query:        query,
		Stations:     newStationViews(stations),
		Stats:        station.Aggregate(stations),
		Shown:        len(stations),
		Total:        len(all),
	}, nil
}

// PlanRoute resolves pick-up and drop-off stations over the full snapshot
func (s *Service) PlanRoute(ctx context.Context, origin, destination models.Point) (*models.RouteResponse, error) {
	stations, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	route := station.ResolveRoute(stations, origin, destination)
	if !route.Complete() {
		return nil, &NoRouteError{MissingStart: !route.HasStart, MissingEnd: !route.HasEnd}
	}

	start, end := route.Start.Position(), route.End.Position()
	legs := []models.RouteLeg{
		{Kind: models.LegWalkToStart, From: origin, To: start, Distance: station.Distance(origin, start)},
		{Kind: models.LegRide, From: start, To: end, Distance: station.Distance(start, end)},
		{Kind: models.LegWalkFromEnd, From: end, To: destination, Distance: station.Distance(end, destination)},
	}

	return &models.RouteResponse{
		ResponseType: "route",
		Contract:     s.contract,
		Origin:       origin,
		Destination:  destination,
		Start:        NewStationView(route.Start),
		End:          NewStationView(route.End),
		SameStation:  route.Start == route.End,
		Legs:         legs,
		RideDistance: legs[1].Distance,
	}, nil
}

// FindStation looks a station up by exact name. It returns nil when absent.
func (s *Service) FindStation(ctx context.Context, name string) (*models.StationView, error) {
	stations, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	found, ok := station.FindByName(stations, name)
	if !ok {
		return nil, nil
	}
	view := NewStationView(found)
	return &view, nil
}
