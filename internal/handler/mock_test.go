package handler

import (
	"context"

	"github.com/sevici/backend-go/internal/bikeshare"
	"github.com/sevici/backend-go/internal/models"
)

// mockBikeService implements bikeshare.BikeService for testing
type mockBikeService struct {
	overviewFn    func(ctx context.Context, query models.StationQuery) (*models.OverviewResponse, error)
	planRouteFn   func(ctx context.Context, origin, destination models.Point) (*models.RouteResponse, error)
	findStationFn func(ctx context.Context, name string) (*models.StationView, error)
}

var _ bikeshare.BikeService = (*mockBikeService)(nil)

func (m *mockBikeService) Overview(ctx context.Context, query models.StationQuery) (*models.OverviewResponse, error) {
	if m.overviewFn != nil {
		return m.overviewFn(ctx, query)
	}
	return &models.OverviewResponse{ResponseType: "stations"}, nil
}

func (m *mockBikeService) PlanRoute(ctx context.Context, origin, destination models.Point) (*models.RouteResponse, error) {
	if m.planRouteFn != nil {
		return m.planRouteFn(ctx, origin, destination)
	}
	return &models.RouteResponse{ResponseType: "route"}, nil
}

func (m *mockBikeService) FindStation(ctx context.Context, name string) (*models.StationView, error) {
	if m.findStationFn != nil {
		return m.findStationFn(ctx, name)
	}
	return nil, nil
}

func createTestStation(name string) models.Station {
	return models.Station{
		Name:           name,
		Address:        "Plaza Nueva",
		Latitude:       37.3887,
		Longitude:      -5.9953,
		Capacity:       20,
		FreeSlots:      5,
		AvailableBikes: 15,
	}
}

// staticSource serves a fixed snapshot to a real bikeshare.Service
type staticSource struct {
	stations []models.Station
}

func (s *staticSource) FetchStations(ctx context.Context) ([]models.Station, error) {
	return s.stations, nil
}
