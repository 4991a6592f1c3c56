package graph

import (
	"context"

	"github.com/sevici/backend-go/internal/bikeshare"
	"github.com/sevici/backend-go/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockBikeService struct {
	mock.Mock
}

var _ bikeshare.BikeService = (*mockBikeService)(nil)

func (m *mockBikeService) Overview(ctx context.Context, query models.StationQuery) (*models.OverviewResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(*models.OverviewResponse)
	return resp, args.Error(1)
}

func (m *mockBikeService) PlanRoute(ctx context.Context, origin, destination models.Point) (*models.RouteResponse, error) {
	args := m.Called(ctx, origin, destination)
	resp, _ := args.Get(0).(*models.RouteResponse)
	return resp, args.Error(1)
}

func (m *mockBikeService) FindStation(ctx context.Context, name string) (*models.StationView, error) {
	args := m.Called(ctx, name)
	view, _ := args.Get(0).(*models.StationView)
	return view, args.Error(1)
}

func plazaNueva() models.StationView {
	return bikeshare.NewStationView(models.Station{
		Name:           "001_PLAZA NUEVA",
		Address:        "Plaza Nueva",
		Latitude:       37.3887,
		Longitude:      -5.9953,
		Capacity:       20,
		FreeSlots:      5,
		AvailableBikes: 15,
	})
}

func triana() models.StationView {
	return bikeshare.NewStationView(models.Station{
		Name:           "002_TRIANA",
		Address:        "Calle San Jacinto",
		Latitude:       37.3834,
		Longitude:      -6.0031,
		Capacity:       10,
		FreeSlots:      8,
		AvailableBikes: 2,
	})
}
