package graph

import (
	"context"

	"github.com/sevici/backend-go/internal/api"
	"github.com/sevici/backend-go/internal/bikeshare"
	"github.com/sevici/backend-go/internal/models"
	"github.com/sevici/backend-go/internal/station"
)

type Resolver struct {
	Service bikeshare.BikeService
}

// Stations resolves Query.stations
func (r *Resolver) Stations(ctx context.Context, address *string, minAvailability *float64) (*models.OverviewResponse, error) {
	query := models.StationQuery{MinAvailability: station.DefaultMinAvailability}
	if address != nil {
		query.Address = *address
	}
	if minAvailability != nil {
		query.MinAvailability = *minAvailability
	}
	return r.Service.Overview(ctx, query)
}

// Route resolves Query.route
func (r *Resolver) Route(ctx context.Context, origin, destination models.Point) (*models.RouteResponse, error) {
	if err := api.ValidatePoint(origin); err != nil {
		return nil, err
	}
	if err := api.ValidatePoint(destination); err != nil {
		return nil, err
	}
	return r.Service.PlanRoute(ctx, origin, destination)
}

// Station resolves Query.station
func (r *Resolver) Station(ctx context.Context, name string) (*models.StationView, error) {
	return r.Service.FindStation(ctx, name)
}
