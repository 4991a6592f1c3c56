package bikeshare

import (
	"context"

	"github.com/sevici/backend-go/internal/models"
)

type BikeService interface {
	Overview(ctx context.Context, query models.StationQuery) (*models.OverviewResponse, error)
	PlanRoute(ctx context.Context, origin, destination models.Point) (*models.RouteResponse, error)
	FindStation(ctx context.Context, name string) (*models.StationView, error)
}
