package cache

import (
	"context"

	"github.com/sevici/backend-go/internal/models"
)

// SnapshotStore caches the latest station list per contract. A miss is
// reported as (nil, nil).
type SnapshotStore interface {
	GetStations(ctx context.Context, contract string) ([]models.Station, error)
	SaveStations(ctx context.Context, contract string, stations []models.Station) error
}

func copyStations(stations []models.Station) []models.Station {
	if stations == nil {
		return nil
	}
	out := make([]models.Station, len(stations))
	copy(out, stations)
	return out
}
