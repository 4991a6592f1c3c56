package models

import "context"

// StationSource produces the current station snapshot for a contract.
type StationSource interface {
	FetchStations(ctx context.Context) ([]Station, error)
}
