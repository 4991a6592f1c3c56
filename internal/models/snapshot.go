package models

import "fmt"

// SnapshotRecord is a cached copy of the latest station list for one
// contract. Only the most recent snapshot is ever kept per contract.
type SnapshotRecord struct {
	Contract    string    `json:"contract" dynamodbav:"contract"`
	Stations    []Station `json:"stations" dynamodbav:"stations"`
	LastUpdated int64     `json:"lastUpdated" dynamodbav:"lastUpdated"`
	TTL         int64     `json:"ttl" dynamodbav:"ttl"`
}

// Validate checks if a SnapshotRecord's fields are valid
func (r *SnapshotRecord) Validate() error {
	if r.Contract == "" {
		return fmt.Errorf("contract is required")
	}

	for i, s := range r.Stations {
		if s.Capacity < 0 || s.FreeSlots < 0 || s.AvailableBikes < 0 {
			return fmt.Errorf("invalid station at index %d: negative counts", i)
		}
	}

	return nil
}

// Expired reports whether the record is stale at the given unix time
func (r *SnapshotRecord) Expired(now int64) bool {
	return now >= r.TTL
}
