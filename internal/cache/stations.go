package cache

import (
	"sync"
	"time"

	"github.com/sevici/backend-go/internal/config"
	"github.com/sevici/backend-go/internal/models"
)

// StationCache holds a single in-memory station snapshot
type StationCache struct {
	stations    []models.Station
	lastUpdated time.Time
	ttl         time.Duration
	clock       clock
	mu          sync.RWMutex
}

func NewStationCache(cfg *config.CacheConfig) *StationCache {
	if cfg == nil {
		cfg = config.GetCacheConfig()
	}
	return &StationCache{
		stations:    make([]models.Station, 0),
		lastUpdated: time.Time{}, // Zero time to ensure first fetch
		ttl:         cfg.GetSnapshotTTL(),
		clock:       systemClock{},
	}
}

// GetStations returns a copy of the cached snapshot, or nil once expired
func (c *StationCache) GetStations() []models.Station {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.isExpired() {
		return nil
	}
	return copyStations(c.stations)
}

func (c *StationCache) SetStations(stations []models.Station) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stations = copyStations(stations)
	c.lastUpdated = c.clock.Now()
}

func (c *StationCache) LastUpdated() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastUpdated
}

func (c *StationCache) isExpired() bool {
	return c.clock.Now().Sub(c.lastUpdated) > c.ttl
}
