package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"
	"github.com/sevici/backend-go/internal/config"
	"github.com/sevici/backend-go/internal/models"
)

// LRUCacheEntry wraps the cached data with metadata
type LRUCacheEntry struct {
	Stations  []models.Station
	ExpiresAt time.Time
}

// SnapshotService provides a two-layer snapshot cache: an in-process LRU
// keyed by contract in front of an optional remote store (S3 or DynamoDB).
type SnapshotService struct {
	lru          *lru.Cache[string, *LRUCacheEntry]
	remote       SnapshotStore
	ttl          time.Duration
	enableLRU    bool
	clock        clock
	lruHits      atomic.Uint64
	lruMisses    atomic.Uint64
	remoteHits   atomic.Uint64
	remoteMisses atomic.Uint64
}

var _ SnapshotStore = (*SnapshotService)(nil)

// NewSnapshotService creates the cache service. remote may be nil.
func NewSnapshotService(cfg *config.CacheConfig, remote SnapshotStore) (*SnapshotService, error) {
	if cfg == nil {
		cfg = config.GetCacheConfig()
	}

	size := cfg.SnapshotLRUSize
	if size <= 0 {
		size = 1
	}
	lruCache, err := lru.New[string, *LRUCacheEntry](size)
	if err != nil {
		return nil, fmt.Errorf("creating LRU cache: %w", err)
	}

	return &SnapshotService{
		lru:       lruCache,
		remote:    remote,
		ttl:       cfg.GetSnapshotTTL(),
		enableLRU: cfg.EnableLRUCache,
		clock:     systemClock{},
	}, nil
}

// GetStations tries the LRU first, then the remote store
func (c *SnapshotService) GetStations(ctx context.Context, contract string) ([]models.Station, error) {
	if c.enableLRU {
		if entry, ok := c.lru.Get(contract); ok {
			if c.clock.Now().Before(entry.ExpiresAt) {
				c.lruHits.Add(1)
				return copyStations(entry.Stations), nil
			}
			c.lru.Remove(contract)
		}
		c.lruMisses.Add(1)
	}

	if c.remote == nil {
		return nil, nil
	}

	stations, err := c.remote.GetStations(ctx, contract)
	if err != nil {
		return nil, fmt.Errorf("getting snapshot from remote cache: %w", err)
	}
	if stations == nil {
		c.remoteMisses.Add(1)
		return nil, nil
	}

	c.remoteHits.Add(1)
	log.Debug().Str("contract", contract).Int("station_count", len(stations)).Msg("Remote snapshot cache HIT")
	c.addLocal(contract, stations)
	return copyStations(stations), nil
}

// SaveStations stores the snapshot in both layers
func (c *SnapshotService) SaveStations(ctx context.Context, contract string, stations []models.Station) error {
	c.addLocal(contract, stations)

	if c.remote == nil {
		return nil
	}
	if err := c.remote.SaveStations(ctx, contract, stations); err != nil {
		return fmt.Errorf("saving snapshot to remote cache: %w", err)
	}
	return nil
}

func (c *SnapshotService) addLocal(contract string, stations []models.Station) {
	if !c.enableLRU {
		return
	}
	c.lru.Add(contract, &LRUCacheEntry{
		Stations:  copyStations(stations),
		ExpiresAt: c.clock.Now().Add(c.ttl),
	})
}

// GetCacheStats returns statistics about cache hits and misses
func (c *SnapshotService) GetCacheStats() map[string]uint64 {
	return map[string]uint64{
		"lru_hits":      c.lruHits.Load(),
		"lru_misses":    c.lruMisses.Load(),
		"remote_hits":   c.remoteHits.Load(),
		"remote_misses": c.remoteMisses.Load(),
	}
}

// Clear removes all entries from the LRU cache
func (c *SnapshotService) Clear() {
	c.lru.Purge()
}
