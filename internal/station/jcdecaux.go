package station

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sevici/backend-go/internal/cache"
	"github.com/sevici/backend-go/internal/models"
	"github.com/sevici/backend-go/pkg/http/client"
)

// JCDecauxOptions selects the contract whose stations are fetched
type JCDecauxOptions struct {
	Contract string
	APIKey   string
	MemCache *cache.StationCache
}

// JCDecauxSource loads station snapshots from the JCDecaux vls API
type JCDecauxSource struct {
	httpClient client.Interface
	contract   string
	apiKey     string
	memCache   *cache.StationCache
	store      cache.SnapshotStore
	cacheMutex sync.RWMutex
}

var _ Source = (*JCDecauxSource)(nil)

// NewJCDecauxSource creates a source. store may be nil.
func NewJCDecauxSource(httpClient client.Interface, opts JCDecauxOptions, store cache.SnapshotStore) (*JCDecauxSource, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if opts.Contract == "" {
		return nil, fmt.Errorf("contract is required")
	}

	memCache := opts.MemCache
	if memCache == nil {
		memCache = cache.NewStationCache(nil) // Use default config
	}

	return &JCDecauxSource{
		httpClient: httpClient,
		contract:   opts.Contract,
		apiKey:     opts.APIKey,
		memCache:   memCache,
		store:      store,
	}, nil
}

// Contract returns the contract this source serves
func (s *JCDecauxSource) Contract() string {
	return s.contract
}

// FetchStations returns the current snapshot, served from cache when fresh
func (s *JCDecauxSource) FetchStations(ctx context.Context) ([]models.Station, error) {
	s.cacheMutex.RLock()
	stations := s.memCache.GetStations()
	s.cacheMutex.RUnlock()

	if stations != nil {
		log.Debug().Str("contract", s.contract).Msg("Memory cache HIT for station list")
		return stations, nil
	}

	if s.store != nil {
		cached, err := s.store.GetStations(ctx, s.contract)
		if err != nil {
			log.Error().Err(err).Str("contract", s.contract).Msg("Error getting stations from snapshot cache")
		} else if cached != nil {
			log.Debug().Str("contract", s.contract).Msg("Snapshot cache HIT for station list")
			s.cacheMutex.Lock()
			s.memCache.SetStations(cached)
			s.cacheMutex.Unlock()
			return cached, nil
		}
	}

	log.Debug().Str("contract", s.contract).Msg("Cache MISS for station list, fetching from JCDecaux API")

	stations, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if err := s.store.SaveStations(ctx, s.contract, stations); err != nil {
			log.Error().Err(err).Str("contract", s.contract).Msg("Failed to save stations to snapshot cache")
		}
	}

	s.cacheMutex.Lock()
	s.memCache.SetStations(stations)
	s.cacheMutex.Unlock()

	return stations, nil
}

func (s *JCDecauxSource) stationsPath() string {
	params := url.Values{}
	params.Set("contract", s.contract)
	if s.apiKey != "" {
		params.Set("apiKey", s.apiKey)
	}
	return "/vls/v1/stations?" + params.Encode()
}

func (s *JCDecauxSource) fetch(ctx context.Context) ([]models.Station, error) {
	resp, err := s.httpClient.Get(ctx, s.stationsPath())
	if err != nil {
		return nil, fmt.Errorf("fetching stations: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("no response from JCDecaux API")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newProviderError(resp.StatusCode, resp.Body)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(resp.Body, &records); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	stations := make([]models.Station, 0, len(records))
	skipped := 0
	for i, raw := range records {
		station, err := parseStationRecord(raw)
		if err != nil {
			skipped++
			log.Warn().Err(err).Int("index", i).Msg("Skipping malformed station record")
			continue
		}
		stations = append(stations, station)
	}

	log.Info().
		Str("contract", s.contract).
		Int("station_count", len(stations)).
		Int("skipped", skipped).
		Msg("Fetched stations from JCDecaux API")

	return stations, nil
}

type jcdecauxStation struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Position struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"position"`
	BikeStands          int `json:"bike_stands"`
	AvailableBikeStands int `json:"available_bike_stands"`
	AvailableBikes      int `json:"available_bikes"`
}

// parseStationRecord converts one provider record. Missing fields default
// to zero values.
func parseStationRecord(raw json.RawMessage) (models.Station, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.Station{}, fmt.Errorf("record is not an object")
	}

	var rec jcdecauxStation
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return models.Station{}, fmt.Errorf("decoding record: %w", err)
	}

	if rec.BikeStands < 0 || rec.AvailableBikeStands < 0 || rec.AvailableBikes < 0 {
		return models.Station{}, fmt.Errorf("negative counts in record %q", rec.Name)
	}

	return models.Station{
		Name:           strings.TrimSpace(rec.Name),
		Address:        strings.TrimSpace(rec.Address),
		Latitude:       rec.Position.Lat,
		Longitude:      rec.Position.Lng,
		Capacity:       rec.BikeStands,
		FreeSlots:      rec.AvailableBikeStands,
		AvailableBikes: rec.AvailableBikes,
	}, nil
}
