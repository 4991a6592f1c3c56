package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sevici/backend-go/internal/bikeshare"
	"github.com/sevici/backend-go/internal/cache"
	"github.com/sevici/backend-go/internal/config"
	"github.com/sevici/backend-go/internal/station"
	"github.com/sevici/backend-go/pkg/http/client"
)

// Components holds the wired dependencies shared by every entry point
type Components struct {
	Config      *config.Config
	CacheConfig *config.CacheConfig
	HTTPClient  *client.Client
	Snapshots   *cache.SnapshotService
	Source      *station.JCDecauxSource
	Service     *bikeshare.Service
}

// Build wires the HTTP client, snapshot caches, provider source and
// bikeshare service. factory may be nil.
func Build(ctx context.Context, cfg *config.Config, cacheCfg *config.CacheConfig, factory station.SourceFactory) (*Components, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cacheCfg == nil {
		cacheCfg = config.GetCacheConfig()
	}
	if factory == nil {
		factory = &station.DefaultSourceFactory{}
	}

	httpClient := client.New(client.Options{
		BaseURL:    cfg.JCDecauxBaseURL,
		Timeout:    cfg.HTTPTimeout,
		MaxRetries: cfg.MaxRetries,
	})

	snapshots, err := cache.NewSnapshotServiceFromConfig(ctx, cacheCfg)
	if err != nil {
		return nil, fmt.Errorf("initializing snapshot cache: %w", err)
	}

	source, err := factory.NewSource(httpClient, station.JCDecauxOptions{
		Contract: cfg.Contract,
		APIKey:   cfg.APIKey,
		MemCache: cache.NewStationCache(cacheCfg),
	}, snapshots)
	if err != nil {
		return nil, fmt.Errorf("initializing station source: %w", err)
	}

	if cfg.APIKey == "" {
		log.Warn().Msg("JCDECAUX_API_KEY is not set; provider requests will be rejected")
	}

	log.Debug().
		Str("contract", cfg.Contract).
		Str("base_url", cfg.JCDecauxBaseURL).
		Str("cache_backend", string(cacheCfg.Backend)).
		Msg("Bikeshare service initialized")

	return &Components{
		Config:      cfg,
		CacheConfig: cacheCfg,
		HTTPClient:  httpClient,
		Snapshots:   snapshots,
		Source:      source,
		Service:     bikeshare.NewService(source, cfg.Contract),
	}, nil
}
