package cache

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sevici/backend-go/internal/config"
)

// NewRemoteStore builds the remote snapshot store selected by cfg.Backend.
// It returns nil when no remote cache is configured.
func NewRemoteStore(ctx context.Context, cfg *config.CacheConfig) (SnapshotStore, error) {
	switch cfg.Backend {
	case config.CacheBackendS3:
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("CACHE_S3_BUCKET is required for the s3 cache backend")
		}
		client, err := NewS3Client(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating S3 client: %w", err)
		}
		log.Info().Str("bucket", cfg.S3Bucket).Msg("Using S3 snapshot cache")
		return NewS3StationCache(client, cfg.S3Bucket, cfg.GetSnapshotTTL()), nil
	case config.CacheBackendDynamoDB:
		client, err := NewDynamoClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating DynamoDB client: %w", err)
		}
		log.Info().Str("table", cfg.DynamoTable).Msg("Using DynamoDB snapshot cache")
		return NewDynamoSnapshotCache(client, cfg.DynamoTable, cfg.GetSnapshotTTL()), nil
	default:
		return nil, nil
	}
}

// NewSnapshotServiceFromConfig wires the LRU layer with the configured
// remote store.
func NewSnapshotServiceFromConfig(ctx context.Context, cfg *config.CacheConfig) (*SnapshotService, error) {
	remote, err := NewRemoteStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewSnapshotService(cfg, remote)
}
