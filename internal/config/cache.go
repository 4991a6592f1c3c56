package config

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

type CacheBackend string

const (
	CacheBackendNone     CacheBackend = "none"
	CacheBackendS3       CacheBackend = "s3"
	CacheBackendDynamoDB CacheBackend = "dynamodb"
)

// CacheConfig holds all cache-related configuration
type CacheConfig struct {
	// LRU snapshot cache settings
	SnapshotLRUSize    int
	SnapshotTTLSeconds int

	// GraphQL persisted query cache settings
	GraphQLLRUSize       int
	GraphQLLRUTTLMinutes int

	// Remote snapshot cache settings
	Backend     CacheBackend
	S3Bucket    string
	DynamoTable string

	EnableLRUCache bool
}

const (
	defaultSnapshotLRUSize    = 32
	defaultSnapshotTTLSeconds = 60
	defaultGraphQLLRUSize     = 1000
	defaultGraphQLTTLMinutes  = 60
	defaultDynamoTable        = "sevici-station-snapshots"
)

// GetCacheConfig returns the cache configuration from environment variables or defaults
func GetCacheConfig() *CacheConfig {
	config := &CacheConfig{
		SnapshotLRUSize:      getEnvInt("CACHE_SNAPSHOT_LRU_SIZE", defaultSnapshotLRUSize),
		SnapshotTTLSeconds:   getEnvInt("CACHE_SNAPSHOT_TTL_SECONDS", defaultSnapshotTTLSeconds),
		GraphQLLRUSize:       getEnvInt("CACHE_GRAPHQL_LRU_SIZE", defaultGraphQLLRUSize),
		GraphQLLRUTTLMinutes: getEnvInt("CACHE_GRAPHQL_TTL_MINUTES", defaultGraphQLTTLMinutes),
		Backend:              parseBackend(os.Getenv("CACHE_BACKEND")),
		S3Bucket:             os.Getenv("CACHE_S3_BUCKET"),
		DynamoTable:          getEnvOrDefault("CACHE_DYNAMO_TABLE", defaultDynamoTable),
		EnableLRUCache:       getEnvBool("CACHE_ENABLE_LRU", true),
	}

	log.Debug().
		Int("SnapshotLRUSize", config.SnapshotLRUSize).
		Int("SnapshotTTLSeconds", config.SnapshotTTLSeconds).
		Int("GraphQLLRUSize", config.GraphQLLRUSize).
		Int("GraphQLLRUTTLMinutes", config.GraphQLLRUTTLMinutes).
		Str("Backend", string(config.Backend)).
		Str("S3Bucket", config.S3Bucket).
		Str("DynamoTable", config.DynamoTable).
		Bool("EnableLRUCache", config.EnableLRUCache).
		Msg("Cache configuration loaded")

	return config
}

func (c *CacheConfig) GetSnapshotTTL() time.Duration {
	return time.Duration(c.SnapshotTTLSeconds) * time.Second
}

func (c *CacheConfig) GetGraphQLLRUTTL() time.Duration {
	return time.Duration(c.GraphQLLRUTTLMinutes) * time.Minute
}

func parseBackend(value string) CacheBackend {
	switch CacheBackend(value) {
	case CacheBackendS3:
		return CacheBackendS3
	case CacheBackendDynamoDB:
		return CacheBackendDynamoDB
	case "", CacheBackendNone:
		return CacheBackendNone
	default:
		log.Warn().Str("backend", value).Msg("Unknown cache backend, remote cache disabled")
		return CacheBackendNone
	}
}
