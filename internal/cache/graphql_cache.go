package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/hashicorp/golang-lru/v2"
	"github.com/sevici/backend-go/internal/config"
)

type persistedQuery struct {
	query     string
	expiresAt time.Time
}

// GraphQLCache holds automatic persisted queries keyed by their sha256
// hash. Entries expire after the configured TTL even when the LRU still
// has room for them.
type GraphQLCache struct {
	queries *lru.Cache[string, persistedQuery]
	ttl     time.Duration
	clock   clock

	hits   atomic.Uint64
	misses atomic.Uint64
}

var _ graphql.Cache[string] = (*GraphQLCache)(nil)

func NewGraphQLCache(cfg *config.CacheConfig) (*GraphQLCache, error) {
	queries, err := lru.New[string, persistedQuery](cfg.GraphQLLRUSize)
	if err != nil {
		return nil, err
	}

	return &GraphQLCache{
		queries: queries,
		ttl:     cfg.GetGraphQLLRUTTL(),
		clock:   systemClock{},
	}, nil
}

// Add registers the query text sent alongside a new hash
func (c *GraphQLCache) Add(_ context.Context, hash string, query string) {
	c.queries.Add(hash, persistedQuery{
		query:     query,
		expiresAt: c.clock.Now().Add(c.ttl),
	})
}

// Get returns the query text for hash, dropping it once expired
func (c *GraphQLCache) Get(_ context.Context, hash string) (string, bool) {
	entry, ok := c.queries.Get(hash)
	if ok && c.clock.Now().After(entry.expiresAt) {
		c.queries.Remove(hash)
		ok = false
	}

	if !ok {
		c.misses.Add(1)
		return "", false
	}
	c.hits.Add(1)
	return entry.query, true
}

// Stats reports persisted query lookups for the health endpoint
func (c *GraphQLCache) Stats() map[string]uint64 {
	return map[string]uint64{
		"apq_hits":    c.hits.Load(),
		"apq_misses":  c.misses.Load(),
		"apq_entries": uint64(c.queries.Len()),
	}
}

func (c *GraphQLCache) Clear() {
	c.queries.Purge()
}
