package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sevici/backend-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphQLCache_Operations(t *testing.T) {
	cfg := &config.CacheConfig{
		GraphQLLRUSize:       10,
		GraphQLLRUTTLMinutes: 15,
	}
	cache, err := NewGraphQLCache(cfg)
	require.NoError(t, err)

	now := time.Now()
	clock := &mockClock{now: now}
	cache.clock = clock
	ctx := context.Background()

	query := `query { stations(minAvailability: 0.5) { shown total } }`
	cache.Add(ctx, "hash1", query)

	got, ok := cache.Get(ctx, "hash1")
	assert.True(t, ok)
	assert.Equal(t, query, got)

	_, ok = cache.Get(ctx, "missing")
	assert.False(t, ok)

	clock.now = now.Add(16 * time.Minute)
	_, ok = cache.Get(ctx, "hash1")
	assert.False(t, ok)

	assert.Equal(t, map[string]uint64{
		"apq_hits":    1,
		"apq_misses":  2,
		"apq_entries": 0,
	}, cache.Stats())

	cache.Add(ctx, "hash2", query)
	cache.Clear()
	_, ok = cache.Get(ctx, "hash2")
	assert.False(t, ok)
}

func TestGraphQLCache_Eviction(t *testing.T) {
	cache, err := NewGraphQLCache(&config.CacheConfig{GraphQLLRUSize: 2, GraphQLLRUTTLMinutes: 15})
	require.NoError(t, err)
	ctx := context.Background()

	cache.Add(ctx, "a", "query a")
	cache.Add(ctx, "b", "query b")
	cache.Add(ctx, "c", "query c")

	_, ok := cache.Get(ctx, "a")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "c")
	assert.True(t, ok)
}

func TestGraphQLCache_InvalidSize(t *testing.T) {
	_, err := NewGraphQLCache(&config.CacheConfig{GraphQLLRUSize: 0})
	assert.Error(t, err)
}

func TestGraphQLCache_Concurrency(t *testing.T) {
	cache, err := NewGraphQLCache(&config.CacheConfig{GraphQLLRUSize: 100, GraphQLLRUTTLMinutes: 15})
	require.NoError(t, err)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			cache.Add(ctx, key, fmt.Sprintf("query %d", i))
			got, ok := cache.Get(ctx, key)
			assert.True(t, ok)
			assert.Equal(t, fmt.Sprintf("query %d", i), got)
		}(i)
	}
	wg.Wait()
}
