package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freight-parser/app/models"
)

func sampleResult(raw string) *models.ParseResult {
	return &models.ParseResult{
		Raw:        raw,
		Normalized: raw,
		Locations: models.ParsedLocations{
			Origin: &models.ParsedLocation{
				OriginalText: "istanbul",
				ProvinceName: "istanbul",
				ProvinceCode: 34,
				Confidence:   1.0,
			},
		},
		ParsedAt: time.Now(),
	}
}

func TestMemoryCache_SetGet(t *testing.T) {
	cache, err := NewMemoryCacheService(10, time.Minute)
	require.NoError(t, err)
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k1", sampleResult("istanbuldan ankaraya")))

	got, found, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "istanbul", got.Locations.Origin.ProvinceName)

	_, found, err = cache.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	cache, err := NewMemoryCacheService(10, 10*time.Millisecond)
	require.NoError(t, err)
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k1", sampleResult("test")))
	time.Sleep(30 * time.Millisecond)

	_, found, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, found, "expired entry must not be returned")
}

func TestMemoryCache_Eviction(t *testing.T) {
	cache, err := NewMemoryCacheService(2, time.Minute)
	require.NoError(t, err)
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", sampleResult("a")))
	require.NoError(t, cache.Set(ctx, "b", sampleResult("b")))
	require.NoError(t, cache.Set(ctx, "c", sampleResult("c")))

	exists, err := cache.Exists(ctx, "a")
	require.NoError(t, err)
	assert.False(t, exists, "oldest entry should be evicted at capacity")

	exists, err = cache.Exists(ctx, "c")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	cache, err := NewMemoryCacheService(10, time.Minute)
	require.NoError(t, err)
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k1", sampleResult("x")))
	require.NoError(t, cache.Set(ctx, "k2", sampleResult("y")))

	require.NoError(t, cache.Delete(ctx, "k1"))
	exists, _ := cache.Exists(ctx, "k1")
	assert.False(t, exists)

	require.NoError(t, cache.Clear(ctx))
	exists, _ = cache.Exists(ctx, "k2")
	assert.False(t, exists)
}

func TestMemoryCache_Stats(t *testing.T) {
	cache, err := NewMemoryCacheService(10, time.Minute)
	require.NoError(t, err)
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k1", sampleResult("x")))
	cache.Get(ctx, "k1")
	cache.Get(ctx, "k1")
	cache.Get(ctx, "nope")

	stats, err := cache.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalHits)
	assert.Equal(t, int64(1), stats.TotalMiss)
	assert.InDelta(t, 2.0/3.0, stats.HitRate, 0.001)
	assert.Equal(t, int64(1), stats.TotalItems)
}

func TestMemoryCache_GetTTL(t *testing.T) {
	cache, err := NewMemoryCacheService(10, time.Minute)
	require.NoError(t, err)
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k1", sampleResult("x")))

	ttl, err := cache.GetTTL(ctx, "k1")
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)

	ttl, err = cache.GetTTL(ctx, "absent")
	require.NoError(t, err)
	assert.Zero(t, ttl)
}
