package services

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// deadRedisCache builds an L2 tier pointing at a closed port, bypassing
// the startup ping, to exercise degraded-mode behavior.
func deadRedisCache() *RedisCacheService {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	return &RedisCacheService{
		client: client,
		logger: zap.NewNop(),
		prefix: "freight_parser:",
		ttl:    time.Minute,
	}
}

func TestHybridCache_ServesL1WhenRedisDown(t *testing.T) {
	mem, err := NewMemoryCacheService(10, time.Minute)
	require.NoError(t, err)
	hybrid := NewHybridCacheService(mem, deadRedisCache(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, "k1", sampleResult("istanbuldan ankaraya")))

	got, found, err := hybrid.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "istanbul", got.Locations.Origin.ProvinceName)
}

func TestHybridCache_RedisErrorIsAMissNotAFailure(t *testing.T) {
	mem, err := NewMemoryCacheService(10, time.Minute)
	require.NoError(t, err)
	hybrid := NewHybridCacheService(mem, deadRedisCache(), zap.NewNop())

	_, found, err := hybrid.Get(context.Background(), "absent")
	assert.NoError(t, err, "a dead L2 must not surface as a request error")
	assert.False(t, found)
}

func TestHybridCache_SetStillFillsL1WhenRedisDown(t *testing.T) {
	mem, err := NewMemoryCacheService(10, time.Minute)
	require.NoError(t, err)
	hybrid := NewHybridCacheService(mem, deadRedisCache(), zap.NewNop())
	ctx := context.Background()

	// The combined Set reports the L2 failure but the L1 write lands.
	_ = hybrid.Set(ctx, "k1", sampleResult("izmirden bursaya"))

	_, found, err := mem.Get(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, found)
}
