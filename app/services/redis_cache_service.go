package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/freight-parser/app/models"
)

// RedisCacheService is the shared L2 tier. Entries are JSON-encoded parse
// results under a service prefix with a server-side TTL.
type RedisCacheService struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
	ttl    time.Duration

	hits   int64
	misses int64
}

// NewRedisCacheService connects and pings before returning; a dead Redis
// fails fast at startup instead of on the first request.
func NewRedisCacheService(redisURL string, ttl time.Duration, logger *zap.Logger) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisCacheService{
		client: client,
		logger: logger,
		prefix: "freight_parser:",
		ttl:    ttl,
	}, nil
}

// Get fetches and decodes a cached result.
func (r *RedisCacheService) Get(ctx context.Context, key string) (*models.ParseResult, bool, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Result()
	if err == redis.Nil {
		atomic.AddInt64(&r.misses, 1)
		return nil, false, nil
	}
	if err != nil {
		r.logger.Error("redis get failed", zap.Error(err), zap.String("key", key))
		return nil, false, err
	}

	var result models.ParseResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		r.logger.Error("corrupt cache entry", zap.Error(err), zap.String("key", key))
		return nil, false, err
	}
	atomic.AddInt64(&r.hits, 1)
	return &result, true, nil
}

// Set encodes and stores a result with the service TTL.
func (r *RedisCacheService) Set(ctx context.Context, key string, result *models.ParseResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := r.client.Set(ctx, r.prefix+key, data, r.ttl).Err(); err != nil {
		r.logger.Error("redis set failed", zap.Error(err), zap.String("key", key))
		return err
	}
	return nil
}

// Delete removes one entry.
func (r *RedisCacheService) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		r.logger.Error("redis del failed", zap.Error(err), zap.String("key", key))
		return err
	}
	return nil
}

// Clear removes every entry under the service prefix.
func (r *RedisCacheService) Clear(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, r.prefix+"*").Result()
	if err != nil {
		return fmt.Errorf("list cache keys: %w", err)
	}
	if len(keys) > 0 {
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("delete cache keys: %w", err)
		}
	}
	r.logger.Info("cleared redis cache", zap.Int("keys_deleted", len(keys)))
	return nil
}

// GetStats returns hit/miss counters and the current key count.
func (r *RedisCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits := atomic.LoadInt64(&r.hits)
	misses := atomic.LoadInt64(&r.misses)

	stats := &CacheStats{TotalHits: hits, TotalMiss: misses}
	if total := hits + misses; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	if keys, err := r.client.Keys(ctx, r.prefix+"*").Result(); err == nil {
		stats.TotalItems = int64(len(keys))
	}
	return stats, nil
}

// Exists reports whether the key is cached.
func (r *RedisCacheService) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, r.prefix+key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetTTL returns the server-side TTL of the key.
func (r *RedisCacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	return r.client.TTL(ctx, r.prefix+key).Result()
}

// Close closes the Redis connection pool.
func (r *RedisCacheService) Close() error { return r.client.Close() }
