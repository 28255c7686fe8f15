package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/freight-parser/app/models"
)

// HybridCacheService layers the in-process LRU (L1) over Redis (L2).
// Reads promote L2 hits into L1; writes go to both tiers. An unavailable
// Redis degrades the service to L1-only instead of failing requests.
type HybridCacheService struct {
	memory *MemoryCacheService
	redis  *RedisCacheService
	logger *zap.Logger
}

// NewHybridCacheService wires the two tiers together.
func NewHybridCacheService(memory *MemoryCacheService, redis *RedisCacheService, logger *zap.Logger) *HybridCacheService {
	return &HybridCacheService{memory: memory, redis: redis, logger: logger}
}

// Get checks L1 first, then L2. An L2 hit is copied back into L1 in the
// background.
func (h *HybridCacheService) Get(ctx context.Context, key string) (*models.ParseResult, bool, error) {
	result, found, err := h.memory.Get(ctx, key)
	if err == nil && found {
		return result, true, nil
	}

	result, found, err = h.redis.Get(ctx, key)
	if err != nil {
		h.logger.Warn("redis unavailable, serving L1 only", zap.Error(err))
		return nil, false, nil
	}
	if !found {
		return nil, false, nil
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := h.memory.Set(bgCtx, key, result); err != nil {
			h.logger.Warn("l2->l1 promotion failed", zap.Error(err), zap.String("key", key))
		}
	}()
	return result, true, nil
}

// Set writes both tiers concurrently. A Redis failure is reported but the
// L1 write still counts.
func (h *HybridCacheService) Set(ctx context.Context, key string, result *models.ParseResult) error {
	errCh := make(chan error, 2)
	go func() { errCh <- h.memory.Set(ctx, key, result) }()
	go func() { errCh <- h.redis.Set(ctx, key, result) }()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cache set errors: %v", errs)
	}
	return nil
}

// Delete removes the key from both tiers.
func (h *HybridCacheService) Delete(ctx context.Context, key string) error {
	errCh := make(chan error, 2)
	go func() { errCh <- h.memory.Delete(ctx, key) }()
	go func() { errCh <- h.redis.Delete(ctx, key) }()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cache delete errors: %v", errs)
	}
	return nil
}

// Clear empties both tiers.
func (h *HybridCacheService) Clear(ctx context.Context) error {
	errCh := make(chan error, 2)
	go func() { errCh <- h.memory.Clear(ctx) }()
	go func() { errCh <- h.redis.Clear(ctx) }()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cache clear errors: %v", errs)
	}
	h.logger.Info("cleared hybrid cache")
	return nil
}

// GetStats combines counters from both tiers. One failing tier reports
// the other alone.
func (h *HybridCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	memStats, memErr := h.memory.GetStats(ctx)
	redisStats, redisErr := h.redis.GetStats(ctx)

	switch {
	case memErr != nil && redisErr != nil:
		return nil, fmt.Errorf("both cache tiers failed: %v, %v", memErr, redisErr)
	case redisErr != nil:
		return memStats, nil
	case memErr != nil:
		return redisStats, nil
	}

	combined := &CacheStats{
		TotalHits:  memStats.TotalHits + redisStats.TotalHits,
		TotalMiss:  memStats.TotalMiss + redisStats.TotalMiss,
		TotalItems: memStats.TotalItems + redisStats.TotalItems,
	}
	if total := combined.TotalHits + combined.TotalMiss; total > 0 {
		combined.HitRate = float64(combined.TotalHits) / float64(total)
	}
	return combined, nil
}

// Exists checks L1 then L2.
func (h *HybridCacheService) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := h.memory.Exists(ctx, key)
	if err == nil && exists {
		return true, nil
	}
	return h.redis.Exists(ctx, key)
}

// GetTTL reports the authoritative L2 TTL.
func (h *HybridCacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	return h.redis.GetTTL(ctx, key)
}

// Close closes both tiers.
func (h *HybridCacheService) Close() error {
	errCh := make(chan error, 2)
	go func() { errCh <- h.memory.Close() }()
	go func() { errCh <- h.redis.Close() }()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cache close errors: %v", errs)
	}
	return nil
}
