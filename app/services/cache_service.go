package services

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/freight-parser/app/models"
)

// memoryEntry pairs a cached result with its insertion time for TTL
// checks on read.
type memoryEntry struct {
	result   *models.ParseResult
	storedAt time.Time
}

// MemoryCacheService is the in-process L1 tier: a bounded LRU with a lazy
// TTL. Eviction is handled by the LRU; expiry is checked on Get.
type MemoryCacheService struct {
	cache *lru.Cache[string, memoryEntry]
	ttl   time.Duration

	mu     sync.Mutex
	hits   int64
	misses int64
}

// NewMemoryCacheService builds the L1 cache. size bounds the number of
// entries, ttl bounds their age.
func NewMemoryCacheService(size int, ttl time.Duration) (*MemoryCacheService, error) {
	cache, err := lru.New[string, memoryEntry](size)
	if err != nil {
		return nil, err
	}
	return &MemoryCacheService{cache: cache, ttl: ttl}, nil
}

// Get returns the cached result if present and fresh.
func (m *MemoryCacheService) Get(ctx context.Context, key string) (*models.ParseResult, bool, error) {
	entry, found := m.cache.Get(key)
	if !found {
		m.count(false)
		return nil, false, nil
	}
	if m.ttl > 0 && time.Since(entry.storedAt) > m.ttl {
		m.cache.Remove(key)
		m.count(false)
		return nil, false, nil
	}
	m.count(true)
	return entry.result, true, nil
}

// Set stores a result, evicting the oldest entry when full.
func (m *MemoryCacheService) Set(ctx context.Context, key string, result *models.ParseResult) error {
	m.cache.Add(key, memoryEntry{result: result, storedAt: time.Now()})
	return nil
}

// Delete removes one entry.
func (m *MemoryCacheService) Delete(ctx context.Context, key string) error {
	m.cache.Remove(key)
	return nil
}

// Clear empties the cache.
func (m *MemoryCacheService) Clear(ctx context.Context) error {
	m.cache.Purge()
	return nil
}

// GetStats returns hit/miss counters and the live entry count.
func (m *MemoryCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	m.mu.Lock()
	hits, misses := m.hits, m.misses
	m.mu.Unlock()

	stats := &CacheStats{
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(m.cache.Len()),
	}
	if total := hits + misses; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats, nil
}

// Exists reports whether the key is cached and fresh.
func (m *MemoryCacheService) Exists(ctx context.Context, key string) (bool, error) {
	entry, found := m.cache.Peek(key)
	if !found {
		return false, nil
	}
	if m.ttl > 0 && time.Since(entry.storedAt) > m.ttl {
		return false, nil
	}
	return true, nil
}

// GetTTL returns the remaining lifetime of the key.
func (m *MemoryCacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	entry, found := m.cache.Peek(key)
	if !found {
		return 0, nil
	}
	remaining := m.ttl - time.Since(entry.storedAt)
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}

// Close is a no-op for the in-process tier.
func (m *MemoryCacheService) Close() error { return nil }

func (m *MemoryCacheService) count(hit bool) {
	m.mu.Lock()
	if hit {
		m.hits++
	} else {
		m.misses++
	}
	m.mu.Unlock()
}
