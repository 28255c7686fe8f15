package services

import (
	"context"
	"time"

	"github.com/freight-parser/app/models"
)

// CacheStats aggregates hit/miss counters across cache tiers.
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// ICacheService is the parse-result cache contract. Keys are fingerprints
// of the normalized message, so two spellings of the same message share
// an entry.
type ICacheService interface {
	// Get returns the cached result, a found flag, and any backend error.
	Get(ctx context.Context, key string) (*models.ParseResult, bool, error)

	// Set stores a result under the key.
	Set(ctx context.Context, key string, result *models.ParseResult) error

	// Delete removes one entry.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry this service owns.
	Clear(ctx context.Context) error

	// GetStats returns hit/miss counters.
	GetStats(ctx context.Context) (*CacheStats, error)

	// Exists reports whether the key is cached.
	Exists(ctx context.Context, key string) (bool, error)

	// GetTTL returns the remaining lifetime of the key, zero when absent.
	GetTTL(ctx context.Context, key string) (time.Duration, error)

	// Close releases backend connections.
	Close() error
}
