package services

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/search"
)

// SystemStats is the admin stats payload.
type SystemStats struct {
	Uptime         string                 `json:"uptime"`
	Cache          *CacheStats            `json:"cache,omitempty"`
	ReviewQueue    map[string]int64       `json:"review_queue,omitempty"`
	Gazetteer      GazetteerStats         `json:"gazetteer"`
	SearchHealthy  bool                   `json:"search_healthy"`
	MemoryUsage    map[string]interface{} `json:"memory_usage"`
	GoroutineCount int                    `json:"goroutine_count"`
}

// GazetteerStats summarizes the loaded location tables.
type GazetteerStats struct {
	Provinces int `json:"provinces"`
	Districts int `json:"districts"`
}

// SeedResult reports a search-index reseed.
type SeedResult struct {
	DocsIndexed      int   `json:"docs_indexed"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

// AdminService exposes operational endpoints: stats, cache invalidation
// and search-index reseeding.
type AdminService struct {
	gaz       *gazetteer.Gazetteer
	cache     ICacheService
	reviews   *ReviewService
	suggester *search.Suggester
	parse     *ParseService
	logger    *zap.Logger
}

// NewAdminService wires the admin surface. suggester may be nil.
func NewAdminService(g *gazetteer.Gazetteer, cache ICacheService, reviews *ReviewService, suggester *search.Suggester, parse *ParseService, logger *zap.Logger) *AdminService {
	return &AdminService{
		gaz:       g,
		cache:     cache,
		reviews:   reviews,
		suggester: suggester,
		parse:     parse,
		logger:    logger,
	}
}

// GetStats collects runtime, cache and review-queue statistics.
func (as *AdminService) GetStats(ctx context.Context) (*SystemStats, error) {
	stats := &SystemStats{
		Uptime: as.parse.Uptime().Round(time.Second).String(),
		Gazetteer: GazetteerStats{
			Provinces: len(as.gaz.ProvinceNames()),
			Districts: len(as.gaz.DistrictNames()),
		},
		GoroutineCount: runtime.NumGoroutine(),
	}

	if as.cache != nil {
		if cs, err := as.cache.GetStats(ctx); err == nil {
			stats.Cache = cs
		} else {
			as.logger.Warn("cache stats unavailable", zap.Error(err))
		}
	}

	if as.reviews != nil {
		total, pending, inReview, completed, err := as.reviews.Counts(ctx)
		if err == nil {
			stats.ReviewQueue = map[string]int64{
				"total":     total,
				"pending":   pending,
				"in_review": inReview,
				"completed": completed,
			}
		} else {
			as.logger.Warn("review counts unavailable", zap.Error(err))
		}
	}

	if as.suggester != nil {
		stats.SearchHealthy = as.suggester.Healthy()
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	stats.MemoryUsage = map[string]interface{}{
		"alloc_mb":       mem.Alloc / 1024 / 1024,
		"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
		"sys_mb":         mem.Sys / 1024 / 1024,
		"num_gc":         mem.NumGC,
	}
	return stats, nil
}

// InvalidateCache drops every cached parse result.
func (as *AdminService) InvalidateCache(ctx context.Context) error {
	if as.cache == nil {
		return fmt.Errorf("cache is not configured")
	}
	if err := as.cache.Clear(ctx); err != nil {
		return fmt.Errorf("cache invalidation failed: %w", err)
	}
	as.logger.Info("parse cache invalidated")
	return nil
}

// ReseedSearchIndex rebuilds the Meilisearch location index from the
// in-memory tables.
func (as *AdminService) ReseedSearchIndex(ctx context.Context) (*SeedResult, error) {
	if as.suggester == nil {
		return nil, fmt.Errorf("search is not configured")
	}
	start := time.Now()

	if err := as.suggester.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("index settings: %w", err)
	}
	docs := search.BuildDocs(as.gaz)
	indexed, err := as.suggester.SeedFromGazetteer(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("seed documents: %w", err)
	}

	as.logger.Info("search index reseeded",
		zap.Int("docs", indexed),
		zap.Duration("took", time.Since(start)))
	return &SeedResult{
		DocsIndexed:      indexed,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}
