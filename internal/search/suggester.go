// Package search backs the typo-suggestion endpoint with a Meilisearch
// index of province and district names. Meilisearch tolerates typos the
// strict gazetteer resolver rejects; the in-process fuzzy matcher is the
// fallback when the index is unreachable.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"

	"github.com/freight-parser/internal/gazetteer"
)

// Config holds the Meilisearch connection settings.
type Config struct {
	Host      string
	APIKey    string
	IndexName string
	Timeout   time.Duration
}

// LocationDoc is one indexed location name.
type LocationDoc struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"` // "province" or "district"
	Province  string `json:"province"`
	PlateCode int    `json:"plate_code,omitempty"`
}

// Suggester answers fuzzy location queries.
type Suggester struct {
	client    meilisearch.ServiceManager
	gaz       *gazetteer.Gazetteer
	logger    *zap.Logger
	indexName string
	timeout   time.Duration
}

// NewSuggester connects to Meilisearch and verifies the instance is
// healthy. The gazetteer stays as the degraded-mode fallback.
func NewSuggester(cfg Config, g *gazetteer.Gazetteer, logger *zap.Logger) (*Suggester, error) {
	client := meilisearch.New(cfg.Host, meilisearch.WithAPIKey(cfg.APIKey))
	if _, err := client.Health(); err != nil {
		return nil, fmt.Errorf("meilisearch unreachable: %w", err)
	}
	return &Suggester{
		client:    client,
		gaz:       g,
		logger:    logger,
		indexName: cfg.IndexName,
		timeout:   cfg.Timeout,
	}, nil
}

// Suggest returns up to max location-name candidates for a token the
// strict resolver could not place. Meilisearch answers first; on error
// the in-process matcher takes over so the endpoint keeps working.
func (s *Suggester) Suggest(ctx context.Context, token string, max int) []gazetteer.Suggestion {
	if token == "" || max <= 0 {
		return nil
	}

	resp, err := s.client.Index(s.indexName).SearchWithContext(ctx, token, &meilisearch.SearchRequest{
		Limit: int64(max),
	})
	if err != nil {
		s.logger.Warn("meilisearch query failed, falling back to local fuzzy match",
			zap.Error(err), zap.String("token", token))
		return s.gaz.Suggest(token, max)
	}

	out := make([]gazetteer.Suggestion, 0, len(resp.Hits))
	for i, hit := range resp.Hits {
		doc, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := doc["name"].(string)
		if name == "" {
			continue
		}
		// Meilisearch does not expose a normalized score; rank position
		// stands in for one. Orders candidates within this response
		// only, see gazetteer.Suggestion.
		out = append(out, gazetteer.Suggestion{
			Name:  name,
			Score: 1.0 - float64(i)*0.05,
		})
	}
	if len(out) == 0 {
		return s.gaz.Suggest(token, max)
	}
	return out
}

// EnsureIndex configures searchable and filterable attributes and waits
// for the settings task to finish.
func (s *Suggester) EnsureIndex(ctx context.Context) error {
	index := s.client.Index(s.indexName)
	task, err := index.UpdateSettings(&meilisearch.Settings{
		SearchableAttributes: []string{"name", "province"},
		FilterableAttributes: []string{"kind", "province", "plate_code"},
		RankingRules: []string{
			"words", "typo", "proximity", "attribute", "sort", "exactness",
		},
	})
	if err != nil {
		return fmt.Errorf("update index settings: %w", err)
	}
	return s.waitForTask(ctx, task.TaskUID)
}

// SeedFromGazetteer indexes every province and district name. Existing
// documents with the same id are overwritten, so reseeding is idempotent.
func (s *Suggester) SeedFromGazetteer(ctx context.Context, docs []LocationDoc) (int, error) {
	index := s.client.Index(s.indexName)

	const batchSize = 1000
	total := 0
	for start := 0; start < len(docs); start += batchSize {
		end := start + batchSize
		if end > len(docs) {
			end = len(docs)
		}
		batch := make([]interface{}, 0, end-start)
		for _, d := range docs[start:end] {
			batch = append(batch, d)
		}
		task, err := index.AddDocuments(batch, "id")
		if err != nil {
			return total, fmt.Errorf("add documents batch at %d: %w", start, err)
		}
		if err := s.waitForTask(ctx, task.TaskUID); err != nil {
			return total, err
		}
		total += len(batch)
	}
	s.logger.Info("seeded location index",
		zap.Int("documents", total), zap.String("index", s.indexName))
	return total, nil
}

// Healthy reports whether the Meilisearch instance responds.
func (s *Suggester) Healthy() bool {
	_, err := s.client.Health()
	return err == nil
}

func (s *Suggester) waitForTask(ctx context.Context, taskUID int64) error {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.Now().Add(s.timeout)
	for {
		info, err := s.client.GetTask(taskUID)
		if err != nil {
			return fmt.Errorf("poll task %d: %w", taskUID, err)
		}
		switch info.Status {
		case meilisearch.TaskStatusSucceeded:
			return nil
		case meilisearch.TaskStatusFailed:
			return fmt.Errorf("meilisearch task %d failed: %s", taskUID, info.Error.Message)
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("meilisearch task %d timed out", taskUID)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// BuildDocs flattens the gazetteer into indexable documents.
func BuildDocs(g *gazetteer.Gazetteer) []LocationDoc {
	docs := make([]LocationDoc, 0, g.ProvinceCount()+g.DistrictCount())
	for _, name := range g.ProvinceNames() {
		p, _ := g.Province(name)
		docs = append(docs, LocationDoc{
			ID:        "p-" + name,
			Name:      name,
			Kind:      "province",
			Province:  name,
			PlateCode: p.PlateCode,
		})
	}
	for _, d := range g.DistrictNames() {
		owners, _ := g.DistrictOwners(d)
		primary := ""
		if len(owners) > 0 {
			primary = owners[0]
		}
		docs = append(docs, LocationDoc{
			ID:       "d-" + d,
			Name:     d,
			Kind:     "district",
			Province: primary,
		})
	}
	return docs
}
