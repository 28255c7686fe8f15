// Command seed builds the Meilisearch location index from the compiled-in
// gazetteer tables. Run it once after deploying a Meilisearch instance.
package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/freight-parser/app/config"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed:", err)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	gaz := gazetteer.New()

	suggester, err := search.NewSuggester(search.Config{
		Host:      cfg.Meilisearch.URL,
		APIKey:    cfg.Meilisearch.MasterKey,
		IndexName: cfg.Meilisearch.Index,
		Timeout:   cfg.Meilisearch.Timeout,
	}, gaz, logger)
	if err != nil {
		log.Fatal("meilisearch connection failed:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Meilisearch.Timeout)
	defer cancel()

	if err := suggester.EnsureIndex(ctx); err != nil {
		log.Fatal("index settings failed:", err)
	}

	docs := search.BuildDocs(gaz)
	indexed, err := suggester.SeedFromGazetteer(ctx, docs)
	if err != nil {
		log.Fatal("seeding failed:", err)
	}

	fmt.Printf("Indexed %d location documents into %q\n", indexed, cfg.Meilisearch.Index)
}
