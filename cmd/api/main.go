package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/freight-parser/app/config"
	"github.com/freight-parser/app/controllers"
	"github.com/freight-parser/app/services"
	"github.com/freight-parser/internal/gazetteer"
	"github.com/freight-parser/internal/parser"
	"github.com/freight-parser/internal/search"
	"github.com/freight-parser/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	logger.Info("Starting Freight Message Parser Service...")

	// Engine core: gazetteer tables are compiled in, nothing external
	// is required to parse.
	gaz := gazetteer.New()
	messageParser := parser.New(gaz)

	// Cache tiers. Redis is optional; without it the in-process LRU
	// serves alone.
	memCache, err := services.NewMemoryCacheService(cfg.Cache.L1Size, cfg.Cache.L1TTL)
	if err != nil {
		logger.Fatal("Failed to create memory cache", zap.Error(err))
	}
	var cacheService services.ICacheService = memCache
	if redisCache, err := services.NewRedisCacheService(cfg.Redis.URL, cfg.Redis.TTL, logger); err != nil {
		logger.Warn("Redis unavailable, running on in-memory cache only", zap.Error(err))
	} else {
		cacheService = services.NewHybridCacheService(memCache, redisCache, logger)
	}
	defer cacheService.Close()

	// Review storage. Mongo is optional; without it low-confidence
	// results are served but never queued.
	var reviewService *services.ReviewService
	if mongoClient, err := initMongoDB(cfg, logger); err != nil {
		logger.Warn("MongoDB unavailable, review queue disabled", zap.Error(err))
	} else {
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				logger.Error("Failed to disconnect from MongoDB", zap.Error(err))
			}
		}()
		reviewService = services.NewReviewService(mongoClient.Database(cfg.Mongo.Database), logger)
	}

	// Suggestion index. Meilisearch is optional; the in-process fuzzy
	// matcher covers suggestions when it is down.
	var suggester *search.Suggester
	if s, err := search.NewSuggester(search.Config{
		Host:      cfg.Meilisearch.URL,
		APIKey:    cfg.Meilisearch.MasterKey,
		IndexName: cfg.Meilisearch.Index,
		Timeout:   cfg.Meilisearch.Timeout,
	}, gaz, logger); err != nil {
		logger.Warn("Meilisearch unavailable, using in-process suggestions", zap.Error(err))
	} else {
		suggester = s
	}

	parseService := services.NewParseService(messageParser, gaz, cacheService, reviewService, suggester, cfg.Batch.Workers, logger)
	adminService := services.NewAdminService(gaz, cacheService, reviewService, suggester, parseService, logger)

	parseController := controllers.NewParseController(parseService, logger)
	adminController := controllers.NewAdminController(adminService, reviewService, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.SetupAllRoutes(router, parseController, adminController)

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.App.Port))
		if err := router.Run(":" + cfg.App.Port); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	logger.Info("Server exited")
}

func newLogger(cfg *config.Config) *zap.Logger {
	if cfg.IsProduction() {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}

func initMongoDB(cfg *config.Config, logger *zap.Logger) (*mongo.Client, error) {
	logger.Info("Connecting to MongoDB", zap.String("uri", cfg.Mongo.URI))

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	logger.Info("Successfully connected to MongoDB")
	return client, nil
}
