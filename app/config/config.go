// Package config loads service configuration from config/app.yaml with
// environment-variable overrides.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full service configuration.
type Config struct {
	App struct {
		Port string
		Env  string
	}
	Mongo struct {
		URI      string
		Database string
	}
	Redis struct {
		URL string
		TTL time.Duration
	}
	Meilisearch struct {
		URL       string
		MasterKey string
		Index     string
		Timeout   time.Duration
	}
	Cache struct {
		L1Size int
		L1TTL  time.Duration
	}
	Batch struct {
		Workers     int
		MaxMessages int
	}
	Suggest struct {
		MaxResults int
	}
}

// Load reads config/app.yaml (if present), applies defaults and env
// overrides (FREIGHT_APP_PORT, FREIGHT_REDIS_URL, ...), and returns the
// resolved configuration. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FREIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "freight_parser")
	v.SetDefault("redis.url", "redis://localhost:6379")
	v.SetDefault("redis.ttl", "24h")
	v.SetDefault("meilisearch.url", "http://localhost:7700")
	v.SetDefault("meilisearch.master_key", "")
	v.SetDefault("meilisearch.index", "locations")
	v.SetDefault("meilisearch.timeout", "30s")
	v.SetDefault("cache.l1_size", 10000)
	v.SetDefault("cache.l1_ttl", "1h")
	v.SetDefault("batch.workers", 4)
	v.SetDefault("batch.max_messages", 20000)
	v.SetDefault("suggest.max_results", 5)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	cfg.App.Port = v.GetString("app.port")
	cfg.App.Env = v.GetString("app.env")
	cfg.Mongo.URI = v.GetString("mongo.uri")
	cfg.Mongo.Database = v.GetString("mongo.database")
	cfg.Redis.URL = v.GetString("redis.url")
	cfg.Redis.TTL = v.GetDuration("redis.ttl")
	cfg.Meilisearch.URL = v.GetString("meilisearch.url")
	cfg.Meilisearch.MasterKey = v.GetString("meilisearch.master_key")
	cfg.Meilisearch.Index = v.GetString("meilisearch.index")
	cfg.Meilisearch.Timeout = v.GetDuration("meilisearch.timeout")
	cfg.Cache.L1Size = v.GetInt("cache.l1_size")
	cfg.Cache.L1TTL = v.GetDuration("cache.l1_ttl")
	cfg.Batch.Workers = v.GetInt("batch.workers")
	cfg.Batch.MaxMessages = v.GetInt("batch.max_messages")
	cfg.Suggest.MaxResults = v.GetInt("suggest.max_results")
	return cfg, nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool { return c.App.Env == "production" }
