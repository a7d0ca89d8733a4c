// README: Config loader with env defaults for HTTP, DB, Redis, matching and dispatch settings.
package config

import (
	"os"
	"strconv"
)

type MatchingConfig struct {
	DefaultLimit   int
	RecommendLimit int
}

type DispatchConfig struct {
	// SimulatedDelayMS is the artificial latency applied to assignment
	// calls, standing in for a network round-trip.
	SimulatedDelayMS int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		// DSN empty means the seeded in-memory stores are used.
		DSN string
	}
	Redis struct {
		// Addr empty disables the assignment log.
		Addr string
	}
	Matching MatchingConfig
	Dispatch DispatchConfig
	Maps     struct {
		APIKey string
	}
	AI struct {
		GeminiKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("ADMIN_HTTP_ADDR", ":8080")
	cfg.DB.DSN = envOrDefault("ADMIN_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("ADMIN_REDIS_ADDR", "")
	cfg.Matching.DefaultLimit = envOrDefaultInt("ADMIN_MATCH_LIMIT", 3)
	cfg.Matching.RecommendLimit = envOrDefaultInt("ADMIN_RECOMMEND_LIMIT", 5)
	cfg.Dispatch.SimulatedDelayMS = envOrDefaultInt("ADMIN_ASSIGN_DELAY_MS", 800)
	cfg.Maps.APIKey = envOrDefault("ADMIN_MAPS_KEY", "")
	cfg.AI.GeminiKey = envOrDefault("GEMINI_API_KEY", "")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
