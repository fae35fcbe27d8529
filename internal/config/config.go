// README: Config loader with env defaults for HTTP, AI, maps, and cache settings.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	AI struct {
		GeminiKey string
		Model     string
	}
	Maps struct {
		APIKey string // optional; naive leg estimates when empty
	}
	Cache struct {
		RedisAddr string // optional; in-memory cache when empty
		TTLHours  int
	}
	Debug bool
}

func Load() (Config, error) {
	// .env is a local-dev convenience; absence is not an error.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("WANDER_HTTP_ADDR", ":8080")
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.AI.Model = envOrDefault("GEMINI_MODEL", "gemini-2.0-flash")
	cfg.Maps.APIKey = envOrDefault("MAPS_API_KEY", "")
	cfg.Cache.RedisAddr = envOrDefault("WANDER_REDIS_ADDR", "")
	cfg.Cache.TTLHours = envOrDefaultInt("WANDER_CACHE_TTL_HOURS", 6)
	cfg.Debug = envOrDefault("WANDER_DEBUG", "") == "1"
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
