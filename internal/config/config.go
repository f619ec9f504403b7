// README: Config loader with env defaults for HTTP, upstream API keys, and search settings.
package config

import (
	"os"
	"strconv"
	"time"
)

// SearchConfig holds the places search radii and global result caps.
type SearchConfig struct {
	// DefaultRadiusM is the first-attempt search radius in meters.
	DefaultRadiusM int
	// ExtendedRadiusM is the single-retry radius used when the first attempt is empty.
	// Google Places caps radius at 50km.
	ExtendedRadiusM int
	MaxResults      int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	// DB is optional; an empty DSN disables the smalltalk usage ledger.
	DB struct {
		DSN string
	}
	// Redis is optional; an empty addr disables chat rate limiting.
	Redis struct {
		Addr          string
		RatePerMinute int
	}
	Keys struct {
		Ticketmaster string
		TMDb         string
		OMDb         string
		GoogleMaps   string
		// Gemini is optional; empty disables the small-talk provider.
		Gemini string
	}
	Personality struct {
		Path string
	}
	Search         SearchConfig
	AdapterTimeout time.Duration
	LogLevel       string
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("ACTIVABOT_HTTP_ADDR", ":8080")
	cfg.DB.DSN = envOrDefault("ACTIVABOT_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("ACTIVABOT_REDIS_ADDR", "")
	cfg.Redis.RatePerMinute = envOrDefaultInt("ACTIVABOT_RATE_PER_MINUTE", 30)
	cfg.Keys.Ticketmaster = envOrError("TICKETMASTER_CONSUMER_KEY")
	cfg.Keys.TMDb = envOrError("TMDB_API_KEY")
	cfg.Keys.OMDb = envOrError("OMDB_API_KEY")
	cfg.Keys.GoogleMaps = envOrError("GOOGLE_MAPS_API_KEY")
	cfg.Keys.Gemini = envOrDefault("GEMINI_API_KEY", "")
	cfg.Personality.Path = envOrDefault("ACTIVABOT_PERSONALITY", "configs/personality.json")
	cfg.Search.DefaultRadiusM = envOrDefaultInt("ACTIVABOT_SEARCH_RADIUS_M", 25000)
	cfg.Search.ExtendedRadiusM = envOrDefaultInt("ACTIVABOT_SEARCH_RADIUS_EXT_M", 50000)
	cfg.Search.MaxResults = envOrDefaultInt("ACTIVABOT_MAX_RESULTS", 15)
	cfg.AdapterTimeout = time.Duration(envOrDefaultInt("ACTIVABOT_ADAPTER_TIMEOUT_S", 8)) * time.Second
	cfg.LogLevel = envOrDefault("ACTIVABOT_LOG_LEVEL", "info")
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
