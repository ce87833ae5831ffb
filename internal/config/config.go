// README: Config loader with env defaults for HTTP, catalog source, Redis cache, and logging.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type CatalogConfig struct {
	// Path to the delimited vehicle table, used when DSN is empty.
	Path      string
	Delimiter string // "tab" or "comma"
	// Postgres DSN; when set, the catalog is read from the vehicles table instead.
	DSN string
}

type CacheConfig struct {
	// Redis address; empty disables the quote cache.
	Addr       string
	TTLSeconds int
}

type Config struct {
	HTTP struct {
		Addr        string
		CORSOrigins []string
	}
	Catalog CatalogConfig
	Cache   CacheConfig
	Log     struct {
		Level  string
		Format string
	}
}

func Load() (Config, error) {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("FLEETQUOTE_HTTP_ADDR", ":8080")
	cfg.HTTP.CORSOrigins = splitCSV(envOrDefault("FLEETQUOTE_CORS_ORIGINS", "http://localhost:3000"))
	cfg.Catalog.Path = envOrDefault("FLEETQUOTE_CATALOG_PATH", "data/vehicles.csv")
	cfg.Catalog.Delimiter = envOrDefault("FLEETQUOTE_CATALOG_DELIMITER", "tab")
	cfg.Catalog.DSN = envOrDefault("FLEETQUOTE_CATALOG_DSN", "")
	cfg.Cache.Addr = envOrDefault("FLEETQUOTE_REDIS_ADDR", "")
	cfg.Cache.TTLSeconds = envOrDefaultInt("FLEETQUOTE_CACHE_TTL", 300)
	cfg.Log.Level = envOrDefault("FLEETQUOTE_LOG_LEVEL", "info")
	cfg.Log.Format = envOrDefault("FLEETQUOTE_LOG_FORMAT", "json")
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

func splitCSV(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
