package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default; only DATABASE_URL is required.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Database
	DatabaseURL string
	DBMaxConns  int32
	DBMinConns  int32

	// CORS allowed origins. Defaults to "*".
	CORSOrigins []string

	// Host header allowlist. Empty means every host is accepted.
	// Entries may use a leading "*." wildcard, e.g. "*.example.com".
	AllowedHosts []string

	// Rate limiting: maximum requests per second across the whole API.
	RateLimit int
}

func Load() (*Config, error) {
	// A local .env is a development convenience; its absence is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     getDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		DatabaseURL: dbURL,
		DBMaxConns:  int32(getInt("DB_MAX_CONNS", 10)),
		DBMinConns:  int32(getInt("DB_MIN_CONNS", 2)),

		CORSOrigins:  getCSV("CORS_ORIGINS", []string{"*"}),
		AllowedHosts: getCSV("ALLOWED_HOSTS", nil),

		RateLimit: getInt("RATE_LIMIT_PER_SECOND", 50),
	}

	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_SECOND must be greater than 0")
	}
	if cfg.DBMinConns > cfg.DBMaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNS cannot exceed DB_MAX_CONNS")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

// getCSV splits a comma-separated variable into trimmed entries.
// Trailing slashes are stripped so "https://a.com/" matches "https://a.com".
func getCSV(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}

	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSuffix(strings.TrimSpace(p), "/")
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
