package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingDatabaseURL is returned by Load when DATABASE_URL is unset.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")

// Config holds all configuration for the application
type Config struct {
	DBUrl       string
	Environment string
	Port        string
	LogLevel    string

	// RedisAddr enables the event cache when set.
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the environment is authoritative and .env is optional
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:   env,
		DBUrl:         strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Port:          os.Getenv("PORT"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.DBUrl == "" {
		return nil, ErrMissingDatabaseURL
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	var err error
	if cfg.CacheTTL, err = durationEnv("CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	cfg.CORSAllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

// IsProduction reports whether GO_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, s)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
