package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// GRID data provider
	GridAPIURL    string
	GridAPIKey    string
	GridTimeout   time.Duration
	DefaultWindow int
	MaxTimeWindow int

	// Cache
	RedisURL string
	CacheTTL time.Duration

	// AI insights (optional; prose generation is skipped when unset)
	AnthropicAPIKey string
	AnthropicModel  string

	// HTTP timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		GridAPIURL:    getEnv("GRID_API_URL", "https://api.grid.gg"),
		GridTimeout:   getEnvDuration("GRID_TIMEOUT", 15*time.Second),
		DefaultWindow: getEnvInt("DEFAULT_TIME_WINDOW_DAYS", 90),
		MaxTimeWindow: getEnvInt("MAX_TIME_WINDOW_DAYS", 365),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: getEnvDuration("CACHE_TTL", 10*time.Minute),

		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),

		ReadTimeout:     getEnvDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.GridAPIKey, err = getEnvRequired("GRID_API_KEY"); err != nil {
		return nil, err
	}

	if cfg.DefaultWindow < 1 || cfg.DefaultWindow > cfg.MaxTimeWindow {
		return nil, fmt.Errorf("DEFAULT_TIME_WINDOW_DAYS must be between 1 and %d", cfg.MaxTimeWindow)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
