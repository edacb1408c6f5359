// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Port     string
	Env      string // "development", "staging", "production"
	LogLevel string

	// Database
	DatabaseURL string // PostgreSQL connection string (optional, uses in-memory if not set)

	// Scan policy
	SafeThreshold int // graylist scores above this are SAFE
	UnknownScore  int // score assigned to first-seen clean handles
	ListLimit     int // hard cap for GET /v1/merchants

	// Security
	AllowedOrigins []string
	RateLimitRPS   int

	// Observability
	OTLPEndpoint string // OTLP gRPC endpoint for traces (optional)
}

const (
	DefaultPort          = "8080"
	DefaultEnv           = "development"
	DefaultLogLevel      = "info"
	DefaultSafeThreshold = 40
	DefaultUnknownScore  = 50
	DefaultListLimit     = 50
	DefaultRateLimit     = 100
)

// Load reads configuration from environment variables.
// It loads .env file if present (for local development).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not present)
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", DefaultPort),
		Env:           getEnv("ENV", DefaultEnv),
		LogLevel:      getEnv("LOG_LEVEL", DefaultLogLevel),
		DatabaseURL:   os.Getenv("DATABASE_URL"), // Optional, uses in-memory if not set
		SafeThreshold: getEnvInt("SAFE_THRESHOLD", DefaultSafeThreshold),
		UnknownScore:  getEnvInt("UNKNOWN_SCORE", DefaultUnknownScore),
		ListLimit:     getEnvInt("LIST_LIMIT", DefaultListLimit),
		RateLimitRPS:  getEnvInt("RATE_LIMIT_RPS", DefaultRateLimit),
		OTLPEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent
func (c *Config) Validate() error {
	if c.SafeThreshold < 0 || c.SafeThreshold > 100 {
		return fmt.Errorf("SAFE_THRESHOLD must be in [0,100], got %d", c.SafeThreshold)
	}
	if c.UnknownScore <= 0 || c.UnknownScore >= 100 {
		// 0 and 100 are reserved for confirmed fraud / fully verified
		return fmt.Errorf("UNKNOWN_SCORE must be in (0,100), got %d", c.UnknownScore)
	}
	if c.ListLimit < 1 {
		return fmt.Errorf("LIST_LIMIT must be positive, got %d", c.ListLimit)
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
