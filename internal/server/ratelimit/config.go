package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Config controls the limiter. The site serves one small read-only surface,
// so a single bucket shape per client is enough; health checks and static
// assets are exempted by the caller.
type Config struct {
	Enabled         bool
	Limit           int           // requests per Window
	Window          time.Duration // refill window
	Burst           int           // bucket capacity; defaults to Limit when 0
	CleanupInterval time.Duration // how often idle buckets are dropped
}

// LoadConfig reads the limiter settings from the environment.
func LoadConfig() *Config {
	if !getEnvBool("CV_RATE_LIMIT_ENABLED", true) {
		return &Config{}
	}

	cfg := defaultConfig()
	cfg.Limit = getEnvInt("CV_RATE_LIMIT", cfg.Limit)
	cfg.Window = getEnvDuration("CV_RATE_LIMIT_WINDOW", cfg.Window)
	cfg.Burst = getEnvInt("CV_RATE_LIMIT_BURST", cfg.Burst)
	cfg.CleanupInterval = getEnvDuration("CV_RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	return cfg
}

func defaultConfig() *Config {
	return &Config{
		Enabled:         true,
		Limit:           120,
		Window:          time.Minute,
		Burst:           30,
		CleanupInterval: 5 * time.Minute,
	}
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
