// Package config provides configuration loading and validation for the CV portal.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds server configuration assembled from environment variables.
type Config struct {
	Port            int
	DatabaseURL     string
	TranslationsDir string
	DefaultLocale   string
	GeminiAPIKey    string // optional, enables summary suggestions
}

// Load reads the configuration from the environment. DATABASE_URL is
// required; everything else has a default or is optional.
func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		parsed, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		port = parsed
	}

	cfg := &Config{
		Port:            port,
		DatabaseURL:     databaseURL,
		TranslationsDir: envOrDefault("TRANSLATIONS_DIR", "translations"),
		DefaultLocale:   envOrDefault("DEFAULT_LOCALE", "en"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: database URL is empty")
	}
	if c.DefaultLocale == "" {
		return fmt.Errorf("config error: default locale is empty")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
