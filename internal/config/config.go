// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds configuration for both the chat client and the evaluator
// service. Each binary reads the fields it needs.
type Config struct {
	// Client.
	APIBase     string
	DBPath      string
	HTTPTimeout time.Duration
	Mode        string

	// Evaluator service.
	Port        string
	FrontendURL string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	timeoutSec := getEnvInt("COOKED_HTTP_TIMEOUT_SECONDS", 15)
	if timeoutSec <= 0 {
		timeoutSec = 15
	}

	cfg := &Config{
		APIBase:     getEnv("COOKED_API_BASE", "http://127.0.0.1:8000"),
		DBPath:      getEnv("COOKED_DB_PATH", defaultDBPath()),
		HTTPTimeout: time.Duration(timeoutSec) * time.Second,
		Mode:        strings.ToUpper(getEnv("COOKED_MODE", "SOCRATIC")),
		Port:        getEnv("PORT", "8000"),
		FrontendURL: getEnv("FRONTEND_URL", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.APIBase == "" {
		return fmt.Errorf("COOKED_API_BASE cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("COOKED_DB_PATH cannot be empty")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./data/cooked.db"
	}
	return home + "/.cooked/cooked.db"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
