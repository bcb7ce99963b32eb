package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Catalog  CatalogConfig
	Pricing  PricingConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type AuthConfig struct {
	APIKeys []string // Valid API keys for the simulation endpoint
}

// CatalogConfig lists where products are loaded from at startup.
// All configured sources are merged.
type CatalogConfig struct {
	Files       []string
	URLs        []string
	DatabaseURL string
	ProductIDs  []string // restricts the database load when set
}

type PricingConfig struct {
	GridSteps int
	Workers   int
}

// Load reads configuration from a .env file, if present, and the environment
func Load() (*Config, error) {
	// a missing .env file is not an error
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Auth: AuthConfig{
			APIKeys: getEnvAsSlice("API_KEYS", []string{"apitest"}),
		},
		Catalog: CatalogConfig{
			Files:       getEnvAsSlice("CATALOG_FILES", []string{"products.json"}),
			URLs:        getEnvAsSlice("CATALOG_URLS", nil),
			DatabaseURL: getEnv("DATABASE_URL", ""),
			ProductIDs:  getEnvAsSlice("CATALOG_PRODUCT_IDS", nil),
		},
		Pricing: PricingConfig{
			GridSteps: getEnvAsInt("PRICING_GRID_STEPS", 200),
			Workers:   getEnvAsInt("PRICING_WORKERS", 4),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("at least one API key must be configured")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.Pricing.GridSteps < 1 {
		return fmt.Errorf("PRICING_GRID_STEPS must be positive, got %d", c.Pricing.GridSteps)
	}

	if c.Pricing.Workers < 1 {
		return fmt.Errorf("PRICING_WORKERS must be positive, got %d", c.Pricing.Workers)
	}

	if len(c.Catalog.Files) == 0 && len(c.Catalog.URLs) == 0 && c.Catalog.DatabaseURL == "" {
		return fmt.Errorf("no catalog source configured (CATALOG_FILES, CATALOG_URLS or DATABASE_URL)")
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsSlice splits a comma separated list, dropping blank entries.
// "-" yields an empty list so a default can be switched off.
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if valueStr == "-" {
		return nil
	}

	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
