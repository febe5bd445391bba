package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment names.
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"server_address" validate:"required"`
	Environment   string `yaml:"environment" validate:"required,oneof=development production test"`

	// Catalog configuration
	CatalogBaseURL   string `yaml:"catalog_base_url" validate:"required,url"`
	CatalogTimeoutMS int    `yaml:"catalog_timeout_ms" validate:"gt=0"` // milliseconds

	// Visualizer configuration; an empty URL disables the outbound feed
	VisualizerURL       string `yaml:"visualizer_url" validate:"omitempty,url"`
	VisualizerNamespace string `yaml:"visualizer_namespace"`

	// Logging
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Feature flags
	EnableMetrics bool `yaml:"enable_metrics"`
	EnableCORS    bool `yaml:"enable_cors"`
}

// LoadConfig loads configuration from an optional YAML file (CONFIG_FILE)
// layered under environment variable overrides.
func LoadConfig() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		ServerAddress:       ":8080",
		Environment:         Development,
		CatalogBaseURL:      "http://localhost:8000",
		CatalogTimeoutMS:    10000,
		VisualizerNamespace: "/",
		LogLevel:            "info",
		EnableMetrics:       true,
		EnableCORS:          true,
	}
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.ServerAddress = getEnv("SERVER_ADDRESS", c.ServerAddress)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.CatalogBaseURL = getEnv("CATALOG_BASE_URL", c.CatalogBaseURL)
	c.CatalogTimeoutMS = getEnvInt("CATALOG_TIMEOUT_MS", c.CatalogTimeoutMS)
	c.VisualizerURL = getEnv("VISUALIZER_URL", c.VisualizerURL)
	c.VisualizerNamespace = getEnv("VISUALIZER_NAMESPACE", c.VisualizerNamespace)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.EnableMetrics = getEnvBool("ENABLE_METRICS", c.EnableMetrics)
	c.EnableCORS = getEnvBool("ENABLE_CORS", c.EnableCORS)
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// CatalogTimeout returns the catalog request timeout as a duration
func (c *Config) CatalogTimeout() time.Duration {
	return time.Duration(c.CatalogTimeoutMS) * time.Millisecond
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
