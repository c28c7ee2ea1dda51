// Package config loads the application configuration from an optional YAML file,
// an optional .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"stock_snapshot/internal/feature/snapshot/domain/entity"
	"stock_snapshot/internal/platform/externalapi/alphavantage"
)

// Environment variable names.
const (
	EnvAPIKey      = "ALPHA_VANTAGE_API_KEY"
	EnvBaseURL     = "ALPHA_VANTAGE_BASE_URL"
	EnvTimeout     = "ALPHA_VANTAGE_TIMEOUT"
	EnvOutputPath  = "OUTPUT_PATH"
	EnvGranularity = "GRANULARITY"
	EnvLogLevel    = "LOG_LEVEL"
)

// Defaults
const (
	DefaultOutputPath = "test.json"
	DefaultLogLevel   = "info"
)

// ErrMissingAPIKey is returned by Validate when no API key is configured.
var ErrMissingAPIKey = errors.New(EnvAPIKey + " is required; set it in the environment or a .env file")

// Config holds all application configuration.
type Config struct {
	AlphaVantage alphavantage.Config `yaml:"alpha_vantage"`
	OutputPath   string              `yaml:"output_path"`
	Granularity  entity.Granularity  `yaml:"granularity"`
	LogLevel     string              `yaml:"log_level"`
}

// LoadDotEnv loads variables from the given .env files (default ".env") into the
// process environment. Variables already set are not overridden.
// The error is informational: callers log it once their logger is configured.
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// Load reads config from a YAML file, then applies environment variable overrides and defaults.
// An empty path or a missing file yields a config built from the environment only.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.AlphaVantage.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.AlphaVantage.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvTimeout, err)
		}
		cfg.AlphaVantage.Timeout = d
	}
	if v := os.Getenv(EnvOutputPath); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv(EnvGranularity); v != "" {
		g, err := entity.ParseGranularity(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvGranularity, err)
		}
		cfg.Granularity = g
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	// Defaults
	cfg.AlphaVantage = cfg.AlphaVantage.WithDefaults()
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	if cfg.Granularity == 0 {
		cfg.Granularity = entity.Intraday
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.AlphaVantage.APIKey == "" {
		return ErrMissingAPIKey
	}
	if !c.Granularity.Valid() {
		return fmt.Errorf("%w: %s", entity.ErrInvalidGranularity, c.Granularity)
	}
	if c.OutputPath == "" {
		return errors.New("output_path is required")
	}
	return nil
}
