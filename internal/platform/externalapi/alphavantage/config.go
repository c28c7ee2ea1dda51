// Package alphavantage provides a client for the Alpha Vantage stock market API.
package alphavantage

import "time"

const (
	// DefaultBaseURL is the single query endpoint every Alpha Vantage function is served from.
	DefaultBaseURL = "https://www.alphavantage.co/query"
	// DefaultTimeout bounds a whole request including reading the body.
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for the Alpha Vantage API client.
type Config struct {
	APIKey  string        `yaml:"api_key"`  // API key sent as the apikey parameter
	BaseURL string        `yaml:"base_url"` // Query endpoint (e.g., "https://www.alphavantage.co/query")
	Timeout time.Duration `yaml:"timeout"`  // HTTP request timeout
}

// WithDefaults fills unset fields with the package defaults.
func (c Config) WithDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
