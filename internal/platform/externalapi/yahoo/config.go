// Package yahoo provides a client for the Yahoo Finance public quote API.
package yahoo

import (
	"os"
	"time"
)

// Config holds configuration for the Yahoo Finance API client.
type Config struct {
	ChartBaseURL string        // Base URL for the chart endpoint (e.g., "https://query1.finance.yahoo.com")
	QuoteBaseURL string        // Base URL for the quote endpoint (usually the same host)
	Timeout      time.Duration // HTTP request timeout
}

// LoadConfig loads Yahoo Finance configuration from environment variables,
// falling back to the public query host.
func LoadConfig() Config {
	base := os.Getenv("YAHOO_BASE_URL")
	if base == "" {
		base = "https://query1.finance.yahoo.com"
	}
	return Config{
		ChartBaseURL: base,
		QuoteBaseURL: base,
		Timeout:      10 * time.Second,
	}
}
