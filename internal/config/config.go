// Package config loads server configuration from environment variables.
package config

import (
	"github.com/caarlos0/env/v10"
)

// Config holds the HTTP server settings.
type Config struct {
	Port     string `env:"PORT" envDefault:"5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the process environment.
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
