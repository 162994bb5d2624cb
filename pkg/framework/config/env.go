// Package config loads framework settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the coordinator and host settings.
type Config struct {
	// APIID addresses this coordinator on the message bus. Empty means a
	// random UUID is assigned.
	APIID string `env:"GENART_API_ID"`
	// Notify is the default scope for lifecycle broadcasts.
	Notify string `env:"GENART_NOTIFY" envDefault:"all"`
	// LogLevel is one of debug, info, warn, error, off.
	LogLevel string `env:"GENART_LOG_LEVEL" envDefault:"info"`
	// PollInterval paces waits for late collaborators.
	PollInterval time.Duration `env:"GENART_POLL_INTERVAL" envDefault:"10ms"`
	// FPS drives the ticker time provider.
	FPS float64 `env:"GENART_FPS" envDefault:"60"`
	// StateDB is the SQLite path for saved variations. Empty disables it.
	StateDB string `env:"GENART_STATE_DB"`
	// WSAddr is the listen address of the editor bridge. Empty disables it.
	WSAddr string `env:"GENART_WS_ADDR"`
	// OTelEndpoint enables OTLP trace export when set.
	OTelEndpoint string `env:"GENART_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"GENART_OTEL_ENABLED" envDefault:"true"`
}

// Default returns the configuration with every default applied.
func Default() Config {
	return Config{
		Notify:       "all",
		LogLevel:     "info",
		PollInterval: 10 * time.Millisecond,
		FPS:          60,
		OTelEnabled:  true,
	}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
