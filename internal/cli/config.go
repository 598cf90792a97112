package cli

import (
	"fmt"
	"strings"
)

// Config holds the options shared by every subcommand.
type Config struct {
	LogLevel  string
	LogFormat string
	Lang      string
}

// NewConfig normalizes and validates c. Empty fields take their defaults.
func NewConfig(c Config) (*Config, error) {
	cfg := Config{
		LogLevel:  strings.ToLower(c.LogLevel),
		LogFormat: strings.ToLower(c.LogFormat),
		Lang:      strings.ToLower(c.Lang),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}
	if cfg.Lang != "en" && cfg.Lang != "ja" {
		return nil, fmt.Errorf("invalid lang %q: must be 'en' or 'ja'", c.Lang)
	}
	return &cfg, nil
}
