package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Config is the root configuration.
type Config struct {
	API APIConfig `yaml:"api"`
	Log LogConfig `yaml:"log"`
}

// APIConfig holds InstrumentsService client settings.
type APIConfig struct {
	Token        string        `yaml:"token"`      // Bearer token (T_INVEST_API)
	TokenFile    string        `yaml:"token_file"` // Alternative to token: file holding it
	Sandbox      bool          `yaml:"sandbox"`    // Use the sandbox endpoint when BaseURL is empty
	BaseURL      string        `yaml:"base_url"`
	AppName      string        `yaml:"app_name"` // Sent as x-app-name
	Timeout      time.Duration `yaml:"timeout"`  // Per-call bound
	Concurrency  int           `yaml:"concurrency"`
	ClosePolicy  string        `yaml:"close_policy"` // "wait" or "abandon"
	CloseTimeout time.Duration `yaml:"close_timeout"`
}

// Env returns "SANDBOX" or "PROD" for log lines.
func (c APIConfig) Env() string {
	if c.Sandbox {
		return "SANDBOX"
	}
	return "PROD"
}

// LogConfig holds logger settings for the binaries.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// SlogLevel parses Level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
