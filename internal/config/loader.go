package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv.
const (
	EnvToken   = "T_INVEST_API"
	EnvSandbox = "T_IS_SANDBOX"
)

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Expand ${VAR} environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads config and applies default values.
func LoadWithDefaults(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadAndValidate loads config, applies defaults, and validates.
func LoadAndValidate(path string) (*Config, error) {
	cfg, err := LoadWithDefaults(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files (default ".env") into
// the process environment without overriding variables already set. A missing
// default file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

// FromEnv builds a validated config from T_INVEST_API and T_IS_SANDBOX. Both
// are required.
func FromEnv() (*Config, error) {
	token, ok := os.LookupEnv(EnvToken)
	if !ok || token == "" {
		return nil, fmt.Errorf("the %q environment variable is not set", EnvToken)
	}

	sandbox, err := BoolEnv(EnvSandbox, true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{API: APIConfig{Token: token, Sandbox: sandbox}}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// BoolEnv reads a boolean environment variable. true, yes, on and 1 are true
// (case-insensitive); anything else is false. A missing variable is an error
// only when required.
func BoolEnv(name string, required bool) (bool, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		if required {
			return false, fmt.Errorf("the %q environment variable is not set", name)
		}
		return false, nil
	}
	return IsTrue(v), nil
}

// IsTrue reports whether v is one of true, yes, on, 1.
func IsTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "on", "1":
		return true
	default:
		return false
	}
}
