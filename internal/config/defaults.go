package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultProductionURL = "https://invest-public-api.tbank.ru/rest"
	DefaultSandboxURL    = "https://sandbox-invest-public-api.tbank.ru/rest"
	DefaultTimeout       = 30 * time.Second
	DefaultConcurrency   = 10
	DefaultClosePolicy   = ClosePolicyWait
	DefaultCloseTimeout  = 10 * time.Second
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

// Close policies.
const (
	ClosePolicyWait    = "wait"
	ClosePolicyAbandon = "abandon"
)

func (c *Config) applyDefaults() {
	c.API.applyDefaults()

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

func (c *APIConfig) applyDefaults() {
	if c.BaseURL == "" {
		if c.Sandbox {
			c.BaseURL = DefaultSandboxURL
		} else {
			c.BaseURL = DefaultProductionURL
		}
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Concurrency == 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.ClosePolicy == "" {
		c.ClosePolicy = DefaultClosePolicy
	}
	if c.CloseTimeout == 0 {
		c.CloseTimeout = DefaultCloseTimeout
	}
}
