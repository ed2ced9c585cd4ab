package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if err := c.API.Validate(); err != nil {
		return err
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	return nil
}

// Validate checks the API section.
func (c *APIConfig) Validate() error {
	if c.Token == "" && c.TokenFile == "" {
		return errors.New("api.token or api.token_file is required")
	}
	if c.Token != "" && c.TokenFile != "" {
		return errors.New("api.token and api.token_file are mutually exclusive")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute http(s) URL, got %q", c.BaseURL)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be > 0, got %v", c.Timeout)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("api.concurrency must be >= 1, got %d", c.Concurrency)
	}
	if c.ClosePolicy != ClosePolicyWait && c.ClosePolicy != ClosePolicyAbandon {
		return fmt.Errorf("api.close_policy must be %q or %q, got %q", ClosePolicyWait, ClosePolicyAbandon, c.ClosePolicy)
	}
	if c.CloseTimeout < 0 {
		return fmt.Errorf("api.close_timeout must be >= 0, got %v", c.CloseTimeout)
	}

	return nil
}
