// Package auth provides the bearer credential used to authorize InstrumentsService calls.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// Credential errors.
var (
	ErrEmptyToken     = errors.New("API token is required")
	ErrMalformedToken = errors.New("API token is malformed")
)

// Credentials holds the API token sent as a bearer credential.
type Credentials struct {
	token string
}

// NewCredentials validates token and wraps it. The token must be a single
// printable ASCII word; a pasted "Bearer ..." value or stray newline is rejected.
func NewCredentials(token string) (*Credentials, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrEmptyToken
	}

	for i, r := range token {
		if r <= ' ' || r > '~' {
			return nil, fmt.Errorf("%w: invalid character at position %d", ErrMalformedToken, i)
		}
	}

	return &Credentials{token: token}, nil
}

// LoadCredentials reads a token from a file, e.g. a mounted secret.
func LoadCredentials(path string) (*Credentials, error) {
	if path == "" {
		return nil, fmt.Errorf("token file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}

	return NewCredentials(string(data))
}

// Authorize sets the Authorization header on req.
func (c *Credentials) Authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
}

// Token returns the raw token.
func (c *Credentials) Token() string {
	return c.token
}

// String returns a redacted form safe for logs.
func (c *Credentials) String() string {
	if len(c.token) <= 8 {
		return "t.****"
	}
	return c.token[:4] + "****" + c.token[len(c.token)-4:]
}
