package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rickgao/tinvest-instruments/internal/auth"
	"github.com/rickgao/tinvest-instruments/internal/config"
)

// Service endpoints.
const (
	ProductionURL = config.DefaultProductionURL
	SandboxURL    = config.DefaultSandboxURL
)

// Client provides access to the InstrumentsService REST API.
type Client struct {
	session     *Session
	logger      *slog.Logger
	concurrency int
}

type clientOptions struct {
	timeout      time.Duration
	logger       *slog.Logger
	httpClient   *http.Client
	policy       ClosePolicy
	closeTimeout time.Duration
	appName      string
	concurrency  int
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

// NewClient creates a client bound to one Session. The caller must Close it.
func NewClient(token, baseURL string, opts ...ClientOption) (*Client, error) {
	o := clientOptions{
		timeout:      config.DefaultTimeout,
		logger:       slog.Default(),
		policy:       CloseWait,
		closeTimeout: config.DefaultCloseTimeout,
		concurrency:  config.DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}

	creds, err := auth.NewCredentials(token)
	if err != nil {
		return nil, &Error{Kind: KindInvalidCredential, Cause: err}
	}

	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, &Error{Kind: KindInvalidArgument, Cause: err}
	}

	if o.timeout <= 0 {
		return nil, &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf("timeout must be > 0, got %v", o.timeout)}
	}
	if o.concurrency < 1 {
		return nil, &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf("concurrency must be >= 1, got %d", o.concurrency)}
	}

	c := &Client{
		logger:      o.logger,
		concurrency: o.concurrency,
		session: newSession(sessionConfig{
			baseURL:      base,
			creds:        creds,
			timeout:      o.timeout,
			appName:      o.appName,
			logger:       o.logger,
			policy:       o.policy,
			closeTimeout: o.closeTimeout,
			httpClient:   o.httpClient,
			maxIdlePer:   o.concurrency,
		}),
	}

	c.logger.Info("instruments client created",
		"base_url", base,
		"token", creds.String(),
		"timeout", o.timeout,
		"close_policy", o.policy.String(),
	)
	return c, nil
}

// NewClientFromConfig builds a client from a validated APIConfig. Options
// passed here override the config.
func NewClientFromConfig(cfg config.APIConfig, opts ...ClientOption) (*Client, error) {
	token := cfg.Token
	if cfg.TokenFile != "" {
		creds, err := auth.LoadCredentials(cfg.TokenFile)
		if err != nil {
			return nil, &Error{Kind: KindInvalidCredential, Cause: err}
		}
		token = creds.Token()
	}

	concurrency := cfg.Concurrency
	if concurrency == 0 {
		concurrency = config.DefaultConcurrency
	}

	base := []ClientOption{
		WithConcurrency(concurrency),
		WithAppName(cfg.AppName),
		WithCloseTimeout(cfg.CloseTimeout),
	}
	if cfg.Timeout > 0 {
		base = append(base, WithTimeout(cfg.Timeout))
	}
	switch cfg.ClosePolicy {
	case config.ClosePolicyAbandon:
		base = append(base, WithClosePolicy(CloseAbandon))
	case config.ClosePolicyWait, "":
		base = append(base, WithClosePolicy(CloseWait))
	default:
		return nil, &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf("unknown close policy %q", cfg.ClosePolicy)}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = ProductionURL
		if cfg.Sandbox {
			baseURL = SandboxURL
		}
	}

	return NewClient(token, baseURL, append(base, opts...)...)
}

// WithTimeout bounds each individual remote call.
func WithTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(o *clientOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithHTTPClient sets a custom HTTP client. The session then cannot track its
// connections and OpenConns always reports 0.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithClosePolicy selects what Close does with in-flight requests.
func WithClosePolicy(p ClosePolicy) ClientOption {
	return func(o *clientOptions) {
		o.policy = p
	}
}

// WithCloseTimeout bounds how long CloseWait waits. Zero waits indefinitely.
func WithCloseTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.closeTimeout = d
	}
}

// WithAppName sets the x-app-name header.
func WithAppName(name string) ClientOption {
	return func(o *clientOptions) {
		o.appName = strings.TrimSpace(name)
	}
}

// WithConcurrency sets the default number of requests a batch keeps in flight.
func WithConcurrency(n int) ClientOption {
	return func(o *clientOptions) {
		o.concurrency = n
	}
}

// Session returns the client's session.
func (c *Client) Session() *Session {
	return c.session
}

// Close releases the session. Safe to call more than once.
func (c *Client) Close() error {
	return c.session.Close()
}

// Shutdown releases the session, waiting for in-flight requests until ctx is done.
func (c *Client) Shutdown(ctx context.Context) error {
	return c.session.Shutdown(ctx)
}

// Catalog returns every operation descriptor in name order.
func (c *Client) Catalog() []Descriptor {
	return Catalog()
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("base URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("base URL must be an absolute http(s) URL, got %q", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}
