package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rickgao/tinvest-instruments/internal/auth"
	"github.com/rickgao/tinvest-instruments/internal/version"
)

// ClosePolicy decides what Close does with requests still in flight.
type ClosePolicy int

const (
	// CloseWait waits for in-flight requests, up to the close timeout, then
	// abandons whatever is left.
	CloseWait ClosePolicy = iota
	// CloseAbandon cancels in-flight requests immediately.
	CloseAbandon
)

func (p ClosePolicy) String() string {
	switch p {
	case CloseWait:
		return "wait"
	case CloseAbandon:
		return "abandon"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

const (
	dialTimeout         = 5 * time.Second
	dialKeepAlive       = 30 * time.Second
	tlsHandshakeTimeout = 5 * time.Second
	idleConnTimeout     = 90 * time.Second
	maxIdleConns        = 100

	// maxErrorBody caps the raw body kept on an Error.
	maxErrorBody = 4 << 10
)

// envelope is one encoded request, built per call and discarded after send.
type envelope struct {
	operation string
	path      string
	body      []byte
	requestID string
}

// rawResponse is an undecoded reply.
type rawResponse struct {
	status     int
	body       []byte
	trackingID string
}

// Session owns the connection context shared by every call of one Client:
// credential, base URL, per-call timeout and a single pooled HTTP transport.
// It is safe for concurrent use.
type Session struct {
	baseURL      string
	creds        *auth.Credentials
	timeout      time.Duration
	appName      string
	logger       *slog.Logger
	policy       ClosePolicy
	closeTimeout time.Duration

	httpClient *http.Client
	transport  *http.Transport // nil when the caller supplied the HTTP client
	conns      *connTracker    // nil when the caller supplied the HTTP client

	// ctx is cancelled to abandon in-flight requests.
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	closed   bool
	inflight sync.WaitGroup
}

type sessionConfig struct {
	baseURL      string
	creds        *auth.Credentials
	timeout      time.Duration
	appName      string
	logger       *slog.Logger
	policy       ClosePolicy
	closeTimeout time.Duration
	httpClient   *http.Client
	maxIdlePer   int
}

func newSession(cfg sessionConfig) *Session {
	s := &Session{
		baseURL:      cfg.baseURL,
		creds:        cfg.creds,
		timeout:      cfg.timeout,
		appName:      cfg.appName,
		logger:       cfg.logger,
		policy:       cfg.policy,
		closeTimeout: cfg.closeTimeout,
		httpClient:   cfg.httpClient,
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	if s.httpClient == nil {
		s.conns = newConnTracker()
		dialer := &net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: dialKeepAlive,
		}
		s.transport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DialContext:         s.conns.wrap(dialer.DialContext),
			ForceAttemptHTTP2:   true,
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: max(cfg.maxIdlePer, 2),
			IdleConnTimeout:     idleConnTimeout,
			TLSHandshakeTimeout: tlsHandshakeTimeout,
		}
		// No Client.Timeout: each call carries its own deadline.
		s.httpClient = &http.Client{Transport: s.transport}
	}

	return s
}

// acquire registers an in-flight request. It fails once Close has begun.
func (s *Session) acquire() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	s.inflight.Add(1)
	return true
}

// send performs one request/response exchange. It never retries.
func (s *Session) send(ctx context.Context, env *envelope) (*rawResponse, error) {
	if !s.acquire() {
		return nil, &Error{Kind: KindTransportError, Operation: env.operation, Cause: ErrSessionClosed}
	}
	defer s.inflight.Done()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+env.path, bytes.NewReader(env.body))
	if err != nil {
		return nil, &Error{Kind: KindTransportError, Operation: env.operation, Cause: fmt.Errorf("create request: %w", err)}
	}

	s.creds.Authorize(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("X-Request-Id", env.requestID)
	if s.appName != "" {
		req.Header.Set("x-app-name", s.appName)
	}

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, s.transportError(ctx, env, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, s.transportError(ctx, env, fmt.Errorf("read response: %w", err))
	}

	s.logger.Debug("instruments call",
		"operation", env.operation,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", env.requestID,
	)

	return &rawResponse{
		status:     resp.StatusCode,
		body:       body,
		trackingID: resp.Header.Get("x-tracking-id"),
	}, nil
}

// transportError classifies a failure that produced no usable response.
func (s *Session) transportError(ctx context.Context, env *envelope, err error) *Error {
	e := &Error{Operation: env.operation, Cause: err}
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded):
		e.Kind = KindTimeout
		e.Message = fmt.Sprintf("no response within %v", s.timeout)
	case s.ctx.Err() != nil:
		e.Kind = KindTransportError
		e.Cause = fmt.Errorf("%w: %w", ErrSessionAbandoned, err)
	default:
		e.Kind = KindTransportError
	}

	s.logger.Debug("instruments call failed",
		"operation", env.operation,
		"kind", e.Kind.String(),
		"request_id", env.requestID,
		"err", err,
	)
	return e
}

// Close releases the session according to its close policy. It is idempotent.
func (s *Session) Close() error {
	ctx := context.Background()
	if s.policy == CloseWait && s.closeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.closeTimeout)
		defer cancel()
	}
	return s.Shutdown(ctx)
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx is
// done, then abandons the rest. Every tracked connection is closed before it
// returns. Under CloseAbandon in-flight requests are cancelled right away.
func (s *Session) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if s.policy == CloseAbandon {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("abandoning in-flight requests on close", "err", ctx.Err())
		s.cancel()
		<-done
		err = fmt.Errorf("close session: %w", ctx.Err())
	}

	s.cancel()
	if s.transport != nil {
		s.transport.CloseIdleConnections()
	}
	if s.conns != nil {
		s.conns.closeAll()
	}

	s.logger.Debug("session closed", "base_url", s.baseURL, "policy", s.policy.String())
	return err
}

// OpenConns returns the number of live connections dialed by this session.
// It is always 0 when a custom HTTP client was supplied.
func (s *Session) OpenConns() int {
	if s.conns == nil {
		return 0
	}
	return s.conns.count()
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// -----------------------------------------------------------------------------
// Connection tracking
// -----------------------------------------------------------------------------

type dialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

// connTracker records every connection the transport dials so Close can
// guarantee none outlives the session.
type connTracker struct {
	mu    sync.Mutex
	conns map[*trackedConn]struct{}
}

func newConnTracker() *connTracker {
	return &connTracker{conns: make(map[*trackedConn]struct{})}
}

func (t *connTracker) wrap(dial dialFunc) dialFunc {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := dial(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		tc := &trackedConn{Conn: conn, tracker: t}
		t.mu.Lock()
		t.conns[tc] = struct{}{}
		t.mu.Unlock()
		return tc, nil
	}
}

func (t *connTracker) remove(c *trackedConn) {
	t.mu.Lock()
	delete(t.conns, c)
	t.mu.Unlock()
}

func (t *connTracker) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.conns)
}

func (t *connTracker) closeAll() {
	t.mu.Lock()
	conns := make([]*trackedConn, 0, len(t.conns))
	for c := range t.conns {
		conns = append(conns, c)
	}
	t.mu.Unlock()

	for _, c := range conns {
		_ = c.Close()
	}
}

type trackedConn struct {
	net.Conn
	tracker *connTracker
	once    sync.Once
}

func (c *trackedConn) Close() error {
	c.once.Do(func() { c.tracker.remove(c) })
	return c.Conn.Close()
}
