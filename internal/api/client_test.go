package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickgao/tinvest-instruments/internal/config"
	"github.com/rickgao/tinvest-instruments/internal/model"
	"github.com/rickgao/tinvest-instruments/internal/version"
)

const testToken = "t.Zk9mQ2x4bWVzc2FnZS10b2tlbi1mb3ItdGVzdGluZy1vbmx5"

// stubServer records every request and answers through handle.
type stubServer struct {
	*httptest.Server

	hits atomic.Int64

	mu     sync.Mutex
	bodies []map[string]any
	ops    []string
}

func newStub(t *testing.T, handle func(w http.ResponseWriter, r *http.Request, op string, body map[string]any)) *stubServer {
	t.Helper()
	s := &stubServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)

		op := strings.TrimPrefix(r.URL.Path, "/rest"+ServicePath)
		var body map[string]any
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)

		s.mu.Lock()
		s.ops = append(s.ops, op)
		s.bodies = append(s.bodies, body)
		s.mu.Unlock()

		handle(w, r, op, body)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *stubServer) baseURL() string {
	return s.Server.URL + "/rest"
}

func (s *stubServer) lastBody() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.bodies) == 0 {
		return nil
	}
	return s.bodies[len(s.bodies)-1]
}

func (s *stubServer) lastOp() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ops) == 0 {
		return ""
	}
	return s.ops[len(s.ops)-1]
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func newTestClient(t *testing.T, baseURL string, opts ...ClientOption) *Client {
	t.Helper()
	opts = append([]ClientOption{WithLogger(slog.New(slog.DiscardHandler))}, opts...)
	c, err := NewClient(testToken, baseURL, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

const bondBody = `{
  "instrument": {
    "figi": "BBG00T22WKV5",
    "ticker": "SU26238RMFS4",
    "classCode": "TQOB",
    "uid": "e6123145-9665-43e0-8413-cd61b8aa9b13",
    "lot": 1,
    "currency": "rub",
    "name": "OFZ 26238",
    "nominal": {"currency": "rub", "units": "1000", "nano": 0},
    "minPriceIncrement": {"units": "0", "nano": 1000000},
    "couponQuantityPerYear": 2,
    "maturityDate": "2041-05-15T00:00:00Z",
    "issueSize": "350000000",
    "floatingCouponFlag": false,
    "apiTradeAvailableFlag": true
  }
}`

func TestNewClient(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c := newTestClient(t, "https://sandbox-invest-public-api.tbank.ru/rest/")
		assert.Equal(t, "https://sandbox-invest-public-api.tbank.ru/rest", c.session.baseURL)
		assert.Equal(t, config.DefaultTimeout, c.session.timeout)
		assert.Equal(t, config.DefaultConcurrency, c.concurrency)
		assert.Equal(t, CloseWait, c.session.policy)
		assert.NotNil(t, c.session.transport)
	})

	t.Run("options", func(t *testing.T) {
		hc := &http.Client{}
		c := newTestClient(t, ProductionURL,
			WithTimeout(5*time.Second),
			WithClosePolicy(CloseAbandon),
			WithCloseTimeout(time.Second),
			WithAppName(" my-app "),
			WithConcurrency(3),
			WithHTTPClient(hc),
		)
		assert.Equal(t, 5*time.Second, c.session.timeout)
		assert.Equal(t, CloseAbandon, c.session.policy)
		assert.Equal(t, time.Second, c.session.closeTimeout)
		assert.Equal(t, "my-app", c.session.appName)
		assert.Equal(t, 3, c.concurrency)
		assert.Same(t, hc, c.session.httpClient)
		assert.Nil(t, c.session.transport)
		assert.Equal(t, 0, c.session.OpenConns())
	})

	tests := []struct {
		name     string
		token    string
		baseURL  string
		opts     []ClientOption
		wantKind Kind
	}{
		{name: "empty token", token: "", baseURL: ProductionURL, wantKind: KindInvalidCredential},
		{name: "token with spaces", token: "t.abc def", baseURL: ProductionURL, wantKind: KindInvalidCredential},
		{name: "empty base url", token: testToken, baseURL: "", wantKind: KindInvalidArgument},
		{name: "relative base url", token: testToken, baseURL: "invest-public-api.tbank.ru/rest", wantKind: KindInvalidArgument},
		{name: "non-http base url", token: testToken, baseURL: "ftp://invest-public-api.tbank.ru", wantKind: KindInvalidArgument},
		{name: "zero timeout", token: testToken, baseURL: ProductionURL, opts: []ClientOption{WithTimeout(0)}, wantKind: KindInvalidArgument},
		{name: "zero concurrency", token: testToken, baseURL: ProductionURL, opts: []ClientOption{WithConcurrency(0)}, wantKind: KindInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]ClientOption{WithLogger(slog.New(slog.DiscardHandler))}, tt.opts...)
			c, err := NewClient(tt.token, tt.baseURL, opts...)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestNewClientFromConfig(t *testing.T) {
	t.Run("sandbox defaults", func(t *testing.T) {
		c, err := NewClientFromConfig(config.APIConfig{Token: testToken, Sandbox: true},
			WithLogger(slog.New(slog.DiscardHandler)))
		require.NoError(t, err)
		defer c.Close()

		assert.Equal(t, SandboxURL, c.session.baseURL)
		assert.Equal(t, config.DefaultConcurrency, c.concurrency)
		assert.Equal(t, CloseWait, c.session.policy)
	})

	t.Run("explicit settings", func(t *testing.T) {
		cfg := config.APIConfig{
			Token:        testToken,
			BaseURL:      "http://localhost:9999/rest",
			Timeout:      2 * time.Second,
			Concurrency:  4,
			ClosePolicy:  config.ClosePolicyAbandon,
			CloseTimeout: time.Second,
			AppName:      "apitest",
		}
		c, err := NewClientFromConfig(cfg, WithLogger(slog.New(slog.DiscardHandler)))
		require.NoError(t, err)
		defer c.Close()

		assert.Equal(t, "http://localhost:9999/rest", c.session.baseURL)
		assert.Equal(t, 2*time.Second, c.session.timeout)
		assert.Equal(t, 4, c.concurrency)
		assert.Equal(t, CloseAbandon, c.session.policy)
		assert.Equal(t, "apitest", c.session.appName)
	})

	t.Run("unknown close policy", func(t *testing.T) {
		_, err := NewClientFromConfig(config.APIConfig{Token: testToken, ClosePolicy: "drop"})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestRequestHeaders(t *testing.T) {
	seen := make(chan *http.Request, 1)
	srv := newStub(t, func(w http.ResponseWriter, r *http.Request, op string, body map[string]any) {
		seen <- r.Clone(context.Background())
		writeJSON(w, http.StatusOK, `{"countries": []}`)
	})

	c := newTestClient(t, srv.baseURL(), WithAppName("instruments-test"))
	_, err := c.GetCountries(context.Background())
	require.NoError(t, err)

	r := <-seen
	got := r.Header
	assert.Equal(t, http.MethodPost, r.Method)
	assert.Equal(t, "/rest/tinkoff.public.invest.api.contract.v1.InstrumentsService/GetCountries", r.URL.Path)
	assert.Equal(t, "Bearer "+testToken, got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, version.UserAgent(), got.Get("User-Agent"))
	assert.Equal(t, "instruments-test", got.Get("x-app-name"))

	_, err = uuid.Parse(got.Get("X-Request-Id"))
	assert.NoError(t, err, "X-Request-Id must be a UUID")
}

func TestBondBy(t *testing.T) {
	srv := newStub(t, func(w http.ResponseWriter, r *http.Request, op string, body map[string]any) {
		writeJSON(w, http.StatusOK, bondBody)
	})
	c := newTestClient(t, srv.baseURL())

	t.Run("typed", func(t *testing.T) {
		resp, err := c.BondBy(context.Background(), model.FIGI("BBG00T22WKV5"))
		require.NoError(t, err)

		bond := resp.Instrument
		assert.Equal(t, "SU26238RMFS4", bond.Ticker)
		assert.Equal(t, "TQOB", bond.ClassCode)
		assert.Equal(t, int32(1), bond.Lot)
		assert.Equal(t, "1000 rub", bond.Nominal.String())
		assert.Equal(t, "0.001", bond.MinPriceIncrement.Decimal().String())
		assert.Equal(t, model.Int64(350000000), bond.IssueSize)
		assert.True(t, bond.MaturityDate.Equal(time.Date(2041, 5, 15, 0, 0, 0, 0, time.UTC)))
		assert.True(t, bond.APITradeAvailableFlag)

		assert.Equal(t, "BondBy", srv.lastOp())
		assert.Equal(t, map[string]any{
			"idType": "INSTRUMENT_ID_TYPE_FIGI",
			"id":     "BBG00T22WKV5",
		}, srv.lastBody())
	})

	t.Run("by name", func(t *testing.T) {
		v, err := c.Call(context.Background(), "BondBy", Args{"id": model.FIGI("BBG004730N88")})
		require.NoError(t, err)

		resp, ok := v.(*BondResponse)
		require.True(t, ok, "got %T", v)
		assert.Equal(t, "OFZ 26238", resp.Instrument.Name)
	})

	t.Run("ticker sends class code", func(t *testing.T) {
		_, err := c.BondBy(context.Background(), model.Ticker("SU26238RMFS4", "TQOB"))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"idType":    "INSTRUMENT_ID_TYPE_TICKER",
			"classCode": "TQOB",
			"id":        "SU26238RMFS4",
		}, srv.lastBody())
	})
}

func TestTimeoutLeavesSessionUsable(t *testing.T) {
	var calls atomic.Int64
	srv := newStub(t, func(w http.ResponseWriter, r *http.Request, op string, body map[string]any) {
		if calls.Add(1) == 1 {
			select {
			case <-r.Context().Done():
				return
			case <-time.After(2 * time.Second):
			}
		}
		writeJSON(w, http.StatusOK, `{"countries": [{"alfaTwo": "RU", "name": "Russia"}]}`)
	})
	c := newTestClient(t, srv.baseURL(), WithTimeout(100*time.Millisecond))

	start := time.Now()
	_, err := c.GetCountries(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), time.Second)

	resp, err := c.GetCountries(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Countries, 1)
	assert.Equal(t, "RU", resp.Countries[0].AlfaTwo)
}

func TestCallerCancellation(t *testing.T) {
	srv := newStub(t, func(w http.ResponseWriter, r *http.Request, op string, body map[string]any) {
		<-r.Context().Done()
	})
	c := newTestClient(t, srv.baseURL())

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	_, err := c.GetCountries(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.False(t, apiErr.IsRetryable())
}

func TestCallerDeadlineIsTimeout(t *testing.T) {
	srv := newStub(t, func(w http.ResponseWriter, r *http.Request, op string, body map[string]any) {
		<-r.Context().Done()
	})
	c := newTestClient(t, srv.baseURL())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.GetCountries(ctx)
	assert.ErrorIs(t, err, ErrTimeout)
}

// blockingServer holds every request until release is closed or the client
// goes away.
func blockingServer(t *testing.T) (srv *stubServer, started chan struct{}, release chan struct{}) {
	started = make(chan struct{}, 16)
	release = make(chan struct{})
	srv = newStub(t, func(w http.ResponseWriter, r *http.Request, op string, body map[string]any) {
		started <- struct{}{}
		select {
		case <-release:
			writeJSON(w, http.StatusOK, `{"countries": []}`)
		case <-r.Context().Done():
		}
	})
	return srv, started, release
}

func startCalls(t *testing.T, c *Client, n int, started chan struct{}) <-chan error {
	t.Helper()
	errs := make(chan error, n)
	for range n {
		go func() {
			_, err := c.GetCountries(context.Background())
			errs <- err
		}()
	}
	for range n {
		select {
		case <-started:
		case <-time.After(2 * time.Second):
			t.Fatal("requests did not reach the server")
		}
	}
	return errs
}

func TestCloseWithInFlightRequests(t *testing.T) {
	const inflight = 3

	t.Run("abandon", func(t *testing.T) {
		srv, started, release := blockingServer(t)
		defer close(release)
		c := newTestClient(t, srv.baseURL(), WithClosePolicy(CloseAbandon))

		errs := startCalls(t, c, inflight, started)
		require.Positive(t, c.Session().OpenConns())

		start := time.Now()
		require.NoError(t, c.Close())
		assert.Less(t, time.Since(start), time.Second)

		for range inflight {
			err := <-errs
			assert.ErrorIs(t, err, ErrTransport)
			assert.ErrorIs(t, err, ErrSessionAbandoned)
		}
		assert.Equal(t, 0, c.Session().OpenConns())
	})

	t.Run("wait then abandon", func(t *testing.T) {
		srv, started, release := blockingServer(t)
		defer close(release)
		c := newTestClient(t, srv.baseURL(), WithCloseTimeout(100*time.Millisecond))

		errs := startCalls(t, c, inflight, started)

		err := c.Close()
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		for range inflight {
			assert.ErrorIs(t, <-errs, ErrSessionAbandoned)
		}
		assert.Equal(t, 0, c.Session().OpenConns())
	})

	t.Run("wait completes", func(t *testing.T) {
		srv, started, release := blockingServer(t)
		c := newTestClient(t, srv.baseURL(), WithCloseTimeout(5*time.Second))

		errs := startCalls(t, c, inflight, started)

		closed := make(chan error, 1)
		go func() { closed <- c.Close() }()

		select {
		case <-closed:
			t.Fatal("Close returned while requests were in flight")
		case <-time.After(100 * time.Millisecond):
		}

		close(release)
		require.NoError(t, <-closed)
		for range inflight {
			assert.NoError(t, <-errs)
		}
		assert.Equal(t, 0, c.Session().OpenConns())
	})
}

func TestCallAfterClose(t *testing.T) {
	srv := newStub(t, func(w http.ResponseWriter, r *http.Request, op string, body map[string]any) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	c := newTestClient(t, srv.baseURL())

	require.NoError(t, c.Close())
	require.NoError(t, c.Close(), "Close must be idempotent")
	assert.True(t, c.Session().Closed())

	_, err := c.GetCountries(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.Zero(t, srv.hits.Load())
}
