package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nesaranaeem/qr-box/pkg/httpserver"
)

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	decode := func(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
		t.Helper()
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body
	}

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		httpserver.HealthCheckHandler(nil)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, "alive", decode(t, rec)["status"])
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		ok := httpserver.Check{Name: "store", Fn: func(context.Context) error { return nil }}
		rec := httptest.NewRecorder()
		httpserver.HealthCheckHandler(nil, ok)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "ready", body["status"])
		assert.Equal(t, map[string]any{"store": "ok"}, body["checks"])
	})

	t.Run("not ready", func(t *testing.T) {
		t.Parallel()
		ok := httpserver.Check{Name: "store", Fn: func(context.Context) error { return nil }}
		bad := httpserver.Check{Name: "locales", Fn: func(context.Context) error { return errors.New("missing") }}
		rec := httptest.NewRecorder()
		httpserver.HealthCheckHandler(nil, ok, bad)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "not_ready", body["status"])
		assert.Equal(t, map[string]any{"store": "ok", "locales": "failed"}, body["checks"])
	})

	t.Run("uses request context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		check := httpserver.Check{Name: "ctx", Fn: func(ctx context.Context) error { return ctx.Err() }}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil).WithContext(ctx)
		httpserver.HealthCheckHandler(nil, check)(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	hs := &http.Server{}
	listening := make(chan struct{})
	srv := httpserver.NewFromConfig(
		httpserver.Config{Addr: loopback, ReadTimeout: 7 * time.Second},
		httpserver.WithServer(hs),
		httpserver.WithStartHook(func(*slog.Logger) { close(listening) }),
	)
	r := running{srv: srv, done: make(chan error, 1)}
	go func() { r.done <- srv.Run(context.Background(), http.NewServeMux()) }()
	<-listening

	assert.Equal(t, loopback, hs.Addr)
	assert.Equal(t, 7*time.Second, hs.ReadTimeout)
	assert.Zero(t, hs.WriteTimeout, "zero config values are not applied")
	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, r.wait(t))
}
