package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"galerij/config"
	"galerij/infras/otel/mocks"
	"galerij/shared/cache"
	"galerij/shared/constant"
	"galerij/transport/http/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func newMiddleware(t *testing.T, cfg *config.Config) (middleware.AppMiddleware, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	otel := mocks.NewOtel()

	return middleware.NewAppMiddleware(otel, cfg, cache.NewRedisCache(client, otel)), mr
}

func TestRequestID(t *testing.T) {
	mw, _ := newMiddleware(t, &config.Config{})

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generated"},
		{name: "kept from caller", incoming: "abc-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string

			handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/artworks", nil)
			if tt.incoming != "" {
				req.Header.Set(constant.RequestHeaderRequestID, tt.incoming)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))

			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, seen)
			}
		})
	}
}

func TestLoggingAndTracingKeepStatus(t *testing.T) {
	mw, _ := newMiddleware(t, &config.Config{})

	handler := mw.Logging(mw.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	mw, _ := newMiddleware(t, cfg)
	handler := mw.RateLimit()(okHandler())

	codes := []int{}

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/artworks", nil)
		req.RemoteAddr = "10.0.0.1:5123"

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		codes = append(codes, rec.Code)

		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodGet, "/api/artworks", nil)
	other.Header.Set(constant.RequestHeaderForwardedFor, "192.168.1.9, 10.0.0.1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitWindowIsFixed(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 10

	mw, mr := newMiddleware(t, cfg)
	handler := mw.RateLimit()(okHandler())

	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/api/artworks", nil)
		req.RemoteAddr = "10.0.0.1:5123"

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())

	// retrying while blocked must not push the window further out
	mr.FastForward(5 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, send())

	mr.FastForward(5 * time.Second)
	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

func TestRateLimitFailsOpen(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 1
	cfg.App.RateLimiter.WindowSeconds = 60

	mw, mr := newMiddleware(t, cfg)
	mr.Close()

	handler := mw.RateLimit()(okHandler())

	for range 3 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/artworks", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw, mr := newMiddleware(t, &config.Config{})

	handler := mw.RateLimit()(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/artworks", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
	assert.Empty(t, mr.Keys())
}
