package main

import (
	"BoxScoreApi/internal/assert"
	"BoxScoreApi/internal/jsonlog"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimit(t *testing.T) {
	var cfg config
	cfg.limiter.enabled = true
	cfg.limiter.rps = 0.001
	cfg.limiter.burst = 2

	app := &application{
		logger: jsonlog.New(io.Discard, jsonlog.LevelOff),
		config: cfg,
	}

	handler := app.rateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// The bucket starts full at burst capacity and refills far too slowly
	// to matter within the test.
	for i := 0; i < cfg.limiter.burst; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/games", nil))
		assert.Equal(t, rr.Code, http.StatusOK)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/games", nil))
	assert.Equal(t, rr.Code, http.StatusTooManyRequests)
	assert.StringContains(t, rr.Body.String(), "rate limit exceeded")
}

func TestRateLimitDisabled(t *testing.T) {
	var cfg config
	cfg.limiter.enabled = false
	cfg.limiter.rps = 0.001
	cfg.limiter.burst = 1

	app := &application{
		logger: jsonlog.New(io.Discard, jsonlog.LevelOff),
		config: cfg,
	}

	handler := app.rateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 10; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/games", nil))
		assert.Equal(t, rr.Code, http.StatusOK)
	}
}
