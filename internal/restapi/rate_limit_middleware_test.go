package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddlewareAllowsWithinLimit(t *testing.T) {
	handler := NewRateLimitMiddleware(5, time.Second)(okHandler())

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/api/gdp/countries.json?key=TEST", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimitMiddlewareBlocksOverLimit(t *testing.T) {
	handler := NewRateLimitMiddleware(2, time.Second)(okHandler())

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/gdp/countries.json?key=TEST", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Equal(t, http.StatusOK, statuses[1])
	assert.Equal(t, http.StatusTooManyRequests, statuses[2])
}

func TestRateLimitMiddlewareTracksKeysSeparately(t *testing.T) {
	handler := NewRateLimitMiddleware(1, time.Second)(okHandler())

	first := httptest.NewRequest("GET", "/api/gdp/countries.json?key=ONE", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	assert.Equal(t, http.StatusOK, rec.Code)

	// A different key gets its own limiter.
	second := httptest.NewRequest("GET", "/api/gdp/countries.json?key=TWO", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The first key is now exhausted.
	third := httptest.NewRequest("GET", "/api/gdp/countries.json?key=ONE", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, third)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimitMiddlewareDisabledWhenZero(t *testing.T) {
	handler := NewRateLimitMiddleware(0, time.Second)(okHandler())

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest("GET", "/api/gdp/countries.json?key=TEST", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimitExceededResponseHeaders(t *testing.T) {
	handler := NewRateLimitMiddleware(1, time.Second)(okHandler())

	req := httptest.NewRequest("GET", "/api/gdp/countries.json?key=TEST", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Contains(t, rec.Body.String(), "Rate limit exceeded")
}
