package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"socialgraph/pkg/errors"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSlidingWindowLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewSlidingWindowLimiter(2, time.Minute)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"), "keys are limited independently")

	now = now.Add(61 * time.Second)
	assert.True(t, limiter.Allow("a"))
}

func TestSlidingWindowLimiter_EvictsIdleKeys(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewSlidingWindowLimiter(5, time.Minute)
	limiter.now = func() time.Time { return now }

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		assert.True(t, limiter.Allow(ip))
	}
	assert.Equal(t, 3, limiter.tracked())

	now = now.Add(2 * time.Minute)
	assert.True(t, limiter.Allow("10.0.0.4"))
	assert.Equal(t, 1, limiter.tracked())
}

func TestRateLimit(t *testing.T) {
	errorHandler := errors.NewErrorHandler(zap.NewNop(), nil, false)
	handler := RateLimit(1, errorHandler)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	send := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/people", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusCreated, send("10.0.0.1:1234").Code)

	limited := send("10.0.0.1:5678")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "60", limited.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusCreated, send("10.0.0.2:1234").Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	errorHandler := errors.NewErrorHandler(zap.NewNop(), nil, false)
	handler := RateLimit(0, errorHandler)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
