package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"socialgraph/pkg/errors"
)

// SlidingWindowLimiter allows at most limit requests per key within any window
type SlidingWindowLimiter struct {
	mu         sync.Mutex
	windows    map[string][]time.Time
	limit      int
	windowSize time.Duration
	lastSweep  time.Time
	now        func() time.Time
}

// NewSlidingWindowLimiter creates a new sliding window rate limiter
func NewSlidingWindowLimiter(limit int, windowSize time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		windows:    make(map[string][]time.Time),
		limit:      limit,
		windowSize: windowSize,
		now:        time.Now,
	}
}

// Allow records a request for key and reports whether it fits in the window
func (l *SlidingWindowLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	windowStart := now.Add(-l.windowSize)

	// Drop requests that fell out of the window
	requests := l.windows[key]
	kept := requests[:0]
	for _, at := range requests {
		if at.After(windowStart) {
			kept = append(kept, at)
		}
	}

	if len(kept) >= l.limit {
		l.windows[key] = kept
		return false
	}

	l.windows[key] = append(kept, now)
	if now.Sub(l.lastSweep) >= l.windowSize {
		l.evictIdle(windowStart)
		l.lastSweep = now
	}
	return true
}

// evictIdle drops keys whose newest request is outside the window.
// It runs at most once per window; callers hold l.mu.
func (l *SlidingWindowLimiter) evictIdle(windowStart time.Time) {
	for key, requests := range l.windows {
		if len(requests) == 0 || !requests[len(requests)-1].After(windowStart) {
			delete(l.windows, key)
		}
	}
}

// tracked reports how many keys currently hold requests
func (l *SlidingWindowLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// RateLimit rejects requests from a client IP once it exceeds requestsPerMinute.
// A non-positive limit disables limiting.
func RateLimit(requestsPerMinute int, errorHandler *errors.ErrorHandler) func(next http.Handler) http.Handler {
	if requestsPerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := NewSlidingWindowLimiter(requestsPerMinute, time.Minute)
	return rateLimit(limiter, errorHandler)
}

func rateLimit(limiter *SlidingWindowLimiter, errorHandler *errors.ErrorHandler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow("ip:" + clientIP(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(int(limiter.windowSize.Seconds())))
				errorHandler.HandleStatus(w, r, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port; RealIP has already replaced RemoteAddr when proxied
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
