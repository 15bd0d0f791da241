package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit enforces a single token bucket across the whole API.
// Burst is set equal to the rate so no extra burst capacity is allowed
// beyond the configured per-second maximum. Requests that arrive with an
// empty bucket are rejected immediately with 429 rather than queued.
//
// Health probes and the Prometheus scrape endpoint are exempt so
// orchestration traffic cannot be starved by client load.
// onLimited is invoked for every rejected request; nil disables the hook.
func RateLimit(ratePerSec int, onLimited func()) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if exemptFromLimit(r.URL.Path) || limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}
			if onLimited != nil {
				onLimited()
			}
			respondError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
		})
	}
}

func exemptFromLimit(path string) bool {
	switch path {
	case "/health", "/health/ready", "/metrics":
		return true
	}
	return false
}
