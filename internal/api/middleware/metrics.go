package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/minimalhub/go-postgres-api/internal/metrics"
)

// RecordMetrics observes every completed request on the shared instruments.
// The route label uses chi's route pattern (e.g. "/hello") rather than the
// raw path so label cardinality stays bounded.
func RecordMetrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			m.ObserveRequest(r.Method, routePattern(r), strconv.Itoa(wrapped.status), time.Since(start))
		})
	}
}

// routePattern returns chi's matched route pattern, or "unmatched" when
// the request resolved outside the router (404s, handlers under test).
// Only valid after the inner handler has run.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		return rctx.RoutePattern()
	}
	return "unmatched"
}
