package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderCorrelationID carries a request's correlation ID in and out of
// the service.
const HeaderCorrelationID = "X-Correlation-ID"

// maxCorrelationIDLen caps caller-supplied IDs so a hostile client cannot
// bloat every log line; oversized values are replaced, not truncated.
const maxCorrelationIDLen = 64

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// CorrelationID tags every request with an ID for tracing it through logs.
// A caller-supplied X-Correlation-ID is honored when it is reasonably
// sized; otherwise a fresh UUID is issued. The ID is stored on the request
// context and mirrored on the response so clients can quote it back.
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderCorrelationID)
		if id == "" || len(id) > maxCorrelationIDLen {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderCorrelationID, id)
		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), correlationIDKey, id),
		))
	})
}

// GetCorrelationID returns the ID set by CorrelationID, or an empty string
// when the middleware did not run.
func GetCorrelationID(ctx context.Context) string {
	v, _ := ctx.Value(correlationIDKey).(string)
	return v
}
