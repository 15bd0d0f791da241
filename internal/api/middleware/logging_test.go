package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/minimalhub/go-postgres-api/internal/api/middleware"
)

func loggedRequest(t *testing.T, status int, body string) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)

	r := chi.NewRouter()
	r.Use(middleware.CorrelationID)
	r.Use(middleware.RequestLogger(zap.New(core)))
	r.Get("/hello", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello?x=1", nil))
	return logs
}

func TestRequestLogger_OneLinePerRequest(t *testing.T) {
	logs := loggedRequest(t, http.StatusOK, "hi")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["route"] != "/hello" {
		t.Errorf("expected route /hello, got %v", fields["route"])
	}
	if fields["path"] != "/hello" {
		t.Errorf("expected path /hello, got %v", fields["path"])
	}
	if fields["status"] != int64(http.StatusOK) {
		t.Errorf("expected status 200, got %v", fields["status"])
	}
	if fields["bytes"] != int64(len("hi")) {
		t.Errorf("expected bytes 2, got %v", fields["bytes"])
	}
	if fields["correlation_id"] == "" {
		t.Error("expected a correlation ID field")
	}
}

// TestRequestLogger_ServerErrorLevel verifies 5xx responses are logged at
// error level so they surface in aggregated output.
func TestRequestLogger_ServerErrorLevel(t *testing.T) {
	logs := loggedRequest(t, http.StatusInternalServerError, "boom")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(entries))
	}
	if entries[0].Level != zap.ErrorLevel {
		t.Errorf("expected error level, got %s", entries[0].Level)
	}
}

func TestRequestLogger_ClientErrorStaysInfo(t *testing.T) {
	logs := loggedRequest(t, http.StatusNotFound, "")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(entries))
	}
	if entries[0].Level != zap.InfoLevel {
		t.Errorf("expected info level for 4xx, got %s", entries[0].Level)
	}
}
