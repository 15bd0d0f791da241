package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/minimalhub/go-postgres-api/internal/metrics"
)

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveRequest("GET", "/hello", "200", 5*time.Millisecond)
	m.ObserveRequest("GET", "/hello", "200", 7*time.Millisecond)
	m.ObserveRequest("GET", "/hello", "429", time.Millisecond)

	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/hello", "200")); got != 2 {
		t.Errorf("expected 2 successful requests counted, got %v", got)
	}
	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/hello", "429")); got != 1 {
		t.Errorf("expected 1 limited request counted, got %v", got)
	}
}

func TestRequestsLimitedCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.RequestsLimited.Inc()
	m.RequestsLimited.Inc()

	if got := testutil.ToFloat64(m.RequestsLimited); got != 2 {
		t.Errorf("expected counter at 2, got %v", got)
	}
}

// TestNew_RegistersOnce guards against duplicate registration panics when a
// second registry is used, e.g. in parallel tests.
func TestNew_RegistersOnce(t *testing.T) {
	metrics.New(prometheus.NewRegistry())
	metrics.New(prometheus.NewRegistry())
}
