package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/minimalhub/go-postgres-api/internal/api/handler"
	apimw "github.com/minimalhub/go-postgres-api/internal/api/middleware"
	"github.com/minimalhub/go-postgres-api/internal/config"
	"github.com/minimalhub/go-postgres-api/internal/metrics"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(
	cfg *config.Config,
	db handler.Pinger,
	m *metrics.Metrics,
	reg prometheus.Gatherer,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)                         // recover panics, return 500
	r.Use(chimw.RealIP)                            // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.RequestSize(1 << 20))              // 1 MB max request body
	r.Use(apimw.TrustedHost(cfg.AllowedHosts))     // guard against Host header attacks
	r.Use(apimw.CORS(cfg.CORSOrigins))
	r.Use(apimw.CorrelationID)                     // X-Correlation-ID inject / echo
	r.Use(apimw.RequestLogger(logger))
	r.Use(apimw.RateLimit(cfg.RateLimit, m.RequestsLimited.Inc))
	r.Use(apimw.RecordMetrics(m))

	// --- handler instances ---
	gh := handler.NewHelloHandler()
	hh := handler.NewHealthHandler(db)

	// --- routes ---
	r.Get("/hello", gh.Hello)
	r.Get("/health", hh.Health)
	r.Get("/health/ready", hh.Ready)

	// Raw Prometheus scrape endpoint (for Prometheus server / Grafana)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}
