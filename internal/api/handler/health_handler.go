package handler

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 5 * time.Second

// Pinger is the slice of the database pool the readiness probe needs.
// *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probe endpoints.
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health
//
// Liveness: confirms the process is running. Performs no I/O so the
// response is byte-stable under any backend condition.
//
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /health/ready
//
// Readiness: confirms the app can serve traffic by pinging Postgres with
// a bounded timeout.
//
// @Summary  Readiness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]string
// @Failure  503  {object}  map[string]string
// @Router   /health/ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  "database not reachable",
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
