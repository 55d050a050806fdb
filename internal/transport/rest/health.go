package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// poolStatter is implemented by *pgxpool.Pool.
type poolStatter interface {
	Stat() *pgxpool.Stat
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler. When db also exposes pool
// statistics they are reported by /health.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string     `json:"status"`
	Latency string     `json:"latency,omitempty"`
	Pool    *PoolStats `json:"pool,omitempty"`
}

// PoolStats is a snapshot of the connection pool.
type PoolStats struct {
	Total    int32 `json:"total"`
	Acquired int32 `json:"acquired"`
	Idle     int32 `json:"idle"`
	Max      int32 `json:"max"`
}

// Live always answers 200 while the process is up.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 until the database accepts connections.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports the database round trip and pool usage with the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	db := CompStatus{Status: "ok", Latency: latency.String()}
	if err != nil {
		db = CompStatus{Status: "down"}
	}
	if ps, ok := h.db.(poolStatter); ok {
		st := ps.Stat()
		db.Pool = &PoolStats{
			Total:    st.TotalConns(),
			Acquired: st.AcquiredConns(),
			Idle:     st.IdleConns(),
			Max:      st.MaxConns(),
		}
	}

	status := http.StatusOK
	if db.Status != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"database": db},
		Timestamp:  time.Now(),
	})
}
