package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	components map[string]Pinger
	version    string
}

// NewHealthHandler creates a HealthHandler. The database is always checked;
// extra components (cache) are added with WithComponent.
func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{
		components: map[string]Pinger{"database": db},
		version:    version,
	}
}

// WithComponent registers an additional named dependency.
func (h *HealthHandler) WithComponent(name string, p Pinger) *HealthHandler {
	h.components[name] = p
	return h
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
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 if every component answers, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.check(r.Context())

	status, body := http.StatusOK, "ok"
	if !ok {
		status, body = http.StatusServiceUnavailable, "down"
	}
	writeJSON(w, status, HealthResponse{
		Status:    body,
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())

	status, overall := http.StatusOK, "ok"
	if !ok {
		status, overall = http.StatusServiceUnavailable, "down"
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.components))
	for name := range h.components {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]CompStatus, len(names))
	ok := true
	for _, name := range names {
		start := time.Now()
		if err := h.components[name].Ping(ctx); err != nil {
			out[name] = CompStatus{Status: "down"}
			ok = false
			continue
		}
		out[name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return out, ok
}
