package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to a health component.
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type component struct {
	name     string
	pinger   pinger
	optional bool
}

// HealthHandler serves the probes. The database is required; optional
// components such as the curriculum cache only degrade the report, because
// reads fall back to PostgreSQL when they fail.
type HealthHandler struct {
	components []component
	version    string
}

// NewHealthHandler creates a HealthHandler that checks the database.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		components: []component{{name: "database", pinger: db}},
		version:    version,
	}
}

// WithOptional registers a component whose outage leaves the service ready.
func (h *HealthHandler) WithOptional(name string, p pinger) *HealthHandler {
	h.components = append(h.components, component{name: name, pinger: p, optional: true})
	return h
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one component.
type CompStatus struct {
	Status   string `json:"status"`
	Optional bool   `json:"optional,omitempty"`
	Latency  string `json:"latency,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 only when a required component is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	overall, _ := h.probe(r.Context())
	writeJSON(w, statusCode(overall), HealthResponse{Status: overall, Timestamp: time.Now()})
}

// Health reports every component with its latency, plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	overall, components := h.probe(r.Context())
	writeJSON(w, statusCode(overall), HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// probe pings all components concurrently. The overall status is "down" if a
// required component failed, "degraded" if only optional ones did.
func (h *HealthHandler) probe(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var mu sync.Mutex
	components := make(map[string]CompStatus, len(h.components))
	overall := "ok"

	var g errgroup.Group
	for _, c := range h.components {
		g.Go(func() error {
			start := time.Now()
			err := c.pinger.Ping(ctx)
			status := CompStatus{Status: "ok", Optional: c.optional, Latency: time.Since(start).String()}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				status = CompStatus{Status: "down", Optional: c.optional}
				switch {
				case !c.optional:
					overall = "down"
				case overall == "ok":
					overall = "degraded"
				}
			}
			components[c.name] = status
			return nil
		})
	}
	_ = g.Wait()

	return overall, components
}

func statusCode(overall string) int {
	if overall == "down" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
