// Package http holds the dashboard's HTTP middleware, operational
// endpoints and request metrics. Screens live in the screen subpackage.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"portfolio-dashboard/internal/handler/http/respond"
)

// Pinger is anything that can confirm a dependency answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessReporter exposes the last result of the background probe.
type ReadinessReporter interface {
	Ready() bool
	LastError() error
	CheckedAt() time.Time
}

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"` // healthy, degraded or unhealthy
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler pings the content API and the cache on every call.
// An open circuit breaker reports degraded without failing the check.
type HealthHandler struct {
	API         Pinger
	Cache       Pinger
	BreakerOpen func() bool
	Version     string
	Timeout     time.Duration
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	checks := map[string]CheckStatus{
		"content_api": pingCheck(ctx, h.API),
		"cache":       pingCheck(ctx, h.Cache),
	}
	if h.BreakerOpen != nil {
		cb := CheckStatus{Status: "healthy", Details: map[string]any{"state": "closed"}}
		if h.BreakerOpen() {
			cb = CheckStatus{Status: "degraded", Message: "upstream calls are being rejected", Details: map[string]any{"state": "open"}}
		}
		checks["circuit_breaker"] = cb
	}

	status, code := "healthy", http.StatusOK
	for _, c := range checks {
		if c.Status == "unhealthy" {
			status, code = "unhealthy", http.StatusServiceUnavailable
			break
		}
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func pingCheck(ctx context.Context, p Pinger) CheckStatus {
	if p == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		slog.WarnContext(ctx, "health check failed", slog.String("error", respond.SanitizeError(err)))
		return CheckStatus{Status: "unhealthy", Message: respond.SanitizeError(err)}
	}
	return CheckStatus{
		Status:  "healthy",
		Details: map[string]any{"latency_ms": time.Since(start).Milliseconds()},
	}
}

// ReadyHandler answers from the background probe's last result so that
// readiness polling never reaches the content API directly.
type ReadyHandler struct {
	Probe ReadinessReporter
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	if h.Probe == nil {
		http.Error(w, "probe not configured", http.StatusServiceUnavailable)
		return
	}
	if !h.Probe.Ready() {
		msg := "not ready"
		if err := h.Probe.LastError(); err != nil {
			msg += ": " + respond.SanitizeError(err)
		}
		http.Error(w, msg, http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// LiveHandler always answers 200 while the process serves requests.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}
