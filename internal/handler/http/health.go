// Package http provides the service's HTTP surface: probe handlers, the
// metrics endpoint and the cross-cutting middleware applied to every route.
package http

import (
	"log/slog"
	"net/http"
	"sync/atomic"

	"text-api/internal/handler/http/respond"
)

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// HealthHandler handles health check endpoint requests.
type HealthHandler struct{}

// ServeHTTP godoc
// @Summary      Health check
// @Description  Reports that the process is up and serving requests.
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// ReadyHandler handles Kubernetes readiness probe requests.
// It reports 503 until MarkReady is called and again after MarkNotReady, so
// load balancers stop routing traffic before the server drains.
type ReadyHandler struct {
	Version string

	ready atomic.Bool
}

// MarkReady flips the probe to 200.
func (h *ReadyHandler) MarkReady() { h.ready.Store(true) }

// MarkNotReady flips the probe to 503.
func (h *ReadyHandler) MarkNotReady() { h.ready.Store(false) }

// ServeHTTP returns "ready" with the build version header, or 503 when the
// server is starting up or shutting down.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.ready.Load() {
		http.Error(w, "not ready", http.StatusServiceUnavailable)
		return
	}

	if h.Version != "" {
		w.Header().Set("X-App-Version", h.Version)
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		slog.Default().Warn("ready: failed to write response", slog.Any("error", err))
	}
}

// LiveHandler handles Kubernetes liveness probe requests.
type LiveHandler struct{}

// ServeHTTP always returns 200 "alive" while the process can respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		slog.Default().Warn("alive: failed to write response", slog.Any("error", err))
	}
}
