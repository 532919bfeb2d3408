package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ozkar99/cm-telemetry/internal/config"
)

// HTTPServer exposes the Prometheus metrics endpoint and a health check.
type HTTPServer struct {
	server *http.Server
	logger *slog.Logger
	game   string

	startTime time.Time
}

// NewHTTPServer creates the monitoring HTTP server
func NewHTTPServer(cfg config.MetricsConfig, logger *slog.Logger, game string) *HTTPServer {
	h := &HTTPServer{
		logger:    logger,
		game:      game,
		startTime: time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	h.server = &http.Server{
		Addr:         cfg.ListenAddress(),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return h
}

// Start starts the HTTP server
func (h *HTTPServer) Start() error {
	h.logger.Info("Starting monitoring HTTP server",
		slog.String("address", h.server.Addr),
	)

	go func() {
		if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			h.logger.Error("HTTP server error", slog.String("error", err.Error()))
		}
	}()

	return nil
}

// Stop gracefully stops the HTTP server
func (h *HTTPServer) Stop(ctx context.Context) error {
	h.logger.Info("Stopping monitoring HTTP server...")
	return h.server.Shutdown(ctx)
}

// handleHealth reports liveness and basic identity
func (h *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status":         "ok",
		"game":           h.game,
		"uptime_seconds": int64(time.Since(h.startTime).Seconds()),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Failed to write health response", slog.String("error", err.Error()))
	}
}
