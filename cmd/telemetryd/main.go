package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ozkar99/cm-telemetry/dirt/rally2"
	"github.com/ozkar99/cm-telemetry/f1/f12020"
	"github.com/ozkar99/cm-telemetry/f1/f12022"
	"github.com/ozkar99/cm-telemetry/internal/config"
	"github.com/ozkar99/cm-telemetry/internal/metrics"
	"github.com/ozkar99/cm-telemetry/internal/server"
)

const (
	defaultConfigPath = "configs/config.yaml"
	serviceName       = "telemetryd"
	serviceVersion    = "1.0.0"
)

// collector abstracts server.Collector over the per-game event types.
type collector interface {
	Start()
	Stop() error
}

func main() {
	configPath := flag.String("config", defaultConfigPath, "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg.Logging)

	logger.Info("Service starting",
		slog.String("service", serviceName),
		slog.String("version", serviceVersion),
		slog.String("config_path", *configPath),
	)
	logger.Info("Configuration loaded",
		slog.String("game", cfg.Server.Game),
		slog.String("udp_address", cfg.Server.ListenAddress()),
		slog.Bool("metrics_enabled", cfg.Metrics.Enabled),
		slog.String("log_level", cfg.Logging.Level),
	)

	appMetrics := metrics.NewMetrics()

	coll, err := newCollector(cfg, logger, appMetrics)
	if err != nil {
		logger.Error("Failed to bind telemetry server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var httpServer *server.HTTPServer
	if cfg.Metrics.Enabled {
		httpServer = server.NewHTTPServer(cfg.Metrics, logger, cfg.Server.Game)
		if err := httpServer.Start(); err != nil {
			logger.Error("Failed to start monitoring HTTP server", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	coll.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("Service started successfully, waiting for signals...")

	sig := <-sigChan
	logger.Info("Received shutdown signal", slog.String("signal", sig.String()))

	logger.Info("Starting graceful shutdown...")

	if httpServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Stop(shutdownCtx); err != nil {
			logger.Error("Error stopping monitoring HTTP server", slog.String("error", err.Error()))
		}
	}

	if err := coll.Stop(); err != nil {
		logger.Error("Error stopping telemetry collector", slog.String("error", err.Error()))
	}

	logger.Info("Service stopped")
}

// newCollector binds the UDP socket and wires the game-specific protocol
// chosen by the configuration.
func newCollector(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (collector, error) {
	addr := cfg.Server.ListenAddress()
	timeout := cfg.Server.GetReadTimeoutDuration()

	switch cfg.Server.Game {
	case config.GameF12020:
		srv, err := f12020.Listen(addr)
		if err != nil {
			return nil, err
		}
		observe := func(ev f12020.Event) {
			if s, ok := ev.(*f12020.Session); ok {
				m.RecordHeader(s.Header.SessionTime, s.Header.FrameIdentifier)
			}
		}
		return server.NewCollector(srv, logger, m, timeout, observe), nil

	case config.GameF12022:
		srv, err := f12022.Listen(addr)
		if err != nil {
			return nil, err
		}
		observe := func(ev f12022.Event) {
			if s, ok := ev.(*f12022.Session); ok {
				m.RecordHeader(s.Header.SessionTime, s.Header.FrameIdentifier)
			}
		}
		return server.NewCollector(srv, logger, m, timeout, observe), nil

	case config.GameDirtRally2:
		srv, err := rally2.Listen(addr)
		if err != nil {
			return nil, err
		}
		observe := func(t *rally2.Telemetry) {
			m.SessionTime.Set(float64(t.TotalTime))
		}
		return server.NewCollector(srv, logger, m, timeout, observe), nil

	default:
		return nil, fmt.Errorf("unsupported game %q", cfg.Server.Game)
	}
}

// initLogger creates and configures the structured logger based on configuration
func initLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var output *os.File
	switch cfg.Output {
	case "stderr":
		output = os.Stderr
	case "stdout", "":
		output = os.Stdout
	default:
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v, falling back to stdout\n", cfg.Output, err)
			output = os.Stdout
		} else {
			output = file
		}
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}
