package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/ozkar99/cm-telemetry/internal/metrics"
	"github.com/ozkar99/cm-telemetry/telemetry"
)

// Collector drives one game's telemetry server: it polls for events,
// records metrics and logs decode failures. The event type parameter is the
// game's event union.
type Collector[E any] struct {
	srv     *telemetry.Server[E]
	logger  *slog.Logger
	metrics *metrics.Metrics

	// readTimeout bounds each poll so shutdown is noticed promptly.
	readTimeout time.Duration

	// observe is an optional per-game hook run on every decoded event,
	// used to feed game-specific gauges.
	observe func(E)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCollector creates a collector around an already-bound telemetry server.
// observe may be nil.
func NewCollector[E any](srv *telemetry.Server[E], logger *slog.Logger, m *metrics.Metrics,
	readTimeout time.Duration, observe func(E)) *Collector[E] {

	ctx, cancel := context.WithCancel(context.Background())

	return &Collector[E]{
		srv:         srv,
		logger:      logger,
		metrics:     m,
		readTimeout: readTimeout,
		observe:     observe,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start begins receiving telemetry in a background goroutine.
func (c *Collector[E]) Start() {
	c.logger.Info("Telemetry collector started",
		slog.String("address", c.srv.LocalAddr().String()),
		slog.Duration("read_timeout", c.readTimeout),
	)

	c.wg.Add(1)
	go c.receiveLoop()
}

// Stop closes the socket and waits for the receive loop to finish.
func (c *Collector[E]) Stop() error {
	c.logger.Info("Stopping telemetry collector...")

	c.cancel()
	err := c.srv.Close()
	c.wg.Wait()

	c.logger.Info("Telemetry collector stopped")
	return err
}

// receiveLoop is the main event receiving loop
func (c *Collector[E]) receiveLoop() {
	defer c.wg.Done()

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		if err := c.srv.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
			// Deadline setting fails only on a closed socket.
			return
		}

		ev, err := c.srv.Next()
		if err != nil {
			if c.handleError(err) {
				return
			}
			continue
		}

		c.metrics.RecordDatagramReceived()
		c.metrics.RecordEventDecoded(eventName(ev))
		if c.observe != nil {
			c.observe(ev)
		}

		c.logger.Debug("Event decoded", slog.String("event", eventName(ev)))
	}
}

// handleError sorts a Next failure into timeout, shutdown, socket error or
// decode error, and reports whether the loop should exit.
func (c *Collector[E]) handleError(err error) (stop bool) {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() {
			return false
		}
		if errors.Is(err, net.ErrClosed) {
			return true
		}

		select {
		case <-c.ctx.Done():
			return true
		default:
		}

		c.metrics.RecordReceiveError()
		c.logger.Error("Failed to receive datagram", slog.String("error", err.Error()))
		return false
	}

	// Anything else is a decode failure: the datagram arrived but did not
	// parse. The collector stays up; the next datagram is independent.
	c.metrics.RecordDatagramReceived()
	c.metrics.RecordDecodeError(decodeErrorReason(err))
	c.logger.Warn("Failed to decode datagram", slog.String("error", err.Error()))
	return false
}

// decodeErrorReason maps a decode error to a bounded metric label.
func decodeErrorReason(err error) string {
	var unknownID *telemetry.UnknownPacketIDError
	var version *telemetry.UnsupportedVersionError

	switch {
	case errors.Is(err, telemetry.ErrTruncatedHeader):
		return "truncated_header"
	case errors.Is(err, telemetry.ErrTruncatedPayload):
		return "truncated_payload"
	case errors.As(err, &unknownID):
		return "unknown_packet_id"
	case errors.As(err, &version):
		return "format_mismatch"
	default:
		return "malformed"
	}
}

// eventName derives the metric label for an event from its concrete type,
// e.g. *f12020.CarTelemetry becomes "CarTelemetry".
func eventName(ev any) string {
	name := strings.TrimPrefix(fmt.Sprintf("%T", ev), "*")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
