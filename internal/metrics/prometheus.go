// Package metrics defines the Prometheus instrumentation of the telemetry
// collector daemon.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the telemetry collector
type Metrics struct {
	// UDP datagram metrics
	DatagramsReceived prometheus.Counter
	EventsDecoded     *prometheus.CounterVec
	DecodeErrors      *prometheus.CounterVec
	ReceiveErrors     prometheus.Counter

	// Session metrics, fed from packet headers
	SessionTime     prometheus.Gauge
	FrameIdentifier prometheus.Gauge
}

// NewMetrics creates and registers all Prometheus metrics on the default
// registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates all metrics against reg, which tests use to avoid
// double registration on the default registry.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DatagramsReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: "telemetry_datagrams_received_total",
			Help: "Total number of UDP datagrams received",
		}),
		EventsDecoded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "telemetry_events_decoded_total",
			Help: "Total number of successfully decoded telemetry events",
		}, []string{"event"}),
		DecodeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "telemetry_decode_errors_total",
			Help: "Total number of datagrams that failed to decode",
		}, []string{"reason"}),
		ReceiveErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "telemetry_receive_errors_total",
			Help: "Total number of socket-level receive errors, timeouts excluded",
		}),
		SessionTime: factory.NewGauge(prometheus.GaugeOpts{
			Name: "telemetry_session_time_seconds",
			Help: "Session timestamp of the most recent packet header",
		}),
		FrameIdentifier: factory.NewGauge(prometheus.GaugeOpts{
			Name: "telemetry_frame_identifier",
			Help: "Frame identifier of the most recent packet header",
		}),
	}
}

// RecordDatagramReceived increments the datagrams received counter
func (m *Metrics) RecordDatagramReceived() {
	m.DatagramsReceived.Inc()
}

// RecordEventDecoded records a decoded event by its kind
func (m *Metrics) RecordEventDecoded(event string) {
	m.EventsDecoded.WithLabelValues(event).Inc()
}

// RecordDecodeError records a failed decode by its reason
func (m *Metrics) RecordDecodeError(reason string) {
	m.DecodeErrors.WithLabelValues(reason).Inc()
}

// RecordReceiveError increments the socket receive error counter
func (m *Metrics) RecordReceiveError() {
	m.ReceiveErrors.Inc()
}

// RecordHeader updates the session gauges from a packet header
func (m *Metrics) RecordHeader(sessionTime float32, frameIdentifier uint32) {
	m.SessionTime.Set(float64(sessionTime))
	m.FrameIdentifier.Set(float64(frameIdentifier))
}
