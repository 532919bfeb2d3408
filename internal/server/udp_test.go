package server

import (
	"errors"
	"log/slog"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ozkar99/cm-telemetry/internal/metrics"
	"github.com/ozkar99/cm-telemetry/telemetry"
)

// stubEvent and stubProtocol stand in for a game protocol: any datagram of
// at least four bytes decodes, shorter ones fail like a truncated header.
type stubEvent struct {
	size int
}

type stubProtocol struct{}

func (stubProtocol) Decode(datagram []byte) (*stubEvent, error) {
	if len(datagram) < 4 {
		return nil, telemetry.ErrTruncatedHeader
	}
	return &stubEvent{size: len(datagram)}, nil
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestCollectorCountsEventsAndErrors(t *testing.T) {
	srv, err := telemetry.Listen("127.0.0.1:0", stubProtocol{})
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	m := metrics.NewMetricsWith(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var observed atomic.Int32
	collector := NewCollector(srv, logger, m, 100*time.Millisecond, func(ev *stubEvent) {
		observed.Add(1)
	})
	collector.Start()

	sender, err := net.DialUDP("udp", nil, srv.LocalAddr().(*net.UDPAddr))
	if err != nil {
		t.Fatalf("DialUDP() error = %v", err)
	}
	defer sender.Close()

	for _, datagram := range [][]byte{
		{1, 2},                // too short, decode error
		{1, 2, 3, 4, 5},       // decodes
		{1, 2, 3, 4, 5, 6, 7}, // decodes
	} {
		if _, err := sender.Write(datagram); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	waitFor(t, "both events to decode", func() bool {
		return testutil.ToFloat64(m.EventsDecoded.WithLabelValues("stubEvent")) == 2
	})
	waitFor(t, "the short datagram to be counted", func() bool {
		return testutil.ToFloat64(m.DecodeErrors.WithLabelValues("truncated_header")) == 1
	})

	if err := collector.Stop(); err != nil {
		t.Errorf("Stop() error = %v, expected nil", err)
	}

	if got := testutil.ToFloat64(m.DatagramsReceived); got != 3 {
		t.Errorf("DatagramsReceived = %v, expected 3", got)
	}
	if got := observed.Load(); got != 2 {
		t.Errorf("observe hook ran %d times, expected 2", got)
	}
}

func TestCollectorStopWhileIdle(t *testing.T) {
	srv, err := telemetry.Listen("127.0.0.1:0", stubProtocol{})
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	m := metrics.NewMetricsWith(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	collector := NewCollector[*stubEvent](srv, logger, m, time.Hour, nil)
	collector.Start()

	// Stop must unblock the receive loop even with no traffic and a long
	// read timeout, because Close interrupts the blocking read.
	done := make(chan error, 1)
	go func() { done <- collector.Stop() }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Stop() error = %v, expected nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Stop() did not return")
	}
}

func TestDecodeErrorReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"truncated header", telemetry.ErrTruncatedHeader, "truncated_header"},
		{"truncated payload", telemetry.ErrTruncatedPayload, "truncated_payload"},
		{"unknown packet id", &telemetry.UnknownPacketIDError{ID: 42}, "unknown_packet_id"},
		{"format mismatch", &telemetry.UnsupportedVersionError{Got: 2019, Want: 2020}, "format_mismatch"},
		{"anything else", errors.New("bad datagram"), "malformed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeErrorReason(tt.err); got != tt.want {
				t.Errorf("decodeErrorReason() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestEventName(t *testing.T) {
	if got := eventName(&stubEvent{}); got != "stubEvent" {
		t.Errorf("eventName() = %q, expected stubEvent", got)
	}
}

// testWriter routes collector logs through the test log.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
