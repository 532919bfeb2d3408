package telemetry

import (
	"fmt"
	"net"
	"time"
)

// MaxPacketSize bounds the receive buffer. The largest packet any supported
// game emits (F1 22 session history) is well under 2 KiB; oversized datagrams
// are truncated at this size rather than grown into.
const MaxPacketSize = 2048

// Server pairs one bound UDP socket with one game protocol and hands out
// decoded events one datagram at a time.
//
// A Server is single-consumer: one goroutine calls Next at a time. There is
// no internal queue — datagrams arriving faster than Next is called sit in
// the OS socket buffer and may be dropped there, which is inherent to a
// fixed-tick UDP telemetry feed.
type Server[E any] struct {
	proto Protocol[E]
	conn  *net.UDPConn
	buf   []byte
}

// Listen binds a UDP socket on addr and attaches proto to it. The returned
// error is fatal to construction: bad address, port in use, or insufficient
// permission.
func Listen[E any](addr string, proto Protocol[E]) (*Server[E], error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve UDP address %q: %w", addr, err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %q: %w", addr, err)
	}
	return &Server[E]{
		proto: proto,
		conn:  conn,
		buf:   make([]byte, MaxPacketSize),
	}, nil
}

// Next blocks until one datagram arrives and returns its decoded event.
// Exactly one datagram is consumed per call. Socket-level read failures are
// returned as-is; decode failures are the typed errors of this package.
// Either way the server remains usable for the following call.
//
// The datagram buffer is reused across calls; decoded events never retain it.
func (s *Server[E]) Next() (E, error) {
	var zero E

	n, _, err := s.conn.ReadFromUDP(s.buf)
	if err != nil {
		return zero, fmt.Errorf("failed to read datagram: %w", err)
	}
	return s.proto.Decode(s.buf[:n])
}

// SetReadDeadline bounds subsequent Next calls. A caller that needs to poll a
// stop condition sets a deadline and treats timeouts (net.Error with Timeout
// true) as a cue to check it, instead of blocking indefinitely.
func (s *Server[E]) SetReadDeadline(t time.Time) error {
	return s.conn.SetReadDeadline(t)
}

// LocalAddr returns the bound socket address, useful after binding port 0.
func (s *Server[E]) LocalAddr() net.Addr {
	return s.conn.LocalAddr()
}

// Close releases the socket. A Next call blocked on the socket is unblocked
// and returns an error; further calls fail the same way.
func (s *Server[E]) Close() error {
	return s.conn.Close()
}
