package telemetry

import (
	"errors"
	"net"
	"testing"
	"time"
)

// dialServer binds a server on an ephemeral port and a UDP sender pointed at
// it, cleaning both up when the test ends.
func dialServer[E any](t *testing.T, proto Protocol[E]) (*Server[E], *net.UDPConn) {
	t.Helper()

	srv, err := Listen("127.0.0.1:0", proto)
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	t.Cleanup(func() { srv.Close() })

	sender, err := net.DialUDP("udp", nil, srv.LocalAddr().(*net.UDPAddr))
	if err != nil {
		t.Fatalf("DialUDP() error = %v", err)
	}
	t.Cleanup(func() { sender.Close() })

	return srv, sender
}

func TestServerNext(t *testing.T) {
	srv, sender := dialServer[int](t, testDispatcher())

	datagram := buildHeader(t, Header{PacketFormat: 2020, PacketID: 1}, HeaderSizeSecond)
	datagram = append(datagram, make([]byte, 7)...)
	if _, err := sender.Write(datagram); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	srv.SetReadDeadline(time.Now().Add(5 * time.Second))
	got, err := srv.Next()
	if err != nil {
		t.Fatalf("Next() error = %v, expected nil", err)
	}
	if got != 7 {
		t.Errorf("Next() = %d, expected 7", got)
	}
}

func TestServerNextPreservesOrder(t *testing.T) {
	srv, sender := dialServer[int](t, testDispatcher())

	// Two datagrams with distinct body sizes must come back in send order.
	for _, bodyLen := range []int{3, 9} {
		datagram := buildHeader(t, Header{PacketFormat: 2020, PacketID: 1}, HeaderSizeSecond)
		datagram = append(datagram, make([]byte, bodyLen)...)
		if _, err := sender.Write(datagram); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	srv.SetReadDeadline(time.Now().Add(5 * time.Second))
	for _, expected := range []int{3, 9} {
		got, err := srv.Next()
		if err != nil {
			t.Fatalf("Next() error = %v, expected nil", err)
		}
		if got != expected {
			t.Errorf("Next() = %d, expected %d", got, expected)
		}
	}
}

func TestServerSurvivesMalformedDatagram(t *testing.T) {
	srv, sender := dialServer[int](t, testDispatcher())

	// A short datagram fails its own Next call only.
	if _, err := sender.Write([]byte{0x01, 0x02}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	good := buildHeader(t, Header{PacketFormat: 2020, PacketID: 1}, HeaderSizeSecond)
	if _, err := sender.Write(good); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	srv.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, err := srv.Next(); !errors.Is(err, ErrTruncatedHeader) {
		t.Fatalf("Next() error = %v, expected ErrTruncatedHeader", err)
	}
	if _, err := srv.Next(); err != nil {
		t.Errorf("Next() after malformed datagram: error = %v, expected nil", err)
	}
}

func TestListenPortInUse(t *testing.T) {
	srv, _ := dialServer[int](t, testDispatcher())

	_, err := Listen[int](srv.LocalAddr().String(), testDispatcher())
	if err == nil {
		t.Fatal("Listen() on an occupied port: expected error, got nil")
	}
}

func TestListenBadAddress(t *testing.T) {
	_, err := Listen[int]("not-an-address:port", testDispatcher())
	if err == nil {
		t.Fatal("Listen() with a bad address: expected error, got nil")
	}
}

func TestServerReadDeadline(t *testing.T) {
	srv, _ := dialServer[int](t, testDispatcher())

	srv.SetReadDeadline(time.Now().Add(20 * time.Millisecond))
	_, err := srv.Next()

	var netErr net.Error
	if !errors.As(err, &netErr) || !netErr.Timeout() {
		t.Fatalf("Next() past deadline: error = %v, expected a timeout net.Error", err)
	}
}

func TestServerClosedNextFails(t *testing.T) {
	srv, _ := dialServer[int](t, testDispatcher())

	if err := srv.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := srv.Next(); err == nil {
		t.Fatal("Next() on a closed server: expected error, got nil")
	}
}
