package telemetry

import (
	"errors"
	"fmt"
)

// Sentinel decode errors. Both are per-call: a malformed datagram fails its
// own Next call and leaves the server usable for the following one.
var (
	// ErrTruncatedHeader reports a datagram shorter than the protocol's
	// declared header size.
	ErrTruncatedHeader = errors.New("telemetry: datagram shorter than packet header")

	// ErrTruncatedPayload reports a packet body shorter than the size its
	// packet id declares.
	ErrTruncatedPayload = errors.New("telemetry: packet body shorter than declared layout")
)

// UnknownPacketIDError reports a header whose packet id has no entry in the
// protocol's decode table. The already-decoded header remains inspectable.
type UnknownPacketIDError struct {
	Header Header
	ID     uint8
}

func (e *UnknownPacketIDError) Error() string {
	return fmt.Sprintf("telemetry: unknown packet id %d", e.ID)
}

// UnsupportedVersionError reports a header whose packet format does not match
// the bound protocol's format constant.
type UnsupportedVersionError struct {
	Got  uint16
	Want uint16
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("telemetry: unsupported packet format %d, protocol expects %d", e.Got, e.Want)
}
