package telemetry

// Protocol is the capability one game implementation supplies: turning a
// single raw datagram into that game's typed event. Implementations must be
// stateless and safe for shared read-only use.
type Protocol[E any] interface {
	Decode(datagram []byte) (E, error)
}

// DecodeFunc decodes one packet kind's body. The body starts immediately
// after the header; the header has already been decoded and validated.
type DecodeFunc[E any] func(h Header, body []byte) (E, error)

// Dispatcher is the protocol definition for header-framed games: the format
// constant, the header size and the packet-id decode table. It is built once
// per game at package init, never mutated afterwards, and shared read-only by
// every server bound to that game.
type Dispatcher[E any] struct {
	// Format is the packet format constant every header must carry.
	Format uint16

	// HeaderLen is the game's header size in bytes.
	HeaderLen int

	// Table maps packet ids to their body decoders.
	Table map[uint8]DecodeFunc[E]
}

// Decode implements Protocol. It decodes and validates the header, looks up
// the packet id and hands the remaining bytes to the matching decoder. Every
// failure path returns a typed error; malformed input never panics and never
// affects later calls.
func (d *Dispatcher[E]) Decode(datagram []byte) (E, error) {
	var zero E

	h, err := DecodeHeader(datagram, d.HeaderLen)
	if err != nil {
		return zero, err
	}
	if h.PacketFormat != d.Format {
		return zero, &UnsupportedVersionError{Got: h.PacketFormat, Want: d.Format}
	}

	decode, ok := d.Table[h.PacketID]
	if !ok {
		return zero, &UnknownPacketIDError{Header: h, ID: h.PacketID}
	}
	return decode(h, datagram[d.HeaderLen:])
}
