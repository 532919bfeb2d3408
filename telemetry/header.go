package telemetry

import "github.com/ozkar99/cm-telemetry/wire"

// Header sizes of the supported protocol generations. 2019-era headers stop
// at the player car index; 2020 onwards append the secondary (splitscreen)
// player car index.
const (
	HeaderSize       = 23
	HeaderSizeSecond = 24
)

// Header is the fixed-size prefix common to all packets of one game's
// protocol version, little-endian on the wire.
type Header struct {
	PacketFormat     uint16 // e.g. 2020, 2022
	GameMajorVersion uint8
	GameMinorVersion uint8
	PacketVersion    uint8
	PacketID         uint8
	SessionUID       uint64
	SessionTime      float32 // seconds since session start
	FrameIdentifier  uint32
	PlayerCarIndex   uint8

	// SecondaryPlayerCarIndex is 255 when there is no splitscreen player.
	// Only present when the protocol declares a HeaderSizeSecond header.
	SecondaryPlayerCarIndex uint8
}

// DecodeHeader decodes the leading size bytes of data as a packet header.
// It is a pure function: it fails with ErrTruncatedHeader when data is
// shorter than size and never reads past it.
func DecodeHeader(data []byte, size int) (Header, error) {
	if len(data) < size {
		return Header{}, ErrTruncatedHeader
	}

	r := wire.NewReader(data[:size])
	h := Header{
		PacketFormat:     r.U16(),
		GameMajorVersion: r.U8(),
		GameMinorVersion: r.U8(),
		PacketVersion:    r.U8(),
		PacketID:         r.U8(),
		SessionUID:       r.U64(),
		SessionTime:      r.F32(),
		FrameIdentifier:  r.U32(),
		PlayerCarIndex:   r.U8(),
	}
	if size >= HeaderSizeSecond {
		h.SecondaryPlayerCarIndex = r.U8()
	}
	if err := r.Err(); err != nil {
		return Header{}, ErrTruncatedHeader
	}
	return h, nil
}
