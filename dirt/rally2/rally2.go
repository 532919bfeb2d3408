// Package rally2 implements the Codemasters UDP telemetry protocol for
// "DiRT Rally 2.0".
//
// Unlike the F1 games this protocol has no packet header and no packet
// kinds: every datagram is the same flat array of little-endian f32 fields
// describing the current simulation tick. The game must be configured with
// extradata="3" in hardware_settings_config.xml, which extends the datagram
// past the brake temperature and lap count fields this package reads.
package rally2

import (
	"errors"

	"github.com/ozkar99/cm-telemetry/telemetry"
	"github.com/ozkar99/cm-telemetry/wire"
)

// MinPacketSize is the smallest datagram the decoder accepts. Datagrams of
// the default extradata level are shorter than this and get rejected.
const MinPacketSize = 256

// ErrShortPacket reports a datagram below MinPacketSize, almost always a
// game configured without extradata="3".
var ErrShortPacket = errors.New("rally2: datagram shorter than 256 bytes, set extradata=\"3\" in hardware_settings_config.xml")

// Telemetry is one simulation tick. Wheel groups use the game's rear-left,
// rear-right, front-left, front-right order.
type Telemetry struct {
	TotalTime     float32 // seconds since the run started
	LapTime       float32 // seconds into the current lap
	LapDistance   float32 // metres into the current lap
	TotalDistance float32 // metres since the run started

	WorldPosition wire.Vec3[float32]
	Speed         float32 // m/s
	Velocity      wire.Vec3[float32]
	RollVector    wire.Vec3[float32]
	PitchVector   wire.Vec3[float32]

	SuspensionPosition wire.WheelValue[float32]
	SuspensionVelocity wire.WheelValue[float32]
	WheelVelocity      wire.WheelValue[float32]

	Throttle float32 // 0..1
	Steer    float32 // -1..1
	Brake    float32 // 0..1
	Clutch   float32 // 0..1
	Gear     Gear

	GForceLateral      float32
	GForceLongitudinal float32

	CurrentLap   float32
	EngineRate   float32 // rpm
	RacePosition float32

	BrakeTemperature wire.WheelValue[float32] // celsius

	TotalLaps   float32
	TrackLength float32 // metres
	LastLapTime float32 // seconds
}

// Gear is the selected gear, negative in reverse.
type Gear int8

const (
	GearReverse Gear = iota - 1
	GearNeutral
	Gear1
	Gear2
	Gear3
	Gear4
	Gear5
	Gear6
	Gear7
	Gear8
	Gear9
)

// gearFromF32 maps the game's float-encoded gear field. The game reports
// the gear as a whole number in a f32 slot; reverse is any negative value.
func gearFromF32(f float32) Gear {
	switch {
	case f < 0:
		return GearReverse
	case f >= 9:
		return Gear9
	default:
		return Gear(f)
	}
}

type protocol struct{}

// Decode parses one datagram. All fields sit at fixed offsets, so a
// datagram passing the size check always decodes.
func (protocol) Decode(datagram []byte) (*Telemetry, error) {
	if len(datagram) < MinPacketSize {
		return nil, ErrShortPacket
	}

	r := wire.NewReader(datagram)
	t := &Telemetry{
		TotalTime:     r.F32(),
		LapTime:       r.F32(),
		LapDistance:   r.F32(),
		TotalDistance: r.F32(),
		WorldPosition: wire.Vec3F32(r),
		Speed:         r.F32(),
		Velocity:      wire.Vec3F32(r),
		RollVector:    wire.Vec3F32(r),
		PitchVector:   wire.Vec3F32(r),

		SuspensionPosition: wire.WheelsF32(r),
		SuspensionVelocity: wire.WheelsF32(r),
		WheelVelocity:      wire.WheelsF32(r),

		Throttle: r.F32(),
		Steer:    r.F32(),
		Brake:    r.F32(),
		Clutch:   r.F32(),
		Gear:     gearFromF32(r.F32()),

		GForceLateral:      r.F32(),
		GForceLongitudinal: r.F32(),

		CurrentLap: r.F32(),
		EngineRate: r.F32(),
	}
	r.Skip(4) // offset 152, unused
	t.RacePosition = r.F32()
	r.Skip(44) // offsets 160-203, per-wheel and per-gear data this package does not surface
	t.BrakeTemperature = wire.WheelsF32(r)
	r.Skip(20) // offsets 220-239, tyre pressures and completion counters
	t.TotalLaps = r.F32()
	t.TrackLength = r.F32()
	t.LastLapTime = r.F32()

	if err := r.Err(); err != nil {
		return nil, ErrShortPacket
	}
	return t, nil
}

// Protocol returns the immutable DiRT Rally 2.0 wire protocol definition.
func Protocol() telemetry.Protocol[*Telemetry] {
	return protocol{}
}

// Listen binds a telemetry server for DiRT Rally 2.0 on addr, typically
// "127.0.0.1:20777" (the game's default UDP target).
func Listen(addr string) (*telemetry.Server[*Telemetry], error) {
	return telemetry.Listen(addr, protocol{})
}
