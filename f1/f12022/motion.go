package f12022

import (
	"github.com/ozkar99/cm-telemetry/telemetry"
	"github.com/ozkar99/cm-telemetry/wire"
)

// Motion carries physics data for every car on track, plus extra
// player-car-only suspension and wheel detail.
type Motion struct {
	Header telemetry.Header
	Cars   [NumCars]CarMotionData

	// Player car only.
	SuspensionPosition     wire.WheelValue[float32]
	SuspensionVelocity     wire.WheelValue[float32]
	SuspensionAcceleration wire.WheelValue[float32]
	WheelSpeed             wire.WheelValue[float32]
	WheelSlip              wire.WheelValue[float32]
	LocalVelocity          wire.Vec3[float32]
	AngularVelocity        wire.Vec3[float32]
	AngularAcceleration    wire.Vec3[float32]
	FrontWheelAngle        float32 // radians
}

// CarMotionData is one car's worth of world-space motion data.
type CarMotionData struct {
	WorldPosition      wire.Vec3[float32]
	WorldVelocity      wire.Vec3[float32]
	WorldForwardDir    wire.Vec3[int16] // normalised
	WorldRightDir      wire.Vec3[int16] // normalised
	GForceLateral      float32
	GForceLongitudinal float32
	GForceVertical     float32
	Yaw                float32 // radians
	Pitch              float32 // radians
	Roll               float32 // radians
}

// PlayerData returns the player car's entry, or nil if the header's player
// car index is out of range.
func (m *Motion) PlayerData() *CarMotionData {
	if int(m.Header.PlayerCarIndex) >= len(m.Cars) {
		return nil
	}
	return &m.Cars[m.Header.PlayerCarIndex]
}

func decodeMotion(h telemetry.Header, body []byte) (Event, error) {
	r := wire.NewReader(body)
	m := &Motion{Header: h}
	for i := range m.Cars {
		m.Cars[i] = CarMotionData{
			WorldPosition:      wire.Vec3F32(r),
			WorldVelocity:      wire.Vec3F32(r),
			WorldForwardDir:    wire.Vec3I16(r),
			WorldRightDir:      wire.Vec3I16(r),
			GForceLateral:      r.F32(),
			GForceLongitudinal: r.F32(),
			GForceVertical:     r.F32(),
			Yaw:                r.F32(),
			Pitch:              r.F32(),
			Roll:               r.F32(),
		}
	}
	m.SuspensionPosition = wire.WheelsF32(r)
	m.SuspensionVelocity = wire.WheelsF32(r)
	m.SuspensionAcceleration = wire.WheelsF32(r)
	m.WheelSpeed = wire.WheelsF32(r)
	m.WheelSlip = wire.WheelsF32(r)
	m.LocalVelocity = wire.Vec3F32(r)
	m.AngularVelocity = wire.Vec3F32(r)
	m.AngularAcceleration = wire.Vec3F32(r)
	m.FrontWheelAngle = r.F32()

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return m, nil
}
