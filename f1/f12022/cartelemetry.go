package f12022

import (
	"github.com/ozkar99/cm-telemetry/telemetry"
	"github.com/ozkar99/cm-telemetry/wire"
)

// CarTelemetry carries the live car telemetry every car broadcasts: inputs,
// speeds and temperatures.
type CarTelemetry struct {
	Header telemetry.Header
	Cars   [NumCars]CarTelemetryData

	MFDPanel                MFDPanel
	MFDPanelSecondaryPlayer MFDPanel

	// SuggestedGear is the gear the game suggests to the player, GearNeutral
	// when no suggestion is shown.
	SuggestedGear Gear
}

// PlayerData returns the player car's telemetry, or nil if the header's
// player car index is out of range.
func (c *CarTelemetry) PlayerData() *CarTelemetryData {
	if int(c.Header.PlayerCarIndex) >= len(c.Cars) {
		return nil
	}
	return &c.Cars[c.Header.PlayerCarIndex]
}

// CarTelemetryData is one car's live telemetry sample.
type CarTelemetryData struct {
	Speed            uint16  // km/h
	Throttle         float32 // 0.0 to 1.0
	Steer            float32 // -1.0 (full left) to 1.0 (full right)
	Brake            float32 // 0.0 to 1.0
	Clutch           uint8   // 0 to 100
	Gear             Gear
	EngineRPM        uint16
	DRS              bool
	RevLightsPercent uint8

	// RevLightsBitValue maps bit 0 to the leftmost LED and bit 14 to the
	// rightmost.
	RevLightsBitValue uint16

	BrakeTemp       wire.WheelValue[uint16]  // celsius
	TyreSurfaceTemp wire.WheelValue[uint8]   // celsius
	TyreInnerTemp   wire.WheelValue[uint8]   // celsius
	EngineTemp      uint16                   // celsius
	TyrePressure    wire.WheelValue[float32] // PSI
	SurfaceType     wire.WheelValue[Surface]
}

// Gear is a selected gear: -1 reverse, 0 neutral, 1-8 forward.
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
)

// Surface is the surface a wheel is driving on.
type Surface uint8

const (
	SurfaceTarmac Surface = iota
	SurfaceRumbleStrip
	SurfaceConcrete
	SurfaceRock
	SurfaceGravel
	SurfaceMud
	SurfaceSand
	SurfaceGrass
	SurfaceWater
	SurfaceCobblestone
	SurfaceMetal
	SurfaceRidged
)

// MFDPanel is the multi-function display panel currently open.
type MFDPanel uint8

const (
	MFDCarSetup MFDPanel = iota
	MFDPits
	MFDDamage
	MFDEngine
	MFDTemperatures
	MFDClosed MFDPanel = 255
)

func decodeCarTelemetry(h telemetry.Header, body []byte) (Event, error) {
	r := wire.NewReader(body)
	c := &CarTelemetry{Header: h}
	for i := range c.Cars {
		c.Cars[i] = CarTelemetryData{
			Speed:             r.U16(),
			Throttle:          r.F32(),
			Steer:             r.F32(),
			Brake:             r.F32(),
			Clutch:            r.U8(),
			Gear:              Gear(r.I8()),
			EngineRPM:         r.U16(),
			DRS:               r.Bool(),
			RevLightsPercent:  r.U8(),
			RevLightsBitValue: r.U16(),
			BrakeTemp:         wire.WheelsU16(r),
			TyreSurfaceTemp:   wire.WheelsU8(r),
			TyreInnerTemp:     wire.WheelsU8(r),
			EngineTemp:        r.U16(),
			TyrePressure:      wire.WheelsF32(r),
			SurfaceType: wire.WheelValue[Surface]{
				RearLeft:   Surface(r.U8()),
				RearRight:  Surface(r.U8()),
				FrontLeft:  Surface(r.U8()),
				FrontRight: Surface(r.U8()),
			},
		}
	}
	c.MFDPanel = MFDPanel(r.U8())
	c.MFDPanelSecondaryPlayer = MFDPanel(r.U8())
	c.SuggestedGear = Gear(r.I8())

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return c, nil
}
