package f12022

import (
	"github.com/ozkar99/cm-telemetry/telemetry"
	"github.com/ozkar99/cm-telemetry/wire"
)

// CarDamage carries every car's wear and damage state, split out of the
// status packet in this protocol generation.
type CarDamage struct {
	Header telemetry.Header
	Cars   [NumCars]CarDamageData
}

// PlayerData returns the player car's damage entry, or nil if the header's
// player car index is out of range.
func (c *CarDamage) PlayerData() *CarDamageData {
	if int(c.Header.PlayerCarIndex) >= len(c.Cars) {
		return nil
	}
	return &c.Cars[c.Header.PlayerCarIndex]
}

// CarDamageData is one car's wear and damage state.
type CarDamageData struct {
	TyreWear       wire.WheelValue[float32] // percentage
	TyreDamage     wire.WheelValue[uint8]   // percentage
	BrakeDamage    wire.WheelValue[uint8]   // percentage
	WingDamage     wire.WingValue[uint8]    // percentage
	FloorDamage    uint8                    // percentage
	DiffuserDamage uint8                    // percentage
	SidepodDamage  uint8                    // percentage
	DRSFault       bool
	ERSFault       bool
	GearboxDamage  uint8 // percentage
	EngineDamage   uint8 // percentage

	// Engine component wear, percentages.
	EngineMGUHWear uint8
	EngineESWear   uint8
	EngineCEWear   uint8
	EngineICEWear  uint8
	EngineMGUKWear uint8
	EngineTCWear   uint8

	EngineBlown  bool
	EngineSeized bool
}

func decodeCarDamage(h telemetry.Header, body []byte) (Event, error) {
	r := wire.NewReader(body)
	c := &CarDamage{Header: h}
	for i := range c.Cars {
		c.Cars[i] = CarDamageData{
			TyreWear:       wire.WheelsF32(r),
			TyreDamage:     wire.WheelsU8(r),
			BrakeDamage:    wire.WheelsU8(r),
			WingDamage:     wire.WingsU8(r),
			FloorDamage:    r.U8(),
			DiffuserDamage: r.U8(),
			SidepodDamage:  r.U8(),
			DRSFault:       r.Bool(),
			ERSFault:       r.Bool(),
			GearboxDamage:  r.U8(),
			EngineDamage:   r.U8(),
			EngineMGUHWear: r.U8(),
			EngineESWear:   r.U8(),
			EngineCEWear:   r.U8(),
			EngineICEWear:  r.U8(),
			EngineMGUKWear: r.U8(),
			EngineTCWear:   r.U8(),
			EngineBlown:    r.Bool(),
			EngineSeized:   r.Bool(),
		}
	}

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return c, nil
}
