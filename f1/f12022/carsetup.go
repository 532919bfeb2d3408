package f12022

import (
	"github.com/ozkar99/cm-telemetry/telemetry"
	"github.com/ozkar99/cm-telemetry/wire"
)

// CarSetups carries every car's setup. In multiplayer, other players' setups
// are blanked out by the game.
type CarSetups struct {
	Header telemetry.Header
	Cars   [NumCars]CarSetupData
}

// PlayerData returns the player car's setup, or nil if the header's player
// car index is out of range.
func (c *CarSetups) PlayerData() *CarSetupData {
	if int(c.Header.PlayerCarIndex) >= len(c.Cars) {
		return nil
	}
	return &c.Cars[c.Header.PlayerCarIndex]
}

// CarSetupData is one car's setup sheet.
type CarSetupData struct {
	Wing             wire.FrontRear[uint8]
	OnThrottle       uint8 // differential adjustment on throttle (percentage)
	OffThrottle      uint8 // differential adjustment off throttle (percentage)
	Camber           wire.FrontRear[float32]
	Toe              wire.FrontRear[float32]
	Suspension       wire.FrontRear[uint8]
	AntiRollBar      wire.FrontRear[uint8]
	SuspensionHeight wire.FrontRear[uint8]
	BrakePressure    uint8                    // percentage
	BrakeBias        uint8                    // percentage
	TyrePressure     wire.WheelValue[float32] // PSI
	Ballast          uint8
	FuelLoad         float32
}

func decodeCarSetups(h telemetry.Header, body []byte) (Event, error) {
	r := wire.NewReader(body)
	c := &CarSetups{Header: h}
	for i := range c.Cars {
		c.Cars[i] = CarSetupData{
			Wing:             wire.FrontRearU8(r),
			OnThrottle:       r.U8(),
			OffThrottle:      r.U8(),
			Camber:           wire.FrontRearF32(r),
			Toe:              wire.FrontRearF32(r),
			Suspension:       wire.FrontRearU8(r),
			AntiRollBar:      wire.FrontRearU8(r),
			SuspensionHeight: wire.FrontRearU8(r),
			BrakePressure:    r.U8(),
			BrakeBias:        r.U8(),
			TyrePressure:     wire.WheelsF32(r),
			Ballast:          r.U8(),
			FuelLoad:         r.F32(),
		}
	}

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return c, nil
}
