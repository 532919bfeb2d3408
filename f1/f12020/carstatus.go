package f12020

import (
	"github.com/ozkar99/cm-telemetry/telemetry"
	"github.com/ozkar99/cm-telemetry/wire"
)

// CarStatus carries every car's consumables, damage and flag state.
type CarStatus struct {
	Header telemetry.Header
	Cars   [NumCars]CarStatusData
}

// PlayerData returns the player car's status, or nil if the header's player
// car index is out of range.
func (c *CarStatus) PlayerData() *CarStatusData {
	if int(c.Header.PlayerCarIndex) >= len(c.Cars) {
		return nil
	}
	return &c.Cars[c.Header.PlayerCarIndex]
}

// CarStatusData is one car's status snapshot.
type CarStatusData struct {
	TractionControl   uint8 // 0 off, 1 medium, 2 full
	AntiLockBrakes    bool
	FuelMix           FuelMix
	FrontBrakeBias    uint8 // percentage
	PitLimiter        bool
	FuelInTank        float32
	FuelCapacity      float32
	FuelRemainingLaps float32
	MaxRPM            uint16
	IdleRPM           uint16
	MaxGears          uint8
	DRSAllowed        DRSAllowed

	// DRSActivationDistance is how far ahead DRS becomes available, in
	// metres; zero means DRS is not available.
	DRSActivationDistance uint16

	TyreWear       wire.WheelValue[uint8] // percentage
	TyreCompound   TyreCompound
	TyreVisual     TyreVisual
	TyreAgeLaps    uint8
	TyreDamage     wire.WheelValue[uint8] // percentage
	WingDamage     wire.WingValue[uint8]  // percentage
	DRSFault       bool
	EngineDamage   uint8 // percentage
	GearboxDamage  uint8 // percentage
	VehicleFIAFlag FIAFlag
	ERS            ERSData
}

// FuelMix is the selected fuel mix.
type FuelMix uint8

const (
	FuelMixLean FuelMix = iota
	FuelMixStandard
	FuelMixRich
	FuelMixMax
)

// DRSAllowed reports whether DRS may currently be used.
type DRSAllowed uint8

const (
	DRSNotAllowed DRSAllowed = iota
	DRSIsAllowed
	DRSUnknown
)

// TyreCompound is the actual fitted tyre compound.
type TyreCompound uint8

const (
	TyreCompoundInter TyreCompound = iota + 7
	TyreCompoundWet
	TyreCompoundClassicDry
	TyreCompoundClassicWet
	TyreCompoundF2SuperSoft
	TyreCompoundF2Soft
	TyreCompoundF2Medium
	TyreCompoundF2Hard
	TyreCompoundF2Wet
	TyreCompoundC5
	TyreCompoundC4
	TyreCompoundC3
	TyreCompoundC2
	TyreCompoundC1
)

// TyreVisual is the tyre compound as shown on screen, which may differ from
// the actual compound.
type TyreVisual uint8

const (
	TyreVisualInter  TyreVisual = 7
	TyreVisualWet    TyreVisual = 8
	TyreVisualSoft   TyreVisual = 16
	TyreVisualMedium TyreVisual = 17
	TyreVisualHard   TyreVisual = 18
)

// FIAFlag is the flag currently shown to a car, -1 when invalid/unknown.
type FIAFlag int8

const (
	FIAFlagUnknown FIAFlag = iota - 1
	FIAFlagNone
	FIAFlagGreen
	FIAFlagBlue
	FIAFlagYellow
	FIAFlagRed
)

// ERSData is one car's energy recovery system state.
type ERSData struct {
	StoredEnergy         float32 // joules
	DeployMode           ERSDeployMode
	HarvestedThisLapMGUK float32
	HarvestedThisLapMGUH float32
	DeployedThisLap      float32
}

// ERSDeployMode is the selected ERS deployment mode.
type ERSDeployMode uint8

const (
	ERSDeployNone ERSDeployMode = iota
	ERSDeployMedium
	ERSDeployOvertake
	ERSDeployHotlap
)

func decodeCarStatus(h telemetry.Header, body []byte) (Event, error) {
	r := wire.NewReader(body)
	c := &CarStatus{Header: h}
	for i := range c.Cars {
		c.Cars[i] = CarStatusData{
			TractionControl:       r.U8(),
			AntiLockBrakes:        r.Bool(),
			FuelMix:               FuelMix(r.U8()),
			FrontBrakeBias:        r.U8(),
			PitLimiter:            r.Bool(),
			FuelInTank:            r.F32(),
			FuelCapacity:          r.F32(),
			FuelRemainingLaps:     r.F32(),
			MaxRPM:                r.U16(),
			IdleRPM:               r.U16(),
			MaxGears:              r.U8(),
			DRSAllowed:            DRSAllowed(r.U8()),
			DRSActivationDistance: r.U16(),
			TyreWear:              wire.WheelsU8(r),
			TyreCompound:          TyreCompound(r.U8()),
			TyreVisual:            TyreVisual(r.U8()),
			TyreAgeLaps:           r.U8(),
			TyreDamage:            wire.WheelsU8(r),
			WingDamage:            wire.WingsU8(r),
			DRSFault:              r.Bool(),
			EngineDamage:          r.U8(),
			GearboxDamage:         r.U8(),
			VehicleFIAFlag:        FIAFlag(r.I8()),
			ERS: ERSData{
				StoredEnergy:         r.F32(),
				DeployMode:           ERSDeployMode(r.U8()),
				HarvestedThisLapMGUK: r.F32(),
				HarvestedThisLapMGUH: r.F32(),
				DeployedThisLap:      r.F32(),
			},
		}
	}

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return c, nil
}
