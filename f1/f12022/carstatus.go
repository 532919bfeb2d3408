package f12022

import (
	"github.com/ozkar99/cm-telemetry/telemetry"
	"github.com/ozkar99/cm-telemetry/wire"
)

// CarStatus carries every car's consumables and flag state. Damage moved to
// its own packet in this protocol generation.
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
	DRSAllowed        bool

	// DRSActivationDistance is how far ahead DRS becomes available, in
	// metres; zero means DRS is not available.
	DRSActivationDistance uint16

	TyreCompound   TyreCompound
	TyreVisual     TyreVisual
	TyreAgeLaps    uint8
	VehicleFIAFlag FIAFlag
	ERS            ERSData
	NetworkPaused  bool
}

// FuelMix is the selected fuel mix.
type FuelMix uint8

const (
	FuelMixLean FuelMix = iota
	FuelMixStandard
	FuelMixRich
	FuelMixMax
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
	TyreVisualInter       TyreVisual = 7
	TyreVisualWet         TyreVisual = 8
	TyreVisualClassicDry  TyreVisual = 9
	TyreVisualClassicWet  TyreVisual = 10
	TyreVisualF2Wet       TyreVisual = 15
	TyreVisualSoft        TyreVisual = 16
	TyreVisualMedium      TyreVisual = 17
	TyreVisualHard        TyreVisual = 18
	TyreVisualF2SuperSoft TyreVisual = 19
	TyreVisualF2Soft      TyreVisual = 20
	TyreVisualF2Medium    TyreVisual = 21
	TyreVisualF2Hard      TyreVisual = 22
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

// ERSDeployMode is the selected ERS deployment mode. The hotlap and overtake
// values are swapped relative to the 2020 protocol.
type ERSDeployMode uint8

const (
	ERSDeployNone ERSDeployMode = iota
	ERSDeployMedium
	ERSDeployHotlap
	ERSDeployOvertake
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
			DRSAllowed:            r.Bool(),
			DRSActivationDistance: r.U16(),
			TyreCompound:          TyreCompound(r.U8()),
			TyreVisual:            TyreVisual(r.U8()),
			TyreAgeLaps:           r.U8(),
			VehicleFIAFlag:        FIAFlag(r.I8()),
			ERS: ERSData{
				StoredEnergy:         r.F32(),
				DeployMode:           ERSDeployMode(r.U8()),
				HarvestedThisLapMGUK: r.F32(),
				HarvestedThisLapMGUH: r.F32(),
				DeployedThisLap:      r.F32(),
			},
			NetworkPaused: r.Bool(),
		}
	}

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return c, nil
}
