package f12020

import (
	"github.com/ozkar99/cm-telemetry/telemetry"
	"github.com/ozkar99/cm-telemetry/wire"
)

// LapData carries lap timing for every car on track.
type LapData struct {
	Header telemetry.Header
	Laps   [NumCars]Lap
}

// PlayerData returns the player car's lap entry, or nil if the header's
// player car index is out of range.
func (l *LapData) PlayerData() *Lap {
	if int(l.Header.PlayerCarIndex) >= len(l.Laps) {
		return nil
	}
	return &l.Laps[l.Header.PlayerCarIndex]
}

// Lap is one car's lap timing and race position data.
type Lap struct {
	LastLapTime    float32 // seconds
	CurrentLapTime float32 // seconds

	// Sector times for the current lap; the wire carries sector 1 and 2 only.
	Sector1TimeMS uint16
	Sector2TimeMS uint16

	BestLapTime   float32 // seconds
	BestLapNumber uint8

	BestLapSector1TimeMS uint16
	BestLapSector2TimeMS uint16
	BestLapSector3TimeMS uint16

	BestOverallSector1 BestOverallSectorTime
	BestOverallSector2 BestOverallSectorTime
	BestOverallSector3 BestOverallSectorTime

	LapDistance       float32 // metres, negative before the line is crossed
	TotalDistance     float32 // metres
	SafetyCarDelta    float32 // seconds
	CarPosition       uint8
	CurrentLapNumber  uint8
	PitStatus         PitStatus
	Sector            Sector
	CurrentLapInvalid bool
	Penalties         uint8 // accumulated time penalties in seconds
	GridPosition      uint8
	DriverStatus      DriverStatus
	ResultStatus      ResultStatus
}

// BestOverallSectorTime is a session-best sector time and the lap it was set on.
type BestOverallSectorTime struct {
	SectorTimeMS uint16
	LapNumber    uint8
}

// PitStatus reports whether a car is pitting.
type PitStatus uint8

const (
	PitStatusNone PitStatus = iota
	PitStatusPitting
	PitStatusInPitArea
)

// Sector identifies the track sector a car is in.
type Sector uint8

const (
	Sector1 Sector = iota
	Sector2
	Sector3
)

// DriverStatus reports what a driver is currently doing.
type DriverStatus uint8

const (
	DriverInGarage DriverStatus = iota
	DriverFlyingLap
	DriverInLap
	DriverOutLap
	DriverOnTrack
)

// ResultStatus is a car's classification state.
type ResultStatus uint8

const (
	ResultInvalid ResultStatus = iota
	ResultInactive
	ResultActive
	ResultFinished
	ResultDisqualified
	ResultNotClassified
	ResultRetired
	ResultMechanicalFailure
)

func decodeLap(r *wire.Reader) Lap {
	return Lap{
		LastLapTime:          r.F32(),
		CurrentLapTime:       r.F32(),
		Sector1TimeMS:        r.U16(),
		Sector2TimeMS:        r.U16(),
		BestLapTime:          r.F32(),
		BestLapNumber:        r.U8(),
		BestLapSector1TimeMS: r.U16(),
		BestLapSector2TimeMS: r.U16(),
		BestLapSector3TimeMS: r.U16(),
		BestOverallSector1:   BestOverallSectorTime{SectorTimeMS: r.U16(), LapNumber: r.U8()},
		BestOverallSector2:   BestOverallSectorTime{SectorTimeMS: r.U16(), LapNumber: r.U8()},
		BestOverallSector3:   BestOverallSectorTime{SectorTimeMS: r.U16(), LapNumber: r.U8()},
		LapDistance:          r.F32(),
		TotalDistance:        r.F32(),
		SafetyCarDelta:       r.F32(),
		CarPosition:          r.U8(),
		CurrentLapNumber:     r.U8(),
		PitStatus:            PitStatus(r.U8()),
		Sector:               Sector(r.U8()),
		CurrentLapInvalid:    r.Bool(),
		Penalties:            r.U8(),
		GridPosition:         r.U8(),
		DriverStatus:         DriverStatus(r.U8()),
		ResultStatus:         ResultStatus(r.U8()),
	}
}

func decodeLapData(h telemetry.Header, body []byte) (Event, error) {
	r := wire.NewReader(body)
	l := &LapData{Header: h}
	for i := range l.Laps {
		l.Laps[i] = decodeLap(r)
	}

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return l, nil
}
