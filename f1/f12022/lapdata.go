package f12022

import (
	"github.com/ozkar99/cm-telemetry/telemetry"
	"github.com/ozkar99/cm-telemetry/wire"
)

// LapData carries lap timing for every car on track, plus the time trial
// personal-best and rival car indexes.
type LapData struct {
	Header telemetry.Header
	Laps   [NumCars]Lap

	// Time trial only; 255 when invalid.
	TimeTrialPBCarIndex    uint8
	TimeTrialRivalCarIndex uint8
}

// PlayerData returns the player car's lap entry, or nil if the header's
// player car index is out of range.
func (l *LapData) PlayerData() *Lap {
	if int(l.Header.PlayerCarIndex) >= len(l.Laps) {
		return nil
	}
	return &l.Laps[l.Header.PlayerCarIndex]
}

// Lap is one car's lap timing and race position data. All lap and sector
// times are carried in milliseconds in this protocol generation.
type Lap struct {
	LastLapTimeMS    uint32
	CurrentLapTimeMS uint32

	// Sector times for the current lap; the wire carries sector 1 and 2 only.
	Sector1TimeMS uint16
	Sector2TimeMS uint16

	LapDistance       float32 // metres, negative before the line is crossed
	TotalDistance     float32 // metres
	SafetyCarDelta    float32 // seconds
	CarPosition       uint8
	CurrentLapNumber  uint8
	PitStatus         PitStatus
	NumPitStops       uint8
	Sector            Sector
	CurrentLapInvalid bool
	Penalties         uint8 // accumulated time penalties in seconds
	Warnings          uint8

	NumUnservedDriveThroughPenalties uint8
	NumUnservedStopGoPenalties       uint8

	GridPosition uint8
	DriverStatus DriverStatus
	ResultStatus ResultStatus

	// Pit lane timing, populated while the timer is active.
	PitLaneTimerActive        bool
	PitLaneTimeInLaneMS       uint16
	PitStopTimerMS            uint16
	PitStopShouldServePenalty uint8
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
	ResultDidNotFinish
	ResultDisqualified
	ResultNotClassified
	ResultRetired
)

func decodeLap(r *wire.Reader) Lap {
	return Lap{
		LastLapTimeMS:                    r.U32(),
		CurrentLapTimeMS:                 r.U32(),
		Sector1TimeMS:                    r.U16(),
		Sector2TimeMS:                    r.U16(),
		LapDistance:                      r.F32(),
		TotalDistance:                    r.F32(),
		SafetyCarDelta:                   r.F32(),
		CarPosition:                      r.U8(),
		CurrentLapNumber:                 r.U8(),
		PitStatus:                        PitStatus(r.U8()),
		NumPitStops:                      r.U8(),
		Sector:                           Sector(r.U8()),
		CurrentLapInvalid:                r.Bool(),
		Penalties:                        r.U8(),
		Warnings:                         r.U8(),
		NumUnservedDriveThroughPenalties: r.U8(),
		NumUnservedStopGoPenalties:       r.U8(),
		GridPosition:                     r.U8(),
		DriverStatus:                     DriverStatus(r.U8()),
		ResultStatus:                     ResultStatus(r.U8()),
		PitLaneTimerActive:               r.Bool(),
		PitLaneTimeInLaneMS:              r.U16(),
		PitStopTimerMS:                   r.U16(),
		PitStopShouldServePenalty:        r.U8(),
	}
}

func decodeLapData(h telemetry.Header, body []byte) (Event, error) {
	r := wire.NewReader(body)
	l := &LapData{Header: h}
	for i := range l.Laps {
		l.Laps[i] = decodeLap(r)
	}
	l.TimeTrialPBCarIndex = r.U8()
	l.TimeTrialRivalCarIndex = r.U8()

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return l, nil
}
