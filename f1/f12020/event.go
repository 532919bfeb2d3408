package f12020

import (
	"github.com/ozkar99/cm-telemetry/telemetry"
	"github.com/ozkar99/cm-telemetry/wire"
)

// EventData is the session-event packet: a 4-character code followed by
// code-specific detail.
type EventData struct {
	Header telemetry.Header
	Detail EventDetail
}

// EventDetail is the closed set of session-event details. Unrecognised codes
// decode to *UnknownEvent rather than failing the packet.
type EventDetail interface {
	isEventDetail()
}

// SessionStarted signals "SSTA": the session has started.
type SessionStarted struct{}

// SessionEnded signals "SEND": the session has ended.
type SessionEnded struct{}

// FastestLap signals "FTLP": a new fastest lap.
type FastestLap struct {
	VehicleIndex uint8
	LapTime      float32 // seconds
}

// Retirement signals "RTMT": a car has retired.
type Retirement struct {
	VehicleIndex uint8
}

// DRSEnabled signals "DRSE".
type DRSEnabled struct{}

// DRSDisabled signals "DRSD".
type DRSDisabled struct{}

// TeamMateInPits signals "TMPT".
type TeamMateInPits struct {
	VehicleIndex uint8
}

// ChequeredFlag signals "CHQF".
type ChequeredFlag struct{}

// RaceWinner signals "RCWN".
type RaceWinner struct {
	VehicleIndex uint8
}

// Penalty signals "PENA": a penalty has been issued.
type Penalty struct {
	PenaltyType       PenaltyType
	InfringementType  InfringementType
	VehicleIndex      uint8
	OtherVehicleIndex uint8
	Time              uint8 // seconds gained or spent
	LapNumber         uint8
	PlacesGained      uint8
}

// SpeedTrap signals "SPTP": a car has triggered the speed trap.
type SpeedTrap struct {
	VehicleIndex uint8
	Speed        float32 // km/h
}

// UnknownEvent carries an event code this package does not recognise.
type UnknownEvent struct {
	Code string
}

func (*SessionStarted) isEventDetail() {}
func (*SessionEnded) isEventDetail()   {}
func (*FastestLap) isEventDetail()     {}
func (*Retirement) isEventDetail()     {}
func (*DRSEnabled) isEventDetail()     {}
func (*DRSDisabled) isEventDetail()    {}
func (*TeamMateInPits) isEventDetail() {}
func (*ChequeredFlag) isEventDetail()  {}
func (*RaceWinner) isEventDetail()     {}
func (*Penalty) isEventDetail()        {}
func (*SpeedTrap) isEventDetail()      {}
func (*UnknownEvent) isEventDetail()   {}

// PenaltyType classifies an issued penalty.
type PenaltyType uint8

const (
	PenaltyDriveThrough PenaltyType = iota
	PenaltyStopGo
	PenaltyGrid
	PenaltyReminder
	PenaltyTime
	PenaltyWarning
	PenaltyDisqualified
	PenaltyRemovedFromFormationLap
	PenaltyParkedTooLongTimer
	PenaltyTyreRegulations
	PenaltyThisLapInvalidated
	PenaltyThisAndNextLapInvalidated
	PenaltyThisLapInvalidatedWithNoReason
	PenaltyThisAndNextLapInvalidatedWithNoReason
	PenaltyThisAndPreviousLapInvalidated
	PenaltyThisAndPreviousLapInvalidatedWithNoReason
	PenaltyRetired
	PenaltyBlackFlagTimer
)

// InfringementType classifies the infringement behind a penalty.
type InfringementType uint8

const (
	InfringementBlockingBySlowDriving InfringementType = iota
	InfringementBlockingByWrongWayDriving
	InfringementReversingOffTheStartLine
	InfringementBigCollision
	InfringementSmallCollision
	InfringementCollisionFailedToHandBackPositionSingle
	InfringementCollisionFailedToHandBackPositionMultiple
	InfringementCornerCuttingGainedTime
	InfringementCornerCuttingOvertakeSingle
	InfringementCornerCuttingOvertakeMultiple
	InfringementCrossedPitExitLane
	InfringementIgnoringBlueFlags
	InfringementIgnoringYellowFlags
	InfringementIgnoringDriveThrough
	InfringementTooManyDriveThroughs
	InfringementDriveThroughReminderServeWithinNLaps
	InfringementDriveThroughReminderServeThisLap
	InfringementPitLaneSpeeding
	InfringementParkedForTooLong
	InfringementIgnoringTyreRegulations
	InfringementTooManyPenalties
	InfringementMultipleWarnings
	InfringementApproachingDisqualification
	InfringementTyreRegulationsSelectSingle
	InfringementTyreRegulationsSelectMultiple
	InfringementLapInvalidatedCornerCutting
	InfringementLapInvalidatedRunningWide
	InfringementCornerCuttingRanWideGainedTimeMinor
	InfringementCornerCuttingRanWideGainedTimeSignificant
	InfringementCornerCuttingRanWideGainedTimeExtreme
	InfringementLapInvalidatedWallRiding
	InfringementLapInvalidatedFlashbackUsed
	InfringementLapInvalidatedResetToTrack
	InfringementBlockingThePitlane
	InfringementJumpStart
	InfringementSafetyCarToCarCollision
	InfringementSafetyCarIllegalOvertake
	InfringementSafetyCarExceedingAllowedPace
	InfringementVirtualSafetyCarExceedingAllowedPace
	InfringementFormationLapBelowAllowedSpeed
	InfringementRetiredMechanicalFailure
	InfringementRetiredTerminallyDamaged
	InfringementSafetyCarFallingTooFarBack
	InfringementBlackFlagTimer
	InfringementUnservedStopGoPenalty
	InfringementUnservedDriveThroughPenalty
	InfringementEngineComponentChange
	InfringementGearboxChange
	InfringementLeagueGridPenalty
	InfringementRetryPenalty
	InfringementIllegalTimeGain
	InfringementMandatoryPitstop
)

func decodeEventData(h telemetry.Header, body []byte) (Event, error) {
	r := wire.NewReader(body)
	code := string(r.Bytes(4))

	var detail EventDetail
	switch code {
	case "SSTA":
		detail = &SessionStarted{}
	case "SEND":
		detail = &SessionEnded{}
	case "FTLP":
		detail = &FastestLap{VehicleIndex: r.U8(), LapTime: r.F32()}
	case "RTMT":
		detail = &Retirement{VehicleIndex: r.U8()}
	case "DRSE":
		detail = &DRSEnabled{}
	case "DRSD":
		detail = &DRSDisabled{}
	case "TMPT":
		detail = &TeamMateInPits{VehicleIndex: r.U8()}
	case "CHQF":
		detail = &ChequeredFlag{}
	case "RCWN":
		detail = &RaceWinner{VehicleIndex: r.U8()}
	case "PENA":
		detail = &Penalty{
			PenaltyType:       PenaltyType(r.U8()),
			InfringementType:  InfringementType(r.U8()),
			VehicleIndex:      r.U8(),
			OtherVehicleIndex: r.U8(),
			Time:              r.U8(),
			LapNumber:         r.U8(),
			PlacesGained:      r.U8(),
		}
	case "SPTP":
		detail = &SpeedTrap{VehicleIndex: r.U8(), Speed: r.F32()}
	default:
		detail = &UnknownEvent{Code: code}
	}

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return &EventData{Header: h, Detail: detail}, nil
}
