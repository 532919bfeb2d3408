package f12022

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
	VehicleIndex              uint8
	Speed                     float32 // km/h
	IsOverallFastestInSession bool
	IsDriverFastestInSession  bool
	FastestVehicleInSession   uint8
	FastestSpeedInSession     float32 // km/h
}

// StartLights signals "STLG": the number of start lights currently showing.
type StartLights struct {
	NumLights uint8
}

// LightsOut signals "LGOT": the start lights have gone out.
type LightsOut struct{}

// DriveThroughServed signals "DTSV".
type DriveThroughServed struct {
	VehicleIndex uint8
}

// StopGoServed signals "SGSV".
type StopGoServed struct {
	VehicleIndex uint8
}

// Flashback signals "FLBK": the player used a flashback.
type Flashback struct {
	FrameIdentifier uint32  // frame flashed back to
	SessionTime     float32 // session time flashed back to, seconds
}

// ButtonStatus signals "BUTN": the player pressed or released buttons.
type ButtonStatus struct {
	Buttons ButtonFlags
}

// UnknownEvent carries an event code this package does not recognise.
type UnknownEvent struct {
	Code string
}

func (*SessionStarted) isEventDetail()     {}
func (*SessionEnded) isEventDetail()       {}
func (*FastestLap) isEventDetail()         {}
func (*Retirement) isEventDetail()         {}
func (*DRSEnabled) isEventDetail()         {}
func (*DRSDisabled) isEventDetail()        {}
func (*TeamMateInPits) isEventDetail()     {}
func (*ChequeredFlag) isEventDetail()      {}
func (*RaceWinner) isEventDetail()         {}
func (*Penalty) isEventDetail()            {}
func (*SpeedTrap) isEventDetail()          {}
func (*StartLights) isEventDetail()        {}
func (*LightsOut) isEventDetail()          {}
func (*DriveThroughServed) isEventDetail() {}
func (*StopGoServed) isEventDetail()       {}
func (*Flashback) isEventDetail()          {}
func (*ButtonStatus) isEventDetail()       {}
func (*UnknownEvent) isEventDetail()       {}

// ButtonFlags is the bit mask of controller buttons held down.
type ButtonFlags uint32

const (
	ButtonCrossOrA        ButtonFlags = 0x00000001
	ButtonTriangleOrY     ButtonFlags = 0x00000002
	ButtonCircleOrB       ButtonFlags = 0x00000004
	ButtonSquareOrX       ButtonFlags = 0x00000008
	ButtonDPadLeft        ButtonFlags = 0x00000010
	ButtonDPadRight       ButtonFlags = 0x00000020
	ButtonDPadUp          ButtonFlags = 0x00000040
	ButtonDPadDown        ButtonFlags = 0x00000080
	ButtonOptionsOrMenu   ButtonFlags = 0x00000100
	ButtonL1OrLB          ButtonFlags = 0x00000200
	ButtonR1OrRB          ButtonFlags = 0x00000400
	ButtonL2OrLT          ButtonFlags = 0x00000800
	ButtonR2OrRT          ButtonFlags = 0x00001000
	ButtonLeftStickClick  ButtonFlags = 0x00002000
	ButtonRightStickClick ButtonFlags = 0x00004000
	ButtonRightStickLeft  ButtonFlags = 0x00008000
	ButtonRightStickRight ButtonFlags = 0x00010000
	ButtonRightStickUp    ButtonFlags = 0x00020000
	ButtonRightStickDown  ButtonFlags = 0x00040000
	ButtonSpecial         ButtonFlags = 0x00080000
	ButtonUDPAction1      ButtonFlags = 0x00100000
	ButtonUDPAction2      ButtonFlags = 0x00200000
	ButtonUDPAction3      ButtonFlags = 0x00400000
	ButtonUDPAction4      ButtonFlags = 0x00800000
	ButtonUDPAction5      ButtonFlags = 0x01000000
	ButtonUDPAction6      ButtonFlags = 0x02000000
	ButtonUDPAction7      ButtonFlags = 0x04000000
	ButtonUDPAction8      ButtonFlags = 0x08000000
	ButtonUDPAction9      ButtonFlags = 0x10000000
	ButtonUDPAction10     ButtonFlags = 0x20000000
	ButtonUDPAction11     ButtonFlags = 0x40000000
	ButtonUDPAction12     ButtonFlags = 0x80000000
)

// Has reports whether every bit of mask is set.
func (b ButtonFlags) Has(mask ButtonFlags) bool {
	return b&mask == mask
}

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
	InfringementFormationLapParking
	InfringementRetiredMechanicalFailure
	InfringementRetiredTerminallyDamaged
	InfringementSafetyCarFallingTooFarBack
	InfringementBlackFlagTimer
	InfringementUnservedStopGoPenalty
	InfringementUnservedDriveThroughPenalty
	InfringementEngineComponentChange
	InfringementGearboxChange
	InfringementParcFermeChange
	InfringementLeagueGridPenalty
	InfringementRetryPenalty
	InfringementIllegalTimeGain
	InfringementMandatoryPitstop
	InfringementAttributeAssigned
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
		detail = &SpeedTrap{
			VehicleIndex:              r.U8(),
			Speed:                     r.F32(),
			IsOverallFastestInSession: r.Bool(),
			IsDriverFastestInSession:  r.Bool(),
			FastestVehicleInSession:   r.U8(),
			FastestSpeedInSession:     r.F32(),
		}
	case "STLG":
		detail = &StartLights{NumLights: r.U8()}
	case "LGOT":
		detail = &LightsOut{}
	case "DTSV":
		detail = &DriveThroughServed{VehicleIndex: r.U8()}
	case "SGSV":
		detail = &StopGoServed{VehicleIndex: r.U8()}
	case "FLBK":
		detail = &Flashback{FrameIdentifier: r.U32(), SessionTime: r.F32()}
	case "BUTN":
		detail = &ButtonStatus{Buttons: ButtonFlags(r.U32())}
	default:
		detail = &UnknownEvent{Code: code}
	}

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return &EventData{Header: h, Detail: detail}, nil
}
