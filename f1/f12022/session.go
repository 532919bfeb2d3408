package f12022

import (
	"github.com/ozkar99/cm-telemetry/telemetry"
	"github.com/ozkar99/cm-telemetry/wire"
)

// Session describes the current session: weather, track, rules, assists and
// the marshal zone and weather forecast tables.
type Session struct {
	Header              telemetry.Header
	Weather             Weather
	TrackTemperature    int8 // celsius
	AirTemperature      int8 // celsius
	TotalLaps           uint8
	TrackLength         uint16 // metres
	SessionType         SessionType
	Track               Track
	Formula             Formula
	SessionTimeLeft     uint16 // seconds
	SessionDuration     uint16 // seconds
	PitSpeedLimit       uint8  // km/h
	GamePaused          uint8
	IsSpectating        uint8
	SpectatorCarIndex   uint8
	SLIProNativeSupport uint8
	NumMarshalZones     uint8
	MarshalZones        [21]MarshalZone
	SafetyCarStatus     SafetyCarStatus
	NetworkGame         bool

	NumWeatherForecasts   uint8
	WeatherForecastSample [56]WeatherForecastSample
	ForecastAccuracy      ForecastAccuracy

	AIDifficulty uint8 // 0-110

	// Link identifiers persist across saves for the same season, weekend
	// and session.
	SeasonLinkIdentifier  uint32
	WeekendLinkIdentifier uint32
	SessionLinkIdentifier uint32

	// Player pit strategy.
	PitStopWindowIdealLap  uint8
	PitStopWindowLatestLap uint8
	PitStopRejoinPosition  uint8

	SteeringAssist   bool
	BrakingAssist    BrakingAssist
	GearboxAssist    GearboxAssist
	PitAssist        bool
	PitReleaseAssist bool
	ERSAssist        bool
	DRSAssist        bool

	DynamicRacingLine     RacingLine
	DynamicRacingLineType RacingLineType

	GameMode      GameMode
	RuleSet       RuleSet
	TimeOfDay     uint32 // minutes since midnight
	SessionLength SessionLength
}

// CurrentWeatherForecast returns the most recent populated forecast sample.
func (s *Session) CurrentWeatherForecast() *WeatherForecastSample {
	i := int(s.NumWeatherForecasts)
	if i > 0 {
		i--
	}
	if i >= len(s.WeatherForecastSample) {
		i = len(s.WeatherForecastSample) - 1
	}
	return &s.WeatherForecastSample[i]
}

// MarshalZone is one track segment and the flag being waved in it.
type MarshalZone struct {
	ZoneStart float32 // fraction (0..1) of the lap where the zone starts
	ZoneFlag  ZoneFlag
}

// WeatherForecastSample is one entry of the session's weather forecast.
type WeatherForecastSample struct {
	SessionType            SessionType
	TimeOffset             uint8 // minutes the forecast is for
	Weather                Weather
	TrackTemperature       int8 // celsius
	TrackTemperatureChange TemperatureTrend
	AirTemperature         int8 // celsius
	AirTemperatureChange   TemperatureTrend
	RainPercentage         uint8 // 0-100
}

// Weather conditions.
type Weather uint8

const (
	WeatherClear Weather = iota
	WeatherLightCloud
	WeatherOvercast
	WeatherLightRain
	WeatherHeavyRain
	WeatherStorm
)

// SessionType identifies the kind of session in progress.
type SessionType uint8

const (
	SessionUnknown SessionType = iota
	SessionPractice1
	SessionPractice2
	SessionPractice3
	SessionShortPractice
	SessionQualifying1
	SessionQualifying2
	SessionQualifying3
	SessionShortQualifying
	SessionOneShotQualifying
	SessionRace
	SessionRace2
	SessionRace3
	SessionTimeTrial
)

// Track identifies the circuit, -1 when unknown.
type Track int8

const (
	TrackUnknown Track = iota - 1
	TrackMelbourne
	TrackPaulRicard
	TrackShanghai
	TrackSakhir
	TrackCatalunya
	TrackMonaco
	TrackMontreal
	TrackSilverstone
	TrackHockenheim
	TrackHungaroring
	TrackSpa
	TrackMonza
	TrackSingapore
	TrackSuzuka
	TrackAbuDhabi
	TrackTexas
	TrackBrazil
	TrackAustria
	TrackSochi
	TrackMexico
	TrackBaku
	TrackSakhirShort
	TrackSilverstoneShort
	TrackTexasShort
	TrackSuzukaShort
	TrackHanoi
	TrackZandvoort
	TrackImola
	TrackPortimao
	TrackJeddah
	TrackMiami
)

// Formula is the racing series of the session.
type Formula uint8

const (
	FormulaF1Modern Formula = iota
	FormulaF1Classic
	FormulaF2
	FormulaF1Generic
	FormulaBeta
	FormulaSupercars
	FormulaEsports
	FormulaF22021
)

// SafetyCarStatus reports the safety car deployment state.
type SafetyCarStatus uint8

const (
	SafetyCarNone SafetyCarStatus = iota
	SafetyCarFull
	SafetyCarVirtual
	SafetyCarFormationLap
)

// ZoneFlag is the flag shown in a marshal zone, -1 when invalid/unknown.
type ZoneFlag int8

const (
	ZoneFlagUnknown ZoneFlag = iota - 1
	ZoneFlagNone
	ZoneFlagGreen
	ZoneFlagBlue
	ZoneFlagYellow
	ZoneFlagRed
)

// TemperatureTrend is the direction a forecast temperature is moving in,
// -1 when unknown.
type TemperatureTrend int8

const (
	TemperatureTrendUnknown TemperatureTrend = iota - 1
	TemperatureUp
	TemperatureDown
	TemperatureNoChange
)

// ForecastAccuracy is how reliable the weather forecast table is.
type ForecastAccuracy uint8

const (
	ForecastPerfect ForecastAccuracy = iota
	ForecastApproximate
)

// BrakingAssist level.
type BrakingAssist uint8

const (
	BrakingAssistOff BrakingAssist = iota
	BrakingAssistLow
	BrakingAssistMedium
	BrakingAssistHigh
)

// GearboxAssist mode.
type GearboxAssist uint8

const (
	GearboxManual GearboxAssist = iota + 1
	GearboxManualSuggested
	GearboxAuto
)

// RacingLine is the dynamic racing line assist level.
type RacingLine uint8

const (
	RacingLineOff RacingLine = iota
	RacingLineCornersOnly
	RacingLineFull
)

// RacingLineType is how the racing line is drawn.
type RacingLineType uint8

const (
	RacingLine2D RacingLineType = iota
	RacingLine3D
)

// GameMode identifies the mode the session is running under, from the
// game's appendix.
type GameMode uint8

const (
	GameModeEvent                    GameMode = 0
	GameModeGrandPrix                GameMode = 3
	GameModeTimeTrial                GameMode = 5
	GameModeSplitscreen              GameMode = 6
	GameModeOnlineCustom             GameMode = 7
	GameModeOnlineLeague             GameMode = 8
	GameModeCareerInvitational       GameMode = 11
	GameModeChampionshipInvitational GameMode = 12
	GameModeChampionship             GameMode = 13
	GameModeOnlineChampionship       GameMode = 14
	GameModeOnlineWeeklyEvent        GameMode = 15
	GameModeCareer22                 GameMode = 19
	GameModeCareer22Online           GameMode = 20
	GameModeBenchmark                GameMode = 127
)

// RuleSet identifies the rules the session is run under.
type RuleSet uint8

const (
	RuleSetPracticeAndQualifying RuleSet = 0
	RuleSetRace                  RuleSet = 1
	RuleSetTimeTrial             RuleSet = 2
	RuleSetTimeAttack            RuleSet = 4
	RuleSetCheckpointChallenge   RuleSet = 6
	RuleSetAutocross             RuleSet = 8
	RuleSetDrift                 RuleSet = 9
	RuleSetAverageSpeedZone      RuleSet = 10
	RuleSetRivalDuel             RuleSet = 11
)

// SessionLength is the configured session length.
type SessionLength uint8

const (
	SessionLengthNone       SessionLength = 0
	SessionLengthVeryShort  SessionLength = 2
	SessionLengthShort      SessionLength = 3
	SessionLengthMedium     SessionLength = 4
	SessionLengthMediumLong SessionLength = 5
	SessionLengthLong       SessionLength = 6
	SessionLengthFull       SessionLength = 7
)

func decodeSession(h telemetry.Header, body []byte) (Event, error) {
	r := wire.NewReader(body)
	s := &Session{
		Header:              h,
		Weather:             Weather(r.U8()),
		TrackTemperature:    r.I8(),
		AirTemperature:      r.I8(),
		TotalLaps:           r.U8(),
		TrackLength:         r.U16(),
		SessionType:         SessionType(r.U8()),
		Track:               Track(r.I8()),
		Formula:             Formula(r.U8()),
		SessionTimeLeft:     r.U16(),
		SessionDuration:     r.U16(),
		PitSpeedLimit:       r.U8(),
		GamePaused:          r.U8(),
		IsSpectating:        r.U8(),
		SpectatorCarIndex:   r.U8(),
		SLIProNativeSupport: r.U8(),
		NumMarshalZones:     r.U8(),
	}
	for i := range s.MarshalZones {
		s.MarshalZones[i] = MarshalZone{
			ZoneStart: r.F32(),
			ZoneFlag:  ZoneFlag(r.I8()),
		}
	}
	s.SafetyCarStatus = SafetyCarStatus(r.U8())
	s.NetworkGame = r.Bool()
	s.NumWeatherForecasts = r.U8()
	for i := range s.WeatherForecastSample {
		s.WeatherForecastSample[i] = WeatherForecastSample{
			SessionType:            SessionType(r.U8()),
			TimeOffset:             r.U8(),
			Weather:                Weather(r.U8()),
			TrackTemperature:       r.I8(),
			TrackTemperatureChange: TemperatureTrend(r.I8()),
			AirTemperature:         r.I8(),
			AirTemperatureChange:   TemperatureTrend(r.I8()),
			RainPercentage:         r.U8(),
		}
	}
	s.ForecastAccuracy = ForecastAccuracy(r.U8())
	s.AIDifficulty = r.U8()
	s.SeasonLinkIdentifier = r.U32()
	s.WeekendLinkIdentifier = r.U32()
	s.SessionLinkIdentifier = r.U32()
	s.PitStopWindowIdealLap = r.U8()
	s.PitStopWindowLatestLap = r.U8()
	s.PitStopRejoinPosition = r.U8()
	s.SteeringAssist = r.Bool()
	s.BrakingAssist = BrakingAssist(r.U8())
	s.GearboxAssist = GearboxAssist(r.U8())
	s.PitAssist = r.Bool()
	s.PitReleaseAssist = r.Bool()
	s.ERSAssist = r.Bool()
	s.DRSAssist = r.Bool()
	s.DynamicRacingLine = RacingLine(r.U8())
	s.DynamicRacingLineType = RacingLineType(r.U8())
	s.GameMode = GameMode(r.U8())
	s.RuleSet = RuleSet(r.U8())
	s.TimeOfDay = r.U32()
	s.SessionLength = SessionLength(r.U8())

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return s, nil
}
