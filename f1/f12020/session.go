package f12020

import (
	"github.com/ozkar99/cm-telemetry/telemetry"
	"github.com/ozkar99/cm-telemetry/wire"
)

// Session describes the current session: weather, track, rules and the
// marshal zone and weather forecast tables.
type Session struct {
	Header                telemetry.Header
	Weather               Weather
	TrackTemperature      int8 // celsius
	AirTemperature        int8 // celsius
	TotalLaps             int8
	TrackLength           int16 // metres
	SessionType           SessionType
	Track                 Track
	Formula               Formula
	SessionTimeLeft       uint16 // seconds
	SessionDuration       uint16 // seconds
	PitSpeedLimit         uint8  // km/h
	GamePaused            uint8
	IsSpectating          uint8
	SpectatorCarIndex     uint8
	SLIProNativeSupport   uint8
	NumMarshalZones       uint8
	MarshalZones          [21]MarshalZone
	SafetyCarStatus       SafetyCarStatus
	NetworkGame           bool
	NumWeatherForecasts   uint8
	WeatherForecastSample [20]WeatherForecastSample
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
	SessionType      SessionType
	TimeOffset       uint8 // minutes the forecast is for
	Weather          Weather
	TrackTemperature int8 // celsius
	AirTemperature   int8 // celsius
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
)

// Formula is the racing series of the session.
type Formula uint8

const (
	FormulaF1Modern Formula = iota
	FormulaF1Classic
	FormulaF2
	FormulaF1Generic
)

// SafetyCarStatus reports the safety car deployment state.
type SafetyCarStatus uint8

const (
	SafetyCarNone SafetyCarStatus = iota
	SafetyCarFull
	SafetyCarVirtual
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

func decodeSession(h telemetry.Header, body []byte) (Event, error) {
	r := wire.NewReader(body)
	s := &Session{
		Header:              h,
		Weather:             Weather(r.U8()),
		TrackTemperature:    r.I8(),
		AirTemperature:      r.I8(),
		TotalLaps:           r.I8(),
		TrackLength:         r.I16(),
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
			SessionType:      SessionType(r.U8()),
			TimeOffset:       r.U8(),
			Weather:          Weather(r.U8()),
			TrackTemperature: r.I8(),
			AirTemperature:   r.I8(),
		}
	}

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return s, nil
}
