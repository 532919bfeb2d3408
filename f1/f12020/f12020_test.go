package f12020

import (
	"encoding/binary"
	"errors"
	"math"
	"net"
	"testing"
	"time"

	"github.com/ozkar99/cm-telemetry/telemetry"
)

// Body sizes of each packet id, derived from the wire layout. The official
// packet sizes are these plus the 24-byte header.
const (
	motionBodySize              = NumCars*60 + 120
	sessionBodySize             = 19 + 21*5 + 3 + 20*5
	lapDataBodySize             = NumCars * 53
	participantsBodySize        = 1 + NumCars*54
	carSetupsBodySize           = NumCars * 49
	carTelemetryBodySize        = NumCars*58 + 7
	carStatusBodySize           = NumCars * 60
	finalClassificationBodySize = 1 + NumCars*37
	lobbyInfoBodySize           = 1 + NumCars*52
)

// fixture builds little-endian packet bytes field by field.
type fixture struct {
	buf []byte
}

func (f *fixture) u8(v uint8)    { f.buf = append(f.buf, v) }
func (f *fixture) i8(v int8)     { f.buf = append(f.buf, byte(v)) }
func (f *fixture) u16(v uint16)  { f.buf = binary.LittleEndian.AppendUint16(f.buf, v) }
func (f *fixture) u32(v uint32)  { f.buf = binary.LittleEndian.AppendUint32(f.buf, v) }
func (f *fixture) f32(v float32) { f.u32(math.Float32bits(v)) }
func (f *fixture) f64(v float64) { f.buf = binary.LittleEndian.AppendUint64(f.buf, math.Float64bits(v)) }
func (f *fixture) raw(b []byte)  { f.buf = append(f.buf, b...) }
func (f *fixture) pad(n int)     { f.buf = append(f.buf, make([]byte, n)...) }

// header appends a 24-byte F1 2020 header for the given packet id.
func (f *fixture) header(packetID, playerCarIndex uint8) {
	f.u16(FormatConstant)
	f.u8(1)   // game major
	f.u8(18)  // game minor
	f.u8(1)   // packet version
	f.u8(packetID)
	f.buf = binary.LittleEndian.AppendUint64(f.buf, 0xDEADBEEF)
	f.f32(42.5) // session time
	f.u32(1000) // frame identifier
	f.u8(playerCarIndex)
	f.u8(255) // no secondary player
}

// name appends a NUL-padded 48-byte participant name field.
func (f *fixture) name(s string) {
	field := make([]byte, nameLen)
	copy(field, s)
	f.raw(field)
}

func decode(t *testing.T, datagram []byte) Event {
	t.Helper()

	ev, err := Protocol().Decode(datagram)
	if err != nil {
		t.Fatalf("Decode() error = %v, expected nil", err)
	}
	return ev
}

func TestDecodeCarTelemetry(t *testing.T) {
	var f fixture
	f.header(PacketCarTelemetry, 0)

	// Car 0 carries known values, the rest stay zero.
	f.u16(287)     // speed
	f.f32(0.95)    // throttle
	f.f32(-0.25)   // steer
	f.f32(0)       // brake
	f.u8(0)        // clutch
	f.i8(7)        // gear
	f.u16(11500)   // engine rpm
	f.u8(1)        // drs open
	f.u8(80)       // rev lights percent
	for i := 0; i < 4; i++ {
		f.u16(450) // brake temps
	}
	f.pad(4 + 4) // tyre surface and inner temps
	f.u16(105)   // engine temp
	for i := 0; i < 4; i++ {
		f.f32(21.5) // tyre pressures
	}
	f.raw([]byte{0, 0, 4, 4}) // surfaces: tarmac rears, gravel fronts
	f.pad((NumCars - 1) * 58)

	f.u32(0x00000011) // button status
	f.u8(255)         // mfd closed
	f.u8(255)
	f.i8(0) // no suggested gear

	ev := decode(t, f.buf)
	c, ok := ev.(*CarTelemetry)
	if !ok {
		t.Fatalf("Decode() = %T, expected *CarTelemetry", ev)
	}

	player := c.PlayerData()
	if player == nil {
		t.Fatal("PlayerData() = nil, expected car 0")
	}
	if player.Speed != 287 {
		t.Errorf("Speed = %d, expected 287", player.Speed)
	}
	if player.Throttle != 0.95 {
		t.Errorf("Throttle = %v, expected 0.95", player.Throttle)
	}
	if player.Steer != -0.25 {
		t.Errorf("Steer = %v, expected -0.25", player.Steer)
	}
	if player.Gear != Gear7 {
		t.Errorf("Gear = %d, expected Gear7", player.Gear)
	}
	if !player.DRS {
		t.Error("DRS = false, expected true")
	}
	if player.BrakeTemp.FrontLeft != 450 {
		t.Errorf("BrakeTemp.FrontLeft = %d, expected 450", player.BrakeTemp.FrontLeft)
	}
	if player.TyrePressure.RearRight != 21.5 {
		t.Errorf("TyrePressure.RearRight = %v, expected 21.5", player.TyrePressure.RearRight)
	}
	if player.SurfaceType.FrontLeft != SurfaceGravel || player.SurfaceType.RearLeft != SurfaceTarmac {
		t.Errorf("SurfaceType = %+v, expected gravel fronts and tarmac rears", player.SurfaceType)
	}
	if c.ButtonStatus != 0x11 {
		t.Errorf("ButtonStatus = %#x, expected 0x11", c.ButtonStatus)
	}
	if c.MFDPanel != MFDClosed {
		t.Errorf("MFDPanel = %d, expected MFDClosed", c.MFDPanel)
	}
	if c.SuggestedGear != GearNeutral {
		t.Errorf("SuggestedGear = %d, expected GearNeutral", c.SuggestedGear)
	}
}

func TestDecodeSession(t *testing.T) {
	var f fixture
	f.header(PacketSession, 0)

	f.u8(uint8(WeatherLightRain))
	f.i8(24)   // track temp
	f.i8(19)   // air temp
	f.i8(52)   // total laps
	f.u16(5303) // track length
	f.u8(uint8(SessionRace))
	f.i8(int8(TrackZandvoort))
	f.u8(uint8(FormulaF1Modern))
	f.u16(3600) // time left
	f.u16(7200) // duration
	f.u8(80)    // pit speed limit
	f.u8(0)     // not paused
	f.u8(0)     // not spectating
	f.u8(255)   // spectator car index
	f.u8(0)     // sli pro
	f.u8(2)     // marshal zones in use
	f.f32(0.1)  // zone 0
	f.i8(int8(ZoneFlagYellow))
	f.f32(0.6) // zone 1
	f.i8(int8(ZoneFlagGreen))
	f.pad((21 - 2) * 5)
	f.u8(uint8(SafetyCarVirtual))
	f.u8(1) // network game
	f.u8(1) // one forecast sample
	f.u8(uint8(SessionRace))
	f.u8(30) // in 30 minutes
	f.u8(uint8(WeatherStorm))
	f.i8(22)
	f.i8(17)
	f.pad((20 - 1) * 5)

	ev := decode(t, f.buf)
	s, ok := ev.(*Session)
	if !ok {
		t.Fatalf("Decode() = %T, expected *Session", ev)
	}

	if s.Weather != WeatherLightRain {
		t.Errorf("Weather = %d, expected WeatherLightRain", s.Weather)
	}
	if s.Track != TrackZandvoort {
		t.Errorf("Track = %d, expected TrackZandvoort", s.Track)
	}
	if s.TrackLength != 5303 {
		t.Errorf("TrackLength = %d, expected 5303", s.TrackLength)
	}
	if s.MarshalZones[0].ZoneFlag != ZoneFlagYellow {
		t.Errorf("MarshalZones[0].ZoneFlag = %d, expected ZoneFlagYellow", s.MarshalZones[0].ZoneFlag)
	}
	if s.SafetyCarStatus != SafetyCarVirtual {
		t.Errorf("SafetyCarStatus = %d, expected SafetyCarVirtual", s.SafetyCarStatus)
	}
	if !s.NetworkGame {
		t.Error("NetworkGame = false, expected true")
	}

	forecast := s.CurrentWeatherForecast()
	if forecast.Weather != WeatherStorm || forecast.TimeOffset != 30 {
		t.Errorf("CurrentWeatherForecast() = %+v, expected storm in 30 minutes", forecast)
	}
}

func TestDecodeLapData(t *testing.T) {
	var f fixture
	f.header(PacketLapData, 1)

	f.pad(53) // car 0 stays zero

	// Car 1 is the player.
	f.f32(92.337) // last lap
	f.f32(14.5)   // current lap
	f.u16(28100)  // sector 1 ms
	f.u16(31950)  // sector 2 ms
	f.f32(91.255) // best lap
	f.u8(3)       // best lap number
	f.u16(28000)
	f.u16(31700)
	f.u16(31555)
	f.u16(27900) // best overall s1
	f.u8(5)
	f.u16(31650) // best overall s2
	f.u8(4)
	f.u16(31400) // best overall s3
	f.u8(5)
	f.f32(820.25)  // lap distance
	f.f32(25120.5) // total distance
	f.f32(0)       // safety car delta
	f.u8(3)        // position
	f.u8(6)        // current lap number
	f.u8(uint8(PitStatusNone))
	f.u8(uint8(Sector1))
	f.u8(0) // lap valid
	f.u8(0) // penalties
	f.u8(5) // grid position
	f.u8(uint8(DriverFlyingLap))
	f.u8(uint8(ResultActive))

	f.pad((NumCars - 2) * 53)

	ev := decode(t, f.buf)
	l, ok := ev.(*LapData)
	if !ok {
		t.Fatalf("Decode() = %T, expected *LapData", ev)
	}

	player := l.PlayerData()
	if player == nil {
		t.Fatal("PlayerData() = nil, expected car 1")
	}
	if player.LastLapTime != 92.337 {
		t.Errorf("LastLapTime = %v, expected 92.337", player.LastLapTime)
	}
	if player.Sector2TimeMS != 31950 {
		t.Errorf("Sector2TimeMS = %d, expected 31950", player.Sector2TimeMS)
	}
	if player.BestOverallSector1 != (BestOverallSectorTime{SectorTimeMS: 27900, LapNumber: 5}) {
		t.Errorf("BestOverallSector1 = %+v, expected 27900ms on lap 5", player.BestOverallSector1)
	}
	if player.CarPosition != 3 {
		t.Errorf("CarPosition = %d, expected 3", player.CarPosition)
	}
	if player.DriverStatus != DriverFlyingLap {
		t.Errorf("DriverStatus = %d, expected DriverFlyingLap", player.DriverStatus)
	}
	if player.CurrentLapInvalid {
		t.Error("CurrentLapInvalid = true, expected false")
	}
}

func TestDecodeEventData(t *testing.T) {
	tests := []struct {
		name     string
		build    func(f *fixture)
		validate func(t *testing.T, detail EventDetail)
	}{
		{
			name:  "session started",
			build: func(f *fixture) { f.raw([]byte("SSTA")) },
			validate: func(t *testing.T, detail EventDetail) {
				if _, ok := detail.(*SessionStarted); !ok {
					t.Errorf("Detail = %T, expected *SessionStarted", detail)
				}
			},
		},
		{
			name: "fastest lap",
			build: func(f *fixture) {
				f.raw([]byte("FTLP"))
				f.u8(14)
				f.f32(90.125)
			},
			validate: func(t *testing.T, detail EventDetail) {
				ftlp, ok := detail.(*FastestLap)
				if !ok {
					t.Fatalf("Detail = %T, expected *FastestLap", detail)
				}
				if ftlp.VehicleIndex != 14 || ftlp.LapTime != 90.125 {
					t.Errorf("FastestLap = %+v, expected car 14 at 90.125s", ftlp)
				}
			},
		},
		{
			name: "penalty",
			build: func(f *fixture) {
				f.raw([]byte("PENA"))
				f.u8(uint8(PenaltyTime))
				f.u8(uint8(InfringementCornerCuttingGainedTime))
				f.u8(3)  // vehicle
				f.u8(255) // no other vehicle
				f.u8(5)  // seconds
				f.u8(12) // lap
				f.u8(1)  // places gained
			},
			validate: func(t *testing.T, detail EventDetail) {
				pen, ok := detail.(*Penalty)
				if !ok {
					t.Fatalf("Detail = %T, expected *Penalty", detail)
				}
				if pen.PenaltyType != PenaltyTime {
					t.Errorf("PenaltyType = %d, expected PenaltyTime", pen.PenaltyType)
				}
				if pen.InfringementType != InfringementCornerCuttingGainedTime {
					t.Errorf("InfringementType = %d, expected corner cutting", pen.InfringementType)
				}
				if pen.VehicleIndex != 3 || pen.Time != 5 {
					t.Errorf("Penalty = %+v, expected car 3 with 5s", pen)
				}
			},
		},
		{
			name: "speed trap",
			build: func(f *fixture) {
				f.raw([]byte("SPTP"))
				f.u8(7)
				f.f32(322.8)
			},
			validate: func(t *testing.T, detail EventDetail) {
				trap, ok := detail.(*SpeedTrap)
				if !ok {
					t.Fatalf("Detail = %T, expected *SpeedTrap", detail)
				}
				if trap.VehicleIndex != 7 || trap.Speed != 322.8 {
					t.Errorf("SpeedTrap = %+v, expected car 7 at 322.8", trap)
				}
			},
		},
		{
			name:  "unrecognised code survives",
			build: func(f *fixture) { f.raw([]byte("ZZZZ")) },
			validate: func(t *testing.T, detail EventDetail) {
				unknown, ok := detail.(*UnknownEvent)
				if !ok {
					t.Fatalf("Detail = %T, expected *UnknownEvent", detail)
				}
				if unknown.Code != "ZZZZ" {
					t.Errorf("Code = %q, expected ZZZZ", unknown.Code)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f fixture
			f.header(PacketEvent, 0)
			tt.build(&f)

			ev := decode(t, f.buf)
			e, ok := ev.(*EventData)
			if !ok {
				t.Fatalf("Decode() = %T, expected *EventData", ev)
			}
			tt.validate(t, e.Detail)
		})
	}
}

func TestDecodeParticipants(t *testing.T) {
	var f fixture
	f.header(PacketParticipants, 0)
	f.u8(20) // active cars

	// Car 0: the human player, telemetry public.
	f.u8(0) // not AI
	f.u8(uint8(DriverUnknown))
	f.u8(uint8(TeamMercedes))
	f.u8(44)
	f.u8(uint8(NationalityBritish))
	f.name("HAMILTON")
	f.u8(1) // telemetry public

	// Car 1: an AI driver, telemetry restricted flag zero.
	f.u8(1)
	f.u8(uint8(DriverMaxVerstappen))
	f.u8(uint8(TeamRedBullRacing))
	f.u8(33)
	f.u8(uint8(NationalityDutch))
	f.name("VERSTAPPEN")
	f.u8(0)

	f.pad((NumCars - 2) * 54)

	ev := decode(t, f.buf)
	p, ok := ev.(*Participants)
	if !ok {
		t.Fatalf("Decode() = %T, expected *Participants", ev)
	}

	if p.NumActiveCars != 20 {
		t.Errorf("NumActiveCars = %d, expected 20", p.NumActiveCars)
	}
	if p.Cars[0].Name != "HAMILTON" {
		t.Errorf("Cars[0].Name = %q, expected HAMILTON", p.Cars[0].Name)
	}
	if p.Cars[0].AIControlled {
		t.Error("Cars[0].AIControlled = true, expected false")
	}
	if p.Cars[0].TelemetryRestricted {
		t.Error("Cars[0].TelemetryRestricted = true, expected false")
	}
	if p.Cars[1].Driver != DriverMaxVerstappen {
		t.Errorf("Cars[1].Driver = %d, expected DriverMaxVerstappen", p.Cars[1].Driver)
	}
	if !p.Cars[1].TelemetryRestricted {
		t.Error("Cars[1].TelemetryRestricted = false, expected true")
	}
}

func TestDecodeFinalClassification(t *testing.T) {
	var f fixture
	f.header(PacketFinalClassification, 0)
	f.u8(20) // classified cars

	// Car 0: the winner.
	f.u8(1)  // position
	f.u8(52) // laps
	f.u8(2)  // grid
	f.u8(26) // points
	f.u8(2)  // pit stops
	f.u8(uint8(ResultFinished))
	f.f32(89.731)    // best lap
	f.f64(5205.762)  // total race time
	f.u8(0)          // penalty seconds
	f.u8(0)          // penalty count
	f.u8(3)          // tyre stints
	f.raw([]byte{byte(TyreCompoundC3), byte(TyreCompoundC2), byte(TyreCompoundC3), 0, 0, 0, 0, 0})
	f.raw([]byte{byte(TyreVisualSoft), byte(TyreVisualMedium), byte(TyreVisualSoft), 0, 0, 0, 0, 0})

	f.pad((NumCars - 1) * 37)

	ev := decode(t, f.buf)
	fc, ok := ev.(*FinalClassification)
	if !ok {
		t.Fatalf("Decode() = %T, expected *FinalClassification", ev)
	}

	if fc.NumCars != 20 {
		t.Errorf("NumCars = %d, expected 20", fc.NumCars)
	}
	winner := fc.Cars[0]
	if winner.Position != 1 || winner.ResultStatus != ResultFinished {
		t.Errorf("Cars[0] = %+v, expected a finished winner", winner)
	}
	if winner.BestLapTime != 89.731 {
		t.Errorf("BestLapTime = %v, expected 89.731", winner.BestLapTime)
	}
	if winner.TotalRaceTime != 5205.762 {
		t.Errorf("TotalRaceTime = %v, expected 5205.762", winner.TotalRaceTime)
	}
	if winner.TyreStintsVisual[1] != TyreVisualMedium {
		t.Errorf("TyreStintsVisual[1] = %d, expected TyreVisualMedium", winner.TyreStintsVisual[1])
	}
}

func TestDecodeLobbyInfo(t *testing.T) {
	var f fixture
	f.header(PacketLobbyInfo, 0)
	f.u8(2)

	f.u8(0) // human
	f.u8(uint8(TeamMyTeam))
	f.u8(uint8(NationalityMexican))
	f.name("CHECO")
	f.u8(uint8(LobbyReady))

	f.u8(0)
	f.u8(uint8(TeamFerrari))
	f.u8(uint8(NationalityMonegasque))
	f.name("LECLERC")
	f.u8(uint8(LobbyNotReady))

	f.pad((NumCars - 2) * 52)

	ev := decode(t, f.buf)
	l, ok := ev.(*LobbyInfo)
	if !ok {
		t.Fatalf("Decode() = %T, expected *LobbyInfo", ev)
	}

	players := l.Players()
	if len(players) != 2 {
		t.Fatalf("Players() returned %d entries, expected 2", len(players))
	}
	if players[0].Name != "CHECO" || players[0].Status != LobbyReady {
		t.Errorf("Players()[0] = %+v, expected CHECO ready", players[0])
	}
	if players[1].Team != TeamFerrari {
		t.Errorf("Players()[1].Team = %d, expected TeamFerrari", players[1].Team)
	}
}

func TestDecodeMotion(t *testing.T) {
	var f fixture
	f.header(PacketMotion, 0)

	f.f32(100.5) // car 0 world x
	f.f32(2.25)  // y
	f.f32(-300)  // z
	f.pad(60 - 12)
	f.pad((NumCars - 1) * 60)
	f.pad(120) // player-only trailer

	ev := decode(t, f.buf)
	m, ok := ev.(*Motion)
	if !ok {
		t.Fatalf("Decode() = %T, expected *Motion", ev)
	}

	pos := m.Cars[0].WorldPosition
	if pos.X != 100.5 || pos.Y != 2.25 || pos.Z != -300 {
		t.Errorf("WorldPosition = %+v, expected {100.5 2.25 -300}", pos)
	}
}

func TestDecodeTruncatedPayloads(t *testing.T) {
	tests := []struct {
		name     string
		packetID uint8
		bodySize int
	}{
		{"motion", PacketMotion, motionBodySize},
		{"session", PacketSession, sessionBodySize},
		{"lap data", PacketLapData, lapDataBodySize},
		{"participants", PacketParticipants, participantsBodySize},
		{"car setups", PacketCarSetups, carSetupsBodySize},
		{"car telemetry", PacketCarTelemetry, carTelemetryBodySize},
		{"car status", PacketCarStatus, carStatusBodySize},
		{"final classification", PacketFinalClassification, finalClassificationBodySize},
		{"lobby info", PacketLobbyInfo, lobbyInfoBodySize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var full fixture
			full.header(tt.packetID, 0)
			full.pad(tt.bodySize)

			// The exact size decodes; one byte short must not.
			if _, err := Protocol().Decode(full.buf); err != nil {
				t.Errorf("Decode() with full body: error = %v, expected nil", err)
			}
			_, err := Protocol().Decode(full.buf[:len(full.buf)-1])
			if !errors.Is(err, telemetry.ErrTruncatedPayload) {
				t.Errorf("Decode() one byte short: error = %v, expected ErrTruncatedPayload", err)
			}
		})
	}
}

func TestDecodeTruncatedEvent(t *testing.T) {
	var f fixture
	f.header(PacketEvent, 0)
	f.raw([]byte("FTL")) // incomplete code

	_, err := Protocol().Decode(f.buf)
	if !errors.Is(err, telemetry.ErrTruncatedPayload) {
		t.Errorf("Decode() error = %v, expected ErrTruncatedPayload", err)
	}
}

func TestDecodeUnknownPacketID(t *testing.T) {
	var f fixture
	f.header(12, 0) // beyond the 2020 id range
	f.pad(8)

	_, err := Protocol().Decode(f.buf)

	var unknown *telemetry.UnknownPacketIDError
	if !errors.As(err, &unknown) {
		t.Fatalf("Decode() error = %v, expected *UnknownPacketIDError", err)
	}
	if unknown.ID != 12 {
		t.Errorf("unknown.ID = %d, expected 12", unknown.ID)
	}
	if unknown.Header.SessionUID != 0xDEADBEEF {
		t.Errorf("unknown.Header.SessionUID = %#x, expected 0xdeadbeef", unknown.Header.SessionUID)
	}
}

func TestDecodeFormatMismatch(t *testing.T) {
	var f fixture
	f.header(PacketEvent, 0)
	binary.LittleEndian.PutUint16(f.buf[0:], 2022)
	f.raw([]byte("SSTA"))

	_, err := Protocol().Decode(f.buf)

	var unsupported *telemetry.UnsupportedVersionError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Decode() error = %v, expected *UnsupportedVersionError", err)
	}
	if unsupported.Got != 2022 || unsupported.Want != FormatConstant {
		t.Errorf("got/want = %d/%d, expected 2022/%d", unsupported.Got, unsupported.Want, FormatConstant)
	}
}

func TestPlayerDataOutOfRange(t *testing.T) {
	var f fixture
	f.header(PacketCarTelemetry, 255) // spectating, no player car
	f.pad(carTelemetryBodySize)

	ev := decode(t, f.buf)
	c := ev.(*CarTelemetry)
	if got := c.PlayerData(); got != nil {
		t.Errorf("PlayerData() = %v, expected nil for index 255", got)
	}
}

func TestListenEndToEnd(t *testing.T) {
	srv, err := Listen("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	defer srv.Close()

	sender, err := net.DialUDP("udp", nil, srv.LocalAddr().(*net.UDPAddr))
	if err != nil {
		t.Fatalf("DialUDP() error = %v", err)
	}
	defer sender.Close()

	var f fixture
	f.header(PacketEvent, 0)
	f.raw([]byte("CHQF"))
	if _, err := sender.Write(f.buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	srv.SetReadDeadline(time.Now().Add(5 * time.Second))
	ev, err := srv.Next()
	if err != nil {
		t.Fatalf("Next() error = %v, expected nil", err)
	}
	e, ok := ev.(*EventData)
	if !ok {
		t.Fatalf("Next() = %T, expected *EventData", ev)
	}
	if _, ok := e.Detail.(*ChequeredFlag); !ok {
		t.Errorf("Detail = %T, expected *ChequeredFlag", e.Detail)
	}
}
