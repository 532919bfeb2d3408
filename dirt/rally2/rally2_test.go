package rally2

import (
	"encoding/binary"
	"errors"
	"math"
	"net"
	"testing"
	"time"
)

// fixture is a full-size zeroed datagram with f32 fields set by offset.
type fixture struct {
	buf []byte
}

func newFixture() *fixture {
	return &fixture{buf: make([]byte, 264)} // extradata="3" datagram size
}

func (f *fixture) f32(offset int, v float32) {
	binary.LittleEndian.PutUint32(f.buf[offset:], math.Float32bits(v))
}

func decode(t *testing.T, datagram []byte) *Telemetry {
	t.Helper()

	tel, err := Protocol().Decode(datagram)
	if err != nil {
		t.Fatalf("Decode() error = %v, expected nil", err)
	}
	return tel
}

func TestDecodeTelemetry(t *testing.T) {
	f := newFixture()
	f.f32(0, 754.25)    // total time
	f.f32(4, 92.5)      // lap time
	f.f32(8, 2104.0)    // lap distance
	f.f32(12, 9870.5)   // total distance
	f.f32(16, -411.25)  // world position x
	f.f32(20, 23.5)     // world position y
	f.f32(24, 1008.75)  // world position z
	f.f32(28, 33.4)     // speed
	f.f32(32, 33.1)     // velocity x
	f.f32(116, 0.82)    // throttle
	f.f32(120, -0.31)   // steer
	f.f32(124, 0)       // brake
	f.f32(128, 0)       // clutch
	f.f32(132, 4)       // gear
	f.f32(136, 1.45)    // lateral g
	f.f32(140, -0.22)   // longitudinal g
	f.f32(144, 1)       // current lap
	f.f32(148, 6250)    // rpm
	f.f32(156, 1)       // race position
	f.f32(204, 310.5)   // brake temp rear left
	f.f32(216, 452.25)  // brake temp front right
	f.f32(240, 1)       // total laps
	f.f32(244, 12660.0) // track length
	f.f32(248, 0)       // last lap time

	tel := decode(t, f.buf)

	if tel.TotalTime != 754.25 || tel.LapTime != 92.5 {
		t.Errorf("times = %v/%v, expected 754.25/92.5", tel.TotalTime, tel.LapTime)
	}
	if tel.WorldPosition.X != -411.25 || tel.WorldPosition.Z != 1008.75 {
		t.Errorf("WorldPosition = %+v, expected x -411.25, z 1008.75", tel.WorldPosition)
	}
	if tel.Speed != 33.4 || tel.Velocity.X != 33.1 {
		t.Errorf("speed/velocity.x = %v/%v, expected 33.4/33.1", tel.Speed, tel.Velocity.X)
	}
	if tel.Throttle != 0.82 || tel.Steer != -0.31 {
		t.Errorf("throttle/steer = %v/%v, expected 0.82/-0.31", tel.Throttle, tel.Steer)
	}
	if tel.Gear != Gear4 {
		t.Errorf("Gear = %d, expected Gear4", tel.Gear)
	}
	if tel.GForceLateral != 1.45 {
		t.Errorf("GForceLateral = %v, expected 1.45", tel.GForceLateral)
	}
	if tel.EngineRate != 6250 {
		t.Errorf("EngineRate = %v, expected 6250", tel.EngineRate)
	}
	if tel.RacePosition != 1 {
		t.Errorf("RacePosition = %v, expected 1", tel.RacePosition)
	}
	if tel.BrakeTemperature.RearLeft != 310.5 || tel.BrakeTemperature.FrontRight != 452.25 {
		t.Errorf("BrakeTemperature = %+v, expected RL 310.5, FR 452.25", tel.BrakeTemperature)
	}
	if tel.TrackLength != 12660.0 {
		t.Errorf("TrackLength = %v, expected 12660", tel.TrackLength)
	}
}

func TestDecodeWheelOrder(t *testing.T) {
	f := newFixture()
	// Suspension position block at 68: RL, RR, FL, FR.
	f.f32(68, 1)
	f.f32(72, 2)
	f.f32(76, 3)
	f.f32(80, 4)

	tel := decode(t, f.buf)

	susp := tel.SuspensionPosition
	if susp.RearLeft != 1 || susp.RearRight != 2 || susp.FrontLeft != 3 || susp.FrontRight != 4 {
		t.Errorf("SuspensionPosition = %+v, expected RL/RR/FL/FR = 1/2/3/4", susp)
	}
}

func TestGearFromF32(t *testing.T) {
	tests := []struct {
		name string
		raw  float32
		want Gear
	}{
		{"reverse", -1, GearReverse},
		{"neutral", 0, GearNeutral},
		{"first", 1, Gear1},
		{"sixth", 6, Gear6},
		{"ninth", 9, Gear9},
		{"clamped above ninth", 12, Gear9},
		{"fractional reads as its whole gear", 3.7, Gear3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.f32(132, tt.raw)

			tel := decode(t, f.buf)
			if tel.Gear != tt.want {
				t.Errorf("Gear = %d, expected %d", tel.Gear, tt.want)
			}
		})
	}
}

func TestDecodeShortPacket(t *testing.T) {
	f := newFixture()

	_, err := Protocol().Decode(f.buf[:255])
	if !errors.Is(err, ErrShortPacket) {
		t.Errorf("Decode() error = %v, expected ErrShortPacket", err)
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

	f := newFixture()
	f.f32(28, 41.7)
	if _, err := sender.Write(f.buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	srv.SetReadDeadline(time.Now().Add(5 * time.Second))
	tel, err := srv.Next()
	if err != nil {
		t.Fatalf("Next() error = %v, expected nil", err)
	}
	if tel.Speed != 41.7 {
		t.Errorf("Speed = %v, expected 41.7", tel.Speed)
	}
}
