package f12022

import (
	"github.com/ozkar99/cm-telemetry/telemetry"
	"github.com/ozkar99/cm-telemetry/wire"
)

// maxLapHistory is the number of lap entries the history packet always
// carries, populated or not.
const maxLapHistory = 100

// SessionHistory carries one car's full lap and tyre stint history. Unlike
// the other packets it describes a single car, identified by CarIndex; the
// game cycles through cars across successive packets.
type SessionHistory struct {
	Header        telemetry.Header
	CarIndex      uint8
	NumLaps       uint8 // including the current partial lap
	NumTyreStints uint8

	BestLapTimeLapNumber uint8
	BestSector1LapNumber uint8
	BestSector2LapNumber uint8
	BestSector3LapNumber uint8

	LapHistory [maxLapHistory]LapHistoryData
	TyreStints [numTyreStints]TyreStintHistoryData
}

// Laps returns only the populated lap history entries.
func (s *SessionHistory) Laps() []LapHistoryData {
	n := int(s.NumLaps)
	if n > len(s.LapHistory) {
		n = len(s.LapHistory)
	}
	return s.LapHistory[:n]
}

// LapHistoryData is one completed (or in-progress) lap of the car's history.
type LapHistoryData struct {
	LapTimeMS     uint32
	Sector1TimeMS uint16
	Sector2TimeMS uint16
	Sector3TimeMS uint16
	Valid         LapValidFlags
}

// LapValidFlags marks which parts of a lap were valid.
type LapValidFlags uint8

const (
	LapValid     LapValidFlags = 0x01
	Sector1Valid LapValidFlags = 0x02
	Sector2Valid LapValidFlags = 0x04
	Sector3Valid LapValidFlags = 0x08
)

// Has reports whether every bit of mask is set.
func (f LapValidFlags) Has(mask LapValidFlags) bool {
	return f&mask == mask
}

// TyreStintHistoryData is one tyre stint of the car's history.
type TyreStintHistoryData struct {
	EndLap         uint8 // 255 for the stint on the current tyres
	ActualCompound TyreCompound
	VisualCompound TyreVisual
}

func decodeSessionHistory(h telemetry.Header, body []byte) (Event, error) {
	r := wire.NewReader(body)
	s := &SessionHistory{
		Header:               h,
		CarIndex:             r.U8(),
		NumLaps:              r.U8(),
		NumTyreStints:        r.U8(),
		BestLapTimeLapNumber: r.U8(),
		BestSector1LapNumber: r.U8(),
		BestSector2LapNumber: r.U8(),
		BestSector3LapNumber: r.U8(),
	}
	for i := range s.LapHistory {
		s.LapHistory[i] = LapHistoryData{
			LapTimeMS:     r.U32(),
			Sector1TimeMS: r.U16(),
			Sector2TimeMS: r.U16(),
			Sector3TimeMS: r.U16(),
			Valid:         LapValidFlags(r.U8()),
		}
	}
	for i := range s.TyreStints {
		s.TyreStints[i] = TyreStintHistoryData{
			EndLap:         r.U8(),
			ActualCompound: TyreCompound(r.U8()),
			VisualCompound: TyreVisual(r.U8()),
		}
	}

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return s, nil
}
