package f12020

import (
	"github.com/ozkar99/cm-telemetry/telemetry"
	"github.com/ozkar99/cm-telemetry/wire"
)

// numTyreStints is the maximum number of tyre stints reported per car.
const numTyreStints = 8

// FinalClassification is sent once at the end of a race with the final
// standings.
type FinalClassification struct {
	Header  telemetry.Header
	NumCars uint8
	Cars    [NumCars]FinalClassificationData
}

// PlayerData returns the player car's classification, or nil if the header's
// player car index is out of range.
func (f *FinalClassification) PlayerData() *FinalClassificationData {
	if int(f.Header.PlayerCarIndex) >= len(f.Cars) {
		return nil
	}
	return &f.Cars[f.Header.PlayerCarIndex]
}

// FinalClassificationData is one car's final result.
type FinalClassificationData struct {
	Position      uint8
	NumLaps       uint8
	GridPosition  uint8
	Points        uint8
	NumPitStops   uint8
	ResultStatus  ResultStatus
	BestLapTime   float32 // seconds
	TotalRaceTime float64 // seconds, without penalties
	PenaltiesTime uint8   // seconds
	NumPenalties  uint8
	NumTyreStints uint8
	TyreStintsActual [numTyreStints]TyreCompound
	TyreStintsVisual [numTyreStints]TyreVisual
}

// LobbyInfo lists the players in a multiplayer lobby.
type LobbyInfo struct {
	Header     telemetry.Header
	NumPlayers uint8
	Lobby      [NumCars]LobbyInfoData
}

// Players returns only the populated lobby entries.
func (l *LobbyInfo) Players() []LobbyInfoData {
	n := int(l.NumPlayers)
	if n > len(l.Lobby) {
		n = len(l.Lobby)
	}
	return l.Lobby[:n]
}

// LobbyInfoData is one lobby member.
type LobbyInfoData struct {
	AIControlled bool
	Team         Team
	Nationality  Nationality
	Name         string
	Status       LobbyStatus
}

// LobbyStatus is a lobby member's readiness.
type LobbyStatus uint8

const (
	LobbyNotReady LobbyStatus = iota
	LobbyReady
	LobbySpectating
)

func decodeFinalClassification(h telemetry.Header, body []byte) (Event, error) {
	r := wire.NewReader(body)
	f := &FinalClassification{Header: h, NumCars: r.U8()}
	for i := range f.Cars {
		d := FinalClassificationData{
			Position:      r.U8(),
			NumLaps:       r.U8(),
			GridPosition:  r.U8(),
			Points:        r.U8(),
			NumPitStops:   r.U8(),
			ResultStatus:  ResultStatus(r.U8()),
			BestLapTime:   r.F32(),
			TotalRaceTime: r.F64(),
			PenaltiesTime: r.U8(),
			NumPenalties:  r.U8(),
			NumTyreStints: r.U8(),
		}
		for j := range d.TyreStintsActual {
			d.TyreStintsActual[j] = TyreCompound(r.U8())
		}
		for j := range d.TyreStintsVisual {
			d.TyreStintsVisual[j] = TyreVisual(r.U8())
		}
		f.Cars[i] = d
	}

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return f, nil
}

func decodeLobbyInfo(h telemetry.Header, body []byte) (Event, error) {
	r := wire.NewReader(body)
	l := &LobbyInfo{Header: h, NumPlayers: r.U8()}
	for i := range l.Lobby {
		l.Lobby[i] = LobbyInfoData{
			AIControlled: r.Bool(),
			Team:         Team(r.U8()),
			Nationality:  Nationality(r.U8()),
			Name:         r.String(nameLen),
			Status:       LobbyStatus(r.U8()),
		}
	}

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return l, nil
}
