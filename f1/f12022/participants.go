package f12022

import (
	"github.com/ozkar99/cm-telemetry/telemetry"
	"github.com/ozkar99/cm-telemetry/wire"
)

// nameLen is the fixed width of participant name fields on the wire.
const nameLen = 48

// Participants lists every driver in the session.
type Participants struct {
	Header        telemetry.Header
	NumActiveCars uint8
	Cars          [NumCars]ParticipantData
}

// PlayerData returns the player car's entry, or nil if the header's player
// car index is out of range.
func (p *Participants) PlayerData() *ParticipantData {
	if int(p.Header.PlayerCarIndex) >= len(p.Cars) {
		return nil
	}
	return &p.Cars[p.Header.PlayerCarIndex]
}

// ParticipantData identifies one driver and their car.
type ParticipantData struct {
	AIControlled bool
	Driver       Driver

	// NetworkID uniquely identifies a network player.
	NetworkID uint8

	Team        Team
	MyTeam      bool
	RaceNumber  uint8
	Nationality Nationality

	// Name is the participant's UTF-8 name, NUL-trimmed from its 48-byte
	// field. Truncated with an ellipsis by the game if too long.
	Name string

	// TelemetryPublic reports the player's UDP visibility setting.
	TelemetryPublic bool
}

func decodeParticipants(h telemetry.Header, body []byte) (Event, error) {
	r := wire.NewReader(body)
	p := &Participants{Header: h, NumActiveCars: r.U8()}
	for i := range p.Cars {
		p.Cars[i] = ParticipantData{
			AIControlled:    r.Bool(),
			Driver:          Driver(r.U8()),
			NetworkID:       r.U8(),
			Team:            Team(r.U8()),
			MyTeam:          r.Bool(),
			RaceNumber:      r.U8(),
			Nationality:     Nationality(r.U8()),
			Name:            r.String(nameLen),
			TelemetryPublic: r.Bool(),
		}
	}

	if err := r.Err(); err != nil {
		return nil, telemetry.ErrTruncatedPayload
	}
	return p, nil
}
