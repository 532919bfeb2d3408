// Package f12020 implements the Codemasters UDP telemetry protocol for
// "F1 2020" (packet format 2020).
//
// See: https://forums.codemasters.com/topic/50942-f1-2020-udp-specification/
package f12020

import (
	"github.com/ozkar99/cm-telemetry/telemetry"
)

// NumCars is the size of every per-car array in this protocol generation.
const NumCars = 22

// FormatConstant is the packet format every F1 2020 header carries.
const FormatConstant = 2020

// Packet ids of the F1 2020 protocol.
const (
	PacketMotion              = 0
	PacketSession             = 1
	PacketLapData             = 2
	PacketEvent               = 3
	PacketParticipants        = 4
	PacketCarSetups           = 5
	PacketCarTelemetry        = 6
	PacketCarStatus           = 7
	PacketFinalClassification = 8
	PacketLobbyInfo           = 9
)

// Event is the closed set of packet kinds F1 2020 broadcasts. Exactly one
// variant is produced per decoded datagram:
//
//	*Motion, *Session, *LapData, *EventData, *Participants, *CarSetups,
//	*CarTelemetry, *CarStatus, *FinalClassification, *LobbyInfo
type Event interface {
	isEvent()
}

func (*Motion) isEvent()              {}
func (*Session) isEvent()             {}
func (*LapData) isEvent()             {}
func (*EventData) isEvent()           {}
func (*Participants) isEvent()        {}
func (*CarSetups) isEvent()           {}
func (*CarTelemetry) isEvent()        {}
func (*CarStatus) isEvent()           {}
func (*FinalClassification) isEvent() {}
func (*LobbyInfo) isEvent()           {}

// proto is built once and shared read-only by every server using it.
var proto = &telemetry.Dispatcher[Event]{
	Format:    FormatConstant,
	HeaderLen: telemetry.HeaderSizeSecond,
	Table: map[uint8]telemetry.DecodeFunc[Event]{
		PacketMotion:              decodeMotion,
		PacketSession:             decodeSession,
		PacketLapData:             decodeLapData,
		PacketEvent:               decodeEventData,
		PacketParticipants:        decodeParticipants,
		PacketCarSetups:           decodeCarSetups,
		PacketCarTelemetry:        decodeCarTelemetry,
		PacketCarStatus:           decodeCarStatus,
		PacketFinalClassification: decodeFinalClassification,
		PacketLobbyInfo:           decodeLobbyInfo,
	},
}

// Protocol returns the immutable F1 2020 wire protocol definition.
func Protocol() telemetry.Protocol[Event] {
	return proto
}

// Listen binds a telemetry server for F1 2020 on addr, typically
// "0.0.0.0:20777" (the game's default broadcast port).
func Listen(addr string) (*telemetry.Server[Event], error) {
	return telemetry.Listen(addr, proto)
}
