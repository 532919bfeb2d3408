// Package wire provides primitive little-endian decoding helpers shared by
// all game protocol implementations. It exposes a bounds-checked cursor over
// a single datagram and the small value groupings (coordinates, per-wheel and
// per-wing values) that the Codemasters payload layouts repeat everywhere.
package wire
