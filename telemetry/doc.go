// Package telemetry implements the game-agnostic core of the UDP telemetry
// receiver: the common packet header decoder, the packet-id dispatcher and a
// generic blocking server that pairs a bound UDP socket with one game
// protocol.
//
// A game protocol is any implementation of Protocol. Header-framed games
// (the F1 titles) are assembled from a Dispatcher value holding the game's
// format constant and its packet-id decode table; headerless formats
// implement Protocol directly. Decoding is stateless per datagram, so a
// protocol value is immutable and may be shared by any number of servers.
package telemetry
