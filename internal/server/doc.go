// Package server runs the daemon's long-lived loops: the UDP telemetry
// collector and the monitoring HTTP server.
package server
