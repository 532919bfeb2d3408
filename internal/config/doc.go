// Package config provides configuration loading and validation for the
// telemetry collector daemon. It handles YAML-based configuration covering
// the UDP listener, the Prometheus endpoint and logging.
package config
