// Package api provides the HTTP API server of the simulated keyboard
// controller daemon.
//
// This file defines the configuration for the server that exposes the
// simulator's keyboard model to kontroll. The server listens either on a unix
// socket (the default, matching what the CLI dials) or on a TCP address for
// remote or containerised setups.
//
// Configuration validation ensures the daemon model is wired and that the
// listen address is usable before any socket is created, so a bad --addr or
// --socket fails at startup with a clear message.
package api

import (
	"fmt"

	"github.com/kontroll-dev/kontroll/internal/simulator"
	"github.com/kontroll-dev/kontroll/internal/validate"
)

// Supported listener networks.
const (
	NetworkUnix = "unix"
	NetworkTCP  = "tcp"
)

// Config holds the parameters required for running the HTTP API server.
//
// Address is a socket path when Network is "unix" and a "host:port" pair when
// Network is "tcp". Daemon is the keyboard model every handler operates on.
type Config struct {
	Network string            // "unix" or "tcp"
	Address string            // Socket path or host:port
	Daemon  *simulator.Daemon // Keyboard model served by the API
}

// DefaultConfig creates a Config listening on the given unix socket.
// Daemon must be set by the caller.
func DefaultConfig(socket string) *Config {
	return &Config{
		Network: NetworkUnix,
		Address: socket,
		Daemon:  nil, // Must be set by caller
	}
}

// Validate checks that the listener and daemon are usable.
func (c *Config) Validate() error {
	switch c.Network {
	case NetworkUnix:
		if err := validate.ValidateSocketPath(c.Address); err != nil {
			return fmt.Errorf("socket validation failed: %w", err)
		}
	case NetworkTCP:
		addr, err := validate.ParseBindAddress(c.Address)
		if err != nil {
			return fmt.Errorf("listen address validation failed: %w", err)
		}
		if err := validate.ValidatePortRange(addr.Port); err != nil {
			return fmt.Errorf("listen port validation failed: %w", err)
		}
	default:
		return fmt.Errorf("unsupported network %q (must be %s or %s)", c.Network, NetworkUnix, NetworkTCP)
	}

	if c.Daemon == nil {
		return fmt.Errorf("daemon cannot be nil")
	}

	return nil
}
