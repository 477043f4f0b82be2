package config

import (
	"fmt"
	"strings"

	"github.com/kontroll-dev/kontroll/internal/api"
	"github.com/kontroll-dev/kontroll/internal/logging"
	"github.com/kontroll-dev/kontroll/internal/validate"
)

// Validate checks the daemon configuration before anything is started
func Validate() error {
	Global.LogLevel = strings.ToUpper(Global.LogLevel)
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return err
	}

	if Global.Addr != "" {
		addr, err := validate.ParseBindAddress(Global.Addr)
		if err != nil {
			return fmt.Errorf("invalid listen address: %w", err)
		}
		// Daemon requires non-zero ports (port 0 would let OS choose)
		if err := validate.ValidatePortRange(addr.Port); err != nil {
			return fmt.Errorf("daemon requires specific port (not 0): %w", err)
		}
	} else if err := validate.ValidateSocketPath(Global.Socket); err != nil {
		return fmt.Errorf("invalid socket: %w", err)
	}

	if err := Options().Validate(); err != nil {
		return fmt.Errorf("invalid keyboard model: %w", err)
	}

	return nil
}

// Listener returns the network and address the API server listens on
func Listener() (network, address string) {
	if Global.Addr != "" {
		return api.NetworkTCP, Global.Addr
	}
	return api.NetworkUnix, Global.Socket
}
