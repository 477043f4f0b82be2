// Package config provides configuration management for the kontroll CLI.
package config

import (
	"fmt"
	"time"

	"github.com/kontroll-dev/kontroll/internal/logging"
	"github.com/kontroll-dev/kontroll/internal/validate"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags loads and validates all global settings before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := Load(cmd); err != nil {
		return err
	}

	if err := ValidateEndpoint(); err != nil {
		return err
	}

	if err := ValidateTimeout(); err != nil {
		return err
	}

	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return fmt.Errorf("%w - valid: DEBUG, INFO, WARN, ERROR", err)
	}

	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	return nil
}

// ValidateEndpoint validates --addr when set, otherwise --socket
func ValidateEndpoint() error {
	if Global.Addr == "" {
		if err := validate.ValidateSocketPath(Global.Socket); err != nil {
			logging.Error("Invalid controller socket '%s': %v", Global.Socket, err)
			return fmt.Errorf("invalid controller socket: %w", err)
		}
		return nil
	}

	netAddr, err := validate.ParseBindAddress(Global.Addr)
	if err != nil {
		logging.Error("Invalid controller address '%s': %v", Global.Addr, err)
		return fmt.Errorf("invalid controller address - expected format: host:port (e.g., 127.0.0.1:7630)")
	}

	// Reject unroutable 0.0.0.0 target for client connections
	if netAddr.Host == "0.0.0.0" || netAddr.Host == "::" {
		return fmt.Errorf("unroutable controller address - use 127.0.0.1 or a specific IP address")
	}

	if err := validate.ValidatePortRange(netAddr.Port); err != nil {
		return fmt.Errorf("controller port must be between 1-65535")
	}

	return nil
}

// ValidateTimeout validates the --timeout flag
func ValidateTimeout() error {
	return validate.ValidatePositiveTimeout(time.Duration(Global.Timeout)*time.Second, "timeout")
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	if err := validate.ValidateField(Global.Output, "oneof=plain json table"); err != nil {
		logging.Error("Invalid output format '%s' - valid formats are: plain, json, table", Global.Output)
		return fmt.Errorf("invalid output format - valid: plain, json, table")
	}
	return nil
}
