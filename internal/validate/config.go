// Package validate provides configuration validation utilities for kontroll.
//
// This file implements the option checks shared by the CLI and the simulator:
// ports, required strings, timeouts and unix socket paths. All functions
// leverage the go-playground/validator library where a built-in tag exists.
package validate

import (
	"fmt"
	"path/filepath"
	"time"
)

// maxSocketPathLen is the usable length of sockaddr_un.sun_path on Linux
// (108 bytes including the terminating NUL).
const maxSocketPathLen = 107

// ValidatePortRange validates that a port number is within the valid range (1-65535).
// Port 0 is rejected: a client needs a concrete port to dial.
func ValidatePortRange(port int) error {
	return ValidateField(port, "required,min=1,max=65535")
}

// ValidateRequiredString validates that a string field is not empty.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidatePositiveTimeout validates that a timeout duration is positive (> 0).
// A zero timeout would make every controller request fail immediately.
func ValidatePositiveTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}

// ValidateSocketPath validates a unix socket path for the controller daemon.
// The path must be absolute and fit in sockaddr_un.
func ValidateSocketPath(path string) error {
	if err := ValidateRequiredString(path, "socket path"); err != nil {
		return err
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("socket path '%s' must be absolute", path)
	}
	// sun_path is a byte array; len counts bytes, not runes
	if len(path) > maxSocketPathLen {
		return fmt.Errorf("socket path '%s' exceeds %d bytes", path, maxSocketPathLen)
	}
	return nil
}
