// Package logging provides centralized log level validation for kontroll.
//
// This file defines the canonical set of valid log levels shared by the CLI
// flags, the viper configuration file and the simulator's flags.
//
// SUPPORTED LOG LEVELS:
//   - DEBUG: Detailed debugging information, including every controller request
//   - INFO:  General operational information
//   - WARN:  Warning conditions that should be noted but don't stop operation
//   - ERROR: Error conditions that indicate problems requiring attention
//
// Level strings are uppercase; configuration loading upper-cases user input
// before validating it.
package logging

import "fmt"

// ValidLogLevels defines the canonical set of supported log levels.
var ValidLogLevels = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
}

// IsValidLogLevel checks if the provided log level string is supported.
func IsValidLogLevel(level string) bool {
	return ValidLogLevels[level]
}

// ValidateLogLevel validates a log level string and returns an error if invalid.
// Used by both command trees so flag errors read the same everywhere.
func ValidateLogLevel(level string) error {
	if !IsValidLogLevel(level) {
		return fmt.Errorf("invalid log level: %s", level)
	}
	return nil
}
