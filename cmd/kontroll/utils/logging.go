// Package utils provides utility functions for the kontroll CLI.
package utils

import (
	"os"

	"github.com/kontroll-dev/kontroll/cmd/kontroll/config"
	"github.com/kontroll-dev/kontroll/internal/logging"
)

// SetupLogging configures CLI logging behavior based on environment and config.
// Enables debug output when DEBUG=true, otherwise suppresses verbose logs so a
// command prints nothing but its result line.
func SetupLogging() {
	if os.Getenv("DEBUG") == "true" {
		// Show debug output - restore normal logging and enable DEBUG level
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
	} else if config.Global.LogLevel == "ERROR" {
		// Suppress debug/info logs by default (only show errors)
		logging.SuppressOutput()
	} else {
		logging.RestoreOutput()
		logging.SetLevel(config.Global.LogLevel)
	}
}
