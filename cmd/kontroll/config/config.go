// Package config provides configuration management for the kontroll CLI.
package config

import (
	"os"
	"path/filepath"

	"github.com/kontroll-dev/kontroll/internal/version"
)

const (
	DefaultTimeout  = 5       // Seconds to wait for the controller daemon
	DefaultLogLevel = "ERROR" // Keeps command output to a single line
	DefaultOutput   = OutputPlain
)

// Output formats accepted by --output
const (
	OutputPlain = "plain"
	OutputJSON  = "json"
	OutputTable = "table"
)

// Version is the kontroll CLI version from the centralized version package
var Version = version.KontrollVersion

// Global holds the global CLI configuration
var Global struct {
	Socket     string // Unix socket of the controller daemon
	Addr       string // TCP address of the controller daemon, overrides Socket
	Timeout    int    // Request timeout in seconds
	LogLevel   string // Log level for CLI operations
	Output     string // Output format: plain, json, table
	ConfigFile string // Explicit config file, empty for the default search path
}

// Keyboard holds the arguments of the keyboard commands.
// Each command reads only the fields its flags populate.
var Keyboard struct {
	Index   uint   // connect, set-layer
	LED     uint   // set-rgb, set-status-led
	Color   string // set-rgb, set-rgb-all
	Sustain int32  // set-rgb, set-rgb-all, set-status-led
	Off     bool   // set-status-led
}

// DefaultConfigDir returns the directory searched for config.yaml.
func DefaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "kontroll")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "kontroll")
	}
	return ""
}
