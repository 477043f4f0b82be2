// Package config provides configuration management for kontroll-sim.
//
// The simulated controller daemon is configured by flags only. The model
// parameters map one to one onto simulator.Options; the listener and logging
// settings stay here.
package config

import (
	"github.com/kontroll-dev/kontroll/internal/simulator"
	"github.com/kontroll-dev/kontroll/internal/version"
)

const (
	DefaultLogLevel = "INFO" // Daemon logs requests by default

	// Rotation limits for --log-file
	LogFileMaxSizeMB  = 10
	LogFileMaxBackups = 3
	LogFileMaxAgeDays = 28
)

// Version of the simulator binary
var Version = version.SimulatorVersion

// Global holds the daemon configuration populated from flags
var Global struct {
	Socket string // Unix socket to listen on
	Addr   string // TCP address to listen on instead of Socket

	Keyboards       []string // Friendly names of simulated keyboards, in discovery order
	Layers          int      // Layers per keyboard
	LEDs            int      // RGB LEDs per keyboard
	StatusLEDs      int      // Status LEDs per keyboard
	BrightnessSteps int      // Highest brightness step

	LogLevel string // Log level: DEBUG, INFO, WARN, ERROR
	LogFile  string // Rotated log file, empty logs to the terminal
}

// Options converts the flag values into simulator options.
func Options() simulator.Options {
	return simulator.Options{
		Keyboards:       Global.Keyboards,
		Layers:          Global.Layers,
		LEDs:            Global.LEDs,
		StatusLEDs:      Global.StatusLEDs,
		BrightnessSteps: Global.BrightnessSteps,
	}
}
