// Package commands contains Cobra CLI command definitions for kontroll-sim.
package commands

import (
	"github.com/kontroll-dev/kontroll/cmd/kontroll-sim/config"
	"github.com/kontroll-dev/kontroll/internal/controller"
	"github.com/kontroll-dev/kontroll/internal/simulator"
	"github.com/spf13/cobra"
)

// SetupFlags configures all command line flags for the daemon
func SetupFlags(cmd *cobra.Command) {
	defaults := simulator.DefaultOptions()

	// Listener flags
	cmd.Flags().StringVar(&config.Global.Socket, "socket", controller.DefaultSocketPath(),
		"Unix socket to listen on")
	cmd.Flags().StringVar(&config.Global.Addr, "addr", "",
		"TCP address to listen on instead of the socket (e.g., 127.0.0.1:7630)")

	// Keyboard model flags
	cmd.Flags().StringArrayVar(&config.Global.Keyboards, "keyboard", defaults.Keyboards,
		"Friendly name of a simulated keyboard, repeat for several (discovery order)")
	cmd.Flags().IntVar(&config.Global.Layers, "layers", defaults.Layers,
		"Layers per keyboard")
	cmd.Flags().IntVar(&config.Global.LEDs, "leds", defaults.LEDs,
		"RGB LEDs per keyboard")
	cmd.Flags().IntVar(&config.Global.StatusLEDs, "status-leds", defaults.StatusLEDs,
		"Status LEDs per keyboard")
	cmd.Flags().IntVar(&config.Global.BrightnessSteps, "brightness-steps", defaults.BrightnessSteps,
		"Highest brightness step (brightness ranges from 0 to this value)")

	// Operational flags
	cmd.Flags().StringVar(&config.Global.LogLevel, "log-level", config.DefaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	cmd.Flags().StringVar(&config.Global.LogFile, "log-file", "",
		"Write logs to this file with size-based rotation instead of the terminal")
}
