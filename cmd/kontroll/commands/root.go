// Package commands provides the complete command tree implementation for kontroll.
//
// kontroll is a flat command set: every subcommand maps to exactly one request
// against the keyboard controller daemon, so there are no resource groups.
//
// COMMAND STRUCTURE:
//   - Discovery and binding: list, connect, connect-any, disconnect
//   - Keyboard state: set-layer, set-rgb, set-rgb-all, set-status-led
//   - Brightness: increase-brightness, decrease-brightness
//
// Command variables carry no RunE; the main package assigns handlers after
// flags are set up.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "kontroll",
	Short: "Control your keyboard through the keyboard controller daemon",
	Long: `kontroll sends one command per invocation to a running keyboard
controller daemon: connect to a keyboard, switch layers, set RGB and
status LEDs, or step brightness.

kontroll keeps no state of its own. The daemon remembers which keyboard
is connected between invocations.`,
	SilenceUsage: true,
	Example: `  # List detected keyboards
  kontroll list

  # Connect to the first keyboard and switch to layer 2
  kontroll connect-any
  kontroll set-layer --index 2

  # Flash LED 5 red for half a second
  kontroll set-rgb --led 5 --color FF0000 --sustain 500

  # Turn status LED 1 off
  kontroll set-status-led --led 1 --off

  # Talk to a daemon on another socket, JSON output
  kontroll --socket=/run/user/1000/kontroll.sock --output=json list`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(connectCmd)
	RootCmd.AddCommand(connectAnyCmd)
	RootCmd.AddCommand(disconnectCmd)
	RootCmd.AddCommand(setLayerCmd)
	RootCmd.AddCommand(setRGBCmd)
	RootCmd.AddCommand(setRGBAllCmd)
	RootCmd.AddCommand(setStatusLEDCmd)
	RootCmd.AddCommand(increaseBrightnessCmd)
	RootCmd.AddCommand(decreaseBrightnessCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, socketPtr, addrPtr, logLevelPtr, outputPtr, configPtr *string,
	timeoutPtr *int, defaultSocket string) {
	rootCmd.PersistentFlags().StringVar(socketPtr, "socket", defaultSocket,
		"Unix socket of the keyboard controller daemon")
	rootCmd.PersistentFlags().StringVar(addrPtr, "addr", "",
		"TCP address of the daemon (e.g., 127.0.0.1:7630), overrides --socket")
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().IntVar(timeoutPtr, "timeout", 5,
		"Request timeout in seconds")
	rootCmd.PersistentFlags().StringVar(outputPtr, "output", "plain",
		"Output format: plain, json, table")
	rootCmd.PersistentFlags().StringVar(configPtr, "config", "",
		"Config file (default $XDG_CONFIG_HOME/kontroll/config.yaml)")
}
