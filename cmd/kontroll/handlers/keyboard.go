package handlers

import (
	"github.com/kontroll-dev/kontroll/cmd/kontroll/config"
	"github.com/kontroll-dev/kontroll/internal/resolver"
	"github.com/spf13/cobra"
)

// HandleList handles the list command
func HandleList(cmd *cobra.Command, args []string) error {
	return runIntent(cmd, resolver.List{})
}

// HandleConnect handles the connect command
func HandleConnect(cmd *cobra.Command, args []string) error {
	return runIntent(cmd, resolver.Connect{Index: config.Keyboard.Index})
}

// HandleConnectAny handles the connect-any command
func HandleConnectAny(cmd *cobra.Command, args []string) error {
	return runIntent(cmd, resolver.ConnectAny{})
}

// HandleDisconnect handles the disconnect command
func HandleDisconnect(cmd *cobra.Command, args []string) error {
	return runIntent(cmd, resolver.Disconnect{})
}

// HandleSetLayer handles the set-layer command
func HandleSetLayer(cmd *cobra.Command, args []string) error {
	return runIntent(cmd, resolver.SetLayer{Index: config.Keyboard.Index})
}

// HandleSetRGB handles the set-rgb command
func HandleSetRGB(cmd *cobra.Command, args []string) error {
	return runIntent(cmd, resolver.SetRGBLED{
		LED:     config.Keyboard.LED,
		Color:   config.Keyboard.Color,
		Sustain: config.Keyboard.Sustain,
	})
}

// HandleSetRGBAll handles the set-rgb-all command
func HandleSetRGBAll(cmd *cobra.Command, args []string) error {
	return runIntent(cmd, resolver.SetRGBAll{
		Color:   config.Keyboard.Color,
		Sustain: config.Keyboard.Sustain,
	})
}

// HandleSetStatusLED handles the set-status-led command. --off is passed
// through as typed; the resolver owns the on/off conversion.
func HandleSetStatusLED(cmd *cobra.Command, args []string) error {
	return runIntent(cmd, resolver.SetStatusLED{
		LED:     config.Keyboard.LED,
		Off:     config.Keyboard.Off,
		Sustain: config.Keyboard.Sustain,
	})
}

// HandleIncreaseBrightness handles the increase-brightness command
func HandleIncreaseBrightness(cmd *cobra.Command, args []string) error {
	return runIntent(cmd, resolver.AdjustBrightness{Increase: true})
}

// HandleDecreaseBrightness handles the decrease-brightness command
func HandleDecreaseBrightness(cmd *cobra.Command, args []string) error {
	return runIntent(cmd, resolver.AdjustBrightness{Increase: false})
}
