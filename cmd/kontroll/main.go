// Package main provides the entry point for the kontroll CLI.
//
// kontroll translates one user command per invocation into one request
// against the keyboard controller daemon. The main package wires the command
// tree: command structures, global and per-command flags, and the handler for
// each command. Global configuration is loaded and validated in
// PersistentPreRunE before any handler runs.
package main

import (
	"os"

	"github.com/kontroll-dev/kontroll/cmd/kontroll/commands"
	"github.com/kontroll-dev/kontroll/cmd/kontroll/config"
	"github.com/kontroll-dev/kontroll/cmd/kontroll/handlers"
	"github.com/kontroll-dev/kontroll/internal/controller"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup all command structures
	commands.SetupCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.Socket, &config.Global.Addr,
		&config.Global.LogLevel, &config.Global.Output, &config.Global.ConfigFile,
		&config.Global.Timeout, controller.DefaultSocketPath())

	// Setup keyboard command flags
	commands.SetupKeyboardFlags(&config.Keyboard.Index, &config.Keyboard.LED,
		&config.Keyboard.Color, &config.Keyboard.Sustain, &config.Keyboard.Off)

	// Setup command handlers
	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	cmds := commands.GetKeyboardCommands()

	cmds.List.RunE = handlers.HandleList
	cmds.Connect.RunE = handlers.HandleConnect
	cmds.ConnectAny.RunE = handlers.HandleConnectAny
	cmds.Disconnect.RunE = handlers.HandleDisconnect
	cmds.SetLayer.RunE = handlers.HandleSetLayer
	cmds.SetRGB.RunE = handlers.HandleSetRGB
	cmds.SetRGBAll.RunE = handlers.HandleSetRGBAll
	cmds.SetStatusLED.RunE = handlers.HandleSetStatusLED
	cmds.IncreaseBrightness.RunE = handlers.HandleIncreaseBrightness
	cmds.DecreaseBrightness.RunE = handlers.HandleDecreaseBrightness
}

// main is the main entry point. Cobra has already printed the error.
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
