// Package main implements kontroll-sim, a simulated keyboard controller daemon.
package main

import (
	"os"

	"github.com/kontroll-dev/kontroll/cmd/kontroll-sim/commands"
	"github.com/kontroll-dev/kontroll/internal/logging"
)

func init() {
	commands.SetupCommands()
}

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		logging.Error("Daemon failed: %v", err)
		commands.CleanupLogFile()
		os.Exit(1)
	}
}
