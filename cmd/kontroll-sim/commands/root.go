// Package commands provides the CLI command structure for kontroll-sim.
//
// kontroll-sim is a stand-in for the keyboard controller daemon. It serves
// the same /api/v1 surface the kontroll CLI talks to, backed by an in-memory
// keyboard model, so the CLI can be exercised without hardware.
package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/kontroll-dev/kontroll/cmd/kontroll-sim/config"
	"github.com/kontroll-dev/kontroll/cmd/kontroll-sim/daemon"
	"github.com/kontroll-dev/kontroll/internal/logging"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotating log file handle, closed on exit
var logFile *lumberjack.Logger

// CleanupLogFile closes the log file if one was opened
func CleanupLogFile() {
	if logFile != nil {
		if err := logFile.Close(); err != nil {
			// Log to stderr since we're cleaning up the log file
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
		logFile = nil
	}
}

// Root command for the simulated controller daemon
var RootCmd = &cobra.Command{
	Use:   "kontroll-sim",
	Short: "Simulated keyboard controller daemon for kontroll",
	Long: `kontroll-sim serves the keyboard controller API over a unix socket
(or TCP) with an in-memory keyboard model.

It enforces the same rules as a real controller: commands need a connected
keyboard, layer and LED indices are range checked, brightness is clamped and
sustained colors revert after their duration.`,
	Version:      config.Version,
	SilenceUsage: true, // Don't show usage on errors
	Example: `  # Serve one Voyager on the default socket
  kontroll-sim

  # Two keyboards, verbose logging
  kontroll-sim --keyboard Voyager --keyboard "Moonlander Mark I" --log-level=DEBUG

  # Listen on TCP and log to a rotated file
  kontroll-sim --addr=127.0.0.1:7630 --log-file=/var/log/kontroll-sim.log`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Validate(); err != nil {
			return err
		}

		if config.Global.LogFile != "" {
			logDir := filepath.Dir(config.Global.LogFile)
			if err := os.MkdirAll(logDir, 0o755); err != nil {
				return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
			}
			logFile = &lumberjack.Logger{
				Filename:   config.Global.LogFile,
				MaxSize:    config.LogFileMaxSizeMB,
				MaxBackups: config.LogFileMaxBackups,
				MaxAge:     config.LogFileMaxAgeDays,
				Compress:   true,
			}
			// Redirect all logging to the file
			logging.SetOutput(logFile)
		}

		logging.SetLevel(config.Global.LogLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer CleanupLogFile()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return daemon.Run(ctx, nil)
	},
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	SetupFlags(RootCmd)
}
