// Package logging provides structured, colorful logging utilities for the
// kontroll CLI and the simulated controller daemon, ensuring consistent log
// formatting across both binaries and the libraries they embed.
//
// LOGGING FEATURES:
//   - Color-coded levels: DEBUG (purple), INFO (blue), WARN (yellow), ERROR (red), SUCCESS (green)
//   - Unix conventions: INFO/SUCCESS go to stdout, WARN/ERROR/DEBUG go to stderr
//   - Terminal awareness: text formatting on a TTY, logfmt when output is piped or a file
//   - Flexible output: configurable levels, file redirection and suppression for CLI use
//   - Library integration: LevelWriter and RedirectStandardLog route gin, resty and
//     standard library output through the same loggers
//
// The CLI keeps logging suppressed at ERROR by default so that each command
// prints only its own result line; setting DEBUG=true restores full output.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	stdlog "log"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

var (
	// Logger for INFO/SUCCESS messages (stdout by default, follows Unix conventions)
	stdoutLogger = newLogger(os.Stdout)

	// Logger for WARN/ERROR/DEBUG messages (stderr by default, follows Unix conventions)
	stderrLogger = newLogger(os.Stderr)

	// Track if logging has been explicitly configured by CLI tools
	cliConfigured = false

	// Track the current output destinations for different log levels
	currentStdoutOutput io.Writer = os.Stdout // For INFO/SUCCESS
	currentStderrOutput io.Writer = os.Stderr // For WARN/ERROR/DEBUG

	// Track if we're using a single log writer (overrides stdout/stderr separation)
	usingLogFile  = false
	logFileHandle io.Writer
)

// setupCustomStyles creates custom color styling for log levels.
// Colors work in both light and dark terminals; they are dropped
// automatically by lipgloss when the writer has no color profile.
func setupCustomStyles() *log.Styles {
	styles := log.DefaultStyles()

	// DEBUG: light purple
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(lipgloss.Color("#7F6DFF"))

	// INFO: light blue
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.Color("#42E7FF"))

	// WARN: light yellow
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("#FFE763"))

	// ERROR: light red/pink
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(lipgloss.Color("#FF4473"))

	return styles
}

// formatterFor picks the text formatter for terminals and logfmt for
// everything else (pipes, journald, rotated log files).
func formatterFor(w io.Writer) log.Formatter {
	if IsTerminal(w) {
		return log.TextFormatter
	}
	return log.LogfmtFormatter
}

// IsTerminal reports whether w is a terminal (including Cygwin/MSYS ptys).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newLogger builds a styled logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       formatterFor(w),
	})
	l.SetStyles(setupCustomStyles())
	return l
}

// getStdoutLoggerOutput returns the current output destination for stdout logger.
// Used by Success function to respect log file redirection.
func getStdoutLoggerOutput() io.Writer {
	if usingLogFile {
		return logFileHandle
	}
	return currentStdoutOutput
}

// Info logs informational messages.
// Uses stdout following Unix conventions (or log file when specified).
func Info(format string, v ...any) {
	stdoutLogger.Info(fmt.Sprintf(format, v...))
}

// Warn logs warning messages for non-critical issues requiring attention.
// Uses stderr following Unix conventions (or log file when specified).
func Warn(format string, v ...any) {
	stderrLogger.Warn(fmt.Sprintf(format, v...))
}

// Error logs error messages for failures.
// Uses stderr following Unix conventions (or log file when specified).
func Error(format string, v ...any) {
	stderrLogger.Error(fmt.Sprintf(format, v...))
}

// Success logs successful operations in green using INFO level with custom styling.
// Implements a custom SUCCESS level that respects INFO level filtering.
func Success(format string, v ...any) {
	// Success uses INFO level internally
	if stdoutLogger.GetLevel() > log.InfoLevel {
		return
	}

	currentOutput := getStdoutLoggerOutput()

	// Override the INFO level label to display "SUCCESS" in light green
	styles := setupCustomStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("SUCCESS").
		Foreground(lipgloss.Color("#60F281"))

	tempLogger := log.NewWithOptions(currentOutput, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       formatterFor(currentOutput),
	})
	tempLogger.SetStyles(styles)

	tempLogger.Info(fmt.Sprintf(format, v...))
}

// Debug logs detailed debugging information for development and troubleshooting.
// Uses stderr following Unix conventions (or log file when specified).
func Debug(format string, v ...any) {
	stderrLogger.Debug(fmt.Sprintf(format, v...))
}

// parseLevel maps the canonical level names onto charmbracelet levels.
// Unknown names fall back to INFO.
func parseLevel(level string) log.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return log.DebugLevel
	case "INFO":
		return log.InfoLevel
	case "WARN":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// SetLevel configures the minimum logging level. Accepts DEBUG, INFO, WARN
// and ERROR; anything else is treated as INFO.
func SetLevel(level string) {
	logLevel := parseLevel(level)
	stdoutLogger.SetLevel(logLevel)
	stderrLogger.SetLevel(logLevel)
}

// SetOutput configures the log destination.
// When a writer is given, all levels go to it (overriding the stdout/stderr
// separation); used by the simulator's --log-file. When nil, suppresses all output.
func SetOutput(w io.Writer) {
	if w == nil {
		// Suppress output by setting level to a high value
		stdoutLogger.SetLevel(log.FatalLevel + 1)
		stderrLogger.SetLevel(log.FatalLevel + 1)
		usingLogFile = false
		return
	}

	level := stderrLogger.GetLevel()

	usingLogFile = true
	logFileHandle = w

	stdoutLogger = newLogger(w)
	stderrLogger = newLogger(w)
	stdoutLogger.SetLevel(level)
	stderrLogger.SetLevel(level)
}

// SuppressOutput disables INFO/WARN/DEBUG logs while keeping ERROR logs visible.
// Used by the CLI to keep command output to a single line.
func SuppressOutput() {
	stdoutLogger.SetLevel(log.ErrorLevel)
	stderrLogger.SetLevel(log.ErrorLevel)
	cliConfigured = true
}

// RestoreOutput restores normal logging with Unix conventions at INFO level and above.
// INFO/SUCCESS go to stdout, WARN/ERROR/DEBUG go to stderr.
func RestoreOutput() {
	usingLogFile = false

	stdoutLogger = newLogger(os.Stdout)
	stderrLogger = newLogger(os.Stderr)

	stdoutLogger.SetLevel(log.InfoLevel)
	stderrLogger.SetLevel(log.InfoLevel)

	currentStdoutOutput = os.Stdout
	currentStderrOutput = os.Stderr
	cliConfigured = true
}

// IsConfiguredByCLI returns true if logging has been explicitly configured by CLI tools.
func IsConfiguredByCLI() bool {
	return cliConfigured
}

// ============================================================================
// GENERIC LOG INTEGRATION - General purpose writers for third-party libraries
// ============================================================================

// LevelWriter forwards log lines to a specific log level with optional prefix.
// Useful for integrating third-party libraries that expect io.Writer interfaces.
type LevelWriter struct {
	level  string
	prefix string
}

// NewLevelWriter creates a writer that logs each line at the specified level with prefix.
// Valid levels: DEBUG, INFO, WARN, ERROR
func NewLevelWriter(level, prefix string) io.Writer {
	return &LevelWriter{level: strings.ToUpper(level), prefix: prefix}
}

// Write implements io.Writer by splitting input into lines and logging each at the configured level.
func (w *LevelWriter) Write(p []byte) (int, error) {
	lines := strings.Split(string(p), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		msg := line
		if w.prefix != "" {
			msg = w.prefix + ": " + line
		}
		switch w.level {
		case "DEBUG":
			Debug("%s", msg)
		case "INFO":
			Info("%s", msg)
		case "WARN":
			Warn("%s", msg)
		case "ERROR":
			Error("%s", msg)
		default:
			Info("%s", msg)
		}
	}
	return len(p), nil
}

// RedirectStandardLog redirects Go's standard library logger output to the provided writer.
// Passing nil discards standard log output.
func RedirectStandardLog(w io.Writer) {
	if w == nil {
		stdlog.SetOutput(io.Discard)
		return
	}
	stdlog.SetOutput(w)
}
