// Package doorstep is the application root of a small account-entry shell:
// onboarding, login, signup and forgot-password screens composed by a stack
// router, with per-screen form state and confirmation-only submit actions.
//
// App is host-agnostic. The sdlhost package draws it in an SDL2 window and the
// script package drives it from line commands.
package doorstep

import (
	"io"
	"log/slog"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep/internal/logging"
)

// LogOptions configures logging. Apply with SetupLogging before the first
// logger is requested.
type LogOptions struct {
	Path          string    // Full path for the log file including filename (creates parent directories)
	Level         string    // Application level: debug, info, warn, error
	InternalLevel string    // Framework level (router, hosts)
	Console       io.Writer // Console sink; defaults to stderr
}

// SetupLogging applies LogOptions.
func SetupLogging(opts LogOptions) {
	if opts.Console != nil {
		logging.SetConsoleWriter(opts.Console)
	}
	logging.SetLogPath(opts.Path)
	logging.SetRawLogLevel(opts.Level)

	level, ok := logging.ParseLevel(opts.InternalLevel)
	if !ok || opts.InternalLevel == "" {
		level = slog.LevelError
	}
	logging.SetInternalLogLevel(level)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return logging.GetLogger()
}

// GetInternalLogger returns the framework logger.
func GetInternalLogger() *slog.Logger {
	return logging.GetInternalLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	logging.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	logging.SetRawLogLevel(level)
}

// CloseLogger flushes and closes the log file, if any.
func CloseLogger() {
	logging.CloseLogger()
}
