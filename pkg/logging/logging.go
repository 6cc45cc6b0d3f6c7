// Package logging wires zerolog for the attempt packages and CLI.
//
// Library packages take their logger from Library, which stays silent until a
// program calls SetupLogger (or hands a logger to the package explicitly via
// its WithLogger option). Failures are never logged here: they belong to the
// caller.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AppName names the XDG state directory and log file.
const AppName = "attempt"

// configured is set once SetupLogger has replaced the global logger.
var configured atomic.Bool

// SetupLogger points the global logger at stderr and the state log file, at
// the level selected by verbosity. From then on Library loggers are live.
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(LevelFor(verbosity))

	path := LogFilePath()
	file, fileErr := openLogFile(path)

	sinks := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}}
	if fileErr == nil {
		sinks = append(sinks, file)
	}

	ctx := zerolog.New(io.MultiWriter(sinks...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()
	configured.Store(true)

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Log file unavailable, writing to stderr only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger initialized")
}

// LevelFor maps a -v count to a zerolog level
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns the global logger tagged with a component name.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Library is GetLogger for library packages: a disabled logger until
// SetupLogger has run, so importing programs see no output by default.
func Library(component string) zerolog.Logger {
	if !configured.Load() {
		return zerolog.Nop()
	}
	return GetLogger(component)
}

// WithFields returns the global logger with extra fields attached
func WithFields(fields map[string]interface{}) zerolog.Logger {
	return log.With().Fields(fields).Logger()
}

// LogFilePath is $XDG_STATE_HOME/attempt/attempt.log
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, AppName, AppName+".log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// LogCommand records which subcommand ran and with what arguments.
func LogCommand(cmd string, args []string) {
	log.Debug().Str("command", cmd).Strs("args", args).Msg("Executing command")
}

// LogOperationStart logs an operation at debug and returns the func that
// logs its completion with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	op := logger.With().Str("operation", operation).Logger()
	op.Debug().Msg("Operation started")
	return func() {
		op.Debug().Dur("duration", time.Since(start)).Msg("Operation completed")
	}
}
