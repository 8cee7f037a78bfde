// Package log provides the structured logging interface used across gammadist.
//
// The interface is a minimal, slog-compatible surface so that the numerical
// packages never depend on a concrete backend. The default global provider is
// backed by zerolog (see zerolog.go); tests swap in a TestLoggerProvider.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("gamma.fit")
//	logger.Debug("gamma fit computed",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, len(sample),
//	    log.ShapeKey, res.K,
//	)

package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key/value pairs. With returns a child logger that
// carries its fields into every subsequent record.
type Logger interface {
	// Debug logs detailed diagnostic information, usually disabled in production.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs conditions that are suspicious but not fatal, such as a
	// degenerate fit.
	Warn(msg string, fields ...any)

	// Error logs error conditions. If the first field is an error it is
	// recorded under ErrAttrKey.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to skip building expensive fields.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers. It is the injection point
// used by SetProvider.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
