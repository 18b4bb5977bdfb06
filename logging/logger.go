// Package logging provides a minimal logging interface and adapters for the
// PeopleFinder backend.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the pipeline, providers and HTTP layer use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - LogrusAdapter wrapping logrus (used by the server binary)
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging

import (
	"log/slog"

	"github.com/sirupsen/logrus"
)

// Logger defines the minimal logging interface consumed throughout the
// backend. Args are alternating key/value pairs in the slog convention.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// LogrusAdapter wraps a logrus logger, translating key/value args into
// logrus fields.
type LogrusAdapter struct {
	logger *logrus.Logger
}

// NewLogrusAdapter creates a Logger backed by the given logrus logger.
func NewLogrusAdapter(logger *logrus.Logger) Logger {
	return &LogrusAdapter{logger: logger}
}

func (l *LogrusAdapter) fields(args []any) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		fields[key] = args[i+1]
	}
	return fields
}

// Debug logs a debug message.
func (l *LogrusAdapter) Debug(msg string, args ...any) { l.logger.WithFields(l.fields(args)).Debug(msg) }

// Info logs an informational message.
func (l *LogrusAdapter) Info(msg string, args ...any) { l.logger.WithFields(l.fields(args)).Info(msg) }

// Warn logs a warning message.
func (l *LogrusAdapter) Warn(msg string, args ...any) { l.logger.WithFields(l.fields(args)).Warn(msg) }

// Error logs an error message.
func (l *LogrusAdapter) Error(msg string, args ...any) { l.logger.WithFields(l.fields(args)).Error(msg) }

// NoOpLogger discards all log messages. Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}
