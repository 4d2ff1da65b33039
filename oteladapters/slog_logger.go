// Package oteladapters provides OpenTelemetry adapters for the lazyload
// observability interfaces, for users who want plug-and-play observability
// without implementing the interfaces themselves.
package oteladapters

import (
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

// SlogLogger implements lazyload.Logger on top of log/slog. The recommended
// constructor wires the OpenTelemetry slog bridge so controller logs flow
// into the global OpenTelemetry LoggerProvider.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a logger backed by the OpenTelemetry slog bridge,
// using the global OpenTelemetry LoggerProvider.
func NewSlogLogger(name string) *SlogLogger {
	return &SlogLogger{logger: otelslog.NewLogger(name)}
}

// NewSlogLoggerWithHandler creates a logger using the provided slog.Handler
// as-is, without OpenTelemetry integration. Useful when a specific handler
// (JSON to a buffer, a test spy) is needed.
func NewSlogLoggerWithHandler(handler slog.Handler) *SlogLogger {
	return &SlogLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message.
func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}
