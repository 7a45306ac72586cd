package logger

import (
	"log/slog"
	"os"
	"strings"
)

var defaultLogger *slog.Logger

// Initialize sets up the global logger with the specified level and format
func Initialize(level, format string) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// Get returns the default logger
func Get() *slog.Logger {
	if defaultLogger == nil {
		// Initialize with default settings if not yet initialized
		Initialize("info", "text")
	}
	return defaultLogger
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// WithService returns a logger with service name attached
func WithService(serviceName string) *slog.Logger {
	return Get().With("service", serviceName)
}

// DatastoreCall logs a document store operation (debug log for external resources)
func DatastoreCall(operation, collection string, args ...any) {
	allArgs := append([]any{"operation", operation, "collection", collection}, args...)
	Get().Debug("→ Datastore call", allArgs...)
}

// DatastoreResult logs a document store result (debug log for external resources)
func DatastoreResult(operation string, err error, args ...any) {
	allArgs := append([]any{"operation", operation}, args...)
	if err != nil {
		allArgs = append(allArgs, "error", err)
		Get().Error("← Datastore call failed", allArgs...)
	} else {
		Get().Debug("← Datastore call succeeded", allArgs...)
	}
}

// MailCall logs an outbound mail dispatch (debug log for external resources)
func MailCall(provider, subject string, args ...any) {
	allArgs := append([]any{"provider", provider, "subject", subject}, args...)
	Get().Debug("→ Mail dispatch", allArgs...)
}

// MailResult logs the outcome of a mail dispatch
func MailResult(provider string, err error, args ...any) {
	allArgs := append([]any{"provider", provider}, args...)
	if err != nil {
		allArgs = append(allArgs, "error", err)
		Get().Error("← Mail dispatch failed", allArgs...)
	} else {
		Get().Debug("← Mail dispatch succeeded", allArgs...)
	}
}
