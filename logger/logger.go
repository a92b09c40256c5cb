package logger

import (
	"go.uber.org/zap"
)

// Logger is the handle application code logs through. Implementations are
// provided by the bound backend; before a backend is bound, callers receive
// buffering substitutes that satisfy the same interface.
type Logger interface {
	// Name returns the name the logger was requested under.
	Name() string

	// Debug logs a message at DebugLevel.
	Debug(msg string, fields ...zap.Field)
	// Info logs a message at InfoLevel.
	Info(msg string, fields ...zap.Field)
	// Warn logs a message at WarnLevel.
	Warn(msg string, fields ...zap.Field)
	// Error logs a message at ErrorLevel.
	Error(msg string, fields ...zap.Field)

	// Debugf logs a formatted message at DebugLevel.
	Debugf(format string, args ...any)
	// Infof logs a formatted message at InfoLevel.
	Infof(format string, args ...any)
	// Warnf logs a formatted message at WarnLevel.
	Warnf(format string, args ...any)
	// Errorf logs a formatted message at ErrorLevel.
	Errorf(format string, args ...any)
}

// Factory creates and manages named loggers.
type Factory interface {
	// GetLogger returns a named logger, creating it if necessary. Repeated
	// requests for the same name return the same logger.
	GetLogger(name string) Logger
}

// EventCapable is implemented by backend loggers that can accept a pre-built
// Event directly. Replay of buffered events is only possible through this
// interface; backends that do not implement it can only receive live calls.
type EventCapable interface {
	LogEvent(ev *Event)
}
