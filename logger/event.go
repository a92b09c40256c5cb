package logger

import (
	"time"

	"go.uber.org/zap"
)

// Event is an immutable record of a single logging call made before backend
// resolution completed. Events are produced by substitute loggers and
// consumed exactly once during replay.
//
// Message and Args are carried raw; placeholder substitution is the
// responsibility of whoever finally emits the event.
type Event struct {
	// LoggerName is the name of the logger the call was made on.
	LoggerName string `json:"logger"`
	// Level is the severity of the call.
	Level Level `json:"level"`
	// Message is the raw message, or the format string for formatted calls.
	Message string `json:"message"`
	// Args holds the arguments of a formatted call, nil otherwise.
	Args []any `json:"args,omitempty"`
	// Fields holds the structured fields of the call, nil for formatted calls.
	Fields []zap.Field `json:"-"`
	// Time is when the call was made, not when it is replayed.
	Time time.Time `json:"time"`
	// Goroutine identifies the goroutine the call was made on.
	Goroutine uint64 `json:"goroutine"`
}
