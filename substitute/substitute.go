// Package substitute provides the stand-in loggers handed to callers while
// backend resolution is in progress. A substitute records every call as an
// event until a delegate is assigned, then becomes a pure pass-through.
package substitute

import (
	"time"

	"go.uber.org/zap"

	"github.com/leeforge/logbind/logger"
	"github.com/leeforge/logbind/nop"
)

// Logger buffers calls until a delegate is assigned during fix-up, then
// forwards every call to the delegate. Forwarding is lock-free: the delegate
// reference is written exactly once.
type Logger struct {
	name            string
	factory         *Factory
	createdPostInit bool
	delegate        delegateHolder
}

func newLogger(name string, factory *Factory, createdPostInit bool) *Logger {
	return &Logger{
		name:            name,
		factory:         factory,
		createdPostInit: createdPostInit,
	}
}

// Name implements logger.Logger.
func (l *Logger) Name() string { return l.name }

// SetDelegate assigns the resolved logger. Called exactly once per
// resolution cycle, from fix-up, under the owning factory's lock.
func (l *Logger) SetDelegate(d logger.Logger) {
	l.delegate.store(d)
}

// Delegate returns the assigned delegate, or nil before fix-up.
func (l *Logger) Delegate() logger.Logger {
	return l.delegate.load()
}

// DelegateIsNil reports whether no delegate has been assigned yet.
func (l *Logger) DelegateIsNil() bool {
	return l.Delegate() == nil
}

// DelegateIsNop reports whether the delegate is the no-op logger.
func (l *Logger) DelegateIsNop() bool {
	_, ok := l.Delegate().(*nop.Logger)
	return ok
}

// DelegateIsEventCapable reports whether the delegate can accept pre-built
// events, which is what makes replay possible for this logger.
func (l *Logger) DelegateIsEventCapable() bool {
	_, ok := l.Delegate().(logger.EventCapable)
	return ok
}

// Log delivers a buffered event to the delegate. Only meaningful when the
// delegate is event-capable; otherwise the event is dropped.
func (l *Logger) Log(ev *logger.Event) {
	if ec, ok := l.Delegate().(logger.EventCapable); ok {
		ec.LogEvent(ev)
	}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.emit(logger.DebugLevel, msg, nil, fields)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.emit(logger.InfoLevel, msg, nil, fields)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.emit(logger.WarnLevel, msg, nil, fields)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.emit(logger.ErrorLevel, msg, nil, fields)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.emit(logger.DebugLevel, format, args, nil)
}

func (l *Logger) Infof(format string, args ...any) {
	l.emit(logger.InfoLevel, format, args, nil)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.emit(logger.WarnLevel, format, args, nil)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.emit(logger.ErrorLevel, format, args, nil)
}

func (l *Logger) emit(level logger.Level, msg string, args []any, fields []zap.Field) {
	if d := l.Delegate(); d != nil {
		forward(d, level, msg, args, fields)
		return
	}

	// A substitute created after the factory was sealed has nothing to
	// buffer into; its calls are discarded until fix-up reaches it.
	if l.createdPostInit {
		return
	}

	l.factory.enqueue(&logger.Event{
		LoggerName: l.name,
		Level:      level,
		Message:    msg,
		Args:       args,
		Fields:     fields,
		Time:       time.Now(),
		Goroutine:  goroutineID(),
	})
}

func forward(d logger.Logger, level logger.Level, msg string, args []any, fields []zap.Field) {
	if args != nil {
		switch level {
		case logger.DebugLevel:
			d.Debugf(msg, args...)
		case logger.InfoLevel:
			d.Infof(msg, args...)
		case logger.WarnLevel:
			d.Warnf(msg, args...)
		case logger.ErrorLevel:
			d.Errorf(msg, args...)
		}
		return
	}

	switch level {
	case logger.DebugLevel:
		d.Debug(msg, fields...)
	case logger.InfoLevel:
		d.Info(msg, fields...)
	case logger.WarnLevel:
		d.Warn(msg, fields...)
	case logger.ErrorLevel:
		d.Error(msg, fields...)
	}
}

var _ logger.Logger = (*Logger)(nil)
