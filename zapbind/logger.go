package zapbind

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leeforge/logbind/logger"
)

// zapLogger wraps a named *zap.Logger as a façade logger. It is
// event-capable: buffered events replay through the core with the original
// call time and level, so replayed entries carry call-time data.
type zapLogger struct {
	name string
	zl   *zap.Logger
	sl   *zap.SugaredLogger
}

func newZapLogger(name string, root *zap.Logger) *zapLogger {
	zl := root.Named(name)
	return &zapLogger{
		name: name,
		zl:   zl,
		sl:   zl.Sugar(),
	}
}

func (l *zapLogger) Name() string { return l.name }

func (l *zapLogger) Debug(msg string, fields ...zap.Field) {
	l.zl.Debug(msg, fields...)
}

func (l *zapLogger) Info(msg string, fields ...zap.Field) {
	l.zl.Info(msg, fields...)
}

func (l *zapLogger) Warn(msg string, fields ...zap.Field) {
	l.zl.Warn(msg, fields...)
}

func (l *zapLogger) Error(msg string, fields ...zap.Field) {
	l.zl.Error(msg, fields...)
}

func (l *zapLogger) Debugf(format string, args ...any) {
	l.sl.Debugf(format, args...)
}

func (l *zapLogger) Infof(format string, args ...any) {
	l.sl.Infof(format, args...)
}

func (l *zapLogger) Warnf(format string, args ...any) {
	l.sl.Warnf(format, args...)
}

func (l *zapLogger) Errorf(format string, args ...any) {
	l.sl.Errorf(format, args...)
}

// LogEvent implements logger.EventCapable. The entry is written through the
// core directly so the event's own timestamp survives replay.
func (l *zapLogger) LogEvent(ev *logger.Event) {
	entry := zapcore.Entry{
		Level:      toZapLevel(ev.Level),
		Time:       ev.Time,
		LoggerName: l.zl.Name(),
		Message:    renderMessage(ev),
	}

	if ce := l.zl.Core().Check(entry, nil); ce != nil {
		ce.Write(ev.Fields...)
	}
}

func renderMessage(ev *logger.Event) string {
	if ev.Args != nil {
		return fmt.Sprintf(ev.Message, ev.Args...)
	}
	return ev.Message
}

func toZapLevel(l logger.Level) zapcore.Level {
	switch l {
	case logger.DebugLevel:
		return zapcore.DebugLevel
	case logger.InfoLevel:
		return zapcore.InfoLevel
	case logger.WarnLevel:
		return zapcore.WarnLevel
	case logger.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

var (
	_ logger.Logger       = (*zapLogger)(nil)
	_ logger.EventCapable = (*zapLogger)(nil)
)
