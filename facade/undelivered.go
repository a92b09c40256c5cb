package facade

import (
	"go.uber.org/zap"

	"github.com/leeforge/logbind/logger"
)

// undeliveredLogger is the delegate assigned when resolution failed. It
// drops live calls, and because it is neither no-op nor event-capable the
// replay engine reports the names of loggers whose buffered calls were lost.
type undeliveredLogger struct {
	name string
}

func (l *undeliveredLogger) Name() string { return l.name }

func (*undeliveredLogger) Debug(string, ...zap.Field) {}
func (*undeliveredLogger) Info(string, ...zap.Field)  {}
func (*undeliveredLogger) Warn(string, ...zap.Field)  {}
func (*undeliveredLogger) Error(string, ...zap.Field) {}

func (*undeliveredLogger) Debugf(string, ...any) {}
func (*undeliveredLogger) Infof(string, ...any)  {}
func (*undeliveredLogger) Warnf(string, ...any)  {}
func (*undeliveredLogger) Errorf(string, ...any) {}

var _ logger.Logger = (*undeliveredLogger)(nil)
