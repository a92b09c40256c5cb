// Package nop provides the no-operation logger used when no backend is
// discoverable. All calls are discarded.
package nop

import (
	"go.uber.org/zap"

	"github.com/leeforge/logbind/logger"
)

// Logger discards every call. A single shared instance is handed out for
// every name; the name of a discarded call carries no information.
type Logger struct{}

var sharedLogger = &Logger{}

// SharedLogger returns the process-wide no-op logger.
func SharedLogger() *Logger { return sharedLogger }

func (*Logger) Name() string { return "NOP" }

func (*Logger) Debug(string, ...zap.Field) {}
func (*Logger) Info(string, ...zap.Field)  {}
func (*Logger) Warn(string, ...zap.Field)  {}
func (*Logger) Error(string, ...zap.Field) {}

func (*Logger) Debugf(string, ...any) {}
func (*Logger) Infof(string, ...any)  {}
func (*Logger) Warnf(string, ...any)  {}
func (*Logger) Errorf(string, ...any) {}

// Factory hands out the shared no-op logger for every name.
type Factory struct{}

var sharedFactory = &Factory{}

// SharedFactory returns the process-wide no-op factory.
func SharedFactory() *Factory { return sharedFactory }

// GetLogger implements logger.Factory.
func (*Factory) GetLogger(string) logger.Logger { return sharedLogger }

var (
	_ logger.Logger  = (*Logger)(nil)
	_ logger.Factory = (*Factory)(nil)
)
