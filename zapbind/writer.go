package zapbind

import (
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newWriteSyncer builds the output for the backend: terminal, a rotated log
// file under Director, or both.
func newWriteSyncer(config Config) zapcore.WriteSyncer {
	if config.Director == "" {
		return zapcore.AddSync(os.Stdout)
	}

	_ = os.MkdirAll(config.Director, 0o755)
	file := &lumberjack.Logger{
		Filename:   filepath.Join(config.Director, "app.log"),
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
		LocalTime:  true,
	}

	if config.LogInTerminal {
		return zapcore.NewMultiWriteSyncer(
			zapcore.AddSync(os.Stdout),
			zapcore.AddSync(file),
		)
	}
	return zapcore.AddSync(file)
}
