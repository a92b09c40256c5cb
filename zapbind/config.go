package zapbind

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Config represents the backend configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" json:"level" yaml:"level"`

	// Format is the log format (json or console).
	Format string `mapstructure:"format" json:"format" yaml:"format"`

	// Director is the directory where log files are stored. Empty means
	// terminal output only.
	Director string `mapstructure:"director" json:"director" yaml:"director"`

	// LogInTerminal enables logging to the terminal in addition to file.
	LogInTerminal bool `mapstructure:"log-in-terminal" json:"logInTerminal" yaml:"log-in-terminal"`

	// TimeFormat is the time format string (Go time layout).
	TimeFormat string `mapstructure:"time-format" json:"timeFormat" yaml:"time-format"`

	// MaxSize is the maximum size in megabytes of the log file before rotation.
	MaxSize int `mapstructure:"max-size" json:"maxSize" yaml:"max-size"`

	// MaxBackups is the maximum number of rotated log files to retain.
	MaxBackups int `mapstructure:"max-backups" json:"maxBackups" yaml:"max-backups"`

	// MaxAge is the maximum number of days to retain rotated log files.
	MaxAge int `mapstructure:"max-age" json:"maxAge" yaml:"max-age"`

	// Compress enables gzip compression of rotated log files.
	Compress bool `mapstructure:"compress" json:"compress" yaml:"compress"`

	// ShowCaller adds caller information to log entries.
	ShowCaller bool `mapstructure:"show-caller" json:"showCaller" yaml:"show-caller"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Level:         "info",
		Format:        "json",
		Director:      "",
		LogInTerminal: true,
		TimeFormat:    "2006/01/02 - 15:04:05",
		MaxSize:       100,
		MaxBackups:    10,
		MaxAge:        7,
		Compress:      true,
		ShowCaller:    false,
	}
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()

	if c.Level == "" {
		c.Level = d.Level
	}
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.TimeFormat == "" {
		c.TimeFormat = d.TimeFormat
	}
	if c.MaxSize == 0 {
		c.MaxSize = d.MaxSize
	}
	if c.MaxBackups == 0 {
		c.MaxBackups = d.MaxBackups
	}
	if c.MaxAge == 0 {
		c.MaxAge = d.MaxAge
	}
}

func (c Config) zapLevel() zapcore.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}
