// Package zapbind is the bundled zap-based logging backend. Importing it
// does nothing by itself; call Register (or binding.Register with a Binding
// built by New) to make it discoverable.
package zapbind

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leeforge/logbind/binding"
	"github.com/leeforge/logbind/logger"
)

// CompatVersion is the compatibility token this backend declares.
const CompatVersion = "1.7"

// Location is where this backend registers from.
const Location = "github.com/leeforge/logbind/zapbind"

// Binding exposes the zap backend to the façade.
type Binding struct {
	factory *Factory
}

// New builds a Binding from the given config.
func New(config Config) *Binding {
	config.applyDefaults()
	return &Binding{
		factory: &Factory{root: buildRoot(config)},
	}
}

func buildRoot(config Config) *zap.Logger {
	core := zapcore.NewCore(newEncoder(config), newWriteSyncer(config), config.zapLevel())
	zl := zap.New(core)
	if config.ShowCaller {
		zl = zl.WithOptions(zap.AddCaller(), zap.AddCallerSkip(1))
	}
	return zl
}

// Register builds a Binding from config and registers it with the
// process-wide registry.
func Register(config Config) error {
	return binding.Register(New(config))
}

// LoggerFactory implements binding.Binding.
func (b *Binding) LoggerFactory() logger.Factory { return b.factory }

// Description implements binding.Binding.
func (b *Binding) Description() string { return "zapbind" }

// CompatVersion implements binding.Binding.
func (b *Binding) CompatVersion() string { return CompatVersion }

// Location implements binding.Binding.
func (b *Binding) Location() string { return Location }

// Factory creates and manages named loggers over a shared root logger.
type Factory struct {
	root    *zap.Logger
	loggers sync.Map // map[string]*zapLogger
}

// GetLogger returns a named logger, creating it if necessary.
func (f *Factory) GetLogger(name string) logger.Logger {
	if v, ok := f.loggers.Load(name); ok {
		return v.(*zapLogger)
	}

	l := newZapLogger(name, f.root)
	actual, loaded := f.loggers.LoadOrStore(name, l)
	if loaded {
		return actual.(*zapLogger)
	}
	return l
}

var (
	_ binding.Binding = (*Binding)(nil)
	_ logger.Factory  = (*Factory)(nil)
)
