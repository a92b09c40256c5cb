package facade

import (
	"sync"

	"github.com/leeforge/logbind/logger"
)

var (
	defaultResolver *Resolver
	defaultOnce     sync.Once
)

// Default returns the process-wide resolver backing the package-level
// functions. It is created on first use so that settings and registrations
// made during program init are visible to it.
func Default() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = NewResolver()
	})
	return defaultResolver
}

// GetLogger returns the logger for name. Before resolution completes it
// returns a buffering substitute; afterwards, the backend's logger. It never
// returns nil and never blocks indefinitely.
func GetLogger(name string) logger.Logger {
	return Default().GetLogger(name)
}

// GetLoggerFor returns a logger named after v's dynamic type.
func GetLoggerFor(v any) logger.Logger {
	return Default().getLoggerFor(v)
}

// GetFactory is the lower-level entry point: the factory for the current
// state, or the resolution fault once the resolver has failed.
func GetFactory() (logger.Factory, error) {
	return Default().Factory()
}

// Reset forces the default resolver back to the uninitialized state. Test
// use only.
func Reset() {
	Default().Reset()
}
