// Package binding defines the contract between the façade and concrete
// logging backends, and the process-wide registry through which backends
// make themselves discoverable.
package binding

import (
	"errors"

	"github.com/leeforge/logbind/logger"
)

var (
	// ErrNotFound indicates that no backend registered itself. The façade
	// degrades to the no-op implementation when it sees this.
	ErrNotFound = errors.New("no logging backend registered")

	// ErrIncompatible indicates that a backend is present but cannot serve
	// the façade, typically because it predates the current contract.
	ErrIncompatible = errors.New("registered logging backend is incompatible")
)

// Binding is the singleton handle a backend exposes to the façade.
type Binding interface {
	// LoggerFactory returns the backend's factory of named loggers.
	LoggerFactory() logger.Factory

	// Description returns a human-readable identifier for the backend.
	Description() string

	// CompatVersion returns the API-compatibility token the backend declares,
	// or the empty string if it declares none.
	CompatVersion() string

	// Location returns where the backend registered from, usually its import
	// path. Used for ambiguity diagnostics only.
	Location() string
}

// Locator discovers candidate backends. The façade depends on this interface
// so that discovery can be replaced in tests.
type Locator interface {
	// Locations returns the registration locations of every candidate,
	// deduplicated, in discovery order.
	Locations() []string

	// Binding returns the backend to bind to, or ErrNotFound / ErrIncompatible
	// (possibly wrapped) when binding is not possible.
	Binding() (Binding, error)
}
