// Package facade resolves, exactly once per process (or per explicit reset),
// which logging backend named loggers delegate to, and replays calls that
// were buffered while resolution was in progress.
package facade

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/leeforge/logbind/binding"
	"github.com/leeforge/logbind/config"
	"github.com/leeforge/logbind/logger"
	"github.com/leeforge/logbind/nop"
	"github.com/leeforge/logbind/report"
	"github.com/leeforge/logbind/substitute"
)

// Resolver is the authority over one resolution lifecycle. A process
// normally uses the shared default resolver through the package-level
// functions; tests construct their own with a deterministic locator.
type Resolver struct {
	mu       sync.Mutex
	state    atomic.Int32
	locator  binding.Locator
	settings config.Settings
	subst    *substitute.Factory

	// Written during resolution, before the terminal state store, and only
	// read after a terminal state load.
	bound   binding.Binding
	failure *Error
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithLocator replaces backend discovery.
func WithLocator(l binding.Locator) Option {
	return func(r *Resolver) { r.locator = l }
}

// WithSettings pins the resolver's settings instead of reading the active
// process settings.
func WithSettings(s config.Settings) Option {
	return func(r *Resolver) { r.settings = s }
}

// NewResolver creates an unresolved Resolver discovering backends through
// the process-wide registry unless overridden.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		locator:  binding.RegistryLocator{},
		settings: config.Current(),
		subst:    substitute.NewFactory(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current resolution state.
func (r *Resolver) State() State {
	return State(r.state.Load())
}

func (r *Resolver) setState(s State) {
	r.state.Store(int32(s))
}

// Factory returns the factory of named loggers for the current state,
// resolving first if no resolution was attempted yet. It never blocks beyond
// the one-time resolution critical section.
//
// Re-entrant calls made from within the resolving goroutine's own call graph
// (a backend constructor that logs, for instance) observe StateOngoing on
// the lock-free fast path and receive the substitute factory, so they cannot
// deadlock on the resolution lock.
func (r *Resolver) Factory() (logger.Factory, error) {
	if r.State() == StateUninitialized {
		r.mu.Lock()
		if r.State() == StateUninitialized {
			r.setState(StateOngoing)
			r.performInitialization()
		}
		r.mu.Unlock()
	}

	switch r.State() {
	case StateSuccessful:
		return r.bound.LoggerFactory(), nil
	case StateNopFallback:
		return nop.SharedFactory(), nil
	case StateFailed:
		return nil, r.failure
	case StateOngoing:
		return r.subst, nil
	}
	return nil, newError(KindUnexpected, "resolver in impossible state")
}

// GetLogger returns the logger for name through the resolved factory. It
// never returns nil; once resolution has failed it panics with the original
// fault on every call, matching the fail-fast contract. GetFactory is the
// non-panicking entry point.
func (r *Resolver) GetLogger(name string) logger.Logger {
	f, err := r.Factory()
	if err != nil {
		panic(err)
	}
	return f.GetLogger(name)
}

// Reset forces the resolver back to the uninitialized state and discards the
// substitute pool. Intended for tests; a production process has no reason to
// re-run discovery against an unchanged environment.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bound = nil
	r.failure = nil
	r.subst.Clear()
	r.setState(StateUninitialized)
}

func (r *Resolver) performInitialization() {
	r.bind()
	if r.State() == StateSuccessful {
		r.versionSanityCheck()
	}
}

// bind runs discovery and moves the resolver to a terminal state. Whatever
// the outcome, the fix-up-and-replay pass runs so buffered calls are never
// silently lost: they are delivered on success and reported on failure.
func (r *Resolver) bind() {
	defer r.postBindCleanUp()

	// Constrained platforms cannot enumerate registrations; skip the
	// candidate listing and with it the ambiguity check.
	var locations []string
	if !r.settings.ConstrainedPlatform() {
		locations = r.locator.Locations()
		r.reportAmbiguity(locations)
	}

	b, err := r.locator.Binding()
	switch {
	case err == nil:
		r.bound = b
		r.setState(StateSuccessful)
		r.reportActualBinding(locations)
	case errors.Is(err, binding.ErrNotFound):
		r.setState(StateNopFallback)
		report.Report("no logging backend registered")
		report.Report("defaulting to no-operation (NOP) logger implementation")
	case errors.Is(err, binding.ErrIncompatible):
		r.fail(wrapError(KindIncompatibleBackend, "logging backend is incompatible with this façade", err))
	default:
		r.fail(wrapError(KindUnexpected, "unexpected failure while resolving logging backend", err))
	}
}

func (r *Resolver) fail(e *Error) {
	r.failure = e
	r.setState(StateFailed)
	report.ReportError("failed to bind logging backend", e)
}

func (r *Resolver) postBindCleanUp() {
	r.fixSubstituteLoggers()
	r.replayEvents()
	r.subst.Clear()
}

// fixSubstituteLoggers assigns every pooled substitute its final delegate.
// The substitute factory holds its lock for the whole pass, so no substitute
// can be created mid-fix-up and miss delegate assignment.
func (r *Resolver) fixSubstituteLoggers() {
	r.subst.FixUp(r.delegateFor)
}

func (r *Resolver) delegateFor(name string) logger.Logger {
	switch r.State() {
	case StateSuccessful:
		return r.bound.LoggerFactory().GetLogger(name)
	case StateNopFallback:
		return nop.SharedLogger()
	default:
		// Failed: calls cannot be delivered. A name-only delegate makes the
		// replay engine report the affected logger names.
		return &undeliveredLogger{name: name}
	}
}
