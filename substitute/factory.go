package substitute

import (
	"sync"

	"github.com/leeforge/logbind/logger"
)

// Factory owns the substitute-logger pool and the queue of events buffered
// before resolution. All mutation happens under a single factory-wide lock;
// in particular, fix-up and the creation of new substitutes can never
// interleave, so a substitute created during a resolution cycle is always
// reached by that cycle's fix-up.
type Factory struct {
	mu       sync.Mutex
	loggers  map[string]*Logger
	queue    []*logger.Event
	postInit bool
}

// NewFactory creates an empty substitute factory.
func NewFactory() *Factory {
	return &Factory{
		loggers: make(map[string]*Logger),
	}
}

// GetLogger implements logger.Factory. Repeated requests for the same name
// within one resolution cycle return the same substitute.
func (f *Factory) GetLogger(name string) logger.Logger {
	return f.Get(name)
}

// Get returns the substitute for name, creating it if necessary.
func (f *Factory) Get(name string) *Logger {
	f.mu.Lock()
	defer f.mu.Unlock()

	if l, ok := f.loggers[name]; ok {
		return l
	}

	l := newLogger(name, f, f.postInit)
	f.loggers[name] = l
	return l
}

// Lookup returns the pooled substitute for name, if any.
func (f *Factory) Lookup(name string) (*Logger, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.loggers[name]
	return l, ok
}

// Loggers returns a snapshot of the pooled substitutes.
func (f *Factory) Loggers() []*Logger {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*Logger, 0, len(f.loggers))
	for _, l := range f.loggers {
		out = append(out, l)
	}
	return out
}

// enqueue appends a buffered event. Events arriving after the factory was
// sealed are dropped; replay has already run and nothing would drain them.
func (f *Factory) enqueue(ev *logger.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.postInit {
		return
	}
	f.queue = append(f.queue, ev)
}

// QueueLen returns the number of buffered events.
func (f *Factory) QueueLen() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// DrainQueue removes and returns up to max buffered events in FIFO order.
// It returns an empty slice when the queue is exhausted and never blocks.
func (f *Factory) DrainQueue(max int) []*logger.Event {
	f.mu.Lock()
	defer f.mu.Unlock()

	if max > len(f.queue) {
		max = len(f.queue)
	}
	if max <= 0 {
		return nil
	}

	batch := make([]*logger.Event, max)
	copy(batch, f.queue[:max])
	f.queue = f.queue[max:]
	return batch
}

// MarkPostInitialization seals the factory: substitutes created afterwards
// no longer buffer.
func (f *Factory) MarkPostInitialization() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.postInit = true
}

// FixUp seals the factory and assigns each pooled substitute the delegate
// returned by resolve for its name, all under the factory lock.
func (f *Factory) FixUp(resolve func(name string) logger.Logger) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.postInit = true
	for _, l := range f.loggers {
		l.SetDelegate(resolve(l.name))
	}
}

// Clear releases the pool and discards any remaining queued events. The
// factory is reusable afterwards, which is what the test-only reset of the
// resolver relies on.
func (f *Factory) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.loggers = make(map[string]*Logger)
	f.queue = nil
	f.postInit = false
}

var _ logger.Factory = (*Factory)(nil)
