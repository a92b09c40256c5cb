package facade_test

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/leeforge/logbind/binding"
	"github.com/leeforge/logbind/logger"
)

// recordedCall is one call that reached the fake backend.
type recordedCall struct {
	logger   string
	level    logger.Level
	message  string
	replayed bool
}

// recordingBackend is an event-capable fake backend that remembers every
// call in arrival order.
type recordingBackend struct {
	mu      sync.Mutex
	calls   []recordedCall
	loggers map[string]*recordingLogger
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{loggers: make(map[string]*recordingLogger)}
}

func (b *recordingBackend) GetLogger(name string) logger.Logger {
	b.mu.Lock()
	defer b.mu.Unlock()

	if l, ok := b.loggers[name]; ok {
		return l
	}
	l := &recordingLogger{name: name, backend: b}
	b.loggers[name] = l
	return l
}

func (b *recordingBackend) record(c recordedCall) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, c)
}

func (b *recordingBackend) recorded() []recordedCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]recordedCall, len(b.calls))
	copy(out, b.calls)
	return out
}

// messagesFor returns the messages recorded for one logger, in order.
func (b *recordingBackend) messagesFor(name string) []string {
	var out []string
	for _, c := range b.recorded() {
		if c.logger == name {
			out = append(out, c.message)
		}
	}
	return out
}

type recordingLogger struct {
	name    string
	backend *recordingBackend
}

func (l *recordingLogger) Name() string { return l.name }

func (l *recordingLogger) log(level logger.Level, msg string) {
	l.backend.record(recordedCall{logger: l.name, level: level, message: msg})
}

func (l *recordingLogger) Debug(msg string, _ ...zap.Field) { l.log(logger.DebugLevel, msg) }
func (l *recordingLogger) Info(msg string, _ ...zap.Field)  { l.log(logger.InfoLevel, msg) }
func (l *recordingLogger) Warn(msg string, _ ...zap.Field)  { l.log(logger.WarnLevel, msg) }
func (l *recordingLogger) Error(msg string, _ ...zap.Field) { l.log(logger.ErrorLevel, msg) }

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.log(logger.DebugLevel, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.log(logger.InfoLevel, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.log(logger.WarnLevel, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...any) {
	l.log(logger.ErrorLevel, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) LogEvent(ev *logger.Event) {
	msg := ev.Message
	if ev.Args != nil {
		msg = fmt.Sprintf(ev.Message, ev.Args...)
	}
	l.backend.record(recordedCall{logger: l.name, level: ev.Level, message: msg, replayed: true})
}

// plainBackend hands out loggers that are neither no-op nor event-capable,
// so buffered events for them can only be reported by name.
type plainBackend struct{}

func (plainBackend) GetLogger(name string) logger.Logger { return &plainLogger{name: name} }

type plainLogger struct{ name string }

func (l *plainLogger) Name() string { return l.name }

func (*plainLogger) Debug(string, ...zap.Field) {}
func (*plainLogger) Info(string, ...zap.Field)  {}
func (*plainLogger) Warn(string, ...zap.Field)  {}
func (*plainLogger) Error(string, ...zap.Field) {}
func (*plainLogger) Debugf(string, ...any)      {}
func (*plainLogger) Infof(string, ...any)       {}
func (*plainLogger) Warnf(string, ...any)       {}
func (*plainLogger) Errorf(string, ...any)      {}

// fakeBinding wraps any factory as a binding.Binding.
type fakeBinding struct {
	factory logger.Factory
	desc    string
	compat  string
	loc     string
}

func (b *fakeBinding) LoggerFactory() logger.Factory { return b.factory }
func (b *fakeBinding) Description() string           { return b.desc }
func (b *fakeBinding) CompatVersion() string         { return b.compat }
func (b *fakeBinding) Location() string              { return b.loc }

// fakeLocator returns a scripted discovery result and counts how many times
// binding was attempted.
type fakeLocator struct {
	locations []string
	binding   binding.Binding
	err       error
	binds     atomic.Int32

	// beforeBind, when set, runs inside the binding attempt. Used to model
	// backend constructors that log and slow discovery.
	beforeBind func()
}

func (l *fakeLocator) Locations() []string { return l.locations }

func (l *fakeLocator) Binding() (binding.Binding, error) {
	l.binds.Add(1)
	if l.beforeBind != nil {
		l.beforeBind()
	}
	if l.err != nil {
		return nil, l.err
	}
	return l.binding, nil
}
