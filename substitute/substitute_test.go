package substitute

import (
	"fmt"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/leeforge/logbind/logger"
	"github.com/leeforge/logbind/nop"
)

// capturingLogger is an event-capable delegate for tests.
type capturingLogger struct {
	name   string
	mu     sync.Mutex
	lines  []string
	events []*logger.Event
}

func (c *capturingLogger) Name() string { return c.name }

func (c *capturingLogger) line(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, s)
}

func (c *capturingLogger) Debug(msg string, _ ...zap.Field) { c.line(msg) }
func (c *capturingLogger) Info(msg string, _ ...zap.Field)  { c.line(msg) }
func (c *capturingLogger) Warn(msg string, _ ...zap.Field)  { c.line(msg) }
func (c *capturingLogger) Error(msg string, _ ...zap.Field) { c.line(msg) }

func (c *capturingLogger) Debugf(format string, args ...any) { c.line(fmt.Sprintf(format, args...)) }
func (c *capturingLogger) Infof(format string, args ...any)  { c.line(fmt.Sprintf(format, args...)) }
func (c *capturingLogger) Warnf(format string, args ...any)  { c.line(fmt.Sprintf(format, args...)) }
func (c *capturingLogger) Errorf(format string, args ...any) { c.line(fmt.Sprintf(format, args...)) }

func (c *capturingLogger) LogEvent(ev *logger.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func TestGetLoggerIdempotentPerName(t *testing.T) {
	f := NewFactory()

	a := f.Get("service")
	b := f.Get("service")
	c := f.Get("other")

	if a != b {
		t.Error("same name should return the same substitute")
	}
	if a == c {
		t.Error("different names should return different substitutes")
	}
	if a.Name() != "service" {
		t.Errorf("Name() = %q, want %q", a.Name(), "service")
	}
}

func TestCallsAreBufferedInFIFOOrder(t *testing.T) {
	f := NewFactory()

	a := f.Get("a")
	b := f.Get("b")

	a.Info("first")
	b.Warn("second")
	a.Errorf("third %d", 3)

	if got := f.QueueLen(); got != 3 {
		t.Fatalf("QueueLen() = %d, want 3", got)
	}

	batch := f.DrainQueue(2)
	if len(batch) != 2 {
		t.Fatalf("DrainQueue(2) returned %d events", len(batch))
	}
	if batch[0].Message != "first" || batch[0].LoggerName != "a" {
		t.Errorf("unexpected first event: %+v", batch[0])
	}
	if batch[1].Message != "second" || batch[1].Level != logger.WarnLevel {
		t.Errorf("unexpected second event: %+v", batch[1])
	}

	rest := f.DrainQueue(128)
	if len(rest) != 1 {
		t.Fatalf("expected 1 remaining event, got %d", len(rest))
	}
	if rest[0].Message != "third %d" || len(rest[0].Args) != 1 {
		t.Errorf("formatted call should keep raw format and args: %+v", rest[0])
	}
	if rest[0].Goroutine == 0 {
		t.Error("event should carry the calling goroutine id")
	}

	if again := f.DrainQueue(128); len(again) != 0 {
		t.Errorf("drained queue should be empty, got %d events", len(again))
	}
}

func TestForwardingAfterDelegateAssignment(t *testing.T) {
	f := NewFactory()
	l := f.Get("svc")

	l.Info("buffered")

	d := &capturingLogger{name: "svc"}
	l.SetDelegate(d)

	l.Info("forwarded")
	l.Debugf("formatted %s", "too")

	if got := f.QueueLen(); got != 1 {
		t.Errorf("only the pre-delegate call should be buffered, QueueLen() = %d", got)
	}
	if len(d.lines) != 2 || d.lines[0] != "forwarded" || d.lines[1] != "formatted too" {
		t.Errorf("unexpected forwarded lines: %v", d.lines)
	}
}

func TestDelegateCapabilityProbes(t *testing.T) {
	f := NewFactory()

	l := f.Get("probe")
	if !l.DelegateIsNil() {
		t.Error("fresh substitute should have nil delegate")
	}

	l.SetDelegate(nop.SharedLogger())
	if l.DelegateIsNil() || !l.DelegateIsNop() || l.DelegateIsEventCapable() {
		t.Error("nop delegate misclassified")
	}

	l2 := f.Get("probe2")
	l2.SetDelegate(&capturingLogger{name: "probe2"})
	if !l2.DelegateIsEventCapable() || l2.DelegateIsNop() {
		t.Error("event-capable delegate misclassified")
	}
}

func TestLogDeliversEventToEventCapableDelegate(t *testing.T) {
	f := NewFactory()
	l := f.Get("svc")

	d := &capturingLogger{name: "svc"}
	l.SetDelegate(d)

	ev := &logger.Event{LoggerName: "svc", Level: logger.InfoLevel, Message: "replayed"}
	l.Log(ev)

	if len(d.events) != 1 || d.events[0] != ev {
		t.Errorf("event not delivered: %v", d.events)
	}
}

func TestSubstituteCreatedAfterSealDoesNotBuffer(t *testing.T) {
	f := NewFactory()

	f.MarkPostInitialization()
	l := f.Get("late")
	l.Info("dropped")

	if got := f.QueueLen(); got != 0 {
		t.Errorf("sealed factory should not buffer, QueueLen() = %d", got)
	}
}

func TestFixUpAssignsAllPooledSubstitutesAndSeals(t *testing.T) {
	f := NewFactory()

	a := f.Get("a")
	b := f.Get("b")
	a.Info("before fixup")

	delegates := make(map[string]*capturingLogger)
	f.FixUp(func(name string) logger.Logger {
		d := &capturingLogger{name: name}
		delegates[name] = d
		return d
	})

	if a.DelegateIsNil() || b.DelegateIsNil() {
		t.Fatal("fixup must assign every pooled substitute a delegate")
	}

	a.Info("after fixup")
	if len(delegates["a"].lines) != 1 || delegates["a"].lines[0] != "after fixup" {
		t.Errorf("post-fixup call should forward, got %v", delegates["a"].lines)
	}
}

func TestClearReleasesPoolAndQueue(t *testing.T) {
	f := NewFactory()

	a := f.Get("a")
	a.Info("queued")
	f.Clear()

	if got := f.QueueLen(); got != 0 {
		t.Errorf("Clear should discard queued events, QueueLen() = %d", got)
	}
	if f.Get("a") == a {
		t.Error("Clear should release the pool")
	}
}

func TestConcurrentBufferingLosesNothing(t *testing.T) {
	f := NewFactory()

	const workers = 8
	const calls = 50

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			l := f.Get(fmt.Sprintf("w%d", w))
			for i := 0; i < calls; i++ {
				l.Infof("call %d", i)
			}
		}(w)
	}
	wg.Wait()

	if got := f.QueueLen(); got != workers*calls {
		t.Fatalf("QueueLen() = %d, want %d", got, workers*calls)
	}

	// per-logger order is the issue order
	seen := make(map[string]int)
	for {
		batch := f.DrainQueue(64)
		if len(batch) == 0 {
			break
		}
		for _, ev := range batch {
			want := seen[ev.LoggerName]
			if got := ev.Args[0].(int); got != want {
				t.Fatalf("logger %s: event out of order, got call %d, want %d", ev.LoggerName, got, want)
			}
			seen[ev.LoggerName]++
		}
	}
}

func TestGoroutineIDDiffersAcrossGoroutines(t *testing.T) {
	id := goroutineID()
	if id == 0 {
		t.Fatal("goroutineID() = 0")
	}

	ch := make(chan uint64, 1)
	go func() { ch <- goroutineID() }()
	if other := <-ch; other == id {
		t.Errorf("distinct goroutines should have distinct ids, both %d", id)
	}
}
