package nop

import "testing"

func TestSharedSingletons(t *testing.T) {
	if SharedLogger() != SharedLogger() {
		t.Error("SharedLogger should return the same instance")
	}
	if SharedFactory() != SharedFactory() {
		t.Error("SharedFactory should return the same instance")
	}
	if SharedFactory().GetLogger("a") != SharedFactory().GetLogger("b") {
		t.Error("every name should map to the shared no-op logger")
	}
}

func TestCallsAreDiscardedWithoutPanic(t *testing.T) {
	l := SharedLogger()
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
	l.Debugf("%d", 1)
	l.Infof("%d", 2)
	l.Warnf("%d", 3)
	l.Errorf("%d", 4)

	if l.Name() != "NOP" {
		t.Errorf("Name() = %q", l.Name())
	}
}
