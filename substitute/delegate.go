package substitute

import (
	"sync/atomic"

	"github.com/leeforge/logbind/logger"
)

// delegateHolder stores the delegate reference for lock-free reads. A plain
// atomic.Value cannot hold interface values of differing concrete types, so
// the interface is boxed in a pointer-sized cell instead.
type delegateHolder struct {
	p atomic.Pointer[logger.Logger]
}

func (h *delegateHolder) store(d logger.Logger) {
	if d == nil {
		return
	}
	h.p.Store(&d)
}

func (h *delegateHolder) load() logger.Logger {
	if p := h.p.Load(); p != nil {
		return *p
	}
	return nil
}
