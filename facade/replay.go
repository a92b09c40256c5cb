package facade

import (
	"fmt"

	"github.com/leeforge/logbind/logger"
	"github.com/leeforge/logbind/report"
)

// replayBatchSize caps how many buffered events one drain iteration holds in
// memory. Fixed, not a tuning knob.
const replayBatchSize = 128

// replayEvents drains the buffered event queue and dispatches each event
// according to its logger's delegate capability: deliver when event-capable,
// discard when no-op, report the logger name otherwise.
func (r *Resolver) replayEvents() {
	queued := r.subst.QueueLen()

	var dropped []*logger.Event
	count := 0
	for {
		batch := r.subst.DrainQueue(replayBatchSize)
		if len(batch) == 0 {
			break
		}
		for _, ev := range batch {
			if count == 0 {
				r.emitReplayOrSubstitutionWarning(ev, queued)
			}
			count++
			if d := r.replaySingleEvent(ev); d != nil {
				dropped = append(dropped, d)
			}
		}
	}

	if len(dropped) > 0 && r.settings.DumpDroppedEvents {
		report.DumpEvents(dropped)
	}
}

// replaySingleEvent dispatches one event and returns it when it was dropped
// because the delegate cannot accept pre-built events.
func (r *Resolver) replaySingleEvent(ev *logger.Event) *logger.Event {
	if ev == nil {
		return nil
	}

	sl, ok := r.subst.Lookup(ev.LoggerName)
	if !ok {
		return nil
	}

	switch {
	case sl.DelegateIsNil():
		// Fix-up runs before replay under the same factory lock; a nil
		// delegate here means that ordering broke.
		panic(newError(KindDelegateInvariant,
			fmt.Sprintf("substitute logger %q reached replay with no delegate", ev.LoggerName)))
	case sl.DelegateIsNop():
		return nil
	case sl.DelegateIsEventCapable():
		sl.Log(ev)
		return nil
	default:
		report.Report(ev.LoggerName)
		return ev
	}
}

// emitReplayOrSubstitutionWarning emits the one-time drain summary, chosen
// by the capability of the first drained event's delegate.
func (r *Resolver) emitReplayOrSubstitutionWarning(ev *logger.Event, queued int) {
	sl, ok := r.subst.Lookup(ev.LoggerName)
	if !ok {
		return
	}

	switch {
	case sl.DelegateIsEventCapable():
		emitReplayWarning(queued)
	case sl.DelegateIsNop():
		// silently discarded, nothing to announce
	default:
		emitSubstitutionWarning()
	}
}

func emitReplayWarning(queued int) {
	report.Reportf("%d logging calls made during the resolution phase were intercepted and are now being replayed", queued)
	report.Report("replayed calls are subject to the filtering rules of the bound backend")
}

func emitSubstitutionWarning() {
	report.Report("the following loggers were accessed during the resolution phase")
	report.Report("calls made to them during that phase could not be delivered; affected logger names follow")
	report.Report("subsequent calls to these loggers will work as normally expected")
}
