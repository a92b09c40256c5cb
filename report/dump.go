package report

import (
	"fmt"

	"github.com/leeforge/logbind/json"
	"github.com/leeforge/logbind/logger"
)

// DumpEvents writes a JSON rendering of events that could not be replayed,
// so their content is at least recoverable from the error stream. Marshal
// failures degrade to a plain diagnostic; dumping must never fail loudly.
func DumpEvents(events []*logger.Event) {
	if len(events) == 0 {
		return
	}

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		ReportError(fmt.Sprintf("could not dump %d dropped events", len(events)), err)
		return
	}

	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, prefix+"dropped events follow")
	fmt.Fprintln(out, string(data))
}
