// Package report is the diagnostic sink of the façade. Resolution and replay
// write advisory messages here; they are operator-facing text on an error
// stream and never influence control flow.
//
// The façade cannot log its own diagnostics through itself, so this package
// deliberately stays beneath the logging stack.
package report

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const prefix = "LOGBIND: "

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput redirects diagnostics, returning a function that restores the
// previous destination. Test use mostly.
func SetOutput(w io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()

	prev := out
	out = w
	return func() {
		mu.Lock()
		defer mu.Unlock()
		out = prev
	}
}

// Report writes a single diagnostic line. Write errors are swallowed; a
// diagnostic sink that can fail is useless to its callers.
func Report(msg string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, prefix+msg)
}

// Reportf writes a single formatted diagnostic line.
func Reportf(format string, args ...any) {
	Report(fmt.Sprintf(format, args...))
}

// ReportError writes a diagnostic line carrying a cause.
func ReportError(msg string, err error) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s%s: %v\n", prefix, msg, err)
}
