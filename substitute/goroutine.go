package substitute

import (
	"runtime"
	"strconv"
	"strings"
)

// goroutineID parses the current goroutine's id from its stack header
// ("goroutine N [running]:"). The runtime does not expose the id directly;
// events only carry it for diagnostics, so a parse failure yields 0.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	s := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return 0
	}
	id, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
