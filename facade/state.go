package facade

// State is the lifecycle state of a resolution cycle.
type State int32

const (
	StateUninitialized State = iota // no resolution attempted yet
	StateOngoing                    // resolution running on some goroutine
	StateFailed                     // resolution failed, every call fails fast
	StateNopFallback                // no backend found, logging disabled
	StateSuccessful                 // backend bound
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateOngoing:
		return "ongoing"
	case StateFailed:
		return "failed"
	case StateNopFallback:
		return "nop_fallback"
	case StateSuccessful:
		return "successful"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends a resolution cycle. Terminal
// states are only left through an explicit reset.
func (s State) Terminal() bool {
	return s == StateFailed || s == StateNopFallback || s == StateSuccessful
}
