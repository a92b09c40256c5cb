package facade

import (
	"errors"
	"fmt"
)

// Kind classifies a resolution fault.
type Kind string

const (
	// KindNoBackend: no backend registered. Degrades to no-op, never fatal.
	KindNoBackend Kind = "no_backend"
	// KindIncompatibleBackend: a backend is present but cannot serve the
	// façade. Fatal; re-signaled to the caller of resolution.
	KindIncompatibleBackend Kind = "incompatible_backend"
	// KindUnexpected: any other fault during resolution. Fatal.
	KindUnexpected Kind = "unexpected"
	// KindAmbiguousBinding: more than one backend registered. Report-only.
	KindAmbiguousBinding Kind = "ambiguous_binding"
	// KindVersionMismatch: backend declares an incompatible version token.
	// Report-only.
	KindVersionMismatch Kind = "version_mismatch"
	// KindDelegateInvariant: a substitute reached replay without a delegate.
	// A fix-up ordering bug; signaled as a programming error, never recovered.
	KindDelegateInvariant Kind = "delegate_invariant"
)

// Error is a classified resolution fault.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrapError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// IsKind reports whether err is a façade error of the given kind.
func IsKind(err error, kind Kind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}
