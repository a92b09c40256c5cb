package binding

import (
	"fmt"
	"sync"
)

var registry = &bindingRegistry{}

// bindingRegistry holds every backend that registered itself, in
// registration order. Registration order is load order; it is preserved for
// diagnostics and used as the ambiguity tie-break, but it is not a semantic
// guarantee.
type bindingRegistry struct {
	mu       sync.RWMutex
	bindings []Binding
}

// Register makes a backend discoverable. Backends typically call this from
// their package init, the same way database/sql drivers register themselves.
// Registering more than one backend is allowed but reported as ambiguous
// during resolution.
func Register(b Binding) error {
	if b == nil {
		return fmt.Errorf("binding cannot be nil")
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	for _, existing := range registry.bindings {
		if existing.Location() == b.Location() {
			return fmt.Errorf("binding at %s already registered", b.Location())
		}
	}

	registry.bindings = append(registry.bindings, b)
	return nil
}

// Bindings returns a snapshot of the registered backends in registration order.
func Bindings() []Binding {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	out := make([]Binding, len(registry.bindings))
	copy(out, registry.bindings)
	return out
}

// Clear empties the registry. Test use only.
func Clear() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.bindings = nil
}

// RegistryLocator discovers backends through the process-wide registry. It
// is the locator the default resolver uses.
type RegistryLocator struct{}

// Locations implements Locator.
func (RegistryLocator) Locations() []string {
	bindings := Bindings()

	seen := make(map[string]struct{}, len(bindings))
	locations := make([]string, 0, len(bindings))
	for _, b := range bindings {
		loc := b.Location()
		if _, dup := seen[loc]; dup {
			continue
		}
		seen[loc] = struct{}{}
		locations = append(locations, loc)
	}
	return locations
}

// Binding implements Locator. When several backends registered, the first
// one in registration order wins.
func (RegistryLocator) Binding() (Binding, error) {
	bindings := Bindings()
	if len(bindings) == 0 {
		return nil, ErrNotFound
	}

	b := bindings[0]
	if b.LoggerFactory() == nil {
		return nil, fmt.Errorf("binding at %s exposes no logger factory: %w", b.Location(), ErrIncompatible)
	}
	return b, nil
}

var _ Locator = RegistryLocator{}
