// Package registry provides a name-keyed registry for factories.
// Packages register their variants in init() functions, allowing config
// data to select behaviors by name without hardcoded switches.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps names to values of type T, typically factory functions.
type Registry[T any] struct {
	kind    string // Used in error messages, e.g. "enemy behavior"
	mu      sync.RWMutex
	entries map[string]T
}

// New creates an empty registry. kind names what is registered.
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:    kind,
		entries: make(map[string]T),
	}
}

// Register adds an entry to the registry.
// Typically called from an init() function.
// Panics if the name is already registered.
func (r *Registry[T]) Register(name string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("registry: %s %q already registered", r.kind, name))
	}
	r.entries[name] = v
}

// Get returns the entry for name.
// Returns an error if the name is not registered.
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("registry: unknown %s %q", r.kind, name)
	}
	return v, nil
}

// Exists checks if an entry with the given name is registered.
func (r *Registry[T]) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[name]
	return ok
}

// Names returns all registered names, sorted.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
