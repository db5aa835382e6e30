package menu

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Constructor creates a fresh strategy for each lookup.
type Constructor func() Strategy

// Registry maps kinds to strategy constructors. It is filled at startup and read
// for the rest of the process lifetime.
type Registry struct {
	mu           sync.RWMutex
	constructors map[Kind]Constructor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[Kind]Constructor),
	}
}

// Register maps kind to ctor. A later registration for the same kind replaces the
// earlier one.
func (r *Registry) Register(kind Kind, ctor Constructor) *Registry {
	if kind == "" {
		panic("menu kind cannot be empty")
	}
	if ctor == nil {
		panic(fmt.Sprintf("constructor for %s cannot be nil", kind))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[kind] = ctor
	return r
}

// Create builds a new strategy for kind. It reports false when nothing is
// registered; it never substitutes another kind.
func (r *Registry) Create(kind Kind) (Strategy, bool) {
	r.mu.RLock()
	ctor, ok := r.constructors[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Has reports whether kind is registered.
func (r *Registry) Has(kind Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.constructors[kind]
	return ok
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.constructors))
	for k := range r.constructors {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// String returns a debug string representation of the registry
func (r *Registry) String() string {
	var sb strings.Builder
	sb.WriteString("MenuRegistry:\n")
	for _, k := range r.Kinds() {
		sb.WriteString(fmt.Sprintf("  %s\n", k))
	}
	return sb.String()
}
