package routine

import (
	"fmt"
	"sort"
	"sync"
)

// Factory registers routines by name.
type Factory interface {
	// Register adds r under r.Name(), replacing any previous entry.
	Register(r Routine)
	// Get returns the routine registered under name.
	Get(name string) (Routine, error)
	// MustGet is Get that panics on unknown names.
	MustGet(name string) Routine
	// List returns registered names in sorted order.
	List() []string
	// GetAll returns registered routines in List order.
	GetAll() []Routine
}

// DefaultFactory is a concurrency-safe Factory backed by a map.
type DefaultFactory struct {
	mu       sync.RWMutex
	routines map[string]Routine
}

var _ Factory = (*DefaultFactory)(nil)

// NewFactory returns an empty factory.
func NewFactory() *DefaultFactory {
	return &DefaultFactory{routines: make(map[string]Routine)}
}

// NewDefaultFactory returns a factory with every built-in routine registered.
func NewDefaultFactory() *DefaultFactory {
	f := NewFactory()
	for _, r := range Builtins() {
		f.Register(r)
	}
	return f
}

// Register adds r under its name.
func (f *DefaultFactory) Register(r Routine) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routines[r.Name()] = r
}

// Get returns the routine registered under name.
func (f *DefaultFactory) Get(name string) (Routine, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	r, ok := f.routines[name]
	if !ok {
		return nil, fmt.Errorf("unknown routine %q", name)
	}
	return r, nil
}

// MustGet returns the routine registered under name or panics.
func (f *DefaultFactory) MustGet(name string) Routine {
	r, err := f.Get(name)
	if err != nil {
		panic(err)
	}
	return r
}

// List returns the registered names in sorted order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.routines))
	for name := range f.routines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns the registered routines in List order.
func (f *DefaultFactory) GetAll() []Routine {
	names := f.List()
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Routine, 0, len(names))
	for _, name := range names {
		out = append(out, f.routines[name])
	}
	return out
}
