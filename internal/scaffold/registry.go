package scaffold

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps scaffold names to scaffolds. The caller owns its contents;
// nothing is discovered implicitly.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Scaffold
}

// NewRegistry creates a registry holding the given scaffolds.
func NewRegistry(scaffolds ...*Scaffold) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Scaffold, len(scaffolds))}
	for _, s := range scaffolds {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a scaffold. Names must be unique.
func (r *Registry) Register(s *Scaffold) error {
	if s == nil || s.Name == "" {
		return fmt.Errorf("scaffold name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[s.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateScaffold, s.Name)
	}
	r.byName[s.Name] = s
	return nil
}

// Lookup returns the scaffold registered under name.
func (r *Registry) Lookup(name string) (*Scaffold, error) {
	r.mu.RLock()
	s, ok := r.byName[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownScaffold, name, strings.Join(r.Names(), ", "))
	}
	return s, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the registered scaffolds sorted by name.
func (r *Registry) List() []*Scaffold {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Scaffold, 0, len(names))
	for _, name := range names {
		out = append(out, r.byName[name])
	}
	return out
}
