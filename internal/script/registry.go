package script

import (
	"fmt"
	"sort"
)

// Registry holds all registered scripts, keyed by name.
//
// Register all scripts during startup, then treat the Registry as read-only.
// Reads after that point are safe from any number of goroutines.
type Registry struct {
	scripts map[string]*ReverseScript
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{scripts: make(map[string]*ReverseScript)}
}

// Register adds a script. It fails on an invalid definition or a duplicate
// name; re-registering would mutate state a concurrent conversion may hold.
func (r *Registry) Register(s *ReverseScript) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, exists := r.scripts[s.Name]; exists {
		return fmt.Errorf("script %q already registered", s.Name)
	}
	r.scripts[s.Name] = s
	return nil
}

// Get returns the named script, or an *UnknownScriptError if it was never
// registered.
func (r *Registry) Get(name string) (*ReverseScript, error) {
	s, ok := r.scripts[name]
	if !ok {
		return nil, &UnknownScriptError{Name: name}
	}
	return s, nil
}

// Names returns all registered script names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scripts))
	for name := range r.scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
