package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores named line formats so configuration files can refer to
// them by name.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]LineFormat
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]LineFormat),
	}
}

// DefaultRegistry returns a registry holding the built-in formats.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister("lua", LuaStringKey(0))
	return r
}

// Register adds a format by name. Duplicate names return an error.
func (r *Registry) Register(name string, format LineFormat) error {
	if name == "" {
		return fmt.Errorf("render: format name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formats[name]; exists {
		return fmt.Errorf("render: format %q already registered", name)
	}
	r.formats[name] = format
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, format LineFormat) {
	if err := r.Register(name, format); err != nil {
		panic(err)
	}
}

// Get retrieves a format by name.
func (r *Registry) Get(name string) (LineFormat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	format, ok := r.formats[name]
	if !ok {
		return LineFormat{}, fmt.Errorf("render: format %q not found", name)
	}
	return format, nil
}

// List returns a sorted list of format names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
