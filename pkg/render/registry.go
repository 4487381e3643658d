package render

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrRendererNotFound is returned by Get for unknown names.
	ErrRendererNotFound = errors.New("render: renderer not found")
	// ErrDuplicateRenderer is returned when a name is registered twice.
	ErrDuplicateRenderer = errors.New("render: renderer already registered")
)

// Registry stores renderers by name.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
	fallback  string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register adds renderer under its Name. The first registered renderer
// becomes the default.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRenderer, name)
	}
	r.renderers[name] = renderer
	if r.fallback == "" {
		r.fallback = name
	}
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name. An empty name returns the default.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == "" {
		name = r.fallback
	}
	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	return renderer, nil
}

// SetDefault selects the renderer returned for an empty name.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.renderers[name]; !ok {
		return fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	r.fallback = name
	return nil
}

// List returns the sorted renderer names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
