// Package registry manages the named stage factories available to pipeline
// definitions. Hosts register their own stages next to the built-ins and
// the compiler looks them up by name.
package registry

import (
	"fmt"
	"sync"

	"github.com/mirageproc/mirage/pkg/pipeline"
	"github.com/mirageproc/mirage/pkg/ports"
)

// Deps carries the collaborators a factory may need.
type Deps struct {
	Random ports.RandomSource
}

// Factory builds a stage from raw definition arguments.
type Factory func(args map[string]any, deps Deps) (pipeline.Stage, error)

// Registry manages the available stage factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Default returns a registry pre-loaded with the built-in stages.
func Default() *Registry {
	r := New()
	registerBuiltins(r)
	return r
}

// Register adds a factory under a name.
// An existing factory with the same name is overwritten.
func (r *Registry) Register(name string, fn Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = fn
}

// Build looks up a factory by name and invokes it.
func (r *Registry) Build(name string, args map[string]any, deps Deps) (pipeline.Stage, error) {
	r.mu.RLock()
	fn, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("stage not registered: %s", name)
	}
	return fn(args, deps)
}

// Names returns the registered stage names, for diagnostics.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}
