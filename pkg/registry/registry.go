// Package registry maps filter type names to factories, so a filter chain can
// be assembled from configuration by name.
//
// Built-in filters register themselves with Default from their init functions;
// importing a filter package is enough to make its type available.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/trajfilter/pkg/message"
	"github.com/aretw0/trajfilter/pkg/ports"
)

// Filter is the filter shape the registry produces.
type Filter = ports.Filter[message.Adapter]

// Factory creates an unconfigured filter instance with the given name.
type Factory func(name string) Filter

// Registry manages the available filter types.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// Default is the process-wide registry populated by the built-in filter packages.
var Default = NewRegistry()

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a filter type to the registry.
// If a type with the same name exists, it is overwritten.
func (r *Registry) Register(typeName string, fn Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[typeName] = fn
}

// New looks up a filter type by name and creates an instance of it.
// Returns an error if the type is not registered.
func (r *Registry) New(typeName, instanceName string) (Filter, error) {
	r.mu.RLock()
	fn, ok := r.factories[typeName]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("filter type not found: %s", typeName)
	}
	if instanceName == "" {
		return nil, fmt.Errorf("filter of type %s needs an instance name", typeName)
	}

	return fn(instanceName), nil
}

// Has reports whether typeName is registered.
func (r *Registry) Has(typeName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[typeName]
	return ok
}

// Types returns the registered type names in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.factories))
	for name := range r.factories {
		types = append(types, name)
	}
	sort.Strings(types) // Deterministic order
	return types
}

// Register adds a filter type to Default.
func Register(typeName string, fn Factory) {
	Default.Register(typeName, fn)
}
