// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownBackend is returned when no backend is registered under a name.
var ErrUnknownBackend = errors.New("surface: unknown backend")

// Factory creates a canvas of the given size.
type Factory func(width, height int) (Canvas, error)

// Registry maps backend names to canvas factories.
//
// Backends register themselves from init:
//
//	func init() {
//	    surface.Register("raster", newRasterCanvas)
//	}
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Factory
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

func init() {
	Register("raster", func(w, h int) (Canvas, error) {
		return NewRaster(w, h), nil
	})
	Register("recorder", func(w, h int) (Canvas, error) {
		return NewRecorder(w, h), nil
	})
}

// NewRegistry creates an empty registry.
// Most code should use the global registry via Register and New.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Factory)}
}

// Register adds a backend to the global registry, replacing any previous
// entry with the same name.
func Register(name string, f Factory) {
	globalRegistry.Register(name, f)
}

// New creates a canvas using the named backend from the global registry.
func New(name string, width, height int) (Canvas, error) {
	return globalRegistry.New(name, width, height)
}

// Names returns the registered backend names in the global registry.
func Names() []string {
	return globalRegistry.Names()
}

// Register adds a backend to the registry.
func (r *Registry) Register(name string, f Factory) {
	if f == nil {
		panic("surface: Register factory is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = f
}

// Unregister removes a backend.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// New creates a canvas with the named backend.
func (r *Registry) New(name string, width, height int) (Canvas, error) {
	r.mu.RLock()
	f, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return f(width, height)
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
