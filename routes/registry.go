// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package routes

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/quickly-pick-web/views"
)

// Registry resolves each route's view the first time it is needed
// and reuses it afterwards. A failed load is retried on the next call.
type Registry struct {
	mu      sync.Mutex
	loaders map[string]views.Loader
	loaded  map[string]views.View
}

// NewRegistry collects the loaders of every route in the table
func NewRegistry(t *Table) *Registry {
	reg := &Registry{
		loaders: make(map[string]views.Loader),
		loaded:  make(map[string]views.View),
	}
	for _, r := range t.routes {
		if r.Load != nil {
			reg.loaders[r.Name] = r.Load
		}
	}
	return reg
}

// Resolve returns the view for a route name, loading it if needed
func (reg *Registry) Resolve(name string) (views.View, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if v, ok := reg.loaded[name]; ok {
		return v, nil
	}

	load, ok := reg.loaders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}

	v, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load view %s: %w", name, err)
	}

	reg.loaded[name] = v
	slog.Debug("view loaded", "route", name)
	return v, nil
}

// Loaded reports whether a route's view has been resolved
func (reg *Registry) Loaded(name string) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	_, ok := reg.loaded[name]
	return ok
}
