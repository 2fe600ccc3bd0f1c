// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Backend errors. Errors returned by Open wrap one of them in a
// *BackendError naming the backend.
var (
	ErrBackendNotFound    = errors.New("surface: backend not registered")
	ErrBackendUnavailable = errors.New("surface: backend unavailable")
	ErrNoBackend          = errors.New("surface: no backend available")
)

// BackendError reports a failure to open a named backend.
type BackendError struct {
	Name string
	Err  error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("surface: backend %q: %v", e.Name, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Backend describes a Canvas implementation.
type Backend struct {
	Name string

	// Priority orders automatic selection. Higher wins; ties go to the
	// lexically smaller name.
	Priority int

	// New creates a canvas with the given backing-store size.
	New func(width, height int) (Canvas, error)

	// Available reports whether the backend can run on this system.
	// Nil means always.
	Available func() bool
}

func (b Backend) usable() bool {
	return b.Available == nil || b.Available()
}

// Registry maps backend names to backends. The zero value is ready to use.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// backends is the registry that Register and OpenCanvas use.
var backends Registry

// Register makes a backend available to OpenCanvas. It is meant to be called
// from the init function of the package implementing the backend:
//
//	func init() {
//	    surface.Register(surface.Backend{Name: "gg", Priority: 10, New: newCanvas})
//	}
func Register(b Backend) { backends.Register(b) }

// Backends returns the registered backend names, preferred first.
func Backends() []string { return backends.Names() }

// OpenCanvas creates a canvas with the named backend. An empty name selects
// the preferred available backend.
func OpenCanvas(name string, width, height int) (Canvas, error) {
	return backends.Open(name, width, height)
}

// Register adds b, replacing any backend with the same name.
// It panics if b has no name or no constructor.
func (r *Registry) Register(b Backend) {
	if b.Name == "" || b.New == nil {
		panic("surface: Register needs a name and a constructor")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.backends == nil {
		r.backends = make(map[string]Backend)
	}
	r.backends[b.Name] = b
}

// Unregister removes the named backend.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// Names returns the registered backend names, preferred first.
func (r *Registry) Names() []string {
	list := r.sorted()
	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.Name
	}
	return names
}

// Open creates a canvas with the named backend. With an empty name it tries
// every available backend in order of preference and returns the first
// canvas created; if all of them fail the errors are joined.
func (r *Registry) Open(name string, width, height int) (Canvas, error) {
	if name != "" {
		r.mu.RLock()
		b, ok := r.backends[name]
		r.mu.RUnlock()
		switch {
		case !ok:
			return nil, &BackendError{Name: name, Err: ErrBackendNotFound}
		case !b.usable():
			return nil, &BackendError{Name: name, Err: ErrBackendUnavailable}
		}
		return b.New(width, height)
	}

	var errs []error
	for _, b := range r.sorted() {
		if !b.usable() {
			continue
		}
		cv, err := b.New(width, height)
		if err == nil {
			return cv, nil
		}
		errs = append(errs, &BackendError{Name: b.Name, Err: err})
	}
	if len(errs) == 0 {
		return nil, ErrNoBackend
	}
	return nil, errors.Join(errs...)
}

func (r *Registry) sorted() []Backend {
	r.mu.RLock()
	list := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		list = append(list, b)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Priority != list[j].Priority {
			return list[i].Priority > list[j].Priority
		}
		return list[i].Name < list[j].Name
	})
	return list
}
