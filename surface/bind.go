// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
)

// Binding defaults.
const (
	// DefaultWidth is the backing-store width of a newly created surface element.
	DefaultWidth = 1200

	// DefaultHeight is the backing-store height of a newly created surface element.
	DefaultHeight = 700

	// DefaultMinAutoSize is the measured container size, in pixels, that must
	// be exceeded before the surface adopts the container's size.
	DefaultMinAutoSize = 100

	// DefaultSurfaceID is the identifier given to created surface elements.
	DefaultSurfaceID = "cnv"
)

// ErrTargetNotFound is matched by errors returned when a target cannot be
// resolved to a container.
var ErrTargetNotFound = errors.New("surface: target not found")

// TargetNotFoundError reports an identifier that did not resolve to a
// container, or a nil container.
type TargetNotFoundError struct {
	Target string

	// Nil is set when the container itself was nil.
	Nil bool
}

func (e *TargetNotFoundError) Error() string {
	if e.Nil {
		return "surface: target not found: nil container"
	}
	return fmt.Sprintf("surface: target not found: %q", e.Target)
}

// Is reports whether target is ErrTargetNotFound.
func (e *TargetNotFoundError) Is(target error) bool {
	return target == ErrTargetNotFound
}

// Config holds the binding policy values.
// Zero fields are replaced by the package defaults.
type Config struct {
	DefaultWidth  int    `toml:"default_width"`
	DefaultHeight int    `toml:"default_height"`
	MinAutoSize   int    `toml:"min_auto_size"`
	SurfaceID     string `toml:"surface_id"`
}

// DefaultConfig returns the default binding policy.
func DefaultConfig() Config {
	return Config{
		DefaultWidth:  DefaultWidth,
		DefaultHeight: DefaultHeight,
		MinAutoSize:   DefaultMinAutoSize,
		SurfaceID:     DefaultSurfaceID,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.DefaultWidth <= 0 {
		c.DefaultWidth = d.DefaultWidth
	}
	if c.DefaultHeight <= 0 {
		c.DefaultHeight = d.DefaultHeight
	}
	if c.MinAutoSize <= 0 {
		c.MinAutoSize = d.MinAutoSize
	}
	if c.SurfaceID == "" {
		c.SurfaceID = d.SurfaceID
	}
	return c
}

// Bind resolves id through doc and binds the container's surface element.
// It returns a *TargetNotFoundError when no container has that identifier;
// in that case no surface element is created.
func Bind(doc Document, id string, cfg Config) (Element, error) {
	c, ok := doc.ElementByID(id)
	if !ok || c == nil {
		return nil, &TargetNotFoundError{Target: id}
	}
	return BindContainer(doc, c, cfg)
}

// BindContainer binds the surface element of c, creating and attaching one
// when c has none. A created element gets the default dimensions. Either
// way, each axis adopts the container's measured size when that size exceeds
// cfg.MinAutoSize.
//
// BindContainer only ever adds a child to c; existing children are kept.
func BindContainer(doc Document, c Container, cfg Config) (Element, error) {
	if c == nil {
		return nil, &TargetNotFoundError{Nil: true}
	}
	cfg = cfg.withDefaults()

	el, ok := c.Surface()
	if !ok {
		el = doc.CreateSurface(cfg.SurfaceID, cfg.DefaultWidth, cfg.DefaultHeight)
		c.AppendSurface(el)
	}

	if w := c.ClientWidth(); w > cfg.MinAutoSize {
		el.SetWidth(w)
	}
	if h := c.ClientHeight(); h > cfg.MinAutoSize {
		el.SetHeight(h)
	}
	return el, nil
}
