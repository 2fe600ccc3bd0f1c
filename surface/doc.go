// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface binds a logical drawing target to a physical pixel surface.
//
// The package defines the capabilities a host must provide for sketch to draw
// anything at all, and the binding policy that turns a target into a live
// surface element:
//
//   - Document: looks up containers by identifier and creates surface elements
//   - Container: a layout region that reports its measured size and holds at
//     most one surface element
//   - Element: the surface element itself, with backing-store dimensions and
//     the raw 2D drawing handle
//   - Canvas: the immediate-mode 2D drawing interface (save/restore, stroke and
//     fill paths, gradients, images, text, shadows, smoothing)
//   - ImageLoader: asynchronous image loading keyed by a source reference
//
// # Binding
//
// Bind resolves an identifier through a Document, reuses the container's
// existing surface element or creates one with the default dimensions, and
// sizes it to the container when the container has been laid out:
//
//	el, err := surface.Bind(doc, "plot", surface.DefaultConfig())
//	if err != nil {
//	    // errors.Is(err, surface.ErrTargetNotFound)
//	}
//	cv := el.Canvas()
//
// A container whose measured width (or height) does not exceed
// Config.MinAutoSize keeps the default width (or height). The two axes are
// decided independently.
//
// # Backends
//
// Canvas implementations register themselves by name, following the
// database/sql driver pattern:
//
//	import _ "github.com/gogpu/sketch/ggcanvas" // registers "gg"
//
//	cv, err := surface.OpenCanvas("", 800, 600)
//
// # Styles
//
// Colors and fonts are CSS strings at the sketch API level. ParseColor and
// ParseFont convert them into values a Canvas understands.
package surface
