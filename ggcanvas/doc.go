// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggcanvas implements surface.Canvas on top of a gg.Context.
//
// The data flow is:
//
//	sketch.Context (queue) -> surface.Canvas calls -> gg.Context -> Pixmap
//
// # Drawing State
//
// gg.Context keeps only the transform, clip and mask on its Push/Pop stack.
// Canvas keeps the full canvas drawing state (colors, gradient, line style,
// shadow, font, smoothing) on its own stack and applies it to the gg.Context
// at the moment a path, image or text is painted.
//
// # Shadows
//
// An operation painted with a visible shadow is first rendered into an
// offscreen layer. The layer's coverage is blurred with
// github.com/anthonynsimon/bild/blur, tinted with the shadow color and
// composited at the shadow offset before the operation itself is painted.
//
// # Text
//
// Text uses the Go font family embedded in golang.org/x/image/font/gofont.
// Monospace family names select Go Mono; every other family selects Go.
// Weight and style pick the bold and italic variants.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. It implements sync.Locker; callers
// that draw from several goroutines hold the lock around each sequence of
// calls. Once closed, every drawing call is a no-op.
//
// # Registration
//
// Importing the package registers the "gg" backend with the surface
// registry:
//
//	import _ "github.com/gogpu/sketch/ggcanvas"
//
//	cv, err := surface.OpenCanvas("gg", 800, 600)
package ggcanvas
