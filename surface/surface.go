// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Canvas is the immediate-mode 2D drawing interface of a surface element.
//
// The method set mirrors the HTML canvas 2D context: drawing state (colors,
// line style, shadow, font, smoothing) is set first and consumed by the next
// path, image, or text operation. Save pushes the whole drawing state and
// Restore pops it, so a caller can isolate the state of one operation.
//
// Canvas implementations are NOT safe for concurrent use. Implementations
// that may be drawn to from several goroutines (for example by image load
// callbacks) also implement sync.Locker, and callers hold the lock for the
// duration of a Save/Restore sequence.
type Canvas interface {
	// Width returns the backing-store width in pixels.
	Width() int

	// Height returns the backing-store height in pixels.
	Height() int

	// Resize changes the backing-store dimensions.
	// Existing content is discarded and the drawing state is reset.
	Resize(width, height int)

	// Save pushes the current drawing state onto a stack.
	Save()

	// Restore pops the drawing state saved by the matching Save.
	// If the stack is empty, Restore is a no-op.
	Restore()

	// SetStrokeColor sets the color used by Stroke.
	SetStrokeColor(c color.Color)

	// SetFillColor sets a solid color used by Fill, FillRect and FillText.
	SetFillColor(c color.Color)

	// SetFillGradient sets a linear gradient used by Fill and FillRect.
	SetFillGradient(g LinearGradient)

	// SetLineWidth sets the stroke width in pixels.
	SetLineWidth(width float64)

	// SetLineCap sets the shape of stroke end points.
	SetLineCap(lineCap LineCap)

	// SetLineJoin sets the shape of stroke joins.
	SetLineJoin(join LineJoin)

	// SetShadow sets the shadow painted beneath subsequent operations.
	// The zero Shadow disables shadows.
	SetShadow(s Shadow)

	// SetFont sets the font used by FillText.
	SetFont(f Font)

	// SetImageSmoothing toggles interpolation for scaled images and
	// anti-aliasing quality where the backend supports it.
	SetImageSmoothing(enabled bool, quality SmoothingQuality)

	// ClearRect sets every pixel in the rectangle to transparent black.
	ClearRect(x, y, w, h float64)

	// FillRect fills the rectangle with the current fill style.
	FillRect(x, y, w, h float64)

	// BeginPath discards the current path.
	BeginPath()

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo adds a straight segment to (x, y).
	LineTo(x, y float64)

	// Ellipse adds an elliptical arc centered at (cx, cy) with radii rx and
	// ry, rotated by rotation radians, sweeping from start to end radians.
	Ellipse(cx, cy, rx, ry, rotation, start, end float64)

	// Stroke strokes the current path with the stroke color and line style.
	Stroke()

	// Fill fills the current path with the current fill style.
	Fill()

	// DrawImage draws img scaled into the rectangle (x, y, w, h).
	// Negative dimensions are normalized; zero dimensions draw nothing.
	DrawImage(img image.Image, x, y, w, h float64)

	// FillText draws s with its alphabetic baseline starting at (x, y).
	FillText(s string, x, y float64)
}

// Element is a surface element: a pixel buffer attached to a container.
type Element interface {
	// Width returns the backing-store width in pixels.
	Width() int

	// Height returns the backing-store height in pixels.
	Height() int

	// SetWidth sets both the backing-store width and the displayed width.
	SetWidth(px int)

	// SetHeight sets both the backing-store height and the displayed height.
	SetHeight(px int)

	// Canvas returns the raw drawing handle of the element.
	Canvas() Canvas
}

// Container is a layout region that can host a surface element.
type Container interface {
	// ClientWidth returns the measured inner width in pixels.
	// Containers that have not been laid out report zero or a small value.
	ClientWidth() int

	// ClientHeight returns the measured inner height in pixels.
	ClientHeight() int

	// Surface returns the first surface element among the container's
	// children, if any.
	Surface() (Element, bool)

	// AppendSurface attaches el as the last child of the container.
	AppendSurface(el Element)
}

// Document resolves identifiers to containers and creates surface elements.
type Document interface {
	// ElementByID returns the container with the given identifier.
	ElementByID(id string) (Container, bool)

	// CreateSurface creates a detached surface element with the given
	// identifier and backing-store dimensions.
	CreateSurface(id string, width, height int) Element
}

// ImageLoader loads images asynchronously.
//
// Load returns immediately. done is called exactly once, later, with either
// the decoded image or the error that prevented loading. The source format
// (path, URL, data URI) is defined by the implementation.
type ImageLoader interface {
	Load(src string, done func(img image.Image, err error))
}
