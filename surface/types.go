// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image/color"
)

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap (no extension).
	LineCapButt LineCap = iota

	// LineCapRound specifies a semicircular line cap.
	LineCapRound

	// LineCapSquare specifies a square line cap (extends by half width).
	LineCapSquare
)

// String returns the CSS keyword for the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota

	// LineJoinRound specifies a rounded join.
	LineJoinRound

	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the CSS keyword for the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "unknown"
	}
}

// SmoothingQuality is the requested quality of image interpolation.
type SmoothingQuality uint8

const (
	// SmoothingLow prefers speed.
	SmoothingLow SmoothingQuality = iota

	// SmoothingMedium balances speed and quality.
	SmoothingMedium

	// SmoothingHigh prefers quality.
	SmoothingHigh
)

// Shadow describes a blurred, offset copy of a drawing operation painted
// beneath it. The zero value paints no shadow.
type Shadow struct {
	// Color is the shadow color. A fully transparent color disables the shadow.
	Color color.Color

	// Blur is the blur amount in pixels, as in the canvas shadowBlur
	// property. The Gaussian standard deviation is Blur/2.
	Blur float64

	// OffsetX and OffsetY displace the shadow from the shape.
	OffsetX, OffsetY float64
}

// Visible reports whether painting the shadow has any effect.
func (s Shadow) Visible() bool {
	if s.Color == nil {
		return false
	}
	_, _, _, a := s.Color.RGBA()
	if a == 0 {
		return false
	}
	return s.Blur > 0 || s.OffsetX != 0 || s.OffsetY != 0
}

// ColorStop is a color at a relative offset along a gradient.
type ColorStop struct {
	// Offset is in the range [0, 1].
	Offset float64
	Color  color.Color
}

// LinearGradient is a color gradient along the line from (X0, Y0) to (X1, Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
}

// NewLinearGradient creates a gradient from (x0, y0) to (x1, y1) with no stops.
func NewLinearGradient(x0, y0, x1, y1 float64) LinearGradient {
	return LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop returns a copy of g with an additional stop.
func (g LinearGradient) AddColorStop(offset float64, c color.Color) LinearGradient {
	stops := make([]ColorStop, len(g.Stops), len(g.Stops)+1)
	copy(stops, g.Stops)
	g.Stops = append(stops, ColorStop{Offset: offset, Color: c})
	return g
}
