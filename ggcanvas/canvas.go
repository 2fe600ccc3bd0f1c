// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggcanvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"sync"

	"github.com/anthonynsimon/bild/transform"
	"github.com/gogpu/gg"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/surface"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ggcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggcanvas: invalid dimensions")
)

// BackendName is the name under which the package registers itself.
const BackendName = "gg"

func init() {
	surface.Register(surface.Backend{
		Name:     BackendName,
		Priority: 10,
		New: func(width, height int) (surface.Canvas, error) {
			return New(width, height)
		},
	})
}

// state is the drawing state saved by Save and restored by Restore.
type state struct {
	strokeColor  color.Color
	fillColor    color.Color
	fillGradient *surface.LinearGradient
	lineWidth    float64
	lineCap      surface.LineCap
	lineJoin     surface.LineJoin
	shadow       surface.Shadow
	font         surface.Font
	smoothing    bool
	quality      surface.SmoothingQuality
}

func defaultState() state {
	return state{
		strokeColor: color.Black,
		fillColor:   color.Black,
		lineWidth:   1,
		lineCap:     surface.LineCapButt,
		lineJoin:    surface.LineJoinMiter,
		font:        surface.Font{Style: "normal", Weight: surface.WeightNormal, Size: 10, Family: "sans-serif"},
		smoothing:   true,
		quality:     surface.SmoothingLow,
	}
}

// segment replays one drawing step onto a gg.Context whose origin sits at
// (ox, oy) in canvas coordinates.
type segment func(dc *gg.Context, ox, oy float64)

// Canvas is a surface.Canvas backed by a gg.Context.
//
// Canvas is NOT safe for concurrent use; see the package documentation.
type Canvas struct {
	sync.Mutex

	dc     *gg.Context
	width  int
	height int

	st      state
	stack   []state
	path    []segment
	pathBox box

	closed bool
}

// New creates a transparent Canvas with the given dimensions.
//
// Returns error if dimensions are invalid.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
		st:     defaultState(),
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int) *Canvas {
	c, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes canvas dimensions, clears the pixels and resets the drawing
// state. Non-positive dimensions are ignored.
func (c *Canvas) Resize(width, height int) {
	if c.closed {
		return
	}
	if width <= 0 || height <= 0 {
		sketch.Logger().Warn("ggcanvas: ignoring resize",
			"width", width, "height", height)
		return
	}
	if err := c.dc.Resize(width, height); err != nil {
		sketch.Logger().Warn("ggcanvas: resize failed", "err", err)
		return
	}
	c.dc.ClearWithColor(gg.Transparent)
	c.width = width
	c.height = height
	c.st = defaultState()
	c.stack = c.stack[:0]
	c.path = nil
	c.pathBox = box{}
}

// Save pushes the current drawing state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.st)
}

// Restore pops the last saved drawing state.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.st = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// SetStrokeColor sets the stroke color.
func (c *Canvas) SetStrokeColor(col color.Color) {
	c.st.strokeColor = col
}

// SetFillColor sets a solid fill color.
func (c *Canvas) SetFillColor(col color.Color) {
	c.st.fillColor = col
	c.st.fillGradient = nil
}

// SetFillGradient sets a linear gradient fill.
func (c *Canvas) SetFillGradient(g surface.LinearGradient) {
	c.st.fillGradient = &g
}

// SetLineWidth sets the stroke width. Non-positive and NaN values are ignored.
func (c *Canvas) SetLineWidth(width float64) {
	if width > 0 && !math.IsInf(width, 0) {
		c.st.lineWidth = width
	}
}

// SetLineCap sets the stroke cap.
func (c *Canvas) SetLineCap(lineCap surface.LineCap) {
	c.st.lineCap = lineCap
}

// SetLineJoin sets the stroke join.
func (c *Canvas) SetLineJoin(join surface.LineJoin) {
	c.st.lineJoin = join
}

// SetShadow sets the shadow for subsequent operations.
func (c *Canvas) SetShadow(s surface.Shadow) {
	c.st.shadow = s
}

// SetFont sets the text font.
func (c *Canvas) SetFont(f surface.Font) {
	c.st.font = f
}

// SetImageSmoothing toggles image interpolation.
func (c *Canvas) SetImageSmoothing(enabled bool, quality surface.SmoothingQuality) {
	c.st.smoothing = enabled
	c.st.quality = quality
}

// ClearRect sets the pixels in the rectangle to transparent black.
// Shadows and fill styles do not apply.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	if c.closed {
		return
	}
	r := pixelRect(x, y, w, h).Intersect(image.Rect(0, 0, c.width, c.height))
	if r.Empty() {
		return
	}
	if r == image.Rect(0, 0, c.width, c.height) {
		c.dc.ClearWithColor(gg.Transparent)
		return
	}
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			c.dc.SetPixel(px, py, gg.Transparent)
		}
	}
}

// FillRect fills a rectangle with the current fill style.
func (c *Canvas) FillRect(x, y, w, h float64) {
	st := c.st
	c.paint(pixelRect(x, y, w, h), func(dc *gg.Context, ox, oy float64) {
		applyFill(dc, st, ox, oy)
		dc.DrawRectangle(x-ox, y-oy, w, h)
		if err := dc.Fill(); err != nil {
			sketch.Logger().Warn("ggcanvas: fill rect failed", "err", err)
		}
	})
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
	c.pathBox = box{}
}

// MoveTo starts a new subpath.
func (c *Canvas) MoveTo(x, y float64) {
	c.pathBox.add(x, y)
	c.path = append(c.path, func(dc *gg.Context, ox, oy float64) { dc.MoveTo(x-ox, y-oy) })
}

// LineTo adds a line segment.
func (c *Canvas) LineTo(x, y float64) {
	c.pathBox.add(x, y)
	c.path = append(c.path, func(dc *gg.Context, ox, oy float64) { dc.LineTo(x-ox, y-oy) })
}

// Ellipse adds an elliptical arc. Negative radii are treated as their
// magnitude. A sweep of 2π or more adds a closed ellipse.
func (c *Canvas) Ellipse(cx, cy, rx, ry, rotation, start, end float64) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	full := math.Abs(end-start) >= 2*math.Pi
	r := math.Max(rx, ry)
	c.pathBox.add(cx-r, cy-r)
	c.pathBox.add(cx+r, cy+r)
	c.path = append(c.path, func(dc *gg.Context, ox, oy float64) {
		cx, cy := cx-ox, cy-oy
		if rotation != 0 {
			dc.Push()
			dc.RotateAbout(rotation, cx, cy)
			defer dc.Pop()
		}
		if full {
			dc.DrawEllipse(cx, cy, rx, ry)
			return
		}
		dc.DrawEllipticalArc(cx, cy, rx, ry, start, end)
	})
}

// Stroke strokes the current path.
func (c *Canvas) Stroke() {
	if len(c.path) == 0 {
		return
	}
	st := c.st
	path := c.currentPath()
	c.paint(c.pathBox.rect(strokePad(st)), func(dc *gg.Context, ox, oy float64) {
		applyStroke(dc, st)
		path(dc, ox, oy)
		if err := dc.Stroke(); err != nil {
			sketch.Logger().Warn("ggcanvas: stroke failed", "err", err)
		}
	})
}

// Fill fills the current path.
func (c *Canvas) Fill() {
	if len(c.path) == 0 {
		return
	}
	st := c.st
	path := c.currentPath()
	c.paint(c.pathBox.rect(1), func(dc *gg.Context, ox, oy float64) {
		applyFill(dc, st, ox, oy)
		path(dc, ox, oy)
		if err := dc.Fill(); err != nil {
			sketch.Logger().Warn("ggcanvas: fill failed", "err", err)
		}
	})
}

// DrawImage draws img scaled into (x, y, w, h). Negative sizes are
// normalized, zero sizes draw nothing.
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil || w == 0 || h == 0 || math.IsNaN(w) || math.IsNaN(h) {
		return
	}
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}

	st := c.st
	interp := interpolation(st)
	if !st.smoothing {
		dw, dh := int(math.Round(w)), int(math.Round(h))
		b := img.Bounds()
		if dw > 0 && dh > 0 && (dw != b.Dx() || dh != b.Dy()) {
			img = transform.Resize(img, dw, dh, transform.NearestNeighbor)
		}
	}
	buf := gg.ImageBufFromImage(img)
	c.paint(pixelRect(x, y, w, h), func(dc *gg.Context, ox, oy float64) {
		dc.DrawImageEx(buf, gg.DrawImageOptions{
			X:             x - ox,
			Y:             y - oy,
			DstWidth:      w,
			DstHeight:     h,
			Interpolation: interp,
			Opacity:       1,
			BlendMode:     gg.BlendNormal,
		})
	})
}

// FillText draws s with its baseline at (x, y).
func (c *Canvas) FillText(s string, x, y float64) {
	if s == "" {
		return
	}
	st := c.st
	face, err := defaultFonts.face(st.font)
	if err != nil {
		sketch.Logger().Warn("ggcanvas: font unavailable", "font", st.font.String(), "err", err)
		return
	}
	col := st.fillColor
	if st.fillGradient != nil && len(st.fillGradient.Stops) > 0 {
		col = st.fillGradient.Stops[0].Color
	}
	c.paint(textRect(s, face, st.font.Size, x, y), func(dc *gg.Context, ox, oy float64) {
		dc.SetFont(face)
		dc.SetColor(col)
		dc.DrawString(s, x-ox, y-oy)
	})
}

// Image returns a copy of the canvas pixels.
func (c *Canvas) Image() *image.RGBA {
	return c.dc.ResizeTarget().ToImage()
}

// EncodePNG writes the canvas pixels to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return png.Encode(w, c.Image())
}

// SavePNG writes the canvas pixels to a PNG file.
func (c *Canvas) SavePNG(path string) (err error) {
	if c.closed {
		return ErrCanvasClosed
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ggcanvas: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("ggcanvas: %w", cerr)
		}
	}()
	return c.EncodePNG(f)
}

// Close releases the gg context. Close is idempotent; drawing calls made
// after Close are ignored.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.dc.Close()
}

// currentPath captures the current path segments.
func (c *Canvas) currentPath() segment {
	segs := make([]segment, len(c.path))
	copy(segs, c.path)
	return func(dc *gg.Context, ox, oy float64) {
		for _, s := range segs {
			s(dc, ox, oy)
		}
	}
}

// paint draws op onto the canvas, preceded by the shadow of op when the
// current shadow is visible. area bounds the pixels op may touch.
func (c *Canvas) paint(area image.Rectangle, op segment) {
	if c.closed {
		return
	}
	if c.st.shadow.Visible() {
		c.paintShadow(area, op, c.st.shadow)
	}
	op(c.dc, 0, 0)
	c.dc.ClearPath()
}

func applyStroke(dc *gg.Context, st state) {
	dc.SetColor(st.strokeColor)
	dc.SetLineWidth(st.lineWidth)
	dc.SetLineCap(lineCap(st.lineCap))
	dc.SetLineJoin(lineJoin(st.lineJoin))
}

func applyFill(dc *gg.Context, st state, ox, oy float64) {
	if st.fillGradient != nil {
		dc.SetFillBrush(gradientBrush(*st.fillGradient, ox, oy))
		return
	}
	dc.SetColor(st.fillColor)
}

func gradientBrush(g surface.LinearGradient, ox, oy float64) *gg.LinearGradientBrush {
	b := gg.NewLinearGradientBrush(g.X0-ox, g.Y0-oy, g.X1-ox, g.Y1-oy)
	for _, s := range g.Stops {
		b.AddColorStop(s.Offset, gg.FromColor(s.Color))
	}
	return b
}

func lineCap(c surface.LineCap) gg.LineCap {
	switch c {
	case surface.LineCapRound:
		return gg.LineCapRound
	case surface.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func lineJoin(j surface.LineJoin) gg.LineJoin {
	switch j {
	case surface.LineJoinRound:
		return gg.LineJoinRound
	case surface.LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

func interpolation(st state) gg.InterpolationMode {
	if !st.smoothing {
		return gg.InterpNearest
	}
	if st.quality == surface.SmoothingHigh {
		return gg.InterpBicubic
	}
	return gg.InterpBilinear
}

// pixelRect converts a float rectangle with possibly negative size into the
// covered integer pixel rectangle.
func pixelRect(x, y, w, h float64) image.Rectangle {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
}
