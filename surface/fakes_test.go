// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// nopCanvas implements Canvas and only tracks its size.
type nopCanvas struct {
	width, height int
}

func (c *nopCanvas) Width() int                                                { return c.width }
func (c *nopCanvas) Height() int                                               { return c.height }
func (c *nopCanvas) Resize(width, height int)                                  { c.width, c.height = width, height }
func (c *nopCanvas) Save()                                                     {}
func (c *nopCanvas) Restore()                                                  {}
func (c *nopCanvas) SetStrokeColor(color.Color)                                {}
func (c *nopCanvas) SetFillColor(color.Color)                                  {}
func (c *nopCanvas) SetFillGradient(LinearGradient)                            {}
func (c *nopCanvas) SetLineWidth(float64)                                      {}
func (c *nopCanvas) SetLineCap(LineCap)                                        {}
func (c *nopCanvas) SetLineJoin(LineJoin)                                      {}
func (c *nopCanvas) SetShadow(Shadow)                                          {}
func (c *nopCanvas) SetFont(Font)                                              {}
func (c *nopCanvas) SetImageSmoothing(bool, SmoothingQuality)                  {}
func (c *nopCanvas) ClearRect(x, y, w, h float64)                              {}
func (c *nopCanvas) FillRect(x, y, w, h float64)                               {}
func (c *nopCanvas) BeginPath()                                                {}
func (c *nopCanvas) MoveTo(x, y float64)                                       {}
func (c *nopCanvas) LineTo(x, y float64)                                       {}
func (c *nopCanvas) Ellipse(cx, cy, rx, ry, rot, a0, a1 float64)               {}
func (c *nopCanvas) Stroke()                                                   {}
func (c *nopCanvas) Fill()                                                     {}
func (c *nopCanvas) DrawImage(image.Image, float64, float64, float64, float64) {}
func (c *nopCanvas) FillText(string, float64, float64)                         {}

type fakeElement struct {
	id     string
	canvas *nopCanvas
}

func (e *fakeElement) Width() int       { return e.canvas.width }
func (e *fakeElement) Height() int      { return e.canvas.height }
func (e *fakeElement) SetWidth(px int)  { e.canvas.Resize(px, e.canvas.height) }
func (e *fakeElement) SetHeight(px int) { e.canvas.Resize(e.canvas.width, px) }
func (e *fakeElement) Canvas() Canvas   { return e.canvas }

type fakeContainer struct {
	clientWidth, clientHeight int
	children                  []any
}

func (c *fakeContainer) ClientWidth() int  { return c.clientWidth }
func (c *fakeContainer) ClientHeight() int { return c.clientHeight }

func (c *fakeContainer) Surface() (Element, bool) {
	for _, child := range c.children {
		if el, ok := child.(Element); ok {
			return el, true
		}
	}
	return nil, false
}

func (c *fakeContainer) AppendSurface(el Element) {
	c.children = append(c.children, el)
}

type fakeDoc struct {
	containers map[string]*fakeContainer
	created    int
}

func (d *fakeDoc) ElementByID(id string) (Container, bool) {
	c, ok := d.containers[id]
	if !ok {
		return nil, false
	}
	return c, true
}

func (d *fakeDoc) CreateSurface(id string, width, height int) Element {
	d.created++
	return &fakeElement{id: id, canvas: &nopCanvas{width: width, height: height}}
}
