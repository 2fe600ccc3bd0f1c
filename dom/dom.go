// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dom

import (
	"github.com/gogpu/sketch/surface"
)

// Node is anything that can be a child of an Element.
type Node interface {
	// Tag returns the lower-case tag name ("div", "canvas", "#text").
	Tag() string
}

// Text is a text node.
type Text struct {
	Data string
}

// Tag implements Node.
func (*Text) Tag() string { return "#text" }

// Element is a container element. It implements surface.Container.
type Element struct {
	id           string
	tag          string
	clientWidth  int
	clientHeight int
	children     []Node
}

// Tag implements Node.
func (e *Element) Tag() string { return e.tag }

// ID returns the element identifier.
func (e *Element) ID() string { return e.id }

// SetClientSize records the measured inner size of the element, as a layout
// engine would. It returns e for chaining.
func (e *Element) SetClientSize(width, height int) *Element {
	e.clientWidth = width
	e.clientHeight = height
	return e
}

// ClientWidth implements surface.Container.
func (e *Element) ClientWidth() int { return e.clientWidth }

// ClientHeight implements surface.Container.
func (e *Element) ClientHeight() int { return e.clientHeight }

// AppendChild adds n as the last child of e and returns e.
func (e *Element) AppendChild(n Node) *Element {
	e.children = append(e.children, n)
	return e
}

// Children returns a copy of the child list.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// Surface implements surface.Container. It returns the first canvas element
// among the descendants of e in document order.
func (e *Element) Surface() (surface.Element, bool) {
	ce := e.firstCanvas()
	if ce == nil {
		return nil, false
	}
	return ce, true
}

func (e *Element) firstCanvas() *CanvasElement {
	for _, child := range e.children {
		switch n := child.(type) {
		case *CanvasElement:
			return n
		case *Element:
			if ce := n.firstCanvas(); ce != nil {
				return ce
			}
		}
	}
	return nil
}

// AppendSurface implements surface.Container. Elements that did not come
// from a dom.Document are wrapped so they can live in the tree.
func (e *Element) AppendSurface(el surface.Element) {
	ce, ok := el.(*CanvasElement)
	if !ok {
		ce = &CanvasElement{foreign: el}
	}
	e.children = append(e.children, ce)
}

func (e *Element) find(id string) *Element {
	if e.id == id {
		return e
	}
	for _, child := range e.children {
		if ce, ok := child.(*Element); ok {
			if found := ce.find(id); found != nil {
				return found
			}
		}
	}
	return nil
}

// CanvasElement is a surface element. It implements surface.Element.
type CanvasElement struct {
	id          string
	canvas      surface.Canvas
	styleWidth  int
	styleHeight int

	// foreign is set when a surface.Element from another host was appended.
	foreign surface.Element
}

// Tag implements Node.
func (*CanvasElement) Tag() string { return "canvas" }

// ID returns the element identifier.
func (c *CanvasElement) ID() string {
	return c.id
}

// Width implements surface.Element.
func (c *CanvasElement) Width() int {
	if c.foreign != nil {
		return c.foreign.Width()
	}
	return c.canvas.Width()
}

// Height implements surface.Element.
func (c *CanvasElement) Height() int {
	if c.foreign != nil {
		return c.foreign.Height()
	}
	return c.canvas.Height()
}

// SetWidth implements surface.Element.
func (c *CanvasElement) SetWidth(px int) {
	if c.foreign != nil {
		c.foreign.SetWidth(px)
		return
	}
	c.canvas.Resize(px, c.canvas.Height())
	c.styleWidth = px
}

// SetHeight implements surface.Element.
func (c *CanvasElement) SetHeight(px int) {
	if c.foreign != nil {
		c.foreign.SetHeight(px)
		return
	}
	c.canvas.Resize(c.canvas.Width(), px)
	c.styleHeight = px
}

// StyleSize returns the displayed size of the element.
func (c *CanvasElement) StyleSize() (width, height int) {
	if c.foreign != nil {
		return c.foreign.Width(), c.foreign.Height()
	}
	return c.styleWidth, c.styleHeight
}

// Canvas implements surface.Element.
func (c *CanvasElement) Canvas() surface.Canvas {
	if c.foreign != nil {
		return c.foreign.Canvas()
	}
	return c.canvas
}

// Document is an in-memory document. It implements surface.Document.
type Document struct {
	body      *Element
	newCanvas func(width, height int) surface.Canvas
	created   int
}

// NewDocument creates an empty document whose surface elements are backed by
// canvases from newCanvas.
func NewDocument(newCanvas func(width, height int) surface.Canvas) *Document {
	return &Document{
		body:      &Element{tag: "body"},
		newCanvas: newCanvas,
	}
}

// Body returns the root element.
func (d *Document) Body() *Element {
	return d.body
}

// CreateElement creates a detached div element with the given identifier.
func (d *Document) CreateElement(id string) *Element {
	return &Element{id: id, tag: "div"}
}

// ElementByID implements surface.Document. Only elements attached to the
// body are found.
func (d *Document) ElementByID(id string) (surface.Container, bool) {
	if id == "" {
		return nil, false
	}
	e := d.body.find(id)
	if e == nil {
		return nil, false
	}
	return e, true
}

// CreateSurface implements surface.Document.
func (d *Document) CreateSurface(id string, width, height int) surface.Element {
	d.created++
	return &CanvasElement{
		id:          id,
		canvas:      d.newCanvas(width, height),
		styleWidth:  width,
		styleHeight: height,
	}
}

// SurfacesCreated returns how many surface elements the document created.
func (d *Document) SurfacesCreated() int {
	return d.created
}
