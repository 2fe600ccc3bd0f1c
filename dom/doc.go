// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dom is a small in-memory document tree that hosts sketch surfaces
// outside a browser.
//
// A Document owns a body element. Elements are addressable by identifier,
// carry a measured client size (set by the caller in place of a layout
// engine) and hold arbitrary children: other elements, text, and canvas
// elements. Document implements surface.Document and Element implements
// surface.Container, so a Document can be handed straight to sketch.New:
//
//	doc := dom.NewDocument(func(w, h int) surface.Canvas {
//	    return ggcanvas.MustNew(w, h)
//	})
//	doc.Body().AppendChild(doc.CreateElement("plot").SetClientSize(800, 400))
//
//	dc, err := sketch.New(doc, "plot")
//
// Documents are not safe for concurrent use.
package dom
