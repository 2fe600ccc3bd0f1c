// Package sketch provides a deferred drawing context over a 2D raster surface.
//
// # Overview
//
// A Context records drawing primitives (lines, ellipse outlines, filled
// ellipses, images and text) into an ordered command queue. Nothing is
// rasterized until Flush, which replays the queue onto the bound surface with
// a fixed visual recipe per command type: round line caps, soft drop
// shadows, image smoothing and semi-bold text.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sketch"
//	    "github.com/gogpu/sketch/dom"
//	    "github.com/gogpu/sketch/ggcanvas"
//	    "github.com/gogpu/sketch/surface"
//	)
//
//	doc := dom.NewDocument(func(w, h int) surface.Canvas { return ggcanvas.MustNew(w, h) })
//	doc.Body().AppendChild(doc.CreateElement("board").SetClientSize(800, 400))
//
//	sc, err := sketch.New(doc, "board")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sc.Clear().
//	    SetColor("steelblue").SetStroke(2).
//	    DrawLine(10, 10, 200, 120).
//	    FillEllipse(50, 50, 80, 40).
//	    DrawString("hello", 20, 300).
//	    Flush()
//
// # Binding
//
// New resolves a container through a surface.Document. The container's
// existing surface element is reused; otherwise one is created at 1200x700
// and appended. Each axis then adopts the container's measured size when it
// exceeds 100 pixels. See package surface for the binding rules.
//
// # Style
//
// The current color, stroke width and font descriptor are copied into each
// command when it is appended. Changing the style later never alters queued
// commands.
//
// # Images
//
// Image commands are fetched through a surface.ImageLoader when they are
// replayed. The draw happens whenever the load completes, possibly after
// later flushes or clears. Load failures are dropped and logged at debug
// level.
//
// # Concurrency
//
// A Context is not safe for concurrent use. When the bound canvas implements
// sync.Locker, Flush and Clear hold the lock while they paint and image
// completions take it before drawing.
package sketch
