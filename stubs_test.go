package sketch

import (
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/sketch/dom"
	"github.com/gogpu/sketch/surface"
)

// call is one recorded Canvas method invocation.
type call struct {
	op   string
	args []any
}

// recordCanvas is a surface.Canvas that records every call.
type recordCanvas struct {
	width, height int
	calls         []call
}

func (c *recordCanvas) record(op string, args ...any) {
	c.calls = append(c.calls, call{op: op, args: args})
}

// ops returns the recorded operation names in order.
func (c *recordCanvas) ops() []string {
	out := make([]string, len(c.calls))
	for i, cl := range c.calls {
		out[i] = cl.op
	}
	return out
}

// find returns the first recorded call named op.
func (c *recordCanvas) find(op string) (call, bool) {
	for _, cl := range c.calls {
		if cl.op == op {
			return cl, true
		}
	}
	return call{}, false
}

// draws counts the calls that put pixels on the surface.
func (c *recordCanvas) draws() int {
	n := 0
	for _, cl := range c.calls {
		switch cl.op {
		case "ClearRect", "FillRect", "Stroke", "Fill", "DrawImage", "FillText":
			n++
		}
	}
	return n
}

func (c *recordCanvas) reset() { c.calls = nil }

func (c *recordCanvas) Width() int  { return c.width }
func (c *recordCanvas) Height() int { return c.height }
func (c *recordCanvas) Resize(w, h int) {
	c.width, c.height = w, h
	c.record("Resize", w, h)
}
func (c *recordCanvas) Save()    { c.record("Save") }
func (c *recordCanvas) Restore() { c.record("Restore") }
func (c *recordCanvas) SetStrokeColor(col color.Color) {
	c.record("SetStrokeColor", col)
}
func (c *recordCanvas) SetFillColor(col color.Color) { c.record("SetFillColor", col) }
func (c *recordCanvas) SetFillGradient(g surface.LinearGradient) {
	c.record("SetFillGradient", g)
}
func (c *recordCanvas) SetLineWidth(w float64)         { c.record("SetLineWidth", w) }
func (c *recordCanvas) SetLineCap(lc surface.LineCap)  { c.record("SetLineCap", lc) }
func (c *recordCanvas) SetLineJoin(j surface.LineJoin) { c.record("SetLineJoin", j) }
func (c *recordCanvas) SetShadow(s surface.Shadow)     { c.record("SetShadow", s) }
func (c *recordCanvas) SetFont(f surface.Font)         { c.record("SetFont", f) }
func (c *recordCanvas) SetImageSmoothing(on bool, q surface.SmoothingQuality) {
	c.record("SetImageSmoothing", on, q)
}
func (c *recordCanvas) ClearRect(x, y, w, h float64) { c.record("ClearRect", x, y, w, h) }
func (c *recordCanvas) FillRect(x, y, w, h float64)  { c.record("FillRect", x, y, w, h) }
func (c *recordCanvas) BeginPath()                   { c.record("BeginPath") }
func (c *recordCanvas) MoveTo(x, y float64)          { c.record("MoveTo", x, y) }
func (c *recordCanvas) LineTo(x, y float64)          { c.record("LineTo", x, y) }
func (c *recordCanvas) Ellipse(cx, cy, rx, ry, rotation, start, end float64) {
	c.record("Ellipse", cx, cy, rx, ry, rotation, start, end)
}
func (c *recordCanvas) Stroke() { c.record("Stroke") }
func (c *recordCanvas) Fill()   { c.record("Fill") }
func (c *recordCanvas) DrawImage(img image.Image, x, y, w, h float64) {
	c.record("DrawImage", img, x, y, w, h)
}
func (c *recordCanvas) FillText(s string, x, y float64) { c.record("FillText", s, x, y) }

// lockingCanvas is a recordCanvas that implements sync.Locker and records
// lock transitions.
type lockingCanvas struct {
	recordCanvas
	mu sync.Mutex
}

func (c *lockingCanvas) Lock() {
	c.mu.Lock()
	c.record("Lock")
}

func (c *lockingCanvas) Unlock() {
	c.record("Unlock")
	c.mu.Unlock()
}

// pendingLoad is an image load captured by deferredLoader.
type pendingLoad struct {
	src  string
	done func(image.Image, error)
}

// deferredLoader captures loads so tests decide when they complete.
type deferredLoader struct {
	pending []pendingLoad
}

func (l *deferredLoader) Load(src string, done func(image.Image, error)) {
	l.pending = append(l.pending, pendingLoad{src: src, done: done})
}

// syncLoader completes every load before Load returns.
type syncLoader struct {
	img image.Image
}

func (l syncLoader) Load(src string, done func(image.Image, error)) {
	done(l.img, nil)
}

// newTestContext binds a Context to a container of the given client size
// backed by canvas.
func newTestContext(t interface{ Fatalf(string, ...any) }, cw, ch int, cv surface.Canvas, opts ...Option) *Context {
	doc := dom.NewDocument(func(w, h int) surface.Canvas {
		cv.Resize(w, h)
		return cv
	})
	doc.Body().AppendChild(doc.CreateElement("board").SetClientSize(cw, ch))
	sc, err := New(doc, "board", opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return sc
}

func testImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	return img
}
