package sketch

import (
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/sketch/surface"
)

// Context is a deferred drawing context bound to one surface element.
//
// Drawing methods append commands to a queue and return the Context so
// calls can be chained. Flush replays the queue onto the surface.
//
// Context is not safe for concurrent use.
type Context struct {
	el     surface.Element
	cv     surface.Canvas
	loader surface.ImageLoader
	cfg    Config

	color  string
	stroke float64
	font   string

	queue []Command
}

// New binds a Context to the container with the given id in doc.
//
// It returns a *surface.TargetNotFoundError, matched by
// surface.ErrTargetNotFound, when doc has no such container. In that case
// no surface element is created.
func New(doc surface.Document, id string, opts ...Option) (*Context, error) {
	o := buildOptions(opts)
	el, err := surface.Bind(doc, id, o.config.Config)
	if err != nil {
		return nil, fmt.Errorf("sketch: %w", err)
	}
	return newContext(el, o), nil
}

// NewForContainer binds a Context to container c, which need not be
// reachable through doc. doc is used to create the surface element when c
// has none.
func NewForContainer(doc surface.Document, c surface.Container, opts ...Option) (*Context, error) {
	o := buildOptions(opts)
	el, err := surface.BindContainer(doc, c, o.config.Config)
	if err != nil {
		return nil, fmt.Errorf("sketch: %w", err)
	}
	return newContext(el, o), nil
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newContext(el surface.Element, o options) *Context {
	Logger().Info("sketch: surface bound", "width", el.Width(), "height", el.Height())
	return &Context{
		el:     el,
		cv:     el.Canvas(),
		loader: o.loader,
		cfg:    o.config,
		color:  o.config.DefaultColor,
		stroke: o.config.DefaultStroke,
		font:   o.config.DefaultFont,
	}
}

// SetStroke sets the stroke width for subsequent lines and outlines.
// A width that is not positive restores the default width.
func (c *Context) SetStroke(width float64) *Context {
	if !(width > 0) || math.IsInf(width, 1) {
		width = c.cfg.DefaultStroke
	}
	c.stroke = width
	return c
}

// SetColor sets the CSS color for subsequent commands.
// An empty string restores the default color. The string is parsed at
// flush time; an unparsable color paints with the default color.
func (c *Context) SetColor(color string) *Context {
	if color == "" {
		color = c.cfg.DefaultColor
	}
	c.color = color
	return c
}

// SetFont sets the CSS font descriptor for subsequent text commands.
// An empty string restores the default descriptor.
func (c *Context) SetFont(font string) *Context {
	if font == "" {
		font = c.cfg.DefaultFont
	}
	c.font = font
	return c
}

// SetPrintable does nothing. It exists for callers that prepare a surface
// for printing before drawing.
func (c *Context) SetPrintable() *Context {
	return c
}

// DrawLine queues a line from (x1, y1) to (x2, y2).
func (c *Context) DrawLine(x1, y1, x2, y2 float64) *Context {
	return c.push(LineCommand{
		Color:       c.color,
		StrokeWidth: c.stroke,
		X1:          x1,
		Y1:          y1,
		X2:          x2,
		Y2:          y2,
	})
}

// DrawEllipse queues the outline of the ellipse inscribed in (x, y, w, h).
func (c *Context) DrawEllipse(x, y, w, h float64) *Context {
	return c.push(EllipseCommand{Color: c.color, StrokeWidth: c.stroke, X: x, Y: y, W: w, H: h})
}

// FillEllipse queues a filled ellipse inscribed in (x, y, w, h).
func (c *Context) FillEllipse(x, y, w, h float64) *Context {
	return c.push(FillEllipseCommand{Color: c.color, X: x, Y: y, W: w, H: h})
}

// DrawImage queues the image at src, scaled into (x, y, w, h).
// The source is fetched when the command is flushed.
func (c *Context) DrawImage(src string, x, y, w, h float64) *Context {
	return c.push(ImageCommand{Source: src, X: x, Y: y, W: w, H: h})
}

// DrawString queues text with its baseline starting at (x, y).
func (c *Context) DrawString(text string, x, y float64) *Context {
	return c.push(TextCommand{Color: c.color, Font: c.font, Text: text, X: x, Y: y})
}

// DrawStringf formats according to a format specifier and queues the result
// as with DrawString.
func (c *Context) DrawStringf(x, y float64, format string, args ...any) *Context {
	return c.DrawString(fmt.Sprintf(format, args...), x, y)
}

func (c *Context) push(cmd Command) *Context {
	c.queue = append(c.queue, cmd)
	return c
}

// Clear paints the whole surface with the background gradient and discards
// every pending command. Images already being loaded are not cancelled.
func (c *Context) Clear() *Context {
	unlock := c.lock()
	c.paintBackground()
	unlock()

	c.queue = nil
	return c
}

// Flush replays the pending commands in order and empties the queue.
// Image commands start loading during the flush and draw when their load
// completes.
//
// Flushing an empty queue draws nothing.
func (c *Context) Flush() *Context {
	cmds := c.queue
	c.queue = nil

	var images []ImageCommand

	unlock := c.lock()
	c.cv.SetImageSmoothing(true, surface.SmoothingHigh)
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case LineCommand:
			c.renderLine(cmd)
		case EllipseCommand:
			c.renderEllipse(cmd)
		case FillEllipseCommand:
			c.renderFillEllipse(cmd)
		case ImageCommand:
			images = append(images, cmd)
		case TextCommand:
			c.renderText(cmd)
		}
	}
	unlock()

	// Loads start after the lock is released so a loader may complete
	// synchronously.
	for _, cmd := range images {
		c.loadImage(cmd)
	}

	if len(cmds) > 0 {
		Logger().Debug("sketch: flushed", "commands", len(cmds), "images", len(images))
	}
	return c
}

// Paint is an alias for Flush.
func (c *Context) Paint() *Context {
	return c.Flush()
}

// Len returns the number of pending commands.
func (c *Context) Len() int {
	return len(c.queue)
}

// Commands returns a copy of the pending commands in replay order.
func (c *Context) Commands() []Command {
	out := make([]Command, len(c.queue))
	copy(out, c.queue)
	return out
}

// Canvas returns the drawing handle of the bound surface.
func (c *Context) Canvas() surface.Canvas {
	return c.cv
}

// Element returns the bound surface element.
func (c *Context) Element() surface.Element {
	return c.el
}

// lock acquires the canvas lock when the canvas provides one and returns
// the matching release function.
func (c *Context) lock() (unlock func()) {
	return lockCanvas(c.cv)
}

func lockCanvas(cv surface.Canvas) (unlock func()) {
	l, ok := cv.(sync.Locker)
	if !ok {
		return func() {}
	}
	l.Lock()
	return l.Unlock
}
