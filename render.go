package sketch

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/sketch/surface"
)

// Background gradient painted by Clear, top to bottom.
var (
	backgroundTop    = surface.MustParseColor("#fafafa")
	backgroundBottom = surface.MustParseColor("#ffffff")
)

// Shadows of the per-command recipes.
var (
	lineShadow = surface.Shadow{
		Color:   surface.MustParseColor("rgba(0, 0, 0, 0.15)"),
		Blur:    3,
		OffsetX: 1,
		OffsetY: 1,
	}
	fillShadow = surface.Shadow{
		Color: surface.MustParseColor("rgba(0, 0, 0, 0.2)"),
		Blur:  4,
	}
	imageShadow = fillShadow
	textShadow  = surface.Shadow{
		Color:   surface.MustParseColor("rgba(255, 255, 255, 0.8)"),
		Blur:    2,
		OffsetY: 1,
	}
)

func (c *Context) paintBackground() {
	w, h := float64(c.cv.Width()), float64(c.cv.Height())
	c.cv.Save()
	defer c.cv.Restore()

	c.cv.ClearRect(0, 0, w, h)
	c.cv.SetFillGradient(surface.NewLinearGradient(0, 0, 0, h).
		AddColorStop(0, backgroundTop).
		AddColorStop(1, backgroundBottom))
	c.cv.FillRect(0, 0, w, h)
}

func (c *Context) renderLine(cmd LineCommand) {
	cv := c.cv
	cv.Save()
	defer cv.Restore()

	cv.SetStrokeColor(c.parseColor(cmd.Color))
	cv.SetLineWidth(cmd.StrokeWidth)
	cv.SetLineCap(surface.LineCapRound)
	cv.SetLineJoin(surface.LineJoinRound)
	cv.SetShadow(lineShadow)
	cv.BeginPath()
	cv.MoveTo(cmd.X1, cmd.Y1)
	cv.LineTo(cmd.X2, cmd.Y2)
	cv.Stroke()
}

func (c *Context) renderEllipse(cmd EllipseCommand) {
	cv := c.cv
	cv.Save()
	defer cv.Restore()

	cv.SetStrokeColor(c.parseColor(cmd.Color))
	cv.SetLineWidth(cmd.StrokeWidth)
	cv.SetLineCap(surface.LineCapRound)
	cv.SetShadow(lineShadow)
	cv.BeginPath()
	ellipsePath(cv, cmd.X, cmd.Y, cmd.W, cmd.H)
	cv.Stroke()
}

func (c *Context) renderFillEllipse(cmd FillEllipseCommand) {
	cv := c.cv
	cv.Save()
	defer cv.Restore()

	cv.SetFillColor(c.parseColor(cmd.Color))
	cv.SetShadow(fillShadow)
	cv.BeginPath()
	ellipsePath(cv, cmd.X, cmd.Y, cmd.W, cmd.H)
	cv.Fill()
}

func (c *Context) renderText(cmd TextCommand) {
	cv := c.cv
	cv.Save()
	defer cv.Restore()

	cv.SetFillColor(c.parseColor(cmd.Color))
	cv.SetFont(c.textFont(cmd.Font))
	cv.SetShadow(textShadow)
	cv.FillText(cmd.Text, cmd.X, cmd.Y)
}

// loadImage starts loading cmd.Source. The image is drawn by the loader's
// completion callback, which may run after later flushes or clears.
func (c *Context) loadImage(cmd ImageCommand) {
	cv := c.cv
	c.loader.Load(cmd.Source, func(img image.Image, err error) {
		if err != nil {
			Logger().Debug("sketch: image load failed", "src", cmd.Source, "err", err)
			return
		}
		if img == nil {
			return
		}

		unlock := lockCanvas(cv)
		defer unlock()

		cv.Save()
		cv.SetShadow(imageShadow)
		cv.DrawImage(img, cmd.X, cmd.Y, cmd.W, cmd.H)
		cv.Restore()
	})
}

// ellipsePath adds the full ellipse inscribed in the box (x, y, w, h).
// Negative extents produce the same ellipse as their magnitude around the
// same center.
func ellipsePath(cv surface.Canvas, x, y, w, h float64) {
	cv.Ellipse(x+w/2, y+h/2, math.Abs(w)/2, math.Abs(h)/2, 0, 0, 2*math.Pi)
}

// parseColor parses s, falling back to the configured default color and
// then to black.
func (c *Context) parseColor(s string) color.Color {
	col, err := surface.ParseColor(s)
	if err == nil {
		return col
	}
	Logger().Debug("sketch: invalid color", "color", s, "err", err)
	if col, err := surface.ParseColor(c.cfg.DefaultColor); err == nil {
		return col
	}
	return color.Black
}

// textFont resolves the font used for a text command. Only the style and
// family of descriptor are honored; size and weight come from the config.
func (c *Context) textFont(descriptor string) surface.Font {
	f, err := surface.ParseFont(descriptor)
	if err != nil {
		Logger().Debug("sketch: invalid font", "font", descriptor, "err", err)
		if f, err = surface.ParseFont(c.cfg.DefaultFont); err != nil {
			f = surface.Font{Style: "normal", Family: "sans-serif"}
		}
	}
	return f.WithSize(c.cfg.TextSize).WithWeight(c.cfg.TextWeight)
}
