// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggcanvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/sketch/surface"
)

// paintShadow renders op into an offscreen layer covering area plus the blur
// margin and composites the blurred, tinted coverage of that layer at the
// shadow offset.
func (c *Canvas) paintShadow(area image.Rectangle, op segment, s surface.Shadow) {
	margin := int(math.Ceil(s.Blur)) + 1
	region := area.Inset(-margin).Intersect(image.Rect(0, 0, c.width, c.height))
	if region.Empty() {
		return
	}

	layer := gg.NewContext(region.Dx(), region.Dy())
	defer layer.Close()
	op(layer, float64(region.Min.X), float64(region.Min.Y))

	cover := layer.ResizeTarget().ToImage()
	bounds := opaqueBounds(cover)
	if bounds.Empty() {
		return
	}
	bounds = bounds.Inset(-margin).Intersect(cover.Bounds())

	var mask image.Image = crop(cover, bounds)
	if s.Blur > 0 {
		mask = blur.Gaussian(mask, s.Blur/2)
	}
	tinted := tint(mask, s.Color)

	c.dc.DrawImageEx(gg.ImageBufFromImage(tinted), gg.DrawImageOptions{
		X:             float64(region.Min.X+bounds.Min.X) + s.OffsetX,
		Y:             float64(region.Min.Y+bounds.Min.Y) + s.OffsetY,
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

// box accumulates the bounding box of path points.
type box struct {
	minX, minY, maxX, maxY float64
	ok                     bool
}

func (b *box) add(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	if !b.ok {
		*b = box{minX: x, minY: y, maxX: x, maxY: y, ok: true}
		return
	}
	b.minX, b.maxX = math.Min(b.minX, x), math.Max(b.maxX, x)
	b.minY, b.maxY = math.Min(b.minY, y), math.Max(b.maxY, y)
}

// rect returns the covered pixel rectangle grown by pad on every side.
func (b box) rect(pad float64) image.Rectangle {
	if !b.ok {
		return image.Rectangle{}
	}
	return pixelRect(b.minX-pad, b.minY-pad, b.maxX-b.minX+2*pad, b.maxY-b.minY+2*pad)
}

// strokePad is how far a stroke drawn with st may reach beyond its path.
func strokePad(st state) float64 {
	if st.lineJoin == surface.LineJoinMiter {
		return 5*st.lineWidth + 1
	}
	return st.lineWidth*math.Sqrt2/2 + 1
}

// textRect bounds the pixels of s drawn with its baseline at (x, y).
func textRect(s string, face text.Face, size, x, y float64) image.Rectangle {
	w, _ := text.Measure(s, face)
	return pixelRect(x-size, y-2*size, w+2*size, 3*size)
}

// crop copies r of img into a new image whose origin is (0, 0).
func crop(img *image.RGBA, r image.Rectangle) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out
}

// opaqueBounds returns the smallest rectangle containing every pixel of img
// with non-zero alpha.
func opaqueBounds(img *image.RGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[(x-b.Min.X)*4+3] == 0 {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x+1)
			minY = min(minY, y)
			maxY = max(maxY, y+1)
		}
	}
	if minX >= maxX || minY >= maxY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}

// tint returns an image the size of mask whose color is col and whose alpha
// is the alpha of mask scaled by the alpha of col. The result origin is (0, 0).
func tint(mask image.Image, col color.Color) *image.NRGBA {
	sc := color.NRGBAModel.Convert(col).(color.NRGBA)
	b := mask.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := mask.At(x, y).RGBA()
			i := out.PixOffset(x-b.Min.X, y-b.Min.Y)
			out.Pix[i+0] = sc.R
			out.Pix[i+1] = sc.G
			out.Pix[i+2] = sc.B
			out.Pix[i+3] = uint8(a * uint32(sc.A) / 0xffff)
		}
	}
	return out
}
