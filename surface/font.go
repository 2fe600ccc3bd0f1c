// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"strconv"
	"strings"
)

// Font weights used by the CSS font shorthand.
const (
	WeightNormal   = 400
	WeightSemiBold = 600
	WeightBold     = 700
)

// Font is a parsed CSS font descriptor such as "italic 600 13px Arial".
type Font struct {
	// Style is "normal", "italic" or "oblique".
	Style string

	// Weight is a numeric CSS weight (100-900).
	Weight int

	// Size is the font size in pixels.
	Size float64

	// Family is the family list as written, e.g. "Arial" or
	// "Helvetica, sans-serif".
	Family string
}

// Italic reports whether the style selects a slanted face.
func (f Font) Italic() bool {
	return f.Style == "italic" || f.Style == "oblique"
}

// Bold reports whether the weight selects a bold face.
func (f Font) Bold() bool {
	return f.Weight >= WeightSemiBold
}

// WithSize returns a copy of f with the size replaced.
func (f Font) WithSize(px float64) Font {
	f.Size = px
	return f
}

// WithWeight returns a copy of f with the weight replaced.
func (f Font) WithWeight(w int) Font {
	f.Weight = w
	return f
}

// String formats f as a CSS font shorthand.
func (f Font) String() string {
	var b strings.Builder
	if f.Style != "" && f.Style != "normal" {
		b.WriteString(f.Style)
		b.WriteByte(' ')
	}
	if f.Weight != 0 && f.Weight != WeightNormal {
		b.WriteString(strconv.Itoa(f.Weight))
		b.WriteByte(' ')
	}
	b.WriteString(strconv.FormatFloat(f.Size, 'f', -1, 64))
	b.WriteString("px ")
	b.WriteString(f.Family)
	return b.String()
}

// ParseFont parses a CSS font shorthand of the form
//
//	[style] [variant] [weight] size[/line-height] family[, family...]
//
// Sizes must be given in px or pt. Variant and line-height are accepted and
// ignored.
func ParseFont(s string) (Font, error) {
	f := Font{Style: "normal", Weight: WeightNormal}
	fields := strings.Fields(s)

	for i, field := range fields {
		lf := strings.ToLower(field)
		switch lf {
		case "normal", "small-caps":
			continue
		case "italic", "oblique":
			f.Style = lf
			continue
		case "bold", "bolder":
			f.Weight = WeightBold
			continue
		case "lighter":
			f.Weight = 300
			continue
		}
		if w, err := strconv.Atoi(lf); err == nil && w >= 100 && w <= 900 {
			f.Weight = w
			continue
		}

		size, ok := parseFontSize(lf)
		if !ok {
			return Font{}, fmt.Errorf("surface: invalid font %q: unexpected %q", s, field)
		}
		f.Size = size
		f.Family = strings.TrimSpace(strings.Join(fields[i+1:], " "))
		if f.Family == "" {
			return Font{}, fmt.Errorf("surface: invalid font %q: missing family", s)
		}
		return f, nil
	}
	return Font{}, fmt.Errorf("surface: invalid font %q: missing size", s)
}

func parseFontSize(s string) (float64, bool) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	scale := 1.0
	switch {
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "pt"):
		s = strings.TrimSuffix(s, "pt")
		scale = 96.0 / 72.0
	default:
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v * scale, true
}
