// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color string.
//
// Supported forms:
//   - "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - "rgb(r, g, b)" and "rgba(r, g, b, a)" with 0-255 or percentage
//     channels and a 0-1 (or percentage) alpha
//   - CSS named colors ("red", "steelblue") and "transparent"
//
// Names and function names are case-insensitive.
func ParseColor(s string) (color.NRGBA, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	if str == "" {
		return color.NRGBA{}, fmt.Errorf("surface: empty color")
	}
	switch {
	case str[0] == '#':
		return parseHexColor(str)
	case strings.HasPrefix(str, "rgba(") && strings.HasSuffix(str, ")"):
		return parseRGBFunc(str[len("rgba(") : len(str)-1])
	case strings.HasPrefix(str, "rgb(") && strings.HasSuffix(str, ")"):
		return parseRGBFunc(str[len("rgb(") : len(str)-1])
	case str == "transparent":
		return color.NRGBA{}, nil
	}
	nc, ok := colornames.Map[str]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("surface: unknown color name %q", s)
	}
	return color.NRGBA{R: nc.R, G: nc.G, B: nc.B, A: nc.A}, nil
}

// MustParseColor is like ParseColor but panics on error.
// Use only for compile-time constant color strings.
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHexColor(str string) (color.NRGBA, error) {
	digits := str[1:]
	alpha := uint8(0xff)
	switch len(digits) {
	case 3, 6:
	case 4:
		a, err := strconv.ParseUint(strings.Repeat(digits[3:], 2), 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("surface: invalid hex color %q: %w", str, err)
		}
		alpha = uint8(a)
		digits = digits[:3]
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("surface: invalid hex color %q: %w", str, err)
		}
		alpha = uint8(a)
		digits = digits[:6]
	default:
		return color.NRGBA{}, fmt.Errorf("surface: invalid hex color %q", str)
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("surface: invalid hex color %q: %w", str, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

func parseRGBFunc(args string) (color.NRGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("surface: invalid rgb() arguments %q", args)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := parseChannel(parts[i], 255)
		if err != nil {
			return color.NRGBA{}, err
		}
		ch[i] = uint8(math.Round(v))
	}

	alpha := uint8(0xff)
	if len(parts) == 4 {
		a, err := parseChannel(parts[3], 1)
		if err != nil {
			return color.NRGBA{}, err
		}
		alpha = uint8(math.Round(a * 255))
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

// parseChannel parses a number or percentage and clamps it to [0, limit].
func parseChannel(s string, limit float64) (float64, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	if percent {
		s = strings.TrimSuffix(s, "%")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("surface: invalid color channel %q: %w", s, err)
	}
	if percent {
		v = v * limit / 100
	}
	return math.Max(0, math.Min(limit, v)), nil
}
