// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggcanvas

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sketch/internal/cache"
	"github.com/gogpu/sketch/surface"
)

// variant selects one embedded font file.
type variant struct {
	mono, bold, italic bool
}

var fontData = map[variant][]byte{
	{}:                                     goregular.TTF,
	{bold: true}:                           gobold.TTF,
	{italic: true}:                         goitalic.TTF,
	{bold: true, italic: true}:             gobolditalic.TTF,
	{mono: true}:                           gomono.TTF,
	{mono: true, bold: true}:               gomonobold.TTF,
	{mono: true, italic: true}:             gomonoitalic.TTF,
	{mono: true, bold: true, italic: true}: gomonobolditalic.TTF,
}

// monoFamilies are family names that select the monospace variants.
var monoFamilies = []string{"mono", "courier", "consolas", "menlo", "monaco"}

type faceKey struct {
	v    variant
	size float64
}

// maxFaces bounds the number of sized faces kept alive.
const maxFaces = 32

// fontBook caches parsed font sources and sized faces.
type fontBook struct {
	mu      sync.Mutex
	sources map[variant]*text.FontSource
	faces   *cache.Cache[faceKey, text.Face]
}

var defaultFonts = newFontBook()

func newFontBook() *fontBook {
	return &fontBook{
		sources: make(map[variant]*text.FontSource),
		faces:   cache.New[faceKey, text.Face](maxFaces),
	}
}

// face returns the face matching f.
func (b *fontBook) face(f surface.Font) (text.Face, error) {
	if f.Size <= 0 {
		return nil, fmt.Errorf("ggcanvas: invalid font size %v", f.Size)
	}
	key := faceKey{v: variantOf(f), size: f.Size}
	return b.faces.GetOrCreate(key, func() (text.Face, error) {
		src, err := b.source(key.v)
		if err != nil {
			return nil, err
		}
		return src.Face(key.size), nil
	})
}

// source returns the parsed font file for v.
func (b *fontBook) source(v variant) (*text.FontSource, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if src, ok := b.sources[v]; ok {
		return src, nil
	}
	src, err := text.NewFontSource(fontData[v])
	if err != nil {
		return nil, fmt.Errorf("ggcanvas: load font: %w", err)
	}
	b.sources[v] = src
	return src, nil
}

func variantOf(f surface.Font) variant {
	family := strings.ToLower(f.Family)
	v := variant{bold: f.Bold(), italic: f.Italic()}
	for _, m := range monoFamilies {
		if strings.Contains(family, m) {
			v.mono = true
			break
		}
	}
	return v
}
