// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/sketch"
)

// Script is a drawing script:
//
//	[surface]
//	min_auto_size = 100
//	default_color = "#222222"
//
//	[container]
//	width = 800
//	height = 400
//
//	[[op]]
//	kind = "clear"
//
//	[[op]]
//	kind = "line"
//	x1 = 10
//	y1 = 10
//	x2 = 200
//	y2 = 120
type Script struct {
	Surface   sketch.Config `toml:"surface"`
	Container Container     `toml:"container"`
	Ops       []Op          `toml:"op"`
}

// Container is the measured size of the container the surface binds to.
type Container struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Op is one script step. Kind selects which fields are read.
type Op struct {
	Kind   string  `toml:"kind"`
	Color  string  `toml:"color"`
	Stroke float64 `toml:"stroke"`
	Font   string  `toml:"font"`
	X1     float64 `toml:"x1"`
	Y1     float64 `toml:"y1"`
	X2     float64 `toml:"x2"`
	Y2     float64 `toml:"y2"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	W      float64 `toml:"w"`
	H      float64 `toml:"h"`
	Src    string  `toml:"src"`
	Text   string  `toml:"text"`
}

// Op kinds.
const (
	KindColor       = "color"
	KindStroke      = "stroke"
	KindFont        = "font"
	KindLine        = "line"
	KindEllipse     = "ellipse"
	KindFillEllipse = "fill_ellipse"
	KindImage       = "image"
	KindText        = "text"
	KindClear       = "clear"
	KindFlush       = "flush"
)

// DecodeScript reads a script from r. Surface settings missing from the
// script keep their values from cfg.
func DecodeScript(r io.Reader, cfg sketch.Config) (*Script, error) {
	s := &Script{Surface: cfg}
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	for i, op := range s.Ops {
		if !knownKind(op.Kind) {
			return nil, fmt.Errorf("decode script: op %d: unknown kind %q", i+1, op.Kind)
		}
	}
	return s, nil
}

func knownKind(kind string) bool {
	switch kind {
	case KindColor, KindStroke, KindFont, KindLine, KindEllipse, KindFillEllipse,
		KindImage, KindText, KindClear, KindFlush:
		return true
	}
	return false
}

// ResolveSources rewrites relative image paths to be relative to dir.
// URLs, data URIs and absolute paths are kept.
func (s *Script) ResolveSources(dir string) {
	for i := range s.Ops {
		op := &s.Ops[i]
		if op.Kind != KindImage || op.Src == "" || filepath.IsAbs(op.Src) || isURL(op.Src) {
			continue
		}
		op.Src = filepath.Join(dir, op.Src)
	}
}

func isURL(src string) bool {
	if strings.HasPrefix(src, "data:") {
		return true
	}
	u, err := url.Parse(src)
	return err == nil && len(u.Scheme) > 1
}

// Apply replays the script steps onto sc.
func (s *Script) Apply(sc *sketch.Context) {
	for _, op := range s.Ops {
		switch op.Kind {
		case KindColor:
			sc.SetColor(op.Color)
		case KindStroke:
			sc.SetStroke(op.Stroke)
		case KindFont:
			sc.SetFont(op.Font)
		case KindLine:
			sc.DrawLine(op.X1, op.Y1, op.X2, op.Y2)
		case KindEllipse:
			sc.DrawEllipse(op.X, op.Y, op.W, op.H)
		case KindFillEllipse:
			sc.FillEllipse(op.X, op.Y, op.W, op.H)
		case KindImage:
			sc.DrawImage(op.Src, op.X, op.Y, op.W, op.H)
		case KindText:
			sc.DrawString(op.Text, op.X, op.Y)
		case KindClear:
			sc.Clear()
		case KindFlush:
			sc.Flush()
		}
	}
}
