// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/dom"
	"github.com/gogpu/sketch/imageload"
	"github.com/gogpu/sketch/surface"
)

// containerID is the id of the container scripts draw into.
const containerID = "sketch"

// pngEncoder is implemented by canvases that can write their pixels as PNG.
type pngEncoder interface {
	EncodePNG(w io.Writer) error
}

// renderer turns script files into PNG files.
type renderer struct {
	config  sketch.Config
	backend string
	output  string
	loader  *imageload.Loader
}

// renderFile reads, replays and writes the script at path.
func (r *renderer) renderFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	s, err := DecodeScript(f, r.config)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	s.ResolveSources(filepath.Dir(path))

	// Sources may have changed since the previous render.
	r.loader.Purge()

	cv, err := r.render(s)
	if err != nil {
		return err
	}
	if c, ok := cv.(io.Closer); ok {
		defer c.Close()
	}
	if err := writePNG(r.output, cv); err != nil {
		return err
	}
	sketch.Logger().Info("sketch: wrote image",
		"path", r.output, "width", cv.Width(), "height", cv.Height(), "ops", len(s.Ops))
	return nil
}

// render replays s onto a fresh canvas and waits for its images.
func (r *renderer) render(s *Script) (surface.Canvas, error) {
	cfg := s.Surface
	cv, err := r.newCanvas(cfg.DefaultWidth, cfg.DefaultHeight)
	if err != nil {
		return nil, err
	}

	doc := dom.NewDocument(func(w, h int) surface.Canvas {
		cv.Resize(w, h)
		return cv
	})
	doc.Body().AppendChild(doc.CreateElement(containerID).
		SetClientSize(s.Container.Width, s.Container.Height))

	sc, err := sketch.New(doc, containerID,
		sketch.WithConfig(cfg),
		sketch.WithImageLoader(r.loader))
	if err != nil {
		return nil, err
	}
	s.Apply(sc)
	sc.Flush()
	r.loader.Wait()
	return cv, nil
}

func (r *renderer) newCanvas(w, h int) (surface.Canvas, error) {
	if w <= 0 {
		w = surface.DefaultWidth
	}
	if h <= 0 {
		h = surface.DefaultHeight
	}
	return surface.OpenCanvas(r.backend, w, h)
}

func writePNG(path string, cv surface.Canvas) (err error) {
	enc, ok := cv.(pngEncoder)
	if !ok {
		return errors.New("canvas backend cannot encode PNG")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to write output: %w", cerr)
		}
	}()
	return enc.EncodePNG(f)
}
