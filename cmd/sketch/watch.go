// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/sketch"
)

// settle is how long the script must stay unchanged before a re-render.
const settle = 100 * time.Millisecond

// watch calls render with path whenever the file changes, until ctx is done.
// The parent directory is watched so editors that replace the file on save
// are followed.
func watch(ctx context.Context, path string, render func(string) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	sketch.Logger().Info("sketch: watching", "path", abs)

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer.Reset(settle)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			sketch.Logger().Warn("sketch: watcher error", "err", err)
		case <-timer.C:
			if err := render(abs); err != nil {
				sketch.Logger().Error("sketch: render failed", "err", err)
			}
		}
	}
}
