// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/gogpu/sketch"
)

// configRelPath is the config file location below the XDG config directories.
var configRelPath = filepath.Join("sketch", "config.toml")

// loadConfig reads the config file at path. An empty path searches the XDG
// config directories; finding nothing there yields the defaults.
func loadConfig(path string) (sketch.Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(configRelPath)
		if err != nil {
			// No config file installed.
			return sketch.DefaultConfig(), nil
		}
		path = found
	}

	f, err := os.Open(path)
	if err != nil {
		return sketch.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	cfg, err := sketch.DecodeConfig(f)
	if err != nil {
		return sketch.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
