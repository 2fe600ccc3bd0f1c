// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command sketch renders a TOML drawing script to a PNG file.
//
// Usage:
//
//	sketch [flags] <script>
//
// The script binds a surface to an in-memory container, replays its ops
// through a sketch.Context and writes the surface after every image has
// loaded. With --watch the script is re-rendered whenever it changes.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/gogpu/sketch"
	_ "github.com/gogpu/sketch/ggcanvas"
	"github.com/gogpu/sketch/imageload"
	"github.com/gogpu/sketch/surface"
)

type appOptions struct {
	Output  string `short:"o" type:"path" default:"sketch.png" help:"PNG file to write."`
	Config  string `short:"c" type:"existingfile" help:"Config file. Defaults to sketch/config.toml in the XDG config directories."`
	Backend string `short:"b" help:"Canvas backend (${backends}). Empty selects the best available."`
	Watch   bool   `short:"w" help:"Re-render whenever the script changes."`
	Verbose int    `short:"v" type:"counter" help:"Log more (-v info, -vv debug)."`

	Script string `arg:"" type:"existingfile" help:"TOML drawing script."`
}

func main() {
	var flags appOptions
	parser := kong.Must(&flags,
		kong.Name("sketch"),
		kong.Description("Render a TOML drawing script to PNG."),
		kong.UsageOnError(),
		kong.Vars{"backends": strings.Join(surface.Backends(), ", ")},
	)

	_, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger := newLogger(flags.Verbose)
	sketch.SetLogger(logger)

	cfg, err := loadConfig(flags.Config)
	parser.FatalIfErrorf(err)

	r := &renderer{
		config:  cfg,
		backend: flags.Backend,
		output:  flags.Output,
		loader:  imageload.New(imageload.WithLogger(logger), imageload.WithCacheSize(64)),
	}
	parser.FatalIfErrorf(r.renderFile(flags.Script))

	if !flags.Watch {
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	parser.FatalIfErrorf(watch(ctx, flags.Script, r.renderFile))
}

// newLogger returns a stderr logger at warn level, lowered by verbosity.
func newLogger(verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
