// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imageload

import (
	"io"
	"log/slog"
)

func slogText(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
