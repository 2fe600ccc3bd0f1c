// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package imageload fetches and decodes images in the background.
//
// A Loader implements surface.ImageLoader. Each Load call runs in its own
// goroutine and reports through the completion callback from that
// goroutine. Supported sources:
//
//   - file paths, absolute or relative to the working directory
//   - file:// URLs
//   - http:// and https:// URLs, fetched with the configured http.Client
//   - data: URIs, base64 or percent encoded
//
// Payloads are sniffed before decoding so that non-image responses fail
// with ErrNotImage. PNG, JPEG, GIF, BMP, TIFF and WebP are decoded.
//
// Loads cannot be cancelled. Wait blocks until every started load has
// reported.
package imageload
