// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imageload

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/h2non/filetype"

	"github.com/gogpu/sketch/internal/cache"
)

// Errors reported to completion callbacks.
var (
	// ErrUnsupportedSource is returned for sources with an unknown URL scheme
	// or a malformed data URI.
	ErrUnsupportedSource = errors.New("imageload: unsupported source")

	// ErrNotImage is returned when the payload is not a recognized image.
	ErrNotImage = errors.New("imageload: not an image")

	// ErrTooLarge is returned when the payload exceeds the size limit.
	ErrTooLarge = errors.New("imageload: payload too large")

	// ErrHTTPStatus is wrapped by errors for non-200 HTTP responses.
	ErrHTTPStatus = errors.New("imageload: unexpected HTTP status")
)

// Defaults.
const (
	DefaultTimeout  = 30 * time.Second
	DefaultMaxBytes = 32 << 20
)

// Loader loads images asynchronously. The zero value is not usable; create
// loaders with New.
//
// Loader is safe for concurrent use.
type Loader struct {
	client   *http.Client
	maxBytes int64
	images   *cache.Cache[string, image.Image]
	logger   atomic.Pointer[slog.Logger]
	wg       sync.WaitGroup
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient sets the client used for http and https sources.
// The default client times out after DefaultTimeout.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// WithMaxBytes limits the payload size of a single source.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxBytes = n
		}
	}
}

// WithCacheSize keeps up to n decoded images keyed by source, so a source
// drawn on every flush is fetched once. Caching is off by default.
func WithCacheSize(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.images = cache.New[string, image.Image](n)
		}
	}
}

// WithLogger sets the logger for load diagnostics.
func WithLogger(lg *slog.Logger) Option {
	return func(l *Loader) {
		l.SetLogger(lg)
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		client:   &http.Client{Timeout: DefaultTimeout},
		maxBytes: DefaultMaxBytes,
	}
	l.logger.Store(slog.New(slog.DiscardHandler))
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetLogger replaces the logger. Passing nil disables logging.
func (l *Loader) SetLogger(lg *slog.Logger) {
	if lg == nil {
		lg = slog.New(slog.DiscardHandler)
	}
	l.logger.Store(lg)
}

// Logger returns the current logger.
func (l *Loader) Logger() *slog.Logger {
	return l.logger.Load()
}

// Load fetches and decodes src in a new goroutine and calls done with the
// result from that goroutine. Load never blocks and never calls done
// synchronously.
func (l *Loader) Load(src string, done func(image.Image, error)) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		img, err := l.Fetch(context.Background(), src)
		if err != nil {
			l.Logger().Debug("imageload: load failed", "src", abbreviate(src), "err", err)
		} else {
			b := img.Bounds()
			l.Logger().Debug("imageload: loaded", "src", abbreviate(src), "width", b.Dx(), "height", b.Dy())
		}
		if done != nil {
			done(img, err)
		}
	}()
}

// Wait blocks until every load started so far has called its callback.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Purge drops every cached image.
func (l *Loader) Purge() {
	if l.images != nil {
		l.images.Clear()
	}
}

// Fetch loads and decodes src synchronously.
func (l *Loader) Fetch(ctx context.Context, src string) (image.Image, error) {
	if l.images != nil {
		if img, ok := l.images.Get(src); ok {
			return img, nil
		}
	}
	data, err := l.read(ctx, src)
	if err != nil {
		return nil, err
	}
	img, err := decode(data)
	if err != nil {
		return nil, err
	}
	if l.images != nil {
		l.images.Set(src, img)
	}
	return img, nil
}

func (l *Loader) read(ctx context.Context, src string) ([]byte, error) {
	if strings.HasPrefix(src, "data:") {
		return parseDataURI(src)
	}

	u, err := url.Parse(src)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// Plain paths, including Windows drive letters.
		return l.readFile(src)
	}
	switch strings.ToLower(u.Scheme) {
	case "file":
		return l.readFile(u.Path)
	case "http", "https":
		return l.readHTTP(ctx, u.String())
	default:
		return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedSource, u.Scheme)
	}
}

func (l *Loader) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageload: %w", err)
	}
	defer f.Close()
	return l.readAll(f)
}

func (l *Loader) readHTTP(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("imageload: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imageload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: %s", ErrHTTPStatus, rawURL, resp.Status)
	}
	return l.readAll(resp.Body)
}

// readAll reads r up to the size limit.
func (l *Loader) readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("imageload: %w", err)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrTooLarge, l.maxBytes)
	}
	return data, nil
}

// parseDataURI decodes the payload of "data:[<mediatype>][;base64],<data>".
func parseDataURI(src string) ([]byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(src, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("%w: data URI without payload", ErrUnsupportedSource)
	}
	if strings.HasSuffix(strings.ToLower(meta), ";base64") {
		payload = strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
				return -1
			}
			return r
		}, payload)
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			data, err = base64.RawStdEncoding.DecodeString(payload)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedSource, err)
		}
		return data, nil
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedSource, err)
	}
	return []byte(s), nil
}

// decode sniffs data and decodes it with the registered image decoders.
func decode(data []byte) (image.Image, error) {
	if !filetype.IsImage(data) {
		return nil, ErrNotImage
	}
	kind, _ := filetype.Match(data)
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imageload: decode %s: %w", kind.Extension, err)
	}
	return img, nil
}

// abbreviate shortens data URIs for logging.
func abbreviate(src string) string {
	const limit = 64
	if len(src) <= limit {
		return src
	}
	return src[:limit] + "..."
}
