// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageload

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gogpu/ggshapes/internal/cache"
)

// DefaultMaxBytes caps how much content a loader reads for one image.
const DefaultMaxBytes = 64 << 20

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient sets the client used for http:// and https:// paths.
// The default is http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		l.client = c
	}
}

// WithFS resolves non-URL paths inside fsys instead of the OS filesystem.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithTimeout bounds each load. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// WithAutoOrient controls whether JPEG EXIF orientation is applied.
// Enabled by default.
func WithAutoOrient(enabled bool) Option {
	return func(l *Loader) {
		l.autoOrient = enabled
	}
}

// WithMaxBytes limits the content size read for one image.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) {
		l.maxBytes = n
	}
}

// WithCache keeps up to n decoded images keyed by path, so loading the same
// path again skips I/O and decoding. Cached images are shared between
// callers and must not be modified.
func WithCache(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.cache = cache.New[string, *Image](n)
		}
	}
}

// WithLogger sets the loader's logger. The default is ggshapes.Logger().
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}
