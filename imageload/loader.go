// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"

	"github.com/gogpu/ggshapes"
	"github.com/gogpu/ggshapes/internal/cache"

	// Decoders beyond the ones imaging registers.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Loader fetches and decodes images. A Loader is safe for concurrent use.
type Loader struct {
	client     *http.Client
	fsys       fs.FS
	timeout    time.Duration
	autoOrient bool
	maxBytes   int64
	cache      *cache.Cache[string, *Image]
	log        *slog.Logger
}

// New creates a Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{
		client:     http.DefaultClient,
		autoOrient: true,
		maxBytes:   DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.client == nil {
		l.client = http.DefaultClient
	}
	return l
}

func (l *Loader) logger() *slog.Logger {
	if l.log != nil {
		return l.log
	}
	return ggshapes.Logger()
}

// Load starts loading the image at p and returns immediately.
// The returned task completes on a goroutine owned by the loader.
func (l *Loader) Load(ctx context.Context, p string) *Task {
	return l.start(ctx, p, nil)
}

// LoadFunc loads the image at p and calls exactly one of onReady or
// onError when it completes. The callback runs on the loader goroutine,
// concurrently with the caller, and is never invoked from inside LoadFunc
// itself. A nil onError means failures are only logged.
func (l *Loader) LoadFunc(ctx context.Context, p string, onReady func(*Image), onError func(error)) *Task {
	return l.start(ctx, p, func(img *Image, err error) {
		switch {
		case err != nil && onError != nil:
			onError(err)
		case err == nil && onReady != nil:
			onReady(img)
		}
	})
}

func (l *Loader) start(ctx context.Context, p string, then func(*Image, error)) *Task {
	var cancel context.CancelFunc
	if l.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	t := newTask(p, cancel)

	go func() {
		defer cancel()
		img, err := l.load(ctx, p)
		t.complete(img, err)
		if then != nil {
			then(img, err)
		}
	}()
	return t
}

func (l *Loader) load(ctx context.Context, p string) (*Image, error) {
	log := l.logger()
	began := time.Now()

	if l.cache != nil {
		if img, ok := l.cache.Get(p); ok {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			log.Debug("imageload: cache hit", "path", p)
			return img, nil
		}
	}

	data, err := l.read(ctx, p)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		log.Warn("imageload: load failed", "path", p, "err", err)
		return nil, err
	}

	img, err := l.decode(data)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		log.Warn("imageload: load failed", "path", p, "err", err)
		return nil, err
	}
	img.Path = p
	if l.cache != nil {
		l.cache.Set(p, img)
	}

	log.Info("imageload: loaded",
		"path", p,
		"format", img.Format,
		"width", img.Width(),
		"height", img.Height(),
		"elapsed", time.Since(began))
	return img, nil
}

// Forget drops p from the loader's cache, so the next load of p reads it
// again. It reports whether p was cached.
func (l *Loader) Forget(p string) bool {
	if l.cache == nil {
		return false
	}
	return l.cache.Delete(p)
}

// ClearCache drops every cached image.
func (l *Loader) ClearCache() {
	if l.cache != nil {
		l.cache.Clear()
	}
}

// IsURL reports whether p is fetched over HTTP rather than read from a
// filesystem.
func IsURL(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

func (l *Loader) read(ctx context.Context, p string) ([]byte, error) {
	if IsURL(p) {
		return l.fetch(ctx, p)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		f   io.ReadCloser
		err error
	)
	if l.fsys != nil {
		name := strings.TrimPrefix(path.Clean(p), "/")
		f, err = l.fsys.Open(name)
	} else {
		f, err = os.Open(p)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
		return nil, fmt.Errorf("imageload: open %s: %w", p, err)
	}
	defer f.Close()

	return l.readAll(f, p)
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("imageload: request %s: %w", url, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("imageload: get %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: %s: %s", ErrHTTPStatus, url, resp.Status)
	}
	return l.readAll(resp.Body, url)
}

func (l *Loader) readAll(r io.Reader, p string) ([]byte, error) {
	if l.maxBytes <= 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("imageload: read %s: %w", p, err)
		}
		return data, nil
	}
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("imageload: read %s: %w", p, err)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, p, l.maxBytes)
	}
	return data, nil
}

func (l *Loader) decode(data []byte) (*Image, error) {
	if !filetype.IsImage(data) {
		return nil, ErrNotImage
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotImage, err)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(l.autoOrient))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, kind.Extension, err)
	}
	return &Image{Image: img, Format: kind.Extension}, nil
}
