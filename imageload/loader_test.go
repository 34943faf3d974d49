// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 8), uint8(y * 8), 128, 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(w, h)))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(w, h), nil))
	return buf.Bytes()
}

func encodeBMP(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, testImage(w, h)))
	return buf.Bytes()
}

// gateFS blocks Open on a path until its gate is closed.
type gateFS struct {
	fstest.MapFS
	gates map[string]chan struct{}
}

func (g gateFS) Open(name string) (fs.File, error) {
	if gate, ok := g.gates[name]; ok {
		<-gate
	}
	return g.MapFS.Open(name)
}

func wait(t *testing.T, task *Task) (*Image, error) {
	t.Helper()
	select {
	case <-task.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("load of %s did not complete", task.Path())
	}
	return task.Result()
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "lotus.png")
	require.NoError(t, os.WriteFile(p, encodePNG(t, 30, 20), 0o600))

	task := New().Load(context.Background(), p)
	assert.Equal(t, p, task.Path())

	img, err := wait(t, task)
	require.NoError(t, err)
	assert.Equal(t, 30, img.Width())
	assert.Equal(t, 20, img.Height())
	assert.Equal(t, "png", img.Format)
	assert.Equal(t, p, img.Path)

	select {
	case <-task.Done():
	default:
		t.Fatal("Done() not closed after completion")
	}
	again, err := task.Result()
	require.NoError(t, err)
	assert.Same(t, img, again)
}

func TestLoadFormats(t *testing.T) {
	fsys := fstest.MapFS{
		"images/a.png":  {Data: encodePNG(t, 8, 4)},
		"images/b.jpeg": {Data: encodeJPEG(t, 16, 8)},
		"images/c.bmp":  {Data: encodeBMP(t, 5, 7)},
	}
	l := New(WithFS(fsys))

	tests := []struct {
		path   string
		format string
		w, h   int
	}{
		{"images/a.png", "png", 8, 4},
		{"./images/b.jpeg", "jpg", 16, 8},
		{"/images/c.bmp", "bmp", 5, 7},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			img, err := wait(t, l.Load(context.Background(), tt.path))
			require.NoError(t, err)
			assert.Equal(t, tt.format, img.Format)
			assert.Equal(t, tt.w, img.Width())
			assert.Equal(t, tt.h, img.Height())
		})
	}
}

func TestLoadErrors(t *testing.T) {
	corrupt := append([]byte{}, encodePNG(t, 4, 4)[:40]...)
	fsys := fstest.MapFS{
		"notes.txt":   {Data: []byte("not an image at all")},
		"corrupt.png": {Data: corrupt},
		"empty.png":   {Data: nil},
	}
	l := New(WithFS(fsys))

	tests := []struct {
		path string
		want error
	}{
		{"missing.png", ErrNotFound},
		{"notes.txt", ErrNotImage},
		{"empty.png", ErrNotImage},
		{"corrupt.png", ErrDecode},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			img, err := wait(t, l.Load(context.Background(), tt.path))
			assert.Nil(t, img)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadTooLarge(t *testing.T) {
	fsys := fstest.MapFS{"big.png": {Data: encodePNG(t, 64, 64)}}
	_, err := wait(t, New(WithFS(fsys), WithMaxBytes(16)).Load(context.Background(), "big.png"))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestLoadFuncCallsBackOnceAsync(t *testing.T) {
	gate := make(chan struct{})
	fsys := gateFS{
		MapFS: fstest.MapFS{"lotus.png": {Data: encodePNG(t, 10, 10)}},
		gates: map[string]chan struct{}{"lotus.png": gate},
	}

	var ready, failed atomic.Int32
	got := make(chan *Image, 1)
	task := New(WithFS(fsys)).LoadFunc(context.Background(), "lotus.png",
		func(img *Image) {
			ready.Add(1)
			got <- img
		},
		func(error) { failed.Add(1) },
	)

	assert.Zero(t, ready.Load(), "onReady ran before LoadFunc returned")
	close(gate)

	select {
	case img := <-got:
		assert.Equal(t, 10, img.Width())
	case <-time.After(5 * time.Second):
		t.Fatal("onReady not called")
	}
	_, err := wait(t, task)
	require.NoError(t, err)
	assert.EqualValues(t, 1, ready.Load())
	assert.Zero(t, failed.Load())
}

func TestLoadFuncFailureChannel(t *testing.T) {
	errs := make(chan error, 1)
	New(WithFS(fstest.MapFS{})).LoadFunc(context.Background(), "missing.jpeg",
		func(*Image) { t.Error("onReady called for a missing file") },
		func(err error) { errs <- err },
	)

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrNotFound)
	case <-time.After(5 * time.Second):
		t.Fatal("onError not called")
	}
}

func TestLoadFuncNilErrorCallback(t *testing.T) {
	task := New(WithFS(fstest.MapFS{})).LoadFunc(context.Background(), "missing.jpeg",
		func(*Image) { t.Error("onReady called for a missing file") }, nil)
	_, err := wait(t, task)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConcurrentLoadsCompleteIndependently(t *testing.T) {
	slow := make(chan struct{})
	fsys := gateFS{
		MapFS: fstest.MapFS{
			"slow.png": {Data: encodePNG(t, 2, 2)},
			"fast.png": {Data: encodePNG(t, 3, 3)},
		},
		gates: map[string]chan struct{}{"slow.png": slow},
	}
	l := New(WithFS(fsys))

	first := l.Load(context.Background(), "slow.png")
	second := l.Load(context.Background(), "fast.png")

	img, err := wait(t, second)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Width())

	select {
	case <-first.Done():
		t.Fatal("slow load completed while gated")
	default:
	}

	close(slow)
	img, err = wait(t, first)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Width())
}

func TestCancel(t *testing.T) {
	gate := make(chan struct{})
	fsys := gateFS{
		MapFS: fstest.MapFS{"lotus.png": {Data: encodePNG(t, 4, 4)}},
		gates: map[string]chan struct{}{"lotus.png": gate},
	}
	task := New(WithFS(fsys)).Load(context.Background(), "lotus.png")
	task.Cancel()
	close(gate)

	img, err := wait(t, task)
	assert.Nil(t, img)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaitGivesUp(t *testing.T) {
	gate := make(chan struct{})
	defer close(gate)
	fsys := gateFS{
		MapFS: fstest.MapFS{"lotus.png": {Data: encodePNG(t, 4, 4)}},
		gates: map[string]chan struct{}{"lotus.png": gate},
	}
	task := New(WithFS(fsys)).Load(context.Background(), "lotus.png")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := task.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLoadHTTP(t *testing.T) {
	body := encodeJPEG(t, 12, 6)
	mux := http.NewServeMux()
	mux.HandleFunc("/images/lotus.jpeg", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(body)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/slow", func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	l := New(WithHTTPClient(srv.Client()), WithTimeout(200*time.Millisecond))

	t.Run("ok", func(t *testing.T) {
		img, err := wait(t, l.Load(context.Background(), srv.URL+"/images/lotus.jpeg"))
		require.NoError(t, err)
		assert.Equal(t, "jpg", img.Format)
		assert.Equal(t, 12, img.Width())
		assert.Equal(t, 6, img.Height())
	})
	t.Run("not found", func(t *testing.T) {
		_, err := wait(t, l.Load(context.Background(), srv.URL+"/missing.png"))
		assert.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("server error", func(t *testing.T) {
		_, err := wait(t, l.Load(context.Background(), srv.URL+"/broken"))
		assert.ErrorIs(t, err, ErrHTTPStatus)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
	t.Run("timeout", func(t *testing.T) {
		_, err := wait(t, l.Load(context.Background(), srv.URL+"/slow"))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("http://example.com/a.png"))
	assert.True(t, IsURL("https://example.com/a.png"))
	assert.False(t, IsURL("./images/lotus.jpeg"))
	assert.False(t, IsURL("ftp://example.com/a.png"))
}

func TestImageString(t *testing.T) {
	img := &Image{Image: testImage(3, 2), Path: "a.png", Format: "png"}
	assert.Equal(t, "a.png (png 3x2)", img.String())
}

// countingFS counts Open calls.
type countingFS struct {
	fstest.MapFS
	opens atomic.Int32
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens.Add(1)
	return c.MapFS.Open(name)
}

func TestLoadCache(t *testing.T) {
	fsys := &countingFS{MapFS: fstest.MapFS{
		"a.png": {Data: encodePNG(t, 6, 6)},
		"b.png": {Data: encodePNG(t, 7, 7)},
	}}
	l := New(WithFS(fsys), WithCache(1))

	first, err := wait(t, l.Load(context.Background(), "a.png"))
	require.NoError(t, err)
	again, err := wait(t, l.Load(context.Background(), "a.png"))
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.EqualValues(t, 1, fsys.opens.Load())

	// b evicts a
	_, err = wait(t, l.Load(context.Background(), "b.png"))
	require.NoError(t, err)
	_, err = wait(t, l.Load(context.Background(), "a.png"))
	require.NoError(t, err)
	assert.EqualValues(t, 3, fsys.opens.Load())

	stats := l.cache.Stats()
	assert.EqualValues(t, 1, stats.Hits)
	assert.EqualValues(t, 2, stats.Evictions)
}

func TestLoadCacheSkipsFailures(t *testing.T) {
	fsys := &countingFS{MapFS: fstest.MapFS{}}
	l := New(WithFS(fsys), WithCache(4))

	for range 2 {
		_, err := wait(t, l.Load(context.Background(), "missing.png"))
		assert.ErrorIs(t, err, ErrNotFound)
	}
	assert.EqualValues(t, 2, fsys.opens.Load())
	assert.Zero(t, l.cache.Len())
}

func TestForgetAndClearCache(t *testing.T) {
	fsys := &countingFS{MapFS: fstest.MapFS{
		"a.png": {Data: encodePNG(t, 6, 6)},
		"b.png": {Data: encodePNG(t, 7, 7)},
	}}
	l := New(WithFS(fsys), WithCache(4))

	load := func(p string) {
		t.Helper()
		_, err := wait(t, l.Load(context.Background(), p))
		require.NoError(t, err)
	}
	load("a.png")
	load("b.png")
	load("a.png")
	assert.EqualValues(t, 2, fsys.opens.Load())

	assert.True(t, l.Forget("a.png"))
	assert.False(t, l.Forget("a.png"))
	load("a.png")
	assert.EqualValues(t, 3, fsys.opens.Load())

	l.ClearCache()
	assert.Zero(t, l.cache.Len())
	load("b.png")
	assert.EqualValues(t, 4, fsys.opens.Load())

	uncached := New(WithFS(fsys))
	assert.False(t, uncached.Forget("a.png"))
	uncached.ClearCache()
}

var errDisk = errors.New("disk on fire")

// brokenFile fails every read.
type brokenFile struct{}

func (brokenFile) Stat() (fs.FileInfo, error) { return nil, errDisk }

func (brokenFile) Read([]byte) (int, error) { return 0, errDisk }

func (brokenFile) Close() error { return nil }

type brokenFS struct{}

func (brokenFS) Open(string) (fs.File, error) { return brokenFile{}, nil }

func TestReadErrorsWrapped(t *testing.T) {
	for _, limit := range []int64{0, DefaultMaxBytes} {
		_, err := wait(t, New(WithFS(brokenFS{}), WithMaxBytes(limit)).Load(context.Background(), "lotus.png"))
		require.ErrorIs(t, err, errDisk)
		assert.True(t, strings.HasPrefix(err.Error(), "imageload: read lotus.png: "), err.Error())
	}
}
