// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package app

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"syscall/js"

	"github.com/gogpu/ggshapes/surface"
)

// Browser is a Platform backed by the page the wasm module runs in.
// It becomes ready when the window load event has fired.
type Browser struct {
	win js.Value
	doc js.Value

	ready chan struct{}
	once  sync.Once
}

// NewBrowser creates the browser platform and starts listening for the
// window load event. If the document has already loaded it is ready at
// once.
func NewBrowser() *Browser {
	b := &Browser{
		win:   js.Global(),
		doc:   js.Global().Get("document"),
		ready: make(chan struct{}),
	}
	if b.doc.Get("readyState").String() == "complete" {
		b.markReady()
		return b
	}

	var onLoad js.Func
	onLoad = js.FuncOf(func(js.Value, []js.Value) any {
		b.markReady()
		onLoad.Release()
		return nil
	})
	b.win.Call("addEventListener", "load", onLoad, false)
	return b
}

func (b *Browser) markReady() {
	b.once.Do(func() { close(b.ready) })
}

// Ready implements Platform.
func (b *Browser) Ready(ctx context.Context) error {
	select {
	case <-b.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Canvas implements Platform. id is matched against the element id.
func (b *Browser) Canvas(id string) (surface.Canvas, error) {
	el := b.doc.Get("body").Call("querySelector", "#"+id)
	if el.IsNull() || el.IsUndefined() {
		return nil, fmt.Errorf("%w: #%s", ErrCanvasNotFound, id)
	}
	return surface.NewBrowser(el)
}

// Viewport implements Platform and reports the window's inner size.
func (b *Browser) Viewport() (int, int) {
	return b.win.Get("innerWidth").Int(), b.win.Get("innerHeight").Int()
}

// Resolve turns a path relative to the page into an absolute URL, so it
// can be fetched by an imageload.Loader.
func (b *Browser) Resolve(p string) (string, error) {
	base, err := url.Parse(b.win.Get("location").Get("href").String())
	if err != nil {
		return "", fmt.Errorf("app: page location: %w", err)
	}
	ref, err := url.Parse(p)
	if err != nil {
		return "", fmt.Errorf("app: image path %q: %w", p, err)
	}
	return base.ResolveReference(ref).String(), nil
}
