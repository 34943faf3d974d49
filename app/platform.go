// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"fmt"

	"github.com/gogpu/ggshapes/surface"
)

// Platform is the environment a run draws into.
type Platform interface {
	// Ready blocks until the platform can be drawn on. It returns ctx.Err()
	// if ctx is done first.
	Ready(ctx context.Context) error

	// Canvas returns the canvas element with the given identifier, or an
	// error wrapping ErrCanvasNotFound.
	Canvas(id string) (surface.Canvas, error)

	// Viewport returns the current viewport size in pixels.
	Viewport() (width, height int)
}

// Headless is a Platform backed by a canvas from the surface registry.
// It is ready immediately and exposes a single canvas.
type Headless struct {
	backend  string
	canvasID string
	width    int
	height   int

	canvas surface.Canvas
}

// NewHeadless creates a headless platform from cfg's backend, canvas
// identifier and size.
func NewHeadless(cfg Config) *Headless {
	backend := cfg.Backend
	if backend == "" {
		backend = DefaultBackend
	}
	return &Headless{
		backend:  backend,
		canvasID: cfg.CanvasID,
		width:    cfg.Width,
		height:   cfg.Height,
	}
}

// Ready implements Platform.
func (h *Headless) Ready(ctx context.Context) error {
	return ctx.Err()
}

// Canvas implements Platform. The canvas is created on first use.
func (h *Headless) Canvas(id string) (surface.Canvas, error) {
	if id != h.canvasID {
		return nil, fmt.Errorf("%w: %q", ErrCanvasNotFound, id)
	}
	if h.canvas == nil {
		// Start at 1x1; Run sizes it to the viewport.
		c, err := surface.New(h.backend, 1, 1)
		if err != nil {
			return nil, fmt.Errorf("app: create %s canvas: %w", h.backend, err)
		}
		h.canvas = c
	}
	return h.canvas, nil
}

// Viewport implements Platform.
func (h *Headless) Viewport() (int, int) {
	return h.width, h.height
}
