// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gogpu/ggshapes"
	"github.com/gogpu/ggshapes/imageload"
	"github.com/gogpu/ggshapes/shape"
	"github.com/gogpu/ggshapes/surface"
)

// Result describes a completed run.
type Result struct {
	Image   *imageload.Image
	Canvas  surface.Canvas
	Session *shape.Session
	Width   int
	Height  int
	Elapsed time.Duration
}

// Run performs the render pass: wait for p to be ready, load cfg.Image with
// l, size the canvas cfg.CanvasID to the viewport and draw the image at the
// default framings. If any step fails nothing further is drawn.
func Run(ctx context.Context, p Platform, l *imageload.Loader, cfg Config) (*Result, error) {
	log := ggshapes.Logger()
	began := time.Now()

	if cfg.Image == "" {
		return nil, ErrNoImage
	}
	if err := p.Ready(ctx); err != nil {
		return nil, fmt.Errorf("app: platform not ready: %w", err)
	}
	log.Debug("app: platform ready")

	task := l.Load(ctx, cfg.Image)
	defer task.Cancel()
	img, err := task.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("app: load %s: %w", cfg.Image, err)
	}

	canvas, err := p.Canvas(cfg.CanvasID)
	if err != nil {
		return nil, err
	}
	w, h := p.Viewport()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, w, h)
	}
	if err := canvas.SetSize(w, h); err != nil {
		return nil, fmt.Errorf("app: size canvas: %w", err)
	}
	ctx2d, err := canvas.Context2D()
	if err != nil {
		return nil, fmt.Errorf("app: canvas context: %w", err)
	}

	mode := shape.Strict
	if !cfg.Strict {
		mode = shape.Lenient
	}
	sess := shape.NewSession(ctx2d, shape.WithMode(mode))

	if cfg.RandomShapes > 0 {
		if err := sess.DrawAll(RandomScene(newRand(cfg.Seed), w, h, cfg.RandomShapes)...); err != nil {
			return nil, fmt.Errorf("app: random scene: %w", err)
		}
	}
	if err := Render(sess, img, DefaultFramings()); err != nil {
		return nil, err
	}

	res := &Result{
		Image:   img,
		Canvas:  canvas,
		Session: sess,
		Width:   w,
		Height:  h,
		Elapsed: time.Since(began),
	}
	log.Info("app: render done",
		"image", img.Path,
		"viewport", fmt.Sprintf("%dx%d", w, h),
		"elapsed", res.Elapsed)
	return res, nil
}

func newRand(seed uint64) *ggshapes.Rand {
	if seed == 0 {
		seed = uint64(ggshapes.RandomInt(math.MaxInt32)) + 1
	}
	return ggshapes.NewRand(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
