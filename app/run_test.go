// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggshapes"
	"github.com/gogpu/ggshapes/imageload"
	"github.com/gogpu/ggshapes/shape"
	"github.com/gogpu/ggshapes/surface"
)

var lotusRed = color.NRGBA{R: 220, G: 40, B: 60, A: 255}

func lotusFS(t *testing.T) fstest.MapFS {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	for y := range 128 {
		for x := range 128 {
			img.SetNRGBA(x, y, lotusRed)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return fstest.MapFS{"images/lotus.jpeg": {Data: buf.Bytes()}}
}

func testConfig(backend string) Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 400, 300
	cfg.Backend = backend
	return cfg
}

func TestRunDrawsThreeFramings(t *testing.T) {
	cfg := testConfig("recorder")
	res, err := Run(context.Background(), NewHeadless(cfg), imageload.New(imageload.WithFS(lotusFS(t))), cfg)
	require.NoError(t, err)

	assert.Equal(t, 400, res.Width)
	assert.Equal(t, 300, res.Height)
	assert.Equal(t, 128, res.Image.Width())

	rec, ok := res.Canvas.(*surface.Recorder)
	require.True(t, ok)
	assert.Equal(t, 400, rec.Width())
	assert.Equal(t, 300, rec.Height())

	draws := rec.Filter(surface.CmdDrawImage)
	require.Len(t, draws, 3)
	assert.Equal(t, []float64{100, 100}, draws[0].Args)
	assert.Equal(t, []float64{300, 100, 200, 200}, draws[1].Args)
	assert.Equal(t, []float64{16, 16, 96, 96, 100, 300, 50, 50}, draws[2].Args)
	for _, d := range draws {
		assert.Same(t, res.Image, d.Image)
	}

	// Sized before anything was drawn.
	cmds := rec.Commands()
	require.NotEmpty(t, cmds)
	assert.Equal(t, surface.CmdSetSize, cmds[0].Type)
}

func TestRunOnRaster(t *testing.T) {
	cfg := testConfig("raster")
	res, err := Run(context.Background(), NewHeadless(cfg), imageload.New(imageload.WithFS(lotusFS(t))), cfg)
	require.NoError(t, err)

	r, ok := res.Canvas.(*surface.Raster)
	require.True(t, ok)
	defer r.Close()

	out := r.Image()
	assert.Equal(t, image.Rect(0, 0, 400, 300), out.Bounds())

	isRed := func(x, y int) bool {
		c := color.NRGBAModel.Convert(out.At(x, y)).(color.NRGBA)
		d := func(a, b uint8) bool { return int(a)-int(b) <= 2 && int(b)-int(a) <= 2 }
		return d(c.R, lotusRed.R) && d(c.G, lotusRed.G) && d(c.B, lotusRed.B) && d(c.A, lotusRed.A)
	}
	assert.True(t, isRed(160, 160), "inside the natural-size framing")
	assert.True(t, isRed(399, 200), "inside the scaled framing")
	assert.False(t, isRed(20, 20), "outside every framing")

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))
	assert.NotZero(t, buf.Len())
}

func TestRunCanvasNotFound(t *testing.T) {
	cfg := testConfig("recorder")
	h := NewHeadless(cfg)

	cfg.CanvasID = "stage"
	_, err := Run(context.Background(), h, imageload.New(imageload.WithFS(lotusFS(t))), cfg)
	assert.ErrorIs(t, err, ErrCanvasNotFound)
	assert.Nil(t, h.canvas)
}

func TestRunInvalidViewport(t *testing.T) {
	cfg := testConfig("recorder")
	cfg.Height = 0
	h := NewHeadless(cfg)

	_, err := Run(context.Background(), h, imageload.New(imageload.WithFS(lotusFS(t))), cfg)
	assert.ErrorIs(t, err, ErrInvalidViewport)

	rec, ok := h.canvas.(*surface.Recorder)
	require.True(t, ok)
	assert.Zero(t, rec.Len(), "nothing drawn on an invalid viewport")
}

func TestRunImageLoadFails(t *testing.T) {
	cfg := testConfig("recorder")
	cfg.Image = "images/missing.jpeg"
	h := NewHeadless(cfg)

	res, err := Run(context.Background(), h, imageload.New(imageload.WithFS(lotusFS(t))), cfg)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, imageload.ErrNotFound)
	assert.Nil(t, h.canvas, "canvas acquired after a failed load")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := testConfig("recorder")
	_, err := Run(ctx, NewHeadless(cfg), imageload.New(imageload.WithFS(lotusFS(t))), cfg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunUnknownBackend(t *testing.T) {
	cfg := testConfig("plotter")
	_, err := Run(context.Background(), NewHeadless(cfg), imageload.New(imageload.WithFS(lotusFS(t))), cfg)
	assert.ErrorIs(t, err, surface.ErrUnknownBackend)
}

func TestRunRandomScene(t *testing.T) {
	cfg := testConfig("recorder")
	cfg.RandomShapes = 40
	cfg.Seed = 3

	res, err := Run(context.Background(), NewHeadless(cfg), imageload.New(imageload.WithFS(lotusFS(t))), cfg)
	require.NoError(t, err)

	rec := res.Canvas.(*surface.Recorder)
	cmds := rec.Commands()
	draws := rec.Filter(surface.CmdDrawImage)
	require.Len(t, draws, 3)
	// images are drawn last, on top of the scene
	assert.Equal(t, surface.CmdDrawImage, cmds[len(cmds)-1].Type)
	assert.Greater(t, len(rec.Filter(surface.CmdFill, surface.CmdStroke, surface.CmdFillRect)), 0)
}

func TestRender(t *testing.T) {
	rec := surface.NewRecorder(400, 300)
	sess := shape.NewSession(rec)
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))

	err := Render(sess, img, []shape.Framing{
		shape.At(0, 0),
		shape.Cropped(32, 32, 64, 64, 0, 0, 10, 10),
		shape.At(5, 5),
	})
	assert.ErrorIs(t, err, shape.ErrInvalidFraming)
	assert.Len(t, rec.Filter(surface.CmdDrawImage), 1, "render stops at the first failure")

	require.NoError(t, Render(sess, img, nil))
}

func TestRandomSceneDeterministic(t *testing.T) {
	a := RandomScene(newRand(11), 400, 300, 25)
	b := RandomScene(newRand(11), 400, 300, 25)
	require.Len(t, a, 25)
	assert.Equal(t, a, b)

	sess := shape.NewSession(surface.NewRecorder(400, 300))
	require.NoError(t, sess.DrawAll(a...))
}

func TestRandomSceneInViewport(t *testing.T) {
	for _, d := range RandomScene(ggshapes.NewRand(rand.NewPCG(5, 5)), 120, 80, 200) {
		switch v := d.(type) {
		case shape.Rect:
			assert.Less(t, v.X, 120.0)
			assert.Less(t, v.Y, 80.0)
		case shape.Circle:
			assert.Less(t, v.X, 120.0)
			assert.Greater(t, v.Radius, 0.0)
		case shape.Polygon:
			assert.GreaterOrEqual(t, len(v.Points), 6)
			assert.Zero(t, len(v.Points)%2)
		}
	}
}
