// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// Raster is a software Canvas and Context2D backed by a gg.Context.
//
// gg shares a single brush between fill and stroke and clears its path on
// every Fill, so Raster keeps the canvas state itself: separate fill and
// stroke colours, a line width and a retained path that is replayed into
// the gg context for each Fill or Stroke.
type Raster struct {
	dc   *gg.Context
	path *gg.Path

	fill       color.Color
	stroke     color.Color
	lineWidth  float64
	background color.Color
}

var (
	_ Canvas    = (*Raster)(nil)
	_ Context2D = (*Raster)(nil)
	_ io.Closer = (*Raster)(nil)
)

// RasterOption configures a Raster during creation.
type RasterOption func(*rasterOptions)

type rasterOptions struct {
	background color.Color
}

// WithBackground fills the raster with c on creation and after every
// SetSize. The default background is transparent.
func WithBackground(c color.Color) RasterOption {
	return func(o *rasterOptions) {
		o.background = c
	}
}

// NewRaster creates a raster canvas of the given size.
func NewRaster(width, height int, opts ...RasterOption) *Raster {
	var options rasterOptions
	for _, opt := range opts {
		opt(&options)
	}

	r := &Raster{
		dc:         gg.NewContext(width, height),
		path:       gg.NewPath(),
		background: options.background,
	}
	r.reset()
	return r
}

// reset restores the default context state and paints the background.
func (r *Raster) reset() {
	r.fill = DefaultFillStyle
	r.stroke = DefaultStrokeStyle
	r.lineWidth = DefaultLineWidth
	r.path.Clear()
	if r.background != nil {
		r.dc.ClearWithColor(gg.FromColor(r.background))
	} else {
		r.dc.Clear()
	}
}

// SetSize implements Canvas.
func (r *Raster) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if err := r.dc.Resize(width, height); err != nil {
		return fmt.Errorf("surface: resize raster: %w", err)
	}
	r.reset()
	return nil
}

// Context2D implements Canvas. The raster is its own context.
func (r *Raster) Context2D() (Context2D, error) {
	return r, nil
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.dc.Width() }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.dc.Height() }

// SetFillStyle implements Context2D.
func (r *Raster) SetFillStyle(c color.Color) { r.fill = c }

// SetStrokeStyle implements Context2D.
func (r *Raster) SetStrokeStyle(c color.Color) { r.stroke = c }

// SetLineWidth implements Context2D.
func (r *Raster) SetLineWidth(w float64) { r.lineWidth = w }

// FillStyle returns the current fill colour.
func (r *Raster) FillStyle() color.Color { return r.fill }

// StrokeStyle returns the current stroke colour.
func (r *Raster) StrokeStyle() color.Color { return r.stroke }

// LineWidth returns the current line width.
func (r *Raster) LineWidth() float64 { return r.lineWidth }

// BeginPath implements Context2D.
func (r *Raster) BeginPath() { r.path.Clear() }

// MoveTo implements Context2D.
func (r *Raster) MoveTo(x, y float64) { r.path.MoveTo(x, y) }

// LineTo implements Context2D. Without a current point it behaves like
// MoveTo.
func (r *Raster) LineTo(x, y float64) {
	if !r.path.HasCurrentPoint() {
		r.path.MoveTo(x, y)
		return
	}
	r.path.LineTo(x, y)
}

// QuadraticCurveTo implements Context2D.
func (r *Raster) QuadraticCurveTo(cx, cy, x, y float64) {
	r.ensureSubpath(cx, cy)
	r.path.QuadraticTo(cx, cy, x, y)
}

// BezierCurveTo implements Context2D.
func (r *Raster) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.ensureSubpath(c1x, c1y)
	r.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// Arc implements Context2D.
func (r *Raster) Arc(x, y, radius, startAngle, endAngle float64) {
	if radius < 0 {
		return
	}
	first, segs := arcCubics(x, y, radius, startAngle, arcSweep(startAngle, endAngle))
	if r.path.HasCurrentPoint() {
		r.path.LineTo(first.X, first.Y)
	} else {
		r.path.MoveTo(first.X, first.Y)
	}
	for _, s := range segs {
		r.path.CubicTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.P.X, s.P.Y)
	}
}

// ClosePath implements Context2D.
func (r *Raster) ClosePath() {
	if r.path.HasCurrentPoint() {
		r.path.Close()
	}
}

func (r *Raster) ensureSubpath(x, y float64) {
	if !r.path.HasCurrentPoint() {
		r.path.MoveTo(x, y)
	}
}

// Fill implements Context2D.
func (r *Raster) Fill() error {
	if !r.path.HasCurrentPoint() {
		return nil
	}
	r.replay()
	r.dc.SetColor(r.fill)
	return r.dc.Fill()
}

// Stroke implements Context2D.
func (r *Raster) Stroke() error {
	if !r.path.HasCurrentPoint() || r.lineWidth <= 0 {
		return nil
	}
	r.replay()
	r.dc.SetColor(r.stroke)
	r.dc.SetLineWidth(r.lineWidth)
	return r.dc.Stroke()
}

// replay copies the retained path into the gg context.
func (r *Raster) replay() {
	r.dc.ClearPath()
	for _, el := range r.path.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			r.dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			r.dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			r.dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			r.dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			r.dc.ClosePath()
		}
	}
}

// FillRect implements Context2D.
func (r *Raster) FillRect(x, y, w, h float64) error {
	if w == 0 || h == 0 {
		return nil
	}
	r.dc.ClearPath()
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.SetColor(r.fill)
	return r.dc.Fill()
}

// DrawImage implements Context2D.
func (r *Raster) DrawImage(img image.Image, opts DrawImageOptions) error {
	src, err := opts.sourceRect(img)
	if err != nil {
		return err
	}
	dw, dh := opts.destSize(src)
	if dw == 0 || dh == 0 {
		return nil
	}

	// ImageBufFromImage rebases the image to a zero origin.
	rel := src.Sub(img.Bounds().Min)
	r.dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:             opts.X,
		Y:             opts.Y,
		DstWidth:      dw,
		DstHeight:     dh,
		SrcRect:       &rel,
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

// Image returns the rendered pixels.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the rendered pixels to w as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// SavePNG writes the rendered pixels to a PNG file.
func (r *Raster) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

// Close releases the underlying gg context. Close is idempotent.
func (r *Raster) Close() error {
	return r.dc.Close()
}
