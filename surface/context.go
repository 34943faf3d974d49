// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"
	"image/color"
)

var (
	// ErrInvalidSize is returned when a canvas is sized to a non-positive
	// width or height.
	ErrInvalidSize = errors.New("surface: invalid size")

	// ErrSourceOutOfBounds is returned by DrawImage when the source
	// rectangle does not lie inside the image.
	ErrSourceOutOfBounds = errors.New("surface: source rectangle out of image bounds")
)

// Default context state, matching the canvas defaults.
var (
	DefaultFillStyle   color.Color = color.Black
	DefaultStrokeStyle color.Color = color.Black
)

// DefaultLineWidth is the line width of a freshly sized context.
const DefaultLineWidth = 1.0

// Context2D is a 2D rendering context.
//
// Angles are in radians. Arc always sweeps clockwise in screen space
// (positive angles turn from +X towards +Y).
type Context2D interface {
	// Width returns the context width in pixels.
	Width() int

	// Height returns the context height in pixels.
	Height() int

	// SetFillStyle sets the colour used by Fill and FillRect.
	SetFillStyle(c color.Color)

	// SetStrokeStyle sets the colour used by Stroke.
	SetStrokeStyle(c color.Color)

	// SetLineWidth sets the width used by Stroke.
	SetLineWidth(w float64)

	// BeginPath discards the current path.
	BeginPath()

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo adds a straight segment to (x, y).
	LineTo(x, y float64)

	// Arc adds a circular arc centred on (x, y). If the path has a
	// current point a straight segment joins it to the arc start.
	Arc(x, y, radius, startAngle, endAngle float64)

	// QuadraticCurveTo adds a quadratic Bézier segment with control
	// point (cx, cy) ending at (x, y).
	QuadraticCurveTo(cx, cy, x, y float64)

	// BezierCurveTo adds a cubic Bézier segment with control points
	// (c1x, c1y) and (c2x, c2y) ending at (x, y).
	BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64)

	// ClosePath closes the current subpath.
	ClosePath()

	// Fill fills the current path with the fill style. The path is kept.
	Fill() error

	// Stroke strokes the current path with the stroke style and line
	// width. The path is kept.
	Stroke() error

	// FillRect fills an axis-aligned rectangle without touching the
	// current path.
	FillRect(x, y, w, h float64) error

	// DrawImage draws img (or a region of it) into a destination rectangle.
	DrawImage(img image.Image, opts DrawImageOptions) error
}

// Canvas is a sizable element that owns a Context2D.
type Canvas interface {
	// SetSize resizes the canvas, clearing its pixels and resetting the
	// context state.
	SetSize(width, height int) error

	// Context2D returns the canvas' rendering context. Repeated calls
	// return the same context.
	Context2D() (Context2D, error)
}

// DrawImageOptions describes where and how much of an image to draw.
// The three canvas drawImage forms map to:
//
//	drawImage(img, dx, dy)                          -> {X, Y}
//	drawImage(img, dx, dy, dw, dh)                  -> {X, Y, DstWidth, DstHeight}
//	drawImage(img, sx, sy, sw, sh, dx, dy, dw, dh)  -> all fields, SrcRect set
type DrawImageOptions struct {
	// X, Y is the top-left corner of the destination.
	X, Y float64

	// DstWidth and DstHeight scale the drawn region. Zero means the
	// source size.
	DstWidth  float64
	DstHeight float64

	// SrcRect selects a region of the image, relative to its bounds'
	// origin. Nil means the whole image.
	SrcRect *image.Rectangle
}

// sourceRect resolves the source region in image coordinates, rejecting
// regions that fall outside img.
func (o DrawImageOptions) sourceRect(img image.Image) (image.Rectangle, error) {
	b := img.Bounds()
	if o.SrcRect == nil {
		return b, nil
	}
	r := o.SrcRect.Add(b.Min)
	if r.Empty() || !r.In(b) {
		return image.Rectangle{}, ErrSourceOutOfBounds
	}
	return r, nil
}

// destSize returns the destination width and height for a source region.
func (o DrawImageOptions) destSize(src image.Rectangle) (float64, float64) {
	w, h := o.DstWidth, o.DstHeight
	if w == 0 {
		w = float64(src.Dx())
	}
	if h == 0 {
		h = float64(src.Dy())
	}
	return w, h
}
