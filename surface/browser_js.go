// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"syscall/js"
)

// ErrNoContext is returned when a canvas element cannot provide a 2D context.
var ErrNoContext = errors.New("surface: canvas has no 2d context")

// Browser is a Canvas and Context2D that forwards every call to an HTML
// canvas element and its CanvasRenderingContext2D.
type Browser struct {
	el  js.Value
	ctx js.Value
	doc js.Value
}

var (
	_ Canvas    = (*Browser)(nil)
	_ Context2D = (*Browser)(nil)
)

// NewBrowser wraps a <canvas> element.
func NewBrowser(el js.Value) (*Browser, error) {
	if el.IsUndefined() || el.IsNull() {
		return nil, errors.New("surface: canvas element is missing")
	}
	ctx := el.Call("getContext", "2d")
	if ctx.IsUndefined() || ctx.IsNull() {
		return nil, ErrNoContext
	}
	return &Browser{
		el:  el,
		ctx: ctx,
		doc: js.Global().Get("document"),
	}, nil
}

// SetSize implements Canvas. Assigning width and height resets the
// context state, as the canvas does.
func (b *Browser) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	b.el.Set("width", width)
	b.el.Set("height", height)
	return nil
}

// Context2D implements Canvas.
func (b *Browser) Context2D() (Context2D, error) { return b, nil }

// Width implements Context2D.
func (b *Browser) Width() int { return b.el.Get("width").Int() }

// Height implements Context2D.
func (b *Browser) Height() int { return b.el.Get("height").Int() }

// SetFillStyle implements Context2D.
func (b *Browser) SetFillStyle(c color.Color) { b.ctx.Set("fillStyle", FormatColor(c)) }

// SetStrokeStyle implements Context2D.
func (b *Browser) SetStrokeStyle(c color.Color) { b.ctx.Set("strokeStyle", FormatColor(c)) }

// SetLineWidth implements Context2D.
func (b *Browser) SetLineWidth(w float64) { b.ctx.Set("lineWidth", w) }

// BeginPath implements Context2D.
func (b *Browser) BeginPath() { b.ctx.Call("beginPath") }

// MoveTo implements Context2D.
func (b *Browser) MoveTo(x, y float64) { b.ctx.Call("moveTo", x, y) }

// LineTo implements Context2D.
func (b *Browser) LineTo(x, y float64) { b.ctx.Call("lineTo", x, y) }

// Arc implements Context2D.
func (b *Browser) Arc(x, y, radius, startAngle, endAngle float64) {
	b.ctx.Call("arc", x, y, radius, startAngle, endAngle)
}

// QuadraticCurveTo implements Context2D.
func (b *Browser) QuadraticCurveTo(cx, cy, x, y float64) {
	b.ctx.Call("quadraticCurveTo", cx, cy, x, y)
}

// BezierCurveTo implements Context2D.
func (b *Browser) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	b.ctx.Call("bezierCurveTo", c1x, c1y, c2x, c2y, x, y)
}

// ClosePath implements Context2D.
func (b *Browser) ClosePath() { b.ctx.Call("closePath") }

// Fill implements Context2D.
func (b *Browser) Fill() error {
	b.ctx.Call("fill")
	return nil
}

// Stroke implements Context2D.
func (b *Browser) Stroke() error {
	b.ctx.Call("stroke")
	return nil
}

// FillRect implements Context2D.
func (b *Browser) FillRect(x, y, w, h float64) error {
	b.ctx.Call("fillRect", x, y, w, h)
	return nil
}

// DrawImage implements Context2D. The Go image is copied into an
// off-screen canvas which is then drawn with the matching drawImage form.
func (b *Browser) DrawImage(img image.Image, opts DrawImageOptions) error {
	src, err := opts.sourceRect(img)
	if err != nil {
		return err
	}
	off, err := b.offScreenCanvas(img)
	if err != nil {
		return err
	}

	switch {
	case opts.SrcRect != nil:
		dw, dh := opts.destSize(src)
		rel := src.Sub(img.Bounds().Min)
		b.ctx.Call("drawImage", off,
			rel.Min.X, rel.Min.Y, rel.Dx(), rel.Dy(),
			opts.X, opts.Y, dw, dh)
	case opts.DstWidth != 0 || opts.DstHeight != 0:
		dw, dh := opts.destSize(src)
		b.ctx.Call("drawImage", off, opts.X, opts.Y, dw, dh)
	default:
		b.ctx.Call("drawImage", off, opts.X, opts.Y)
	}
	return nil
}

// offScreenCanvas creates a canvas element holding a copy of img's pixels.
func (b *Browser) offScreenCanvas(img image.Image) (js.Value, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	canvas := b.doc.Call("createElement", "canvas")
	canvas.Set("width", w)
	canvas.Set("height", h)
	ctx := canvas.Call("getContext", "2d")
	if ctx.IsUndefined() || ctx.IsNull() {
		return js.Value{}, ErrNoContext
	}

	data := ctx.Call("createImageData", w, h)
	if n := js.CopyBytesToJS(data.Get("data"), nrgba.Pix); n != len(nrgba.Pix) {
		return js.Value{}, fmt.Errorf("surface: copied %d of %d pixel bytes", n, len(nrgba.Pix))
	}
	ctx.Call("putImageData", data, 0, 0)
	return canvas, nil
}

func init() {
	Register("browser", func(w, h int) (Canvas, error) {
		doc := js.Global().Get("document")
		el := doc.Call("createElement", "canvas")
		b, err := NewBrowser(el)
		if err != nil {
			return nil, err
		}
		if err := b.SetSize(w, h); err != nil {
			return nil, err
		}
		return b, nil
	})
}
