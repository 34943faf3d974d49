// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"image"

	"github.com/gogpu/ggshapes/surface"
)

// Framing places an image, or a crop of it, on the surface.
type Framing struct {
	// X, Y is the destination top-left corner.
	X, Y float64

	// Width and Height scale the drawn region; zero keeps the natural
	// size of the image or crop.
	Width, Height float64

	// Crop selects a source region relative to the image origin. Nil
	// draws the whole image.
	Crop *image.Rectangle
}

// At frames the whole image at its natural size with its top-left corner
// at (x, y).
func At(x, y float64) Framing {
	return Framing{X: x, Y: y}
}

// Scaled frames the whole image scaled into the w×h box at (x, y).
func Scaled(x, y, w, h float64) Framing {
	return Framing{X: x, Y: y, Width: w, Height: h}
}

// Cropped frames the sw×sh region at (sx, sy) of the image, scaled into
// the dw×dh box at (dx, dy).
func Cropped(sx, sy, sw, sh int, dx, dy, dw, dh float64) Framing {
	crop := image.Rect(sx, sy, sx+sw, sy+sh)
	return Framing{X: dx, Y: dy, Width: dw, Height: dh, Crop: &crop}
}

// String renders the framing in drawImage argument order.
func (f Framing) String() string {
	switch {
	case f.Crop != nil:
		return fmt.Sprintf("crop %v -> (%g,%g %gx%g)", *f.Crop, f.X, f.Y, f.Width, f.Height)
	case f.Width != 0 || f.Height != 0:
		return fmt.Sprintf("(%g,%g %gx%g)", f.X, f.Y, f.Width, f.Height)
	default:
		return fmt.Sprintf("(%g,%g)", f.X, f.Y)
	}
}

// validate checks the framing against the image bounds.
func (f Framing) validate(img image.Image) error {
	if err := checkFinite(f.X, f.Y, f.Width, f.Height); err != nil {
		return err
	}
	if f.Width < 0 || f.Height < 0 {
		return fmt.Errorf("%w: negative size %gx%g", ErrInvalidFraming, f.Width, f.Height)
	}
	if f.Crop != nil {
		b := img.Bounds()
		crop := f.Crop.Add(b.Min)
		if crop.Empty() || !crop.In(b) {
			return fmt.Errorf("%w: crop %v outside image %v", ErrInvalidFraming, *f.Crop, b.Sub(b.Min))
		}
	}
	return nil
}

// DrawImage draws img with the given framing. Style state is untouched.
func (s *Session) DrawImage(img image.Image, f Framing) error {
	if img == nil {
		return ErrNilImage
	}
	if err := f.validate(img); err != nil {
		return fmt.Errorf("image: %w", err)
	}

	err := s.ctx.DrawImage(img, surface.DrawImageOptions{
		X:         f.X,
		Y:         f.Y,
		DstWidth:  f.Width,
		DstHeight: f.Height,
		SrcRect:   f.Crop,
	})
	if err != nil {
		return fmt.Errorf("shape: draw image: %w", err)
	}
	s.logger().Debug("shape: image", "framing", f.String())
	return nil
}
