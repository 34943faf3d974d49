// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"image"

	"github.com/gogpu/ggshapes/shape"
)

// DefaultFramings are the three placements Render uses by default: the
// full image at its natural size, the full image scaled into 200x200, and
// a 96x96 crop scaled into 50x50.
func DefaultFramings() []shape.Framing {
	return []shape.Framing{
		shape.At(100, 100),
		shape.Scaled(300, 100, 200, 200),
		shape.Cropped(16, 16, 96, 96, 100, 300, 50, 50),
	}
}

// Render draws img once per framing, in order. It stops at the first
// failure.
func Render(sess *shape.Session, img image.Image, framings []shape.Framing) error {
	for i, f := range framings {
		if err := sess.DrawImage(img, f); err != nil {
			return fmt.Errorf("app: framing %d %s: %w", i, f, err)
		}
	}
	return nil
}
