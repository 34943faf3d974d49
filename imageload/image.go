// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageload

import (
	"fmt"
	"image"
)

// Image is a decoded image together with where it came from.
// It implements image.Image and can be drawn directly.
type Image struct {
	image.Image

	// Path is the path or URL the image was loaded from.
	Path string

	// Format is the sniffed file extension, e.g. "jpg" or "png".
	Format string
}

// Width returns the pixel width of the image.
func (i *Image) Width() int { return i.Bounds().Dx() }

// Height returns the pixel height of the image.
func (i *Image) Height() int { return i.Bounds().Dy() }

func (i *Image) String() string {
	return fmt.Sprintf("%s (%s %dx%d)", i.Path, i.Format, i.Width(), i.Height())
}
