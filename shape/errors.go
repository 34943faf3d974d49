// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shape

import "errors"

var (
	// ErrTooFewPoints is returned for polygons with fewer than three
	// vertices.
	ErrTooFewPoints = errors.New("shape: polygon needs at least 3 points")

	// ErrOddCoordinates is returned when a flat vertex list has an odd
	// number of values.
	ErrOddCoordinates = errors.New("shape: polygon coordinates must come in x,y pairs")

	// ErrInvalidNumber is returned when a coordinate or size is NaN or
	// infinite.
	ErrInvalidNumber = errors.New("shape: coordinate is not a finite number")

	// ErrNegativeRadius is returned for circles and fans with radius < 0.
	ErrNegativeRadius = errors.New("shape: negative radius")

	// ErrNegativeWidth is returned for strokes with a line width < 0.
	ErrNegativeWidth = errors.New("shape: negative line width")

	// ErrInvalidColor is returned when a colour string cannot be parsed.
	ErrInvalidColor = errors.New("shape: invalid color")

	// ErrInvalidFraming is returned when an image framing is empty or
	// crops outside the image.
	ErrInvalidFraming = errors.New("shape: invalid image framing")

	// ErrNilImage is returned when DrawImage is given no image.
	ErrNilImage = errors.New("shape: nil image")
)
