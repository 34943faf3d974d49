// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageload

import "errors"

var (
	// ErrNotFound is returned when the file does not exist or the server
	// answers 404.
	ErrNotFound = errors.New("imageload: not found")

	// ErrNotImage is returned when the content is not a recognised image
	// type.
	ErrNotImage = errors.New("imageload: content is not an image")

	// ErrDecode is returned when the content looks like an image but
	// cannot be decoded.
	ErrDecode = errors.New("imageload: decode failed")

	// ErrHTTPStatus is returned for non-2xx responses other than 404.
	ErrHTTPStatus = errors.New("imageload: unexpected HTTP status")

	// ErrTooLarge is returned when the content exceeds the loader's size
	// limit.
	ErrTooLarge = errors.New("imageload: content too large")
)
