// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package imageload fetches and decodes images asynchronously.
//
// [Loader.Load] starts the work on its own goroutine and returns a [Task]
// straight away; the task completes exactly once with either an [Image] or
// an error. [Loader.LoadFunc] is the callback form of the same operation.
//
//	l := imageload.New(imageload.WithTimeout(10 * time.Second))
//	task := l.Load(ctx, "images/lotus.jpeg")
//	img, err := task.Wait(ctx)
//
// Paths starting with http:// or https:// are fetched with the loader's
// HTTP client; anything else is read from the local filesystem or from the
// fs.FS given with [WithFS].
//
// Content is sniffed before decoding, so a file that is not an image fails
// with [ErrNotImage] rather than a decoder error. PNG, JPEG, GIF, BMP, TIFF
// and WebP are decoded; JPEG EXIF orientation is applied by default.
//
// Concurrent loads are independent and complete in whatever order their
// I/O finishes.
package imageload
