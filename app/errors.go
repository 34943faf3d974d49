// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import "errors"

var (
	// ErrCanvasNotFound is returned when the platform has no canvas with
	// the configured identifier.
	ErrCanvasNotFound = errors.New("app: canvas not found")

	// ErrInvalidViewport is returned when the viewport has a non-positive
	// dimension.
	ErrInvalidViewport = errors.New("app: invalid viewport")

	// ErrNoImage is returned when no image path is configured.
	ErrNoImage = errors.New("app: no image configured")

	// ErrConfigFormat is returned for config files that are neither TOML
	// nor YAML.
	ErrConfigFormat = errors.New("app: unsupported config format")
)
