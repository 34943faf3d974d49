// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shape

import "log/slog"

// Mode selects how a Session treats malformed input.
type Mode uint8

const (
	// Strict reports malformed input as an error.
	Strict Mode = iota

	// Lenient silently ignores malformed polygons, matching the HTML
	// canvas helpers' silent behaviour. Other invalid input is still
	// reported.
	Lenient
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	mode   Mode
	logger *slog.Logger
}

// WithMode sets the validation mode. The default is Strict.
func WithMode(m Mode) Option {
	return func(o *sessionOptions) {
		o.mode = m
	}
}

// WithLogger sets the logger used for per-primitive diagnostics. The
// default is ggshapes.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *sessionOptions) {
		o.logger = l
	}
}
