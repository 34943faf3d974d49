// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/gogpu/ggshapes"
	"github.com/gogpu/ggshapes/surface"
)

// Session draws primitives onto a context and owns its style state.
//
// The session is the single writer of the context's fill colour, stroke
// colour and line width; it mirrors them in its own fields so the current
// style can be queried without asking the context. A Session is not safe
// for concurrent use.
type Session struct {
	ctx surface.Context2D

	fill      color.Color
	stroke    color.Color
	lineWidth float64

	mode Mode
	log  *slog.Logger
}

// NewSession creates a session drawing onto ctx. The context is brought
// into the default style (black fill and stroke, line width 1) so the
// session and the context agree from the start.
func NewSession(ctx surface.Context2D, opts ...Option) *Session {
	var options sessionOptions
	for _, opt := range opts {
		opt(&options)
	}

	s := &Session{
		ctx:  ctx,
		mode: options.mode,
		log:  options.logger,
	}
	s.SetFillColor(surface.DefaultFillStyle)
	s.SetStrokeColor(surface.DefaultStrokeStyle)
	s.ctx.SetLineWidth(surface.DefaultLineWidth)
	s.lineWidth = surface.DefaultLineWidth
	return s
}

// logger returns the injected logger, falling back to the package-wide
// one so SetLogger takes effect on existing sessions.
func (s *Session) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return ggshapes.Logger()
}

// Context returns the context the session draws onto.
func (s *Session) Context() surface.Context2D { return s.ctx }

// Mode returns the validation mode.
func (s *Session) Mode() Mode { return s.mode }

// FillStyle returns the current fill colour.
func (s *Session) FillStyle() color.Color { return s.fill }

// StrokeStyle returns the current stroke colour.
func (s *Session) StrokeStyle() color.Color { return s.stroke }

// LineWidth returns the current line width.
func (s *Session) LineWidth() float64 { return s.lineWidth }

// SetFillStyle sets the fill colour from a CSS colour string.
func (s *Session) SetFillStyle(css string) error {
	c, err := parseColor(css)
	if err != nil {
		return err
	}
	s.SetFillColor(c)
	return nil
}

// SetStrokeStyle sets the stroke colour from a CSS colour string.
func (s *Session) SetStrokeStyle(css string) error {
	c, err := parseColor(css)
	if err != nil {
		return err
	}
	s.SetStrokeColor(c)
	return nil
}

// SetFillColor sets the fill colour.
func (s *Session) SetFillColor(c color.Color) {
	s.fill = c
	s.ctx.SetFillStyle(c)
}

// SetStrokeColor sets the stroke colour.
func (s *Session) SetStrokeColor(c color.Color) {
	s.stroke = c
	s.ctx.SetStrokeStyle(c)
}

// SetLineWidth sets the line width used by later strokes.
func (s *Session) SetLineWidth(w float64) error {
	if err := checkFinite(w); err != nil {
		return err
	}
	if w < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeWidth, w)
	}
	s.lineWidth = w
	s.ctx.SetLineWidth(w)
	return nil
}

// parseColor parses a CSS colour. The empty string yields a nil colour,
// meaning "keep the current style".
func parseColor(css string) (color.Color, error) {
	if css == "" {
		return nil, nil
	}
	c, err := surface.ParseColor(css)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	return c, nil
}

// strokeWidth applies the default width of 1 and rejects negative widths.
func strokeWidth(w float64) (float64, error) {
	if err := checkFinite(w); err != nil {
		return 0, err
	}
	if w < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegativeWidth, w)
	}
	if w == 0 {
		return 1, nil
	}
	return w, nil
}

func checkFinite(vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidNumber, v)
		}
	}
	return nil
}

// applyFill sets the fill colour if c is not nil.
func (s *Session) applyFill(c color.Color) {
	if c != nil {
		s.SetFillColor(c)
	}
}

// applyStroke sets the stroke colour if c is not nil and always sets the
// line width, as every stroked primitive does.
func (s *Session) applyStroke(c color.Color, width float64) {
	if c != nil {
		s.SetStrokeColor(c)
	}
	s.lineWidth = width
	s.ctx.SetLineWidth(width)
}
