// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
)

// CommandType identifies a recorded Context2D operation.
type CommandType uint8

const (
	// Style commands
	CmdSetFillStyle CommandType = iota
	CmdSetStrokeStyle
	CmdSetLineWidth

	// Path commands
	CmdBeginPath
	CmdMoveTo
	CmdLineTo
	CmdArc
	CmdQuadraticCurveTo
	CmdBezierCurveTo
	CmdClosePath

	// Drawing commands
	CmdFill
	CmdStroke
	CmdFillRect
	CmdDrawImage

	// Canvas commands
	CmdSetSize
)

// commandTypeNames are the canvas method names of each command.
var commandTypeNames = [...]string{
	CmdSetFillStyle:     "fillStyle",
	CmdSetStrokeStyle:   "strokeStyle",
	CmdSetLineWidth:     "lineWidth",
	CmdBeginPath:        "beginPath",
	CmdMoveTo:           "moveTo",
	CmdLineTo:           "lineTo",
	CmdArc:              "arc",
	CmdQuadraticCurveTo: "quadraticCurveTo",
	CmdBezierCurveTo:    "bezierCurveTo",
	CmdClosePath:        "closePath",
	CmdFill:             "fill",
	CmdStroke:           "stroke",
	CmdFillRect:         "fillRect",
	CmdDrawImage:        "drawImage",
	CmdSetSize:          "setSize",
}

// String returns the canvas method name of the command type.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded operation.
//
// Args holds the numeric operands in canvas argument order. For
// CmdDrawImage that is (dx, dy), (dx, dy, dw, dh) or
// (sx, sy, sw, sh, dx, dy, dw, dh) depending on the options used, matching
// the three drawImage overloads.
type Command struct {
	Type  CommandType
	Args  []float64
	Color color.Color // CmdSetFillStyle, CmdSetStrokeStyle
	Image image.Image // CmdDrawImage
}

// String renders the command as a canvas call, e.g. "arc(10, 10, 5, 0, 6.283185)".
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Type.String())
	switch c.Type {
	case CmdSetFillStyle, CmdSetStrokeStyle:
		b.WriteString(" = ")
		b.WriteString(FormatColor(c.Color))
		return b.String()
	case CmdSetLineWidth:
		b.WriteString(" = ")
		b.WriteString(formatFloat(c.Args[0]))
		return b.String()
	}

	b.WriteByte('(')
	if c.Type == CmdDrawImage {
		b.WriteString("image")
		if len(c.Args) > 0 {
			b.WriteString(", ")
		}
	}
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatFloat(a))
	}
	b.WriteByte(')')
	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Recorder is a Canvas and Context2D that records every operation instead
// of drawing. It tracks the same state a real context would (styles, line
// width, size), so callers can assert on both the operation sequence and
// the resulting state.
type Recorder struct {
	width, height int

	fill      color.Color
	stroke    color.Color
	lineWidth float64

	commands []Command
}

var (
	_ Canvas    = (*Recorder)(nil)
	_ Context2D = (*Recorder)(nil)
)

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	r := &Recorder{width: width, height: height}
	r.resetState()
	return r
}

func (r *Recorder) resetState() {
	r.fill = DefaultFillStyle
	r.stroke = DefaultStrokeStyle
	r.lineWidth = DefaultLineWidth
}

func (r *Recorder) record(t CommandType, args ...float64) {
	r.commands = append(r.commands, Command{Type: t, Args: args})
}

// SetSize implements Canvas.
func (r *Recorder) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	r.width, r.height = width, height
	r.resetState()
	r.record(CmdSetSize, float64(width), float64(height))
	return nil
}

// Context2D implements Canvas.
func (r *Recorder) Context2D() (Context2D, error) { return r, nil }

// Width implements Context2D.
func (r *Recorder) Width() int { return r.width }

// Height implements Context2D.
func (r *Recorder) Height() int { return r.height }

// SetFillStyle implements Context2D.
func (r *Recorder) SetFillStyle(c color.Color) {
	r.fill = c
	r.commands = append(r.commands, Command{Type: CmdSetFillStyle, Color: c})
}

// SetStrokeStyle implements Context2D.
func (r *Recorder) SetStrokeStyle(c color.Color) {
	r.stroke = c
	r.commands = append(r.commands, Command{Type: CmdSetStrokeStyle, Color: c})
}

// SetLineWidth implements Context2D.
func (r *Recorder) SetLineWidth(w float64) {
	r.lineWidth = w
	r.record(CmdSetLineWidth, w)
}

// FillStyle returns the current fill colour.
func (r *Recorder) FillStyle() color.Color { return r.fill }

// StrokeStyle returns the current stroke colour.
func (r *Recorder) StrokeStyle() color.Color { return r.stroke }

// LineWidth returns the current line width.
func (r *Recorder) LineWidth() float64 { return r.lineWidth }

// BeginPath implements Context2D.
func (r *Recorder) BeginPath() { r.record(CmdBeginPath) }

// MoveTo implements Context2D.
func (r *Recorder) MoveTo(x, y float64) { r.record(CmdMoveTo, x, y) }

// LineTo implements Context2D.
func (r *Recorder) LineTo(x, y float64) { r.record(CmdLineTo, x, y) }

// Arc implements Context2D.
func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.record(CmdArc, x, y, radius, startAngle, endAngle)
}

// QuadraticCurveTo implements Context2D.
func (r *Recorder) QuadraticCurveTo(cx, cy, x, y float64) {
	r.record(CmdQuadraticCurveTo, cx, cy, x, y)
}

// BezierCurveTo implements Context2D.
func (r *Recorder) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.record(CmdBezierCurveTo, c1x, c1y, c2x, c2y, x, y)
}

// ClosePath implements Context2D.
func (r *Recorder) ClosePath() { r.record(CmdClosePath) }

// Fill implements Context2D.
func (r *Recorder) Fill() error {
	r.record(CmdFill)
	return nil
}

// Stroke implements Context2D.
func (r *Recorder) Stroke() error {
	r.record(CmdStroke)
	return nil
}

// FillRect implements Context2D.
func (r *Recorder) FillRect(x, y, w, h float64) error {
	r.record(CmdFillRect, x, y, w, h)
	return nil
}

// DrawImage implements Context2D.
func (r *Recorder) DrawImage(img image.Image, opts DrawImageOptions) error {
	src, err := opts.sourceRect(img)
	if err != nil {
		return err
	}

	var args []float64
	switch {
	case opts.SrcRect != nil:
		dw, dh := opts.destSize(src)
		rel := src.Sub(img.Bounds().Min)
		args = []float64{
			float64(rel.Min.X), float64(rel.Min.Y), float64(rel.Dx()), float64(rel.Dy()),
			opts.X, opts.Y, dw, dh,
		}
	case opts.DstWidth != 0 || opts.DstHeight != 0:
		dw, dh := opts.destSize(src)
		args = []float64{opts.X, opts.Y, dw, dh}
	default:
		args = []float64{opts.X, opts.Y}
	}
	r.commands = append(r.commands, Command{Type: CmdDrawImage, Args: args, Image: img})
	return nil
}

// Commands returns a copy of the recorded commands in order.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Filter returns the recorded commands whose type is one of types.
func (r *Recorder) Filter(types ...CommandType) []Command {
	var out []Command
	for _, c := range r.commands {
		for _, t := range types {
			if c.Type == t {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Reset discards the recorded commands. Context state is kept.
func (r *Recorder) Reset() { r.commands = r.commands[:0] }

// Playback replays the recorded commands onto ctx in order. It stops at
// the first error.
func (r *Recorder) Playback(ctx Context2D) error {
	for i, c := range r.commands {
		if err := apply(ctx, c); err != nil {
			return fmt.Errorf("surface: playback command %d (%s): %w", i, c.Type, err)
		}
	}
	return nil
}

// apply issues a single command on ctx.
func apply(ctx Context2D, c Command) error {
	a := c.Args
	switch c.Type {
	case CmdSetFillStyle:
		ctx.SetFillStyle(c.Color)
	case CmdSetStrokeStyle:
		ctx.SetStrokeStyle(c.Color)
	case CmdSetLineWidth:
		ctx.SetLineWidth(a[0])
	case CmdBeginPath:
		ctx.BeginPath()
	case CmdMoveTo:
		ctx.MoveTo(a[0], a[1])
	case CmdLineTo:
		ctx.LineTo(a[0], a[1])
	case CmdArc:
		ctx.Arc(a[0], a[1], a[2], a[3], a[4])
	case CmdQuadraticCurveTo:
		ctx.QuadraticCurveTo(a[0], a[1], a[2], a[3])
	case CmdBezierCurveTo:
		ctx.BezierCurveTo(a[0], a[1], a[2], a[3], a[4], a[5])
	case CmdClosePath:
		ctx.ClosePath()
	case CmdFill:
		return ctx.Fill()
	case CmdStroke:
		return ctx.Stroke()
	case CmdFillRect:
		return ctx.FillRect(a[0], a[1], a[2], a[3])
	case CmdDrawImage:
		return ctx.DrawImage(c.Image, imageOptions(a))
	case CmdSetSize:
		// Sizing belongs to the canvas, not the context; the target is
		// already sized by its owner.
	default:
		return fmt.Errorf("unknown command type %d", c.Type)
	}
	return nil
}

// imageOptions converts drawImage arguments back into DrawImageOptions.
func imageOptions(a []float64) DrawImageOptions {
	switch len(a) {
	case 8:
		src := image.Rect(int(a[0]), int(a[1]), int(a[0]+a[2]), int(a[1]+a[3]))
		return DrawImageOptions{X: a[4], Y: a[5], DstWidth: a[6], DstHeight: a[7], SrcRect: &src}
	case 4:
		return DrawImageOptions{X: a[0], Y: a[1], DstWidth: a[2], DstHeight: a[3]}
	default:
		return DrawImageOptions{X: a[0], Y: a[1]}
	}
}
