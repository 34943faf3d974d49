// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"math"
)

// Drawer is implemented by every primitive's parameter type, so scenes can
// be held as a []Drawer and drawn in order.
type Drawer interface {
	Draw(s *Session) error
}

// Rect is an axis-aligned filled rectangle with its top-left corner at
// (X, Y).
type Rect struct {
	X, Y, Width, Height float64
	Color               string
}

// Line is a stroked segment from (X1, Y1) to (X2, Y2). Width 0 means 1.
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          string
	Width          float64
}

// Polygon is a filled closed path through Points, a flat list of x,y
// pairs in drawing order.
type Polygon struct {
	Points []float64
	Color  string
}

// Circle is a filled circle.
type Circle struct {
	X, Y, Radius float64
	Color        string
}

// Fan is a filled circular sector centred on (X, Y) between two angles
// given in radians, swept clockwise.
type Fan struct {
	X, Y, Radius           float64
	StartRadian, EndRadian float64
	Color                  string
}

// QuadraticCurve is a stroked quadratic Bézier from (X1, Y1) to (X2, Y2)
// with control point (CX, CY). Width 0 means 1.
type QuadraticCurve struct {
	X1, Y1, X2, Y2 float64
	CX, CY         float64
	Color          string
	Width          float64
}

// CubicCurve is a stroked cubic Bézier from (X1, Y1) to (X2, Y2) with
// control points (CX1, CY1) and (CX2, CY2). Width 0 means 1.
type CubicCurve struct {
	X1, Y1, X2, Y2     float64
	CX1, CY1, CX2, CY2 float64
	Color              string
	Width              float64
}

// Draw implements Drawer.
func (r Rect) Draw(s *Session) error { return s.Rect(r) }

// Draw implements Drawer.
func (l Line) Draw(s *Session) error { return s.Line(l) }

// Draw implements Drawer.
func (p Polygon) Draw(s *Session) error { return s.Polygon(p) }

// Draw implements Drawer.
func (c Circle) Draw(s *Session) error { return s.Circle(c) }

// Draw implements Drawer.
func (f Fan) Draw(s *Session) error { return s.Fan(f) }

// Draw implements Drawer.
func (q QuadraticCurve) Draw(s *Session) error { return s.QuadraticCurve(q) }

// Draw implements Drawer.
func (c CubicCurve) Draw(s *Session) error { return s.CubicCurve(c) }

// Rect fills a rectangle.
func (s *Session) Rect(r Rect) error {
	if err := checkFinite(r.X, r.Y, r.Width, r.Height); err != nil {
		return fmt.Errorf("rect: %w", err)
	}
	c, err := parseColor(r.Color)
	if err != nil {
		return fmt.Errorf("rect: %w", err)
	}

	s.applyFill(c)
	if err := s.ctx.FillRect(r.X, r.Y, r.Width, r.Height); err != nil {
		return fmt.Errorf("shape: fill rect: %w", err)
	}
	s.logger().Debug("shape: rect", "x", r.X, "y", r.Y, "w", r.Width, "h", r.Height)
	return nil
}

// Line strokes a straight segment.
func (s *Session) Line(l Line) error {
	if err := checkFinite(l.X1, l.Y1, l.X2, l.Y2); err != nil {
		return fmt.Errorf("line: %w", err)
	}
	width, err := strokeWidth(l.Width)
	if err != nil {
		return fmt.Errorf("line: %w", err)
	}
	c, err := parseColor(l.Color)
	if err != nil {
		return fmt.Errorf("line: %w", err)
	}

	s.applyStroke(c, width)
	s.ctx.BeginPath()
	s.ctx.MoveTo(l.X1, l.Y1)
	s.ctx.LineTo(l.X2, l.Y2)
	s.ctx.ClosePath()
	if err := s.ctx.Stroke(); err != nil {
		return fmt.Errorf("shape: stroke line: %w", err)
	}
	s.logger().Debug("shape: line", "from", [2]float64{l.X1, l.Y1}, "to", [2]float64{l.X2, l.Y2}, "width", width)
	return nil
}

// Polygon fills a closed polygon. Fewer than three vertices or an odd
// number of coordinates is an error in Strict mode. In Lenient mode fewer
// than three vertices is a silent no-op and a dangling coordinate is
// ignored.
func (s *Session) Polygon(p Polygon) error {
	pts := p.Points
	if len(pts)%2 != 0 {
		if s.mode == Strict {
			return fmt.Errorf("polygon: %w: got %d values", ErrOddCoordinates, len(pts))
		}
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 6 {
		if s.mode == Strict {
			return fmt.Errorf("polygon: %w: got %d", ErrTooFewPoints, len(pts)/2)
		}
		s.logger().Debug("shape: polygon ignored", "points", len(pts)/2)
		return nil
	}
	if err := checkFinite(pts...); err != nil {
		return fmt.Errorf("polygon: %w", err)
	}
	c, err := parseColor(p.Color)
	if err != nil {
		return fmt.Errorf("polygon: %w", err)
	}

	s.applyFill(c)
	s.ctx.BeginPath()
	s.ctx.MoveTo(pts[0], pts[1])
	for i := 2; i < len(pts); i += 2 {
		s.ctx.LineTo(pts[i], pts[i+1])
	}
	s.ctx.ClosePath()
	if err := s.ctx.Fill(); err != nil {
		return fmt.Errorf("shape: fill polygon: %w", err)
	}
	s.logger().Debug("shape: polygon", "points", len(pts)/2)
	return nil
}

// Circle fills a full circle.
func (s *Session) Circle(c Circle) error {
	if err := checkFinite(c.X, c.Y, c.Radius); err != nil {
		return fmt.Errorf("circle: %w", err)
	}
	if c.Radius < 0 {
		return fmt.Errorf("circle: %w: %v", ErrNegativeRadius, c.Radius)
	}
	col, err := parseColor(c.Color)
	if err != nil {
		return fmt.Errorf("circle: %w", err)
	}

	s.applyFill(col)
	s.ctx.BeginPath()
	s.ctx.Arc(c.X, c.Y, c.Radius, 0, 2*math.Pi)
	s.ctx.ClosePath()
	if err := s.ctx.Fill(); err != nil {
		return fmt.Errorf("shape: fill circle: %w", err)
	}
	s.logger().Debug("shape: circle", "x", c.X, "y", c.Y, "r", c.Radius)
	return nil
}

// Fan fills a circular sector: the path runs from the centre along the arc
// and back to the centre.
func (s *Session) Fan(f Fan) error {
	if err := checkFinite(f.X, f.Y, f.Radius, f.StartRadian, f.EndRadian); err != nil {
		return fmt.Errorf("fan: %w", err)
	}
	if f.Radius < 0 {
		return fmt.Errorf("fan: %w: %v", ErrNegativeRadius, f.Radius)
	}
	c, err := parseColor(f.Color)
	if err != nil {
		return fmt.Errorf("fan: %w", err)
	}

	s.applyFill(c)
	s.ctx.BeginPath()
	s.ctx.MoveTo(f.X, f.Y)
	s.ctx.Arc(f.X, f.Y, f.Radius, f.StartRadian, f.EndRadian)
	s.ctx.ClosePath()
	if err := s.ctx.Fill(); err != nil {
		return fmt.Errorf("shape: fill fan: %w", err)
	}
	s.logger().Debug("shape: fan", "x", f.X, "y", f.Y, "r", f.Radius, "start", f.StartRadian, "end", f.EndRadian)
	return nil
}

// QuadraticCurve strokes a quadratic Bézier curve.
func (s *Session) QuadraticCurve(q QuadraticCurve) error {
	if err := checkFinite(q.X1, q.Y1, q.X2, q.Y2, q.CX, q.CY); err != nil {
		return fmt.Errorf("quadratic curve: %w", err)
	}
	width, err := strokeWidth(q.Width)
	if err != nil {
		return fmt.Errorf("quadratic curve: %w", err)
	}
	c, err := parseColor(q.Color)
	if err != nil {
		return fmt.Errorf("quadratic curve: %w", err)
	}

	s.applyStroke(c, width)
	s.ctx.BeginPath()
	s.ctx.MoveTo(q.X1, q.Y1)
	s.ctx.QuadraticCurveTo(q.CX, q.CY, q.X2, q.Y2)
	s.ctx.ClosePath()
	if err := s.ctx.Stroke(); err != nil {
		return fmt.Errorf("shape: stroke quadratic curve: %w", err)
	}
	s.logger().Debug("shape: quadratic curve", "width", width)
	return nil
}

// CubicCurve strokes a cubic Bézier curve.
func (s *Session) CubicCurve(cc CubicCurve) error {
	if err := checkFinite(cc.X1, cc.Y1, cc.X2, cc.Y2, cc.CX1, cc.CY1, cc.CX2, cc.CY2); err != nil {
		return fmt.Errorf("cubic curve: %w", err)
	}
	width, err := strokeWidth(cc.Width)
	if err != nil {
		return fmt.Errorf("cubic curve: %w", err)
	}
	c, err := parseColor(cc.Color)
	if err != nil {
		return fmt.Errorf("cubic curve: %w", err)
	}

	s.applyStroke(c, width)
	s.ctx.BeginPath()
	s.ctx.MoveTo(cc.X1, cc.Y1)
	s.ctx.BezierCurveTo(cc.CX1, cc.CY1, cc.CX2, cc.CY2, cc.X2, cc.Y2)
	s.ctx.ClosePath()
	if err := s.ctx.Stroke(); err != nil {
		return fmt.Errorf("shape: stroke cubic curve: %w", err)
	}
	s.logger().Debug("shape: cubic curve", "width", width)
	return nil
}

// DrawAll draws each primitive in order and stops at the first error.
func (s *Session) DrawAll(ds ...Drawer) error {
	for i, d := range ds {
		if err := d.Draw(s); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}
