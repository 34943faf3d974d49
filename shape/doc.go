// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shape draws simple geometric primitives onto a surface.Context2D.
//
// A [Session] owns a context together with the style state that would
// otherwise live implicitly inside it: the fill colour, the stroke colour
// and the line width. Each primitive optionally overrides a style, builds a
// path and fills or strokes it:
//
//	sess := shape.NewSession(ctx)
//	sess.Rect(shape.Rect{X: 10, Y: 10, Width: 80, Height: 40, Color: "tomato"})
//	sess.Circle(shape.Circle{X: 200, Y: 100, Radius: 30}) // still tomato
//	sess.Line(shape.Line{X1: 0, Y1: 0, X2: 300, Y2: 200, Color: "#333", Width: 2})
//
// A colour given to a primitive becomes the session's current style and
// stays in effect for later primitives that leave Color empty, so call
// order matters.
//
// # Validation
//
// Invalid parameters never produce partial drawing. In [Strict] mode (the
// default) they are reported as errors wrapping the package's sentinel
// errors. [Lenient] mode reproduces the historical behaviour for malformed
// polygons: the call is silently ignored and returns nil.
package shape
