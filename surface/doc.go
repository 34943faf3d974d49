// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the drawing targets the shape primitives render to.
//
// The central abstraction is [Context2D], a small subset of the HTML canvas
// 2D rendering context: style setters, path construction (moveTo, lineTo,
// arc, quadratic and cubic curves), fill/stroke and image drawing. A
// [Canvas] is the element that owns a context and can be sized.
//
// # Backends
//
//   - [Raster]: software rendering into an RGBA image using gogpu/gg
//   - [Recorder]: captures typed [Command] values for inspection and replay
//   - Browser: forwards to a CanvasRenderingContext2D via syscall/js
//     (js/wasm builds only)
//
// Backends register themselves in a [Registry] by name, so headless
// programs can pick one from a flag:
//
//	c, err := surface.New("raster", 800, 600)
//	if err != nil {
//	    return err
//	}
//	ctx, _ := c.Context2D()
//	ctx.SetFillStyle(color.Black)
//	ctx.FillRect(10, 10, 100, 50)
//
// # State
//
// Like the canvas it mirrors, a Context2D carries mutable state: fill
// colour, stroke colour, line width and the current path. Fill and Stroke
// do not clear the path; only BeginPath does. Sizing a canvas resets that
// state to the defaults (black fill and stroke, line width 1, empty path).
//
// Contexts are NOT safe for concurrent use.
package surface
