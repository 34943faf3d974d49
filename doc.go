// Package ggshapes draws a small set of 2D shapes and a loaded image onto
// a canvas.
//
// # Overview
//
// ggshapes is organised leaf first:
//
//   - [github.com/gogpu/ggshapes/surface]: the canvas-style Context2D, with
//     a gg raster backend, a command recorder and a js/wasm browser backend
//   - [github.com/gogpu/ggshapes/shape]: rectangles, lines, polygons,
//     circles, fans, quadratic and cubic curves, and framed images
//   - [github.com/gogpu/ggshapes/imageload]: asynchronous image loading
//   - [github.com/gogpu/ggshapes/app]: the one-shot render pass
//
// This package holds what they share: the logger and the random integer
// helpers used for generated scenes.
//
// # Quick Start
//
//	r := surface.NewRaster(400, 300)
//	defer r.Close()
//
//	s := shape.NewSession(r)
//	_ = s.Circle(shape.Circle{X: 200, Y: 150, Radius: 80, Color: "tomato"})
//	_ = s.Line(shape.Line{X1: 20, Y1: 20, X2: 380, Y2: 280, Color: "#333", Width: 3})
//	_ = r.SavePNG("shapes.png")
//
// # Logging
//
// Nothing is logged by default. See [SetLogger].
package ggshapes

// Version is the module version.
const Version = "0.1.0"
