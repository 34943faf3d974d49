// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"math"

	"github.com/gogpu/ggshapes"
	"github.com/gogpu/ggshapes/shape"
)

var scenePalette = []string{
	"tomato", "gold", "seagreen", "steelblue", "orchid",
	"#ff8c00", "#20b2aa", "rgba(30, 144, 255, 0.6)",
}

// RandomScene returns n primitives with random kinds, positions, sizes and
// colours inside a width x height viewport.
func RandomScene(r *ggshapes.Rand, width, height, n int) []shape.Drawer {
	w, h := float64(width), float64(height)
	short := math.Min(w, h)

	x := func() float64 { return float64(r.Int(w)) }
	y := func() float64 { return float64(r.Int(h)) }
	size := func() float64 { return float64(1 + r.Int(short/4)) }
	col := func() string { return scenePalette[r.Int(float64(len(scenePalette)))] }
	lw := func() float64 { return float64(1 + r.Int(6)) }

	ds := make([]shape.Drawer, 0, n)
	for range n {
		var d shape.Drawer
		switch r.Int(7) {
		case 0:
			d = shape.Rect{X: x(), Y: y(), Width: size(), Height: size(), Color: col()}
		case 1:
			d = shape.Line{X1: x(), Y1: y(), X2: x(), Y2: y(), Color: col(), Width: lw()}
		case 2:
			pts := make([]float64, 0, 10)
			for range 3 + r.Int(3) {
				pts = append(pts, x(), y())
			}
			d = shape.Polygon{Points: pts, Color: col()}
		case 3:
			d = shape.Circle{X: x(), Y: y(), Radius: size(), Color: col()}
		case 4:
			start := float64(r.Int(360)) * math.Pi / 180
			d = shape.Fan{
				X: x(), Y: y(), Radius: size(),
				StartRadian: start,
				EndRadian:   start + float64(30+r.Int(240))*math.Pi/180,
				Color:       col(),
			}
		case 5:
			d = shape.QuadraticCurve{
				X1: x(), Y1: y(), X2: x(), Y2: y(),
				CX: x(), CY: y(),
				Color: col(), Width: lw(),
			}
		default:
			d = shape.CubicCurve{
				X1: x(), Y1: y(), X2: x(), Y2: y(),
				CX1: x(), CY1: y(), CX2: x(), CY2: y(),
				Color: col(), Width: lw(),
			}
		}
		ds = append(ds, d)
	}
	return ds
}
