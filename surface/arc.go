// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"math"

	"github.com/gogpu/gg"
)

const twoPi = 2 * math.Pi

// cubic is one cubic Bézier segment; the start point is implied by the
// previous segment.
type cubic struct {
	C1, C2, P gg.Point
}

// arcSweep returns the clockwise sweep from start to end as the canvas
// computes it: a difference of 2π or more draws the full circle, anything
// else is reduced into [0, 2π).
func arcSweep(start, end float64) float64 {
	sweep := end - start
	if sweep >= twoPi {
		return twoPi
	}
	if sweep < 0 {
		sweep = math.Mod(sweep, twoPi)
		if sweep < 0 {
			sweep += twoPi
		}
	}
	return sweep
}

// arcCubics approximates a circular arc with cubic Béziers of at most 90°
// each. It returns the arc start point and the segments that follow it.
func arcCubics(cx, cy, r, start, sweep float64) (gg.Point, []cubic) {
	first := gg.Pt(cx+r*math.Cos(start), cy+r*math.Sin(start))
	if sweep <= 0 || r == 0 {
		return first, nil
	}

	n := int(math.Ceil(sweep / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	segs := make([]cubic, 0, n)
	for i := 0; i < n; i++ {
		a1 := start + float64(i)*step
		a2 := a1 + step
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		cos2, sin2 := math.Cos(a2), math.Sin(a2)

		segs = append(segs, cubic{
			C1: gg.Pt(cx+r*(cos1-k*sin1), cy+r*(sin1+k*cos1)),
			C2: gg.Pt(cx+r*(cos2+k*sin2), cy+r*(sin2-k*cos2)),
			P:  gg.Pt(cx+r*cos2, cy+r*sin2),
		})
	}
	return first, segs
}
