// Package raster fills the convex polygons produced by the clipper as
// horizontal pixel spans, the CPU analog of rasterizing them as a
// triangle fan.
package raster

import (
	"math"

	"github.com/qnx/weston-sub002/clipper"
)

// SpanFunc receives one horizontal run of covered pixels per scanline:
// pixels [x0, x1) on row y.
type SpanFunc func(y, x0, x1 int)

// FillFan rasterizes a convex polygon with pixel-center sampling and no
// antialiasing. Polygons with fewer than 3 vertices cover no pixels.
//
// Convexity keeps each scanline to a single span, so the fill reduces to
// intersecting the polygon's edges with the scanline and taking the
// min/max crossing.
func FillFan(vertices []clipper.Vertex, span SpanFunc) {
	n := len(vertices)
	if n < 3 {
		return
	}

	minY := vertices[0].Y
	maxY := vertices[0].Y
	for _, v := range vertices[1:] {
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}

	y0 := int(math.Floor(float64(minY)))
	y1 := int(math.Ceil(float64(maxY)))

	for y := y0; y < y1; y++ {
		fy := float32(y) + 0.5
		if fy < minY || fy > maxY {
			continue
		}

		first := true
		var xMin, xMax float32
		for i := 0; i < n; i++ {
			a := vertices[i]
			b := vertices[(i+1)%n]
			// Half-open edge interval so a vertex shared by two edges
			// crosses the scanline exactly once.
			if (a.Y <= fy) == (b.Y <= fy) {
				continue
			}
			x := a.X + (b.X-a.X)*(fy-a.Y)/(b.Y-a.Y)
			if first {
				xMin, xMax = x, x
				first = false
			} else {
				if x < xMin {
					xMin = x
				}
				if x > xMax {
					xMax = x
				}
			}
		}
		if first {
			continue
		}

		// Cover the pixels whose centers fall inside [xMin, xMax).
		x0 := int(math.Ceil(float64(xMin) - 0.5))
		x1 := int(math.Ceil(float64(xMax) - 0.5))
		if x1 > x0 {
			span(y, x0, x1)
		}
	}
}
