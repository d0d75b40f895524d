// Package clipper computes the intersection of a transformed quadrilateral
// with an axis-aligned clip box.
//
// Every renderer backend runs the same per-surface repaint step: project
// the surface's extent into output space, intersect it with the current
// damage or scissor rectangle, and rasterize the result as a triangle fan.
// This package owns that intersection. The output is a convex polygon of
// at most 8 vertices, or an empty result when the surface contributes no
// visible pixels — which callers must treat as a normal skip signal, not
// an error.
//
// Two paths exist:
//
//   - a per-axis clamp for quads whose edges are parallel to the clip box
//     (the common case, detected by the caller from the transform matrix)
//   - a Sutherland-Hodgman pipeline over the four clip edges for rotated
//     or sheared quads
//
// All coordinate comparisons go through an epsilon-tolerant difference so
// that rounding noise from transformed coordinates never produces
// degenerate zero-area triangles downstream.
//
// Clipping is a pure function of its inputs: no global state, no
// allocation. The caller supplies the destination vertex buffer, which
// must have room for at least 8 vertices.
package clipper

import "image"

// Vertex is a 2D point in a single caller-defined coordinate space.
// Vertices are value types, copied freely.
type Vertex struct {
	X, Y float32
}

// Box is an axis-aligned clip rectangle with X1 <= X2 and Y1 <= Y2.
// A degenerate (zero-area) box clips everything away.
type Box struct {
	X1, Y1, X2, Y2 float32
}

// BoxFromRect converts an integer damage rectangle to a clip box.
func BoxFromRect(r image.Rectangle) Box {
	return Box{
		X1: float32(r.Min.X),
		Y1: float32(r.Min.Y),
		X2: float32(r.Max.X),
		Y2: float32(r.Max.Y),
	}
}

// Quad is a 4-vertex polygon representing a surface's extent after
// projection into output space, plus the precomputed classification and
// bounding box the clip dispatch relies on.
type Quad struct {
	polygon     [4]Vertex
	bbox        Box
	axisAligned bool
}

// NewQuad builds a quad from four vertices in boundary order (either
// winding), so that vertices 0 and 2 are diagonally opposite. axisAligned
// must be true exactly when the quad's edges are parallel to the
// coordinate axes; callers derive it once from the transform matrix
// rather than re-deriving it from the vertices.
func NewQuad(polygon [4]Vertex, axisAligned bool) Quad {
	q := Quad{polygon: polygon, axisAligned: axisAligned}
	q.bbox = Box{X1: polygon[0].X, Y1: polygon[0].Y, X2: polygon[0].X, Y2: polygon[0].Y}
	for _, v := range polygon[1:] {
		if v.X < q.bbox.X1 {
			q.bbox.X1 = v.X
		}
		if v.X > q.bbox.X2 {
			q.bbox.X2 = v.X
		}
		if v.Y < q.bbox.Y1 {
			q.bbox.Y1 = v.Y
		}
		if v.Y > q.bbox.Y2 {
			q.bbox.Y2 = v.Y
		}
	}
	return q
}

// AxisAligned reports the classification the quad was built with.
func (q *Quad) AxisAligned() bool {
	return q.axisAligned
}

// BoundingBox returns the quad's precomputed bounding box.
func (q *Quad) BoundingBox() Box {
	return q.bbox
}

// minNormal is the smallest normalized positive float32 (C's FLT_MIN).
const minNormal = 1.1754943508222875e-38

const (
	// maxDiff is the absolute floor below which two coordinates are
	// always considered equal. Catches true near-zero noise.
	maxDiff = 4.0 * minNormal

	// maxRelDiff bounds the difference relative to the larger magnitude,
	// so the tolerance scales from sub-pixel coordinates up to
	// multi-thousand-pixel outputs.
	maxRelDiff = 4.0e-5
)

// floatDifference returns 0 if a and b are close enough to be considered
// equal, otherwise a - b. Every coordinate comparison in the clipper goes
// through this function: transformed coordinates accumulate rounding
// error, and treating two vertices that differ by 1e-7 as distinct would
// emit zero-area triangles into the fan.
func floatDifference(a, b float32) float32 {
	diff := a - b
	adiff := abs32(diff)
	if adiff <= maxDiff {
		return 0
	}
	absA := abs32(a)
	absB := abs32(b)
	absMax := absA
	if absB > absMax {
		absMax = absB
	}
	if adiff <= absMax*maxRelDiff {
		return 0
	}
	return diff
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// nearVertex reports whether two vertices coincide within tolerance.
func nearVertex(a, b Vertex) bool {
	return floatDifference(a.X, b.X) == 0 && floatDifference(a.Y, b.Y) == 0
}

// intersectX returns the intersection of segment p1-p2 with the vertical
// line x = x. A segment degenerate in x (both endpoints on the line
// within tolerance) is treated as coincident with it and yields the
// second endpoint, avoiding a near-zero division.
func intersectX(p1, p2 Vertex, x float32) Vertex {
	if floatDifference(p1.X, p2.X) == 0 {
		return Vertex{X: x, Y: p2.Y}
	}
	a := (x - p2.X) / (p1.X - p2.X)
	return Vertex{X: x, Y: p2.Y + (p1.Y-p2.Y)*a}
}

// intersectY is the horizontal-line counterpart of intersectX.
func intersectY(p1, p2 Vertex, y float32) Vertex {
	if floatDifference(p1.Y, p2.Y) == 0 {
		return Vertex{X: p2.X, Y: y}
	}
	a := (y - p2.Y) / (p1.Y - p2.Y)
	return Vertex{X: p2.X + (p1.X-p2.X)*a, Y: y}
}

// Each single-edge routine below walks the polygon's edges from the last
// vertex around to the last again, classifying each edge against one clip
// line:
//
//	in->in:   emit the current vertex
//	in->out:  emit the intersection only
//	out->in:  emit the intersection, then the current vertex
//	out->out: emit nothing
//
// The four routines are identical in structure and differ only in which
// coordinate and comparison direction they test.

func clipPolygonLeft(box Box, src, dst []Vertex) int {
	prev := src[len(src)-1]
	n := 0
	for _, v := range src {
		prevIn := floatDifference(prev.X, box.X1) >= 0
		curIn := floatDifference(v.X, box.X1) >= 0
		switch {
		case prevIn && curIn:
			dst[n] = v
			n++
		case prevIn && !curIn:
			dst[n] = intersectX(prev, v, box.X1)
			n++
		case !prevIn && curIn:
			dst[n] = intersectX(prev, v, box.X1)
			dst[n+1] = v
			n += 2
		}
		prev = v
	}
	return n
}

func clipPolygonRight(box Box, src, dst []Vertex) int {
	prev := src[len(src)-1]
	n := 0
	for _, v := range src {
		prevIn := floatDifference(prev.X, box.X2) <= 0
		curIn := floatDifference(v.X, box.X2) <= 0
		switch {
		case prevIn && curIn:
			dst[n] = v
			n++
		case prevIn && !curIn:
			dst[n] = intersectX(prev, v, box.X2)
			n++
		case !prevIn && curIn:
			dst[n] = intersectX(prev, v, box.X2)
			dst[n+1] = v
			n += 2
		}
		prev = v
	}
	return n
}

func clipPolygonTop(box Box, src, dst []Vertex) int {
	prev := src[len(src)-1]
	n := 0
	for _, v := range src {
		prevIn := floatDifference(prev.Y, box.Y1) >= 0
		curIn := floatDifference(v.Y, box.Y1) >= 0
		switch {
		case prevIn && curIn:
			dst[n] = v
			n++
		case prevIn && !curIn:
			dst[n] = intersectY(prev, v, box.Y1)
			n++
		case !prevIn && curIn:
			dst[n] = intersectY(prev, v, box.Y1)
			dst[n+1] = v
			n += 2
		}
		prev = v
	}
	return n
}

func clipPolygonBottom(box Box, src, dst []Vertex) int {
	prev := src[len(src)-1]
	n := 0
	for _, v := range src {
		prevIn := floatDifference(prev.Y, box.Y2) <= 0
		curIn := floatDifference(v.Y, box.Y2) <= 0
		switch {
		case prevIn && curIn:
			dst[n] = v
			n++
		case prevIn && !curIn:
			dst[n] = intersectY(prev, v, box.Y2)
			n++
		case !prevIn && curIn:
			dst[n] = intersectY(prev, v, box.Y2)
			dst[n+1] = v
			n += 2
		}
		prev = v
	}
	return n
}

// dedupVertices copies src to dst, dropping every vertex that coincides
// (within tolerance) with the previously emitted one, and a final vertex
// that coincides with the first. Sutherland-Hodgman can emit the same
// geometric point twice at a clip-box corner; undeduplicated duplicates
// become zero-length triangles in the fan.
func dedupVertices(src, dst []Vertex) int {
	n := 0
	for _, v := range src {
		if n > 0 && nearVertex(dst[n-1], v) {
			continue
		}
		dst[n] = v
		n++
	}
	if n > 1 && nearVertex(dst[0], dst[n-1]) {
		n--
	}
	return n
}

// clipTransformed clips a convex polygon against all four edges of box,
// left, right, top then bottom, each stage consuming the previous stage's
// whole output, and deduplicates the result into dst. A convex polygon
// gains at most one vertex per stage, so the scratch buffers cover any
// input up to 8 vertices.
func clipTransformed(box Box, polygon, dst []Vertex) int {
	var a, b [12]Vertex
	if len(polygon) == 0 {
		return 0
	}
	n := clipPolygonLeft(box, polygon, a[:])
	if n == 0 {
		return 0
	}
	n = clipPolygonRight(box, a[:n], b[:])
	if n == 0 {
		return 0
	}
	n = clipPolygonTop(box, b[:n], a[:])
	if n == 0 {
		return 0
	}
	n = clipPolygonBottom(box, a[:n], b[:])
	return dedupVertices(b[:n], dst)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clip intersects the quad with box and writes the resulting convex
// polygon to dst, returning the vertex count. dst must have room for at
// least 8 vertices. A count of 0 means the quad contributes no visible
// area; counts of 1 and 2 are never returned.
//
// Axis-aligned quads take a per-axis clamp: rectangle intersected with
// rectangle is a rectangle or nothing, so no polygon walking is needed.
// Other quads go through a bounding-box reject and then the
// Sutherland-Hodgman pipeline.
func (q *Quad) Clip(box Box, dst []Vertex) int {
	if q.axisAligned {
		for i, v := range q.polygon {
			dst[i] = Vertex{
				X: clampf(v.X, box.X1, box.X2),
				Y: clampf(v.Y, box.Y1, box.Y2),
			}
		}
		// Vertices 0 and 2 are opposite corners; equal coordinates on
		// either axis mean the intersection has no area.
		if floatDifference(dst[0].X, dst[2].X) == 0 ||
			floatDifference(dst[0].Y, dst[2].Y) == 0 {
			return 0
		}
		return 4
	}

	if q.bbox.X1 >= box.X2 || q.bbox.X2 <= box.X1 ||
		q.bbox.Y1 >= box.Y2 || q.bbox.Y2 <= box.Y1 {
		return 0
	}

	n := clipTransformed(box, q.polygon[:], dst)
	if n < 3 {
		return 0
	}
	return n
}

// ClipRect is Clip against an integer damage rectangle.
func (q *Quad) ClipRect(r image.Rectangle, dst []Vertex) int {
	return q.Clip(BoxFromRect(r), dst)
}
