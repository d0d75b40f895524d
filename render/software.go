// Copyright 2026 The qnx Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"math"

	compositor "github.com/qnx/weston-sub002"
	"github.com/qnx/weston-sub002/clipper"
	"github.com/qnx/weston-sub002/internal/raster"
)

// Common errors returned by renderers.
var (
	// ErrNilTarget is returned when a nil render target is passed.
	ErrNilTarget = errors.New("render: nil target")

	// ErrNoCPUAccess is returned when a target has no pixel access.
	ErrNoCPUAccess = errors.New("render: target does not support CPU rendering")

	// ErrOutputTransform is returned for output transforms the damage
	// projection cannot handle.
	ErrOutputTransform = errors.New("render: non-axis-aligned output transform")
)

// SoftwareRenderer is a CPU-based renderer compositing views directly
// into pixel-backed targets.
//
// Per view and damage rectangle it clips the view's transformed extent
// with the clipper package and fills the resulting polygon as spans,
// sampling surface content through the inverse transform. This is the
// slowest but most portable backend and the reference for the GPU path.
type SoftwareRenderer struct {
	// verts receives clip results; 8 is the maximum the clipper emits.
	verts [8]clipper.Vertex

	// spanBuf is reused for span colors, growing to the widest span seen.
	spanBuf []compositor.RGBA
}

// NewSoftwareRenderer creates a new CPU-based software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// RepaintOutput draws the output's views into the target, restricted to
// the damage region.
//
// Returns ErrNoCPUAccess for GPU-only targets and ErrOutputTransform for
// outputs with rotated or sheared transforms: damage rectangles are
// projected to device space with rectToQuad, which only supports
// axis-aligned output transforms.
func (r *SoftwareRenderer) RepaintOutput(target RenderTarget, output *Output) error {
	if target == nil {
		return ErrNilTarget
	}
	pixels := target.Pixels()
	if pixels == nil {
		return ErrNoCPUAccess
	}
	if output == nil || output.Damage.Empty() {
		return nil
	}
	if !output.Transform.AxisAligned() {
		return ErrOutputTransform
	}

	stride := target.Stride()
	bounds := image.Rect(0, 0, target.Width(), target.Height())

	for _, rect := range output.Damage.Rects() {
		quad := rectToQuad(output.Transform, rect)
		deviceRect := boxRect(quad.BoundingBox()).Intersect(bounds)
		if deviceRect.Empty() {
			continue
		}
		for _, view := range output.Views {
			r.drawView(pixels, stride, output, view, deviceRect)
		}
	}

	return nil
}

// Flush ensures all rendering is complete.
// For the software renderer, this is a no-op as operations are synchronous.
func (r *SoftwareRenderer) Flush() error {
	return nil
}

// Capabilities returns the renderer's capabilities.
func (r *SoftwareRenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                false,
		SupportsTextureViews: false,
		MaxTextureSize:       0, // No limit
	}
}

// drawView composites one view into the damage rectangle.
func (r *SoftwareRenderer) drawView(pixels []byte, stride int, output *Output, view *View, damage image.Rectangle) {
	transform := output.Transform.Multiply(view.Transform)
	quad := viewQuad(view.Surface, transform)

	n := quad.ClipRect(damage, r.verts[:])
	if n < 3 {
		// No visible area in this damage rectangle; normal skip, not an
		// error.
		return
	}

	painter := view.Surface.painter(transform.Invert())
	raster.FillFan(r.verts[:n], func(y, x0, x1 int) {
		// The clipper's relative epsilon admits vertices slightly past the
		// box at large coordinates; clamp so spans never leave the damage
		// rectangle (and thus the target buffer).
		if y < damage.Min.Y || y >= damage.Max.Y {
			return
		}
		if x0 < damage.Min.X {
			x0 = damage.Min.X
		}
		if x1 > damage.Max.X {
			x1 = damage.Max.X
		}
		if x1 <= x0 {
			return
		}
		r.blendSpan(pixels, stride, painter, y, x0, x1)
	})
}

// blendSpan paints one horizontal run, compositing source-over.
func (r *SoftwareRenderer) blendSpan(pixels []byte, stride int, painter compositor.Painter, y, x0, x1 int) {
	length := x1 - x0
	if cap(r.spanBuf) < length {
		r.spanBuf = make([]compositor.RGBA, length)
	}
	buf := r.spanBuf[:length]
	painter.PaintSpan(buf, x0, y, length)

	offset := y*stride + x0*4
	for i := 0; i < length; i++ {
		c := buf[i]
		if c.A <= 0 {
			offset += 4
			continue
		}
		sr := c.R * c.A * 255
		sg := c.G * c.A * 255
		sb := c.B * c.A * 255
		sa := c.A * 255
		if c.A >= 1 {
			pixels[offset+0] = uint8(sr)
			pixels[offset+1] = uint8(sg)
			pixels[offset+2] = uint8(sb)
			pixels[offset+3] = 255
		} else {
			inv := 1 - c.A
			pixels[offset+0] = uint8(sr + float64(pixels[offset+0])*inv)
			pixels[offset+1] = uint8(sg + float64(pixels[offset+1])*inv)
			pixels[offset+2] = uint8(sb + float64(pixels[offset+2])*inv)
			pixels[offset+3] = uint8(sa + float64(pixels[offset+3])*inv)
		}
		offset += 4
	}
}

// viewQuad projects a surface's extent into device space and classifies
// it for the clipper from the transform matrix, not from the vertices.
func viewQuad(s *Surface, transform compositor.Matrix) clipper.Quad {
	w, h := s.Size()
	corners := [4]compositor.Point{
		compositor.Pt(0, 0),
		compositor.Pt(float64(w), 0),
		compositor.Pt(float64(w), float64(h)),
		compositor.Pt(0, float64(h)),
	}
	var polygon [4]clipper.Vertex
	for i, c := range corners {
		p := transform.TransformPoint(c)
		polygon[i] = clipper.Vertex{X: float32(p.X), Y: float32(p.Y)}
	}
	return clipper.NewQuad(polygon, transform.AxisAligned())
}

// rectToQuad projects a global-space damage rectangle through the output
// transform. Damage stays axis-aligned on every supported output, so the
// result is always classified as axis-aligned.
//
// TODO handle non-axis-aligned output transforms; RepaintOutput rejects
// them before this runs.
func rectToQuad(m compositor.Matrix, r image.Rectangle) clipper.Quad {
	corners := [4]compositor.Point{
		compositor.Pt(float64(r.Min.X), float64(r.Min.Y)),
		compositor.Pt(float64(r.Max.X), float64(r.Min.Y)),
		compositor.Pt(float64(r.Max.X), float64(r.Max.Y)),
		compositor.Pt(float64(r.Min.X), float64(r.Max.Y)),
	}
	var polygon [4]clipper.Vertex
	for i, c := range corners {
		p := m.TransformPoint(c)
		polygon[i] = clipper.Vertex{X: float32(p.X), Y: float32(p.Y)}
	}
	return clipper.NewQuad(polygon, true)
}

// boxRect rounds a clip box outward to an integer rectangle.
func boxRect(b clipper.Box) image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(b.X1))),
		int(math.Floor(float64(b.Y1))),
		int(math.Ceil(float64(b.X2))),
		int(math.Ceil(float64(b.Y2))),
	)
}
