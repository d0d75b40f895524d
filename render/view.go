// Copyright 2026 The qnx Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	compositor "github.com/qnx/weston-sub002"
)

// Surface is a client-supplied piece of content: either a pixmap buffer
// or a solid color with an extent. Surfaces carry no position; a View
// places a surface on an output.
type Surface struct {
	content *compositor.Pixmap
	color   compositor.RGBA
	width   int
	height  int
}

// NewSurface creates a surface backed by a pixmap buffer.
func NewSurface(content *compositor.Pixmap) *Surface {
	return &Surface{
		content: content,
		width:   content.Width(),
		height:  content.Height(),
	}
}

// NewSolidSurface creates a surface of uniform color, the analog of a
// single-pixel buffer stretched over the given extent.
func NewSolidSurface(width, height int, c compositor.RGBA) *Surface {
	return &Surface{color: c, width: width, height: height}
}

// Size returns the surface extent in surface-local coordinates.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Solid reports whether the surface is a solid color.
func (s *Surface) Solid() bool {
	return s.content == nil
}

// Content returns the backing pixmap, or nil for solid surfaces.
func (s *Surface) Content() *compositor.Pixmap {
	return s.content
}

// painter returns the span color source for this surface. inverse maps
// device coordinates back to surface-local coordinates; texture-backed
// surfaces sample their buffer through it with nearest filtering.
func (s *Surface) painter(inverse compositor.Matrix) compositor.Painter {
	if s.Solid() {
		return &compositor.SolidPainter{Color: s.color}
	}
	content := s.content
	return &compositor.FuncPainter{
		Fn: func(x, y float64) compositor.RGBA {
			p := inverse.TransformPoint(compositor.Pt(x, y))
			return content.GetPixel(int(p.X), int(p.Y))
		},
	}
}

// View places a surface on an output: the transform maps surface-local
// coordinates into the output's global space. Rotated or sheared
// transforms are fully supported; the renderer picks the clipper path
// from the transform's classification.
type View struct {
	Surface   *Surface
	Transform compositor.Matrix
}

// NewView creates a view of a surface with the given transform.
func NewView(s *Surface, transform compositor.Matrix) *View {
	return &View{Surface: s, Transform: transform}
}

// Output is one repaint unit: a stack of views (bottom to top), the
// accumulated damage since the last repaint, and the transform from
// global space to device space.
type Output struct {
	// Width and Height are the device dimensions in pixels.
	Width  int
	Height int

	// Transform maps global coordinates to device coordinates. It must
	// be axis-aligned; see SoftwareRenderer.RepaintOutput.
	Transform compositor.Matrix

	// Views are drawn in order, bottom to top.
	Views []*View

	// Damage is the region to repaint, in global coordinates.
	Damage compositor.Region
}

// NewOutput creates an output with an identity transform and no damage.
func NewOutput(width, height int) *Output {
	return &Output{
		Width:     width,
		Height:    height,
		Transform: compositor.Identity(),
	}
}

// DamageAll marks the whole output as needing repaint.
func (o *Output) DamageAll() {
	o.Damage.Clear()
	o.Damage.Add(image.Rect(0, 0, o.Width, o.Height))
}
