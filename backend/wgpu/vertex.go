// Copyright 2026 The qnx Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	compositor "github.com/qnx/weston-sub002"
	"github.com/qnx/weston-sub002/clipper"
)

// Vertex is one triangle vertex for GPU rendering.
type Vertex struct {
	X, Y       float32 // Position in normalized device coordinates
	R, G, B, A float32 // Color (premultiplied alpha)
}

// TessellateFan converts a clipped polygon into triangles using fan
// triangulation: the first vertex is shared by all triangles. For N
// vertices it generates N-2 triangles. Returns nil for polygons with
// fewer than 3 vertices.
//
// Positions are converted from device pixels to normalized device
// coordinates based on the target dimensions.
func TessellateFan(polygon []clipper.Vertex, c compositor.RGBA, width, height int) []Vertex {
	if len(polygon) < 3 || width <= 0 || height <= 0 {
		return nil
	}

	pc := c.Premultiply()
	r32 := float32(pc.R)
	g32 := float32(pc.G)
	b32 := float32(pc.B)
	a32 := float32(pc.A)

	vertices := make([]Vertex, 0, (len(polygon)-2)*3)

	p0 := toNDC(polygon[0], width, height)
	for i := 1; i < len(polygon)-1; i++ {
		p1 := toNDC(polygon[i], width, height)
		p2 := toNDC(polygon[i+1], width, height)

		vertices = append(vertices,
			Vertex{p0.X, p0.Y, r32, g32, b32, a32},
			Vertex{p1.X, p1.Y, r32, g32, b32, a32},
			Vertex{p2.X, p2.Y, r32, g32, b32, a32},
		)
	}

	return vertices
}

// toNDC converts pixel coordinates to normalized device coordinates.
// NDC range: -1 (left/bottom) to +1 (right/top).
func toNDC(p clipper.Vertex, width, height int) clipper.Vertex {
	return clipper.Vertex{
		X: (p.X/float32(width))*2.0 - 1.0,
		Y: 1.0 - (p.Y/float32(height))*2.0, // Flip Y axis
	}
}
