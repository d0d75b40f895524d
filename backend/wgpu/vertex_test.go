// Copyright 2026 The qnx Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"math"
	"testing"

	compositor "github.com/qnx/weston-sub002"
	"github.com/qnx/weston-sub002/clipper"
)

func TestTessellateFanCount(t *testing.T) {
	tests := []struct {
		name  string
		verts int
		want  int
	}{
		{"triangle", 3, 3},
		{"quad", 4, 6},
		{"pentagon", 5, 9},
		{"octagon", 8, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			polygon := make([]clipper.Vertex, tt.verts)
			for i := range polygon {
				a := 2 * math.Pi * float64(i) / float64(tt.verts)
				polygon[i] = clipper.Vertex{
					X: float32(8 + 4*math.Cos(a)),
					Y: float32(8 + 4*math.Sin(a)),
				}
			}
			got := TessellateFan(polygon, compositor.White, 16, 16)
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestTessellateFanDegenerate(t *testing.T) {
	polygon := []clipper.Vertex{{X: 0, Y: 0}, {X: 8, Y: 0}}
	if got := TessellateFan(polygon, compositor.White, 16, 16); got != nil {
		t.Errorf("2 vertices: got %d vertices, want nil", len(got))
	}
	tri := []clipper.Vertex{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 8}}
	if got := TessellateFan(tri, compositor.White, 0, 16); got != nil {
		t.Errorf("zero width: got %d vertices, want nil", len(got))
	}
}

func TestTessellateFanNDC(t *testing.T) {
	polygon := []clipper.Vertex{{X: 0, Y: 0}, {X: 16, Y: 0}, {X: 16, Y: 16}}
	got := TessellateFan(polygon, compositor.White, 16, 16)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	// Top-left pixel maps to (-1, 1), bottom-right to (1, -1): Y flips.
	wantPos := [][2]float32{{-1, 1}, {1, 1}, {1, -1}}
	for i, want := range wantPos {
		if got[i].X != want[0] || got[i].Y != want[1] {
			t.Errorf("vertex %d at (%v, %v), want (%v, %v)",
				i, got[i].X, got[i].Y, want[0], want[1])
		}
	}
}

func TestTessellateFanPremultipliesColor(t *testing.T) {
	polygon := []clipper.Vertex{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 8}}
	c := compositor.RGBA{R: 1, G: 0.5, B: 0, A: 0.5}
	got := TessellateFan(polygon, c, 16, 16)

	for i, v := range got {
		if v.R != 0.5 || v.G != 0.25 || v.B != 0 || v.A != 0.5 {
			t.Errorf("vertex %d color = (%v, %v, %v, %v), want premultiplied (0.5, 0.25, 0, 0.5)",
				i, v.R, v.G, v.B, v.A)
		}
	}
}
