// Copyright 2026 The qnx Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command cliptest visualizes the clipper's output for arbitrary quad
// rotations: the input quad in red, the clip box in blue, and the
// resulting clipped polygon in green with numbered vertices, written to
// a PNG. Vertex coordinates are also printed to stdout.
//
// Example:
//
//	cliptest -phi 45 -box -10,-10,10,10 -o clip.png
package main

import (
	"flag"
	"fmt"
	"image"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	compositor "github.com/qnx/weston-sub002"
	"github.com/qnx/weston-sub002/clipper"
	"github.com/qnx/weston-sub002/internal/raster"
)

var (
	phiDeg  = flag.Float64("phi", 45, "quad rotation in degrees")
	half    = flag.Float64("half", 20, "quad half-size in world units")
	boxSpec = flag.String("box", "-10,-10,10,10", "clip box as x1,y1,x2,y2")
	size    = flag.Int("size", 512, "output image size in pixels")
	outFile = flag.String("o", "cliptest.png", "output PNG file")
)

func main() {
	flag.Parse()

	box, err := parseBox(*boxSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cliptest: %v\n", err)
		os.Exit(1)
	}

	phi := *phiDeg * math.Pi / 180
	rotation := compositor.Rotate(phi)
	polygon := quadCorners(*half, rotation)
	quad := clipper.NewQuad(polygon, rotation.AxisAligned())

	var clipped [8]clipper.Vertex
	n := quad.Clip(box, clipped[:])

	fmt.Printf("quad (phi=%v, axis_aligned=%v):\n", *phiDeg, quad.AxisAligned())
	for i, v := range polygon {
		fmt.Printf("  %d: (%.4f, %.4f)\n", i, v.X, v.Y)
	}
	fmt.Printf("clip box: (%.2f, %.2f) - (%.2f, %.2f)\n", box.X1, box.Y1, box.X2, box.Y2)
	fmt.Printf("clipped polygon: %d vertices\n", n)
	for i := 0; i < n; i++ {
		fmt.Printf("  %d: (%.4f, %.4f)\n", i, clipped[i].X, clipped[i].Y)
	}

	pm := renderScene(polygon, box, clipped[:n])
	if err := pm.SavePNG(*outFile); err != nil {
		fmt.Fprintf(os.Stderr, "cliptest: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *outFile)
}

// parseBox parses "x1,y1,x2,y2" into a clip box.
func parseBox(spec string) (clipper.Box, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return clipper.Box{}, fmt.Errorf("invalid box %q: want x1,y1,x2,y2", spec)
	}
	var coords [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return clipper.Box{}, fmt.Errorf("invalid box coordinate %q", p)
		}
		coords[i] = v
	}
	if coords[0] > coords[2] || coords[1] > coords[3] {
		return clipper.Box{}, fmt.Errorf("invalid box %q: x1 <= x2 and y1 <= y2 required", spec)
	}
	return clipper.Box{
		X1: float32(coords[0]), Y1: float32(coords[1]),
		X2: float32(coords[2]), Y2: float32(coords[3]),
	}, nil
}

// quadCorners returns the square [-half, half]^2 transformed by m.
func quadCorners(half float64, m compositor.Matrix) [4]clipper.Vertex {
	corners := [4]compositor.Point{
		compositor.Pt(-half, -half),
		compositor.Pt(half, -half),
		compositor.Pt(half, half),
		compositor.Pt(-half, half),
	}
	var polygon [4]clipper.Vertex
	for i, c := range corners {
		p := m.TransformPoint(c)
		polygon[i] = clipper.Vertex{X: float32(p.X), Y: float32(p.Y)}
	}
	return polygon
}

// renderScene draws the three layers into a fresh pixmap.
func renderScene(polygon [4]clipper.Vertex, box clipper.Box, clipped []clipper.Vertex) *compositor.Pixmap {
	pm := compositor.NewPixmap(*size, *size)
	pm.Clear(compositor.White)

	toImg := imageTransform(polygon, box)

	red := compositor.RGBA{R: 1, A: 0.4}
	green := compositor.RGBA{G: 0.7, A: 0.6}
	blue := compositor.Blue

	fillPolygon(pm, polygon[:], toImg, red)
	drawBoxOutline(pm, box, toImg, blue)
	fillPolygon(pm, clipped, toImg, green)
	labelVertices(pm, clipped, toImg)

	return pm
}

// imageTransform maps world coordinates into the image with a margin.
func imageTransform(polygon [4]clipper.Vertex, box clipper.Box) compositor.Matrix {
	extent := math.Max(math.Abs(float64(box.X1)), math.Abs(float64(box.X2)))
	extent = math.Max(extent, math.Abs(float64(box.Y1)))
	extent = math.Max(extent, math.Abs(float64(box.Y2)))
	for _, v := range polygon {
		extent = math.Max(extent, math.Abs(float64(v.X)))
		extent = math.Max(extent, math.Abs(float64(v.Y)))
	}
	if extent == 0 {
		extent = 1
	}
	scale := float64(*size) / (2 * extent * 1.15)
	return compositor.Translate(float64(*size)/2, float64(*size)/2).
		Multiply(compositor.Scale(scale, scale))
}

// fillPolygon blends a translucent polygon into the pixmap.
func fillPolygon(pm *compositor.Pixmap, polygon []clipper.Vertex, toImg compositor.Matrix, c compositor.RGBA) {
	imgVerts := make([]clipper.Vertex, len(polygon))
	for i, v := range polygon {
		p := toImg.TransformPoint(compositor.Pt(float64(v.X), float64(v.Y)))
		imgVerts[i] = clipper.Vertex{X: float32(p.X), Y: float32(p.Y)}
	}
	raster.FillFan(imgVerts, func(y, x0, x1 int) {
		for x := x0; x < x1; x++ {
			pm.BlendPixel(x, y, c)
		}
	})
}

// drawBoxOutline draws a one-pixel rectangle outline.
func drawBoxOutline(pm *compositor.Pixmap, box clipper.Box, toImg compositor.Matrix, c compositor.RGBA) {
	p1 := toImg.TransformPoint(compositor.Pt(float64(box.X1), float64(box.Y1)))
	p2 := toImg.TransformPoint(compositor.Pt(float64(box.X2), float64(box.Y2)))
	x1, y1 := int(p1.X), int(p1.Y)
	x2, y2 := int(p2.X), int(p2.Y)
	for x := x1; x <= x2; x++ {
		pm.SetPixel(x, y1, c)
		pm.SetPixel(x, y2, c)
	}
	for y := y1; y <= y2; y++ {
		pm.SetPixel(x1, y, c)
		pm.SetPixel(x2, y, c)
	}
}

// labelVertices draws the output vertex indices next to their positions.
func labelVertices(pm *compositor.Pixmap, clipped []clipper.Vertex, toImg compositor.Matrix) {
	img := pm.ToImage()
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(compositor.Black.Color()),
		Face: basicfont.Face7x13,
	}
	for i, v := range clipped {
		p := toImg.TransformPoint(compositor.Pt(float64(v.X), float64(v.Y)))
		drawer.Dot = fixed.P(int(p.X)+4, int(p.Y)-4)
		drawer.DrawString(strconv.Itoa(i))
	}
	// Copy the labeled image back into the pixmap.
	copy(pm.Data(), img.Pix)
}
