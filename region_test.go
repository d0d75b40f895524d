package compositor

import (
	"image"
	"testing"
)

func TestRegionAdd(t *testing.T) {
	var r Region
	if !r.Empty() {
		t.Fatal("zero Region should be empty")
	}

	r.Add(image.Rect(0, 0, 0, 0))
	if !r.Empty() {
		t.Error("empty rectangle should be ignored")
	}

	r.Add(image.Rect(0, 0, 10, 10))
	r.Add(image.Rect(2, 2, 5, 5)) // contained, dropped
	if got := len(r.Rects()); got != 1 {
		t.Errorf("len(Rects()) = %d, want 1", got)
	}

	r.Add(image.Rect(20, 0, 30, 10))
	if got := len(r.Rects()); got != 2 {
		t.Errorf("len(Rects()) = %d, want 2", got)
	}
}

// coverage counts how many region rectangles contain each pixel.
func coverage(r *Region, bounds image.Rectangle) map[image.Point]int {
	cov := make(map[image.Point]int)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			p := image.Pt(x, y)
			for _, rect := range r.Rects() {
				if p.In(rect) {
					cov[p]++
				}
			}
		}
	}
	return cov
}

func TestRegionAddOverlapSplits(t *testing.T) {
	tests := []struct {
		name  string
		rects []image.Rectangle
	}{
		{
			"side overlap",
			[]image.Rectangle{image.Rect(0, 0, 6, 8), image.Rect(4, 0, 8, 8)},
		},
		{
			"cross overlap",
			[]image.Rectangle{image.Rect(0, 2, 10, 5), image.Rect(3, 0, 6, 10)},
		},
		{
			"corner overlap",
			[]image.Rectangle{image.Rect(0, 0, 5, 5), image.Rect(3, 3, 8, 8)},
		},
		{
			"three way",
			[]image.Rectangle{
				image.Rect(0, 0, 6, 6),
				image.Rect(4, 0, 10, 6),
				image.Rect(2, 4, 8, 10),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Region
			for _, rect := range tt.rects {
				r.Add(rect)
			}

			// Every pixel of the submitted rectangles is covered by exactly
			// one region rectangle, and no other pixel is covered at all.
			cov := coverage(&r, r.Bounds())
			for y := r.Bounds().Min.Y; y < r.Bounds().Max.Y; y++ {
				for x := r.Bounds().Min.X; x < r.Bounds().Max.X; x++ {
					p := image.Pt(x, y)
					want := 0
					for _, rect := range tt.rects {
						if p.In(rect) {
							want = 1
							break
						}
					}
					if cov[p] != want {
						t.Fatalf("pixel %v covered %d times, want %d", p, cov[p], want)
					}
				}
			}
		})
	}
}

func TestRegionBounds(t *testing.T) {
	var r Region
	if got := r.Bounds(); !got.Empty() {
		t.Errorf("Bounds of empty region = %v, want empty", got)
	}

	r.Add(image.Rect(0, 0, 10, 10))
	r.Add(image.Rect(20, 5, 30, 15))
	want := image.Rect(0, 0, 30, 15)
	if got := r.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestRegionIntersects(t *testing.T) {
	var r Region
	r.Add(image.Rect(0, 0, 10, 10))
	r.Add(image.Rect(20, 20, 30, 30))

	if !r.Intersects(image.Rect(5, 5, 25, 25)) {
		t.Error("overlapping rectangle should intersect")
	}
	if r.Intersects(image.Rect(11, 0, 19, 10)) {
		t.Error("gap between rectangles should not intersect")
	}
	if r.Intersects(image.Rect(10, 0, 20, 10)) {
		t.Error("edge-adjacent rectangle should not intersect")
	}
}

func TestRegionAddRegionAndClear(t *testing.T) {
	var a, b Region
	a.Add(image.Rect(0, 0, 5, 5))
	b.Add(image.Rect(5, 0, 10, 5))
	b.Add(image.Rect(1, 1, 3, 3)) // contained in a's rect

	a.AddRegion(&b)
	if got := len(a.Rects()); got != 2 {
		t.Errorf("len(Rects()) after AddRegion = %d, want 2", got)
	}

	a.Clear()
	if !a.Empty() {
		t.Error("region should be empty after Clear")
	}
	a.Add(image.Rect(0, 0, 1, 1))
	if got := len(a.Rects()); got != 1 {
		t.Errorf("len(Rects()) after reuse = %d, want 1", got)
	}
}
