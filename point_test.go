package compositor

import (
	"math"
	"testing"
)

func pointNear(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(-1, 2)

	if got := p.Add(q); !pointNear(got, Pt(2, 6)) {
		t.Errorf("Add = %v, want (2, 6)", got)
	}
	if got := p.Sub(q); !pointNear(got, Pt(4, 2)) {
		t.Errorf("Sub = %v, want (4, 2)", got)
	}
	if got := p.Mul(2); !pointNear(got, Pt(6, 8)) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
}

func TestPointLengthDistance(t *testing.T) {
	if got := Pt(3, 4).Length(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := Pt(1, 1).Distance(Pt(4, 5)); math.Abs(got-5) > 1e-9 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Pt(0, 0).Length(); got != 0 {
		t.Errorf("zero vector Length = %v", got)
	}
}

func TestPointLerp(t *testing.T) {
	p := Pt(0, 0)
	q := Pt(10, -4)

	if got := p.Lerp(q, 0); !pointNear(got, p) {
		t.Errorf("Lerp(t=0) = %v, want %v", got, p)
	}
	if got := p.Lerp(q, 1); !pointNear(got, q) {
		t.Errorf("Lerp(t=1) = %v, want %v", got, q)
	}
	if got := p.Lerp(q, 0.5); !pointNear(got, Pt(5, -2)) {
		t.Errorf("Lerp(t=0.5) = %v, want (5, -2)", got)
	}
}
