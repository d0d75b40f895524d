package compositor

import (
	"math"
	"testing"
)

func matrixNear(a, b Matrix, tol float64) bool {
	return math.Abs(a.A-b.A) < tol &&
		math.Abs(a.B-b.B) < tol &&
		math.Abs(a.C-b.C) < tol &&
		math.Abs(a.D-b.D) < tol &&
		math.Abs(a.E-b.E) < tol &&
		math.Abs(a.F-b.F) < tol
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(3, 4), Pt(13, -1)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"rotate 90", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotate 180", Rotate(math.Pi), Pt(1, 2), Pt(-1, -2)},
		{"shear x", Shear(1, 0), Pt(2, 3), Pt(5, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Translate then scale is not scale then translate.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	got := m.TransformPoint(Pt(1, 1))
	want := Pt(12, 2)
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("translate*scale applied to (1,1) = %v, want %v", got, want)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(3, 4).Multiply(Rotate(0.3)).Multiply(Scale(2, 0.5))
	inv := m.Invert()

	if got := inv.Multiply(m); !matrixNear(got, Identity(), 1e-9) {
		t.Errorf("inv*m = %+v, want identity", got)
	}

	p := Pt(7, -2)
	round := inv.TransformPoint(m.TransformPoint(p))
	if math.Abs(round.X-p.X) > 1e-9 || math.Abs(round.Y-p.Y) > 1e-9 {
		t.Errorf("inverse roundtrip of %v = %v", p, round)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	if got := Scale(0, 0).Invert(); !matrixNear(got, Identity(), 1e-9) {
		t.Errorf("Invert of singular matrix = %+v, want identity", got)
	}
}

func TestMatrixAxisAligned(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"translate", Translate(5, 7), true},
		{"scale", Scale(2, 3), true},
		{"flip", Scale(-1, 1), true},
		{"rotate 90", Rotate(math.Pi / 2), true},
		{"rotate 180", Rotate(math.Pi), true},
		{"rotate 270", Rotate(3 * math.Pi / 2), true},
		{"rotate 45", Rotate(math.Pi / 4), false},
		{"rotate small", Rotate(1e-3), false},
		{"shear", Shear(0.5, 0), false},
		{"translate rotate 90", Translate(1, 2).Multiply(Rotate(math.Pi / 2)), true},
		{"translate rotate 30", Translate(1, 2).Multiply(Rotate(math.Pi / 6)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.AxisAligned(); got != tt.want {
				t.Errorf("AxisAligned() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrixTranslationScaleOnly(t *testing.T) {
	if !Translate(1, 2).Multiply(Scale(3, 4)).TranslationScaleOnly() {
		t.Error("translate*scale should be translation/scale only")
	}
	// 90 degree rotations are axis aligned but swap the axes.
	if Rotate(math.Pi / 2).TranslationScaleOnly() {
		t.Error("rotate 90 should not be translation/scale only")
	}
	if Shear(0.5, 0).TranslationScaleOnly() {
		t.Error("shear should not be translation/scale only")
	}
}
