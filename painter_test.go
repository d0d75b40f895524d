package compositor

import "testing"

func TestSolidPainter(t *testing.T) {
	p := &SolidPainter{Color: Red}
	dest := make([]RGBA, 5)
	p.PaintSpan(dest, 10, 20, 5)

	for i, c := range dest {
		if c != Red {
			t.Errorf("dest[%d] = %+v, want red", i, c)
		}
	}
}

func TestSolidPainterShortDest(t *testing.T) {
	p := &SolidPainter{Color: Blue}
	dest := make([]RGBA, 2)
	// Length larger than dest must not panic.
	p.PaintSpan(dest, 0, 0, 10)
	if dest[0] != Blue || dest[1] != Blue {
		t.Errorf("dest = %+v, want blue", dest)
	}
}

func TestFuncPainterSamplesPixelCenters(t *testing.T) {
	var xs []float64
	var ys []float64
	p := &FuncPainter{
		Fn: func(x, y float64) RGBA {
			xs = append(xs, x)
			ys = append(ys, y)
			return Green
		},
	}

	dest := make([]RGBA, 3)
	p.PaintSpan(dest, 4, 7, 3)

	wantX := []float64{4.5, 5.5, 6.5}
	for i := range wantX {
		if xs[i] != wantX[i] {
			t.Errorf("sample %d at x=%v, want %v", i, xs[i], wantX[i])
		}
		if ys[i] != 7.5 {
			t.Errorf("sample %d at y=%v, want 7.5", i, ys[i])
		}
	}
	for i, c := range dest {
		if c != Green {
			t.Errorf("dest[%d] = %+v, want green", i, c)
		}
	}
}
