package compositor

// Painter generates colors for rendering operations.
// Renderers fill the clipped spans of a view by asking its Painter for
// pixel colors, one span at a time.
type Painter interface {
	// PaintSpan fills dest with colors for pixels starting at (x, y) for length pixels.
	PaintSpan(dest []RGBA, x, y, length int)
}

// SolidPainter fills all pixels with a single color (fastest path).
// Solid-color surfaces use this painter.
type SolidPainter struct {
	Color RGBA
}

// PaintSpan fills the destination buffer with the solid color.
func (p *SolidPainter) PaintSpan(dest []RGBA, _, _ int, length int) {
	for i := 0; i < length && i < len(dest); i++ {
		dest[i] = p.Color
	}
}

// FuncPainter wraps a ColorAt function as a Painter (per-pixel sampling).
// Texture-backed surfaces use this to sample their buffer through the
// inverse view transform.
type FuncPainter struct {
	Fn func(x, y float64) RGBA
}

// PaintSpan samples the color function at each pixel center.
func (p *FuncPainter) PaintSpan(dest []RGBA, x, y, length int) {
	fy := float64(y) + 0.5
	for i := 0; i < length && i < len(dest); i++ {
		dest[i] = p.Fn(float64(x+i)+0.5, fy)
	}
}
