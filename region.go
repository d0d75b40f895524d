package compositor

import "image"

// Region accumulates damage as a list of non-overlapping axis-aligned
// rectangles. Added rectangles are split against the ones already
// recorded, so every damaged pixel appears in exactly one rectangle.
// The repaint loop relies on this: it composites each view once per
// rectangle, and translucent content must not be blended twice where
// submitted damage overlapped.
//
// The zero value is an empty region ready for use.
type Region struct {
	rects []image.Rectangle
}

// Add extends the region by a rectangle. Empty rectangles are ignored.
// Area already covered by the region is not recorded again; only the
// uncovered pieces of the rectangle are kept.
func (r *Region) Add(rect image.Rectangle) {
	if rect.Empty() {
		return
	}
	r.addSplit(rect, 0)
}

// addSplit records the parts of rect not covered by r.rects[from:].
// On overlap the rectangle is cut into up to four pieces around the
// intersection and each piece is resubmitted against the remaining
// rectangles. Pieces are mutually disjoint by construction.
func (r *Region) addSplit(rect image.Rectangle, from int) {
	for i := from; i < len(r.rects); i++ {
		have := r.rects[i]
		if !rect.Overlaps(have) {
			continue
		}
		if rect.In(have) {
			return
		}
		ov := rect.Intersect(have)
		if rect.Min.Y < ov.Min.Y {
			r.addSplit(image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, ov.Min.Y), i+1)
		}
		if ov.Max.Y < rect.Max.Y {
			r.addSplit(image.Rect(rect.Min.X, ov.Max.Y, rect.Max.X, rect.Max.Y), i+1)
		}
		if rect.Min.X < ov.Min.X {
			r.addSplit(image.Rect(rect.Min.X, ov.Min.Y, ov.Min.X, ov.Max.Y), i+1)
		}
		if ov.Max.X < rect.Max.X {
			r.addSplit(image.Rect(ov.Max.X, ov.Min.Y, rect.Max.X, ov.Max.Y), i+1)
		}
		return
	}
	r.rects = append(r.rects, rect)
}

// AddRegion extends the region by all rectangles of another region.
func (r *Region) AddRegion(other *Region) {
	for _, rect := range other.rects {
		r.Add(rect)
	}
}

// Rects returns the rectangles making up the region.
// The returned slice is owned by the region and valid until the next Add.
func (r *Region) Rects() []image.Rectangle {
	return r.rects
}

// Empty reports whether the region contains no area.
func (r *Region) Empty() bool {
	return len(r.rects) == 0
}

// Bounds returns the smallest rectangle containing the whole region.
func (r *Region) Bounds() image.Rectangle {
	var b image.Rectangle
	for _, rect := range r.rects {
		b = b.Union(rect)
	}
	return b
}

// Intersects reports whether any part of the region overlaps rect.
func (r *Region) Intersects(rect image.Rectangle) bool {
	for _, have := range r.rects {
		if have.Overlaps(rect) {
			return true
		}
	}
	return false
}

// Clear empties the region, keeping allocated storage for reuse.
func (r *Region) Clear() {
	r.rects = r.rects[:0]
}
