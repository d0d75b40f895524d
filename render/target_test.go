// Copyright 2026 The qnx Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestPixmapTarget(t *testing.T) {
	target := NewPixmapTarget(10, 6)

	if got := target.Width(); got != 10 {
		t.Errorf("Width() = %d, want 10", got)
	}
	if got := target.Height(); got != 6 {
		t.Errorf("Height() = %d, want 6", got)
	}
	if got := target.Format(); got != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", got)
	}
	if target.TextureView() != nil {
		t.Error("TextureView() should be nil for CPU targets")
	}
	if target.Pixels() == nil {
		t.Error("Pixels() should not be nil for CPU targets")
	}
	if got := target.Stride(); got != 40 {
		t.Errorf("Stride() = %d, want 40", got)
	}
}

func TestPixmapTargetClear(t *testing.T) {
	target := NewPixmapTarget(4, 4)
	target.Clear(color.RGBA{R: 255, G: 128, B: 0, A: 255})

	got := target.GetPixel(2, 2)
	r, g, b, a := got.RGBA()
	if r>>8 != 255 || g>>8 != 128 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("GetPixel(2, 2) = %v after Clear", got)
	}
}

func TestPixmapTargetFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	target := NewPixmapTargetFromImage(img)

	// The target shares memory with the wrapped image.
	target.Pixels()[0] = 42
	if img.Pix[0] != 42 {
		t.Error("target does not share pixels with the source image")
	}
	if target.Image() != img {
		t.Error("Image() should return the wrapped image")
	}
}
