// Copyright 2026 The qnx Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render contains the renderer backends that repaint compositor
// outputs.
//
// A renderer walks an output's views bottom-to-top and, for every damage
// rectangle, intersects each view's transformed extent with the rectangle
// using the clipper package. The resulting convex polygon (at most 8
// vertices) is rasterized as a triangle fan: by the span filler for the
// software renderer, or staged as a vertex buffer for the GPU renderer.
//
// Two backends are provided:
//
//   - SoftwareRenderer: pure CPU rendering into pixel-backed targets
//   - GPURenderer: receives a GPU device from the host application and
//     stages fan vertex buffers; CPU targets fall back to software
//
// Both backends share the same clipping core, so their visible output is
// identical for the surfaces they can both handle.
package render
