// Package compositor provides the shared geometry and framebuffer layer
// for a small display compositor: affine transforms, RGBA pixel buffers,
// damage regions, and span painters.
//
// # Overview
//
// The package sits below the renderer backends in render/ and above the
// polygon clipping core in clipper/. A renderer takes a set of views
// (client surfaces with a transform into output space), intersects each
// view's transformed extent with the output's damage region using the
// clipper, and paints the resulting spans through a Painter.
//
// # Architecture
//
//   - compositor: Point, Matrix, RGBA, Pixmap, Region, Painter
//   - clipper: quad vs. axis-aligned box intersection (the hot path)
//   - internal/raster: triangle-fan span filler
//   - render: software and GPU renderer backends
//   - cmd/cliptest: clip-correctness visualization tool
//
// # Logging
//
// By default the library produces no log output. Call SetLogger to route
// diagnostics through a log/slog logger.
package compositor
