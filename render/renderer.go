// Copyright 2026 The qnx Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Renderer repaints compositor outputs into render targets.
//
// Renderers are stateless between RepaintOutput calls, allowing the same
// renderer to be used with different targets and outputs.
//
// Thread Safety: Renderers are NOT thread-safe. Each renderer should be
// used from a single goroutine, or external synchronization must be used.
type Renderer interface {
	// RepaintOutput draws the output's views into the target, restricted
	// to the output's damage region.
	//
	// The output is not modified and can be repainted multiple times to
	// different targets.
	RepaintOutput(target RenderTarget, output *Output) error

	// Flush ensures all pending rendering operations are complete.
	//
	// For CPU renderers, this is typically a no-op as operations are
	// synchronous. For GPU renderers, this may submit command buffers
	// and wait for completion.
	Flush() error
}

// RendererCapabilities describes the features supported by a renderer.
type RendererCapabilities struct {
	// IsGPU indicates if this is a GPU-accelerated renderer.
	IsGPU bool

	// SupportsTextureViews indicates if GPU texture targets are supported.
	SupportsTextureViews bool

	// MaxTextureSize is the maximum texture dimension (0 = unlimited).
	MaxTextureSize int
}

// CapableRenderer is an optional interface for renderers that can
// report their capabilities.
type CapableRenderer interface {
	Renderer

	// Capabilities returns the renderer's capabilities.
	Capabilities() RendererCapabilities
}
