// Copyright 2026 The qnx Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image"

	"github.com/gogpu/wgpu/hal"

	compositor "github.com/qnx/weston-sub002"
	wgpubackend "github.com/qnx/weston-sub002/backend/wgpu"
	"github.com/qnx/weston-sub002/clipper"
)

// GPURenderer is a GPU-accelerated renderer using WebGPU.
//
// It uses the GPU device provided by the host application; it never
// creates one itself. Per repaint it runs the same clipping as the
// software renderer and stages the clipped polygons as triangle-fan
// vertex buffers for the fan-composite pipeline.
//
// Command submission is not implemented yet: CPU-accessible targets fall
// back to the software path (which consumes the identical clip results),
// and GPU-only targets return ErrNoCPUAccess.
type GPURenderer struct {
	// handle is the GPU device handle from the host application.
	handle DeviceHandle

	// module is the compiled fan-composite shader, when the provider
	// exposes HAL access.
	module hal.ShaderModule
	device hal.Device

	// staged collects fan vertices for the current repaint.
	staged []wgpubackend.Vertex

	// verts receives clip results.
	verts [8]clipper.Vertex

	// softwareFallback is used when GPU rendering is not available.
	softwareFallback *SoftwareRenderer
}

// halDeviceProvider is implemented by device providers that expose the
// underlying wgpu HAL device for direct pipeline creation.
type halDeviceProvider interface {
	HalDevice() hal.Device
}

// ErrNilDevice is returned when a nil device handle is passed.
var ErrNilDevice = errors.New("render: nil device handle")

// NewGPURenderer creates a new GPU-accelerated renderer.
//
// The DeviceHandle must be provided by the host application. Shader
// compilation failures are non-fatal: the renderer logs a warning and
// keeps working through the software fallback.
func NewGPURenderer(handle DeviceHandle) (*GPURenderer, error) {
	if handle == nil {
		return nil, ErrNilDevice
	}

	r := &GPURenderer{
		handle:           handle,
		softwareFallback: NewSoftwareRenderer(),
	}

	spirv, err := wgpubackend.CompileFanShader()
	if err != nil {
		compositor.Logger().Warn("fan shader compile failed, using CPU fallback", "err", err)
		return r, nil
	}

	if hp, ok := handle.(halDeviceProvider); ok {
		device := hp.HalDevice()
		if device != nil {
			module, err := wgpubackend.CreateShaderModule(device, "fan-composite", spirv)
			if err != nil {
				compositor.Logger().Warn("fan shader module creation failed", "err", err)
			} else {
				r.device = device
				r.module = module
				compositor.Logger().Info("fan-composite pipeline ready")
			}
		}
	}

	return r, nil
}

// RepaintOutput draws the output's views into the target.
//
// The clip stage always runs on the CPU; its fan output is staged as GPU
// vertex data. For CPU-accessible targets the pixels are then produced by
// the software fallback; GPU-only targets are not supported yet.
func (r *GPURenderer) RepaintOutput(target RenderTarget, output *Output) error {
	if target == nil {
		return ErrNilTarget
	}

	r.stageOutput(target.Width(), target.Height(), output)

	if target.Pixels() != nil {
		return r.softwareFallback.RepaintOutput(target, output)
	}
	return ErrNoCPUAccess
}

// stageOutput clips every view against every damage rectangle and
// tessellates the results into the staged vertex buffer.
func (r *GPURenderer) stageOutput(width, height int, output *Output) {
	r.staged = r.staged[:0]
	if output == nil || output.Damage.Empty() || !output.Transform.AxisAligned() {
		return
	}

	bounds := image.Rect(0, 0, width, height)
	for _, rect := range output.Damage.Rects() {
		quad := rectToQuad(output.Transform, rect)
		deviceRect := boxRect(quad.BoundingBox()).Intersect(bounds)
		if deviceRect.Empty() {
			continue
		}
		for _, view := range output.Views {
			transform := output.Transform.Multiply(view.Transform)
			vq := viewQuad(view.Surface, transform)
			n := vq.ClipRect(deviceRect, r.verts[:])
			if n < 3 {
				continue
			}
			c := compositor.White
			if view.Surface.Solid() {
				c = view.Surface.color
			}
			// TODO: bind surface textures once the sampling pipeline
			// lands; textured views stage placeholder white fans.
			r.staged = append(r.staged, wgpubackend.TessellateFan(r.verts[:n], c, width, height)...)
		}
	}
}

// StagedVertexCount returns the number of fan vertices staged by the
// last repaint. Exposed for diagnostics and tests.
func (r *GPURenderer) StagedVertexCount() int {
	return len(r.staged)
}

// Flush ensures all GPU commands are submitted and complete.
// Nothing is submitted yet, so this is a no-op.
func (r *GPURenderer) Flush() error {
	return nil
}

// Close releases GPU resources held by the renderer.
func (r *GPURenderer) Close() {
	wgpubackend.DestroyShaderModule(r.device, r.module)
	r.module = nil
	r.device = nil
}

// Capabilities returns the renderer's capabilities.
func (r *GPURenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                true,
		SupportsTextureViews: false, // fan pipeline not submitted yet
		MaxTextureSize:       8192,  // Typical GPU limit
	}
}

// DeviceHandle returns the underlying device handle.
func (r *GPURenderer) DeviceHandle() DeviceHandle {
	return r.handle
}

// Ensure both renderers implement Renderer and CapableRenderer.
var (
	_ Renderer        = (*SoftwareRenderer)(nil)
	_ CapableRenderer = (*SoftwareRenderer)(nil)
	_ Renderer        = (*GPURenderer)(nil)
	_ CapableRenderer = (*GPURenderer)(nil)
)
