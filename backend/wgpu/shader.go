// Copyright 2026 The qnx Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// fanShaderWGSL is the composite pass for clipped view polygons: a
// passthrough vertex stage over the tessellated fan and a flat color
// fragment stage. Premultiplied colors arrive per vertex.
const fanShaderWGSL = `
struct VertexInput {
    @location(0) position: vec2<f32>,
    @location(1) color: vec4<f32>,
};

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
};

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.position = vec4<f32>(in.position, 0.0, 1.0);
    out.color = in.color;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return in.color;
}
`

// CompileFanShader compiles the fan-composite shader to SPIR-V words.
func CompileFanShader() ([]uint32, error) {
	return compileToSPIRV(fanShaderWGSL)
}

// compileToSPIRV compiles WGSL source to a SPIR-V uint32 slice.
func compileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}

// CreateShaderModule creates a HAL shader module from SPIR-V code.
func CreateShaderModule(device hal.Device, label string, spirvCode []uint32) (hal.ShaderModule, error) {
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
}

// DestroyShaderModule releases a shader module if one was created.
func DestroyShaderModule(device hal.Device, module hal.ShaderModule) {
	if device == nil || module == nil {
		return
	}
	device.DestroyShaderModule(module)
}
