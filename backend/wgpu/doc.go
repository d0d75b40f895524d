// Copyright 2026 The qnx Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu contains the WebGPU glue for the GPU renderer: the
// fan-composite shader, its WGSL-to-SPIR-V compilation, and the
// tessellation of clipped polygons into triangle vertex buffers.
//
// The package deliberately holds no device state. The GPU renderer in
// render/ owns the device handle it received from the host application
// and calls into here for the stateless pieces.
package wgpu
