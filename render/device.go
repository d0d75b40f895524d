// Copyright 2026 The qnx Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// This interface is the integration point between the renderer and GPU
// frameworks. The host application implements DeviceHandle and passes it
// to GPU renderers, allowing them to use the shared GPU device.
//
// Key principle: the renderer RECEIVES the device from the host, it does
// NOT create one. This enables shared GPU resources between the
// compositor and the host application, and consistent resource
// management across the stack.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// renderer-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// TextureView represents a view into a GPU texture.
// Views are used to bind render targets to the GPU pipeline.
type TextureView interface {
	// Destroy releases resources associated with this view.
	Destroy()
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for CPU-only rendering where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns an empty description (AdapterTypeUnknown) for the
// null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo { return gpucontext.AdapterInfo{} }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
