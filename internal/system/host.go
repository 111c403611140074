// Package system holds the per-tick systems that bind ECS entities to
// renderers, cameras and controls.
package system

import "vrstage/internal/graphics/renderer"

// Host is the environment render contexts are created in: a window or a
// headless stand-in.
type Host interface {
	// ViewportSize returns the full drawable size in logical pixels.
	ViewportSize() (width, height int)
	DevicePixelRatio() float64
	// NewContainer creates a container filling the viewport.
	NewContainer() renderer.Element
	// OnResize registers fn to run on every viewport resize.
	OnResize(fn func(width, height int)) (remove func())
	// AppendControl shows c over the canvas.
	AppendControl(c renderer.Control)
}
