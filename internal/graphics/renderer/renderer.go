// Package renderer defines the raster output contract the ECS layer talks
// to, plus a headless implementation. The OpenGL implementation lives in
// package glrender.
package renderer

import (
	"errors"
	"math"

	"vrstage/internal/graphics"
	"vrstage/internal/scene"
	"vrstage/internal/xr"
)

// ErrNotInitialized is returned when the canvas is requested before the
// render context owning it has been set up.
var ErrNotInitialized = errors.New("renderer: canvas not initialized")

// Renderer draws a scene from a camera into its canvas.
type Renderer interface {
	// Canvas returns the surface being drawn into.
	Canvas() *Canvas
	SetPixelRatio(ratio float64)
	PixelRatio() float64
	// SetSize sets the displayed size to width x height and the backing
	// size to that times the pixel ratio.
	SetSize(width, height int)
	// XR returns the renderer's VR session manager.
	XR() *xr.Manager
	Render(s *scene.Scene, cam *graphics.Camera) error
}

// Options configures a renderer at construction.
type Options struct {
	// Canvas, when set, is drawn into instead of a canvas the renderer creates.
	Canvas    *Canvas
	Antialias bool
	// GammaOutput encodes the final frame to sRGB.
	GammaOutput bool
	// XR provides the session modes the renderer's manager can start.
	XR xr.Provider
	// Overlay, when set, supplies controls drawn on top of each frame.
	Overlay Overlay
}

// Factory constructs renderers. The ECS layer receives one so tests and
// headless runs can swap the backend.
type Factory func(opts Options) (Renderer, error)

// SizeTracker implements the canvas sizing half of Renderer. Backends
// embed it.
type SizeTracker struct {
	canvas     *Canvas
	pixelRatio float64
}

// NewSizeTracker tracks sizing for canvas with a pixel ratio of 1.
func NewSizeTracker(canvas *Canvas) SizeTracker {
	return SizeTracker{canvas: canvas, pixelRatio: 1}
}

// Canvas returns the tracked canvas.
func (t *SizeTracker) Canvas() *Canvas {
	return t.canvas
}

func (t *SizeTracker) SetPixelRatio(ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	t.pixelRatio = ratio
}

func (t *SizeTracker) PixelRatio() float64 {
	return t.pixelRatio
}

func (t *SizeTracker) SetSize(width, height int) {
	t.canvas.Width = int(math.Floor(float64(width) * t.pixelRatio))
	t.canvas.Height = int(math.Floor(float64(height) * t.pixelRatio))
	t.canvas.ClientWidth = width
	t.canvas.ClientHeight = height
}
