package config

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderSettings holds camera and surface configuration
type RenderSettings struct {
	mu sync.RWMutex

	fov       float32 // vertical, in degrees
	nearPlane float32
	farPlane  float32

	defaultWidth  int
	defaultHeight int
	antialias     bool
	// gammaOutput encodes the final frame to sRGB
	gammaOutput bool

	// resizeInterval is the number of ticks between container size checks
	resizeInterval int

	orbitCameraPosition mgl32.Vec3
	background          string
}

var globalRenderSettings = &RenderSettings{
	fov:                 70.0,
	nearPlane:           0.1,
	farPlane:            100.0,
	defaultWidth:        400,
	defaultHeight:       400,
	antialias:           true,
	gammaOutput:         true,
	resizeInterval:      10,
	orbitCameraPosition: mgl32.Vec3{0, 0, 3},
}

// GetFOV returns the vertical field of view in degrees
func GetFOV() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fov
}

// SetFOV sets the vertical field of view in degrees
func SetFOV(fov float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if fov < 10 {
		fov = 10
	}
	if fov > 170 {
		fov = 170
	}

	globalRenderSettings.fov = fov
}

// GetClipPlanes returns the near and far clipping distances
func GetClipPlanes() (near, far float32) {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.nearPlane, globalRenderSettings.farPlane
}

// SetClipPlanes sets the near and far clipping distances.
// Invalid pairs (non-positive near, far not beyond near) are ignored.
func SetClipPlanes(near, far float32) {
	if near <= 0 || far <= near {
		return
	}
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.nearPlane = near
	globalRenderSettings.farPlane = far
}

// GetDefaultSize returns the surface size used before any sizing source is known
func GetDefaultSize() (width, height int) {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.defaultWidth, globalRenderSettings.defaultHeight
}

// SetDefaultSize sets the fallback surface size
func SetDefaultSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.defaultWidth = width
	globalRenderSettings.defaultHeight = height
}

// GetAntialias returns whether renderers request multisampling
func GetAntialias() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.antialias
}

// SetAntialias sets whether renderers request multisampling
func SetAntialias(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.antialias = enabled
}

// GetGammaOutput returns whether renderers encode their output to sRGB
func GetGammaOutput() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.gammaOutput
}

// SetGammaOutput sets whether renderers encode their output to sRGB
func SetGammaOutput(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.gammaOutput = enabled
}

// GetResizeInterval returns how many ticks pass between container size checks
func GetResizeInterval() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.resizeInterval
}

// SetResizeInterval sets the container size check cadence in ticks
func SetResizeInterval(ticks int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if ticks < 1 {
		ticks = 1
	}
	if ticks > 600 {
		ticks = 600
	}

	globalRenderSettings.resizeInterval = ticks
}

// GetOrbitCameraPosition returns the point the camera is reset to when orbit controls attach
func GetOrbitCameraPosition() mgl32.Vec3 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.orbitCameraPosition
}

// SetOrbitCameraPosition sets the orbit reset point
func SetOrbitCameraPosition(p mgl32.Vec3) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.orbitCameraPosition = p
}

// GetBackground returns the default scene background ("" means none)
func GetBackground() string {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.background
}

// SetBackground sets the default scene background color string
func SetBackground(color string) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.background = color
}
