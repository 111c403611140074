// Package controls implements interactive camera controllers driven by
// canvas pointer events.
package controls

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"vrstage/internal/graphics"
	"vrstage/internal/graphics/renderer"
)

const (
	// polarEpsilon keeps the camera off the poles where LookAt degenerates.
	polarEpsilon = 1e-6
	// autoRotateFrames is the frame count of a full turn at speed 1 (60fps).
	autoRotateFrames = 60 * 60
)

type dragMode uint8

const (
	dragNone dragMode = iota
	dragRotate
	dragPan
)

// Orbit moves a camera on a sphere around Target. Primary-button drag
// rotates, secondary- or middle-button drag pans and the wheel dollies.
// Input accumulates between calls to Update.
type Orbit struct {
	Enabled bool
	Target  mgl32.Vec3

	AutoRotate bool
	// AutoRotateSpeed 2.0 turns once every 30 seconds at 60fps.
	AutoRotateSpeed float32

	MinDistance float32
	MaxDistance float32
	// Polar angle limits in radians, measured from +Y.
	MinPolarAngle float32
	MaxPolarAngle float32

	RotateSpeed float32
	ZoomSpeed   float32
	PanSpeed    float32

	camera *graphics.Camera
	canvas *renderer.Canvas
	remove func()

	drag         dragMode
	lastX, lastY float64

	deltaTheta float32
	deltaPhi   float32
	scale      float32
	pan        mgl32.Vec3

	dolly *gween.Tween
}

// NewOrbit binds a controller to camera and starts listening for pointer
// events on canvas. Call Dispose to stop listening.
func NewOrbit(camera *graphics.Camera, canvas *renderer.Canvas) *Orbit {
	o := &Orbit{
		Enabled:         true,
		AutoRotateSpeed: 2,
		MinDistance:     0,
		MaxDistance:     float32(math.Inf(1)),
		MinPolarAngle:   0,
		MaxPolarAngle:   math.Pi,
		RotateSpeed:     1,
		ZoomSpeed:       1,
		PanSpeed:        1,
		camera:          camera,
		canvas:          canvas,
		scale:           1,
	}
	if canvas != nil {
		o.remove = canvas.AddPointerListener(o.handlePointer)
	}
	return o
}

// Camera returns the controlled camera.
func (o *Orbit) Camera() *graphics.Camera {
	return o.camera
}

// Dragging reports whether a pointer drag is in progress.
func (o *Orbit) Dragging() bool {
	return o.drag != dragNone
}

// Dispose stops listening to the canvas. The controller keeps working if
// Update is called afterwards, it just receives no more input.
func (o *Orbit) Dispose() {
	if o.remove != nil {
		o.remove()
		o.remove = nil
	}
	o.drag = dragNone
}

// Disposed reports whether Dispose has been called.
func (o *Orbit) Disposed() bool {
	return o.remove == nil
}

// RotateLeft queues a rotation of angle radians around the vertical axis.
func (o *Orbit) RotateLeft(angle float32) {
	o.deltaTheta -= angle
}

// RotateUp queues a rotation of angle radians toward the top pole.
func (o *Orbit) RotateUp(angle float32) {
	o.deltaPhi -= angle
}

// DollyIn moves the camera closer by factor (> 1).
func (o *Orbit) DollyIn(factor float32) {
	if factor > 0 {
		o.scale /= factor
	}
}

// DollyOut moves the camera away by factor (> 1).
func (o *Orbit) DollyOut(factor float32) {
	if factor > 0 {
		o.scale *= factor
	}
}

// Pan queues a screen-space translation of the target, in world units.
func (o *Orbit) Pan(dx, dy float32) {
	view := o.camera.View()
	right := mgl32.Vec3{view[0], view[4], view[8]}
	up := mgl32.Vec3{view[1], view[5], view[9]}
	o.pan = o.pan.Add(right.Mul(-dx)).Add(up.Mul(dy))
}

// DollyTo animates the camera distance to distance over duration seconds.
// Pointer dollying cancels the animation.
func (o *Orbit) DollyTo(distance, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	o.dolly = gween.New(o.Distance(), distance, duration, easeFn)
}

// Distance returns the current camera distance from Target.
func (o *Orbit) Distance() float32 {
	return o.camera.Position.Sub(o.Target).Len()
}

func (o *Orbit) handlePointer(ev renderer.PointerEvent) {
	if !o.Enabled {
		return
	}
	switch ev.Kind {
	case renderer.PointerDown:
		switch ev.Button {
		case renderer.ButtonPrimary:
			o.drag = dragRotate
		case renderer.ButtonSecondary, renderer.ButtonMiddle:
			o.drag = dragPan
		}
		o.lastX, o.lastY = ev.X, ev.Y
	case renderer.PointerMove:
		dx, dy := ev.X-o.lastX, ev.Y-o.lastY
		o.lastX, o.lastY = ev.X, ev.Y
		switch o.drag {
		case dragRotate:
			o.dragRotate(dx, dy)
		case dragPan:
			o.dragPan(dx, dy)
		}
	case renderer.PointerUp:
		o.drag = dragNone
	case renderer.PointerWheel:
		o.dolly = nil
		factor := float32(math.Pow(0.95, float64(o.ZoomSpeed)))
		if ev.WheelY > 0 {
			o.scale *= factor
		} else if ev.WheelY < 0 {
			o.scale /= factor
		}
	}
}

func (o *Orbit) dragRotate(dx, dy float64) {
	h := o.viewHeight()
	o.RotateLeft(float32(2*math.Pi*dx/h) * o.RotateSpeed)
	o.RotateUp(float32(2*math.Pi*dy/h) * o.RotateSpeed)
}

// dragPan converts a pixel delta into world units at the target's depth.
func (o *Orbit) dragPan(dx, dy float64) {
	h := o.viewHeight()
	dist := float64(o.Distance()) * math.Tan(float64(mgl32.DegToRad(o.camera.FOV))/2)
	o.Pan(
		float32(2*dx*dist/h)*o.PanSpeed,
		float32(2*dy*dist/h)*o.PanSpeed,
	)
}

func (o *Orbit) viewHeight() float64 {
	if o.canvas == nil || o.canvas.ClientHeight <= 0 {
		return 1
	}
	return float64(o.canvas.ClientHeight)
}

// Update applies queued input, auto-rotation and any running dolly
// animation, then places the camera. dt is in seconds. It reports whether
// the camera moved. Disposed controls leave the camera alone.
func (o *Orbit) Update(dt float32) bool {
	if o.Disposed() {
		return false
	}
	offset := o.camera.Position.Sub(o.Target)
	radius := offset.Len()
	var theta, phi float64
	if radius > 0 {
		theta = math.Atan2(float64(offset.X()), float64(offset.Z()))
		phi = math.Acos(float64(mgl32.Clamp(offset.Y()/radius, -1, 1)))
	}

	if o.AutoRotate && o.drag == dragNone {
		o.RotateLeft(2 * math.Pi / autoRotateFrames * o.AutoRotateSpeed)
	}

	theta += float64(o.deltaTheta)
	phi += float64(o.deltaPhi)
	minPhi := math.Max(float64(o.MinPolarAngle), polarEpsilon)
	maxPhi := math.Min(float64(o.MaxPolarAngle), math.Pi-polarEpsilon)
	phi = math.Max(minPhi, math.Min(maxPhi, phi))

	radius *= o.scale
	if o.dolly != nil {
		v, done := o.dolly.Update(dt)
		radius = v
		if done {
			o.dolly = nil
		}
	}
	radius = mgl32.Clamp(radius, o.MinDistance, o.MaxDistance)

	o.Target = o.Target.Add(o.pan)

	sinPhi := float32(math.Sin(phi))
	dir := mgl32.Vec3{
		sinPhi * float32(math.Sin(theta)),
		float32(math.Cos(phi)),
		sinPhi * float32(math.Cos(theta)),
	}
	pos := o.Target.Add(dir.Mul(radius))

	moved := pos.Sub(o.camera.Position).Len() > 1e-6 || o.camera.Target != o.Target
	o.camera.Position = pos
	o.camera.Target = o.Target

	o.deltaTheta, o.deltaPhi = 0, 0
	o.scale = 1
	o.pan = mgl32.Vec3{}
	return moved
}
