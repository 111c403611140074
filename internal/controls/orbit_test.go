package controls

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween/ease"

	"vrstage/internal/graphics"
	"vrstage/internal/graphics/renderer"
)

func newTestOrbit(t *testing.T) (*Orbit, *graphics.Camera, *renderer.Canvas) {
	t.Helper()
	cam := graphics.NewCamera(70, 1, 0.1, 100)
	cam.Position = mgl32.Vec3{0, 0, 3}
	cam.Target = mgl32.Vec3{}
	canvas := renderer.NewCanvas(400, 400, nil)
	return NewOrbit(cam, canvas), cam, canvas
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-3
}

func TestUpdateWithoutInputKeepsCamera(t *testing.T) {
	o, cam, _ := newTestOrbit(t)
	if o.Update(0.016) {
		t.Error("Update reported movement without input")
	}
	if !near(cam.Position, mgl32.Vec3{0, 0, 3}) {
		t.Errorf("Position = %v, want (0,0,3)", cam.Position)
	}
	if cam.Target != (mgl32.Vec3{}) {
		t.Errorf("camera Target = %v, want origin", cam.Target)
	}
}

func TestAutoRotateKeepsDistance(t *testing.T) {
	o, cam, _ := newTestOrbit(t)
	o.AutoRotate = true
	for i := 0; i < 100; i++ {
		o.Update(0.016)
	}
	if approx(cam.Position.X(), 0) {
		t.Error("auto-rotate did not move the camera")
	}
	if d := o.Distance(); !approx(d, 3) {
		t.Errorf("Distance = %v, want 3", d)
	}
}

func TestDistanceClamped(t *testing.T) {
	o, cam, _ := newTestOrbit(t)
	o.MinDistance = 1
	o.MaxDistance = 5

	o.DollyOut(10)
	o.Update(0)
	if d := o.Distance(); !approx(d, 5) {
		t.Errorf("after dolly out Distance = %v, want 5", d)
	}

	o.DollyIn(100)
	o.Update(0)
	if d := o.Distance(); !approx(d, 1) {
		t.Errorf("after dolly in Distance = %v, want 1", d)
	}
	if !approx(cam.Position.Z(), 1) {
		t.Errorf("Position = %v, want on +Z", cam.Position)
	}
}

func TestDragRotates(t *testing.T) {
	o, cam, canvas := newTestOrbit(t)
	canvas.DispatchPointer(renderer.PointerEvent{Kind: renderer.PointerDown, Button: renderer.ButtonPrimary, X: 200, Y: 200})
	if !o.Dragging() {
		t.Fatal("Dragging() = false after pointer down")
	}
	// A quarter of the canvas height is a quarter turn.
	canvas.DispatchPointer(renderer.PointerEvent{Kind: renderer.PointerMove, X: 300, Y: 200})
	canvas.DispatchPointer(renderer.PointerEvent{Kind: renderer.PointerUp})
	o.Update(0)

	if !near(cam.Position, mgl32.Vec3{-3, 0, 0}) {
		t.Errorf("Position = %v, want (-3,0,0)", cam.Position)
	}
}

func TestPolarAngleClamped(t *testing.T) {
	o, cam, _ := newTestOrbit(t)
	o.RotateUp(-10)
	o.Update(0)
	if cam.Position.Y() > -2.999 {
		t.Errorf("Position = %v, want near the bottom pole", cam.Position)
	}
}

func TestPanMovesTarget(t *testing.T) {
	o, cam, _ := newTestOrbit(t)
	o.Update(0)
	o.Pan(1, 0)
	o.Update(0)
	if !approx(o.Target.X(), -1) {
		t.Errorf("Target = %v, want x=-1", o.Target)
	}
	if !approx(cam.Position.X(), -1) || !approx(cam.Position.Z(), 3) {
		t.Errorf("Position = %v, want (-1,0,3)", cam.Position)
	}
}

func TestWheelDollies(t *testing.T) {
	o, _, canvas := newTestOrbit(t)
	canvas.DispatchPointer(renderer.PointerEvent{Kind: renderer.PointerWheel, WheelY: 1})
	o.Update(0)
	if d := o.Distance(); !approx(d, 3*0.95) {
		t.Errorf("Distance = %v, want %v", d, 3*0.95)
	}
}

func TestDollyTo(t *testing.T) {
	o, _, _ := newTestOrbit(t)
	o.DollyTo(6, 1, ease.Linear)
	o.Update(0.5)
	if d := o.Distance(); !approx(d, 4.5) {
		t.Errorf("halfway Distance = %v, want 4.5", d)
	}
	o.Update(0.5)
	o.Update(0.5)
	if d := o.Distance(); !approx(d, 6) {
		t.Errorf("final Distance = %v, want 6", d)
	}
}

func TestDisposeStopsInput(t *testing.T) {
	o, cam, canvas := newTestOrbit(t)
	o.Dispose()
	if !o.Disposed() || canvas.NumPointerListeners() != 0 {
		t.Fatal("Dispose left the listener registered")
	}
	canvas.DispatchPointer(renderer.PointerEvent{Kind: renderer.PointerWheel, WheelY: 1})
	o.Update(0)
	if !approx(o.Distance(), 3) || !approx(cam.Position.Z(), 3) {
		t.Errorf("disposed controller reacted to input: %v", cam.Position)
	}
}

func TestDisposedSkipsAutoRotate(t *testing.T) {
	o, cam, _ := newTestOrbit(t)
	o.AutoRotate = true
	o.Dispose()
	if o.Update(0.016) {
		t.Error("disposed controls reported movement")
	}
	if cam.Position != (mgl32.Vec3{0, 0, 3}) {
		t.Errorf("Position = %v, want (0,0,3)", cam.Position)
	}
}
