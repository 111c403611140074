package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCameraProjection(t *testing.T) {
	c := NewCamera(70, 2, 0.1, 100)
	want := mgl32.Perspective(mgl32.DegToRad(70), 2, 0.1, 100)
	if !c.Projection().ApproxEqual(want) {
		t.Errorf("Projection = %v, want %v", c.Projection(), want)
	}
}

func TestProjectionIsCached(t *testing.T) {
	c := NewCamera(70, 1, 0.1, 100)
	before := c.Projection()
	c.Aspect = 3
	if c.Projection() != before {
		t.Error("projection changed before UpdateProjectionMatrix")
	}
	c.UpdateProjectionMatrix()
	if c.Projection() == before {
		t.Error("projection unchanged after UpdateProjectionMatrix")
	}
}

func TestSetViewport(t *testing.T) {
	c := NewCamera(70, 1, 0.1, 100)
	c.SetViewport(800, 400)
	if c.Aspect != 2 {
		t.Errorf("Aspect = %v, want 2", c.Aspect)
	}
	c.SetViewport(800, 0)
	if c.Aspect != 2 {
		t.Errorf("zero height changed Aspect to %v", c.Aspect)
	}
}

func TestViewLooksAtTarget(t *testing.T) {
	c := NewCamera(70, 1, 0.1, 100)
	c.Position = mgl32.Vec3{0, 0, 3}
	c.Target = mgl32.Vec3{}
	p := c.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	// the origin lies straight ahead, 3 units down -Z in view space
	if !p.Vec3().ApproxEqualThreshold(mgl32.Vec3{0, 0, -3}, 1e-5) {
		t.Errorf("origin in view space = %v, want (0,0,-3)", p.Vec3())
	}
}
