// Package ecs declares the donburi components shared by the render systems
// and the helpers that read and mutate them.
package ecs

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi"

	"vrstage/internal/controls"
	"vrstage/internal/graphics"
	"vrstage/internal/graphics/renderer"
	"vrstage/internal/scene"
)

// ErrComponentMissing is returned when an entity lacks the requested component.
var ErrComponentMissing = errors.New("ecs: component missing")

// RenderContextData holds the live rendering objects of one renderable
// entity. Everything below VREnabled, Canvas and BackgroundColor is filled
// in once by the render setup and guarded by Initialized.
type RenderContextData struct {
	VREnabled bool
	// Canvas, when set before setup, is reused instead of creating a
	// container and surface.
	Canvas          *renderer.Canvas
	BackgroundColor *scene.Color

	Initialized bool
	Scene       *scene.Scene
	Camera      *graphics.Camera
	Renderer    renderer.Renderer
	Container   renderer.Element

	StageRotation *scene.Node
	StagePosition *scene.Node
	Stage         *scene.Node
}

// NewRenderContext returns an uninitialized context.
func NewRenderContext(vr bool) RenderContextData {
	return RenderContextData{VREnabled: vr}
}

// CanvasHandle returns the surface being rendered into.
func (c *RenderContextData) CanvasHandle() (*renderer.Canvas, error) {
	if c.Canvas == nil {
		return nil, renderer.ErrNotInitialized
	}
	return c.Canvas, nil
}

// GetStage returns the innermost stage node user content mounts under.
func (c *RenderContextData) GetStage() *scene.Node { return c.Stage }

func (c *RenderContextData) GetCamera() *graphics.Camera { return c.Camera }

func (c *RenderContextData) GetScene() *scene.Scene { return c.Scene }

// OrbitControlsData requests orbit controls on the entity's render context.
// Controls is attached the first tick the request is seen.
type OrbitControlsData struct {
	AutoRotate  bool
	MinDistance float32
	MaxDistance float32

	Controls *controls.Orbit
}

// NewOrbitControls returns a request with the default distance bounds [0, 10].
func NewOrbitControls() OrbitControlsData {
	return OrbitControlsData{MinDistance: 0, MaxDistance: 10}
}

// InsideVRTag marks an entity whose VR session is presenting.
type InsideVRTag struct{}

var (
	RenderContext = donburi.NewComponentType[RenderContextData]()
	OrbitControls = donburi.NewComponentType[OrbitControlsData]()
	InsideVR      = donburi.NewComponentType[InsideVRTag]()
)

// Read returns a copy of the entry's component.
func Read[T any](entry *donburi.Entry, c *donburi.ComponentType[T]) (T, error) {
	var zero T
	if entry == nil || !entry.Valid() || !entry.HasComponent(c) {
		return zero, fmt.Errorf("%w: %s", ErrComponentMissing, c.Name())
	}
	return *c.Get(entry), nil
}

// Mutable returns a pointer into the entry's component storage. The pointer
// is invalidated when components are added to or removed from the entity.
func Mutable[T any](entry *donburi.Entry, c *donburi.ComponentType[T]) (*T, error) {
	if entry == nil || !entry.Valid() || !entry.HasComponent(c) {
		return nil, fmt.Errorf("%w: %s", ErrComponentMissing, c.Name())
	}
	return c.Get(entry), nil
}
