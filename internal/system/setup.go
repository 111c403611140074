package system

import (
	"github.com/yohamta/donburi"

	"vrstage/internal/config"
	"vrstage/internal/ecs"
	"vrstage/internal/graphics"
	"vrstage/internal/graphics/renderer"
	"vrstage/internal/profiling"
	"vrstage/internal/scene"
	"vrstage/internal/xr"
)

// setupContext builds the scene, camera, renderer and stage of an
// uninitialized render context. Initialized contexts are left alone.
func (c *Coordinator) setupContext(w donburi.World, ent donburi.Entity) error {
	rc, err := ecs.Mutable(w.Entry(ent), ecs.RenderContext)
	if err != nil {
		return err
	}
	if rc.Initialized {
		return nil
	}
	defer profiling.Track("system.setupContext")()

	s := scene.New()
	opts := renderer.Options{
		Antialias:   config.GetAntialias(),
		GammaOutput: config.GetGammaOutput(),
		XR:          c.xrProvider,
	}
	if ov, ok := c.host.(renderer.Overlay); ok {
		opts.Overlay = ov
	}

	var (
		width, height int
		container     renderer.Element
		r             renderer.Renderer
		cam           *graphics.Camera
	)
	if rc.Canvas != nil {
		opts.Canvas = rc.Canvas
		width, height = rc.Canvas.Width, rc.Canvas.Height
		if r, err = c.newRenderer(opts); err != nil {
			return err
		}
		container = rc.Canvas.Parent()
	} else {
		container = c.host.NewContainer()
		width, height = c.host.ViewportSize()
		if r, err = c.newRenderer(opts); err != nil {
			return err
		}
		r.Canvas().SetParent(container)
		c.host.OnResize(func(width, height int) {
			cam.SetViewport(width, height)
			r.SetPixelRatio(c.host.DevicePixelRatio())
			r.SetSize(width, height)
		})
	}

	near, far := config.GetClipPlanes()
	cam = graphics.NewCamera(config.GetFOV(), aspect(width, height), near, far)

	if bg, ok := c.background(rc); ok {
		s.SetBackground(bg)
	}

	r.SetPixelRatio(c.host.DevicePixelRatio())
	r.SetSize(width, height)

	rc.Scene = s
	rc.Camera = cam
	rc.Renderer = r
	rc.Container = container
	rc.Canvas = r.Canvas()

	rc.StageRotation = scene.NewGroup("stageRotation")
	rc.StagePosition = scene.NewGroup("stagePosition")
	rc.Stage = scene.NewGroup("stage")
	s.Add(rc.StageRotation)
	rc.StageRotation.AddChild(rc.StagePosition)
	rc.StagePosition.AddChild(rc.Stage)

	rc.Initialized = true

	if rc.VREnabled {
		c.enableXR(w, ent, r)
	}
	c.log.Info("render context ready",
		"entity", ent, "width", width, "height", height, "vr", rc.VREnabled)
	return nil
}

// enableXR turns on the renderer's VR manager, shows the entry button and
// keeps the InsideVR tag in step with the session.
func (c *Coordinator) enableXR(w donburi.World, ent donburi.Entity, r renderer.Renderer) {
	mgr := r.XR()
	mgr.SetLogger(c.log)
	mgr.Enabled = true
	c.host.AppendControl(xr.NewButton(mgr, xr.ButtonOptions{Mode: xr.ModeImmersiveVR}))
	mgr.AddEventListener(xr.SessionStart, func(xr.Event) {
		ecs.SetInsideVR(w, ent, true)
	})
	mgr.AddEventListener(xr.SessionEnd, func(xr.Event) {
		ecs.SetInsideVR(w, ent, false)
	})
}

// background returns the context's color, falling back to the configured one.
func (c *Coordinator) background(rc *ecs.RenderContextData) (scene.Color, bool) {
	if rc.BackgroundColor != nil {
		return *rc.BackgroundColor, true
	}
	s := config.GetBackground()
	if s == "" {
		return scene.Color{}, false
	}
	col, err := scene.ParseColor(s)
	if err != nil {
		c.log.Warn("ignoring background color", "value", s, "err", err)
		return scene.Color{}, false
	}
	return col, true
}

func aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
