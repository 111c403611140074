package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	"vrstage/internal/app"
	"vrstage/internal/config"
	"vrstage/internal/controls"
	"vrstage/internal/ecs"
	"vrstage/internal/graphics/glrender"
	"vrstage/internal/input"
	"vrstage/internal/platform"
	"vrstage/internal/scene"
	"vrstage/internal/system"
)

// zoomStep is the dolly factor of one zoom key press.
const zoomStep = 1.25

// spawnApp creates the entity holding the primary render context.
func spawnApp(w *app.World, vr bool) donburi.Entity {
	ent := w.Create(ecs.RenderContext, ecs.OrbitControls)
	entry := w.Entry(ent)
	ecs.RenderContext.SetValue(entry, ecs.NewRenderContext(vr))
	orbit := ecs.NewOrbitControls()
	orbit.AutoRotate = true
	ecs.OrbitControls.SetValue(entry, orbit)
	return ent
}

// headlessSummary is what a headless run leaves behind.
type headlessSummary struct {
	Ticks         uint64
	Width, Height int
	Camera        mgl32.Vec3
	InsideVR      bool
}

func runHeadless(ticks int, vr bool, reloads <-chan string, log *slog.Logger) (headlessSummary, error) {
	width, height := config.GetDefaultSize()
	host := system.NewHeadlessHost(width, height)

	w := app.NewWorld()
	w.SetLogger(log)
	w.AddSystem(system.NewConfigSync(reloads, log))
	coord := system.NewCoordinator(host, system.Options{Logger: log})
	w.AddSystem(coord)

	ent := spawnApp(w, vr)
	for range ticks {
		if err := app.OneWorldTick(w); err != nil {
			return headlessSummary{}, err
		}
	}

	rc, err := ecs.Read(w.Entry(ent), ecs.RenderContext)
	if err != nil {
		return headlessSummary{}, err
	}
	sum := headlessSummary{Ticks: coord.Tick(), InsideVR: ecs.IsInsideVR(w, ent)}
	if rc.Initialized {
		sum.Width, sum.Height = rc.Canvas.Width, rc.Canvas.Height
		sum.Camera = rc.Camera.Position
	}
	log.Info("headless run finished",
		"ticks", sum.Ticks,
		"canvas", fmt.Sprintf("%dx%d", sum.Width, sum.Height),
		"camera", sum.Camera,
		"inside_vr", sum.InsideVR,
	)
	return sum, nil
}

func runWindowed(ctx context.Context, vr bool, reloads <-chan string, log *slog.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	width, height := config.GetDefaultSize()
	im := input.NewInputManager()
	win, err := platform.NewWindow("vrstage", width, height, im, log)
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	defer win.Destroy()

	w := app.NewWorld()
	w.SetLogger(log)
	w.AddSystem(system.NewConfigSync(reloads, log))
	w.AddSystem(system.NewCoordinator(win, system.Options{Renderer: glrender.New, Logger: log}))

	ent := spawnApp(w, vr)
	if err := app.OneWorldTick(w); err != nil {
		return err
	}
	entry := w.Entry(ent)
	rc, err := ecs.Mutable(entry, ecs.RenderContext)
	if err != nil {
		return err
	}
	if r, ok := rc.Renderer.(*glrender.Renderer); ok {
		defer r.Dispose()
	}

	box := scene.NewBox("box", 1, scene.ColorFromHex(0x44aa88))
	rc.GetStage().AddChild(box)
	w.AddSystem(app.SystemFunc(func(_ donburi.World, delta, _ float64) error {
		box.Spin(mgl32.Vec3{0, 1, 0}, float32(delta)*0.5)
		return nil
	}))

	win.SetPointerTarget(rc.Canvas)
	win.OnAction(input.ActionToggleVR, func() {
		for _, c := range win.Controls() {
			if err := c.Click(); err != nil {
				log.Warn("toggle VR failed", "err", err)
			}
		}
	})
	withOrbit := func(fn func(o *controls.Orbit)) func() {
		return func() {
			orbit, err := ecs.Read(entry, ecs.OrbitControls)
			if err != nil || orbit.Controls == nil {
				return
			}
			fn(orbit.Controls)
		}
	}
	win.OnAction(input.ActionResetView, withOrbit(func(o *controls.Orbit) {
		o.DollyTo(config.GetOrbitCameraPosition().Len(), 0.4, ease.OutQuad)
	}))
	win.OnAction(input.ActionZoomIn, withOrbit(func(o *controls.Orbit) { o.DollyIn(zoomStep) }))
	win.OnAction(input.ActionZoomOut, withOrbit(func(o *controls.Orbit) { o.DollyOut(zoomStep) }))

	return app.StartWorldLoop(ctx, ent, w, win)
}
