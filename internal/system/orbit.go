package system

import (
	"github.com/yohamta/donburi"

	"vrstage/internal/config"
	"vrstage/internal/controls"
	"vrstage/internal/ecs"
	"vrstage/internal/profiling"
)

// bindOrbit attaches live controls to a newly seen orbit request and moves
// the camera to the default orbit position.
func (c *Coordinator) bindOrbit(w donburi.World, ent donburi.Entity) error {
	entry := w.Entry(ent)
	rc, err := ecs.Read(entry, ecs.RenderContext)
	if err != nil {
		return err
	}
	req, err := ecs.Mutable(entry, ecs.OrbitControls)
	if err != nil {
		return err
	}
	canvas, err := rc.CanvasHandle()
	if err != nil {
		return err
	}

	ctl := controls.NewOrbit(rc.Camera, canvas)
	rc.Camera.Position = config.GetOrbitCameraPosition()
	rc.Camera.Target = ctl.Target
	ctl.AutoRotate = req.AutoRotate
	ctl.MinDistance = req.MinDistance
	ctl.MaxDistance = req.MaxDistance
	req.Controls = ctl

	c.log.Debug("orbit controls bound", "entity", ent,
		"auto_rotate", req.AutoRotate, "min", req.MinDistance, "max", req.MaxDistance)
	return nil
}

// updateOrbits advances the controls bound on earlier ticks.
func (c *Coordinator) updateOrbits(w donburi.World, dt float32) {
	defer profiling.Track("system.updateOrbits")()
	for _, ent := range c.orbits.Results() {
		if c.orbits.IsAdded(ent) {
			continue
		}
		req, err := ecs.Read(w.Entry(ent), ecs.OrbitControls)
		if err != nil || req.Controls == nil {
			continue
		}
		req.Controls.Update(dt)
	}
}
