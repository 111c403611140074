package system

import (
	"github.com/yohamta/donburi"

	"vrstage/internal/ecs"
	"vrstage/internal/profiling"
)

// checkSizes resizes every initialized context whose canvas no longer
// matches its container.
func (c *Coordinator) checkSizes(w donburi.World, entities []donburi.Entity) {
	defer profiling.Track("system.checkSizes")()
	for _, ent := range entities {
		rc, err := ecs.Mutable(w.Entry(ent), ecs.RenderContext)
		if err != nil || !rc.Initialized || rc.Container == nil {
			continue
		}
		cw, ch := rc.Canvas.ClientSize()
		width, height := rc.Container.ClientSize()
		if cw == width && ch == height {
			continue
		}
		rc.Camera.Aspect = aspect(width, height)
		rc.Camera.UpdateProjectionMatrix()
		rc.Renderer.SetSize(width, height)
		c.log.Debug("render surface resized",
			"entity", ent, "width", width, "height", height, "tick", c.tick)
	}
}
