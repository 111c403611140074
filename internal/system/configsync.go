package system

import (
	"log/slog"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"

	"vrstage/internal/config"
	"vrstage/internal/ecs"
)

// ConfigSync applies reloaded settings to render contexts that are already
// set up. Settings read on every tick need no help; camera lens values are
// copied into each camera when a reload arrives.
type ConfigSync struct {
	reloads  <-chan string
	log      *slog.Logger
	contexts *query.Query
}

// NewConfigSync returns a system that drains reloads once per tick.
func NewConfigSync(reloads <-chan string, log *slog.Logger) *ConfigSync {
	if log == nil {
		log = slog.Default()
	}
	return &ConfigSync{
		reloads:  reloads,
		log:      log,
		contexts: donburi.NewQuery(filter.Contains(ecs.RenderContext)),
	}
}

func (s *ConfigSync) Execute(w donburi.World, _, _ float64) error {
	select {
	case path, ok := <-s.reloads:
		if !ok {
			s.reloads = nil
			return nil
		}
		s.log.Info("settings reloaded", "path", path)
	default:
		return nil
	}

	fov := config.GetFOV()
	near, far := config.GetClipPlanes()
	s.contexts.Each(w, func(e *donburi.Entry) {
		rc := ecs.RenderContext.Get(e)
		if !rc.Initialized || rc.Camera == nil {
			return
		}
		rc.Camera.FOV = fov
		rc.Camera.Near = near
		rc.Camera.Far = far
		rc.Camera.UpdateProjectionMatrix()
	})
	return nil
}
