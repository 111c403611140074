package system

import (
	"fmt"
	"log/slog"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"

	"vrstage/internal/config"
	"vrstage/internal/ecs"
	"vrstage/internal/graphics/renderer"
	"vrstage/internal/profiling"
	"vrstage/internal/xr"
)

// Options configures a Coordinator. Zero values pick the headless renderer,
// the XR emulator and slog.Default.
type Options struct {
	Renderer renderer.Factory
	XR       xr.Provider
	Logger   *slog.Logger
}

// Coordinator sets up render contexts, keeps their surfaces sized to their
// containers and drives orbit controls. It owns the tick counter.
type Coordinator struct {
	host        Host
	newRenderer renderer.Factory
	xrProvider  xr.Provider
	log         *slog.Logger

	tick     uint64
	contexts *query.Query
	orbits   *ecs.TrackedQuery
}

func NewCoordinator(host Host, opts Options) *Coordinator {
	c := &Coordinator{
		host:        host,
		newRenderer: opts.Renderer,
		xrProvider:  opts.XR,
		log:         opts.Logger,
		contexts:    donburi.NewQuery(filter.Contains(ecs.RenderContext)),
		orbits:      ecs.NewTrackedQuery(filter.Contains(ecs.OrbitControls, ecs.RenderContext)),
	}
	if c.newRenderer == nil {
		c.newRenderer = renderer.NewNull
	}
	if c.xrProvider == nil {
		c.xrProvider = xr.NewEmulator()
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// Tick returns the number of completed Execute calls.
func (c *Coordinator) Tick() uint64 {
	return c.tick
}

// Execute runs one tick: pending render contexts are set up first, then
// surfaces are resized on every interval-th tick, then orbit controls are
// bound and advanced. delta and time are in seconds.
func (c *Coordinator) Execute(w donburi.World, delta, time float64) error {
	defer profiling.Track("system.Execute")()
	c.tick++

	var entities []donburi.Entity
	c.contexts.Each(w, func(e *donburi.Entry) {
		entities = append(entities, e.Entity())
	})

	for _, ent := range entities {
		if err := c.setupContext(w, ent); err != nil {
			return fmt.Errorf("setup render context %v: %w", ent, err)
		}
	}

	if interval := uint64(config.GetResizeInterval()); c.tick%interval == 0 {
		c.checkSizes(w, entities)
	}

	c.orbits.Refresh(w)
	for _, ent := range c.orbits.Added() {
		if err := c.bindOrbit(w, ent); err != nil {
			return fmt.Errorf("bind orbit controls %v: %w", ent, err)
		}
	}
	for _, ent := range c.orbits.Removed() {
		c.log.Debug("orbit controls unbound", "entity", ent)
	}
	c.updateOrbits(w, float32(delta))
	return nil
}
