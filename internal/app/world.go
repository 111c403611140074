// Package app ties the ECS world to a frame loop: it runs the registered
// systems once per frame and renders the primary render context.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"vrstage/internal/config"
	"vrstage/internal/ecs"
	"vrstage/internal/profiling"
)

// System is a unit of per-tick work.
type System interface {
	Execute(w donburi.World, delta, time float64) error
}

// SystemFunc adapts a function to System.
type SystemFunc func(w donburi.World, delta, time float64) error

func (f SystemFunc) Execute(w donburi.World, delta, time float64) error {
	return f(w, delta, time)
}

// World is a donburi world plus the systems run on it each tick.
type World struct {
	donburi.World

	systems []System
	log     *slog.Logger
}

func NewWorld() *World {
	return &World{World: donburi.NewWorld(), log: slog.Default()}
}

// SetLogger replaces the logger used by the frame loop.
func (w *World) SetLogger(l *slog.Logger) {
	if l != nil {
		w.log = l
	}
}

// AddSystem appends s to the tick order.
func (w *World) AddSystem(s System) *World {
	w.systems = append(w.systems, s)
	return w
}

// Execute runs every system in order, then delivers queued events. The
// first system error stops the tick.
func (w *World) Execute(delta, time float64) error {
	for _, s := range w.systems {
		if err := s.Execute(w.World, delta, time); err != nil {
			return err
		}
	}
	events.ProcessAllEvents(w.World)
	return nil
}

// OneWorldTick runs a single tick with the configured fixed delta and time.
func OneWorldTick(w *World) error {
	delta, elapsed := config.GetFixedTick()
	return w.Execute(delta, elapsed)
}

// Driver is the host's frame pump.
type Driver interface {
	// Running reports whether the host wants more frames.
	Running() bool
	// EndFrame presents the frame and processes pending host events.
	EndFrame()
}

// StartWorldLoop runs one warm-up tick so entity's render context is set
// up, then ticks and renders that context once per frame until the driver
// stops or ctx is cancelled.
func StartWorldLoop(ctx context.Context, entity donburi.Entity, w *World, driver Driver) error {
	if err := OneWorldTick(w); err != nil {
		return fmt.Errorf("warm-up tick: %w", err)
	}
	if _, err := primaryContext(w, entity); err != nil {
		return err
	}

	clock := NewClock()
	limiter := NewFPSLimiter()
	for driver.Running() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		profiling.ResetFrame()
		start := time.Now()

		delta := clock.Delta()
		if err := w.Execute(delta, clock.Elapsed()); err != nil {
			return err
		}
		if err := renderFrame(w, entity); err != nil {
			return err
		}
		driver.EndFrame()

		if d := time.Since(start); d > config.GetSlowFrameThreshold() {
			w.log.Warn("slow frame", "duration", d,
				"systems", profiling.SumWithPrefix("system."),
				"top", profiling.TopN(config.GetProfilingTopN()))
		}
		limiter.Wait()
	}
	return nil
}

func renderFrame(w *World, entity donburi.Entity) error {
	defer profiling.Track("app.render")()
	rc, err := primaryContext(w, entity)
	if err != nil {
		return err
	}
	return rc.Renderer.Render(rc.Scene, rc.Camera)
}

func primaryContext(w *World, entity donburi.Entity) (ecs.RenderContextData, error) {
	if !w.Valid(entity) {
		return ecs.RenderContextData{}, fmt.Errorf("app entity %v: %w", entity, ecs.ErrComponentMissing)
	}
	rc, err := ecs.Read(w.Entry(entity), ecs.RenderContext)
	if err != nil {
		return rc, err
	}
	if !rc.Initialized {
		return rc, fmt.Errorf("app entity %v: render context not set up", entity)
	}
	return rc, nil
}
