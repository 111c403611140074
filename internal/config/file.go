package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a settings file. Absent keys leave the
// current setting untouched.
type File struct {
	Render RenderFile `yaml:"render"`
	Loop   LoopFile   `yaml:"loop"`
}

type RenderFile struct {
	FOV            *float32  `yaml:"fov"`
	Near           *float32  `yaml:"near"`
	Far            *float32  `yaml:"far"`
	Width          *int      `yaml:"width"`
	Height         *int      `yaml:"height"`
	Antialias      *bool     `yaml:"antialias"`
	GammaOutput    *bool     `yaml:"gamma_output"`
	ResizeInterval *int      `yaml:"resize_interval"`
	OrbitCamera    []float32 `yaml:"orbit_camera"`
	Background     *string   `yaml:"background"`
}

type LoopFile struct {
	FixedDelta    *float64 `yaml:"fixed_delta"`
	FixedTime     *float64 `yaml:"fixed_time"`
	FPSLimit      *int     `yaml:"fps_limit"`
	SlowFrameMS   *int     `yaml:"slow_frame_ms"`
	ProfilingTopN *int     `yaml:"profiling_top_n"`
}

// Parse decodes a settings document.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse config: %w", err)
	}
	if n := len(f.Render.OrbitCamera); n != 0 && n != 3 {
		return File{}, fmt.Errorf("parse config: orbit_camera needs 3 components, got %d", n)
	}
	return f, nil
}

// Load reads a YAML settings file and applies it to the global settings.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return err
	}
	f.Apply()
	return nil
}

// Apply pushes every present key through the matching setter, so the
// setters' clamping rules still hold.
func (f File) Apply() {
	r := f.Render
	if r.FOV != nil {
		SetFOV(*r.FOV)
	}
	if r.Near != nil || r.Far != nil {
		near, far := GetClipPlanes()
		if r.Near != nil {
			near = *r.Near
		}
		if r.Far != nil {
			far = *r.Far
		}
		SetClipPlanes(near, far)
	}
	if r.Width != nil || r.Height != nil {
		w, h := GetDefaultSize()
		if r.Width != nil {
			w = *r.Width
		}
		if r.Height != nil {
			h = *r.Height
		}
		SetDefaultSize(w, h)
	}
	if r.Antialias != nil {
		SetAntialias(*r.Antialias)
	}
	if r.GammaOutput != nil {
		SetGammaOutput(*r.GammaOutput)
	}
	if r.ResizeInterval != nil {
		SetResizeInterval(*r.ResizeInterval)
	}
	if len(r.OrbitCamera) == 3 {
		SetOrbitCameraPosition(mgl32.Vec3{r.OrbitCamera[0], r.OrbitCamera[1], r.OrbitCamera[2]})
	}
	if r.Background != nil {
		SetBackground(*r.Background)
	}

	l := f.Loop
	if l.FixedDelta != nil || l.FixedTime != nil {
		delta, elapsed := GetFixedTick()
		if l.FixedDelta != nil {
			delta = *l.FixedDelta
		}
		if l.FixedTime != nil {
			elapsed = *l.FixedTime
		}
		SetFixedTick(delta, elapsed)
	}
	if l.FPSLimit != nil {
		SetFPSLimit(*l.FPSLimit)
	}
	if l.SlowFrameMS != nil {
		SetSlowFrameThreshold(time.Duration(*l.SlowFrameMS) * time.Millisecond)
	}
	if l.ProfilingTopN != nil {
		SetProfilingTopN(*l.ProfilingTopN)
	}
}
