package renderer

import (
	"vrstage/internal/graphics"
	"vrstage/internal/scene"
	"vrstage/internal/xr"
)

// Size is a width x height pair.
type Size struct {
	Width, Height int
}

// Null is a renderer that draws nothing and records what it was asked to
// do. Headless runs and tests use it.
type Null struct {
	SizeTracker
	xr *xr.Manager

	Antialias   bool
	GammaOutput bool
	// SetSizeCalls lists every SetSize call in order.
	SetSizeCalls []Size
	RenderCalls  int
	LastScene    *scene.Scene
	LastCamera   *graphics.Camera
	// RenderErr, when set, is returned by Render.
	RenderErr error
}

// NewNull builds a Null renderer. Without a canvas in opts it creates an
// unmounted 300x150 one, the default size of a fresh canvas.
func NewNull(opts Options) (Renderer, error) {
	canvas := opts.Canvas
	if canvas == nil {
		canvas = NewCanvas(300, 150, nil)
	}
	return &Null{
		SizeTracker: NewSizeTracker(canvas),
		xr:          xr.NewManager(opts.XR),
		Antialias:   opts.Antialias,
		GammaOutput: opts.GammaOutput,
	}, nil
}

func (n *Null) SetSize(width, height int) {
	n.SizeTracker.SetSize(width, height)
	n.SetSizeCalls = append(n.SetSizeCalls, Size{width, height})
}

func (n *Null) XR() *xr.Manager {
	return n.xr
}

func (n *Null) Render(s *scene.Scene, cam *graphics.Camera) error {
	if n.RenderErr != nil {
		return n.RenderErr
	}
	n.RenderCalls++
	n.LastScene = s
	n.LastCamera = cam
	return nil
}
