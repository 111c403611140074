package renderer

import "vrstage/internal/xr"

// Control is an on-screen widget the host lays out over the canvas and
// forwards clicks to.
type Control interface {
	Label() string
	Layout(width, height int)
	Bounds() xr.Rect
	Click() error
}

// Overlay supplies the controls a renderer draws over the scene.
type Overlay interface {
	Controls() []Control
}
