package xr

// Rect is a screen-space rectangle in window coordinates, origin top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

const (
	buttonWidth  = 120
	buttonHeight = 32
	buttonMargin = 20
)

// ButtonOptions configures NewButton.
type ButtonOptions struct {
	Mode Mode
}

// Button is the on-screen control that enters and exits VR. The host draws
// it and forwards clicks; the button only talks to the Manager.
type Button struct {
	manager *Manager
	mode    Mode
	bounds  Rect
}

// NewButton creates a button for manager. Mode defaults to immersive-vr.
func NewButton(manager *Manager, opts ButtonOptions) *Button {
	mode := opts.Mode
	if mode == "" {
		mode = ModeImmersiveVR
	}
	b := &Button{manager: manager, mode: mode}
	return b
}

// Label returns the text the button currently shows.
func (b *Button) Label() string {
	switch {
	case !b.manager.IsSessionSupported(b.mode):
		return "VR NOT SUPPORTED"
	case b.manager.IsPresenting():
		return "EXIT VR"
	default:
		return "ENTER VR"
	}
}

// Enabled reports whether clicking the button does anything.
func (b *Button) Enabled() bool {
	return b.manager.IsSessionSupported(b.mode)
}

// Layout centers the button along the bottom edge of a width x height view.
func (b *Button) Layout(width, height int) {
	b.bounds = Rect{
		X:      (float64(width) - buttonWidth) / 2,
		Y:      float64(height) - buttonHeight - buttonMargin,
		Width:  buttonWidth,
		Height: buttonHeight,
	}
}

// Bounds returns the rectangle computed by the last Layout call.
func (b *Button) Bounds() Rect {
	return b.bounds
}

// Click toggles the session.
func (b *Button) Click() error {
	if !b.Enabled() {
		return ErrSessionUnsupported
	}
	if b.manager.IsPresenting() {
		return b.manager.EndSession()
	}
	return b.manager.StartSession(b.mode)
}
