package xr

// Emulator is a desktop stand-in for a headset. Sessions it starts render
// side-by-side stereo into the normal window.
type Emulator struct {
	Modes []Mode
}

// NewEmulator supports immersive-vr and inline sessions.
func NewEmulator() *Emulator {
	return &Emulator{Modes: []Mode{ModeImmersiveVR, ModeInline}}
}

func (e *Emulator) IsSessionSupported(mode Mode) bool {
	for _, m := range e.Modes {
		if m == mode {
			return true
		}
	}
	return false
}
