// Package xr manages VR session state for a renderer: whether VR is
// enabled, whether a session is presenting, and the listeners notified
// when a session starts or ends.
package xr

import (
	"errors"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNotEnabled         = errors.New("xr: not enabled on this renderer")
	ErrSessionUnsupported = errors.New("xr: session mode not supported")
	ErrSessionActive      = errors.New("xr: session already active")
	ErrNoSession          = errors.New("xr: no active session")
)

// Mode names a session type.
type Mode string

const (
	ModeImmersiveVR Mode = "immersive-vr"
	ModeInline      Mode = "inline"
)

// EventKind identifies a session lifecycle notification.
type EventKind uint8

const (
	SessionStart EventKind = iota
	SessionEnd
)

func (k EventKind) String() string {
	switch k {
	case SessionStart:
		return "sessionstart"
	case SessionEnd:
		return "sessionend"
	default:
		return "unknown"
	}
}

// Event is passed to session listeners.
type Event struct {
	Kind    EventKind
	Session *Session
}

// Provider reports which session modes the device can run.
type Provider interface {
	IsSessionSupported(mode Mode) bool
}

// Eye selects one half of a stereo frame.
type Eye uint8

const (
	EyeLeft Eye = iota
	EyeRight
)

const defaultIPD = 0.064

// Session is a running VR session.
type Session struct {
	Mode Mode
	// IPD is the interpupillary distance in scene units.
	IPD float32
}

// EyeOffset returns the eye's position relative to the head.
func (s *Session) EyeOffset(eye Eye) mgl32.Vec3 {
	half := s.IPD / 2
	if eye == EyeLeft {
		return mgl32.Vec3{-half, 0, 0}
	}
	return mgl32.Vec3{half, 0, 0}
}

type listener struct {
	id   uint32
	kind EventKind
	fn   func(Event)
}

// Manager is the per-renderer VR state. It is not safe for concurrent use;
// sessions start and end on the frame loop's thread.
type Manager struct {
	// Enabled must be set before a session can start.
	Enabled bool

	provider  Provider
	session   *Session
	listeners []listener
	nextID    uint32
	log       *slog.Logger
}

// NewManager creates a disabled manager backed by provider. A nil provider
// supports no session modes.
func NewManager(provider Provider) *Manager {
	return &Manager{provider: provider, log: slog.Default()}
}

// SetLogger replaces the manager's logger.
func (m *Manager) SetLogger(l *slog.Logger) {
	if l != nil {
		m.log = l
	}
}

// ListenerHandle removes a registered listener.
type ListenerHandle struct {
	m  *Manager
	id uint32
}

// Remove unregisters the listener. Safe to call more than once.
func (h ListenerHandle) Remove() {
	if h.m == nil {
		return
	}
	ls := h.m.listeners
	for i, l := range ls {
		if l.id == h.id {
			h.m.listeners = append(ls[:i], ls[i+1:]...)
			return
		}
	}
}

// AddEventListener registers fn for kind. Listeners run synchronously, in
// registration order, inside StartSession / EndSession.
func (m *Manager) AddEventListener(kind EventKind, fn func(Event)) ListenerHandle {
	m.nextID++
	m.listeners = append(m.listeners, listener{id: m.nextID, kind: kind, fn: fn})
	return ListenerHandle{m: m, id: m.nextID}
}

// IsSessionSupported reports whether mode can be started on this device.
func (m *Manager) IsSessionSupported(mode Mode) bool {
	return m.provider != nil && m.provider.IsSessionSupported(mode)
}

// IsPresenting reports whether a session is running.
func (m *Manager) IsPresenting() bool {
	return m.session != nil
}

// Session returns the running session, or nil.
func (m *Manager) Session() *Session {
	return m.session
}

// StartSession begins a session in mode and notifies SessionStart listeners.
func (m *Manager) StartSession(mode Mode) error {
	if !m.Enabled {
		return ErrNotEnabled
	}
	if m.session != nil {
		return ErrSessionActive
	}
	if !m.IsSessionSupported(mode) {
		return ErrSessionUnsupported
	}
	m.session = &Session{Mode: mode, IPD: defaultIPD}
	m.log.Info("xr session started", "mode", string(mode))
	m.dispatch(Event{Kind: SessionStart, Session: m.session})
	return nil
}

// EndSession stops the running session and notifies SessionEnd listeners.
func (m *Manager) EndSession() error {
	if m.session == nil {
		return ErrNoSession
	}
	s := m.session
	m.session = nil
	m.log.Info("xr session ended", "mode", string(s.Mode))
	m.dispatch(Event{Kind: SessionEnd, Session: s})
	return nil
}

func (m *Manager) dispatch(ev Event) {
	// copy so listeners may remove themselves
	ls := append([]listener(nil), m.listeners...)
	for _, l := range ls {
		if l.kind == ev.Kind {
			l.fn(ev)
		}
	}
}
