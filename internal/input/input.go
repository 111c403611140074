package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"vrstage/internal/graphics/renderer"
)

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionRotate Action = iota
	ActionPan
	ActionToggleVR
	ActionResetView
	ActionZoomIn
	ActionZoomOut
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys and mouse buttons to logical actions and
// tracks their pressed state between frames
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
}

// NewInputManager creates an InputManager with the default bindings: left
// drag rotates, right or middle drag pans, V toggles VR, R resets the view,
// plus and minus zoom, Escape quits.
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindMouseButton(glfw.MouseButtonLeft, ActionRotate)
	im.BindMouseButton(glfw.MouseButtonRight, ActionPan)
	im.BindMouseButton(glfw.MouseButtonMiddle, ActionPan)

	im.BindKey(glfw.KeyV, ActionToggleVR)
	im.BindKey(glfw.KeyR, ActionResetView)
	im.BindKey(glfw.KeyEqual, ActionZoomIn)
	im.BindKey(glfw.KeyKPAdd, ActionZoomIn)
	im.BindKey(glfw.KeyMinus, ActionZoomOut)
	im.BindKey(glfw.KeyKPSubtract, ActionZoomOut)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.RLock()
	actions := im.keyToActions[key]
	im.mu.RUnlock()
	im.apply(actions, action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent processes a mouse button event and updates internal state
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.RLock()
	actions := im.mouseButtonToActions[button]
	im.mu.RUnlock()
	im.apply(actions, action == glfw.Press)
}

func (im *InputManager) apply(actions []Action, isPressed bool) {
	if len(actions) == 0 {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	for _, act := range actions {
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// PointerButton returns the canvas pointer button a mouse button drives:
// rotate bindings become primary drags, pan bindings secondary drags.
func (im *InputManager) PointerButton(button glfw.MouseButton) (renderer.PointerButton, bool) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	for _, act := range im.mouseButtonToActions[button] {
		switch act {
		case ActionRotate:
			return renderer.ButtonPrimary, true
		case ActionPan:
			return renderer.ButtonSecondary, true
		}
	}
	return 0, false
}

// PostUpdate clears the per-frame edge flags. Call once at the end of each frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	for i := range ActionCount {
		im.justPressed[i] = false
	}
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}
