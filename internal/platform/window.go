// Package platform hosts render contexts in a glfw window: it sizes
// containers to the window, forwards pointer input to the canvas, draws
// on-screen controls through the renderer overlay and pumps frames.
package platform

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"vrstage/internal/graphics/renderer"
	"vrstage/internal/input"
	"vrstage/internal/profiling"
)

// Window is a glfw window acting as render host and frame driver. Create it
// after glfw.Init on the main thread.
type Window struct {
	win   *glfw.Window
	input *input.InputManager
	log   *slog.Logger

	resize   []resizeListener
	nextID   uint32
	controls []renderer.Control
	target   *renderer.Canvas
	handlers map[input.Action][]func()

	cursorX, cursorY float64
	// dragging is set while a press that started on the canvas is held
	dragging bool
}

type resizeListener struct {
	id uint32
	fn func(width, height int)
}

// container is the window's client area.
type container struct{ w *Window }

func (c container) ClientSize() (int, int) {
	return c.w.ViewportSize()
}

// NewWindow opens a window with an OpenGL 4.1 core context and makes the
// context current.
func NewWindow(title string, width, height int, im *input.InputManager, log *slog.Logger) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, 4)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()
	// the app paces frames with its own limiter
	glfw.SwapInterval(0)

	if im == nil {
		im = input.NewInputManager()
	}
	if log == nil {
		log = slog.Default()
	}
	w := &Window{
		win:      win,
		input:    im,
		log:      log,
		handlers: make(map[input.Action][]func()),
	}
	w.installCallbacks()
	return w, nil
}

func (w *Window) ViewportSize() (int, int) {
	return w.win.GetSize()
}

// DevicePixelRatio returns framebuffer pixels per window unit. It is 1 where
// window sizes are already in pixels and 2 on a Retina display.
func (w *Window) DevicePixelRatio() float64 {
	fbWidth, _ := w.win.GetFramebufferSize()
	width, _ := w.win.GetSize()
	return pixelRatio(fbWidth, width)
}

func pixelRatio(fbWidth, width int) float64 {
	if fbWidth <= 0 || width <= 0 {
		return 1
	}
	return float64(fbWidth) / float64(width)
}

func (w *Window) NewContainer() renderer.Element {
	return container{w: w}
}

func (w *Window) OnResize(fn func(width, height int)) func() {
	w.nextID++
	id := w.nextID
	w.resize = append(w.resize, resizeListener{id: id, fn: fn})
	return func() {
		for i, l := range w.resize {
			if l.id == id {
				w.resize = append(w.resize[:i], w.resize[i+1:]...)
				return
			}
		}
	}
}

func (w *Window) AppendControl(c renderer.Control) {
	width, height := w.ViewportSize()
	c.Layout(width, height)
	w.controls = append(w.controls, c)
}

// Controls returns the appended controls. It makes Window a renderer.Overlay.
func (w *Window) Controls() []renderer.Control {
	return w.controls
}

// SetPointerTarget routes pointer input that misses every control to c.
func (w *Window) SetPointerTarget(c *renderer.Canvas) {
	w.target = c
}

// OnAction registers fn to run at the end of a frame in which action was
// pressed.
func (w *Window) OnAction(action input.Action, fn func()) {
	w.handlers[action] = append(w.handlers[action], fn)
}

// Running reports whether the window is still open.
func (w *Window) Running() bool {
	return !w.win.ShouldClose()
}

// Close asks the frame loop to stop after the current frame.
func (w *Window) Close() {
	w.win.SetShouldClose(true)
}

// EndFrame presents the frame, pumps events and runs action handlers.
func (w *Window) EndFrame() {
	func() { defer profiling.Track("glfw.SwapBuffers")(); w.win.SwapBuffers() }()
	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	if w.input.JustPressed(input.ActionQuit) {
		w.Close()
	}
	for action, fns := range w.handlers {
		if !w.input.JustPressed(action) {
			continue
		}
		for _, fn := range fns {
			fn()
		}
	}
	w.input.PostUpdate()
}

// Destroy closes the window.
func (w *Window) Destroy() {
	w.win.Destroy()
}

func (w *Window) installCallbacks() {
	// The framebuffer callback also fires when only the content scale
	// changes, which a size callback would miss.
	w.win.SetFramebufferSizeCallback(func(win *glfw.Window, _, _ int) {
		width, height := win.GetSize()
		for _, c := range w.controls {
			c.Layout(width, height)
		}
		ls := append([]resizeListener(nil), w.resize...)
		for _, l := range ls {
			l.fn(width, height)
		}
	})

	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		w.input.HandleKeyEvent(key, action)
	})

	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.cursorX, w.cursorY = x, y
		w.dispatch(renderer.PointerEvent{Kind: renderer.PointerMove, X: x, Y: y})
	})

	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		w.input.HandleMouseButtonEvent(button, action)
		w.handleButton(button, action)
	})

	w.win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.dispatch(renderer.PointerEvent{
			Kind: renderer.PointerWheel, X: w.cursorX, Y: w.cursorY, WheelY: yoff,
		})
	})
}

func (w *Window) handleButton(button glfw.MouseButton, action glfw.Action) {
	if action == glfw.Press && !w.dragging {
		for _, c := range w.controls {
			if !c.Bounds().Contains(w.cursorX, w.cursorY) {
				continue
			}
			if button == glfw.MouseButtonLeft {
				if err := c.Click(); err != nil {
					w.log.Warn("control click failed", "label", c.Label(), "err", err)
				}
			}
			return
		}
	}

	pb, ok := w.input.PointerButton(button)
	if !ok {
		return
	}
	kind := renderer.PointerUp
	if action == glfw.Press {
		kind = renderer.PointerDown
		w.dragging = true
	} else {
		w.dragging = false
	}
	w.dispatch(renderer.PointerEvent{Kind: kind, Button: pb, X: w.cursorX, Y: w.cursorY})
}

func (w *Window) dispatch(ev renderer.PointerEvent) {
	if w.target != nil {
		w.target.DispatchPointer(ev)
	}
}
