package system

import "vrstage/internal/graphics/renderer"

// HeadlessHost is a window-less Host with a settable viewport. Controls
// are kept but never drawn.
type HeadlessHost struct {
	width, height int
	ratio         float64
	controls      []renderer.Control
	resize        []func(width, height int)
}

func NewHeadlessHost(width, height int) *HeadlessHost {
	return &HeadlessHost{width: width, height: height, ratio: 1}
}

func (h *HeadlessHost) ViewportSize() (int, int) {
	return h.width, h.height
}

func (h *HeadlessHost) DevicePixelRatio() float64 {
	return h.ratio
}

// SetDevicePixelRatio changes the reported ratio. Contexts pick it up at setup
// and on the next Resize.
func (h *HeadlessHost) SetDevicePixelRatio(ratio float64) {
	if ratio > 0 {
		h.ratio = ratio
	}
}

func (h *HeadlessHost) NewContainer() renderer.Element {
	return headlessContainer{h}
}

func (h *HeadlessHost) OnResize(fn func(width, height int)) func() {
	h.resize = append(h.resize, fn)
	idx := len(h.resize) - 1
	return func() { h.resize[idx] = nil }
}

func (h *HeadlessHost) AppendControl(c renderer.Control) {
	c.Layout(h.width, h.height)
	h.controls = append(h.controls, c)
}

func (h *HeadlessHost) Controls() []renderer.Control {
	return h.controls
}

// Resize changes the viewport and notifies resize listeners.
func (h *HeadlessHost) Resize(width, height int) {
	h.width, h.height = width, height
	for _, c := range h.controls {
		c.Layout(width, height)
	}
	for _, fn := range h.resize {
		if fn != nil {
			fn(width, height)
		}
	}
}

type headlessContainer struct{ h *HeadlessHost }

func (c headlessContainer) ClientSize() (int, int) {
	return c.h.width, c.h.height
}
