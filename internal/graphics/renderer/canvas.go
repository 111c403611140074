package renderer

// Element is a host region with a displayed size.
type Element interface {
	ClientSize() (width, height int)
}

// PointerKind identifies a pointer event.
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerWheel
)

// PointerButton identifies which button a pointer event concerns.
type PointerButton uint8

const (
	ButtonPrimary PointerButton = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is pointer input delivered to a canvas, in canvas-local
// logical pixels.
type PointerEvent struct {
	Kind   PointerKind
	Button PointerButton
	X, Y   float64
	// WheelY is the vertical scroll amount for PointerWheel, positive up.
	WheelY float64
}

// Canvas is the raster surface a renderer draws into. Width and Height are
// the backing pixel size; ClientWidth and ClientHeight are the displayed
// size in logical pixels.
type Canvas struct {
	Width, Height             int
	ClientWidth, ClientHeight int

	parent    Element
	listeners []pointerListener
	nextID    uint32
}

type pointerListener struct {
	id uint32
	fn func(PointerEvent)
}

// NewCanvas creates a canvas of the given size attached to parent. The
// displayed size starts equal to the backing size.
func NewCanvas(width, height int, parent Element) *Canvas {
	return &Canvas{
		Width:        width,
		Height:       height,
		ClientWidth:  width,
		ClientHeight: height,
		parent:       parent,
	}
}

// Parent returns the element the canvas is mounted in, or nil.
func (c *Canvas) Parent() Element {
	return c.parent
}

// SetParent mounts the canvas in parent.
func (c *Canvas) SetParent(parent Element) {
	c.parent = parent
}

// ClientSize returns the displayed size.
func (c *Canvas) ClientSize() (int, int) {
	return c.ClientWidth, c.ClientHeight
}

// AddPointerListener registers fn for every pointer event dispatched to the
// canvas and returns a function that unregisters it.
func (c *Canvas) AddPointerListener(fn func(PointerEvent)) (remove func()) {
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, pointerListener{id: id, fn: fn})
	return func() {
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// DispatchPointer delivers ev to every listener in registration order.
func (c *Canvas) DispatchPointer(ev PointerEvent) {
	ls := append([]pointerListener(nil), c.listeners...)
	for _, l := range ls {
		l.fn(ev)
	}
}

// NumPointerListeners returns how many listeners are registered.
func (c *Canvas) NumPointerListeners() int {
	return len(c.listeners)
}
