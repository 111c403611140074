package renderer

import (
	"errors"
	"testing"

	"vrstage/internal/graphics"
	"vrstage/internal/scene"
)

type fixedElement struct{ w, h int }

func (e fixedElement) ClientSize() (int, int) { return e.w, e.h }

func TestNullCreatesCanvas(t *testing.T) {
	r, err := NewNull(Options{})
	if err != nil {
		t.Fatal(err)
	}
	c := r.Canvas()
	if c == nil {
		t.Fatal("Canvas() = nil")
	}
	if c.Width != 300 || c.Height != 150 {
		t.Errorf("default canvas = %dx%d, want 300x150", c.Width, c.Height)
	}
	if c.Parent() != nil {
		t.Error("created canvas should be unmounted")
	}
}

func TestNullReusesCanvas(t *testing.T) {
	parent := fixedElement{640, 480}
	canvas := NewCanvas(640, 480, parent)
	r, _ := NewNull(Options{Canvas: canvas})
	if r.Canvas() != canvas {
		t.Error("renderer should draw into the supplied canvas")
	}
}

func TestSetSizeAppliesPixelRatio(t *testing.T) {
	r, _ := NewNull(Options{})
	r.SetPixelRatio(2)
	r.SetSize(400, 300)

	c := r.Canvas()
	if c.Width != 800 || c.Height != 600 {
		t.Errorf("backing = %dx%d, want 800x600", c.Width, c.Height)
	}
	w, h := c.ClientSize()
	if w != 400 || h != 300 {
		t.Errorf("client = %dx%d, want 400x300", w, h)
	}
	if calls := r.(*Null).SetSizeCalls; len(calls) != 1 || calls[0] != (Size{400, 300}) {
		t.Errorf("SetSizeCalls = %v", calls)
	}
}

func TestSetPixelRatioRejectsNonPositive(t *testing.T) {
	r, _ := NewNull(Options{})
	r.SetPixelRatio(0)
	if r.PixelRatio() != 1 {
		t.Errorf("PixelRatio = %v, want 1", r.PixelRatio())
	}
}

func TestNullRender(t *testing.T) {
	r, _ := NewNull(Options{})
	s := scene.New()
	cam := graphics.NewCamera(70, 1, 0.1, 100)
	if err := r.Render(s, cam); err != nil {
		t.Fatal(err)
	}
	n := r.(*Null)
	if n.RenderCalls != 1 || n.LastScene != s || n.LastCamera != cam {
		t.Errorf("render not recorded: %+v", n)
	}

	boom := errors.New("boom")
	n.RenderErr = boom
	if err := r.Render(s, cam); !errors.Is(err, boom) {
		t.Errorf("Render = %v, want %v", err, boom)
	}
}

func TestCanvasPointerListeners(t *testing.T) {
	c := NewCanvas(10, 10, nil)
	var got []PointerKind
	remove := c.AddPointerListener(func(ev PointerEvent) { got = append(got, ev.Kind) })
	c.DispatchPointer(PointerEvent{Kind: PointerDown})
	remove()
	c.DispatchPointer(PointerEvent{Kind: PointerUp})

	if len(got) != 1 || got[0] != PointerDown {
		t.Errorf("received = %v, want [PointerDown]", got)
	}
	if c.NumPointerListeners() != 0 {
		t.Errorf("NumPointerListeners = %d, want 0", c.NumPointerListeners())
	}
}
