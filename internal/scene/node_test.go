package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGroupDefaults(t *testing.T) {
	n := NewGroup("stage")
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Scale = %v, want (1,1,1)", n.Scale)
	}
	if n.Rotation != mgl32.QuatIdent() {
		t.Errorf("Rotation = %v, want identity", n.Rotation)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewGroup("p1")
	p2 := NewGroup("p2")
	child := NewGroup("child")

	p1.AddChild(child)
	p2.AddChild(child)

	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 || child.Parent != p2 {
		t.Error("child should belong to p2")
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	a.AddChild(b)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for cycle")
		}
	}()
	b.AddChild(a)
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil child")
		}
	}()
	NewGroup("a").AddChild(nil)
}

func TestRemoveChild(t *testing.T) {
	p := NewGroup("p")
	c := NewGroup("c")
	p.AddChild(c)
	p.RemoveChild(c)
	if c.Parent != nil || p.NumChildren() != 0 {
		t.Error("child should be detached")
	}
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a node that is not a child")
		}
	}()
	NewGroup("p").RemoveChild(NewGroup("c"))
}

func TestAncestorsOrder(t *testing.T) {
	s := New()
	rot := NewGroup("rot")
	pos := NewGroup("pos")
	stage := NewGroup("stage")
	s.Add(rot)
	rot.AddChild(pos)
	pos.AddChild(stage)

	got := stage.Ancestors()
	want := []*Node{pos, rot, s.Root()}
	if len(got) != len(want) {
		t.Fatalf("len(Ancestors) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ancestors[%d] = %q, want %q", i, got[i].Name, want[i].Name)
		}
	}
}

func TestWorldMatrixComposes(t *testing.T) {
	parent := NewGroup("parent")
	parent.Position = mgl32.Vec3{1, 0, 0}
	parent.Rotation = mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0})
	child := NewGroup("child")
	child.Position = mgl32.Vec3{0, 0, 1}
	parent.AddChild(child)

	p := child.WorldMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	// Rotating (0,0,1) by +90deg around Y gives (1,0,0); then offset by parent.
	want := mgl32.Vec3{2, 0, 0}
	if !p.Vec3().ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("child origin = %v, want %v", p.Vec3(), want)
	}
}

func TestWalkSkipsHidden(t *testing.T) {
	root := NewGroup("root")
	shown := NewGroup("shown")
	hidden := NewGroup("hidden")
	hidden.Visible = false
	under := NewGroup("under")
	root.AddChild(shown)
	root.AddChild(hidden)
	hidden.AddChild(under)

	var names []string
	root.Walk(func(n *Node, _ mgl32.Mat4) { names = append(names, n.Name) })
	if len(names) != 2 || names[0] != "root" || names[1] != "shown" {
		t.Errorf("walk order = %v, want [root shown]", names)
	}
}

func TestNewBoxScalesVertices(t *testing.T) {
	box := NewBox("box", 2, ColorFromHex(0xff0000))
	if box.Mesh == nil {
		t.Fatal("box has no mesh")
	}
	if n := box.Mesh.VertexCount(); n != 36 {
		t.Errorf("VertexCount = %d, want 36", n)
	}
	if x := box.Mesh.Vertices[0]; x != -1 {
		t.Errorf("first x = %v, want -1", x)
	}
	// normals stay unit length
	if nz := box.Mesh.Vertices[5]; nz != 1 {
		t.Errorf("first normal z = %v, want 1", nz)
	}
}
