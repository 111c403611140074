// Package scene holds the 3D scene graph the renderers draw: a root node,
// groups with local transforms, optional meshes and a background color.
package scene

// Scene is the top-level object a renderer draws.
type Scene struct {
	root *Node

	// Background clears the frame when set; nil leaves the renderer's
	// default clear color.
	Background *Color
}

// New creates a scene with a pre-created root group.
func New() *Scene {
	return &Scene{root: NewGroup("root")}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Add attaches node directly under the root.
func (s *Scene) Add(node *Node) {
	s.root.AddChild(node)
}

// SetBackground sets the clear color.
func (s *Scene) SetBackground(c Color) {
	s.Background = &c
}
