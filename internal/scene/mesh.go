package scene

import "github.com/go-gl/mathgl/mgl32"

// Mesh is a flat-shaded triangle list. Vertices are interleaved
// position (xyz) and normal (xyz), six floats per vertex.
type Mesh struct {
	Vertices []float32
	Color    Color

	// Handle is owned by the renderer that uploaded the mesh (0 = not uploaded).
	Handle uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 6
}

// unitCube is a 1x1x1 cube centered on the origin, position + normal.
var unitCube = []float32{
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
	0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,
	-0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, 0.5, 0, 1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0,
}

// NewBox creates a node carrying a cube mesh with the given edge length.
func NewBox(name string, size float32, color Color) *Node {
	verts := make([]float32, len(unitCube))
	copy(verts, unitCube)
	for i := 0; i < len(verts); i += 6 {
		verts[i] *= size
		verts[i+1] *= size
		verts[i+2] *= size
	}
	n := NewGroup(name)
	n.Mesh = &Mesh{Vertices: verts, Color: color}
	return n
}

// Spin rotates the node by angle radians around axis, on top of its current rotation.
func (n *Node) Spin(axis mgl32.Vec3, angle float32) {
	n.Rotation = mgl32.QuatRotate(angle, axis.Normalize()).Mul(n.Rotation).Normalize()
}
