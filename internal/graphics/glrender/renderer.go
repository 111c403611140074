// Package glrender draws scenes with OpenGL 4.1 core. A GL context must be
// current on the calling thread before New.
package glrender

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"vrstage/internal/graphics"
	"vrstage/internal/graphics/renderer"
	"vrstage/internal/profiling"
	"vrstage/internal/scene"
	"vrstage/internal/xr"
)

type meshBuffers struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// Renderer is the OpenGL implementation of renderer.Renderer.
type Renderer struct {
	renderer.SizeTracker
	xr      *xr.Manager
	overlay renderer.Overlay
	gamma   bool

	meshShader    *Shader
	overlayShader *Shader
	meshes        map[*scene.Mesh]*meshBuffers

	quadVAO, quadVBO uint32
	labels           map[string]uint32
}

// New initializes GL bindings and builds the shaders. It has the
// renderer.Factory signature.
func New(opts renderer.Options) (renderer.Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init gl: %w", err)
	}

	meshShader, err := NewShader(meshVertexSrc, meshFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	overlayShader, err := NewShader(overlayVertexSrc, overlayFragmentSrc)
	if err != nil {
		meshShader.Delete()
		return nil, fmt.Errorf("overlay shader: %w", err)
	}

	canvas := opts.Canvas
	if canvas == nil {
		canvas = renderer.NewCanvas(300, 150, nil)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	if opts.Antialias {
		gl.Enable(gl.MULTISAMPLE)
	}
	if opts.GammaOutput {
		gl.Enable(gl.FRAMEBUFFER_SRGB)
	}

	r := &Renderer{
		SizeTracker:   renderer.NewSizeTracker(canvas),
		xr:            xr.NewManager(opts.XR),
		overlay:       opts.Overlay,
		gamma:         opts.GammaOutput,
		meshShader:    meshShader,
		overlayShader: overlayShader,
		meshes:        make(map[*scene.Mesh]*meshBuffers),
		labels:        make(map[string]uint32),
	}
	r.setupQuad()
	return r, nil
}

func (r *Renderer) XR() *xr.Manager {
	return r.xr
}

// Render clears the canvas to the scene background and draws every visible
// mesh. While a VR session is presenting the frame is split into a left and
// a right eye viewport.
func (r *Renderer) Render(s *scene.Scene, cam *graphics.Camera) error {
	defer profiling.Track("glrender.Render")()
	c := r.Canvas()

	bg := scene.Color{}
	if s.Background != nil {
		bg = *s.Background
	}
	gl.Viewport(0, 0, int32(c.Width), int32(c.Height))
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if sess := r.xr.Session(); sess != nil {
		half := int32(c.Width / 2)
		eyeCam := *cam
		eyeCam.Aspect = cam.Aspect / 2
		eyeCam.UpdateProjectionMatrix()
		proj := eyeCam.Projection()
		for i, eye := range []xr.Eye{xr.EyeLeft, xr.EyeRight} {
			gl.Viewport(int32(i)*half, 0, half, int32(c.Height))
			offset := sess.EyeOffset(eye)
			view := mgl32.Translate3D(-offset.X(), -offset.Y(), -offset.Z()).Mul4(cam.View())
			r.drawScene(s, proj, view)
		}
		gl.Viewport(0, 0, int32(c.Width), int32(c.Height))
	} else {
		r.drawScene(s, cam.Projection(), cam.View())
	}

	r.drawOverlay()
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

func (r *Renderer) drawScene(s *scene.Scene, proj, view mgl32.Mat4) {
	defer profiling.Track("glrender.drawScene")()
	r.meshShader.Use()
	r.meshShader.SetMatrix4("projection", &proj[0])
	r.meshShader.SetMatrix4("view", &view[0])

	s.Root().Walk(func(n *scene.Node, world mgl32.Mat4) {
		if n.Mesh == nil || n.Mesh.VertexCount() == 0 {
			return
		}
		buf := r.upload(n.Mesh)
		r.meshShader.SetMatrix4("model", &world[0])
		col := n.Mesh.Color
		r.meshShader.SetVector3("color", col.R, col.G, col.B)
		gl.BindVertexArray(buf.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, buf.vertexCount)
	})
	gl.BindVertexArray(0)
}

// upload returns the GPU buffers for m, creating them on first use.
func (r *Renderer) upload(m *scene.Mesh) *meshBuffers {
	if buf, ok := r.meshes[m]; ok {
		return buf
	}
	buf := &meshBuffers{vertexCount: int32(m.VertexCount())}
	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	gl.GenBuffers(1, &buf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	m.Handle = buf.vao
	r.meshes[m] = buf
	return buf
}

// Dispose releases every GL object the renderer created.
func (r *Renderer) Dispose() {
	for m, buf := range r.meshes {
		gl.DeleteBuffers(1, &buf.vbo)
		gl.DeleteVertexArrays(1, &buf.vao)
		m.Handle = 0
	}
	clear(r.meshes)
	for _, tex := range r.labels {
		gl.DeleteTextures(1, &tex)
	}
	clear(r.labels)
	if r.quadVAO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
		gl.DeleteVertexArrays(1, &r.quadVAO)
		r.quadVAO, r.quadVBO = 0, 0
	}
	r.meshShader.Delete()
	r.overlayShader.Delete()
}
