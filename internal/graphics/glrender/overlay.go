package glrender

import (
	"strconv"

	"github.com/go-gl/gl/v4.1-core/gl"

	"vrstage/internal/graphics"
	"vrstage/internal/profiling"
	"vrstage/internal/xr"
)

// quad vertices are rewritten per control: 6 verts of pos(2) + uv(2)
const quadFloats = 6 * 4

func (r *Renderer) setupQuad() {
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)

	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, quadFloats*4, nil, gl.DYNAMIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// drawOverlay draws each overlay control as a labelled quad on top of the
// frame.
func (r *Renderer) drawOverlay() {
	if r.overlay == nil {
		return
	}
	ctrls := r.overlay.Controls()
	if len(ctrls) == 0 {
		return
	}
	defer profiling.Track("glrender.drawOverlay")()

	c := r.Canvas()
	cw, ch := c.ClientSize()
	if cw <= 0 || ch <= 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	// label pixels are already sRGB
	if r.gamma {
		gl.Disable(gl.FRAMEBUFFER_SRGB)
		defer gl.Enable(gl.FRAMEBUFFER_SRGB)
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.overlayShader.Use()
	r.overlayShader.SetInt("label", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)

	for _, ctl := range ctrls {
		b := ctl.Bounds()
		if b.Width <= 0 || b.Height <= 0 {
			continue
		}
		gl.BindTexture(gl.TEXTURE_2D, r.labelTexture(ctl.Label(), b))
		verts := quadVertices(b, float64(cw), float64(ch))
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// labelTexture returns a cached texture of text rasterized at b's size.
func (r *Renderer) labelTexture(text string, b xr.Rect) uint32 {
	w, h := int(b.Width), int(b.Height)
	key := text + "@" + strconv.Itoa(w) + "x" + strconv.Itoa(h)
	if tex, ok := r.labels[key]; ok {
		return tex
	}
	tex := UploadRGBA(graphics.RasterizeLabel(text, w, h, graphics.DefaultLabelStyle))
	r.labels[key] = tex
	return tex
}

// quadVertices maps a window-space rect (origin top-left) to NDC triangles.
func quadVertices(b xr.Rect, w, h float64) []float32 {
	x0 := float32(b.X/w*2 - 1)
	x1 := float32((b.X+b.Width)/w*2 - 1)
	y0 := float32(1 - b.Y/h*2)
	y1 := float32(1 - (b.Y+b.Height)/h*2)
	return []float32{
		x0, y1, 0, 1,
		x1, y1, 1, 1,
		x1, y0, 1, 0,
		x1, y0, 1, 0,
		x0, y0, 0, 0,
		x0, y1, 0, 1,
	}
}
