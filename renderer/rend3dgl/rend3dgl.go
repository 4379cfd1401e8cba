package rend3dgl

import (
	"github.com/bloeys/glsteps/buffers"
	"github.com/bloeys/glsteps/glerr"
	"github.com/bloeys/glsteps/materials"
	"github.com/bloeys/glsteps/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ renderer.Render = &Rend3DGL{}

// Rend3DGL skips binding a vertex array or material that is already bound this frame.
// Anything binding vertex arrays or programs outside of the renderer must call FrameEnd
// (or Invalidate) so the cached state doesn't go stale.
type Rend3DGL struct {
	BoundVaoId uint32
	BoundMatId uint32
	// BoundProgId catches reloaded materials that keep their id but get a new program
	BoundProgId uint32

	DrawCalls int
}

func (r *Rend3DGL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

func (r *Rend3DGL) bind(vao *buffers.VertexArray, mat *materials.Material) {

	if vao.Id != r.BoundVaoId {
		vao.Bind()
		r.BoundVaoId = vao.Id
	}

	if mat.Id != r.BoundMatId || mat.ShaderProg.Id != r.BoundProgId {
		mat.Bind()
		r.BoundMatId = mat.Id
		r.BoundProgId = mat.ShaderProg.Id
	} else {
		// Color may change every frame even when the material is bound
		mat.ShaderProg.SetUnifVec4(materials.UnifColor, &mat.Color)
	}
}

func (r *Rend3DGL) Draw(vao *buffers.VertexArray, mat *materials.Material) {

	r.bind(vao, mat)

	glerr.Must("Rend3DGL.Draw", func() {
		gl.DrawElementsWithOffset(gl.TRIANGLES, vao.IndexBuffer.Count, gl.UNSIGNED_INT, 0)
	})
	r.DrawCalls++
}

func (r *Rend3DGL) DrawArrays(vao *buffers.VertexArray, mat *materials.Material, firstVertex int32, vertexCount int32) {

	r.bind(vao, mat)

	glerr.Must("Rend3DGL.DrawArrays", func() {
		gl.DrawArrays(gl.TRIANGLES, firstVertex, vertexCount)
	})
	r.DrawCalls++
}

// Invalidate forgets the cached bindings so the next draw binds everything again
func (r *Rend3DGL) Invalidate() {
	r.BoundVaoId = 0
	r.BoundMatId = 0
	r.BoundProgId = 0
}

func (r3d *Rend3DGL) FrameEnd() {
	r3d.Invalidate()
	r3d.DrawCalls = 0
}

func NewRend3DGL() *Rend3DGL {
	return &Rend3DGL{}
}
