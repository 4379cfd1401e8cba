package renderer

import (
	"github.com/bloeys/glsteps/buffers"
	"github.com/bloeys/glsteps/materials"
)

type Render interface {
	Clear()
	// Draw issues an indexed draw of every index in the vertex array's index buffer
	Draw(vao *buffers.VertexArray, mat *materials.Material)
	DrawArrays(vao *buffers.VertexArray, mat *materials.Material, firstVertex int32, vertexCount int32)
	FrameEnd()
}
