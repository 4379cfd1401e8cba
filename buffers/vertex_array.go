package buffers

import (
	"github.com/bloeys/glsteps/glerr"
	"github.com/bloeys/glsteps/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type VertexArray struct {
	Id          uint32
	IndexBuffer IndexBuffer

	// nextAttrib is the attribute location the next added buffer starts from
	nextAttrib uint32
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	gl.BindVertexArray(0)
}

// AddBuffer records the layout of vb in the vertex array. Attribute locations continue
// from previously added buffers, so the first buffer with two elements takes
// locations 0 and 1 and the next buffer starts at 2.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout *VertexBufferLayout) {

	// NOTE: VBOs are only bound at 'VertexAttribPointer' (and related) calls

	va.Bind()
	vb.Bind()

	elements := layout.elements
	for i := 0; i < len(elements); i++ {

		e := &elements[i]
		loc := va.nextAttrib + uint32(i)

		glerr.Must("VertexArray.AddBuffer", func() {

			gl.EnableVertexAttribArray(loc)
			if e.IsInteger() && !e.Normalized {
				gl.VertexAttribIPointerWithOffset(loc, e.CompCount(), e.GLType(), layout.stride, uintptr(e.Offset))
			} else {
				gl.VertexAttribPointerWithOffset(loc, e.CompCount(), e.GLType(), e.Normalized, layout.stride, uintptr(e.Offset))
			}
		})
	}

	va.nextAttrib += uint32(len(elements))
}

func (va *VertexArray) SetIndexBuffer(ib IndexBuffer) {
	va.Bind()
	ib.Bind()
	va.IndexBuffer = ib
}

// AttribCount returns how many attribute locations are in use
func (va *VertexArray) AttribCount() uint32 {
	return va.nextAttrib
}

// Delete deletes the vertex array only. Buffers added to it are owned by the caller.
func (va *VertexArray) Delete() {

	if va.Id == 0 {
		return
	}

	gl.DeleteVertexArrays(1, &va.Id)
	va.Id = 0
	va.nextAttrib = 0
}

func NewVertexArray() VertexArray {

	vao := VertexArray{}

	gl.GenVertexArrays(1, &vao.Id)
	if vao.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL vertex array object")
	}

	return vao
}
