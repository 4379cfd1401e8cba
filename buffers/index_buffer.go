package buffers

import (
	"github.com/bloeys/glsteps/glerr"
	"github.com/bloeys/glsteps/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type IndexBuffer struct {
	Id uint32
	// Count is the number of indices in the index buffer. Updated in IndexBuffer.SetData
	Count int32
}

func (ib *IndexBuffer) Bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.Id)
}

// UnBind unbinds the currently bound index buffer.
// If a vertex array is bound it will lose its index buffer, so unbind the vertex array first.
func (ib *IndexBuffer) UnBind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

func (ib *IndexBuffer) SetData(values []uint32) {

	ib.Bind()

	sizeInBytes := len(values) * 4
	ib.Count = int32(len(values))

	glerr.Must("IndexBuffer.SetData", func() {
		if sizeInBytes == 0 {
			gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, gl.Ptr(nil), BufUsage_Static_Draw.ToGL())
		} else {
			gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, sizeInBytes, gl.Ptr(&values[0]), BufUsage_Static_Draw.ToGL())
		}
	})
}

func (ib *IndexBuffer) Delete() {

	if ib.Id == 0 {
		return
	}

	gl.DeleteBuffers(1, &ib.Id)
	ib.Id = 0
	ib.Count = 0
}

func NewIndexBuffer(values []uint32) IndexBuffer {

	ib := IndexBuffer{}

	gl.GenBuffers(1, &ib.Id)
	if ib.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL buffer")
	}

	ib.SetData(values)
	return ib
}
