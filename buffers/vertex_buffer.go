package buffers

import (
	"github.com/bloeys/glsteps/glerr"
	"github.com/bloeys/glsteps/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type VertexBuffer struct {
	Id uint32
	// SizeBytes is the size of the last upload. Updated in VertexBuffer.SetData
	SizeBytes int
}

func (vb *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.Id)
}

func (vb *VertexBuffer) UnBind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (vb *VertexBuffer) SetData(values []float32, usage BufUsage) {

	vb.Bind()

	sizeInBytes := len(values) * 4
	vb.SizeBytes = sizeInBytes

	glerr.Must("VertexBuffer.SetData", func() {
		if sizeInBytes == 0 {
			gl.BufferData(gl.ARRAY_BUFFER, 0, gl.Ptr(nil), usage.ToGL())
		} else {
			gl.BufferData(gl.ARRAY_BUFFER, sizeInBytes, gl.Ptr(&values[0]), usage.ToGL())
		}
	})
}

// SetBytes uploads raw vertex data, for vertices that mix floats with other
// types (e.g. RGBA8 colors)
func (vb *VertexBuffer) SetBytes(data []byte, usage BufUsage) {

	vb.Bind()
	vb.SizeBytes = len(data)

	glerr.Must("VertexBuffer.SetBytes", func() {
		if len(data) == 0 {
			gl.BufferData(gl.ARRAY_BUFFER, 0, gl.Ptr(nil), usage.ToGL())
		} else {
			gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(&data[0]), usage.ToGL())
		}
	})
}

func (vb *VertexBuffer) Delete() {

	if vb.Id == 0 {
		return
	}

	gl.DeleteBuffers(1, &vb.Id)
	vb.Id = 0
	vb.SizeBytes = 0
}

func NewVertexBuffer(values []float32, usage BufUsage) VertexBuffer {

	vb := VertexBuffer{}

	gl.GenBuffers(1, &vb.Id)
	if vb.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL buffer")
	}

	vb.SetData(values, usage)
	return vb
}
