package lessons

import (
	"github.com/bloeys/glsteps/glerr"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// IndexBufferLesson draws the quad with glDrawElements, sharing two of the
// four vertices between its triangles. Every GL call is checked.
type IndexBufferLesson struct {
	vao     uint32
	vbo     uint32
	ibo     uint32
	program uint32
}

func (l *IndexBufferLesson) Name() string  { return "index-buffer" }
func (l *IndexBufferLesson) Title() string { return "A quad from an index buffer" }

func (l *IndexBufferLesson) Init(ctx *Context) error {

	program, err := createRawProgram(redVertexShader, redFragmentShader)
	if err != nil {
		return err
	}
	l.program = program

	return glerr.Call("IndexBufferLesson.Init", func() {

		gl.GenVertexArrays(1, &l.vao)
		gl.BindVertexArray(l.vao)

		gl.GenBuffers(1, &l.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(QuadPositions)*4, gl.Ptr(QuadPositions), gl.STATIC_DRAW)

		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)

		gl.GenBuffers(1, &l.ibo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, l.ibo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(QuadIndices)*4, gl.Ptr(QuadIndices), gl.STATIC_DRAW)
	})
}

func (l *IndexBufferLesson) Update(ctx *Context) {}

func (l *IndexBufferLesson) Render(ctx *Context) {

	glerr.Must("glUseProgram", func() { gl.UseProgram(l.program) })
	glerr.Must("glBindVertexArray", func() { gl.BindVertexArray(l.vao) })
	glerr.Must("glDrawElements", func() {
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(QuadIndices)), gl.UNSIGNED_INT, 0)
	})
}

func (l *IndexBufferLesson) ShaderPaths() []string { return nil }
func (l *IndexBufferLesson) Reload() error         { return nil }

func (l *IndexBufferLesson) Delete() {
	gl.DeleteProgram(l.program)
	gl.DeleteBuffers(1, &l.ibo)
	gl.DeleteBuffers(1, &l.vbo)
	gl.DeleteVertexArrays(1, &l.vao)
	*l = IndexBufferLesson{}
}
