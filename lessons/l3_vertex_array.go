package lessons

import (
	"github.com/bloeys/glsteps/glerr"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexArrayLesson is the index buffer quad with the vertex array doing the
// bookkeeping between draws, and its color coming from a u_Color uniform.
type VertexArrayLesson struct {
	vao     uint32
	vbo     uint32
	ibo     uint32
	program uint32

	colorLoc int32
}

func (l *VertexArrayLesson) Name() string  { return "vertex-array" }
func (l *VertexArrayLesson) Title() string { return "A vertex array and a color uniform" }

func (l *VertexArrayLesson) Init(ctx *Context) error {

	program, err := createRawProgram(redVertexShader, uniformColorFragmentShader)
	if err != nil {
		return err
	}
	l.program = program

	glerr.Must("glGetUniformLocation", func() {
		l.colorLoc = gl.GetUniformLocation(l.program, gl.Str("u_Color\x00"))
	})

	return glerr.Call("VertexArrayLesson.Init", func() {

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

		// The vertex array remembers the attribute setup and the element buffer,
		// so binding it again in Render is enough
		gl.BindVertexArray(0)
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
		gl.UseProgram(0)
	})
}

func (l *VertexArrayLesson) Update(ctx *Context) {}

func (l *VertexArrayLesson) Render(ctx *Context) {

	c := ctx.QuadColor()

	glerr.Must("glUseProgram", func() { gl.UseProgram(l.program) })
	glerr.Must("glUniform4f", func() { gl.Uniform4f(l.colorLoc, c.Data[0], c.Data[1], c.Data[2], c.Data[3]) })
	glerr.Must("glBindVertexArray", func() { gl.BindVertexArray(l.vao) })
	glerr.Must("glDrawElements", func() {
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(QuadIndices)), gl.UNSIGNED_INT, 0)
	})
}

func (l *VertexArrayLesson) ShaderPaths() []string { return nil }
func (l *VertexArrayLesson) Reload() error         { return nil }

func (l *VertexArrayLesson) Delete() {
	gl.DeleteProgram(l.program)
	gl.DeleteBuffers(1, &l.ibo)
	gl.DeleteBuffers(1, &l.vbo)
	gl.DeleteVertexArrays(1, &l.vao)
	*l = VertexArrayLesson{}
}
