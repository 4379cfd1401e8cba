package lessons

import (
	"github.com/bloeys/glsteps/glerr"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexBufferLesson draws a red triangle from a single vertex buffer with raw GL calls.
//
// Old tutorials start with glBegin/glEnd here, which doesn't exist in a core profile,
// so the first step already puts the triangle into a buffer.
type VertexBufferLesson struct {
	vao     uint32
	vbo     uint32
	program uint32
}

func (l *VertexBufferLesson) Name() string  { return "vertex-buffer" }
func (l *VertexBufferLesson) Title() string { return "A triangle from a vertex buffer" }

func (l *VertexBufferLesson) Init(ctx *Context) error {

	program, err := createRawProgram(redVertexShader, redFragmentShader)
	if err != nil {
		return err
	}
	l.program = program

	// A core profile has no default vertex array, one must be bound for attribute calls
	gl.GenVertexArrays(1, &l.vao)
	gl.BindVertexArray(l.vao)

	gl.GenBuffers(1, &l.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(TrianglePositions)*4, gl.Ptr(TrianglePositions), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)

	return glerr.Check("VertexBufferLesson.Init")
}

func (l *VertexBufferLesson) Update(ctx *Context) {}

func (l *VertexBufferLesson) Render(ctx *Context) {
	gl.UseProgram(l.program)
	gl.BindVertexArray(l.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
}

func (l *VertexBufferLesson) ShaderPaths() []string { return nil }
func (l *VertexBufferLesson) Reload() error         { return nil }

func (l *VertexBufferLesson) Delete() {
	gl.DeleteProgram(l.program)
	gl.DeleteBuffers(1, &l.vbo)
	gl.DeleteVertexArrays(1, &l.vao)
	*l = VertexBufferLesson{}
}
