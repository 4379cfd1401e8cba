package lessons

import (
	"github.com/bloeys/glsteps/buffers"
	"github.com/bloeys/glsteps/glerr"
	"github.com/bloeys/glsteps/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

const basicShaderFile = "basic.shader"

// ShaderFileLesson moves the buffers behind their wrappers and loads the
// shader from a single file split by '#shader' markers.
type ShaderFileLesson struct {
	vao  buffers.VertexArray
	vbo  buffers.VertexBuffer
	ibo  buffers.IndexBuffer
	prog shaders.ShaderProgram

	shaderPath string
}

func (l *ShaderFileLesson) Name() string  { return "shader-file" }
func (l *ShaderFileLesson) Title() string { return "Buffer wrappers and a shader file" }

func (l *ShaderFileLesson) Init(ctx *Context) error {

	l.shaderPath = ctx.ShaderPath(basicShaderFile)

	prog, err := shaders.LoadAndCompileCombinedShader(l.shaderPath)
	if err != nil {
		return err
	}
	l.prog = prog

	l.vao = buffers.NewVertexArray()
	l.vao.Bind()

	l.vbo = buffers.NewVertexBuffer(QuadPositions, buffers.BufUsage_Static_Draw)

	// Attributes are still described by hand, layouts come in the next lesson
	glerr.Must("glVertexAttribPointer", func() {
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	})

	l.ibo = buffers.NewIndexBuffer(QuadIndices)
	l.vao.SetIndexBuffer(l.ibo)

	l.vao.UnBind()
	l.vbo.UnBind()

	return nil
}

func (l *ShaderFileLesson) Update(ctx *Context) {}

func (l *ShaderFileLesson) Render(ctx *Context) {

	c := ctx.QuadColor()

	l.prog.Bind()
	l.prog.SetUnifVec4("u_Color", &c)
	l.vao.Bind()

	glerr.Must("glDrawElements", func() {
		gl.DrawElementsWithOffset(gl.TRIANGLES, l.ibo.Count, gl.UNSIGNED_INT, 0)
	})
}

func (l *ShaderFileLesson) ShaderPaths() []string {
	return []string{l.shaderPath}
}

func (l *ShaderFileLesson) Reload() error {

	prog, err := shaders.LoadAndCompileCombinedShader(l.shaderPath)
	if err != nil {
		return err
	}

	l.prog.Delete()
	l.prog = prog
	return nil
}

func (l *ShaderFileLesson) Delete() {
	l.prog.Delete()
	l.ibo.Delete()
	l.vbo.Delete()
	l.vao.Delete()
}
