package lessons

import (
	"github.com/bloeys/glsteps/buffers"
	"github.com/bloeys/glsteps/materials"
)

const quadShaderFile = "quad.shader"

// LayoutLesson is the fully wrapped version: the vertex format is described by a
// layout, the shader lives in a material and the renderer issues the draw.
type LayoutLesson struct {
	vao buffers.VertexArray
	vbo buffers.VertexBuffer
	ibo buffers.IndexBuffer
	mat materials.Material
}

func (l *LayoutLesson) Name() string  { return "layout" }
func (l *LayoutLesson) Title() string { return "Vertex layouts, materials and a renderer" }

// QuadLayout is a vec2 position followed by a normalized RGBA8 tint
func QuadLayout() buffers.VertexBufferLayout {

	layout := buffers.NewVertexBufferLayout(buffers.DataTypeVec2)
	layout.PushNormalized(buffers.DataTypeUint8Vec4)
	return layout
}

func (l *LayoutLesson) Init(ctx *Context) error {

	mat, err := materials.NewMaterial("quad", ctx.ShaderPath(quadShaderFile))
	if err != nil {
		return err
	}
	l.mat = mat

	l.vao = buffers.NewVertexArray()

	l.vbo = buffers.NewVertexBuffer(nil, buffers.BufUsage_Static_Draw)
	l.vbo.SetBytes(QuadVertexBytes(), buffers.BufUsage_Static_Draw)

	layout := QuadLayout()
	l.vao.AddBuffer(&l.vbo, &layout)

	l.ibo = buffers.NewIndexBuffer(QuadIndices)
	l.vao.SetIndexBuffer(l.ibo)

	l.vao.UnBind()
	l.vbo.UnBind()

	return nil
}

func (l *LayoutLesson) Update(ctx *Context) {
	l.mat.Color = ctx.QuadColor()
}

func (l *LayoutLesson) Render(ctx *Context) {

	mvp := ctx.Projection()

	l.mat.SetUnifMat4(materials.UnifMVP, &mvp)
	ctx.Rend.Draw(&l.vao, &l.mat)
}

func (l *LayoutLesson) ShaderPaths() []string {
	return []string{l.mat.ShaderPath}
}

func (l *LayoutLesson) Reload() error {
	return l.mat.Reload()
}

func (l *LayoutLesson) Delete() {
	l.mat.Delete()
	l.ibo.Delete()
	l.vbo.Delete()
	l.vao.Delete()
}
