package lessons

import (
	"github.com/bloeys/glsteps/materials"
	"github.com/bloeys/glsteps/meshes"
)

const (
	meshShaderFile = "mesh.shader"
	quadModelFile  = "quad.obj"
)

// MeshLesson loads the quad from a model file instead of writing the vertices by hand
type MeshLesson struct {
	mesh meshes.Mesh
	mat  materials.Material
}

func (l *MeshLesson) Name() string  { return "mesh" }
func (l *MeshLesson) Title() string { return "The quad loaded from a model file" }

func (l *MeshLesson) Init(ctx *Context) error {

	mat, err := materials.NewMaterial("mesh", ctx.ShaderPath(meshShaderFile))
	if err != nil {
		return err
	}

	mesh, err := meshes.NewMesh("quad", ctx.ModelPath(quadModelFile), 0)
	if err != nil {
		mat.Delete()
		return err
	}

	l.mat = mat
	l.mesh = mesh
	return nil
}

func (l *MeshLesson) Update(ctx *Context) {
	l.mat.Color = ctx.QuadColor()
}

func (l *MeshLesson) Render(ctx *Context) {

	mvp := ctx.Projection()

	l.mat.SetUnifMat4(materials.UnifMVP, &mvp)
	ctx.Rend.Draw(&l.mesh.Vao, &l.mat)
}

func (l *MeshLesson) ShaderPaths() []string {
	return []string{l.mat.ShaderPath}
}

func (l *MeshLesson) Reload() error {
	return l.mat.Reload()
}

func (l *MeshLesson) Delete() {
	l.mat.Delete()
	l.mesh.Delete()
}
