package materials

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glsteps/logging"
	"github.com/bloeys/glsteps/shaders"
	"github.com/mandykoh/prism/srgb"
)

var (
	lastMatId uint32
)

const (
	UnifColor = "u_Color"
	UnifMVP   = "u_MVP"
)

type Material struct {
	Id         uint32
	Name       string
	ShaderProg shaders.ShaderProgram

	// ShaderPath is where the shader was loaded from. Empty for materials created from source
	ShaderPath string

	// Color is sent as u_Color when the material is bound
	Color gglm.Vec4
}

func (m *Material) Bind() {
	m.ShaderProg.Bind()
	m.ShaderProg.SetUnifVec4(UnifColor, &m.Color)
}

func (m *Material) UnBind() {
	m.ShaderProg.UnBind()
}

func (m *Material) SetUnifMat4(uniformName string, mat4 *gglm.Mat4) {
	m.ShaderProg.SetUnifMat4(uniformName, mat4)
}

func (m *Material) SetUnifFloat32(uniformName string, val float32) {
	m.ShaderProg.SetUnifFloat32(uniformName, val)
}

// Reload recompiles the material's shader from ShaderPath. If that fails the
// current program is kept and the error returned.
func (m *Material) Reload() error {

	if m.ShaderPath == "" {
		return fmt.Errorf("material '%s' wasn't loaded from a file and can't be reloaded", m.Name)
	}

	newProg, err := shaders.LoadAndCompileCombinedShader(m.ShaderPath)
	if err != nil {
		return fmt.Errorf("failed to reload material '%s' from '%s'. Err: %w", m.Name, m.ShaderPath, err)
	}

	m.ShaderProg.Delete()
	m.ShaderProg = newProg
	logging.InfoLog.Printf("Reloaded material '%s' from '%s'\n", m.Name, m.ShaderPath)
	return nil
}

func (m *Material) Delete() {
	m.ShaderProg.Delete()
}

func getNewMatId() uint32 {
	lastMatId++
	return lastMatId
}

func NewMaterial(matName, shaderPath string) (Material, error) {

	shdrProg, err := shaders.LoadAndCompileCombinedShader(shaderPath)
	if err != nil {
		return Material{}, fmt.Errorf("failed to create new material '%s'. Err: %w", matName, err)
	}

	return Material{
		Id:         getNewMatId(),
		Name:       matName,
		ShaderProg: shdrProg,
		ShaderPath: shaderPath,
		Color:      gglm.NewVec4(1, 1, 1, 1),
	}, nil
}

func NewMaterialSrc(matName string, shaderSrc []byte) (Material, error) {

	shdrProg, err := shaders.LoadAndCompileCombinedShaderSrc(shaderSrc)
	if err != nil {
		return Material{}, fmt.Errorf("failed to create new material '%s'. Err: %w", matName, err)
	}

	return Material{
		Id:         getNewMatId(),
		Name:       matName,
		ShaderProg: shdrProg,
		Color:      gglm.NewVec4(1, 1, 1, 1),
	}, nil
}

// ColorFromRGBA8 converts an 8-bit sRGB color to the float color shaders expect.
//
// When rendering to an sRGB framebuffer the shader output is treated as linear and
// encoded by OpenGL on write, so the color must be linearized first or it will come
// out too bright. Alpha is always linear.
func ColorFromRGBA8(rgba [4]uint8, linearize bool) gglm.Vec4 {

	if !linearize {
		return gglm.NewVec4(
			float32(rgba[0])/255,
			float32(rgba[1])/255,
			float32(rgba[2])/255,
			float32(rgba[3])/255,
		)
	}

	return gglm.NewVec4(
		srgb.From8Bit(rgba[0]),
		srgb.From8Bit(rgba[1]),
		srgb.From8Bit(rgba[2]),
		float32(rgba[3])/255,
	)
}
