package shaders

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glsteps/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Replaced in tests, which run without a GL context
var (
	glDetachShader = gl.DetachShader
	glDeleteShader = gl.DeleteShader
)

type ShaderProgram struct {
	Id           uint32
	VertShaderId uint32
	FragShaderId uint32
	GeomShaderId uint32

	unifLocs map[string]int32
}

func (sp *ShaderProgram) AttachShader(shader Shader) {

	gl.AttachShader(sp.Id, shader.Id)
	switch shader.Type {
	case ShaderType_Vertex:
		sp.VertShaderId = shader.Id
	case ShaderType_Fragment:
		sp.FragShaderId = shader.Id
	case ShaderType_Geometry:
		sp.GeomShaderId = shader.Id
	default:
		logging.ErrLog.Fatalf("Unknown shader type '%d' for shader id '%d'\n", shader.Type, shader.Id)
	}
}

// deleteShaders detaches and deletes every attached stage. A linked program
// keeps working without them.
func (sp *ShaderProgram) deleteShaders() {

	for _, id := range []*uint32{&sp.VertShaderId, &sp.FragShaderId, &sp.GeomShaderId} {

		if *id == 0 {
			continue
		}

		glDetachShader(sp.Id, *id)
		glDeleteShader(*id)
		*id = 0
	}
}

// Link links and validates the program. The attached shaders are deleted
// whether linking succeeds or not, as the program no longer needs them.
func (sp *ShaderProgram) Link() error {

	if sp.VertShaderId == 0 {
		sp.deleteShaders()
		return fmt.Errorf("no valid vertex shader found. Please put '#shader vertex' before your vertex shader")
	}

	if sp.FragShaderId == 0 {
		sp.deleteShaders()
		return fmt.Errorf("no valid fragment shader found. Please put '#shader fragment' before your fragment shader")
	}

	gl.LinkProgram(sp.Id)
	linkErr := getProgramErrors(sp.Id, gl.LINK_STATUS)

	sp.deleteShaders()

	if linkErr != nil {
		logging.ErrLog.Println("Linking of shader program with id ", sp.Id, " failed. Err: ", linkErr)
		return fmt.Errorf("failed to link shader program. Err: %w", linkErr)
	}

	gl.ValidateProgram(sp.Id)
	if err := getProgramErrors(sp.Id, gl.VALIDATE_STATUS); err != nil {
		logging.WarnLog.Println("Validation of shader program with id ", sp.Id, " failed. Err: ", err)
	}

	return nil
}

func (sp *ShaderProgram) Bind() {
	gl.UseProgram(sp.Id)
}

func (sp *ShaderProgram) UnBind() {
	gl.UseProgram(0)
}

func (sp *ShaderProgram) Delete() {

	if sp.Id == 0 {
		return
	}

	gl.DeleteProgram(sp.Id)
	sp.Id = 0
	clear(sp.unifLocs)
}

// GetUnifLoc returns the location of a uniform, caching it after the first lookup.
// Missing uniforms (including ones optimized away by the driver) log a warning once and return -1,
// which OpenGL silently ignores when setting values.
func (sp *ShaderProgram) GetUnifLoc(uniformName string) int32 {

	if sp.unifLocs == nil {
		sp.unifLocs = make(map[string]int32)
	}

	loc, ok := sp.unifLocs[uniformName]
	if ok {
		return loc
	}

	name := gl.Str(uniformName + "\x00")
	loc = gl.GetUniformLocation(sp.Id, name)
	if loc == -1 {
		logging.WarnLog.Printf("Uniform '%s' doesn't exist on shader program with id %d\n", uniformName, sp.Id)
	}

	sp.unifLocs[uniformName] = loc
	return loc
}

func (sp *ShaderProgram) SetUnifInt32(uniformName string, val int32) {
	gl.ProgramUniform1i(sp.Id, sp.GetUnifLoc(uniformName), val)
}

func (sp *ShaderProgram) SetUnifFloat32(uniformName string, val float32) {
	gl.ProgramUniform1f(sp.Id, sp.GetUnifLoc(uniformName), val)
}

func (sp *ShaderProgram) SetUnif4f(uniformName string, x, y, z, w float32) {
	gl.ProgramUniform4f(sp.Id, sp.GetUnifLoc(uniformName), x, y, z, w)
}

func (sp *ShaderProgram) SetUnifVec4(uniformName string, vec4 *gglm.Vec4) {
	gl.ProgramUniform4fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec4.Data[0])
}

func (sp *ShaderProgram) SetUnifMat4(uniformName string, mat4 *gglm.Mat4) {
	gl.ProgramUniformMatrix4fv(sp.Id, sp.GetUnifLoc(uniformName), 1, false, &mat4.Data[0][0])
}
