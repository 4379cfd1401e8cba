package shaders

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bloeys/glsteps/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type Shader struct {
	Id   uint32
	Type ShaderType
}

func (s *Shader) Delete() {
	gl.DeleteShader(s.Id)
	s.Id = 0
}

func NewShaderProgram() (ShaderProgram, error) {

	id := gl.CreateProgram()
	if id == 0 {
		return ShaderProgram{}, errors.New("failed to create shader program")
	}

	return ShaderProgram{Id: id, unifLocs: make(map[string]int32)}, nil
}

func LoadAndCompileCombinedShader(shaderPath string) (ShaderProgram, error) {

	combinedSource, err := os.ReadFile(shaderPath)
	if err != nil {
		logging.ErrLog.Println("Failed to read shader. Err: ", err)
		return ShaderProgram{}, err
	}

	return LoadAndCompileCombinedShaderSrc(combinedSource)
}

func LoadAndCompileCombinedShaderSrc(shaderSrc []byte) (ShaderProgram, error) {

	src, err := ParseShaderSourceBytes(shaderSrc)
	if err != nil {
		return ShaderProgram{}, errors.New("failed to read combined shader. Err: " + err.Error())
	}

	return NewProgramFromSources(src)
}

// NewProgramFromSources compiles every stage in src, links them into a new program
// and deletes the intermediate shader objects
func NewProgramFromSources(src ShaderSources) (ShaderProgram, error) {

	shdrProg, err := NewShaderProgram()
	if err != nil {
		return ShaderProgram{}, errors.New("failed to create new shader program. Err: " + err.Error())
	}

	for t := ShaderType_Vertex; t <= ShaderType_Geometry; t++ {

		stageSrc := *src.get(t)
		if strings.TrimSpace(stageSrc) == "" {
			continue
		}

		shdr, err := CompileShaderOfType([]byte(stageSrc), t)
		if err != nil {
			// Stages compiled before this one are already attached
			shdrProg.deleteShaders()
			shdrProg.Delete()
			return ShaderProgram{}, fmt.Errorf("failed to compile %s shader. Err: %w", t, err)
		}

		shdrProg.AttachShader(shdr)
	}

	if err := shdrProg.Link(); err != nil {
		shdrProg.Delete()
		return ShaderProgram{}, err
	}

	return shdrProg, nil
}

func CompileShaderOfType(shaderSource []byte, shaderType ShaderType) (Shader, error) {

	shaderId := gl.CreateShader(shaderType.ToGl())
	if shaderId == 0 {
		return Shader{}, fmt.Errorf("failed to create OpenGl shader. OpenGl Error=%d", gl.GetError())
	}

	//Load shader source and compile
	shaderCStr, shaderFree := gl.Strs(string(shaderSource) + "\x00")
	defer shaderFree()
	gl.ShaderSource(shaderId, 1, shaderCStr, nil)

	gl.CompileShader(shaderId)
	if err := getShaderCompileErrors(shaderId); err != nil {
		gl.DeleteShader(shaderId)
		return Shader{}, err
	}

	return Shader{Id: shaderId, Type: shaderType}, nil
}

func getShaderCompileErrors(shaderId uint32) error {

	var compiledSuccessfully int32
	gl.GetShaderiv(shaderId, gl.COMPILE_STATUS, &compiledSuccessfully)
	if compiledSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetShaderiv(shaderId, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength)+1))
	gl.GetShaderInfoLog(shaderId, logLength, nil, log)

	errMsg := gl.GoStr(log)
	logging.ErrLog.Println("Compilation of shader with id ", shaderId, " failed. Err: ", errMsg)
	return errors.New(errMsg)
}

func getProgramErrors(programId uint32, status uint32) error {

	var ok int32
	gl.GetProgramiv(programId, status, &ok)
	if ok == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetProgramiv(programId, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength)+1))
	gl.GetProgramInfoLog(programId, logLength, nil, log)

	return errors.New(gl.GoStr(log))
}
