package lessons

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Inline shaders of the first lessons, before shaders moved into files

const redVertexShader = `#version 410 core

layout(location = 0) in vec4 position;

void main()
{
	gl_Position = position;
}
`

const redFragmentShader = `#version 410 core

layout(location = 0) out vec4 color;

void main()
{
	color = vec4(1.0, 0.0, 0.0, 1.0);
}
`

const uniformColorFragmentShader = `#version 410 core

layout(location = 0) out vec4 color;

uniform vec4 u_Color;

void main()
{
	color = u_Color;
}
`

// compileRawShader is the plain GL version of shaders.CompileShaderOfType
func compileRawShader(shaderType uint32, src string) (uint32, error) {

	id := gl.CreateShader(shaderType)

	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(id, 1, csrc, nil)
	free()

	gl.CompileShader(id)

	var result int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &result)
	if result == gl.TRUE {
		return id, nil
	}

	var length int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &length)

	log := gl.Str(strings.Repeat("\x00", int(length)+1))
	gl.GetShaderInfoLog(id, length, nil, log)
	gl.DeleteShader(id)

	return 0, fmt.Errorf("failed to compile shader. Err: %s", gl.GoStr(log))
}

// createRawProgram compiles, links and validates a vertex+fragment program using plain GL calls
func createRawProgram(vertexSrc, fragmentSrc string) (uint32, error) {

	vs, err := compileRawShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileRawShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var linked int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &linked)
	if linked != gl.TRUE {

		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)

		log := gl.Str(strings.Repeat("\x00", int(length)+1))
		gl.GetProgramInfoLog(program, length, nil, log)
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program. Err: %s", gl.GoStr(log))
	}

	gl.ValidateProgram(program)

	// Shaders stay alive until detached from a linked program
	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)

	return program, nil
}
