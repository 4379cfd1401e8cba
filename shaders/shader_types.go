package shaders

import (
	"strings"

	"github.com/bloeys/glsteps/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type ShaderType int32

func (s ShaderType) ToGl() uint32 {

	switch s {
	case ShaderType_Vertex:
		return gl.VERTEX_SHADER
	case ShaderType_Fragment:
		return gl.FRAGMENT_SHADER
	case ShaderType_Geometry:
		return gl.GEOMETRY_SHADER

	default:
		logging.ErrLog.Fatalf("Unknown shader type '%d'\n", s)
		return 0
	}
}

func (s ShaderType) String() string {

	switch s {
	case ShaderType_Vertex:
		return "vertex"
	case ShaderType_Fragment:
		return "fragment"
	case ShaderType_Geometry:
		return "geometry"
	default:
		return "unknown"
	}
}

// ParseShaderType maps a section name like 'vertex' to its type
func ParseShaderType(s string) ShaderType {

	switch strings.ToLower(s) {
	case "vertex":
		return ShaderType_Vertex
	case "fragment":
		return ShaderType_Fragment
	case "geometry":
		return ShaderType_Geometry
	default:
		return ShaderType_Unknown
	}
}

const (
	ShaderType_Unknown ShaderType = iota
	ShaderType_Vertex
	ShaderType_Fragment
	ShaderType_Geometry
)
