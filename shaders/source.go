package shaders

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// ShaderSources holds the sources of each stage found in a combined shader file
type ShaderSources struct {
	Vertex   string
	Fragment string
	Geometry string
}

func (s *ShaderSources) get(t ShaderType) *string {

	switch t {
	case ShaderType_Vertex:
		return &s.Vertex
	case ShaderType_Fragment:
		return &s.Fragment
	case ShaderType_Geometry:
		return &s.Geometry
	default:
		return nil
	}
}

// Section markers. A line holding a marker starts a new section
// and every following line belongs to it, e.g.:
//
//	#shader vertex
//	...
//	#shader fragment
//	...
//
// The '//shader:vertex' form is accepted as well.
const (
	sectionMarker         = "#shader"
	combinedSectionMarker = "//shader:"
)

// sectionType returns the section type named by line, and false if the line isn't a section marker
func sectionType(line string) (typeName string, isMarker bool) {

	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, sectionMarker) {
		return strings.TrimSpace(trimmed[len(sectionMarker):]), true
	}

	if strings.HasPrefix(trimmed, combinedSectionMarker) {
		return strings.TrimSpace(trimmed[len(combinedSectionMarker):]), true
	}

	return "", false
}

// ParseShaderSource splits a combined shader into its stages.
// Repeated sections of the same type are concatenated in order.
func ParseShaderSource(r io.Reader) (ShaderSources, error) {

	var (
		src         ShaderSources
		builders    [ShaderType_Geometry + 1]strings.Builder
		currentType = ShaderType_Unknown
		lineNum     = 0
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {

		lineNum++
		line := scanner.Text()

		if typeName, isMarker := sectionType(line); isMarker {

			currentType = ParseShaderType(typeName)
			if currentType == ShaderType_Unknown {
				return ShaderSources{}, fmt.Errorf("unknown shader type '%s' on line %d. Must be one of: vertex, fragment, geometry", typeName, lineNum)
			}

			continue
		}

		if currentType == ShaderType_Unknown {

			// Whitespace before the first section is fine
			if len(strings.TrimSpace(line)) == 0 {
				continue
			}

			return ShaderSources{}, fmt.Errorf("shader source on line %d is outside of any section. Please put '#shader vertex' or '#shader fragment' before it", lineNum)
		}

		builders[currentType].WriteString(line)
		builders[currentType].WriteByte('\n')
	}

	if err := scanner.Err(); err != nil {
		return ShaderSources{}, err
	}

	for t := ShaderType_Vertex; t <= ShaderType_Geometry; t++ {
		*src.get(t) = builders[t].String()
	}

	if strings.TrimSpace(src.Vertex) == "" {
		return ShaderSources{}, fmt.Errorf("no valid vertex shader found. Please put '#shader vertex' before your vertex shader")
	}

	if strings.TrimSpace(src.Fragment) == "" {
		return ShaderSources{}, fmt.Errorf("no valid fragment shader found. Please put '#shader fragment' before your fragment shader")
	}

	return src, nil
}

func ParseShaderSourceBytes(b []byte) (ShaderSources, error) {
	return ParseShaderSource(bytes.NewReader(b))
}

func ParseShaderFile(path string) (ShaderSources, error) {

	f, err := os.Open(path)
	if err != nil {
		return ShaderSources{}, fmt.Errorf("failed to open shader file '%s'. Err: %w", path, err)
	}
	defer f.Close()

	src, err := ParseShaderSource(f)
	if err != nil {
		return ShaderSources{}, fmt.Errorf("failed to parse shader file '%s'. Err: %w", path, err)
	}

	return src, nil
}
