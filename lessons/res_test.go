package lessons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bloeys/glsteps/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resDir = "../res"

func TestShippedShadersParse(t *testing.T) {

	for _, name := range []string{basicShaderFile, quadShaderFile, meshShaderFile} {

		src, err := shaders.ParseShaderFile(filepath.Join(resDir, "shaders", name))
		require.NoError(t, err, name)
		assert.Contains(t, src.Vertex, "#version 410 core", name)
		assert.Contains(t, src.Fragment, "u_Color", name)
		assert.Empty(t, src.Geometry, name)
	}

	src, err := shaders.ParseShaderFile(filepath.Join(resDir, "shaders", quadShaderFile))
	require.NoError(t, err)
	assert.Contains(t, src.Vertex, "u_MVP")
}

func TestShippedModelExists(t *testing.T) {
	_, err := os.Stat(filepath.Join(resDir, "models", quadModelFile))
	assert.NoError(t, err)
}
