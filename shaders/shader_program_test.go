package shaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShaderCalls struct {
	detached []uint32
	deleted  []uint32
}

func useFakeShaderCalls(t *testing.T) *fakeShaderCalls {

	calls := &fakeShaderCalls{}
	oldDetach, oldDelete := glDetachShader, glDeleteShader

	glDetachShader = func(program, shader uint32) { calls.detached = append(calls.detached, shader) }
	glDeleteShader = func(shader uint32) { calls.deleted = append(calls.deleted, shader) }

	t.Cleanup(func() {
		glDetachShader = oldDetach
		glDeleteShader = oldDelete
	})

	return calls
}

func TestLinkWithoutFragmentDeletesAttachedShaders(t *testing.T) {

	calls := useFakeShaderCalls(t)

	sp := ShaderProgram{Id: 7, VertShaderId: 3, GeomShaderId: 9}
	err := sp.Link()
	require.ErrorContains(t, err, "fragment")

	assert.Equal(t, []uint32{3, 9}, calls.detached)
	assert.Equal(t, []uint32{3, 9}, calls.deleted)
	assert.Zero(t, sp.VertShaderId)
	assert.Zero(t, sp.GeomShaderId)
}

func TestLinkWithoutVertexDeletesAttachedShaders(t *testing.T) {

	calls := useFakeShaderCalls(t)

	sp := ShaderProgram{Id: 7, FragShaderId: 4}
	err := sp.Link()
	require.ErrorContains(t, err, "vertex")

	assert.Equal(t, []uint32{4}, calls.deleted)
	assert.Zero(t, sp.FragShaderId)
}

func TestDeleteShadersAfterFailedStage(t *testing.T) {

	calls := useFakeShaderCalls(t)

	// Vertex stage compiled and attached, fragment stage failed to compile
	sp := ShaderProgram{Id: 2, VertShaderId: 5}
	sp.deleteShaders()
	sp.deleteShaders()

	assert.Equal(t, []uint32{5}, calls.detached)
	assert.Equal(t, []uint32{5}, calls.deleted)
}
