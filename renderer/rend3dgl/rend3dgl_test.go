package rend3dgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameEndResetsState(t *testing.T) {

	r := NewRend3DGL()
	r.BoundVaoId = 4
	r.BoundMatId = 2
	r.BoundProgId = 9
	r.DrawCalls = 3

	r.FrameEnd()

	assert.Equal(t, Rend3DGL{}, *r)
}

func TestInvalidateKeepsDrawCount(t *testing.T) {

	r := NewRend3DGL()
	r.BoundVaoId = 1
	r.DrawCalls = 5

	r.Invalidate()

	assert.Equal(t, uint32(0), r.BoundVaoId)
	assert.Equal(t, 5, r.DrawCalls)
}
