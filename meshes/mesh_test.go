package meshes

import (
	"testing"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
)

func TestInterleave(t *testing.T) {

	pos := []gglm.Vec3{gglm.NewVec3(1, 2, 3), gglm.NewVec3(4, 5, 6)}
	uvs := []gglm.Vec2{gglm.NewVec2(0, 1), gglm.NewVec2(1, 0)}

	out := interleave(arrToInterleave{V3s: pos}, arrToInterleave{V2s: uvs})
	assert.Equal(t, []float32{1, 2, 3, 0, 1, 4, 5, 6, 1, 0}, out)
}

func TestInterleaveLengthMismatch(t *testing.T) {

	pos := []gglm.Vec3{gglm.NewVec3(1, 2, 3)}
	uvs := []gglm.Vec2{gglm.NewVec2(0, 1), gglm.NewVec2(1, 0)}

	assert.Panics(t, func() { interleave(arrToInterleave{V3s: pos}, arrToInterleave{V2s: uvs}) })
}

func TestFlattenFacesOffsetsByBaseVertex(t *testing.T) {

	faces := make([]asig.Face, 2)
	faces[0].Indices = append(faces[0].Indices, 0, 1, 2)
	faces[1].Indices = append(faces[1].Indices, 2, 3, 0)

	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0}, flattenFaces(faces, 0))
	assert.Equal(t, []uint32{4, 5, 6, 6, 7, 4}, flattenFaces(faces, 4))
}

func TestV3sToV2s(t *testing.T) {

	v2s := v3sToV2s([]gglm.Vec3{gglm.NewVec3(0.25, 0.75, 9)})
	assert.Equal(t, [2]float32{0.25, 0.75}, v2s[0].Data)
}

func TestLayout(t *testing.T) {

	l := Layout()
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, int32(20), l.Stride())
}
