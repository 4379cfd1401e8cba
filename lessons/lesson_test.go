package lessons

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/bloeys/glsteps/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOrder(t *testing.T) {

	assert.Equal(t, []string{
		"vertex-buffer",
		"index-buffer",
		"vertex-array",
		"shader-file",
		"layout",
		"mesh",
	}, Names())

	for _, l := range All() {
		assert.NotEmpty(t, l.Title(), l.Name())
	}
}

func TestAllReturnsNewInstances(t *testing.T) {

	a := All()
	b := All()
	for i := range a {
		assert.NotSame(t, a[i], b[i])
	}
}

func TestIndexAndFind(t *testing.T) {

	assert.Equal(t, 0, Index("1"))
	assert.Equal(t, 5, Index("6"))
	assert.Equal(t, 4, Index("layout"))
	assert.Equal(t, 1, Index(" Index-Buffer "))

	assert.Equal(t, -1, Index("0"))
	assert.Equal(t, -1, Index("7"))
	assert.Equal(t, -1, Index("immediate-mode"))
	assert.Equal(t, -1, Index(""))

	l, err := Find("3")
	require.NoError(t, err)
	assert.Equal(t, "vertex-array", l.Name())

	_, err = Find("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shader-file")
}

func TestQuadGeometry(t *testing.T) {

	require.Len(t, QuadPositions, 8)
	require.Len(t, TrianglePositions, 6)

	// Every index points at an existing vertex and both triangles share the diagonal
	for _, idx := range QuadIndices {
		assert.Less(t, idx, uint32(len(QuadPositions)/2))
	}
	assert.Equal(t, QuadIndices[2], QuadIndices[3])
	assert.Equal(t, QuadIndices[0], QuadIndices[5])

	data := QuadVertexBytes()
	assert.Len(t, data, 4*QuadVertexStride)

	layout := QuadLayout()
	assert.Equal(t, int32(QuadVertexStride), layout.Stride())

	elems := layout.Elements()
	require.Len(t, elems, 2)
	assert.False(t, elems[0].Normalized)
	assert.True(t, elems[1].Normalized)
	assert.Equal(t, 8, elems[1].Offset)

	// Tint bytes follow the position floats of every vertex
	for i := 0; i < 4; i++ {
		tint := data[i*QuadVertexStride+8 : (i+1)*QuadVertexStride]
		assert.Equal(t, QuadVertexTints[i][:], tint)
	}
}

func TestColorRampBounces(t *testing.T) {

	r := NewColorRamp(0, 1)

	assert.InDelta(t, 0.5, r.Step(0.5), 1e-6)
	assert.InDelta(t, 0.25, r.Step(1.25), 1e-6)
	assert.InDelta(t, 0.25, r.Step(0.5), 1e-6)
	assert.InDelta(t, 0.75, r.Step(0.5), 1e-6)

	// Large steps keep the value in range
	r = NewColorRamp(0.2, 10)
	for i := 0; i < 20; i++ {
		v := r.Step(0.37)
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}

	r = NewColorRamp(0.25, -1)
	assert.InDelta(t, 0.75, r.Step(1.5), 1e-6)

	r = NewColorRamp(5, 0)
	assert.Equal(t, float32(1), r.Value)
	assert.Equal(t, uint8(255), r.Uint8())
	assert.Equal(t, float32(1), r.Step(1))
}

func TestColorRampHugeAndNonFiniteSteps(t *testing.T) {

	// Reflecting huge values one bounce at a time never converges in float32
	r := NewColorRamp(0.2, 1e10)
	v := r.Step(0.016)
	assert.GreaterOrEqual(t, v, float32(0))
	assert.LessOrEqual(t, v, float32(1))

	r = NewColorRamp(0.2, 1)
	v = r.Step(3e38)
	assert.GreaterOrEqual(t, v, float32(0))
	assert.LessOrEqual(t, v, float32(1))

	r = NewColorRamp(0.2, float32(math.Inf(1)))
	assert.Equal(t, float32(0.2), r.Step(0.016))

	r = NewColorRamp(0.2, float32(math.NaN()))
	assert.Equal(t, float32(0.2), r.Step(0.016))
}

func TestContext(t *testing.T) {

	cfg := config.Default()
	cfg.Shaders.Dir = "shaders"
	cfg.Models.Dir = "models"
	cfg.Window.SRGB = false
	cfg.Quad.Color = config.Color{0, 128, 255, 255}

	ctx := NewContext(&cfg, nil, 200, 100)
	assert.Equal(t, float32(2), ctx.Aspect())
	assert.Equal(t, filepath.Join("shaders", "quad.shader"), ctx.ShaderPath("quad.shader"))
	assert.Equal(t, filepath.Join("models", "quad.obj"), ctx.ModelPath("quad.obj"))

	ctx.Animate = false
	c := ctx.QuadColor()
	assert.InDelta(t, 0, c.Data[0], 1e-6)
	assert.InDelta(t, 128.0/255, c.Data[1], 1e-6)
	assert.InDelta(t, 1, c.Data[2], 1e-6)

	ctx.Animate = true
	ctx.Ramp.Value = 1
	c = ctx.QuadColor()
	assert.InDelta(t, 1, c.Data[0], 1e-6)

	ctx.Resize(0, 0)
	assert.Equal(t, float32(1), ctx.Aspect())
}

func TestOrthoHalfExtents(t *testing.T) {

	w, h := orthoHalfExtents(2)
	assert.Equal(t, float32(2), w)
	assert.Equal(t, float32(1), h)

	w, h = orthoHalfExtents(0.5)
	assert.Equal(t, float32(1), w)
	assert.Equal(t, float32(2), h)
}
