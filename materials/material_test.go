package materials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFromRGBA8(t *testing.T) {

	c := ColorFromRGBA8([4]uint8{255, 0, 51, 128}, false)
	assert.InDelta(t, 1.0, c.Data[0], 1e-6)
	assert.InDelta(t, 0.0, c.Data[1], 1e-6)
	assert.InDelta(t, 0.2, c.Data[2], 1e-6)
	assert.InDelta(t, 128.0/255, c.Data[3], 1e-6)
}

func TestColorFromRGBA8Linearized(t *testing.T) {

	c := ColorFromRGBA8([4]uint8{255, 0, 128, 64}, true)

	// The ends of the range are unchanged
	assert.InDelta(t, 1.0, c.Data[0], 1e-4)
	assert.InDelta(t, 0.0, c.Data[1], 1e-4)

	// sRGB 128 is about 0.216 in linear
	assert.InDelta(t, 0.216, c.Data[2], 0.002)

	// Alpha isn't gamma encoded
	assert.InDelta(t, 64.0/255, c.Data[3], 1e-6)
}

func TestReloadNeedsPath(t *testing.T) {

	m := Material{Name: "from source"}
	assert.Error(t, m.Reload())
}

func TestMatIdsAreUnique(t *testing.T) {

	a := getNewMatId()
	b := getNewMatId()
	assert.NotEqual(t, a, b)
}
