package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bloeys/glsteps/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pressKey(k input.Key) {
	input.EventLoopStart()
	input.HandleKeyEvent(k, true, false)
}

func TestNextLessonIndex(t *testing.T) {

	t.Cleanup(input.ClearKeyboardState)

	input.EventLoopStart()
	assert.Equal(t, 2, nextLessonIndex(2, 6))

	pressKey(input.KeyRight)
	assert.Equal(t, 3, nextLessonIndex(2, 6))

	pressKey(input.KeyN)
	assert.Equal(t, 0, nextLessonIndex(5, 6))

	pressKey(input.KeyLeft)
	assert.Equal(t, 5, nextLessonIndex(0, 6))

	pressKey(input.KeyP)
	assert.Equal(t, 1, nextLessonIndex(2, 6))

	pressKey(input.Key4)
	assert.Equal(t, 3, nextLessonIndex(0, 6))

	// Numbers past the last lesson are ignored
	pressKey(input.Key8)
	assert.Equal(t, 1, nextLessonIndex(1, 6))

	// A held key only switches once
	input.EventLoopStart()
	input.HandleKeyEvent(input.KeyRight, true, true)
	assert.Equal(t, 1, nextLessonIndex(1, 6))
}

func TestWritePNG(t *testing.T) {

	path := filepath.Join(t.TempDir(), "out.png")

	// 2x1: red then half transparent blue
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 128,
	}
	require.NoError(t, writePNG(path, pixels, 2, 1))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())

	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})

	_, _, _, a = img.At(1, 0).RGBA()
	assert.Equal(t, uint32(128*0x101), a)

	assert.Error(t, writePNG(path, pixels, 3, 1))
}
