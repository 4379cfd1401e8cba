package buffers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlipRows(t *testing.T) {

	// 3 rows of 2 bytes each
	pixels := []byte{1, 1, 2, 2, 3, 3}
	FlipRows(pixels, 2, 3)
	assert.Equal(t, []byte{3, 3, 2, 2, 1, 1}, pixels)

	even := []byte{1, 2, 3, 4}
	FlipRows(even, 2, 2)
	assert.Equal(t, []byte{3, 4, 1, 2}, even)

	single := []byte{9, 8, 7, 6}
	FlipRows(single, 4, 1)
	assert.Equal(t, []byte{9, 8, 7, 6}, single)
}

func TestAttachmentFormats(t *testing.T) {

	assert.True(t, FramebufferAttachmentDataFormat_RGBA8.IsColorFormat())
	assert.True(t, FramebufferAttachmentDataFormat_SRGBA.IsColorFormat())
	assert.False(t, FramebufferAttachmentDataFormat_Unknown.IsColorFormat())

	assert.True(t, FramebufferAttachmentType_Renderbuffer.IsValid())
	assert.False(t, FramebufferAttachmentType_Unknown.IsValid())
}

func TestReadPixelsNeedsColorAttachment(t *testing.T) {

	fbo := Framebuffer{Id: 3, Width: 2, Height: 2}
	_, err := fbo.ReadPixels()
	assert.Error(t, err)
}
