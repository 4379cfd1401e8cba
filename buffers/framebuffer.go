package buffers

import (
	"fmt"

	"github.com/bloeys/glsteps/glerr"
	"github.com/bloeys/glsteps/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type FramebufferAttachmentType int32

const (
	FramebufferAttachmentType_Unknown FramebufferAttachmentType = iota
	FramebufferAttachmentType_Texture
	FramebufferAttachmentType_Renderbuffer
)

func (f FramebufferAttachmentType) IsValid() bool {

	switch f {
	case FramebufferAttachmentType_Texture:
		fallthrough
	case FramebufferAttachmentType_Renderbuffer:
		return true

	default:
		return false
	}
}

type FramebufferAttachmentDataFormat int32

const (
	FramebufferAttachmentDataFormat_Unknown FramebufferAttachmentDataFormat = iota
	FramebufferAttachmentDataFormat_RGBA8
	// SRGBA stores sRGB encoded colors. With GL_FRAMEBUFFER_SRGB enabled, linear shader
	// output is encoded on write, so reading back gives the same bytes as the screen.
	FramebufferAttachmentDataFormat_SRGBA
)

func (f FramebufferAttachmentDataFormat) IsColorFormat() bool {
	return f == FramebufferAttachmentDataFormat_RGBA8 ||
		f == FramebufferAttachmentDataFormat_SRGBA
}

func (f FramebufferAttachmentDataFormat) GlInternalFormat() int32 {

	switch f {
	case FramebufferAttachmentDataFormat_RGBA8:
		return gl.RGBA8
	case FramebufferAttachmentDataFormat_SRGBA:
		return gl.SRGB8_ALPHA8
	default:
		logging.ErrLog.Fatalf("unknown framebuffer attachment data format. Format=%d\n", f)
		return 0
	}
}

func (f FramebufferAttachmentDataFormat) GlFormat() uint32 {

	switch f {
	case FramebufferAttachmentDataFormat_RGBA8:
		fallthrough
	case FramebufferAttachmentDataFormat_SRGBA:
		return gl.RGBA

	default:
		logging.ErrLog.Fatalf("unknown framebuffer attachment data format. Format=%d\n", f)
		return 0
	}
}

type FramebufferAttachment struct {
	Id     uint32
	Type   FramebufferAttachmentType
	Format FramebufferAttachmentDataFormat
}

type Framebuffer struct {
	Id                    uint32
	Attachments           []FramebufferAttachment
	ColorAttachmentsCount uint32
	Width                 uint32
	Height                uint32
}

func (fbo *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo.Id)
}

func (fbo *Framebuffer) BindWithViewport() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo.Id)
	gl.Viewport(0, 0, int32(fbo.Width), int32(fbo.Height))
}

func (fbo *Framebuffer) UnBind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (fbo *Framebuffer) UnBindWithViewport(width, height uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// IsComplete returns true if OpenGL reports that the fbo is complete/usable.
// Note that this function binds and then unbinds the fbo
func (fbo *Framebuffer) IsComplete() bool {
	fbo.Bind()
	isComplete := gl.CheckFramebufferStatus(gl.FRAMEBUFFER) == gl.FRAMEBUFFER_COMPLETE
	fbo.UnBind()
	return isComplete
}

func (fbo *Framebuffer) HasColorAttachment() bool {
	return fbo.ColorAttachmentsCount > 0
}

func (fbo *Framebuffer) NewColorAttachment(
	attachType FramebufferAttachmentType,
	attachFormat FramebufferAttachmentDataFormat,
) error {

	if fbo.ColorAttachmentsCount == 8 {
		return fmt.Errorf("failed creating color attachment for framebuffer due it already having %d attached", fbo.ColorAttachmentsCount)
	}

	if !attachType.IsValid() {
		return fmt.Errorf("failed creating color attachment for framebuffer due to unknown attachment type. Type=%d", attachType)
	}

	if !attachFormat.IsColorFormat() {
		return fmt.Errorf("failed creating color attachment for framebuffer due to attachment data format not being a valid color type. Data format=%d", attachFormat)
	}

	a := FramebufferAttachment{
		Type:   attachType,
		Format: attachFormat,
	}

	fbo.Bind()
	defer fbo.UnBind()

	if attachType == FramebufferAttachmentType_Texture {

		// Create texture
		gl.GenTextures(1, &a.Id)
		if a.Id == 0 {
			return fmt.Errorf("failed to generate texture for framebuffer. GlError=%d", gl.GetError())
		}

		gl.BindTexture(gl.TEXTURE_2D, a.Id)
		gl.TexImage2D(gl.TEXTURE_2D, 0, attachFormat.GlInternalFormat(), int32(fbo.Width), int32(fbo.Height), 0, attachFormat.GlFormat(), gl.UNSIGNED_BYTE, nil)

		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.BindTexture(gl.TEXTURE_2D, 0)

		// Attach to fbo
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0+fbo.ColorAttachmentsCount, gl.TEXTURE_2D, a.Id, 0)

	} else if attachType == FramebufferAttachmentType_Renderbuffer {

		// Create rbo
		gl.GenRenderbuffers(1, &a.Id)
		if a.Id == 0 {
			return fmt.Errorf("failed to generate render buffer for framebuffer. GlError=%d", gl.GetError())
		}

		gl.BindRenderbuffer(gl.RENDERBUFFER, a.Id)
		gl.RenderbufferStorage(gl.RENDERBUFFER, uint32(attachFormat.GlInternalFormat()), int32(fbo.Width), int32(fbo.Height))
		gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

		// Attach to fbo
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0+fbo.ColorAttachmentsCount, gl.RENDERBUFFER, a.Id)
	}

	if err := glerr.Check("Framebuffer.NewColorAttachment"); err != nil {
		return err
	}

	fbo.ColorAttachmentsCount++
	fbo.Attachments = append(fbo.Attachments, a)
	return nil
}

// ReadPixels reads the first color attachment as tightly packed RGBA8 rows,
// ordered top row first like image.RGBA.Pix
func (fbo *Framebuffer) ReadPixels() ([]byte, error) {

	if !fbo.HasColorAttachment() {
		return nil, fmt.Errorf("framebuffer %d has no color attachment to read from", fbo.Id)
	}

	pixels := make([]byte, fbo.Width*fbo.Height*4)

	fbo.Bind()
	defer fbo.UnBind()

	err := glerr.Call("Framebuffer.ReadPixels", func() {
		gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
		gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
		gl.ReadPixels(0, 0, int32(fbo.Width), int32(fbo.Height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))
	})
	if err != nil {
		return nil, err
	}

	// OpenGL returns the bottom row first
	FlipRows(pixels, int(fbo.Width)*4, int(fbo.Height))
	return pixels, nil
}

// FlipRows reverses the order of the rows of an image in place
func FlipRows(pixels []byte, rowSizeBytes, rowCount int) {

	tmp := make([]byte, rowSizeBytes)
	for top, bottom := 0, rowCount-1; top < bottom; top, bottom = top+1, bottom-1 {

		topRow := pixels[top*rowSizeBytes : (top+1)*rowSizeBytes]
		bottomRow := pixels[bottom*rowSizeBytes : (bottom+1)*rowSizeBytes]

		copy(tmp, topRow)
		copy(topRow, bottomRow)
		copy(bottomRow, tmp)
	}
}

func (fbo *Framebuffer) Delete() {

	if fbo.Id == 0 {
		return
	}

	for i := 0; i < len(fbo.Attachments); i++ {

		a := &fbo.Attachments[i]
		if a.Type == FramebufferAttachmentType_Texture {
			gl.DeleteTextures(1, &a.Id)
		} else {
			gl.DeleteRenderbuffers(1, &a.Id)
		}
	}

	gl.DeleteFramebuffers(1, &fbo.Id)
	fbo.Id = 0
	fbo.Attachments = nil
	fbo.ColorAttachmentsCount = 0
}

func NewFramebuffer(width, height uint32) (Framebuffer, error) {

	// All attachments share the framebuffer size
	fbo := Framebuffer{
		Width:  width,
		Height: height,
	}

	gl.GenFramebuffers(1, &fbo.Id)
	if fbo.Id == 0 {
		return Framebuffer{}, fmt.Errorf("failed to generate framebuffer. GlError=%d", gl.GetError())
	}

	return fbo, nil
}
