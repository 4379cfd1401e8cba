package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/bloeys/glsteps/buffers"
	"github.com/bloeys/glsteps/logging"
)

// capture renders the current lesson again into an off-screen framebuffer of the
// window's size and saves it as a PNG
func (g *Game) capture(path string) error {

	w, h := g.Win.DrawableSize()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("can't capture a window of size %dx%d", w, h)
	}

	fbo, err := buffers.NewFramebuffer(uint32(w), uint32(h))
	if err != nil {
		return err
	}
	defer fbo.Delete()

	format := buffers.FramebufferAttachmentDataFormat_RGBA8
	if g.Cfg.Window.SRGB {
		format = buffers.FramebufferAttachmentDataFormat_SRGBA
	}

	if err := fbo.NewColorAttachment(buffers.FramebufferAttachmentType_Texture, format); err != nil {
		return err
	}

	if !fbo.IsComplete() {
		return fmt.Errorf("capture framebuffer of size %dx%d is incomplete", w, h)
	}

	fbo.BindWithViewport()
	g.Rend.Invalidate()
	g.Rend.Clear()
	g.Lesson.Render(g.Ctx)
	fbo.UnBindWithViewport(uint32(w), uint32(h))
	g.Rend.Invalidate()

	pixels, err := fbo.ReadPixels()
	if err != nil {
		return err
	}

	if err := writePNG(path, pixels, int(w), int(h)); err != nil {
		return err
	}

	logging.InfoLog.Printf("Saved capture of lesson '%s' to '%s'\n", g.Lesson.Name(), path)
	return nil
}

// writePNG writes top-down RGBA8 pixels to path
func writePNG(path string, pixels []byte, width, height int) error {

	if len(pixels) != width*height*4 {
		return fmt.Errorf("expected %d bytes of pixels for a %dx%d image, got %d", width*height*4, width, height, len(pixels))
	}

	img := &image.NRGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode '%s'. Err: %w", path, err)
	}

	return f.Close()
}
