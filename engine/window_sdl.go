package engine

import (
	"github.com/bloeys/glsteps/input"
	"github.com/bloeys/glsteps/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

type sdlWindow struct {
	SDLWin *sdl.Window
	GlCtx  sdl.GLContext

	resizeCallbacks []func(width, height int32)
}

func (w *sdlWindow) PollEvents() {

	input.EventLoopStart()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {

		switch e := event.(type) {

		case *sdl.KeyboardEvent:
			input.HandleKeyEvent(sdlKeyToKey(e.Keysym.Sym), e.Type == sdl.KEYDOWN, e.Repeat != 0)

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w.handleWindowResize()
			}

		case *sdl.QuitEvent:
			input.HandleQuitEvent()
		}
	}
}

func (w *sdlWindow) handleWindowResize() {

	fbWidth, fbHeight := w.SDLWin.GLGetDrawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	gl.Viewport(0, 0, fbWidth, fbHeight)
	for i := 0; i < len(w.resizeCallbacks); i++ {
		w.resizeCallbacks[i](fbWidth, fbHeight)
	}
}

func (w *sdlWindow) SwapBuffers() {
	w.SDLWin.GLSwap()
}

func (w *sdlWindow) DrawableSize() (width, height int32) {
	return w.SDLWin.GLGetDrawableSize()
}

func (w *sdlWindow) SetTitle(title string) {
	w.SDLWin.SetTitle(title)
}

func (w *sdlWindow) OnResize(cb func(width, height int32)) {
	w.resizeCallbacks = append(w.resizeCallbacks, cb)
}

func (w *sdlWindow) Destroy() error {
	sdl.GLDeleteContext(w.GlCtx)
	return w.SDLWin.Destroy()
}

func initSDL() error {

	err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	sdl.ShowCursor(1)

	sdl.GLSetAttribute(sdl.MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.MINOR_VERSION, 1)

	sdl.GLSetAttribute(sdl.GL_RED_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_FRAMEBUFFER_SRGB_CAPABLE, 1)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	return nil
}

func deInitSDL() {
	sdl.Quit()
}

func createSDLWindow(opts WindowOptions) (*sdlWindow, error) {

	// Allows us to do MSAA. Must be set before the window is created
	if opts.MSAA {
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, 4)
	} else {
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 0)
		sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, 0)
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI)
	if opts.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	sdlWin, err := sdl.CreateWindow(opts.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, opts.Width, opts.Height, flags)
	if err != nil {
		return nil, err
	}

	win := &sdlWindow{
		SDLWin: sdlWin,
	}

	win.GlCtx, err = sdlWin.GLCreateContext()
	if err != nil {
		sdlWin.Destroy()
		return nil, err
	}

	swapInterval := 0
	if opts.VSync {
		swapInterval = 1
	}

	if err := sdl.GLSetSwapInterval(swapInterval); err != nil {
		logging.WarnLog.Println("Failed to set vsync. Err: ", err)
	}

	return win, nil
}
