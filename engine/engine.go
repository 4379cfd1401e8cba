package engine

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/bloeys/glsteps/assert"
	"github.com/bloeys/glsteps/logging"
	"github.com/bloeys/glsteps/renderer"
	"github.com/bloeys/glsteps/timing"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	isInited       = false
	isRunning      = false
	currentBackend = Backend_Unknown
)

type Backend int

const (
	Backend_Unknown Backend = iota
	Backend_SDL
	Backend_GLFW
)

func ParseBackend(s string) (Backend, error) {

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sdl", "sdl2":
		return Backend_SDL, nil
	case "glfw":
		return Backend_GLFW, nil
	default:
		return Backend_Unknown, fmt.Errorf("unknown window backend '%s'. Must be 'sdl' or 'glfw'", s)
	}
}

func (b Backend) String() string {

	switch b {
	case Backend_SDL:
		return "sdl"
	case Backend_GLFW:
		return "glfw"
	default:
		return "unknown"
	}
}

// Window is an OS window with a current OpenGL context.
// All methods must be called from the thread that called Init.
type Window interface {
	// PollEvents feeds pending window events into the input package
	PollEvents()
	SwapBuffers()
	// DrawableSize is the size of the framebuffer in pixels, which can differ from the window size on high DPI screens
	DrawableSize() (width, height int32)
	SetTitle(title string)
	// OnResize registers a callback fired with the new drawable size. The viewport is already updated when it runs.
	OnResize(cb func(width, height int32))
	Destroy() error
}

type WindowOptions struct {
	Title     string
	Width     int32
	Height    int32
	Resizable bool
	VSync     bool
	MSAA      bool
	SRGB      bool
}

type Game interface {
	Init()
	Update()
	Render()
	FrameEnd()
	DeInit()
}

// Init locks the calling goroutine to its OS thread and initializes the window backend.
// OpenGL contexts are bound to a thread, so every GL call must happen on this goroutine.
func Init(backend Backend) error {

	runtime.LockOSThread()
	timing.Init()

	var err error
	switch backend {
	case Backend_SDL:
		err = initSDL()
	case Backend_GLFW:
		err = initGLFW()
	default:
		err = fmt.Errorf("unknown window backend '%d'", backend)
	}

	if err != nil {
		return err
	}

	isInited = true
	currentBackend = backend
	return nil
}

func DeInit() {

	if !isInited {
		return
	}

	switch currentBackend {
	case Backend_SDL:
		deInitSDL()
	case Backend_GLFW:
		deInitGLFW()
	}

	isInited = false
	currentBackend = Backend_Unknown
}

func CreateOpenGLWindowCentered(opts WindowOptions) (Window, error) {

	assert.T(isInited, "engine.Init() was not called!")

	var (
		win Window
		err error
	)

	switch currentBackend {
	case Backend_SDL:
		win, err = createSDLWindow(opts)
	case Backend_GLFW:
		win, err = createGLFWWindow(opts)
	}

	if err != nil {
		return nil, err
	}

	if err := initOpenGL(opts); err != nil {
		win.Destroy()
		return nil, err
	}

	// Get rid of the blinding white startup screen (unfortunately there is still one frame of white)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
	win.SwapBuffers()

	return win, nil
}

func initOpenGL(opts WindowOptions) error {

	if err := gl.Init(); err != nil {
		return err
	}

	logging.InfoLog.Printf("OpenGL version: %s; Renderer: %s\n", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	SetMSAA(opts.MSAA)
	SetSrgbFramebuffer(opts.SRGB)

	gl.ClearColor(0, 0, 0, 1)

	return nil
}

func SetSrgbFramebuffer(isEnabled bool) {

	if isEnabled {
		gl.Enable(gl.FRAMEBUFFER_SRGB)
	} else {
		gl.Disable(gl.FRAMEBUFFER_SRGB)
	}
}

func SetMSAA(isEnabled bool) {

	if isEnabled {
		gl.Enable(gl.MULTISAMPLE)
	} else {
		gl.Disable(gl.MULTISAMPLE)
	}
}

// Run runs the main loop until Quit is called
func Run(g Game, w Window, rend renderer.Render) {

	isRunning = true
	g.Init()

	for isRunning {

		timing.FrameStarted()

		w.PollEvents()
		g.Update()

		rend.Clear()
		g.Render()
		rend.FrameEnd()
		g.FrameEnd()

		w.SwapBuffers()
		timing.FrameEnded()
	}

	g.DeInit()
}

func Quit() {
	isRunning = false
}

func IsRunning() bool {
	return isRunning
}
