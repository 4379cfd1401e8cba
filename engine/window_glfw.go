package engine

import (
	"github.com/bloeys/glsteps/input"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type glfwWindow struct {
	GLFWWin *glfw.Window

	resizeCallbacks []func(width, height int32)
}

// PollEvents processes pending events. Key and resize events arrive through the callbacks
// registered in createGLFWWindow while glfw.PollEvents runs.
func (w *glfwWindow) PollEvents() {

	input.EventLoopStart()
	glfw.PollEvents()

	if w.GLFWWin.ShouldClose() {
		input.HandleQuitEvent()
		w.GLFWWin.SetShouldClose(false)
	}
}

func (w *glfwWindow) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	input.HandleKeyEvent(glfwKeyToKey(key), action != glfw.Release, action == glfw.Repeat)
}

func (w *glfwWindow) framebufferSizeCallback(_ *glfw.Window, width, height int) {

	if width <= 0 || height <= 0 {
		return
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	for i := 0; i < len(w.resizeCallbacks); i++ {
		w.resizeCallbacks[i](int32(width), int32(height))
	}
}

func (w *glfwWindow) SwapBuffers() {
	w.GLFWWin.SwapBuffers()
}

func (w *glfwWindow) DrawableSize() (width, height int32) {
	fbWidth, fbHeight := w.GLFWWin.GetFramebufferSize()
	return int32(fbWidth), int32(fbHeight)
}

func (w *glfwWindow) SetTitle(title string) {
	w.GLFWWin.SetTitle(title)
}

func (w *glfwWindow) OnResize(cb func(width, height int32)) {
	w.resizeCallbacks = append(w.resizeCallbacks, cb)
}

func (w *glfwWindow) Destroy() error {
	w.GLFWWin.Destroy()
	return nil
}

func initGLFW() error {
	return glfw.Init()
}

func deInitGLFW() {
	glfw.Terminate()
}

func boolToGlfw(b bool) int {
	if b {
		return glfw.True
	}

	return glfw.False
}

func createGLFWWindow(opts WindowOptions) (*glfwWindow, error) {

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	glfw.WindowHint(glfw.RedBits, 8)
	glfw.WindowHint(glfw.GreenBits, 8)
	glfw.WindowHint(glfw.BlueBits, 8)
	glfw.WindowHint(glfw.AlphaBits, 8)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.StencilBits, 8)
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)

	glfw.WindowHint(glfw.Resizable, boolToGlfw(opts.Resizable))
	if opts.MSAA {
		glfw.WindowHint(glfw.Samples, 4)
	}

	glfwWin, err := glfw.CreateWindow(int(opts.Width), int(opts.Height), opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}

	if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
		if mode := monitor.GetVideoMode(); mode != nil {
			glfwWin.SetPos((mode.Width-int(opts.Width))/2, (mode.Height-int(opts.Height))/2)
		}
	}

	glfwWin.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	win := &glfwWindow{
		GLFWWin: glfwWin,
	}

	glfwWin.SetKeyCallback(win.keyCallback)
	glfwWin.SetFramebufferSizeCallback(win.framebufferSizeCallback)

	return win, nil
}
