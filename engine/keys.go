package engine

import (
	"github.com/bloeys/glsteps/input"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/veandco/go-sdl2/sdl"
)

var sdlKeys = map[sdl.Keycode]input.Key{
	sdl.K_ESCAPE: input.KeyEscape,
	sdl.K_SPACE:  input.KeySpace,
	sdl.K_RETURN: input.KeyEnter,
	sdl.K_LEFT:   input.KeyLeft,
	sdl.K_RIGHT:  input.KeyRight,
	sdl.K_UP:     input.KeyArrowUp,
	sdl.K_DOWN:   input.KeyArrowDown,
	sdl.K_n:      input.KeyN,
	sdl.K_p:      input.KeyP,
	sdl.K_r:      input.KeyR,
	sdl.K_F12:    input.KeyF12,
	sdl.K_1:      input.Key1,
	sdl.K_2:      input.Key2,
	sdl.K_3:      input.Key3,
	sdl.K_4:      input.Key4,
	sdl.K_5:      input.Key5,
	sdl.K_6:      input.Key6,
	sdl.K_7:      input.Key7,
	sdl.K_8:      input.Key8,
	sdl.K_9:      input.Key9,
}

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyEscape: input.KeyEscape,
	glfw.KeySpace:  input.KeySpace,
	glfw.KeyEnter:  input.KeyEnter,
	glfw.KeyLeft:   input.KeyLeft,
	glfw.KeyRight:  input.KeyRight,
	glfw.KeyUp:     input.KeyArrowUp,
	glfw.KeyDown:   input.KeyArrowDown,
	glfw.KeyN:      input.KeyN,
	glfw.KeyP:      input.KeyP,
	glfw.KeyR:      input.KeyR,
	glfw.KeyF12:    input.KeyF12,
	glfw.Key1:      input.Key1,
	glfw.Key2:      input.Key2,
	glfw.Key3:      input.Key3,
	glfw.Key4:      input.Key4,
	glfw.Key5:      input.Key5,
	glfw.Key6:      input.Key6,
	glfw.Key7:      input.Key7,
	glfw.Key8:      input.Key8,
	glfw.Key9:      input.Key9,
}

func sdlKeyToKey(kc sdl.Keycode) input.Key {
	return sdlKeys[kc]
}

func glfwKeyToKey(k glfw.Key) input.Key {
	return glfwKeys[k]
}
