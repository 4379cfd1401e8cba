package engine

import (
	"testing"

	"github.com/bloeys/glsteps/buffers"
	"github.com/bloeys/glsteps/input"
	"github.com/bloeys/glsteps/materials"
	"github.com/bloeys/glsteps/timing"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestParseBackend(t *testing.T) {

	b, err := ParseBackend("SDL")
	require.NoError(t, err)
	assert.Equal(t, Backend_SDL, b)

	b, err = ParseBackend(" glfw ")
	require.NoError(t, err)
	assert.Equal(t, Backend_GLFW, b)
	assert.Equal(t, "glfw", b.String())

	_, err = ParseBackend("metal")
	assert.Error(t, err)
}

func TestKeyMapsAgree(t *testing.T) {

	assert.Equal(t, len(sdlKeys), len(glfwKeys))

	assert.Equal(t, input.KeyEscape, sdlKeyToKey(sdl.K_ESCAPE))
	assert.Equal(t, input.KeyEscape, glfwKeyToKey(glfw.KeyEscape))
	assert.Equal(t, input.Key6, sdlKeyToKey(sdl.K_6))
	assert.Equal(t, input.Key6, glfwKeyToKey(glfw.Key6))

	assert.Equal(t, input.KeyUnknown, sdlKeyToKey(sdl.K_F1))
	assert.Equal(t, input.KeyUnknown, glfwKeyToKey(glfw.KeyF1))

	// Every input key reachable from one backend is reachable from the other
	fromGlfw := make(map[input.Key]bool)
	for _, k := range glfwKeys {
		fromGlfw[k] = true
	}

	for _, k := range sdlKeys {
		assert.True(t, fromGlfw[k], "key %d missing from glfw map", k)
	}
}

type fakeGame struct {
	updates int
	calls   []string
}

func (g *fakeGame) Init()     { g.calls = append(g.calls, "init") }
func (g *fakeGame) Render()   { g.calls = append(g.calls, "render") }
func (g *fakeGame) FrameEnd() { g.calls = append(g.calls, "frameEnd") }
func (g *fakeGame) DeInit()   { g.calls = append(g.calls, "deInit") }
func (g *fakeGame) Update() {
	g.calls = append(g.calls, "update")
	g.updates++
	if g.updates == 2 {
		Quit()
	}
}

type fakeWindow struct {
	polls, swaps int
}

func (w *fakeWindow) PollEvents()                        { w.polls++ }
func (w *fakeWindow) SwapBuffers()                       { w.swaps++ }
func (w *fakeWindow) DrawableSize() (int32, int32)       { return 1, 1 }
func (w *fakeWindow) SetTitle(string)                    {}
func (w *fakeWindow) OnResize(func(width, height int32)) {}
func (w *fakeWindow) Destroy() error                     { return nil }

type fakeRend struct {
	clears, frameEnds int
}

func (r *fakeRend) Clear()                                         { r.clears++ }
func (r *fakeRend) Draw(*buffers.VertexArray, *materials.Material) {}
func (r *fakeRend) DrawArrays(*buffers.VertexArray, *materials.Material, int32, int32) {
}
func (r *fakeRend) FrameEnd() { r.frameEnds++ }

func TestRunLoopOrder(t *testing.T) {

	timing.Init()

	g := &fakeGame{}
	w := &fakeWindow{}
	r := &fakeRend{}

	Run(g, w, r)

	assert.False(t, IsRunning())
	assert.Equal(t, 2, w.polls)
	assert.Equal(t, 2, w.swaps)
	assert.Equal(t, 2, r.clears)
	assert.Equal(t, 2, r.frameEnds)
	assert.Equal(t, []string{
		"init",
		"update", "render", "frameEnd",
		"update", "render", "frameEnd",
		"deInit",
	}, g.calls)
	assert.Equal(t, uint64(2), timing.FrameCount())
}
