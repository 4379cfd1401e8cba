// Package lessons holds the tutorial steps. Every lesson draws the same quad,
// each one hiding a bit more of the raw OpenGL calls behind the wrappers of the
// buffers, shaders, materials and renderer packages.
package lessons

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glsteps/config"
	"github.com/bloeys/glsteps/materials"
	"github.com/bloeys/glsteps/renderer"
)

type Lesson interface {
	// Name is the short id used on the command line and in config files
	Name() string
	Title() string

	// Init creates the GL objects of the lesson. Called on the GL thread with a current context.
	Init(ctx *Context) error
	Update(ctx *Context)
	Render(ctx *Context)

	// ShaderPaths lists the shader files the lesson loaded, empty for inline shaders
	ShaderPaths() []string
	// Reload recompiles the shaders in ShaderPaths. On failure the old shaders are kept.
	Reload() error

	Delete()
}

// Context is what lessons get from the app every frame
type Context struct {
	Cfg  *config.Config
	Rend renderer.Render

	Width  int32
	Height int32

	// Animate makes the red channel of the quad color bounce between 0 and 1
	Animate bool
	Ramp    ColorRamp
}

func NewContext(cfg *config.Config, rend renderer.Render, width, height int32) *Context {
	return &Context{
		Cfg:     cfg,
		Rend:    rend,
		Width:   width,
		Height:  height,
		Animate: cfg.Quad.Animate,
		Ramp:    NewColorRamp(float32(cfg.Quad.Color[0])/255, cfg.Quad.AnimateSpeed),
	}
}

func (c *Context) Resize(width, height int32) {
	c.Width = width
	c.Height = height
}

// Aspect is width/height of the drawable, or 1 when the size is unknown
func (c *Context) Aspect() float32 {

	if c.Width <= 0 || c.Height <= 0 {
		return 1
	}

	return float32(c.Width) / float32(c.Height)
}

// QuadColor is the configured quad color with the animated red channel applied,
// linearized when drawing into an sRGB framebuffer.
func (c *Context) QuadColor() gglm.Vec4 {

	rgba := [4]uint8(c.Cfg.Quad.Color)
	if c.Animate {
		rgba[0] = c.Ramp.Uint8()
	}

	return materials.ColorFromRGBA8(rgba, c.Cfg.Window.SRGB)
}

// Projection maps the quad's [-1,1] space to the window while keeping it square
func (c *Context) Projection() gglm.Mat4 {
	halfW, halfH := orthoHalfExtents(c.Aspect())
	return gglm.Ortho(-halfW, halfW, -halfH, halfH, -1, 1).Mat4
}

func orthoHalfExtents(aspect float32) (halfW, halfH float32) {

	if aspect >= 1 {
		return aspect, 1
	}

	return 1, 1 / aspect
}

func (c *Context) ShaderPath(fileName string) string {
	return filepath.Join(c.Cfg.Shaders.Dir, fileName)
}

func (c *Context) ModelPath(fileName string) string {
	return filepath.Join(c.Cfg.Models.Dir, fileName)
}

// All returns new instances of every lesson in order
func All() []Lesson {
	return []Lesson{
		&VertexBufferLesson{},
		&IndexBufferLesson{},
		&VertexArrayLesson{},
		&ShaderFileLesson{},
		&LayoutLesson{},
		&MeshLesson{},
	}
}

// Index returns the position of a lesson in All() given its name or 1-based number, or -1
func Index(nameOrNumber string) int {

	s := strings.ToLower(strings.TrimSpace(nameOrNumber))
	all := All()

	if n, err := strconv.Atoi(s); err == nil {

		if n < 1 || n > len(all) {
			return -1
		}

		return n - 1
	}

	for i, l := range all {
		if l.Name() == s {
			return i
		}
	}

	return -1
}

// Find returns a new instance of the lesson with the given name or 1-based number
func Find(nameOrNumber string) (Lesson, error) {

	i := Index(nameOrNumber)
	if i == -1 {
		return nil, fmt.Errorf("unknown lesson '%s'. Valid lessons: %s", nameOrNumber, strings.Join(Names(), ", "))
	}

	return All()[i], nil
}

func Names() []string {

	all := All()
	names := make([]string, len(all))
	for i, l := range all {
		names[i] = l.Name()
	}

	return names
}
