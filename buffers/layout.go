package buffers

import (
	"github.com/bloeys/glsteps/assert"
)

// VertexBufferLayout describes how the vertices of a vertex buffer are laid out,
// one Element per vertex attribute in the order they appear in memory.
type VertexBufferLayout struct {
	elements []Element
	stride   int32
}

func (l *VertexBufferLayout) Push(dt ElementType) {
	l.push(dt, false)
}

// PushNormalized is like Push but the integer values are normalized when read by
// the shader (e.g. an RGBA8 color with 255 becoming 1.0)
func (l *VertexBufferLayout) PushNormalized(dt ElementType) {
	assert.T(dt.IsInteger(), "Only integer element types can be normalized, got '%s'", dt)
	l.push(dt, true)
}

func (l *VertexBufferLayout) push(dt ElementType, normalized bool) {

	assert.T(dt.IsVertexAttrib(), "Element type '%s' can't be used as a vertex attribute", dt)

	l.elements = append(l.elements, Element{
		Offset:      int(l.stride),
		Normalized:  normalized,
		ElementType: dt,
	})
	l.stride += dt.Size()
}

func (l *VertexBufferLayout) Elements() []Element {
	e := make([]Element, len(l.elements))
	copy(e, l.elements)
	return e
}

func (l *VertexBufferLayout) Stride() int32 {
	return l.stride
}

func (l *VertexBufferLayout) Len() int {
	return len(l.elements)
}

func NewVertexBufferLayout(types ...ElementType) VertexBufferLayout {

	l := VertexBufferLayout{}
	for i := 0; i < len(types); i++ {
		l.Push(types[i])
	}

	return l
}
