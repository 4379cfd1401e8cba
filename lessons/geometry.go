package lessons

import (
	"encoding/binary"
	"math"
)

// TrianglePositions is the first triangle of the tutorial, 2D positions only
var TrianglePositions = []float32{
	0.5, 0.5,
	0.5, -0.5,
	-0.5, 0.5,
}

// QuadPositions are the 2D corners of the quad, counter clockwise from bottom left
var QuadPositions = []float32{
	-0.5, -0.5,
	0.5, -0.5,
	0.5, 0.5,
	-0.5, 0.5,
}

var QuadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// QuadVertexStride is the size of one QuadVertexBytes vertex: vec2 position then RGBA8 tint
const QuadVertexStride = 2*4 + 4

// QuadVertexTints are the per-corner tints multiplied with u_Color in the layout lesson
var QuadVertexTints = [4][4]uint8{
	{255, 255, 255, 255},
	{255, 255, 255, 255},
	{255, 255, 255, 255},
	{150, 150, 150, 255},
}

// QuadVertexBytes interleaves QuadPositions with QuadVertexTints, so a single
// VBO carries both a float vec2 and a normalized ubyte4 attribute.
func QuadVertexBytes() []byte {

	data := make([]byte, 0, 4*QuadVertexStride)
	for i := 0; i < 4; i++ {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(QuadPositions[i*2]))
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(QuadPositions[i*2+1]))
		data = append(data, QuadVertexTints[i][:]...)
	}

	return data
}
