package buffers

import (
	"github.com/bloeys/glsteps/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Element represents an element that makes up a vertex (e.g. Vec3 at an offset of 12 bytes)
type Element struct {
	Offset int
	// Normalized integer elements are mapped to [0,1] (or [-1,1] for signed types) when read by the shader
	Normalized bool
	ElementType
}

// ElementType is the type of an element thats makes up a vertex (e.g. Vec3)
type ElementType uint8

const (
	DataTypeUnknown ElementType = iota

	DataTypeUint8
	DataTypeUint32
	DataTypeInt32
	DataTypeFloat32

	DataTypeVec2
	DataTypeVec3
	DataTypeVec4

	// DataTypeUint8Vec4 is four unsigned bytes, typically an RGBA8 color
	DataTypeUint8Vec4

	DataTypeMat2
	DataTypeMat3
	DataTypeMat4

	dataTypeCount
)

type elementTypeInfo struct {
	name      string
	glType    uint32
	compSize  int32
	compCount int32
	isInteger bool
	// Matrices take one attribute location per column, so they can't be a single vertex attribute
	isAttrib bool
}

var elementTypes = [dataTypeCount]elementTypeInfo{
	DataTypeUnknown: {name: "Unknown"},

	DataTypeUint8:   {name: "uint8", glType: gl.UNSIGNED_BYTE, compSize: 1, compCount: 1, isInteger: true, isAttrib: true},
	DataTypeUint32:  {name: "uint32", glType: gl.UNSIGNED_INT, compSize: 4, compCount: 1, isInteger: true, isAttrib: true},
	DataTypeInt32:   {name: "int32", glType: gl.INT, compSize: 4, compCount: 1, isInteger: true, isAttrib: true},
	DataTypeFloat32: {name: "float32", glType: gl.FLOAT, compSize: 4, compCount: 1, isAttrib: true},

	DataTypeVec2: {name: "Vec2", glType: gl.FLOAT, compSize: 4, compCount: 2, isAttrib: true},
	DataTypeVec3: {name: "Vec3", glType: gl.FLOAT, compSize: 4, compCount: 3, isAttrib: true},
	DataTypeVec4: {name: "Vec4", glType: gl.FLOAT, compSize: 4, compCount: 4, isAttrib: true},

	DataTypeUint8Vec4: {name: "U8Vec4", glType: gl.UNSIGNED_BYTE, compSize: 1, compCount: 4, isInteger: true, isAttrib: true},

	DataTypeMat2: {name: "Mat2", glType: gl.FLOAT, compSize: 4, compCount: 2 * 2},
	DataTypeMat3: {name: "Mat3", glType: gl.FLOAT, compSize: 4, compCount: 3 * 3},
	DataTypeMat4: {name: "Mat4", glType: gl.FLOAT, compSize: 4, compCount: 4 * 4},
}

func (dt ElementType) info() elementTypeInfo {

	if dt >= dataTypeCount {
		return elementTypes[DataTypeUnknown]
	}

	return elementTypes[dt]
}

// mustInfo is info but asserts that the type is known
func (dt ElementType) mustInfo() elementTypeInfo {
	info := dt.info()
	assert.T(info.compCount > 0, "Unknown data type passed. DataType '%d'", dt)
	return info
}

func (dt ElementType) GLType() uint32 {
	return dt.mustInfo().glType
}

// CompSize returns the size in bytes for one component of the type (e.g. for Vec2 its 4)
func (dt ElementType) CompSize() int32 {
	return dt.mustInfo().compSize
}

// CompCount returns the number of components in the element (e.g. for Vec2 its 2)
func (dt ElementType) CompCount() int32 {
	return dt.mustInfo().compCount
}

// Size returns the total size in bytes (e.g. for vec3 its 3*4=12 bytes)
func (dt ElementType) Size() int32 {
	return dt.CompSize() * dt.CompCount()
}

// IsVertexAttrib reports whether the type fits in a single vertex attribute slot
func (dt ElementType) IsVertexAttrib() bool {
	return dt.info().isAttrib
}

// IsInteger reports whether the components are integers. Integer attributes that
// aren't normalized must be fed with glVertexAttribIPointer to stay integers in the shader.
func (dt ElementType) IsInteger() bool {
	return dt.info().isInteger
}

func (dt ElementType) String() string {
	return dt.info().name
}
