package meshes

import (
	"errors"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glsteps/assert"
	"github.com/bloeys/glsteps/buffers"
)

type SubMesh struct {
	BaseVertex int32
	BaseIndex  uint32
	IndexCount int32
}

type Mesh struct {
	Name string
	/*
		Vao has the following shader attribute layout:
			- Loc0: Pos (vec3)
			- Loc1: UV0 (vec2)

		Indices of all submeshes are already offset by their base vertex,
		so the whole mesh can be drawn with one glDrawElements.
	*/
	Vao       buffers.VertexArray
	Vbo       buffers.VertexBuffer
	SubMeshes []SubMesh
}

var (
	// DefaultMeshLoadFlags are the flags always applied when loading a new mesh regardless
	// of what post process flags are used when loading a mesh.
	DefaultMeshLoadFlags asig.PostProcess = asig.PostProcessTriangulate
)

// Layout is the vertex layout of every mesh
func Layout() buffers.VertexBufferLayout {
	return buffers.NewVertexBufferLayout(buffers.DataTypeVec3, buffers.DataTypeVec2)
}

func NewMesh(name, modelPath string, postProcessFlags asig.PostProcess) (Mesh, error) {

	finalPostProcessFlags := DefaultMeshLoadFlags | postProcessFlags

	scene, release, err := asig.ImportFile(modelPath, finalPostProcessFlags)
	if err != nil {
		return Mesh{}, errors.New("Failed to load model. Err: " + err.Error())
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return Mesh{}, errors.New("No meshes found in file: " + modelPath)
	}

	var (
		layout        = Layout()
		vertexBufData = make([]float32, 0, len(scene.Meshes[0].Vertices)*5)
		indexBufData  = make([]uint32, 0, len(scene.Meshes[0].Faces)*3)
		subMeshes     = make([]SubMesh, 0, len(scene.Meshes))
		vertexCount   = 0
	)

	for i := 0; i < len(scene.Meshes); i++ {

		sceneMesh := scene.Meshes[i]
		if len(sceneMesh.Faces) == 0 {
			continue
		}

		// We always want UV0
		uvs := sceneMesh.TexCoords[0]
		if len(uvs) == 0 {
			uvs = make([]gglm.Vec3, len(sceneMesh.Vertices))
		}

		indices := flattenFaces(sceneMesh.Faces, uint32(vertexCount))
		subMeshes = append(subMeshes, SubMesh{

			// Index of the first vertex of this submesh in the vertex buffer
			BaseVertex: int32(vertexCount),
			// Which index (in the index buffer) to start from
			BaseIndex: uint32(len(indexBufData)),
			// How many indices in this submesh
			IndexCount: int32(len(indices)),
		})

		vertexBufData = append(vertexBufData, interleave(
			arrToInterleave{V3s: sceneMesh.Vertices},
			arrToInterleave{V2s: v3sToV2s(uvs)},
		)...)
		indexBufData = append(indexBufData, indices...)
		vertexCount += len(sceneMesh.Vertices)
	}

	if len(indexBufData) == 0 {
		return Mesh{}, errors.New("No faces found in file: " + modelPath)
	}

	mesh := Mesh{
		Name:      name,
		Vao:       buffers.NewVertexArray(),
		Vbo:       buffers.NewVertexBuffer(vertexBufData, buffers.BufUsage_Static_Draw),
		SubMeshes: subMeshes,
	}

	mesh.Vao.AddBuffer(&mesh.Vbo, &layout)
	mesh.Vao.SetIndexBuffer(buffers.NewIndexBuffer(indexBufData))

	// This is needed so that if you load meshes one after the other the
	// following mesh doesn't attach its vbo/ibo to this vao
	mesh.Vao.UnBind()

	return mesh, nil
}

func (m *Mesh) Delete() {
	m.Vao.IndexBuffer.Delete()
	m.Vbo.Delete()
	m.Vao.Delete()
}

func v3sToV2s(v3s []gglm.Vec3) []gglm.Vec2 {

	v2s := make([]gglm.Vec2, len(v3s))
	for i := 0; i < len(v3s); i++ {
		v2s[i] = gglm.Vec2{
			Data: [2]float32{v3s[i].Data[0], v3s[i].Data[1]},
		}
	}

	return v2s
}

type arrToInterleave struct {
	V2s []gglm.Vec2
	V3s []gglm.Vec3
	V4s []gglm.Vec4
}

func (a *arrToInterleave) get(i int) []float32 {

	assert.T(len(a.V2s) == 0 || len(a.V3s) == 0, "One array should be set in arrToInterleave, but multiple arrays are set")
	assert.T(len(a.V2s) == 0 || len(a.V4s) == 0, "One array should be set in arrToInterleave, but multiple arrays are set")
	assert.T(len(a.V3s) == 0 || len(a.V4s) == 0, "One array should be set in arrToInterleave, but multiple arrays are set")

	if len(a.V2s) > 0 {
		return a.V2s[i].Data[:]
	} else if len(a.V3s) > 0 {
		return a.V3s[i].Data[:]
	} else {
		return a.V4s[i].Data[:]
	}
}

func (a *arrToInterleave) len() int {
	return max(len(a.V2s), len(a.V3s), len(a.V4s))
}

func interleave(arrs ...arrToInterleave) []float32 {

	assert.T(len(arrs) > 0, "No input sent to interleave")

	elementCount := arrs[0].len()
	assert.T(elementCount > 0, "Interleave arrays are empty")

	//Calculate final size of the float buffer
	totalSize := 0
	for i := 0; i < len(arrs); i++ {

		assert.T(arrs[i].len() == elementCount, "Mesh vertex data given to interleave is not the same length")
		totalSize += len(arrs[i].get(0)) * elementCount
	}

	out := make([]float32, 0, totalSize)
	for i := 0; i < elementCount; i++ {
		for arrToUse := 0; arrToUse < len(arrs); arrToUse++ {
			out = append(out, arrs[arrToUse].get(i)...)
		}
	}

	return out
}

func flattenFaces(faces []asig.Face, baseVertex uint32) []uint32 {

	uints := make([]uint32, len(faces)*3)
	for i := 0; i < len(faces); i++ {

		assert.T(len(faces[i].Indices) == 3, "Face doesn't have 3 indices. Index count: %v\n", len(faces[i].Indices))
		uints[i*3+0] = baseVertex + uint32(faces[i].Indices[0])
		uints[i*3+1] = baseVertex + uint32(faces[i].Indices[1])
		uints[i*3+2] = baseVertex + uint32(faces[i].Indices[2])
	}

	return uints
}
