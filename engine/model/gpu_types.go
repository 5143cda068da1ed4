package model

import (
	_ "embed"
	"encoding/binary"
	"log"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct for the lit mesh pipeline.
// Matches GPUVertex layout exactly (24 bytes, tightly packed).
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// Size: 24 bytes (tightly packed, no padding required).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 24-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 24)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Normal[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Normal[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Normal[2]))
	return buf
}

// VertexBufferLayout returns the wgpu vertex buffer layout matching GPUVertex:
// a 24-byte stride with position at shader location 0 and normal at location 1.
//
// Returns:
//   - []wgpu.VertexBufferLayout: the vertex buffer layout for the lit mesh pipeline
func VertexBufferLayout() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: uint64((&GPUVertex{}).Size()),
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{
					Format:         wgpu.VertexFormatFloat32x3,
					Offset:         0,
					ShaderLocation: 0,
				},
				{
					Format:         wgpu.VertexFormatFloat32x3,
					Offset:         12,
					ShaderLocation: 1,
				},
			},
		},
	}
}

// InterleaveVertexData combines separate position and normal attribute streams
// into a single interleaved vertex slice, dropping the homogeneous component of
// each attribute. Position and normal streams must be the same length; when
// either stream is empty or the lengths differ, an empty slice is returned and
// a warning is logged, so a malformed mesh renders as nothing rather than
// crashing the frame loop.
//
// Parameters:
//   - positions: per-vertex positions with w = 1
//   - normals: per-vertex normals with w = 0
//
// Returns:
//   - []GPUVertex: the interleaved vertices, or an empty slice on malformed input
func InterleaveVertexData(positions, normals []mgl32.Vec4) []GPUVertex {
	if len(positions) == 0 || len(normals) == 0 || len(positions) != len(normals) {
		log.Printf("model: cannot interleave vertex data, positions=%d normals=%d", len(positions), len(normals))
		return []GPUVertex{}
	}

	vertices := make([]GPUVertex, len(positions))
	for i := range positions {
		vertices[i] = GPUVertex{
			Position: [3]float32{positions[i].X(), positions[i].Y(), positions[i].Z()},
			Normal:   [3]float32{normals[i].X(), normals[i].Y(), normals[i].Z()},
		}
	}
	return vertices
}

// MarshalVertices serializes a slice of GPUVertex structs into a contiguous
// byte buffer suitable for vertex buffer upload.
//
// Parameters:
//   - vertices: the vertices to serialize
//
// Returns:
//   - []byte: the serialized vertex data, len(vertices) * 24 bytes
func MarshalVertices(vertices []GPUVertex) []byte {
	buf := make([]byte, 0, len(vertices)*24)
	for i := range vertices {
		buf = append(buf, vertices[i].Marshal()...)
	}
	return buf
}
