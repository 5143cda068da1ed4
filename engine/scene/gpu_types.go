package scene

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUSceneUniformSource is the canonical WGSL definition of the SceneUniform struct.
// Matches GPUSceneUniform layout exactly (272 bytes, std140 aligned).
//
//go:embed assets/scene_uniform.wgsl
var GPUSceneUniformSource string

// GPUSceneUniform is the GPU-aligned representation of the per-frame scene
// uniform buffer. Matches the WGSL SceneUniform struct layout exactly (see
// GPUSceneUniformSource). All matrices are column-major.
// Size: 272 bytes (std140 / WGSL aligned).
type GPUSceneUniform struct {
	Mvp          [16]float32 // offset   0: depth-corrected model-view-projection matrix (mat4x4<f32>)
	ModelView    [16]float32 // offset  64: model-view matrix for eye-space positions (mat4x4<f32>)
	NormalMatrix [16]float32 // offset 128: inverse transpose of the model-view matrix (mat4x4<f32>)
	LightPosEye  [4]float32  // offset 192: eye-space light position, w = 0 directional / 1 positional (vec4<f32>)
	Ambient      [4]float32  // offset 208: light ambient times material ambient (vec4<f32>)
	Diffuse      [4]float32  // offset 224: light diffuse times material diffuse (vec4<f32>)
	Specular     [4]float32  // offset 240: light specular times material specular (vec4<f32>)
	Shininess    float32     // offset 256: specular exponent (f32)
	_pad         [3]float32  // offset 260: padding to 272 bytes
}

// Size returns the size of the GPUSceneUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (272)
func (g *GPUSceneUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUSceneUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUSceneUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Mvp[i]))
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.ModelView[i]))
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.NormalMatrix[i]))
	}
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[192+i*4:], math.Float32bits(g.LightPosEye[i]))
		binary.LittleEndian.PutUint32(buf[208+i*4:], math.Float32bits(g.Ambient[i]))
		binary.LittleEndian.PutUint32(buf[224+i*4:], math.Float32bits(g.Diffuse[i]))
		binary.LittleEndian.PutUint32(buf[240+i*4:], math.Float32bits(g.Specular[i]))
	}
	binary.LittleEndian.PutUint32(buf[256:], math.Float32bits(g.Shininess))
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[260+i*4:], 0) // _pad
	}
	return buf
}

// UniformBindGroupLayoutDescriptor returns the bind group layout descriptor for
// the scene uniform buffer: a single uniform buffer at group 0, binding 0,
// visible to both the vertex and fragment stages.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the scene uniform layout descriptor
func UniformBindGroupLayoutDescriptor() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "SceneUniform",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:             wgpu.BufferBindingTypeUniform,
					HasDynamicOffset: false,
					MinBindingSize:   uint64((&GPUSceneUniform{}).Size()),
				},
			},
		},
	}
}
