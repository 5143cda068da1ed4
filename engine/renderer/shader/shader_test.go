package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

const wgslSource = `
@vertex fn vs_main(@location(0) position: vec3<f32>) -> @builtin(position) vec4<f32> {
	return vec4<f32>(position, 1.0);
}
`

func TestNewShaderDefaults(t *testing.T) {
	vs := NewShader("terrain_vs", ShaderTypeVertex, wgslSource)
	fs := NewShader("terrain_fs", ShaderTypeFragment, wgslSource)

	assert.Equal(t, "terrain_vs", vs.Key())
	assert.Equal(t, "vs_main", vs.EntryPoint())
	assert.Equal(t, ShaderTypeVertex, vs.ShaderType())

	assert.Equal(t, "fs_main", fs.EntryPoint())
	assert.Equal(t, ShaderTypeFragment, fs.ShaderType())
}

func TestNewShaderModuleDescriptor(t *testing.T) {
	s := NewShader("terrain_vs", ShaderTypeVertex, wgslSource)

	mod := s.Module()
	assert.NotNil(t, mod)
	assert.Equal(t, "terrain_vs", mod.Label)
	assert.Equal(t, wgslSource, mod.WGSLDescriptor.Code)
}

func TestNewShaderEmptySourcePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("broken", ShaderTypeVertex, "")
	})
}

func TestWithEntryPoint(t *testing.T) {
	s := NewShader("terrain_vs", ShaderTypeVertex, wgslSource, WithEntryPoint("main"))
	assert.Equal(t, "main", s.EntryPoint())
}

func TestWithBindGroupLayoutDescriptor(t *testing.T) {
	desc := wgpu.BindGroupLayoutDescriptor{
		Label: "Scene Uniforms",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: 272,
				},
			},
		},
	}

	s := NewShader("terrain_vs", ShaderTypeVertex, wgslSource,
		WithBindGroupLayoutDescriptor(0, desc),
	)

	assert.Len(t, s.BindGroupLayoutDescriptors(), 1)
	assert.Equal(t, desc, s.BindGroupLayoutDescriptor(0))
	assert.Empty(t, s.BindGroupLayoutDescriptor(1).Entries)
}

func TestWithVertexLayouts(t *testing.T) {
	layouts := []wgpu.VertexBufferLayout{
		{
			ArrayStride: 24,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{ShaderLocation: 0, Offset: 0, Format: wgpu.VertexFormatFloat32x3},
				{ShaderLocation: 1, Offset: 12, Format: wgpu.VertexFormatFloat32x3},
			},
		},
	}

	s := NewShader("terrain_vs", ShaderTypeVertex, wgslSource, WithVertexLayouts(layouts))

	assert.Equal(t, layouts, s.VertexLayouts())
}
