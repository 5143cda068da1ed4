package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestNeedsReconfigure(t *testing.T) {
	tests := []struct {
		name                string
		curWidth, curHeight int
		newWidth, newHeight int
		expected            bool
	}{
		{name: "same dimensions", curWidth: 1280, curHeight: 720, newWidth: 1280, newHeight: 720, expected: false},
		{name: "width changed", curWidth: 1280, curHeight: 720, newWidth: 1600, newHeight: 720, expected: true},
		{name: "height changed", curWidth: 1280, curHeight: 720, newWidth: 1280, newHeight: 900, expected: true},
		{name: "both changed", curWidth: 1280, curHeight: 720, newWidth: 800, newHeight: 600, expected: true},
		{name: "zero to nonzero", curWidth: 0, curHeight: 0, newWidth: 1280, newHeight: 720, expected: true},
	}

	for _, tt := range tests {
		got := needsReconfigure(tt.curWidth, tt.curHeight, tt.newWidth, tt.newHeight)
		assert.Equal(t, tt.expected, got, tt.name)
	}
}

func TestMergeBindGroupLayoutsVertexOnly(t *testing.T) {
	vertexLayouts := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {
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
		},
	}

	merged := mergeBindGroupLayouts(vertexLayouts, nil)

	assert.Len(t, merged, 1)
	desc, ok := merged[0]
	assert.True(t, ok, "group 0 should be present")
	assert.Equal(t, "Scene Uniforms", desc.Label)
	assert.Len(t, desc.Entries, 1)
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, desc.Entries[0].Visibility)
}

func TestMergeBindGroupLayoutsFragmentOnly(t *testing.T) {
	fragmentLayouts := map[int]wgpu.BindGroupLayoutDescriptor{
		1: {
			Label: "Fragment Group",
			Entries: []wgpu.BindGroupLayoutEntry{
				{
					Binding:    0,
					Visibility: wgpu.ShaderStageFragment,
					Buffer: wgpu.BufferBindingLayout{
						Type:           wgpu.BufferBindingTypeUniform,
						MinBindingSize: 16,
					},
				},
			},
		},
	}

	merged := mergeBindGroupLayouts(nil, fragmentLayouts)

	assert.Len(t, merged, 1)
	desc, ok := merged[1]
	assert.True(t, ok, "group 1 should be present")
	assert.Equal(t, wgpu.ShaderStageFragment, desc.Entries[0].Visibility)
}

func TestMergeBindGroupLayoutsSharedBindingORsVisibility(t *testing.T) {
	vertexLayouts := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {
			Label: "Shared",
			Entries: []wgpu.BindGroupLayoutEntry{
				{
					Binding:    0,
					Visibility: wgpu.ShaderStageVertex,
					Buffer: wgpu.BufferBindingLayout{
						Type:           wgpu.BufferBindingTypeUniform,
						MinBindingSize: 272,
					},
				},
			},
		},
	}
	fragmentLayouts := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {
			Label: "Shared",
			Entries: []wgpu.BindGroupLayoutEntry{
				{
					Binding:    0,
					Visibility: wgpu.ShaderStageFragment,
					Buffer: wgpu.BufferBindingLayout{
						Type:           wgpu.BufferBindingTypeUniform,
						MinBindingSize: 272,
					},
				},
			},
		},
	}

	merged := mergeBindGroupLayouts(vertexLayouts, fragmentLayouts)

	assert.Len(t, merged, 1)
	desc := merged[0]
	assert.Len(t, desc.Entries, 1, "shared binding should merge into a single entry")
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, desc.Entries[0].Visibility)
}

func TestMergeBindGroupLayoutsDisjointBindingsSorted(t *testing.T) {
	vertexLayouts := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {
			Label: "Mixed",
			Entries: []wgpu.BindGroupLayoutEntry{
				{
					Binding:    2,
					Visibility: wgpu.ShaderStageVertex,
					Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
				},
			},
		},
	}
	fragmentLayouts := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {
			Label: "Mixed",
			Entries: []wgpu.BindGroupLayoutEntry{
				{
					Binding:    0,
					Visibility: wgpu.ShaderStageFragment,
					Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
				},
				{
					Binding:    1,
					Visibility: wgpu.ShaderStageFragment,
					Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
				},
			},
		},
	}

	merged := mergeBindGroupLayouts(vertexLayouts, fragmentLayouts)

	desc := merged[0]
	assert.Len(t, desc.Entries, 3)
	for i, entry := range desc.Entries {
		assert.Equal(t, uint32(i), entry.Binding, "entries should be sorted by binding")
	}
}
