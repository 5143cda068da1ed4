package model

import (
	"github.com/Carmen-Shannon/terralit/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/terralit/engine/renderer/material"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithMeshProvider is an option builder that sets the BindGroupProvider for mesh GPU resources.
//
// Parameters:
//   - provider: the BindGroupProvider holding the vertex buffer and bind group data
//
// Returns:
//   - ModelBuilderOption: a function that applies the mesh provider option to a model
func WithMeshProvider(provider bind_group_provider.BindGroupProvider) ModelBuilderOption {
	return func(m *model) {
		m.meshProvider = provider
	}
}

// WithMaterial is an option builder that sets the material describing the model's
// surface reflectance.
//
// Parameters:
//   - mat: the material to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the material option to a model
func WithMaterial(mat material.Material) ModelBuilderOption {
	return func(m *model) {
		m.material = mat
	}
}

// WithVertices is an option builder that sets the model's mesh from interleaved
// vertices, serializing them for GPU upload and recording the vertex count.
//
// Parameters:
//   - vertices: the interleaved vertices to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices option to a model
func WithVertices(vertices []GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertexData = MarshalVertices(vertices)
		m.vertexCount = len(vertices)
	}
}

// WithVertexData is an option builder that sets the raw vertex data for this model's mesh.
// Prefer WithVertices when the vertices are available in structured form.
//
// Parameters:
//   - data: the vertex data to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertex data option to a model
func WithVertexData(data []byte) ModelBuilderOption {
	return func(m *model) {
		m.vertexData = data
	}
}

// WithVertexCount is an option builder that sets the number of vertices in the model's mesh.
//
// Parameters:
//   - count: the vertex count to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertex count option to a model
func WithVertexCount(count int) ModelBuilderOption {
	return func(m *model) {
		m.vertexCount = count
	}
}
