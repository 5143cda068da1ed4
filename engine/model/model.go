package model

import (
	"github.com/Carmen-Shannon/terralit/common"
	"github.com/Carmen-Shannon/terralit/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/terralit/engine/renderer/material"
)

// model is the implementation of the Model interface.
type model struct {
	name         string
	meshProvider bind_group_provider.BindGroupProvider
	material     material.Material
	vertexData   []byte
	vertexCount  int
}

// Model defines the interface for a renderable mesh.
// A Model is a GPU-ready container holding serialized vertex data, the
// BindGroupProvider that owns the mesh's GPU resources, and the material
// describing its surface reflectance.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// MeshProvider retrieves the BindGroupProvider holding GPU mesh resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	MeshProvider() bind_group_provider.BindGroupProvider

	// Material retrieves the material describing the model's surface reflectance.
	//
	// Returns:
	//   - material.Material: the model's material
	Material() material.Material

	// VertexData returns the raw serialized vertex data for this model's mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// VertexCount returns the number of vertices in the model's mesh.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// SetMaterial replaces the model's material.
	//
	// Parameters:
	//   - mat: the material to set
	SetMaterial(mat material.Material)

	// SetVertexData sets the raw vertex data for this model's mesh.
	//
	// Parameters:
	//   - data: the vertex data to set
	SetVertexData(data []byte)

	// SetVertexCount sets the number of vertices in the model's mesh.
	//
	// Parameters:
	//   - count: the vertex count to set
	SetVertexCount(count int)
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
// When no mesh provider is supplied, one is created named after the model.
// When no material is supplied, a default material is used.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	if m.meshProvider == nil {
		m.meshProvider = bind_group_provider.NewBindGroupProvider(common.Coalesce(m.name, "model"))
	}
	if m.material == nil {
		m.material = material.NewMaterial()
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}

func (m *model) Material() material.Material {
	return m.material
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) VertexCount() int {
	return m.vertexCount
}

func (m *model) SetMaterial(mat material.Material) {
	m.material = mat
}

func (m *model) SetVertexData(data []byte) {
	m.vertexData = data
}

func (m *model) SetVertexCount(count int) {
	m.vertexCount = count
}
