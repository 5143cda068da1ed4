package material

import (
	"github.com/go-gl/mathgl/mgl32"
)

// material is the implementation of the Material interface.
type material struct {
	name        string
	ambient     mgl32.Vec4
	diffuse     mgl32.Vec4
	specular    mgl32.Vec4
	shininess   float32
	pipelineKey string
}

// Material defines the interface for a Phong render material. It holds the
// per-term reflectance colors multiplied against the light colors on the CPU
// each frame, plus the shininess exponent controlling highlight tightness.
//
// Surface properties are set at construction and are read-only through this
// interface. The pipeline key is mutable so it can be assigned after the
// pipeline has been registered with the renderer.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Ambient retrieves the ambient reflectance RGBA color of the material.
	//
	// Returns:
	//   - mgl32.Vec4: the ambient reflectance
	Ambient() mgl32.Vec4

	// Diffuse retrieves the diffuse reflectance RGBA color of the material.
	//
	// Returns:
	//   - mgl32.Vec4: the diffuse reflectance
	Diffuse() mgl32.Vec4

	// Specular retrieves the specular reflectance RGBA color of the material.
	//
	// Returns:
	//   - mgl32.Vec4: the specular reflectance
	Specular() mgl32.Vec4

	// Shininess retrieves the specular exponent of the material.
	// Higher values produce tighter highlights.
	//
	// Returns:
	//   - float32: the shininess exponent
	Shininess() float32

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// SetPipelineKey sets the render pipeline key for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// Defaults to a neutral white material (full reflectance for all three terms)
// with a shininess of 32.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		ambient:   mgl32.Vec4{1, 1, 1, 1},
		diffuse:   mgl32.Vec4{1, 1, 1, 1},
		specular:  mgl32.Vec4{1, 1, 1, 1},
		shininess: 32.0,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Ambient() mgl32.Vec4 {
	return m.ambient
}

func (m *material) Diffuse() mgl32.Vec4 {
	return m.diffuse
}

func (m *material) Specular() mgl32.Vec4 {
	return m.specular
}

func (m *material) Shininess() float32 {
	return m.shininess
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) SetPipelineKey(key string) {
	m.pipelineKey = key
}
