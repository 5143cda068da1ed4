package material

import "github.com/go-gl/mathgl/mgl32"

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithAmbient is an option builder that sets the ambient reflectance color of the material.
//
// Parameters:
//   - color: the ambient reflectance as RGBA
//
// Returns:
//   - MaterialBuilderOption: a function that applies the ambient option to a material
func WithAmbient(color mgl32.Vec4) MaterialBuilderOption {
	return func(m *material) {
		m.ambient = color
	}
}

// WithDiffuse is an option builder that sets the diffuse reflectance color of the material.
//
// Parameters:
//   - color: the diffuse reflectance as RGBA
//
// Returns:
//   - MaterialBuilderOption: a function that applies the diffuse option to a material
func WithDiffuse(color mgl32.Vec4) MaterialBuilderOption {
	return func(m *material) {
		m.diffuse = color
	}
}

// WithSpecular is an option builder that sets the specular reflectance color of the material.
//
// Parameters:
//   - color: the specular reflectance as RGBA
//
// Returns:
//   - MaterialBuilderOption: a function that applies the specular option to a material
func WithSpecular(color mgl32.Vec4) MaterialBuilderOption {
	return func(m *material) {
		m.specular = color
	}
}

// WithShininess is an option builder that sets the specular exponent of the material.
//
// Parameters:
//   - shininess: the specular exponent (higher values give tighter highlights)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the shininess option to a material
func WithShininess(shininess float32) MaterialBuilderOption {
	return func(m *material) {
		m.shininess = shininess
	}
}

// WithPipelineKey is an option builder that sets the render pipeline key of the material.
//
// Parameters:
//   - key: the pipeline key to associate with the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the pipeline key option to a material
func WithPipelineKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = key
	}
}
