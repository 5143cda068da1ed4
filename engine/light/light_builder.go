package light

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithPosition is an option builder that sets the world-space position of the light.
// For directional lights the position is read as the direction toward the light.
//
// Parameters:
//   - position: the position as (x, y, z)
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a lightImpl
func WithPosition(position mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = position
	}
}

// WithAmbient is an option builder that sets the ambient color contribution of the light.
//
// Parameters:
//   - ambient: the ambient color as (r, g, b, a)
//
// Returns:
//   - LightBuilderOption: a function that applies the ambient option to a lightImpl
func WithAmbient(ambient mgl32.Vec4) LightBuilderOption {
	return func(l *lightImpl) {
		l.ambient = ambient
	}
}

// WithDiffuse is an option builder that sets the diffuse color contribution of the light.
//
// Parameters:
//   - diffuse: the diffuse color as (r, g, b, a)
//
// Returns:
//   - LightBuilderOption: a function that applies the diffuse option to a lightImpl
func WithDiffuse(diffuse mgl32.Vec4) LightBuilderOption {
	return func(l *lightImpl) {
		l.diffuse = diffuse
	}
}

// WithSpecular is an option builder that sets the specular color contribution of the light.
//
// Parameters:
//   - specular: the specular color as (r, g, b, a)
//
// Returns:
//   - LightBuilderOption: a function that applies the specular option to a lightImpl
func WithSpecular(specular mgl32.Vec4) LightBuilderOption {
	return func(l *lightImpl) {
		l.specular = specular
	}
}
