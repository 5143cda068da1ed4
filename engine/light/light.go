package light

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypeDirectional represents a light with no position, only direction.
	// The position vector is treated as the direction toward the light, and the
	// light affects all fragments uniformly with no distance falloff.
	LightTypeDirectional LightType = iota

	// LightTypePositional represents a light located at a point in world space.
	// The per-fragment light direction is computed from the fragment toward
	// this position.
	LightTypePositional
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType LightType
	position  mgl32.Vec3
	ambient   mgl32.Vec4
	diffuse   mgl32.Vec4
	specular  mgl32.Vec4
}

// Light defines the interface for the scene's light source.
//
// The light contributes ambient, diffuse, and specular color terms to the lit
// rendering pass. Its homogeneous position encodes the light kind: a fourth
// component of 0 marks a directional light (position read as a direction), 1
// marks a positional light.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (directional or positional)
	Type() LightType

	// Position returns the world-space position of the light.
	// For directional lights this is the direction toward the light.
	//
	// Returns:
	//   - mgl32.Vec3: position as (x, y, z)
	Position() mgl32.Vec3

	// PositionVec4 returns the homogeneous light position. The fourth component
	// is 0 for a directional light and 1 for a positional light, matching the
	// convention the shading program keys off per vertex.
	//
	// Returns:
	//   - mgl32.Vec4: the homogeneous position as (x, y, z, w)
	PositionVec4() mgl32.Vec4

	// Ambient returns the ambient color contribution of the light.
	//
	// Returns:
	//   - mgl32.Vec4: ambient color as (r, g, b, a)
	Ambient() mgl32.Vec4

	// Diffuse returns the diffuse color contribution of the light.
	//
	// Returns:
	//   - mgl32.Vec4: diffuse color as (r, g, b, a)
	Diffuse() mgl32.Vec4

	// Specular returns the specular color contribution of the light.
	//
	// Returns:
	//   - mgl32.Vec4: specular color as (r, g, b, a)
	Specular() mgl32.Vec4

	// SetType sets the kind of light source.
	//
	// Parameters:
	//   - lightType: the light type (directional or positional)
	SetType(lightType LightType)

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - position: the new position (or direction for directional lights)
	SetPosition(position mgl32.Vec3)

	// TranslatePosition moves the light's position by the given delta.
	//
	// Parameters:
	//   - delta: the world-space offset to add to the position
	TranslatePosition(delta mgl32.Vec3)

	// SetAmbient sets the ambient color contribution.
	//
	// Parameters:
	//   - ambient: ambient color as (r, g, b, a)
	SetAmbient(ambient mgl32.Vec4)

	// SetDiffuse sets the diffuse color contribution.
	//
	// Parameters:
	//   - diffuse: diffuse color as (r, g, b, a)
	SetDiffuse(diffuse mgl32.Vec4)

	// SetSpecular sets the specular color contribution.
	//
	// Parameters:
	//   - specular: specular color as (r, g, b, a)
	SetSpecular(specular mgl32.Vec4)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied. Defaults are a position of (2, 4, 3), a dim
// ambient term, a strong diffuse term, and a full-white specular term.
//
// Parameters:
//   - lightType: the kind of light to create (directional or positional)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType: lightType,
		position:  mgl32.Vec3{2, 4, 3},
		ambient:   mgl32.Vec4{0.2, 0.2, 0.2, 1},
		diffuse:   mgl32.Vec4{0.8, 0.8, 0.8, 1},
		specular:  mgl32.Vec4{1, 1, 1, 1},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *lightImpl) PositionVec4() mgl32.Vec4 {
	w := float32(0)
	if l.lightType == LightTypePositional {
		w = 1
	}
	return l.position.Vec4(w)
}

func (l *lightImpl) Ambient() mgl32.Vec4 {
	return l.ambient
}

func (l *lightImpl) Diffuse() mgl32.Vec4 {
	return l.diffuse
}

func (l *lightImpl) Specular() mgl32.Vec4 {
	return l.specular
}

func (l *lightImpl) SetType(lightType LightType) {
	l.lightType = lightType
}

func (l *lightImpl) SetPosition(position mgl32.Vec3) {
	l.position = position
}

func (l *lightImpl) TranslatePosition(delta mgl32.Vec3) {
	l.position = l.position.Add(delta)
}

func (l *lightImpl) SetAmbient(ambient mgl32.Vec4) {
	l.ambient = ambient
}

func (l *lightImpl) SetDiffuse(diffuse mgl32.Vec4) {
	l.diffuse = diffuse
}

func (l *lightImpl) SetSpecular(specular mgl32.Vec4) {
	l.specular = specular
}
