package material

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()

	white := mgl32.Vec4{1, 1, 1, 1}
	assert.Equal(t, white, m.Ambient())
	assert.Equal(t, white, m.Diffuse())
	assert.Equal(t, white, m.Specular())
	assert.Equal(t, float32(32.0), m.Shininess())
	assert.Empty(t, m.Name())
	assert.Empty(t, m.PipelineKey())
}

func TestNewMaterialOptions(t *testing.T) {
	m := NewMaterial(
		WithName("terrain"),
		WithAmbient(mgl32.Vec4{0.2, 0.25, 0.2, 1}),
		WithDiffuse(mgl32.Vec4{0.35, 0.6, 0.3, 1}),
		WithSpecular(mgl32.Vec4{0.8, 0.8, 0.8, 1}),
		WithShininess(50),
		WithPipelineKey("terrain_lit"),
	)

	assert.Equal(t, "terrain", m.Name())
	assert.Equal(t, mgl32.Vec4{0.2, 0.25, 0.2, 1}, m.Ambient())
	assert.Equal(t, mgl32.Vec4{0.35, 0.6, 0.3, 1}, m.Diffuse())
	assert.Equal(t, mgl32.Vec4{0.8, 0.8, 0.8, 1}, m.Specular())
	assert.Equal(t, float32(50), m.Shininess())
	assert.Equal(t, "terrain_lit", m.PipelineKey())
}

func TestSetPipelineKey(t *testing.T) {
	m := NewMaterial(WithName("terrain"))
	m.SetPipelineKey("terrain_lit")
	assert.Equal(t, "terrain_lit", m.PipelineKey())
}
