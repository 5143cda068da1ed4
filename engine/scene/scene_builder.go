package scene

import (
	"github.com/Carmen-Shannon/terralit/engine/light"
	"github.com/Carmen-Shannon/terralit/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithLight sets the scene's light source, replacing the default
// directional light.
//
// Parameters:
//   - l: the light to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLight(l light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lgt = l
	}
}

// WithModel attaches the scene's model. The model's mesh buffers must be
// initialized on the renderer before the first RenderFrame.
//
// Parameters:
//   - mdl: the model to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithModel(mdl model.Model) SceneBuilderOption {
	return func(s *scene) {
		s.mdl = mdl
	}
}

// WithModelMatrix sets the model-to-world transform applied to the scene's
// model. Defaults to the identity matrix.
//
// Parameters:
//   - m: the model matrix
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithModelMatrix(m mgl32.Mat4) SceneBuilderOption {
	return func(s *scene) {
		s.modelMatrix = m
	}
}
