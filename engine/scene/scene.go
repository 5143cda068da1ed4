package scene

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/terralit/common"
	"github.com/Carmen-Shannon/terralit/engine/camera"
	"github.com/Carmen-Shannon/terralit/engine/light"
	"github.com/Carmen-Shannon/terralit/engine/model"
	"github.com/Carmen-Shannon/terralit/engine/renderer"
	"github.com/Carmen-Shannon/terralit/engine/renderer/bind_group_provider"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene manages a single lit Model together with the Camera, Light, and
// Renderer needed to draw it. Each frame the scene packs the camera, light,
// and material state into one uniform block, uploads it, and issues the draw.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// Light returns the scene's light source.
	Light() light.Light

	// SetLight replaces the scene's light source.
	//
	// Parameters:
	//   - l: the new light
	SetLight(l light.Light)

	// Model returns the scene's model, or nil if none has been attached.
	Model() model.Model

	// SetModel replaces the scene's model. The model's mesh buffers must be
	// initialized on the renderer before the next RenderFrame.
	//
	// Parameters:
	//   - mdl: the new model
	SetModel(mdl model.Model)

	// ModelMatrix returns the model-to-world transform applied to the scene's model.
	ModelMatrix() mgl32.Mat4

	// SetModelMatrix sets the model-to-world transform applied to the scene's model.
	//
	// Parameters:
	//   - m: the new model matrix
	SetModelMatrix(m mgl32.Mat4)

	// UniformProvider returns the bind group provider holding the scene's
	// GPU uniform buffer resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the scene uniform provider
	UniformProvider() bind_group_provider.BindGroupProvider

	// Resize updates the camera's aspect ratio and the renderer's surface for
	// new drawable dimensions. Zero or negative dimensions are ignored so a
	// minimized window keeps the last usable surface until it is restored.
	//
	// Parameters:
	//   - width: the new drawable width in pixels
	//   - height: the new drawable height in pixels
	Resize(width, height int)

	// RenderFrame packs the per-frame uniform block, uploads it, and renders
	// one frame of the scene's model.
	//
	// Returns:
	//   - error: error if no model is attached or a frame stage fails
	RenderFrame() error
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu          *sync.RWMutex
	name        string
	cam         camera.Camera
	r           renderer.Renderer
	lgt         light.Light
	mdl         model.Model
	modelMatrix mgl32.Mat4
	uniformBGP  bind_group_provider.BindGroupProvider
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera and renderer. Both are
// required and NewScene panics if either is nil. The scene's uniform bind
// group is initialized on the GPU immediately, so the renderer must already
// hold a configured device.
//
// The scene defaults to a directional light and an identity model matrix;
// a model must be attached (via WithModel or SetModel) before RenderFrame.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}

	s := &scene{
		mu:          &sync.RWMutex{},
		name:        name,
		cam:         cam,
		r:           r,
		lgt:         light.NewLight(light.LightTypeDirectional),
		modelMatrix: mgl32.Ident4(),
	}

	for _, option := range options {
		option(s)
	}

	s.uniformBGP = bind_group_provider.NewBindGroupProvider(common.Coalesce(s.name, "scene"))
	if err := r.InitBindGroup(s.uniformBGP, UniformBindGroupLayoutDescriptor(), nil, nil); err != nil {
		panic(fmt.Sprintf("scene: failed to init scene uniform bind group: %v", err))
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) Light() light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lgt
}

func (s *scene) SetLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lgt = l
}

func (s *scene) Model() model.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mdl
}

func (s *scene) SetModel(mdl model.Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mdl = mdl
}

func (s *scene) ModelMatrix() mgl32.Mat4 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modelMatrix
}

func (s *scene) SetModelMatrix(m mgl32.Mat4) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modelMatrix = m
}

func (s *scene) UniformProvider() bind_group_provider.BindGroupProvider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uniformBGP
}

func (s *scene) Resize(width, height int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// A minimized window reports zero dimensions; keep the last usable
	// aspect ratio and surface until it is restored.
	if width <= 0 || height <= 0 {
		return
	}

	aspect := float32(width) / float32(height)
	if s.cam.Aspect() != aspect {
		s.cam.SetAspect(aspect)
	}
	s.r.Resize(width, height)
}

func (s *scene) RenderFrame() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.mdl == nil {
		return fmt.Errorf("scene %q has no model to render", s.name)
	}

	uniform := PackUniform(s.cam, s.lgt, s.mdl, s.modelMatrix)
	s.r.WriteBuffers([]bind_group_provider.BufferWrite{
		{
			Provider: s.uniformBGP,
			Binding:  0,
			Offset:   0,
			Data:     uniform.Marshal(),
		},
	})

	if err := s.r.BeginFrame(); err != nil {
		return err
	}

	// Finish the frame even when the draw fails so the surface texture is
	// presented and the next BeginFrame can acquire a fresh one.
	drawErr := s.r.DrawCall(
		s.mdl.Material().PipelineKey(),
		s.mdl.MeshProvider(),
		1,
		[]bind_group_provider.BindGroupProvider{s.uniformBGP},
	)
	s.r.EndFrame()
	s.r.Present()

	return drawErr
}

// PackUniform assembles the per-frame uniform block from explicit scene state.
// The matrices are combined as follows:
//
//	modelView    = view * model
//	mvp          = clipCorrection * projection * view * model
//	normalMatrix = transpose(inverse(modelView))
//
// where clipCorrection remaps the projection's OpenGL-style [-1, 1] depth
// range to the [0, 1] range the GPU consumes (see common.ClipCorrection).
// The light position is carried into eye space through the view matrix; a
// directional light's homogeneous w of 0 makes that a rotation-only
// transform, so directions stay directions. Lighting colors are combined
// with the material's reflectance on the CPU so the shading program
// receives a single color per term.
//
// Parameters:
//   - cam: the camera supplying the view and projection matrices
//   - lgt: the light source
//   - mdl: the model supplying the material
//   - modelMatrix: the model-to-world transform
//
// Returns:
//   - GPUSceneUniform: the packed uniform block ready to marshal
func PackUniform(cam camera.Camera, lgt light.Light, mdl model.Model, modelMatrix mgl32.Mat4) GPUSceneUniform {
	view := cam.ViewMatrix()
	modelView := view.Mul4(modelMatrix)
	mvp := common.ClipCorrection().Mul4(cam.ProjectionMatrix()).Mul4(modelView)
	mat := mdl.Material()

	return GPUSceneUniform{
		Mvp:          [16]float32(mvp),
		ModelView:    [16]float32(modelView),
		NormalMatrix: [16]float32(common.NormalMatrix(modelView)),
		LightPosEye:  [4]float32(view.Mul4x1(lgt.PositionVec4())),
		Ambient:      [4]float32(common.ColorProduct(lgt.Ambient(), mat.Ambient())),
		Diffuse:      [4]float32(common.ColorProduct(lgt.Diffuse(), mat.Diffuse())),
		Specular:     [4]float32(common.ColorProduct(lgt.Specular(), mat.Specular())),
		Shininess:    mat.Shininess(),
	}
}
