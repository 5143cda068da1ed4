package main

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Carmen-Shannon/terralit/config"
	"github.com/Carmen-Shannon/terralit/engine"
	"github.com/Carmen-Shannon/terralit/engine/camera"
	"github.com/Carmen-Shannon/terralit/engine/controls"
	"github.com/Carmen-Shannon/terralit/engine/light"
	"github.com/Carmen-Shannon/terralit/engine/model"
	"github.com/Carmen-Shannon/terralit/engine/profiler"
	"github.com/Carmen-Shannon/terralit/engine/renderer"
	"github.com/Carmen-Shannon/terralit/engine/renderer/material"
	"github.com/Carmen-Shannon/terralit/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/terralit/engine/renderer/shader"
	"github.com/Carmen-Shannon/terralit/engine/scene"
	"github.com/Carmen-Shannon/terralit/engine/terrain"
	"github.com/Carmen-Shannon/terralit/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// terrainShaderBody holds the vertex and fragment stages of the lit terrain
// shader. The SceneUniform and VertexInput struct definitions it references
// are owned by the scene and model packages and prepended at startup, so the
// WGSL structs and the Go structs that marshal into them live side by side.
//
//go:embed assets/shaders/terrain.wgsl
var terrainShaderBody string

func main() {
	configPath := config.DefaultConfigFilename
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("terralit: %v", err)
	}

	// ── Window ──────────────────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
	)

	// ── Renderer ────────────────────────────────────────────────────────
	presentMode := renderer.PresentModeUncapped
	if cfg.Renderer.VSync {
		presentMode = renderer.PresentModeVSync
	}
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode),
		renderer.WithClearColor(wgpu.Color{
			R: cfg.Renderer.ClearColor[0],
			G: cfg.Renderer.ClearColor[1],
			B: cfg.Renderer.ClearColor[2],
			A: cfg.Renderer.ClearColor[3],
		}),
		renderer.WithForceSoftwareRenderer(cfg.Renderer.ForceFallbackAdapter),
	)

	// ── Shaders + Pipeline ──────────────────────────────────────────────
	// Assemble the full WGSL source from the canonical struct definitions
	// plus the embedded stage bodies. Both stages compile from the same
	// module source with their own entry points.
	source := strings.Join([]string{
		scene.GPUSceneUniformSource,
		model.GPUVertexSource,
		terrainShaderBody,
	}, "\n")

	terrainVert := shader.NewShader("terrain", shader.ShaderTypeVertex, source,
		shader.WithVertexLayouts(model.VertexBufferLayout()),
		shader.WithBindGroupLayoutDescriptor(0, scene.UniformBindGroupLayoutDescriptor()),
	)
	terrainFrag := shader.NewShader("terrain", shader.ShaderTypeFragment, source)

	terrainPipeline := pipeline.NewPipeline("terrain",
		pipeline.WithVertexShader(terrainVert),
		pipeline.WithFragmentShader(terrainFrag),
	)
	if err := r.RegisterPipelines(terrainPipeline); err != nil {
		log.Fatalf("terralit: failed to register terrain pipeline: %v", err)
	}

	// ── Terrain Mesh ────────────────────────────────────────────────────
	generatorOpts := []terrain.GeneratorBuilderOption{
		terrain.WithGridSize(cfg.Terrain.Size),
		terrain.WithStep(cfg.Terrain.Step),
		terrain.WithAmplitude(cfg.Terrain.Amplitude),
		terrain.WithFrequency(cfg.Terrain.Frequency),
	}
	if cfg.Terrain.Workers > 0 {
		generatorOpts = append(generatorOpts, terrain.WithWorkers(cfg.Terrain.Workers))
	}
	generator := terrain.NewGenerator(generatorOpts...)

	start := time.Now()
	mesh := generator.Generate()
	log.Printf("terralit: generated %d triangles (%d vertices) in %s",
		generator.TriangleCount(), generator.VertexCount(), time.Since(start).Round(time.Microsecond))

	terrainModel := model.NewModel(
		model.WithName("terrain"),
		model.WithVertices(model.InterleaveVertexData(mesh.Positions, mesh.Normals)),
		model.WithMaterial(material.NewMaterial(
			material.WithName("terrain"),
			material.WithAmbient(mgl32.Vec4(cfg.Material.Ambient)),
			material.WithDiffuse(mgl32.Vec4(cfg.Material.Diffuse)),
			material.WithSpecular(mgl32.Vec4(cfg.Material.Specular)),
			material.WithShininess(cfg.Material.Shininess),
			material.WithPipelineKey("terrain"),
		)),
	)
	if err := r.InitMeshBuffers(terrainModel.MeshProvider(), terrainModel.VertexData(), terrainModel.VertexCount()); err != nil {
		log.Fatalf("terralit: failed to init terrain mesh buffers: %v", err)
	}

	// ── Camera + Light ──────────────────────────────────────────────────
	cam := camera.NewCamera(
		camera.WithEye(mgl32.Vec3(cfg.Camera.Eye)),
		camera.WithTarget(mgl32.Vec3(cfg.Camera.Target)),
		camera.WithUp(mgl32.Vec3(cfg.Camera.Up)),
		camera.WithFov(cfg.Camera.FovyDegrees),
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
		camera.WithNear(cfg.Camera.Near),
		camera.WithFar(cfg.Camera.Far),
	)

	lightType := light.LightTypeDirectional
	if cfg.Light.Positional {
		lightType = light.LightTypePositional
	}
	lgt := light.NewLight(lightType,
		light.WithPosition(mgl32.Vec3(cfg.Light.Position)),
		light.WithAmbient(mgl32.Vec4(cfg.Light.Ambient)),
		light.WithDiffuse(mgl32.Vec4(cfg.Light.Diffuse)),
		light.WithSpecular(mgl32.Vec4(cfg.Light.Specular)),
	)

	// ── Scene + Controls ────────────────────────────────────────────────
	sc := scene.NewScene("terrain", cam, r,
		scene.WithModel(terrainModel),
		scene.WithLight(lgt),
	)

	ctl := controls.NewControls(cam, lgt,
		controls.WithStepPerSecond(cfg.Controls.StepPerSecond),
		controls.WithRange(cfg.Controls.Min, cfg.Controls.Max),
		controls.WithLabelCallback(func(label string) {
			win.SetTitle(cfg.Window.Title + " | " + label)
		}),
	)

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(win, sc,
		engine.WithControls(ctl),
		engine.WithProfiling(cfg.Engine.Profile),
		engine.WithProfiler(profiler.NewProfiler(
			profiler.WithUpdateInterval(time.Duration(cfg.Engine.ProfileIntervalSecs*float64(time.Second))),
		)),
		engine.WithFrameLimit(cfg.Engine.FrameLimit),
	)

	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Println("║  Terralit - Lit Procedural Terrain                   ║")
	fmt.Println("╠══════════════════════════════════════════════════════╣")
	fmt.Println("║  Camera:  A/D = X axis   Q/E = Y axis   W/S = Z axis ║")
	fmt.Println("║  Light:   Left/Right = X   PgDn/PgUp = Y             ║")
	fmt.Println("║           Up/Down = Z                                ║")
	fmt.Println("║  Esc:     Quit                                       ║")
	fmt.Println("╚══════════════════════════════════════════════════════╝")

	log.Printf("Starting Terralit (config: %s)", configPath)
	eng.Run()
}
