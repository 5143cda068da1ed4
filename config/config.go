package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is the config file looked up next to the binary when
// no path is given on the command line.
const DefaultConfigFilename = "terralit.yml"

// Config holds the full application configuration. Every key is optional:
// Load decodes the file over the Default set, so keys a file omits keep
// their default values.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Engine   EngineConfig   `yaml:"engine"`
	Renderer RendererConfig `yaml:"renderer"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Camera   CameraConfig   `yaml:"camera"`
	Light    LightConfig    `yaml:"light"`
	Material MaterialConfig `yaml:"material"`
	Controls ControlsConfig `yaml:"controls"`
}

// WindowConfig configures the platform window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// EngineConfig configures the frame loop and profiler.
type EngineConfig struct {
	FrameLimit          float64 `yaml:"frame_limit"`           // maximum frames per second, 0 = uncapped
	Profile             bool    `yaml:"profile"`               // log frame and memory stats
	ProfileIntervalSecs float64 `yaml:"profile_interval_secs"` // seconds between profiler reports
}

// RendererConfig configures surface presentation and adapter selection.
type RendererConfig struct {
	VSync                bool       `yaml:"vsync"`
	ForceFallbackAdapter bool       `yaml:"force_fallback_adapter"`
	ClearColor           [4]float64 `yaml:"clear_color"`
}

// TerrainConfig configures the procedural terrain mesh.
type TerrainConfig struct {
	Size      float32 `yaml:"size"`
	Step      float32 `yaml:"step"`
	Amplitude float32 `yaml:"amplitude"`
	Frequency float32 `yaml:"frequency"`
	Workers   int     `yaml:"workers"` // 0 picks a count from the CPU count
}

// CameraConfig configures the initial camera pose and projection.
type CameraConfig struct {
	Eye         [3]float32 `yaml:"eye"`
	Target      [3]float32 `yaml:"target"`
	Up          [3]float32 `yaml:"up"`
	FovyDegrees float32    `yaml:"fovy_degrees"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

// LightConfig configures the scene light source.
type LightConfig struct {
	Positional bool       `yaml:"positional"` // false treats the position as a direction
	Position   [3]float32 `yaml:"position"`
	Ambient    [4]float32 `yaml:"ambient"`
	Diffuse    [4]float32 `yaml:"diffuse"`
	Specular   [4]float32 `yaml:"specular"`
}

// MaterialConfig configures the terrain material reflectance.
type MaterialConfig struct {
	Ambient   [4]float32 `yaml:"ambient"`
	Diffuse   [4]float32 `yaml:"diffuse"`
	Specular  [4]float32 `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

// ControlsConfig configures the key-driven axis controls.
type ControlsConfig struct {
	StepPerSecond float32 `yaml:"step_per_second"`
	Min           float32 `yaml:"min"`
	Max           float32 `yaml:"max"`
}

// Default returns the complete default configuration: a 1024x768 window, an
// uncapped vsynced frame loop, the 10-unit terrain grid at 0.1 step, a
// positional light over a green terrain material, and 2 units/second axis
// controls clamped to [-10, 10].
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "terralit",
			Width:  1024,
			Height: 768,
		},
		Engine: EngineConfig{
			FrameLimit:          0,
			Profile:             false,
			ProfileIntervalSecs: 5,
		},
		Renderer: RendererConfig{
			VSync:                true,
			ForceFallbackAdapter: false,
			ClearColor:           [4]float64{0.1, 0.1, 0.1, 1.0},
		},
		Terrain: TerrainConfig{
			Size:      10.0,
			Step:      0.1,
			Amplitude: 0.6,
			Frequency: 1.5,
			Workers:   0,
		},
		Camera: CameraConfig{
			Eye:         [3]float32{0.0, 2.0, 5.0},
			Target:      [3]float32{0.0, 0.0, 0.0},
			Up:          [3]float32{0.0, 1.0, 0.0},
			FovyDegrees: 60.0,
			Near:        0.1,
			Far:         100.0,
		},
		Light: LightConfig{
			Positional: true,
			Position:   [3]float32{2.0, 4.0, 2.0},
			Ambient:    [4]float32{0.2, 0.2, 0.2, 1.0},
			Diffuse:    [4]float32{1.0, 1.0, 1.0, 1.0},
			Specular:   [4]float32{1.0, 1.0, 1.0, 1.0},
		},
		Material: MaterialConfig{
			Ambient:   [4]float32{0.3, 0.45, 0.3, 1.0},
			Diffuse:   [4]float32{0.35, 0.6, 0.35, 1.0},
			Specular:  [4]float32{0.8, 0.8, 0.8, 1.0},
			Shininess: 64.0,
		},
		Controls: ControlsConfig{
			StepPerSecond: 2.0,
			Min:           -10.0,
			Max:           10.0,
		},
	}
}

// Load reads and parses the config file at path, decoding it over the
// default configuration so omitted keys keep their defaults. A file that
// does not exist is not an error; anything else that prevents a full decode
// is.
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - Config: the loaded configuration (defaults when the file is absent)
//   - error: error if the file exists but cannot be read or parsed
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
