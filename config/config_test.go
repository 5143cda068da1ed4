package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "terralit", cfg.Window.Title)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.True(t, cfg.Renderer.VSync)
	assert.Equal(t, float32(10.0), cfg.Terrain.Size)
	assert.Equal(t, float32(0.1), cfg.Terrain.Step)
	assert.Equal(t, [3]float32{0.0, 2.0, 5.0}, cfg.Camera.Eye)
	assert.Equal(t, float32(60.0), cfg.Camera.FovyDegrees)
	assert.True(t, cfg.Light.Positional)
	assert.Equal(t, float32(64.0), cfg.Material.Shininess)
	assert.Equal(t, float32(2.0), cfg.Controls.StepPerSecond)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))

	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terralit.yml")
	content := `
window:
  title: rolling hills
  width: 1920
terrain:
  amplitude: 1.2
  workers: 4
light:
  positional: false
  position: [0, 1, 0]
controls:
  step_per_second: 5.0
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	assert.NoError(t, err)

	assert.Equal(t, "rolling hills", cfg.Window.Title)
	assert.Equal(t, 1920, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height, "omitted key keeps its default")
	assert.Equal(t, float32(1.2), cfg.Terrain.Amplitude)
	assert.Equal(t, 4, cfg.Terrain.Workers)
	assert.Equal(t, float32(0.1), cfg.Terrain.Step, "omitted key keeps its default")
	assert.False(t, cfg.Light.Positional)
	assert.Equal(t, [3]float32{0.0, 1.0, 0.0}, cfg.Light.Position)
	assert.Equal(t, float32(5.0), cfg.Controls.StepPerSecond)
	assert.Equal(t, float32(-10.0), cfg.Controls.Min, "omitted key keeps its default")
}

func TestLoadMalformedFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terralit.yml")
	assert.NoError(t, os.WriteFile(path, []byte("window: [not: a: mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
