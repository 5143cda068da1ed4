package controls

import (
	"testing"

	"github.com/Carmen-Shannon/terralit/common"
	"github.com/Carmen-Shannon/terralit/engine/camera"
	"github.com/Carmen-Shannon/terralit/engine/light"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tolerance = float32(1.0e-5)

func newTestControls(options ...ControlsBuilderOption) (Controls, camera.Camera, light.Light) {
	cam := camera.NewCamera(camera.WithEye(mgl32.Vec3{0.0, 2.0, 3.0}))
	lgt := light.NewLight(light.LightTypeDirectional, light.WithPosition(mgl32.Vec3{2.0, 4.0, 3.0}))
	return NewControls(cam, lgt, options...), cam, lgt
}

func TestNewControlsDefaults(t *testing.T) {
	c, _, _ := newTestControls()

	assert.Equal(t, float32(2.0), c.StepPerSecond())
	assert.Equal(t, float32(-10.0), c.Min())
	assert.Equal(t, float32(10.0), c.Max())
}

func TestNewControlsOptions(t *testing.T) {
	c, _, _ := newTestControls(WithStepPerSecond(5.0), WithRange(-2.0, 2.0))

	assert.Equal(t, float32(5.0), c.StepPerSecond())
	assert.Equal(t, float32(-2.0), c.Min())
	assert.Equal(t, float32(2.0), c.Max())
}

func TestNewControlsPanicsOnMissingDependencies(t *testing.T) {
	cam := camera.NewCamera()
	lgt := light.NewLight(light.LightTypeDirectional)

	assert.Panics(t, func() { NewControls(nil, lgt) }, "nil camera")
	assert.Panics(t, func() { NewControls(cam, nil) }, "nil light")
}

func TestKeyStateTracking(t *testing.T) {
	c, _, _ := newTestControls()

	assert.False(t, c.Pressed(common.KeyW))
	c.KeyDown(common.KeyW)
	assert.True(t, c.Pressed(common.KeyW))
	c.KeyUp(common.KeyW)
	assert.False(t, c.Pressed(common.KeyW))
}

func TestUpdateMovesCameraAxes(t *testing.T) {
	tests := []struct {
		name     string
		key      uint32
		expected mgl32.Vec3
	}{
		{"D moves camera +x", common.KeyD, mgl32.Vec3{1.0, 2.0, 3.0}},
		{"A moves camera -x", common.KeyA, mgl32.Vec3{-1.0, 2.0, 3.0}},
		{"E moves camera +y", common.KeyE, mgl32.Vec3{0.0, 3.0, 3.0}},
		{"Q moves camera -y", common.KeyQ, mgl32.Vec3{0.0, 1.0, 3.0}},
		{"S moves camera +z", common.KeyS, mgl32.Vec3{0.0, 2.0, 4.0}},
		{"W moves camera -z", common.KeyW, mgl32.Vec3{0.0, 2.0, 2.0}},
	}

	for _, tt := range tests {
		c, cam, _ := newTestControls()
		c.KeyDown(tt.key)

		moved := c.Update(0.5)

		assert.True(t, moved, tt.name)
		eye := cam.Eye()
		for i := range 3 {
			assert.InDelta(t, tt.expected[i], eye[i], float64(tolerance), "%s: component %d", tt.name, i)
		}
	}
}

func TestUpdateMovesLightAxes(t *testing.T) {
	tests := []struct {
		name     string
		key      uint32
		expected mgl32.Vec3
	}{
		{"Right moves light +x", common.KeyRight, mgl32.Vec3{3.0, 4.0, 3.0}},
		{"Left moves light -x", common.KeyLeft, mgl32.Vec3{1.0, 4.0, 3.0}},
		{"PageUp moves light +y", common.KeyPageUp, mgl32.Vec3{2.0, 5.0, 3.0}},
		{"PageDown moves light -y", common.KeyPageDown, mgl32.Vec3{2.0, 3.0, 3.0}},
		{"Down moves light +z", common.KeyDown, mgl32.Vec3{2.0, 4.0, 4.0}},
		{"Up moves light -z", common.KeyUp, mgl32.Vec3{2.0, 4.0, 2.0}},
	}

	for _, tt := range tests {
		c, _, lgt := newTestControls()
		c.KeyDown(tt.key)

		moved := c.Update(0.5)

		assert.True(t, moved, tt.name)
		pos := lgt.Position()
		for i := range 3 {
			assert.InDelta(t, tt.expected[i], pos[i], float64(tolerance), "%s: component %d", tt.name, i)
		}
	}
}

func TestUpdateScalesWithDeltaTime(t *testing.T) {
	c, cam, _ := newTestControls(WithStepPerSecond(4.0))
	c.KeyDown(common.KeyD)

	c.Update(0.25)

	assert.InDelta(t, 1.0, cam.Eye().X(), float64(tolerance))
}

func TestUpdateClampsToRange(t *testing.T) {
	cam := camera.NewCamera(camera.WithEye(mgl32.Vec3{9.5, 2.0, 3.0}))
	lgt := light.NewLight(light.LightTypeDirectional, light.WithPosition(mgl32.Vec3{-9.5, 4.0, 3.0}))
	c := NewControls(cam, lgt)
	c.KeyDown(common.KeyD)
	c.KeyDown(common.KeyLeft)

	c.Update(1.0)

	assert.InDelta(t, 10.0, cam.Eye().X(), float64(tolerance), "camera clamped to max")
	assert.InDelta(t, -10.0, lgt.Position().X(), float64(tolerance), "light clamped to min")
}

func TestUpdateOpposingKeysCancel(t *testing.T) {
	c, cam, _ := newTestControls()
	c.KeyDown(common.KeyA)
	c.KeyDown(common.KeyD)

	moved := c.Update(0.5)

	assert.False(t, moved, "a zero-sum axis is not a movement")
	assert.InDelta(t, 0.0, cam.Eye().X(), float64(tolerance))
}

func TestUpdateWithNoKeysHeldDoesNothing(t *testing.T) {
	c, cam, lgt := newTestControls()
	eyeBefore := cam.Eye()
	posBefore := lgt.Position()

	moved := c.Update(0.5)

	assert.False(t, moved)
	assert.Equal(t, eyeBefore, cam.Eye())
	assert.Equal(t, posBefore, lgt.Position())
}

func TestUpdateInvokesLabelCallback(t *testing.T) {
	var labels []string
	c, _, _ := newTestControls(WithLabelCallback(func(label string) {
		labels = append(labels, label)
	}))

	c.Update(0.5)
	assert.Empty(t, labels, "no movement, no callback")

	c.KeyDown(common.KeyD)
	c.Update(0.5)
	assert.Len(t, labels, 1)
	assert.Contains(t, labels[0], "camera (1.0, 2.0, 3.0)")
}

func TestLabelFormat(t *testing.T) {
	c, _, _ := newTestControls()

	assert.Equal(t, "camera (0.0, 2.0, 3.0) | light (2.0, 4.0, 3.0)", c.Label())
}
