package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tolerance = float32(1.0e-5)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	assert.Equal(t, mgl32.Vec3{0, 2, 3}, c.Eye())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, c.Target())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Up())
	assert.Equal(t, float32(45.0), c.Fov())
	assert.Equal(t, float32(1.0), c.Aspect())
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(100.0), c.Far())
}

func TestNewCameraOptions(t *testing.T) {
	c := NewCamera(
		WithEye(mgl32.Vec3{1, 5, 10}),
		WithTarget(mgl32.Vec3{0, 1, 0}),
		WithFov(60),
		WithAspect(16.0/9.0),
		WithNear(0.5),
		WithFar(500),
	)

	assert.Equal(t, mgl32.Vec3{1, 5, 10}, c.Eye())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Target())
	assert.Equal(t, float32(60), c.Fov())
	assert.Equal(t, float32(16.0/9.0), c.Aspect())
	assert.Equal(t, float32(0.5), c.Near())
	assert.Equal(t, float32(500), c.Far())
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	eye := mgl32.Vec3{0, 2, 3}
	target := mgl32.Vec3{0, 0, 0}
	up := mgl32.Vec3{0, 1, 0}
	c := NewCamera(WithEye(eye), WithTarget(target), WithUp(up))

	expected := mgl32.LookAtV(eye, target, up)
	assert.True(t, c.ViewMatrix().ApproxEqualThreshold(expected, tolerance))
}

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	c := NewCamera(WithEye(mgl32.Vec3{3, -1, 7}))

	eye := c.Eye().Vec4(1)
	transformed := c.ViewMatrix().Mul4x1(eye)

	assert.InDelta(t, 0, transformed.X(), float64(tolerance))
	assert.InDelta(t, 0, transformed.Y(), float64(tolerance))
	assert.InDelta(t, 0, transformed.Z(), float64(tolerance))
	assert.InDelta(t, 1, transformed.W(), float64(tolerance))
}

func TestProjectionMatrixUsesDegrees(t *testing.T) {
	c := NewCamera(WithFov(45), WithAspect(1.5), WithNear(0.1), WithFar(100))

	expected := mgl32.Perspective(mgl32.DegToRad(45), 1.5, 0.1, 100)
	assert.True(t, c.ProjectionMatrix().ApproxEqualThreshold(expected, tolerance))
}

func TestSetAspectRecomputesProjection(t *testing.T) {
	c := NewCamera()
	before := c.ProjectionMatrix()

	c.SetAspect(1280.0 / 720.0)
	after := c.ProjectionMatrix()

	assert.False(t, before.ApproxEqualThreshold(after, tolerance))
	expected := mgl32.Perspective(mgl32.DegToRad(45), 1280.0/720.0, 0.1, 100)
	assert.True(t, after.ApproxEqualThreshold(expected, tolerance))
}

func TestTranslateEye(t *testing.T) {
	c := NewCamera(WithEye(mgl32.Vec3{0, 2, 3}))

	c.TranslateEye(mgl32.Vec3{1, -0.5, 2})

	assert.Equal(t, mgl32.Vec3{1, 1.5, 5}, c.Eye())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, c.Target(), "target should not move with the eye")

	// The view matrix must track the new eye position.
	transformed := c.ViewMatrix().Mul4x1(c.Eye().Vec4(1))
	assert.InDelta(t, 0, transformed.X(), float64(tolerance))
	assert.InDelta(t, 0, transformed.Y(), float64(tolerance))
	assert.InDelta(t, 0, transformed.Z(), float64(tolerance))
}

func TestSetEyeRecomputesView(t *testing.T) {
	c := NewCamera()
	before := c.ViewMatrix()

	c.SetEye(mgl32.Vec3{5, 5, 5})

	assert.False(t, c.ViewMatrix().ApproxEqualThreshold(before, tolerance))
	expected := mgl32.LookAtV(mgl32.Vec3{5, 5, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	assert.True(t, c.ViewMatrix().ApproxEqualThreshold(expected, tolerance))
}
