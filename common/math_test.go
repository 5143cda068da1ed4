package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const matrixTol = float32(1.0e-5)

func TestClipCorrectionShape(t *testing.T) {
	c := ClipCorrection()

	want := mgl32.Ident4()
	want[10] = 0.5
	want[14] = 0.5

	assert.Equal(t, want, c)
}

func TestClipCorrectionRemapsDepth(t *testing.T) {
	c := ClipCorrection()

	tests := []struct {
		name  string
		clip  mgl32.Vec4
		wantZ float32
	}{
		{name: "near plane", clip: mgl32.Vec4{0, 0, -1, 1}, wantZ: 0},
		{name: "midpoint", clip: mgl32.Vec4{0, 0, 0, 1}, wantZ: 0.5},
		{name: "far plane", clip: mgl32.Vec4{0, 0, 1, 1}, wantZ: 1},
		{name: "perspective w", clip: mgl32.Vec4{0, 0, 2, 4}, wantZ: 3},
	}

	for _, tt := range tests {
		got := c.Mul4x1(tt.clip)
		assert.InDelta(t, tt.wantZ, got.Z(), float64(matrixTol), tt.name)
		// x, y and w pass through untouched
		assert.Equal(t, tt.clip.X(), got.X(), tt.name)
		assert.Equal(t, tt.clip.Y(), got.Y(), tt.name)
		assert.Equal(t, tt.clip.W(), got.W(), tt.name)
	}
}

func TestNormalMatrixRotationOnly(t *testing.T) {
	// A pure rotation is orthonormal, so its inverse transpose is itself.
	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(37))

	nm := NormalMatrix(rot)

	assert.True(t, nm.ApproxEqualThreshold(rot, matrixTol),
		"inverse transpose of a rotation should equal the rotation")
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	// Scaling a surface by (2, 1, 1) must scale its normals by (1/2, 1, 1)
	// or lighting skews on the stretched axis.
	mv := mgl32.Scale3D(2, 1, 1)

	nm := NormalMatrix(mv)
	n := nm.Mul4x1(mgl32.Vec4{1, 0, 0, 0})

	assert.InDelta(t, 0.5, n.X(), float64(matrixTol))
	assert.InDelta(t, 0.0, n.Y(), float64(matrixTol))
	assert.InDelta(t, 0.0, n.Z(), float64(matrixTol))
}

func TestColorProduct(t *testing.T) {
	light := mgl32.Vec4{1.0, 0.5, 0.25, 1.0}
	material := mgl32.Vec4{0.8, 0.8, 0.4, 1.0}

	got := ColorProduct(light, material)

	assert.Equal(t, mgl32.Vec4{0.8, 0.4, 0.1, 1.0}, got)
}

func TestColorProductZeroAnnihilates(t *testing.T) {
	got := ColorProduct(mgl32.Vec4{0, 0, 0, 0}, mgl32.Vec4{1, 1, 1, 1})
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 0}, got)
}

func TestSliceToBytesLength(t *testing.T) {
	verts := []float32{1, 2, 3, 4, 5, 6}

	raw := SliceToBytes(verts)

	assert.Len(t, raw, len(verts)*4)
}

func TestSliceToBytesEmpty(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32(nil)))
	assert.Nil(t, SliceToBytes([]float32{}))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, Coalesce(0, 5, 7))
	assert.Equal(t, "fallback", Coalesce("", "fallback"))
	assert.Equal(t, 0, Coalesce(0, 0))
	assert.Equal(t, float32(2.5), Coalesce(float32(2.5), float32(1)))
}
