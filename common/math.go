package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ClipCorrection returns the matrix that remaps OpenGL-style clip space to the
// WebGPU convention. OpenGL produces normalized depth in [-1, 1] while WebGPU
// consumes [0, 1], so the returned matrix rescales z' = 0.5*z + 0.5*w and
// leaves x, y and w untouched. Premultiply it onto a perspective matrix built
// with the OpenGL convention before handing the result to the GPU.
//
// Returns:
//   - mgl32.Mat4: the depth range correction matrix (column-major)
func ClipCorrection() mgl32.Mat4 {
	m := mgl32.Ident4()
	m[10] = 0.5
	m[14] = 0.5
	return m
}

// NormalMatrix derives the matrix that carries surface normals into eye space
// from the corresponding model-view matrix. Normals transform by the inverse
// transpose so non-uniform scaling does not skew them off the surface.
//
// Parameters:
//   - modelView: the combined model-view matrix
//
// Returns:
//   - mgl32.Mat4: the inverse transpose of modelView
func NormalMatrix(modelView mgl32.Mat4) mgl32.Mat4 {
	return modelView.Inv().Transpose()
}

// ColorProduct multiplies two RGBA colors component-wise. Lighting terms are
// combined on the CPU so the shader receives a single light-times-material
// reflectance per term instead of both factors.
//
// Parameters:
//   - a: first color
//   - b: second color
//
// Returns:
//   - mgl32.Vec4: the component-wise product of a and b
func ColorProduct(a, b mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}
