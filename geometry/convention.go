package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Numeric conventions shared by every package of this module:
//
//   - Matrices are mgl64.Mat4, column-major: element (row, col) lives at
//     index col*4+row, and the translation of an affine matrix is column 3.
//   - Vectors are columns and are transformed as M * v, so a product A * B
//     applies B first.
//   - Space is right-handed; a camera looks down its -n axis.
//   - Clip space follows OpenGL: after the perspective divide x, y and z all
//     lie in [-1, 1], with the near plane mapped to z = -1.
//   - Angles are degrees at the public surface and radians internally.
//
// A backend with another convention (for example z in [0, 1]) converts once,
// on upload, rather than inside actor or camera code.

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return mgl64.DegToRad(deg)
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return mgl64.RadToDeg(rad)
}

// Perspective builds a symmetric perspective projection from a vertical
// field of view in degrees.
func Perspective(fovy, aspect, near, far float64) mgl64.Mat4 {
	return mgl64.Perspective(Radians(fovy), aspect, near, far)
}

// PerspectiveFov builds a perspective projection from a vertical field of
// view in degrees and a viewport size.
func PerspectiveFov(fov, width, height, near, far float64) mgl64.Mat4 {
	rad := Radians(fov)
	h := math.Cos(0.5*rad) / math.Sin(0.5*rad)
	w := h * height / width

	return mgl64.Mat4{
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, -(far + near) / (far - near), -1,
		0, 0, -(2 * far * near) / (far - near), 0,
	}
}

// InfinitePerspective builds a perspective projection whose far plane is at infinity.
func InfinitePerspective(fovy, aspect, near float64) mgl64.Mat4 {
	rangeY := math.Tan(Radians(fovy/2)) * near
	left := -rangeY * aspect
	right := rangeY * aspect
	bottom := -rangeY
	top := rangeY

	return mgl64.Mat4{
		(2 * near) / (right - left), 0, 0, 0,
		0, (2 * near) / (top - bottom), 0, 0,
		0, 0, -1, -1,
		0, 0, -2 * near, 0,
	}
}

func Ortho(left, right, bottom, top, near, far float64) mgl64.Mat4 {
	return mgl64.Ortho(left, right, bottom, top, near, far)
}

// Ortho2D is Ortho with near = -1 and far = 1
func Ortho2D(left, right, bottom, top float64) mgl64.Mat4 {
	return mgl64.Ortho2D(left, right, bottom, top)
}

// Frustum builds an off-centre perspective projection
func Frustum(left, right, bottom, top, near, far float64) mgl64.Mat4 {
	return mgl64.Frustum(left, right, bottom, top, near, far)
}

// LookAt builds a view matrix looking from eye toward center
func LookAt(eye, center, up mgl64.Vec3) mgl64.Mat4 {
	return mgl64.LookAtV(eye, center, up)
}

// CalcNormal returns the unit normal of the triangle p1, p2, p3.
// Counter-clockwise points, seen from the front, give a normal facing away
// from the viewer; use NewPlaneFromPoints for the frustum winding.
func CalcNormal(p1, p2, p3 mgl64.Vec3) mgl64.Vec3 {
	return p3.Sub(p1).Cross(p2.Sub(p1)).Normalize()
}

// IsPowerOfTwo reports whether x is a power of two. Zero is not.
func IsPowerOfTwo(x uint) bool {
	return x != 0 && x&(x-1) == 0
}

// NextPow2 rounds x up to the next power of two
func NextPow2(x int) int {
	if x <= 0 {
		return 1
	}
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	x++
	return x
}
