package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/lens/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// NearLimit is the smallest near-plane distance a camera accepts
const NearLimit = 0.00001

// Fallback shape of a camera built with New
const (
	DEFAULT_FOV    = 45.0
	DEFAULT_ASPECT = 720.0 / 576.0
	DEFAULT_NEAR   = 0.0001
	DEFAULT_FAR    = 350.0
)

// ErrInvalidShape is wrapped by every shape contract violation
var ErrInvalidShape = errors.New("invalid camera shape")

// Camera is a viewer defined by an eye point, a look-at point and an up
// vector. It keeps the orthonormal basis u (right), v (up) and n (back),
// the view and projection matrices, and the view frustum.
//
// Every mutator recomputes all derived state before returning, so a Camera
// can be queried at any time. A Camera is not safe for concurrent mutation;
// concurrent reads are fine.
//
// The basis is undefined (NaN) when up is parallel to eye - look.
type Camera struct {
	eye  mgl64.Vec3
	look mgl64.Vec3
	up   mgl64.Vec3

	u mgl64.Vec3
	v mgl64.Vec3
	n mgl64.Vec3

	fov    float64
	aspect float64
	near   float64
	far    float64

	viewMatrix       mgl64.Mat4
	projectionMatrix mgl64.Mat4

	frustum frustum
}

// New creates a camera with the fallback shape, looking from (1,1,1) at the origin
func New() *Camera {
	c := &Camera{}
	c.SetDefaultCamera()

	return c
}

// NewLookAt creates a camera with the fallback shape and the given placement
func NewLookAt(eye, look, up mgl64.Vec3) *Camera {
	c := New()
	c.Set(eye, look, up)

	return c
}

// SetDefaultCamera restores the fallback shape and placement
func (c *Camera) SetDefaultCamera() {
	c.SetShape(DEFAULT_FOV, DEFAULT_ASPECT, DEFAULT_NEAR, DEFAULT_FAR)
	c.Set(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
}

// Set places the camera and rebuilds its basis:
// n = normalize(eye-look), u = normalize(up x n), v = normalize(n x u).
func (c *Camera) Set(eye, look, up mgl64.Vec3) {
	c.eye = eye
	c.look = look
	c.up = up
	c.buildBasis()
	c.setViewMatrix()
}

func (c *Camera) buildBasis() {
	c.n = c.eye.Sub(c.look).Normalize()
	c.u = c.up.Cross(c.n).Normalize()
	c.v = c.n.Cross(c.u).Normalize()
}

// setViewMatrix builds the view matrix from the basis and refreshes the
// frustum. Rows 0-2 are u, v, n and column 3 holds the eye translation.
func (c *Camera) setViewMatrix() {
	u, v, n := c.u, c.v, c.n

	c.viewMatrix = mgl64.Mat4{
		u.X(), v.X(), n.X(), 0,
		u.Y(), v.Y(), n.Y(), 0,
		u.Z(), v.Z(), n.Z(), 0,
		-c.eye.Dot(u), -c.eye.Dot(v), -c.eye.Dot(n), 1,
	}

	c.calculateFrustum()
}

// ValidateShape reports whether the shape parameters honour the camera
// contract. fov above 180 is accepted since SetShape clamps it.
func ValidateShape(fov, aspect, near, far float64) error {
	switch {
	case !(fov > 0):
		return fmt.Errorf("%w: field of view %v must be positive", ErrInvalidShape, fov)
	case !(aspect > 0):
		return fmt.Errorf("%w: aspect %v must be positive", ErrInvalidShape, aspect)
	case !(near > NearLimit):
		return fmt.Errorf("%w: near %v must be greater than %v", ErrInvalidShape, near, NearLimit)
	case !(far > near):
		return fmt.Errorf("%w: far %v must be greater than near %v", ErrInvalidShape, far, near)
	}

	return nil
}

// SetShape sets the vertical field of view (degrees, clamped to 180), the
// aspect ratio and the clipping distances. Invalid parameters are a
// programming error and panic with an error wrapping ErrInvalidShape.
func (c *Camera) SetShape(fov, aspect, near, far float64) {
	fov = math.Min(fov, 180)
	if err := ValidateShape(fov, aspect, near, far); err != nil {
		panic(err)
	}

	c.fov = fov
	c.aspect = aspect
	c.near = near
	c.far = far
	c.setProjectionMatrix()
	c.calculateFrustum()
}

// setProjectionMatrix builds the symmetric OpenGL perspective matrix:
// f = 1/tan(fov/2), diagonal (f/aspect, f, (far+near)/(near-far), 0),
// (2*far*near)/(near-far) at row 2 column 3 and -1 at row 3 column 2.
func (c *Camera) setProjectionMatrix() {
	c.projectionMatrix = geometry.Perspective(c.fov, c.aspect, c.near, c.far)
}

func (c *Camera) SetAspect(aspect float64) {
	c.SetShape(c.fov, aspect, c.near, c.far)
}

// SetViewAngle sets the vertical field of view in degrees
func (c *Camera) SetViewAngle(angle float64) {
	c.SetShape(angle, c.aspect, c.near, c.far)
}

// Update recomputes the view matrix and the frustum from the current basis
func (c *Camera) Update() {
	c.setViewMatrix()
}

// =============================================================================
// Motion
// =============================================================================

// Slide moves the eye along the camera's own axes. The basis is unchanged.
func (c *Camera) Slide(du, dv, dn float64) {
	c.eye = c.eye.Add(c.u.Mul(du)).Add(c.v.Mul(dv)).Add(c.n.Mul(dn))
	c.setViewMatrix()
}

// Move translates the eye in world space. The basis is unchanged.
func (c *Camera) Move(dx, dy, dz float64) {
	c.eye = c.eye.Add(mgl64.Vec3{dx, dy, dz})
	c.setViewMatrix()
}

// MoveBoth translates the eye and the look point in world space
func (c *Camera) MoveBoth(dx, dy, dz float64) {
	d := mgl64.Vec3{dx, dy, dz}
	c.eye = c.eye.Add(d)
	c.look = c.look.Add(d)
	c.buildBasis()
	c.setViewMatrix()
}

// MoveEye translates the eye only, the camera keeps looking at the same point
func (c *Camera) MoveEye(dx, dy, dz float64) {
	c.eye = c.eye.Add(mgl64.Vec3{dx, dy, dz})
	c.buildBasis()
	c.setViewMatrix()
}

// MoveLook translates the look point only
func (c *Camera) MoveLook(dx, dy, dz float64) {
	c.look = c.look.Add(mgl64.Vec3{dx, dy, dz})
	c.buildBasis()
	c.setViewMatrix()
}

// rotAxes rotates the pair a, b by angle degrees in their own plane:
// a' = c*a + s*b, b' = -s*a + c*b.
func rotAxes(a, b mgl64.Vec3, angle float64) (mgl64.Vec3, mgl64.Vec3) {
	rad := geometry.Radians(angle)
	cos, sin := math.Cos(rad), math.Sin(rad)

	return a.Mul(cos).Add(b.Mul(sin)), a.Mul(-sin).Add(b.Mul(cos))
}

// Roll rotates u and v around n. A positive angle turns u toward -v.
// The third axis is not re-derived, so long sequences of Roll, Pitch and Yaw
// accumulate rounding drift away from an exact orthonormal basis.
func (c *Camera) Roll(angle float64) {
	c.u, c.v = rotAxes(c.u, c.v, -angle)
	c.setViewMatrix()
}

// Pitch rotates n and v around u
func (c *Camera) Pitch(angle float64) {
	c.n, c.v = rotAxes(c.n, c.v, angle)
	c.setViewMatrix()
}

// Yaw rotates u and n around v
func (c *Camera) Yaw(angle float64) {
	c.u, c.n = rotAxes(c.u, c.n, angle)
	c.setViewMatrix()
}

// rotateBasis applies a world-space rotation to the whole basis
func (c *Camera) rotateBasis(r mgl64.Mat3) {
	c.u = r.Mul3x1(c.u)
	c.v = r.Mul3x1(c.v)
	c.n = r.Mul3x1(c.n)
	c.setViewMatrix()
}

// NormalisedYaw rotates the whole basis by angle degrees around the world Y axis
func (c *Camera) NormalisedYaw(angle float64) {
	c.rotateBasis(mgl64.Rotate3DY(geometry.Radians(angle)))
}

// NormalisedPitch rotates the whole basis by angle degrees around the world X axis
func (c *Camera) NormalisedPitch(angle float64) {
	c.rotateBasis(mgl64.Rotate3DX(geometry.Radians(angle)))
}

// NormalisedRoll rotates the whole basis by angle degrees around the world Z axis
func (c *Camera) NormalisedRoll(angle float64) {
	c.rotateBasis(mgl64.Rotate3DZ(geometry.Radians(angle)))
}

// =============================================================================
// Queries
// =============================================================================

func (c *Camera) Eye() mgl64.Vec3  { return c.eye }
func (c *Camera) Look() mgl64.Vec3 { return c.look }
func (c *Camera) Up() mgl64.Vec3   { return c.up }

// U is the camera right axis
func (c *Camera) U() mgl64.Vec3 { return c.u }

// V is the camera up axis
func (c *Camera) V() mgl64.Vec3 { return c.v }

// N points backward, from the look point toward the eye
func (c *Camera) N() mgl64.Vec3 { return c.n }

func (c *Camera) FOV() float64    { return c.fov }
func (c *Camera) Aspect() float64 { return c.aspect }
func (c *Camera) Near() float64   { return c.near }
func (c *Camera) Far() float64    { return c.far }

func (c *Camera) ViewMatrix() mgl64.Mat4       { return c.viewMatrix }
func (c *Camera) ProjectionMatrix() mgl64.Mat4 { return c.projectionMatrix }

// ViewProjectionMatrix returns projection * view
func (c *Camera) ViewProjectionMatrix() mgl64.Mat4 {
	return c.projectionMatrix.Mul4(c.viewMatrix)
}
