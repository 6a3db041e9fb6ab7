package actor

import (
	"github.com/akmonengine/lens/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// CacheState tells whether the cached model matrix matches the decomposed fields
type CacheState uint8

const (
	CacheStale CacheState = iota
	CacheValid
)

// Kind tells which representation of a Transformation is live
type Kind uint8

const (
	// KindDecomposed transforms are driven by position, scale and rotation
	KindDecomposed Kind = iota
	// KindComposed transforms only carry a matrix (products, SetMatrix).
	// Their position, scale and rotation are meaningless.
	KindComposed
)

// MatrixSource is anything able to provide a model matrix
type MatrixSource interface {
	Matrix() mgl64.Mat4
}

// Transformation represents the placement of an object in 3D space.
// Rotation is a set of Euler angles in degrees, applied X then Y then Z.
// The model matrix is computed lazily: setters only invalidate the cache.
// The zero value has a zero scale, use NewTransformation.
type Transformation struct {
	position mgl64.Vec3
	scale    mgl64.Vec3
	rotation mgl64.Vec3

	matrix mgl64.Mat4
	state  CacheState
	kind   Kind
}

// NewTransformation creates an identity transform
func NewTransformation() *Transformation {
	t := &Transformation{}
	t.Reset()

	return t
}

// Reset restores the identity: no rotation, no translation, unit scale.
// The cache is left stale, the next Matrix call recomputes it.
func (t *Transformation) Reset() {
	t.position = mgl64.Vec3{0, 0, 0}
	t.scale = mgl64.Vec3{1, 1, 1}
	t.rotation = mgl64.Vec3{0, 0, 0}
	t.kind = KindDecomposed
	t.state = CacheStale
}

// invalidate marks the cache stale. A composed transform goes back to
// decomposed mode, starting from the identity fields.
func (t *Transformation) invalidate() {
	if t.kind == KindComposed {
		t.position = mgl64.Vec3{0, 0, 0}
		t.scale = mgl64.Vec3{1, 1, 1}
		t.rotation = mgl64.Vec3{0, 0, 0}
		t.kind = KindDecomposed
	}
	t.state = CacheStale
}

func (t *Transformation) SetPosition(position mgl64.Vec3) {
	t.invalidate()
	t.position = position
}

func (t *Transformation) SetPositionXYZ(x, y, z float64) {
	t.SetPosition(mgl64.Vec3{x, y, z})
}

// AddPosition accumulates a translation
func (t *Transformation) AddPosition(position mgl64.Vec3) {
	t.invalidate()
	t.position = t.position.Add(position)
}

func (t *Transformation) AddPositionXYZ(x, y, z float64) {
	t.AddPosition(mgl64.Vec3{x, y, z})
}

func (t *Transformation) SetScale(scale mgl64.Vec3) {
	t.invalidate()
	t.scale = scale
}

func (t *Transformation) SetScaleXYZ(x, y, z float64) {
	t.SetScale(mgl64.Vec3{x, y, z})
}

// AddScale adds to the scale component-wise (it does not multiply)
func (t *Transformation) AddScale(scale mgl64.Vec3) {
	t.invalidate()
	t.scale = t.scale.Add(scale)
}

func (t *Transformation) AddScaleXYZ(x, y, z float64) {
	t.AddScale(mgl64.Vec3{x, y, z})
}

// SetRotation sets the Euler angles, in degrees
func (t *Transformation) SetRotation(rotation mgl64.Vec3) {
	t.invalidate()
	t.rotation = rotation
}

func (t *Transformation) SetRotationXYZ(x, y, z float64) {
	t.SetRotation(mgl64.Vec3{x, y, z})
}

func (t *Transformation) AddRotation(rotation mgl64.Vec3) {
	t.invalidate()
	t.rotation = t.rotation.Add(rotation)
}

func (t *Transformation) AddRotationXYZ(x, y, z float64) {
	t.AddRotation(mgl64.Vec3{x, y, z})
}

// SetMatrix replaces the model matrix and turns t into a composed transform.
// The next decomposed setter discards m and restarts from the identity.
func (t *Transformation) SetMatrix(m mgl64.Mat4) {
	t.matrix = m
	t.kind = KindComposed
	t.state = CacheValid
}

// ComputeMatrices rebuilds the model matrix if the cache is stale
func (t *Transformation) ComputeMatrices() {
	if t.state == CacheValid {
		return
	}

	t.matrix = composeMatrix(t.position, t.scale, t.rotation)
	t.state = CacheValid
}

// composeMatrix builds scale * rotX * rotY * rotZ and writes position into
// the translation column.
func composeMatrix(position, scale, rotation mgl64.Vec3) mgl64.Mat4 {
	s := mgl64.Scale3D(scale.X(), scale.Y(), scale.Z())
	rX := mgl64.HomogRotate3DX(geometry.Radians(rotation.X()))
	rY := mgl64.HomogRotate3DY(geometry.Radians(rotation.Y()))
	rZ := mgl64.HomogRotate3DZ(geometry.Radians(rotation.Z()))

	m := s.Mul4(rX).Mul4(rY).Mul4(rZ)
	m.SetCol(3, position.Vec4(1))

	return m
}

// Matrix returns the up-to-date model matrix
func (t *Transformation) Matrix() mgl64.Mat4 {
	t.ComputeMatrices()
	return t.matrix
}

// TransposeMatrix returns the model matrix in row-major order
func (t *Transformation) TransposeMatrix() mgl64.Mat4 {
	return t.Matrix().Transpose()
}

// NormalMatrix returns the inverse transpose of the upper 3x3 of the model
// matrix, used to transform normals.
func (t *Transformation) NormalMatrix() mgl64.Mat3 {
	return t.Matrix().Mat3().Inv().Transpose()
}

// Mul returns the composed transform t * other. Only the matrix of the
// result is meaningful.
func (t *Transformation) Mul(other MatrixSource) *Transformation {
	result := &Transformation{}
	result.SetMatrix(t.Matrix().Mul4(other.Matrix()))

	return result
}

// MulAssign replaces t with t * other, leaving t composed
func (t *Transformation) MulAssign(other MatrixSource) {
	t.SetMatrix(t.Matrix().Mul4(other.Matrix()))
}

// MulGlobal returns global * t, the matrix of t placed under a parent transform
func (t *Transformation) MulGlobal(global MatrixSource) mgl64.Mat4 {
	return global.Matrix().Mul4(t.Matrix())
}

// TransformPoint moves a local-space point to world space
func (t *Transformation) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, t.Matrix())
}

func (t *Transformation) Position() mgl64.Vec3 { return t.position }
func (t *Transformation) Scale() mgl64.Vec3    { return t.scale }
func (t *Transformation) Rotation() mgl64.Vec3 { return t.rotation }
func (t *Transformation) State() CacheState    { return t.state }
func (t *Transformation) Kind() Kind           { return t.kind }
