package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransformation_Identity(t *testing.T) {
	tr := NewTransformation()

	assert.Equal(t, mgl64.Ident4(), tr.Matrix())
	assert.Equal(t, CacheValid, tr.State())
	assert.Equal(t, KindDecomposed, tr.Kind())
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, tr.Scale())
}

func TestTransformation_SettersInvalidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(tr *Transformation)
	}{
		{"SetPosition", func(tr *Transformation) { tr.SetPositionXYZ(1, 2, 3) }},
		{"AddPosition", func(tr *Transformation) { tr.AddPositionXYZ(1, 0, 0) }},
		{"SetScale", func(tr *Transformation) { tr.SetScaleXYZ(2, 2, 2) }},
		{"AddScale", func(tr *Transformation) { tr.AddScaleXYZ(1, 0, 0) }},
		{"SetRotation", func(tr *Transformation) { tr.SetRotationXYZ(0, 45, 0) }},
		{"AddRotation", func(tr *Transformation) { tr.AddRotationXYZ(10, 0, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransformation()
			tt.mutate(tr)
			assert.Equal(t, CacheStale, tr.State())

			m := tr.Matrix()
			assert.Equal(t, CacheValid, tr.State())
			assert.NotEqual(t, mgl64.Ident4(), m)
		})
	}
}

func TestTransformation_Accumulators(t *testing.T) {
	tr := NewTransformation()
	tr.AddPositionXYZ(1, 2, 3)
	tr.AddPosition(mgl64.Vec3{1, 1, 1})
	tr.AddScaleXYZ(1, 0, 0)
	tr.AddRotationXYZ(0, 30, 0)
	tr.AddRotation(mgl64.Vec3{0, 15, 5})

	assert.Equal(t, mgl64.Vec3{2, 3, 4}, tr.Position())
	assert.Equal(t, mgl64.Vec3{2, 1, 1}, tr.Scale(), "scale is added, not multiplied")
	assert.Equal(t, mgl64.Vec3{0, 45, 5}, tr.Rotation())
}

func TestTransformation_Reset(t *testing.T) {
	tr := NewTransformation()
	tr.SetPositionXYZ(4, 5, 6)
	tr.SetRotationXYZ(10, 20, 30)
	tr.SetScaleXYZ(3, 3, 3)
	tr.SetMatrix(tr.Matrix())

	tr.Reset()

	assert.Equal(t, CacheStale, tr.State())
	assert.Equal(t, KindDecomposed, tr.Kind())
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, tr.Scale())

	assert.Equal(t, mgl64.Ident4(), tr.Matrix())
	assert.Equal(t, CacheValid, tr.State())
}

func TestTransformation_MatrixLayout(t *testing.T) {
	tr := NewTransformation()
	tr.SetPositionXYZ(7, -8, 9)

	m := tr.Matrix()
	assert.Equal(t, mgl64.Vec4{7, -8, 9, 1}, m.Col(3))
	assert.Equal(t, mgl64.Vec4{7, -8, 9, 1}, tr.TransposeMatrix().Row(3))
}

func TestTransformation_CompositionOrder(t *testing.T) {
	tests := []struct {
		name     string
		scale    mgl64.Vec3
		rotation mgl64.Vec3
		point    mgl64.Vec3
		want     mgl64.Vec3
	}{
		{
			// rotate first, then scale: (1,0,0) -> (0,1,0) -> (0,1,0)
			name:     "scale after Z rotation",
			scale:    mgl64.Vec3{2, 1, 1},
			rotation: mgl64.Vec3{0, 0, 90},
			point:    mgl64.Vec3{1, 0, 0},
			want:     mgl64.Vec3{0, 1, 0},
		},
		{
			name:     "scale after Z rotation, Y axis",
			scale:    mgl64.Vec3{2, 1, 1},
			rotation: mgl64.Vec3{0, 0, 90},
			point:    mgl64.Vec3{0, 1, 0},
			want:     mgl64.Vec3{-2, 0, 0},
		},
		{
			// matrix is rotX * rotY: Y acts first on the point
			name:     "X and Y rotations",
			scale:    mgl64.Vec3{1, 1, 1},
			rotation: mgl64.Vec3{90, 90, 0},
			point:    mgl64.Vec3{0, 0, 1},
			want:     mgl64.Vec3{1, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := placed(mgl64.Vec3{}, tt.scale, tt.rotation)
			got := tr.TransformPoint(tt.point)
			assert.True(t, vec3Equal(tt.want, got, 1e-12), "got %v, want %v", got, tt.want)
		})
	}
}

func TestTransformation_MulComposesTranslations(t *testing.T) {
	a := NewTransformation()
	a.SetPositionXYZ(1, 2, 3)
	b := NewTransformation()
	b.SetPositionXYZ(4, 5, 6)

	ab := a.Mul(b)

	assert.Equal(t, mgl64.Vec4{5, 7, 9, 1}, ab.Matrix().Col(3))
	assert.Equal(t, KindComposed, ab.Kind())
	assert.Equal(t, CacheValid, ab.State())

	// a composed left operand keeps its matrix
	c := NewTransformation()
	c.SetPositionXYZ(1, 1, 1)
	abc := ab.Mul(c)
	assert.Equal(t, mgl64.Vec4{6, 8, 10, 1}, abc.Matrix().Col(3))

	// operands are not modified
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, a.Position())
	assert.Equal(t, KindDecomposed, a.Kind())
}

func TestTransformation_MulAssign(t *testing.T) {
	a := placed(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 2, 2}, mgl64.Vec3{})
	b := NewTransformation()
	b.SetPositionXYZ(1, 0, 0)

	a.MulAssign(b)

	assert.Equal(t, KindComposed, a.Kind())
	// scale applies to b's translation
	assert.Equal(t, mgl64.Vec4{2, 0, 0, 1}, a.Matrix().Col(3))
}

func TestTransformation_MulGlobal(t *testing.T) {
	parent := placed(mgl64.Vec3{10, 0, 0}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0, 90, 0})
	child := NewTransformation()
	child.SetPositionXYZ(0, 0, 1)

	world := child.MulGlobal(parent)

	origin := mgl64.TransformCoordinate(mgl64.Vec3{}, world)
	assert.True(t, vec3Equal(mgl64.Vec3{11, 0, 0}, origin, 1e-12), "origin = %v", origin)
}

func TestTransformation_SetMatrix(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3).Mul4(mgl64.Scale3D(2, 2, 2))

	tr := NewTransformation()
	tr.SetMatrix(m)

	assert.Equal(t, KindComposed, tr.Kind())
	assert.Equal(t, CacheValid, tr.State())
	assert.Equal(t, m, tr.Matrix())

	// a decomposed setter drops the composed matrix and restarts from identity
	tr.SetPositionXYZ(0, 5, 0)
	assert.Equal(t, KindDecomposed, tr.Kind())
	assert.Equal(t, mgl64.Translate3D(0, 5, 0), tr.Matrix())
}

func TestTransformation_ComputeMatricesIsIdempotent(t *testing.T) {
	tr := placed(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 1}, mgl64.Vec3{12, 34, 56})
	tr.ComputeMatrices()
	first := tr.Matrix()
	tr.ComputeMatrices()

	assert.Equal(t, first, tr.Matrix())
}

func TestTransformation_NormalMatrix(t *testing.T) {
	t.Run("rotation only", func(t *testing.T) {
		tr := placed(mgl64.Vec3{5, 5, 5}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{20, 40, 60})

		assert.True(t, mat4Equal(tr.Matrix().Mat3().Mat4(), tr.NormalMatrix().Mat4(), 1e-12))
	})

	t.Run("non-uniform scale", func(t *testing.T) {
		tr := placed(mgl64.Vec3{}, mgl64.Vec3{2, 1, 1}, mgl64.Vec3{})
		normal := tr.NormalMatrix()

		require.True(t, mat4Equal(mgl64.Diag3(mgl64.Vec3{0.5, 1, 1}).Mat4(), normal.Mat4(), 1e-12))

		// the normal of the plane x + y = 0 stays perpendicular once stretched
		tangent := tr.TransformPoint(mgl64.Vec3{1, -1, 0})
		n := normal.Mul3x1(mgl64.Vec3{1, 1, 0})
		assert.InDelta(t, 0.0, n.Dot(tangent), 1e-12)
	})
}
