package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestNewBBox_Vertices(t *testing.T) {
	b := NewBBox(mgl64.Vec3{1, 2, 3}, 2, 4, 6)

	expected := [8]mgl64.Vec3{
		{0, 4, 0},
		{2, 4, 0},
		{2, 4, 6},
		{0, 4, 6},
		{0, 0, 0},
		{2, 0, 0},
		{2, 0, 6},
		{0, 0, 6},
	}
	assert.Equal(t, expected, b.Vertices())

	aabb := b.AABB()
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, aabb.Min)
	assert.Equal(t, mgl64.Vec3{2, 4, 6}, aabb.Max)
}

func TestNewUnitBBox(t *testing.T) {
	b := NewUnitBBox()

	assert.Equal(t, mgl64.Vec3{}, b.Center())
	assert.Equal(t, 2.0, b.Width())
	assert.Equal(t, 2.0, b.Height())
	assert.Equal(t, 2.0, b.Depth())
	assert.Equal(t, mgl64.Vec3{-1, 1, -1}, b.Vertices()[0])
}

func TestNewBBoxMinMax(t *testing.T) {
	b := NewBBoxMinMax(-1, 3, 0, 2, -4, 4)

	assert.Equal(t, mgl64.Vec3{1, 1, 0}, b.Center())
	minX, maxX, minY, maxY, minZ, maxZ := b.MinMax()
	assert.Equal(t, []float64{-1, 3, 0, 2, -4, 4}, []float64{minX, maxX, minY, maxY, minZ, maxZ})
}

func TestBBox_DeferredRecalculate(t *testing.T) {
	b := NewBBox(mgl64.Vec3{}, 2, 2, 2)

	b.SetWidth(4, false)
	// vertices are stale until Recalculate
	assert.Equal(t, mgl64.Vec3{-1, 1, -1}, b.Vertices()[0])

	b.Recalculate()
	assert.Equal(t, mgl64.Vec3{-2, 1, -1}, b.Vertices()[0])

	b.SetHeight(6, true)
	b.SetDepth(8, true)
	assert.Equal(t, mgl64.Vec3{2, -3, 4}, b.Vertices()[6])

	b.SetCenter(mgl64.Vec3{10, 0, 0})
	assert.Equal(t, mgl64.Vec3{12, -3, 4}, b.Vertices()[6])
}

func TestBBox_Normals(t *testing.T) {
	b := NewUnitBBox()

	for _, n := range b.Normals() {
		assert.InDelta(t, 1.0, n.Len(), tolerance)
	}
}

func TestBBox_Transformed(t *testing.T) {
	b := NewBBox(mgl64.Vec3{}, 2, 2, 2)

	// quarter turn around Y then move up by 5
	m := mgl64.Translate3D(0, 5, 0).Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(90)))
	vertices := b.Transformed(m)

	// vertex 0 (-1, 1, -1) rotates to (-1, 1, 1)
	assertVec3InDelta(t, mgl64.Vec3{-1, 6, 1}, vertices[0], 1e-12)

	world := AABBFromPoints(vertices[:])
	assertVec3InDelta(t, mgl64.Vec3{-1, 4, -1}, world.Min, 1e-12)
	assertVec3InDelta(t, mgl64.Vec3{1, 6, 1}, world.Max, 1e-12)
}
