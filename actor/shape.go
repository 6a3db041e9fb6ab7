package actor

import (
	"math"

	"github.com/akmonengine/lens/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// ShapeType represents the type of bounding shape
type ShapeType int

const (
	ShapeTypeSphere ShapeType = iota
	ShapeTypeBox
	ShapeTypeHull
)

// ShapeInterface is the interface that all bounding shapes must implement
type ShapeInterface interface {
	Type() ShapeType
	// ComputeAABB calculates the world axis-aligned bounding box for the shape
	// at the given transform
	ComputeAABB(transform *Transformation)
	GetAABB() geometry.AABB
	// BoundingSphere returns the world-space centre and radius of a sphere
	// enclosing the shape at the given transform
	BoundingSphere(transform *Transformation) (mgl64.Vec3, float64)
}

// maxStretch returns an upper bound of the length the upper 3x3 of m gives
// to a unit vector. With orthogonal rows (scale * rotation) it is the
// largest row length, which is exact; a skewed matrix falls back to the
// Frobenius norm.
func maxStretch(m mgl64.Mat4) float64 {
	r0, r1, r2 := m.Row(0).Vec3(), m.Row(1).Vec3(), m.Row(2).Vec3()
	l0, l1, l2 := r0.Len(), r1.Len(), r2.Len()
	longest := math.Max(l0, math.Max(l1, l2))

	tolerance := 1e-12 * longest * longest
	if math.Abs(r0.Dot(r1)) > tolerance || math.Abs(r0.Dot(r2)) > tolerance || math.Abs(r1.Dot(r2)) > tolerance {
		return math.Sqrt(l0*l0 + l1*l1 + l2*l2)
	}

	return longest
}

// Box represents an oriented box bound
// The box is defined by its half-extents (half-width, half-height, half-depth)
type Box struct {
	HalfExtents mgl64.Vec3
	aabb        geometry.AABB
}

func (b *Box) Type() ShapeType {
	return ShapeTypeBox
}

// corners returns the 8 corners of the box in local space
func (b *Box) corners() [8]mgl64.Vec3 {
	hx, hy, hz := b.HalfExtents.X(), b.HalfExtents.Y(), b.HalfExtents.Z()

	return [8]mgl64.Vec3{
		{-hx, -hy, -hz},
		{+hx, -hy, -hz},
		{-hx, +hy, -hz},
		{+hx, +hy, -hz},
		{-hx, -hy, +hz},
		{+hx, -hy, +hz},
		{-hx, +hy, +hz},
		{+hx, +hy, +hz},
	}
}

func (b *Box) ComputeAABB(transform *Transformation) {
	m := transform.Matrix()
	corners := b.corners()

	var world [8]mgl64.Vec3
	for i, c := range corners {
		world[i] = mgl64.TransformCoordinate(c, m)
	}

	b.aabb = geometry.AABBFromPoints(world[:])
}

func (b *Box) GetAABB() geometry.AABB {
	return b.aabb
}

func (b *Box) BoundingSphere(transform *Transformation) (mgl64.Vec3, float64) {
	m := transform.Matrix()

	return m.Col(3).Vec3(), b.HalfExtents.Len() * maxStretch(m)
}

// Sphere represents a spherical bound
type Sphere struct {
	Radius float64
	aabb   geometry.AABB
}

func (s *Sphere) Type() ShapeType {
	return ShapeTypeSphere
}

// ComputeAABB calculates the axis-aligned bounding box of the sphere under
// the transform. The sphere becomes an ellipsoid whose half-extent along
// world axis i is Radius times the length of row i of the upper 3x3.
func (s *Sphere) ComputeAABB(transform *Transformation) {
	m := transform.Matrix()
	center := m.Col(3).Vec3()
	half := mgl64.Vec3{
		s.Radius * m.Row(0).Vec3().Len(),
		s.Radius * m.Row(1).Vec3().Len(),
		s.Radius * m.Row(2).Vec3().Len(),
	}

	s.aabb = geometry.AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (s *Sphere) GetAABB() geometry.AABB {
	return s.aabb
}

// BoundingSphere is the sphere itself; a non-uniform scale uses the largest stretch
func (s *Sphere) BoundingSphere(transform *Transformation) (mgl64.Vec3, float64) {
	m := transform.Matrix()

	return m.Col(3).Vec3(), s.Radius * maxStretch(m)
}

// Hull is a bound built from the local-space vertices of a mesh
type Hull struct {
	Vertices []mgl64.Vec3
	aabb     geometry.AABB
}

func (h *Hull) Type() ShapeType {
	return ShapeTypeHull
}

func (h *Hull) worldVertices(m mgl64.Mat4) []mgl64.Vec3 {
	world := make([]mgl64.Vec3, len(h.Vertices))
	for i, v := range h.Vertices {
		world[i] = mgl64.TransformCoordinate(v, m)
	}

	return world
}

func (h *Hull) ComputeAABB(transform *Transformation) {
	h.aabb = geometry.AABBFromPoints(h.worldVertices(transform.Matrix()))
}

func (h *Hull) GetAABB() geometry.AABB {
	return h.aabb
}

// BoundingSphere is centred on the world AABB centre, with the radius of the
// furthest vertex. It is not the minimal sphere.
func (h *Hull) BoundingSphere(transform *Transformation) (mgl64.Vec3, float64) {
	world := h.worldVertices(transform.Matrix())
	center := geometry.AABBFromPoints(world).Center()

	radius := 0.0
	for _, v := range world {
		radius = math.Max(radius, v.Sub(center).Len())
	}

	return center, radius
}
