package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB creates a box from a corner and its extents along each axis.
// A negative extent is flipped and the corner moved, so Min <= Max always holds.
func NewAABB(corner mgl64.Vec3, x, y, z float64) AABB {
	if x < 0 {
		x = -x
		corner[0] -= x
	}
	if y < 0 {
		y = -y
		corner[1] -= y
	}
	if z < 0 {
		z = -z
		corner[2] -= z
	}

	return AABB{
		Min: corner,
		Max: corner.Add(mgl64.Vec3{x, y, z}),
	}
}

// AABBFromPoints returns the smallest box enclosing all points.
// An empty slice gives the zero box.
func AABBFromPoints(points []mgl64.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]
	for _, p := range points[1:] {
		min[0] = math.Min(min[0], p[0])
		min[1] = math.Min(min[1], p[1])
		min[2] = math.Min(min[2], p[2])

		max[0] = math.Max(max[0], p[0])
		max[1] = math.Max(max[1], p[1])
		max[2] = math.Max(max[2], p[2])
	}

	return AABB{Min: min, Max: max}
}

// Extents returns the size of the box along each axis
func (a AABB) Extents() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// VertexP returns the corner of the box furthest along normal
// (the "positive vertex" used by plane tests).
func (a AABB) VertexP(normal mgl64.Vec3) mgl64.Vec3 {
	res := a.Min
	if normal.X() > 0 {
		res[0] = a.Max.X()
	}
	if normal.Y() > 0 {
		res[1] = a.Max.Y()
	}
	if normal.Z() > 0 {
		res[2] = a.Max.Z()
	}

	return res
}

// VertexN returns the corner of the box furthest against normal.
func (a AABB) VertexN(normal mgl64.Vec3) mgl64.Vec3 {
	res := a.Min
	if normal.X() < 0 {
		res[0] = a.Max.X()
	}
	if normal.Y() < 0 {
		res[1] = a.Max.Y()
	}
	if normal.Z() < 0 {
		res[2] = a.Max.Z()
	}

	return res
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// Union returns the smallest box enclosing both boxes
func (a AABB) Union(other AABB) AABB {
	return AABB{
		Min: mgl64.Vec3{
			math.Min(a.Min.X(), other.Min.X()),
			math.Min(a.Min.Y(), other.Min.Y()),
			math.Min(a.Min.Z(), other.Min.Z()),
		},
		Max: mgl64.Vec3{
			math.Max(a.Max.X(), other.Max.X()),
			math.Max(a.Max.Y(), other.Max.Y()),
			math.Max(a.Max.Z(), other.Max.Z()),
		},
	}
}
