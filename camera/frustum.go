package camera

import (
	"math"

	"github.com/akmonengine/lens/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// Intercept is the result of testing a point or a volume against the frustum
type Intercept uint8

const (
	OUTSIDE Intercept = iota
	INTERSECT
	INSIDE
)

func (i Intercept) String() string {
	switch i {
	case OUTSIDE:
		return "outside"
	case INTERSECT:
		return "intersect"
	case INSIDE:
		return "inside"
	}
	return "unknown"
}

// PlaneIndex identifies one of the six frustum planes
type PlaneIndex uint8

const (
	TOP PlaneIndex = iota
	BOTTOM
	LEFT
	RIGHT
	NEAR
	FAR
)

// Corner identifies one of the eight frustum corners
type Corner uint8

const (
	NEAR_TOP_LEFT Corner = iota
	NEAR_TOP_RIGHT
	NEAR_BOTTOM_LEFT
	NEAR_BOTTOM_RIGHT
	FAR_TOP_LEFT
	FAR_TOP_RIGHT
	FAR_BOTTOM_LEFT
	FAR_BOTTOM_RIGHT
)

type frustum struct {
	corners [8]mgl64.Vec3
	planes  [6]geometry.Plane
}

// calculateFrustum rebuilds the eight corners and the six planes from the
// eye, the basis and the shape. Each plane is wound so its normal points
// into the visible volume.
func (c *Camera) calculateFrustum() {
	tang := math.Tan(geometry.Radians(c.fov) * 0.5)
	nh := c.near * tang
	nw := nh * c.aspect
	fh := c.far * tang
	fw := fh * c.aspect

	nc := c.eye.Sub(c.n.Mul(c.near))
	fc := c.eye.Sub(c.n.Mul(c.far))

	f := &c.frustum
	f.corners[NEAR_TOP_LEFT] = nc.Add(c.v.Mul(nh)).Sub(c.u.Mul(nw))
	f.corners[NEAR_TOP_RIGHT] = nc.Add(c.v.Mul(nh)).Add(c.u.Mul(nw))
	f.corners[NEAR_BOTTOM_LEFT] = nc.Sub(c.v.Mul(nh)).Sub(c.u.Mul(nw))
	f.corners[NEAR_BOTTOM_RIGHT] = nc.Sub(c.v.Mul(nh)).Add(c.u.Mul(nw))

	f.corners[FAR_TOP_LEFT] = fc.Add(c.v.Mul(fh)).Sub(c.u.Mul(fw))
	f.corners[FAR_TOP_RIGHT] = fc.Add(c.v.Mul(fh)).Add(c.u.Mul(fw))
	f.corners[FAR_BOTTOM_LEFT] = fc.Sub(c.v.Mul(fh)).Sub(c.u.Mul(fw))
	f.corners[FAR_BOTTOM_RIGHT] = fc.Sub(c.v.Mul(fh)).Add(c.u.Mul(fw))

	k := f.corners
	f.planes[TOP].SetPoints(k[NEAR_TOP_RIGHT], k[NEAR_TOP_LEFT], k[FAR_TOP_LEFT])
	f.planes[BOTTOM].SetPoints(k[NEAR_BOTTOM_LEFT], k[NEAR_BOTTOM_RIGHT], k[FAR_BOTTOM_RIGHT])
	f.planes[LEFT].SetPoints(k[NEAR_TOP_LEFT], k[NEAR_BOTTOM_LEFT], k[FAR_BOTTOM_LEFT])
	f.planes[RIGHT].SetPoints(k[NEAR_BOTTOM_RIGHT], k[NEAR_TOP_RIGHT], k[FAR_BOTTOM_RIGHT])
	f.planes[NEAR].SetPoints(k[NEAR_TOP_LEFT], k[NEAR_TOP_RIGHT], k[NEAR_BOTTOM_RIGHT])
	f.planes[FAR].SetPoints(k[FAR_TOP_RIGHT], k[FAR_TOP_LEFT], k[FAR_BOTTOM_LEFT])
}

// Planes returns the six frustum planes, indexed by PlaneIndex
func (c *Camera) Planes() [6]geometry.Plane {
	return c.frustum.planes
}

func (c *Camera) Plane(i PlaneIndex) geometry.Plane {
	return c.frustum.planes[i]
}

// Corners returns the eight frustum corners, indexed by Corner
func (c *Camera) Corners() [8]mgl64.Vec3 {
	return c.frustum.corners
}

// FrustumAABB returns the world box enclosing the frustum
func (c *Camera) FrustumAABB() geometry.AABB {
	return geometry.AABBFromPoints(c.frustum.corners[:])
}

// FrustumLines returns the 12 frustum edges as a line list (24 points):
// the four side edges, then the near rectangle, then the far rectangle.
func (c *Camera) FrustumLines() []mgl64.Vec3 {
	k := c.frustum.corners

	return []mgl64.Vec3{
		k[NEAR_TOP_LEFT], k[FAR_TOP_LEFT],
		k[NEAR_TOP_RIGHT], k[FAR_TOP_RIGHT],
		k[NEAR_BOTTOM_LEFT], k[FAR_BOTTOM_LEFT],
		k[NEAR_BOTTOM_RIGHT], k[FAR_BOTTOM_RIGHT],

		k[NEAR_TOP_RIGHT], k[NEAR_TOP_LEFT],
		k[NEAR_BOTTOM_RIGHT], k[NEAR_BOTTOM_LEFT],
		k[NEAR_TOP_RIGHT], k[NEAR_BOTTOM_RIGHT],
		k[NEAR_TOP_LEFT], k[NEAR_BOTTOM_LEFT],

		k[FAR_TOP_RIGHT], k[FAR_TOP_LEFT],
		k[FAR_BOTTOM_RIGHT], k[FAR_BOTTOM_LEFT],
		k[FAR_TOP_RIGHT], k[FAR_BOTTOM_RIGHT],
		k[FAR_TOP_LEFT], k[FAR_BOTTOM_LEFT],
	}
}

// =============================================================================
// Classification
// =============================================================================

// ClassifyPoint returns OUTSIDE as soon as the point is strictly behind one
// plane, INSIDE otherwise. A point on a plane is INSIDE; points never INTERSECT.
func (c *Camera) ClassifyPoint(p mgl64.Vec3) Intercept {
	for i := range c.frustum.planes {
		if c.frustum.planes[i].Distance(p) < 0 {
			return OUTSIDE
		}
	}

	return INSIDE
}

// ClassifySphere tests a sphere against the six planes. A sphere fully behind
// any plane is OUTSIDE; one crossing a plane is INTERSECT unless a later
// plane rejects it. A sphere exactly tangent to a plane (distance == radius)
// counts as INSIDE for that plane.
func (c *Camera) ClassifySphere(center mgl64.Vec3, radius float64) Intercept {
	result := INSIDE

	for i := range c.frustum.planes {
		distance := c.frustum.planes[i].Distance(center)
		if distance < -radius {
			return OUTSIDE
		} else if distance < radius {
			result = INTERSECT
		}
	}

	return result
}

// ClassifyAABB tests a box with its positive and negative vertices: OUTSIDE if
// the vertex furthest along a plane normal is behind it, INTERSECT if only the
// nearest one is.
func (c *Camera) ClassifyAABB(box geometry.AABB) Intercept {
	result := INSIDE

	for i := range c.frustum.planes {
		plane := c.frustum.planes[i]
		if plane.Distance(box.VertexP(plane.Normal())) < 0 {
			return OUTSIDE
		} else if plane.Distance(box.VertexN(plane.Normal())) < 0 {
			result = INTERSECT
		}
	}

	return result
}
