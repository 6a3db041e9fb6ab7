package geometry

import "github.com/go-gl/mathgl/mgl64"

// Plane represents an infinite plane as an implicit half-space.
// The plane is defined by the equation: Normal · p + D = 0
// where Normal is kept at unit length and D is the signed distance from the
// origin along the normal.
type Plane struct {
	normal mgl64.Vec3
	point  mgl64.Vec3
	d      float64
}

// NewPlaneFromPoints builds a plane through three points.
// The winding of p1, p2, p3 decides the sign of the normal.
func NewPlaneFromPoints(p1, p2, p3 mgl64.Vec3) Plane {
	var p Plane
	p.SetPoints(p1, p2, p3)

	return p
}

// NewPlaneFromNormalPoint builds a plane from a (not necessarily unit) normal
// and any point lying on the plane.
func NewPlaneFromNormalPoint(normal, point mgl64.Vec3) Plane {
	var p Plane
	p.SetNormalPoint(normal, point)

	return p
}

// NewPlaneFromCoefficients builds the plane a*x + b*y + c*z + d = 0.
func NewPlaneFromCoefficients(a, b, c, d float64) Plane {
	var p Plane
	p.SetCoefficients(a, b, c, d)

	return p
}

// SetPoints recomputes the plane from three points: the normal is
// normalize(cross(p3-p2, p1-p2)) and p2 is kept as the reference point.
func (p *Plane) SetPoints(p1, p2, p3 mgl64.Vec3) {
	aux1 := p1.Sub(p2)
	aux2 := p3.Sub(p2)

	p.normal = aux2.Cross(aux1).Normalize()
	p.point = p2
	p.d = -p.normal.Dot(p.point)
}

// SetNormalPoint recomputes the plane from a normal and a point on the plane.
func (p *Plane) SetNormalPoint(normal, point mgl64.Vec3) {
	p.point = point
	p.normal = normal.Normalize()
	p.d = -p.normal.Dot(p.point)
}

// SetCoefficients recomputes the plane from raw equation coefficients.
// (a,b,c) is normalized and d is divided by the same length, so the plane
// keeps its position in space.
func (p *Plane) SetCoefficients(a, b, c, d float64) {
	n := mgl64.Vec3{a, b, c}
	l := n.Len()

	p.normal = n.Normalize()
	p.d = d / l
	// closest point to the origin
	p.point = p.normal.Mul(-p.d)
}

// Distance returns the signed distance of point from the plane: positive on
// the side the normal points toward, zero on the plane, negative behind it.
func (p Plane) Distance(point mgl64.Vec3) float64 {
	return p.d + p.normal.Dot(point)
}

func (p Plane) Normal() mgl64.Vec3 {
	return p.normal
}

// Point returns the reference point used when the plane was built.
func (p Plane) Point() mgl64.Vec3 {
	return p.point
}

func (p Plane) D() float64 {
	return p.d
}

// Flip returns the same plane with the opposite orientation.
func (p Plane) Flip() Plane {
	return Plane{
		normal: p.normal.Mul(-1),
		point:  p.point,
		d:      -p.d,
	}
}
