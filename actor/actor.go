package actor

import (
	"github.com/akmonengine/lens/camera"
	"github.com/akmonengine/lens/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// Actor represents an object of the scene tested for visibility.
// Refresh writes to the Shape bounds and the Transform matrix cache, so two
// actors must not share a Shape or a Transformation.
type Actor struct {
	Id any

	// Spatial properties
	Transform *Transformation
	// Bounding shape, in local space
	Shape ShapeInterface

	// IsStatic actors compute their bounds once; call Invalidate after moving one
	IsStatic bool
	// IsHidden actors are never visible, whatever the camera
	IsHidden bool

	// Result of the last visibility pass
	IsVisible bool
	Intercept camera.Intercept

	sphereCenter mgl64.Vec3
	sphereRadius float64
	boundsValid  bool
}

// NewActor creates an actor and computes its bounds
func NewActor(transform *Transformation, shape ShapeInterface, isStatic bool) *Actor {
	if transform == nil {
		transform = NewTransformation()
	}

	a := &Actor{
		Transform: transform,
		Shape:     shape,
		IsStatic:  isStatic,
	}
	a.Refresh()

	return a
}

// Refresh recomputes the world AABB and bounding sphere from the transform.
// Static actors skip it once their bounds are known.
func (a *Actor) Refresh() {
	if a.IsStatic && a.boundsValid {
		return
	}

	a.Shape.ComputeAABB(a.Transform)
	a.sphereCenter, a.sphereRadius = a.Shape.BoundingSphere(a.Transform)
	a.boundsValid = true
}

// Invalidate forces the next Refresh to recompute the bounds
func (a *Actor) Invalidate() {
	a.boundsValid = false
}

// BoundingSphere returns the world sphere computed by the last Refresh
func (a *Actor) BoundingSphere() (mgl64.Vec3, float64) {
	return a.sphereCenter, a.sphereRadius
}

// AABB returns the world box computed by the last Refresh
func (a *Actor) AABB() geometry.AABB {
	return a.Shape.GetAABB()
}

func (a *Actor) Hide() {
	a.IsHidden = true
	a.setIntercept(camera.OUTSIDE)
}

func (a *Actor) Show() {
	a.IsHidden = false
}

// Classify tests the bounding sphere against the camera frustum, and
// refines an INTERSECT result with the world AABB. The result is stored on
// the actor.
func (a *Actor) Classify(cam *camera.Camera) camera.Intercept {
	if a.IsHidden {
		a.setIntercept(camera.OUTSIDE)
		return camera.OUTSIDE
	}

	result := cam.ClassifySphere(a.sphereCenter, a.sphereRadius)
	if result == camera.INTERSECT {
		result = cam.ClassifyAABB(a.Shape.GetAABB())
	}
	a.setIntercept(result)

	return result
}

func (a *Actor) setIntercept(intercept camera.Intercept) {
	a.Intercept = intercept
	a.IsVisible = intercept != camera.OUTSIDE
}

// Cull marks the actor as outside the view, without testing it
func (a *Actor) Cull() {
	a.setIntercept(camera.OUTSIDE)
}
