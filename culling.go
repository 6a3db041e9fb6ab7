package lens

import (
	"github.com/akmonengine/lens/actor"
	"github.com/akmonengine/lens/camera"
	"github.com/akmonengine/lens/geometry"
)

// BroadPhase inserts the actor bounds in the grid and returns the actors
// whose AABB overlaps frustumBox, in actor order. Hidden actors are never
// candidates.
func BroadPhase(spatialGrid *SpatialGrid, actors []*actor.Actor, frustumBox geometry.AABB) []*actor.Actor {
	spatialGrid.Clear()
	for i, a := range actors {
		if !a.IsHidden {
			spatialGrid.Insert(i, a)
		}
	}
	spatialGrid.SortCells()

	indices := spatialGrid.Query(frustumBox, len(actors))
	candidates := make([]*actor.Actor, 0, len(indices))
	for _, i := range indices {
		// buckets are shared between cells, drop the false positives
		if actors[i].AABB().Overlaps(frustumBox) {
			candidates = append(candidates, actors[i])
		}
	}

	return candidates
}

// NarrowPhase classifies every candidate against the frustum planes and
// returns the visible ones, keeping the candidates order
func NarrowPhase(cam *camera.Camera, candidates []*actor.Actor, workersCount int) []*actor.Actor {
	task(workersCount, candidates, func(a *actor.Actor) {
		a.Classify(cam)
	})

	visible := make([]*actor.Actor, 0, len(candidates))
	for _, a := range candidates {
		if a.IsVisible {
			visible = append(visible, a)
		}
	}

	return visible
}
