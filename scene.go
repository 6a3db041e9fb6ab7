package lens

import (
	"log/slog"

	"github.com/akmonengine/lens/actor"
	"github.com/akmonengine/lens/camera"
)

const DEFAULT_WORKERS = 1

// Grid used by a Scene built without one
const (
	DEFAULT_CELL_SIZE = 8.0
	DEFAULT_CELLS     = 4096
)

// Scene runs visibility passes over its actors. With Workers above one,
// actors are refreshed and classified concurrently: each actor needs its
// own Shape and Transformation.
type Scene struct {
	// List of all actors in the scene
	Actors      []*actor.Actor
	SpatialGrid *SpatialGrid
	Workers     int

	Events Events
	// Logger receives one debug record per visibility pass; nil uses slog.Default()
	Logger *slog.Logger
}

// NewScene creates an empty scene with its own grid and events
func NewScene(cellSize float64, numCells int, workers int) *Scene {
	return &Scene{
		SpatialGrid: NewSpatialGrid(cellSize, numCells),
		Workers:     workers,
		Events:      NewEvents(),
	}
}

// AddActor adds an actor to the scene
func (s *Scene) AddActor(a *actor.Actor) {
	s.Actors = append(s.Actors, a)
}

// RemoveActor removes an actor from the scene. No exit event is sent for it.
func (s *Scene) RemoveActor(a *actor.Actor) {
	k := -1
	for i, other := range s.Actors {
		if other == a {
			k = i
			break
		}
	}

	if k != -1 {
		s.Actors = append(s.Actors[:k], s.Actors[k+1:]...)
	}

	s.Events.forget(a)
}

// Cull runs a visibility pass for cam: every actor gets its Intercept and
// IsVisible updated, and the visible ones are returned in scene order.
// Visibility events are sent before Cull returns.
//
// Cull only reads cam; it must not be mutated during the pass.
func (s *Scene) Cull(cam *camera.Camera) []*actor.Actor {
	s.Workers = max(DEFAULT_WORKERS, s.Workers)
	if s.SpatialGrid == nil {
		s.SpatialGrid = NewSpatialGrid(DEFAULT_CELL_SIZE, DEFAULT_CELLS)
	}
	if s.Events.listeners == nil {
		s.Events = NewEvents()
	}

	// Phase 1: bounds, everything starts outside
	s.refresh()

	// Phase 2: candidates from the grid, against the frustum box
	candidates := BroadPhase(s.SpatialGrid, s.Actors, cam.FrustumAABB())

	// Phase 3: frustum planes
	visible := NarrowPhase(cam, candidates, s.Workers)

	s.Events.processVisibilityEvents(visible)
	s.Events.processHideEvents(s.Actors)
	s.Events.flush()

	s.logger().Debug("visibility pass",
		slog.Int("actors", len(s.Actors)),
		slog.Int("candidates", len(candidates)),
		slog.Int("visible", len(visible)),
	)

	return visible
}

func (s *Scene) refresh() {
	task(s.Workers, s.Actors, func(a *actor.Actor) {
		a.Refresh()
		a.Cull()
	})
}

func (s *Scene) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}

	return s.Logger
}
