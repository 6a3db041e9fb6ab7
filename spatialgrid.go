package lens

import (
	"math"
	"sort"

	"github.com/akmonengine/lens/actor"
	"github.com/akmonengine/lens/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// ============================================================================
// Types
// ============================================================================

// CellKey is the integer coordinate of a cell in 3D space
type CellKey struct {
	X, Y, Z int
}

// Cell holds the indices of the actors overlapping it
type Cell struct {
	actorIndices []int
}

// SpatialGrid is a uniform grid hashed into a power of two number of buckets.
// Distinct cells may share a bucket, so queries return candidates only.
type SpatialGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int

	seen []bool
}

// ============================================================================
// Constructor
// ============================================================================

// NewSpatialGrid creates a grid of cellSize-wide cells, rounding numCells up
// to the next power of two
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	numCells = geometry.NextPow2(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].actorIndices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

// Insert adds an actor index to every cell its AABB overlaps
func (sg *SpatialGrid) Insert(actorIndex int, a *actor.Actor) {
	sg.forEachCell(a.AABB(), func(cellIdx int) {
		sg.cells[cellIdx].actorIndices = append(sg.cells[cellIdx].actorIndices, actorIndex)
	})
}

func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].actorIndices = sg.cells[i].actorIndices[:0]
	}
}

func (sg *SpatialGrid) SortCells() {
	for i := range sg.cells {
		if len(sg.cells[i].actorIndices) > 1 {
			sort.Ints(sg.cells[i].actorIndices)
		}
	}
}

// Query returns the sorted, deduplicated indices of the actors stored in the
// cells overlapped by box. actorsCount bounds the indices inserted since the
// last Clear.
func (sg *SpatialGrid) Query(box geometry.AABB, actorsCount int) []int {
	if cap(sg.seen) < actorsCount {
		sg.seen = make([]bool, actorsCount)
	}
	seen := sg.seen[:actorsCount]
	clear(seen)

	indices := make([]int, 0, 16)
	sg.forEachCell(box, func(cellIdx int) {
		for _, idx := range sg.cells[cellIdx].actorIndices {
			if !seen[idx] {
				seen[idx] = true
				indices = append(indices, idx)
			}
		}
	})
	sort.Ints(indices)

	return indices
}

// forEachCell calls fn with the bucket of every cell overlapped by box.
// A box spanning more cells than there are buckets visits every bucket once.
func (sg *SpatialGrid) forEachCell(box geometry.AABB, fn func(cellIdx int)) {
	minCell := sg.worldToCell(box.Min)
	maxCell := sg.worldToCell(box.Max)

	span := float64(maxCell.X-minCell.X+1) * float64(maxCell.Y-minCell.Y+1) * float64(maxCell.Z-minCell.Z+1)
	if span >= float64(len(sg.cells)) {
		for i := range sg.cells {
			fn(i)
		}
		return
	}

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				fn(sg.hashCell(CellKey{x, y, z}))
			}
		}
	}
}

// worldToCell converts a world position into cell coordinates
func (sg *SpatialGrid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / sg.cellSize)),
		Y: int(math.Floor(pos.Y() / sg.cellSize)),
		Z: int(math.Floor(pos.Z() / sg.cellSize)),
	}
}

// hashCell maps a cell to its bucket
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & sg.cellMask
}
