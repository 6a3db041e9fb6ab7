package geometry

import "github.com/go-gl/mathgl/mgl64"

// BBox is a box centred on Center with full Width (x), Height (y) and Depth (z).
// The eight vertices are cached and follow this order:
//
//	0: -x +y -z   1: +x +y -z   2: +x +y +z   3: -x +y +z
//	4: -x -y -z   5: +x -y -z   6: +x -y +z   7: -x -y +z
//
// so 0-3 is the top face and 4-7 the bottom face.
type BBox struct {
	center mgl64.Vec3
	width  float64
	height float64
	depth  float64

	vertices [8]mgl64.Vec3
}

// Face normals, in the order top, bottom, right, left, front, back.
var bboxNormals = [6]mgl64.Vec3{
	{0, 1, 0},
	{0, -1, 0},
	{1, 0, 0},
	{-1, 0, 0},
	{0, 0, 1},
	{0, 0, -1},
}

// NewBBox creates a box centred on center
func NewBBox(center mgl64.Vec3, width, height, depth float64) *BBox {
	b := &BBox{
		center: center,
		width:  width,
		height: height,
		depth:  depth,
	}
	b.Recalculate()

	return b
}

// NewUnitBBox creates the default 2x2x2 box centred on the origin
func NewUnitBBox() *BBox {
	return NewBBox(mgl64.Vec3{}, 2, 2, 2)
}

// NewBBoxMinMax creates a box from its extreme coordinates
func NewBBoxMinMax(minX, maxX, minY, maxY, minZ, maxZ float64) *BBox {
	return NewBBox(
		mgl64.Vec3{(minX + maxX) / 2, (minY + maxY) / 2, (minZ + maxZ) / 2},
		maxX-minX,
		maxY-minY,
		maxZ-minZ,
	)
}

// SetCenter moves the box and its vertices.
func (b *BBox) SetCenter(center mgl64.Vec3) {
	b.center = center
	b.computeVertices()
}

func (b *BBox) SetWidth(w float64, recalc bool) {
	b.width = w
	if recalc {
		b.Recalculate()
	}
}

func (b *BBox) SetHeight(h float64, recalc bool) {
	b.height = h
	if recalc {
		b.Recalculate()
	}
}

func (b *BBox) SetDepth(d float64, recalc bool) {
	b.depth = d
	if recalc {
		b.Recalculate()
	}
}

// Recalculate refreshes the cached vertices after size changes made with
// recalc set to false.
func (b *BBox) Recalculate() {
	b.computeVertices()
}

func (b *BBox) computeVertices() {
	hw, hh, hd := b.width/2, b.height/2, b.depth/2
	c := b.center

	b.vertices = [8]mgl64.Vec3{
		{c.X() - hw, c.Y() + hh, c.Z() - hd},
		{c.X() + hw, c.Y() + hh, c.Z() - hd},
		{c.X() + hw, c.Y() + hh, c.Z() + hd},
		{c.X() - hw, c.Y() + hh, c.Z() + hd},
		{c.X() - hw, c.Y() - hh, c.Z() - hd},
		{c.X() + hw, c.Y() - hh, c.Z() - hd},
		{c.X() + hw, c.Y() - hh, c.Z() + hd},
		{c.X() - hw, c.Y() - hh, c.Z() + hd},
	}
}

func (b *BBox) Center() mgl64.Vec3 { return b.center }
func (b *BBox) Width() float64     { return b.width }
func (b *BBox) Height() float64    { return b.height }
func (b *BBox) Depth() float64     { return b.depth }

// Vertices returns the cached vertices
func (b *BBox) Vertices() [8]mgl64.Vec3 {
	return b.vertices
}

// Normals returns the six outward face normals
func (b *BBox) Normals() [6]mgl64.Vec3 {
	return bboxNormals
}

// MinMax returns the extreme coordinates, as minX, maxX, minY, maxY, minZ, maxZ
func (b *BBox) MinMax() (float64, float64, float64, float64, float64, float64) {
	a := b.AABB()
	return a.Min.X(), a.Max.X(), a.Min.Y(), a.Max.Y(), a.Min.Z(), a.Max.Z()
}

// AABB returns the box as an AABB, ignoring any stale vertex cache
func (b *BBox) AABB() AABB {
	half := mgl64.Vec3{b.width / 2, b.height / 2, b.depth / 2}

	return AABB{
		Min: b.center.Sub(half),
		Max: b.center.Add(half),
	}
}

// Transformed returns the eight vertices moved by a model matrix.
// Under a rotation they describe an oriented box.
func (b *BBox) Transformed(m mgl64.Mat4) [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	for i, v := range b.vertices {
		out[i] = mgl64.TransformCoordinate(v, m)
	}

	return out
}
