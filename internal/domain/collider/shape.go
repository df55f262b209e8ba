// Package collider implements the convex shapes used by the movement core and
// a separating-axis collision test between them.
package collider

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/climb/internal/domain/geom"
)

// Shape is a convex shape in local coordinates.
// The set of shapes is closed: Box, Segment and Point.
type Shape interface {
	// Points returns the vertices of the shape.
	Points() []mgl64.Vec2
	// CriticalAxes returns the shape's own candidate separating axes.
	CriticalAxes() []mgl64.Vec2

	isShape()
}

// Box is an axis-aligned rectangle centered at Center.
type Box struct {
	Center      mgl64.Vec2
	HalfExtents mgl64.Vec2
}

// NewRectangle creates a box of the given size whose bottom edge is at the
// local origin, so that a body positioned at its feet stands on the box bottom.
func NewRectangle(width, height float64) Box {
	return Box{
		Center:      mgl64.Vec2{0, height / 2},
		HalfExtents: mgl64.Vec2{width / 2, height / 2},
	}
}

// Points returns the four corners, counter-clockwise from the bottom left.
func (b Box) Points() []mgl64.Vec2 {
	h := b.HalfExtents
	return []mgl64.Vec2{
		b.Center.Add(mgl64.Vec2{-h[0], -h[1]}),
		b.Center.Add(mgl64.Vec2{h[0], -h[1]}),
		b.Center.Add(mgl64.Vec2{h[0], h[1]}),
		b.Center.Add(mgl64.Vec2{-h[0], h[1]}),
	}
}

// CriticalAxes returns the two edge normals of the box.
func (Box) CriticalAxes() []mgl64.Vec2 {
	return []mgl64.Vec2{{1, 0}, {0, 1}}
}

func (Box) isShape() {}

// Segment is a line segment from P1 to P2.
type Segment struct {
	P1, P2 mgl64.Vec2
}

// Direction returns the unit direction from P1 to P2.
func (s Segment) Direction() mgl64.Vec2 {
	return geom.NormalizeOrZero(s.P2.Sub(s.P1))
}

// Normal returns the unit normal, the direction rotated counter-clockwise.
func (s Segment) Normal() mgl64.Vec2 {
	return geom.Perp(s.Direction())
}

// Points returns both endpoints.
func (s Segment) Points() []mgl64.Vec2 {
	return []mgl64.Vec2{s.P1, s.P2}
}

// CriticalAxes returns the segment direction and its normal.
func (s Segment) CriticalAxes() []mgl64.Vec2 {
	return []mgl64.Vec2{s.Direction(), s.Normal()}
}

func (Segment) isShape() {}

// Point is a degenerate shape at the local origin, used for containment tests.
type Point struct{}

// Points returns the origin.
func (Point) Points() []mgl64.Vec2 {
	return []mgl64.Vec2{{0, 0}}
}

// CriticalAxes returns nothing: a point has no edges.
func (Point) CriticalAxes() []mgl64.Vec2 {
	return nil
}

func (Point) isShape() {}
