package collider

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/climb/internal/domain/geom"
)

// Collision describes the minimum separation between two overlapping shapes.
// Normal is a unit vector pointing from the second shape toward the first;
// moving the first shape by Normal*Penetration separates them.
type Collision struct {
	Normal      mgl64.Vec2
	Penetration float64
}

// Projection is the 1-D interval covered by a shape on an axis.
type Projection struct {
	Min, Max float64
}

// Intersection returns the signed overlap of two intervals.
// Positive means p has to move toward negative axis values to separate,
// negative means toward positive values. ok is false when they do not overlap.
func (p Projection) Intersection(other Projection) (overlap float64, ok bool) {
	da := p.Max - other.Min
	db := other.Max - p.Min
	if da < db {
		return da, da > 0
	}
	return -db, db > 0
}

// Collider is a shape placed at a world position.
type Collider struct {
	Position mgl64.Vec2
	Shape    Shape
}

// Collide tests c against other in world space.
func (c Collider) Collide(other Collider) (Collision, bool) {
	return CheckCollision(c.Shape, other.Shape, other.Position.Sub(c.Position))
}

// Contains reports whether the world point lies strictly inside the collider.
func (c Collider) Contains(point mgl64.Vec2) bool {
	return Contains(c.Shape, c.Position, point)
}

// CheckCollision runs a separating-axis test between a and b, where b is
// displaced by offset relative to a.
//
// Candidate axes are the critical axes of both shapes plus every
// vertex-to-vertex delta, which covers vertex-vertex contacts between
// shapes whose edge normals alone would not separate them.
// Among the axes with positive overlap the one with the smallest
// penetration is returned.
func CheckCollision(a, b Shape, offset mgl64.Vec2) (Collision, bool) {
	aPoints := a.Points()
	bPoints := translate(b.Points(), offset)

	axes := make([]mgl64.Vec2, 0, 4+len(aPoints)*len(bPoints))
	axes = append(axes, a.CriticalAxes()...)
	axes = append(axes, b.CriticalAxes()...)
	for _, pa := range aPoints {
		for _, pb := range bPoints {
			axes = append(axes, pb.Sub(pa))
		}
	}

	var (
		best  Collision
		found bool
	)
	for _, axis := range axes {
		axis = geom.NormalizeOrZero(axis)
		if axis == (mgl64.Vec2{}) {
			continue
		}

		overlap, ok := project(aPoints, axis).Intersection(project(bPoints, axis))
		if !ok {
			return Collision{}, false
		}

		col := Collision{
			Normal:      axis.Mul(-sign(overlap)),
			Penetration: math.Abs(overlap),
		}
		if !found || col.Penetration < best.Penetration {
			best = col
			found = true
		}
	}
	return best, found
}

// Contains reports whether point lies inside shape placed at position.
func Contains(shape Shape, position, point mgl64.Vec2) bool {
	_, hit := CheckCollision(shape, Point{}, point.Sub(position))
	return hit
}

// Project returns the interval covered by shape, displaced by offset, on axis.
// The axis is normalized first.
func Project(shape Shape, axis, offset mgl64.Vec2) Projection {
	return project(translate(shape.Points(), offset), geom.NormalizeOrZero(axis))
}

func project(points []mgl64.Vec2, axis mgl64.Vec2) Projection {
	p := Projection{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, pt := range points {
		d := pt.Dot(axis)
		p.Min = math.Min(p.Min, d)
		p.Max = math.Max(p.Max, d)
	}
	return p
}

func translate(points []mgl64.Vec2, offset mgl64.Vec2) []mgl64.Vec2 {
	out := make([]mgl64.Vec2, len(points))
	for i, p := range points {
		out[i] = p.Add(offset)
	}
	return out
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
