package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/climb/internal/domain/collider"
	"github.com/younwookim/climb/internal/domain/geom"
)

// Surface is a static line segment of a level.
type Surface struct {
	P1, P2 mgl64.Vec2
}

// Collider returns the surface as a segment collider at the origin.
func (s Surface) Collider() collider.Collider {
	return collider.Collider{Shape: collider.Segment{P1: s.P1, P2: s.P2}}
}

// Direction returns the unit direction from P1 to P2.
func (s Surface) Direction() mgl64.Vec2 {
	return geom.NormalizeOrZero(s.P2.Sub(s.P1))
}

// Normal returns the unit normal (direction rotated counter-clockwise).
func (s Surface) Normal() mgl64.Vec2 {
	return geom.Perp(s.Direction())
}

// Length returns the surface length.
func (s Surface) Length() float64 {
	return s.P2.Sub(s.P1).Len()
}

// Project returns the signed distance of point along the surface,
// 0 at P1 and increasing towards P2.
func (s Surface) Project(point mgl64.Vec2) float64 {
	return point.Sub(s.P1).Dot(s.Direction())
}

// DeltaTo returns the vector from point to the closest point of the surface.
func (s Surface) DeltaTo(point mgl64.Vec2) mgl64.Vec2 {
	if point.Sub(s.P1).Dot(s.P2.Sub(s.P1)) < 0 {
		return s.P1.Sub(point)
	}
	if point.Sub(s.P2).Dot(s.P1.Sub(s.P2)) < 0 {
		return s.P2.Sub(point)
	}
	normal := geom.Perp(s.P2.Sub(s.P1))
	if normal.Dot(normal) < geom.Epsilon {
		return s.P1.Sub(point)
	}
	penetration := s.P1.Sub(point).Dot(normal) / normal.Dot(normal)
	return normal.Mul(penetration)
}

// Level is the static geometry the body moves through.
// It is read-only during simulation.
type Level struct {
	ID         string
	Name       string
	SpawnPoint mgl64.Vec2
	Surfaces   []Surface
}

// NearestPoint returns the closest surface point to point within maxDist,
// together with the surface index. ok is false when nothing is in range.
// Ties resolve to the lowest surface index.
func (l *Level) NearestPoint(point mgl64.Vec2, maxDist float64) (p mgl64.Vec2, index int, ok bool) {
	best := maxDist
	index = -1
	for i, s := range l.Surfaces {
		delta := s.DeltaTo(point)
		if d := delta.Len(); d <= best && (index < 0 || d < best) {
			best = d
			p = point.Add(delta)
			index = i
		}
	}
	return p, index, index >= 0
}
