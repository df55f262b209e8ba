package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/climb/internal/domain/collider"
	"github.com/younwookim/climb/internal/domain/entity"
	"github.com/younwookim/climb/internal/domain/geom"
)

// SurfaceCollision is a collision of the body with one level surface
type SurfaceCollision struct {
	collider.Collision
	Surface int
}

// FindCollision returns the deepest collision of the body with the level
func FindCollision(body *entity.Body, level *entity.Level) (SurfaceCollision, bool) {
	bodyCollider := body.Center.WorldCollider()

	var (
		best  SurfaceCollision
		found bool
	)
	for i, surface := range level.Surfaces {
		col, ok := bodyCollider.Collide(surface.Collider())
		if !ok {
			continue
		}
		if !found || col.Penetration > best.Penetration {
			best = SurfaceCollision{Collision: col, Surface: i}
			found = true
		}
	}
	return best, found
}

// IsGround returns true if normal is within groundAngle of straight up
func IsGround(normal mgl64.Vec2, groundAngle float64) bool {
	angle := math.Acos(geom.ClampAbs(normal.Dot(geom.Up), 1))
	return angle <= groundAngle
}

// resolveCollisions pushes the body out of the deepest overlapping surface,
// stops its motion into that surface and reclassifies the ground
func (s *PhysicsSystem) resolveCollisions(body *entity.Body) {
	col, ok := FindCollision(body, s.level)
	if !ok {
		body.Unground()
		return
	}

	body.Center.Position = body.Center.Position.Add(col.Normal.Mul(col.Penetration))

	// Only the approaching component is removed; separating motion survives.
	if into := body.Center.Velocity.Dot(col.Normal); into < 0 {
		body.Center.Velocity = body.Center.Velocity.Sub(col.Normal.Mul(into))
	}

	if IsGround(col.Normal, s.config.World.GroundAngle) {
		body.Ground(col.Normal, col.Surface)
	} else {
		body.Unground()
	}
}
