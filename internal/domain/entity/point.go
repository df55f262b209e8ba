package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/climb/internal/domain/collider"
)

// PhysicsBody is a point mass with an optional collider.
// Joints of the arm skeleton are PhysicsBodies without a collider.
type PhysicsBody struct {
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Radius   float64
	Mass     float64 // always > 0

	Collider collider.Shape // nil for joints
}

// NewPhysicsBody creates a body at rest.
func NewPhysicsBody(position mgl64.Vec2, radius, mass float64) PhysicsBody {
	return PhysicsBody{
		Position: position,
		Radius:   radius,
		Mass:     mass,
	}
}

// Relative composes b as a child of parent: positions and velocities add.
func (b PhysicsBody) Relative(parent PhysicsBody) PhysicsBody {
	b.Position = b.Position.Add(parent.Position)
	b.Velocity = b.Velocity.Add(parent.Velocity)
	return b
}

// Impulse returns the linear momentum of the body.
func (b PhysicsBody) Impulse() mgl64.Vec2 {
	return b.Velocity.Mul(b.Mass)
}

// Integrate moves the body by its velocity over dt.
func (b *PhysicsBody) Integrate(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
}

// WorldCollider places the body's shape at its position.
func (b PhysicsBody) WorldCollider() collider.Collider {
	return collider.Collider{Position: b.Position, Shape: b.Collider}
}
