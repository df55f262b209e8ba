package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/climb/internal/domain/collider"
	"github.com/younwookim/climb/internal/domain/geom"
)

// MovementState is the ground state of the body.
type MovementState int

const (
	Airborne MovementState = iota
	Grounded
)

// String returns the state name.
func (s MovementState) String() string {
	switch s {
	case Airborne:
		return "Airborne"
	case Grounded:
		return "Grounded"
	default:
		return "Unknown"
	}
}

// JointParams places one joint of the arm relative to its parent.
type JointParams struct {
	Offset mgl64.Vec2
	Radius float64
	Mass   float64
}

// BodyParams is the pre-converted shape and tuning of a player body.
type BodyParams struct {
	Mass   float64
	Width  float64
	Height float64

	Shoulder mgl64.Vec2 // relative to the body origin (feet)
	Elbow    JointParams
	Hand     JointParams

	ControlOverreach float64 // allowed hand target overshoot as a factor of the reach

	Arm     ArmParams
	Running RunningParams
}

// Body is the player aggregate. It exclusively owns its arm and history.
// The body origin is at the feet.
type Body struct {
	Center PhysicsBody
	Arm    ArmSkeleton

	HoldingTo     *mgl64.Vec2 // world anchor of the hand, nil when free
	GroundNormal  *mgl64.Vec2 // nil when airborne
	GroundSurface int         // index into Level.Surfaces, -1 when airborne
	State         MovementState

	History MovementHistory

	params BodyParams
}

// NewBody creates a body at rest standing at spawn.
func NewBody(spawn mgl64.Vec2, params BodyParams) *Body {
	center := NewPhysicsBody(spawn, math.Max(params.Width, params.Height)/2, params.Mass)
	center.Collider = collider.NewRectangle(params.Width, params.Height)

	return &Body{
		Center: center,
		Arm: NewArmSkeleton(
			PhysicsBody{Position: params.Shoulder},
			NewPhysicsBody(params.Elbow.Offset, params.Elbow.Radius, params.Elbow.Mass),
			NewPhysicsBody(params.Hand.Offset, params.Hand.Radius, params.Hand.Mass),
			params.Arm,
		),
		GroundSurface: -1,
		State:         Airborne,
		History:       NewMovementHistory(params.Running),
		params:        params,
	}
}

// Params returns the body tuning.
func (b *Body) Params() BodyParams {
	return b.params
}

// MaxReach returns the arm reach.
func (b *Body) MaxReach() float64 {
	return b.Arm.MaxReach()
}

// Skeleton returns shoulder, elbow and hand in world coordinates.
func (b *Body) Skeleton() [3]PhysicsBody {
	return b.Arm.Skeleton(b.Center)
}

// HandPosition returns the hand in world coordinates.
func (b *Body) HandPosition() mgl64.Vec2 {
	return b.Center.Position.Add(b.Arm.HandOffset())
}

// IsHolding returns true if the hand is anchored.
func (b *Body) IsHolding() bool {
	return b.HoldingTo != nil
}

// TryHolding anchors the hand to the closest level point within the hand
// radius. It returns the surface index that was grabbed.
func (b *Body) TryHolding(level *Level) (int, bool) {
	if b.HoldingTo != nil {
		return -1, false
	}
	point, index, ok := level.NearestPoint(b.HandPosition(), b.Arm.Hand.Radius)
	if !ok {
		return -1, false
	}
	b.HoldingTo = &point
	return index, true
}

// Release frees the hand.
func (b *Body) Release() {
	b.HoldingTo = nil
}

// Ground marks the body as standing on surface with the given normal.
func (b *Body) Ground(normal mgl64.Vec2, surface int) {
	b.GroundNormal = &normal
	b.GroundSurface = surface
	b.State = Grounded
}

// Unground marks the body as airborne.
func (b *Body) Unground() {
	b.GroundNormal = nil
	b.GroundSurface = -1
	b.State = Airborne
}

// HoldOffset returns the anchor relative to the body position.
func (b *Body) HoldOffset() (mgl64.Vec2, bool) {
	if b.HoldingTo == nil {
		return mgl64.Vec2{}, false
	}
	return b.HoldingTo.Sub(b.Center.Position), true
}

// SnapToAnchor pulls the body back onto the reach circle around the anchor
// when it drifted further away than the arm allows.
func (b *Body) SnapToAnchor() {
	if b.HoldingTo == nil {
		return
	}
	// The reach is measured from the shoulder, not the body origin.
	shoulder := b.Center.Position.Add(b.Arm.Shoulder.Position)
	delta := b.HoldingTo.Sub(shoulder)
	if delta.Len() <= b.MaxReach()+geom.Epsilon {
		return
	}
	shoulder = b.HoldingTo.Sub(geom.NormalizeOrZero(delta).Mul(b.MaxReach()))
	b.Center.Position = shoulder.Sub(b.Arm.Shoulder.Position)
}

// Respawn puts a fresh body at spawn, keeping the tuning.
func (b *Body) Respawn(spawn mgl64.Vec2) {
	*b = *NewBody(spawn, b.params)
}
