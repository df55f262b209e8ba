package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/climb/internal/domain/geom"
)

// BodyControl is the raw per-tick input of the player.
type BodyControl struct {
	HandTarget   mgl64.Vec2 // relative to the shoulder
	MoveSpeed    float64    // -1 (left) .. 1 (right)
	TargetHeight float64    // 0 .. 1
	Hold         bool
	Jump         bool
}

// VerifiedBodyControl is a BodyControl whose values have been clamped into
// their valid ranges. It can only be produced by Verify.
type VerifiedBodyControl struct {
	c BodyControl
}

// Control returns the clamped control values.
func (v VerifiedBodyControl) Control() BodyControl {
	return v.c
}

// Verify clamps the control against the body: the hand target may overshoot
// the arm reach around the shoulder by the body's overreach factor, move
// speed is limited to [-1, 1] and target height to [0, 1].
func (c BodyControl) Verify(body *Body) VerifiedBodyControl {
	return VerifiedBodyControl{c: c.clamp(body.MaxReach() * body.params.ControlOverreach)}
}

func (c BodyControl) clamp(maxTarget float64) BodyControl {
	c.HandTarget = geom.ClampLen(c.HandTarget, maxTarget)
	c.MoveSpeed = mgl64.Clamp(c.MoveSpeed, -1, 1)
	c.TargetHeight = mgl64.Clamp(c.TargetHeight, 0, 1)
	return c
}
