package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/climb/internal/domain/geom"
)

// ArmParams tunes the arm actuator. Accelerations are in rad/s², velocities in rad/s.
type ArmParams struct {
	ElbowAcceleration  float64
	HandAcceleration   float64
	MaxAngularVelocity float64
	VelocityGain       float64 // target angular velocity per radian of error
	MaxHoldForce       float64
}

// PolarPoint is a position in polar coordinates relative to a parent joint.
type PolarPoint struct {
	Distance float64 // >= 0
	Angle    float64 // radians in [0, 2π)
}

// PolarFromCartesian converts a cartesian offset into polar form.
func PolarFromCartesian(v mgl64.Vec2) PolarPoint {
	return PolarPoint{
		Distance: v.Len(),
		Angle:    geom.NormalizeAngle(geom.Arg(v)),
	}
}

// ToCartesian converts back to a cartesian offset.
func (p PolarPoint) ToCartesian() mgl64.Vec2 {
	return geom.UnitVec(p.Angle).Mul(p.Distance)
}

// Joint is one bone end of the arm: a polar offset with angular velocity and mass.
type Joint struct {
	PolarPoint
	AngularVelocity float64
	Radius          float64
	Mass            float64
}

// ArmSkeleton is a two-bone arm attached to a shoulder.
//
// The elbow angle is measured against the world x axis; the hand angle is
// measured relative to the elbow bone, so the hand bone's world angle is
// Elbow.Angle + Hand.Angle.
type ArmSkeleton struct {
	Shoulder PhysicsBody // offset from the body position
	Elbow    Joint
	Hand     Joint

	params ArmParams
}

// NewArmSkeleton builds a skeleton from cartesian offsets: shoulder relative
// to the body, elbow relative to the shoulder, hand relative to the elbow.
func NewArmSkeleton(shoulder, elbow, hand PhysicsBody, params ArmParams) ArmSkeleton {
	e := PolarFromCartesian(elbow.Position)
	h := PolarFromCartesian(hand.Position)
	h.Angle = geom.NormalizeAngle(h.Angle - e.Angle)

	return ArmSkeleton{
		Shoulder: shoulder,
		Elbow:    Joint{PolarPoint: e, Radius: elbow.Radius, Mass: elbow.Mass},
		Hand:     Joint{PolarPoint: h, Radius: hand.Radius, Mass: hand.Mass},
		params:   params,
	}
}

// Params returns the actuator tuning.
func (a *ArmSkeleton) Params() ArmParams {
	return a.params
}

// MaxReach is the distance from the shoulder to the fully extended hand.
func (a *ArmSkeleton) MaxReach() float64 {
	return a.Elbow.Distance + a.Hand.Distance
}

// elbowOffset and handOffset are the bone vectors in world orientation.
func (a *ArmSkeleton) elbowOffset() mgl64.Vec2 {
	return a.Elbow.ToCartesian()
}

func (a *ArmSkeleton) handOffset() mgl64.Vec2 {
	return geom.UnitVec(a.Elbow.Angle + a.Hand.Angle).Mul(a.Hand.Distance)
}

// HandOffset returns the hand position relative to the body position.
func (a *ArmSkeleton) HandOffset() mgl64.Vec2 {
	return a.Shoulder.Position.Add(a.elbowOffset()).Add(a.handOffset())
}

// Skeleton returns the shoulder, elbow and hand in world coordinates.
// Joint velocities include the rotation of the bones.
func (a *ArmSkeleton) Skeleton(body PhysicsBody) [3]PhysicsBody {
	shoulder := a.Shoulder.Relative(body)

	e := a.elbowOffset()
	elbow := PhysicsBody{
		Position: shoulder.Position.Add(e),
		Velocity: shoulder.Velocity.Add(geom.Perp(e).Mul(a.Elbow.AngularVelocity)),
		Radius:   a.Elbow.Radius,
		Mass:     a.Elbow.Mass,
	}

	h := a.handOffset()
	hand := PhysicsBody{
		Position: elbow.Position.Add(h),
		Velocity: elbow.Velocity.Add(geom.Perp(h).Mul(a.Elbow.AngularVelocity + a.Hand.AngularVelocity)),
		Radius:   a.Hand.Radius,
		Mass:     a.Hand.Mass,
	}

	return [3]PhysicsBody{shoulder, elbow, hand}
}

// Momentum returns the linear momentum of the limb relative to the shoulder.
func (a *ArmSkeleton) Momentum() mgl64.Vec2 {
	return a.momentum(a.Elbow.AngularVelocity, a.Hand.AngularVelocity)
}

// momentum returns the limb momentum for the given joint angular velocities
// in the current pose.
func (a *ArmSkeleton) momentum(elbowVel, handVel float64) mgl64.Vec2 {
	e := a.elbowOffset()
	h := a.handOffset()

	elbow := geom.Perp(e).Mul(elbowVel * a.Elbow.Mass)
	hand := geom.Perp(e.Add(h)).Mul(elbowVel).
		Add(geom.Perp(h).Mul(handVel)).
		Mul(a.Hand.Mass)
	return elbow.Add(hand)
}

// SolveAngles finds the elbow (world) and hand (relative) angles that place
// the hand at target, given relative to the shoulder.
// Targets outside the reachable annulus are pulled onto its boundary.
// ok is false for a zero-length target.
func (a *ArmSkeleton) SolveAngles(target mgl64.Vec2) (elbow, hand float64, ok bool) {
	length := target.Len()
	if length < geom.Epsilon {
		return 0, 0, false
	}

	e := a.Elbow.Distance
	h := a.Hand.Distance
	if e < geom.Epsilon || h < geom.Epsilon {
		// Single effective bone: point it at the target.
		return geom.NormalizeAngle(geom.Arg(target)), 0, true
	}
	length = mgl64.Clamp(length, math.Abs(e-h), e+h)
	if length < geom.Epsilon {
		// Equal bone lengths and a target at the shoulder: fold the arm.
		return geom.NormalizeAngle(geom.Arg(target)), math.Pi, true
	}

	// Interior angle at the elbow, between the two bones.
	elbowInterior := math.Acos(geom.ClampAbs((e*e+h*h-length*length)/(2*e*h), 1))
	// Interior angle at the shoulder, between the upper bone and the target.
	shoulderInterior := math.Acos(geom.ClampAbs((length*length+e*e-h*h)/(2*e*length), 1))

	elbow = geom.NormalizeAngle(geom.Arg(target) + shoulderInterior)
	hand = geom.NormalizeAngle(elbowInterior - math.Pi)
	return elbow, hand, true
}

// Control drives the arm toward target for one tick and returns the impulse
// the arm exerts, to be subtracted from the body.
//
// target and hold are relative to the shoulder. When hold is non-nil
// the hand is anchored to it: the bones snap to the anchor and the remaining
// hold force pulls toward target. release reports that the grip failed
// because keeping the body attached took more than the hold-force budget.
func (a *ArmSkeleton) Control(target mgl64.Vec2, hold *mgl64.Vec2, bodyImpulse mgl64.Vec2, dt float64) (impulse mgl64.Vec2, release bool) {
	aim := target
	if hold != nil {
		aim = *hold
	}
	elbowAngle, handAngle, ok := a.SolveAngles(aim)
	if !ok {
		return mgl64.Vec2{}, false
	}

	if hold == nil {
		return a.actuate(elbowAngle, handAngle, dt), false
	}

	// Anchored: the hand is rigidly attached, no actuator dynamics.
	a.Elbow.Angle = elbowAngle
	a.Hand.Angle = handAngle
	a.Elbow.AngularVelocity = 0
	a.Hand.AngularVelocity = 0

	forceLeft := a.params.MaxHoldForce
	if hold.Len() > a.MaxReach() {
		normal := geom.NormalizeOrZero(*hold)
		// Force needed to stop the body from moving away from the anchor.
		needed := bodyImpulse.Mul(-1).Dot(normal)
		if needed > 0 {
			forceLeft -= needed
			if forceLeft < 0 {
				return impulse, true
			}
			impulse = impulse.Sub(normal.Mul(needed))
		}
	}

	pull := geom.NormalizeOrZero(target.Sub(*hold))
	impulse = impulse.Add(pull.Mul(forceLeft * dt))
	return impulse, false
}

// actuate accelerates both joints toward the solved angles and returns the
// resulting change of limb momentum.
func (a *ArmSkeleton) actuate(elbowAngle, handAngle, dt float64) mgl64.Vec2 {
	p := a.params

	elbowTarget := geom.ClampAbs(geom.AngleTo(a.Elbow.Angle, elbowAngle)*p.VelocityGain, p.MaxAngularVelocity)
	handTarget := geom.ClampAbs(geom.AngleTo(a.Hand.Angle, handAngle)*p.VelocityGain, p.MaxAngularVelocity)

	elbowAcc := geom.ClampAbs(elbowTarget-a.Elbow.AngularVelocity, p.ElbowAcceleration*dt)
	handAcc := geom.ClampAbs(handTarget-a.Hand.AngularVelocity, p.HandAcceleration*dt)
	a.Elbow.AngularVelocity += elbowAcc
	a.Hand.AngularVelocity += handAcc

	impulse := a.momentum(elbowAcc, handAcc)

	a.Elbow.Angle = geom.NormalizeAngle(a.Elbow.Angle + a.Elbow.AngularVelocity*dt)
	a.Hand.Angle = geom.NormalizeAngle(a.Hand.Angle + a.Hand.AngularVelocity*dt)
	return impulse
}
