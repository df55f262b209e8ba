package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/climb/internal/domain/entity"
	"github.com/younwookim/climb/internal/domain/geom"
	"github.com/younwookim/climb/internal/infrastructure/config"
	"go.uber.org/zap"
)

// PhysicsSystem advances a body through a level one fixed step at a time
type PhysicsSystem struct {
	config *config.PhysicsConfig
	level  *entity.Level
	logger *zap.Logger
}

// NewPhysicsSystem creates a new physics system. A nil logger disables logging.
func NewPhysicsSystem(cfg *config.PhysicsConfig, level *entity.Level, logger *zap.Logger) *PhysicsSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhysicsSystem{
		config: cfg,
		level:  level,
		logger: logger.Named("physics"),
	}
}

// Level returns the level the system simulates
func (s *PhysicsSystem) Level() *entity.Level {
	return s.level
}

// NewBody creates a body at the level spawn point
func (s *PhysicsSystem) NewBody() *entity.Body {
	return entity.NewBody(s.level.SpawnPoint, LoadBodyParams(s.config))
}

// Update runs one step: gravity, swing analysis, locomotion, jump, hold,
// integration, arm actuation and collision, in that order.
func (s *PhysicsSystem) Update(body *entity.Body, control entity.VerifiedBodyControl, dt float64) StepResult {
	c := control.Control()
	prev := body.State
	result := StepResult{}

	s.applyGravity(body, dt)

	stats := s.analyzeSwings(body, dt)
	result.SpeedMultiplier = stats.MoveSpeed

	s.applyLocomotion(body, c.MoveSpeed*stats.MoveSpeed, dt)

	if c.Jump && body.State == entity.Grounded {
		s.jump(body, &result)
	}

	s.updateHold(body, c.Hold, &result)

	body.Center.Integrate(dt)

	s.actuateArm(body, c.HandTarget, dt, &result)

	s.resolveCollisions(body)

	if body.State != prev {
		result.Events = append(result.Events, StateChangeEvent{From: prev, To: body.State})
		s.logger.Debug("State changed",
			zap.Stringer("from", prev),
			zap.Stringer("to", body.State),
			zap.Int("surface", body.GroundSurface))
	}

	result.State = body.State
	result.GroundSurface = body.GroundSurface
	return result
}

// applyGravity accelerates the body downward
func (s *PhysicsSystem) applyGravity(body *entity.Body, dt float64) {
	body.Center.Velocity = body.Center.Velocity.Add(geom.Up.Mul(-s.config.World.Gravity * dt))
}

// analyzeSwings records the hand relative to the shoulder, normalized by the
// reach, and turns the recent swing rhythm into a movement speed
func (s *PhysicsSystem) analyzeSwings(body *entity.Body, dt float64) entity.MovementStats {
	hand := body.Arm.HandOffset().Sub(body.Arm.Shoulder.Position)
	if reach := body.MaxReach(); reach > geom.Epsilon {
		hand = hand.Mul(1 / reach)
	}

	body.History.Update(hand, dt)
	return body.History.Analyze().CalcStats(body.History.Params())
}

// applyLocomotion blends the velocity along the ground (or world x while
// airborne) toward targetSpeed
func (s *PhysicsSystem) applyLocomotion(body *entity.Body, targetSpeed, dt float64) {
	direction := mgl64.Vec2{1, 0}
	acceleration := s.config.Movement.AirAcceleration
	deceleration := s.config.Movement.AirAcceleration

	if body.State == entity.Grounded && body.GroundNormal != nil {
		n := *body.GroundNormal
		direction = mgl64.Vec2{n[1], -n[0]}
		acceleration = s.config.Movement.GroundAcceleration
		deceleration = s.config.Movement.GroundDeceleration
	}

	current := body.Center.Velocity.Dot(direction)
	delta := targetSpeed - current

	// Speeding up in the direction of travel uses the acceleration,
	// everything else (braking, turning, starting from rest) the deceleration.
	acc := deceleration
	if current*delta > 0 {
		acc = acceleration
	}

	body.Center.Velocity = body.Center.Velocity.Add(direction.Mul(geom.ClampAbs(delta, acc*dt)))
}

// jump kicks the body upward, adding the momentum of the swinging arm
func (s *PhysicsSystem) jump(body *entity.Body, result *StepResult) {
	kick := geom.Up.Mul(s.config.Jump.Speed).
		Add(body.Arm.Momentum().Mul(s.config.Jump.ArmImpulseFactor / body.Center.Mass))
	body.Center.Velocity = body.Center.Velocity.Add(kick)
	body.Unground()

	result.Events = append(result.Events, JumpEvent{Velocity: body.Center.Velocity[1]})
	s.logger.Debug("Jump", zap.Float64("vx", body.Center.Velocity[0]), zap.Float64("vy", body.Center.Velocity[1]))
}

// updateHold grabs the nearest surface while hold is pressed and lets go
// when it is released
func (s *PhysicsSystem) updateHold(body *entity.Body, hold bool, result *StepResult) {
	if !hold {
		if body.IsHolding() {
			body.Release()
			result.Events = append(result.Events, LetGoEvent{})
		}
		return
	}

	if index, ok := body.TryHolding(s.level); ok {
		result.Events = append(result.Events, GrabEvent{Surface: index})
		s.logger.Debug("Grabbed surface",
			zap.Int("surface", index),
			zap.Float64("x", body.HoldingTo[0]),
			zap.Float64("y", body.HoldingTo[1]))
	}
}

// actuateArm drives the arm toward target and applies its reaction to the body
func (s *PhysicsSystem) actuateArm(body *entity.Body, target mgl64.Vec2, dt float64, result *StepResult) {
	var hold *mgl64.Vec2
	if offset, ok := body.HoldOffset(); ok {
		offset = offset.Sub(body.Arm.Shoulder.Position)
		hold = &offset
	}

	impulse, release := body.Arm.Control(target, hold, body.Center.Impulse(), dt)
	body.Center.Velocity = body.Center.Velocity.Sub(impulse.Mul(s.config.Arm.ImpulseScale / body.Center.Mass))

	if release {
		body.Release()
		result.Events = append(result.Events, ReleaseEvent{})
		s.logger.Debug("Grip failed", zap.Float64("speed", body.Center.Velocity.Len()))
		return
	}
	body.SnapToAnchor()
}
