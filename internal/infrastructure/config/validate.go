package config

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidConfig is returned when physics tuning is out of range.
	ErrInvalidConfig = errors.New("invalid physics config")
	// ErrInvalidLevel is returned when level data is malformed.
	ErrInvalidLevel = errors.New("invalid level")
)

// Validate checks that the tuning can drive a simulation.
func (c *PhysicsConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"body.mass", c.Body.Mass},
		{"body.width", c.Body.Width},
		{"body.height", c.Body.Height},
		{"body.elbow.mass", c.Body.Elbow.Mass},
		{"body.hand.mass", c.Body.Hand.Mass},
		{"movement.groundAcceleration", c.Movement.GroundAcceleration},
		{"movement.groundDeceleration", c.Movement.GroundDeceleration},
		{"movement.airAcceleration", c.Movement.AirAcceleration},
		{"arm.elbowAcceleration", c.Arm.ElbowAcceleration},
		{"arm.handAcceleration", c.Arm.HandAcceleration},
		{"arm.maxAngularVelocity", c.Arm.MaxAngularVelocity},
		{"arm.velocityGain", c.Arm.VelocityGain},
		{"arm.controlOverreach", c.Arm.ControlOverreach},
		{"running.recordLength", c.Running.RecordLength},
		{"running.maxAmplitude", c.Running.MaxAmplitude},
		{"running.referenceFrequency", c.Running.ReferenceFrequency},
		{"running.minDuration", c.Running.MinDuration},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.Arm.MaxHoldForce < 0 {
		return fmt.Errorf("%w: arm.maxHoldForce must not be negative", ErrInvalidConfig)
	}
	if c.Running.MaxRunningSpeed < c.Running.WalkingSpeed {
		return fmt.Errorf("%w: running.maxRunningSpeed %v below walkingSpeed %v",
			ErrInvalidConfig, c.Running.MaxRunningSpeed, c.Running.WalkingSpeed)
	}
	if c.World.GroundAngle <= 0 || c.World.GroundAngle >= math.Pi/2 {
		return fmt.Errorf("%w: world.groundAngle must be in (0, π/2), got %v", ErrInvalidConfig, c.World.GroundAngle)
	}
	if c.Body.Elbow.Offset.Vec().Len() == 0 || c.Body.Hand.Offset.Vec().Len() == 0 {
		return fmt.Errorf("%w: arm bones must have a length", ErrInvalidConfig)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("%w: display.framerate must be positive", ErrInvalidConfig)
	}
	return nil
}

// Validate checks that the level is structurally sound.
func (l *LevelConfig) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}
	if !finite(l.SpawnPoint) {
		return fmt.Errorf("%w: %s: spawn point is not finite", ErrInvalidLevel, l.ID)
	}
	for i, s := range l.Surfaces {
		if !finite(s.P1) || !finite(s.P2) {
			return fmt.Errorf("%w: %s: surface %d is not finite", ErrInvalidLevel, l.ID, i)
		}
		if s.P1 == s.P2 {
			return fmt.Errorf("%w: %s: surface %d has zero length", ErrInvalidLevel, l.ID, i)
		}
	}
	return nil
}

func finite(v Vec2Config) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
