package config

import "github.com/go-gl/mathgl/mgl64"

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display  DisplayConfig  `json:"display"`
	World    WorldConfig    `json:"world"`
	Movement MovementConfig `json:"movement"`
	Jump     JumpConfig     `json:"jump"`
	Arm      ArmConfig      `json:"arm"`
	Running  RunningConfig  `json:"running"`
	Body     BodyConfig     `json:"body"`
}

type DisplayConfig struct {
	ScreenWidth      int     `json:"screenWidth"`
	ScreenHeight     int     `json:"screenHeight"`
	PixelsPerUnit    float64 `json:"pixelsPerUnit"`
	Framerate        int     `json:"framerate"`
	MouseSensitivity float64 `json:"mouseSensitivity"` // world units per pixel of mouse motion
}

type WorldConfig struct {
	Gravity     float64 `json:"gravity"`     // downward acceleration (units/s²)
	GroundAngle float64 `json:"groundAngle"` // max angle between a floor normal and up (radians)
}

type MovementConfig struct {
	GroundAcceleration float64 `json:"groundAcceleration"`
	GroundDeceleration float64 `json:"groundDeceleration"`
	AirAcceleration    float64 `json:"airAcceleration"`
}

type JumpConfig struct {
	Speed            float64 `json:"speed"`
	ArmImpulseFactor float64 `json:"armImpulseFactor"` // share of the arm momentum added to the jump
}

type ArmConfig struct {
	ElbowAcceleration  float64 `json:"elbowAcceleration"`
	HandAcceleration   float64 `json:"handAcceleration"`
	MaxAngularVelocity float64 `json:"maxAngularVelocity"`
	VelocityGain       float64 `json:"velocityGain"`
	MaxHoldForce       float64 `json:"maxHoldForce"`
	ImpulseScale       float64 `json:"impulseScale"`     // arm reaction applied to the body
	ControlOverreach   float64 `json:"controlOverreach"` // allowed hand target overshoot
}

type RunningConfig struct {
	RecordLength       float64 `json:"recordLength"`
	MaxAmplitude       float64 `json:"maxAmplitude"`
	ReferenceFrequency float64 `json:"referenceFrequency"`
	WalkingSpeed       float64 `json:"walkingSpeed"`
	MaxRunningSpeed    float64 `json:"maxRunningSpeed"`
	MinDuration        float64 `json:"minDuration"`
}

type BodyConfig struct {
	Mass     float64     `json:"mass"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Shoulder Vec2Config  `json:"shoulder"`
	Elbow    JointConfig `json:"elbow"`
	Hand     JointConfig `json:"hand"`
}

// JointConfig places an arm joint relative to its parent joint
type JointConfig struct {
	Offset Vec2Config `json:"offset"`
	Radius float64    `json:"radius"`
	Mass   float64    `json:"mass"`
}

type Vec2Config struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec converts to a vector
func (v Vec2Config) Vec() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

// DT returns the fixed simulation timestep
func (c *PhysicsConfig) DT() float64 {
	if c.Display.Framerate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.Display.Framerate)
}

// DefaultPhysics returns the tuning shipped in physics.json
func DefaultPhysics() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:      960,
			ScreenHeight:     540,
			PixelsPerUnit:    40,
			Framerate:        60,
			MouseSensitivity: 0.005,
		},
		World: WorldConfig{
			Gravity:     9.8,
			GroundAngle: 0.5,
		},
		Movement: MovementConfig{
			GroundAcceleration: 30,
			GroundDeceleration: 50,
			AirAcceleration:    5,
		},
		Jump: JumpConfig{
			Speed:            5,
			ArmImpulseFactor: 4,
		},
		Arm: ArmConfig{
			ElbowAcceleration:  40,
			HandAcceleration:   60,
			MaxAngularVelocity: 15,
			VelocityGain:       5,
			MaxHoldForce:       300,
			ImpulseScale:       1,
			ControlOverreach:   1.1,
		},
		Running: RunningConfig{
			RecordLength:       2,
			MaxAmplitude:       0.5,
			ReferenceFrequency: 4,
			WalkingSpeed:       2,
			MaxRunningSpeed:    6,
			MinDuration:        0.01,
		},
		Body: BodyConfig{
			Mass:     20,
			Width:    0.8,
			Height:   1.8,
			Shoulder: Vec2Config{X: 0, Y: 1.5},
			Elbow:    JointConfig{Offset: Vec2Config{X: 0, Y: -0.7}, Radius: 0.15, Mass: 0.7},
			Hand:     JointConfig{Offset: Vec2Config{X: 0, Y: -0.8}, Radius: 0.2, Mass: 1},
		},
	}
}
