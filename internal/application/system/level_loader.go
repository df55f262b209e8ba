package system

import (
	"github.com/younwookim/climb/internal/domain/entity"
	"github.com/younwookim/climb/internal/infrastructure/config"
)

// LoadLevel converts a LevelConfig into a Level entity
func LoadLevel(cfg *config.LevelConfig) *entity.Level {
	surfaces := make([]entity.Surface, len(cfg.Surfaces))
	for i, s := range cfg.Surfaces {
		surfaces[i] = entity.Surface{P1: s.P1.Vec(), P2: s.P2.Vec()}
	}

	return &entity.Level{
		ID:         cfg.ID,
		Name:       cfg.Name,
		SpawnPoint: cfg.SpawnPoint.Vec(),
		Surfaces:   surfaces,
	}
}

// LoadBodyParams converts the physics config into pre-converted body params
func LoadBodyParams(cfg *config.PhysicsConfig) entity.BodyParams {
	joint := func(j config.JointConfig) entity.JointParams {
		return entity.JointParams{Offset: j.Offset.Vec(), Radius: j.Radius, Mass: j.Mass}
	}

	return entity.BodyParams{
		Mass:     cfg.Body.Mass,
		Width:    cfg.Body.Width,
		Height:   cfg.Body.Height,
		Shoulder: cfg.Body.Shoulder.Vec(),
		Elbow:    joint(cfg.Body.Elbow),
		Hand:     joint(cfg.Body.Hand),

		ControlOverreach: cfg.Arm.ControlOverreach,

		Arm: entity.ArmParams{
			ElbowAcceleration:  cfg.Arm.ElbowAcceleration,
			HandAcceleration:   cfg.Arm.HandAcceleration,
			MaxAngularVelocity: cfg.Arm.MaxAngularVelocity,
			VelocityGain:       cfg.Arm.VelocityGain,
			MaxHoldForce:       cfg.Arm.MaxHoldForce,
		},
		Running: entity.RunningParams{
			RecordLength:       cfg.Running.RecordLength,
			MaxAmplitude:       cfg.Running.MaxAmplitude,
			ReferenceFrequency: cfg.Running.ReferenceFrequency,
			WalkingSpeed:       cfg.Running.WalkingSpeed,
			MaxRunningSpeed:    cfg.Running.MaxRunningSpeed,
			MinDuration:        cfg.Running.MinDuration,
		},
	}
}
