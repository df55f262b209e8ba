package system

import (
	"github.com/younwookim/climb/internal/domain/entity"
	"github.com/younwookim/climb/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Session owns the single body simulated in a level and tracks the best
// height it reached
type Session struct {
	Body       *entity.Body
	Level      *entity.Level
	BestHeight float64
	Frame      int

	physics *PhysicsSystem
	logger  *zap.Logger
}

// NewSession spawns a body at the level spawn point
func NewSession(cfg *config.PhysicsConfig, level *entity.Level, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	physics := NewPhysicsSystem(cfg, level, logger)
	body := physics.NewBody()

	return &Session{
		Body:       body,
		Level:      level,
		BestHeight: body.Center.Position[1],
		physics:    physics,
		logger:     logger,
	}
}

// Step verifies control against the body and advances one tick
func (s *Session) Step(control entity.BodyControl, dt float64) StepResult {
	result := s.physics.Update(s.Body, control.Verify(s.Body), dt)
	s.Frame++

	if y := s.Body.Center.Position[1]; y > s.BestHeight {
		s.BestHeight = y
	}
	return result
}

// Reset respawns the body. The best height is kept.
func (s *Session) Reset() {
	s.Body.Respawn(s.Level.SpawnPoint)
	s.Frame = 0
	s.logger.Info("Respawned",
		zap.String("level", s.Level.ID),
		zap.Float64("bestHeight", s.BestHeight))
}
