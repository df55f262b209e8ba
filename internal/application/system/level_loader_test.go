package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/climb/internal/infrastructure/config"
)

func TestLoadLevel(t *testing.T) {
	cfg := &config.LevelConfig{
		ID:         "lvl",
		Name:       "Level",
		SpawnPoint: config.Vec2Config{X: 1, Y: 2},
		Surfaces: []config.SurfaceConfig{
			{P1: config.Vec2Config{X: 0, Y: 0}, P2: config.Vec2Config{X: 4, Y: 0}},
			{P1: config.Vec2Config{X: 4, Y: 0}, P2: config.Vec2Config{X: 4, Y: 3}},
		},
	}

	level := LoadLevel(cfg)

	require.NotNil(t, level)
	assert.Equal(t, "lvl", level.ID)
	assert.Equal(t, "Level", level.Name)
	assert.Equal(t, mgl64.Vec2{1, 2}, level.SpawnPoint)
	require.Len(t, level.Surfaces, 2)
	assert.Equal(t, mgl64.Vec2{4, 3}, level.Surfaces[1].P2)
}

func TestLoadLevel_Shipped(t *testing.T) {
	loader := config.NewLoader("../../../cmd/game/configs")
	cfg, err := loader.LoadLevel("default")
	require.NoError(t, err)

	level := LoadLevel(cfg)
	assert.Len(t, level.Surfaces, len(cfg.Surfaces))
}

func TestLoadBodyParams(t *testing.T) {
	cfg := createTestPhysicsConfig()

	p := LoadBodyParams(cfg)

	assert.Equal(t, 20.0, p.Mass)
	assert.Equal(t, mgl64.Vec2{0, 1.5}, p.Shoulder)
	assert.Equal(t, mgl64.Vec2{0, -0.7}, p.Elbow.Offset)
	assert.Equal(t, 0.2, p.Hand.Radius)
	assert.Equal(t, 1.1, p.ControlOverreach)
	assert.Equal(t, 300.0, p.Arm.MaxHoldForce)
	assert.Equal(t, 2.0, p.Running.RecordLength)
	assert.Equal(t, 6.0, p.Running.MaxRunningSpeed)
}
