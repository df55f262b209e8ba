package config

import (
	"bytes"
	"math"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 960, cfg.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 9.8, cfg.World.Gravity)
	assert.Equal(t, 0.5, cfg.World.GroundAngle)
	assert.Equal(t, 300.0, cfg.Arm.MaxHoldForce)
	assert.Equal(t, 1.1, cfg.Arm.ControlOverreach)
	assert.Equal(t, -0.8, cfg.Body.Hand.Offset.Y)
	assert.InDelta(t, 1.0/60, cfg.DT(), 1e-12)
}

func TestLoader_ShippedPhysicsMatchesDefault(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, DefaultPhysics(), cfg)
}

func TestLoader_LoadLevel(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadLevel("default")
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.ID)
	assert.Equal(t, 0.0, cfg.SpawnPoint.X)
	assert.NotEmpty(t, cfg.Surfaces)
	assert.Equal(t, Vec2Config{X: -20, Y: 0}, cfg.Surfaces[0].P1)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll("default")
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Level)
}

func TestLoader_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.json":       {Data: []byte(`{"body": {"mass": 0}}`)},
		"levels/broken.json": {Data: []byte(`{"id": "broken"`)},
		"levels/flat.json": {Data: []byte(`{
			"id": "flat",
			"surfaces": [{"p1": {"x": 1, "y": 1}, "p2": {"x": 1, "y": 1}}]
		}`)},
	}
	loader := NewFSLoader(fsys, ".")

	_, err := loader.LoadPhysics()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = loader.LoadLevel("missing")
	assert.Error(t, err)

	_, err = loader.LoadLevel("broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidLevel)

	_, err = loader.LoadLevel("flat")
	assert.ErrorIs(t, err, ErrInvalidLevel)

	_, err = loader.LoadAll("flat")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPhysicsConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PhysicsConfig)
		wantErr bool
	}{
		{name: "default", mutate: func(*PhysicsConfig) {}},
		{name: "zero mass", mutate: func(c *PhysicsConfig) { c.Body.Mass = 0 }, wantErr: true},
		{name: "nan gain", mutate: func(c *PhysicsConfig) { c.Arm.VelocityGain = math.NaN() }, wantErr: true},
		{name: "flat ground angle", mutate: func(c *PhysicsConfig) { c.World.GroundAngle = math.Pi / 2 }, wantErr: true},
		{name: "zero ground angle", mutate: func(c *PhysicsConfig) { c.World.GroundAngle = 0 }, wantErr: true},
		{name: "negative hold force", mutate: func(c *PhysicsConfig) { c.Arm.MaxHoldForce = -1 }, wantErr: true},
		{name: "run slower than walk", mutate: func(c *PhysicsConfig) { c.Running.MaxRunningSpeed = 1 }, wantErr: true},
		{name: "zero bone", mutate: func(c *PhysicsConfig) { c.Body.Hand.Offset = Vec2Config{} }, wantErr: true},
		{name: "zero framerate", mutate: func(c *PhysicsConfig) { c.Display.Framerate = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPhysics()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLevelConfig_Validate(t *testing.T) {
	valid := func() *LevelConfig {
		return &LevelConfig{
			ID:       "test",
			Surfaces: []SurfaceConfig{{P1: Vec2Config{X: 0, Y: 0}, P2: Vec2Config{X: 1, Y: 0}}},
		}
	}

	assert.NoError(t, valid().Validate())

	noID := valid()
	noID.ID = ""
	assert.ErrorIs(t, noID.Validate(), ErrInvalidLevel)

	infSpawn := valid()
	infSpawn.SpawnPoint.Y = math.Inf(1)
	assert.ErrorIs(t, infSpawn.Validate(), ErrInvalidLevel)

	nanSurface := valid()
	nanSurface.Surfaces[0].P2.X = math.NaN()
	assert.ErrorIs(t, nanSurface.Validate(), ErrInvalidLevel)
}

func TestWriteLevel_RoundTrip(t *testing.T) {
	cfg := &LevelConfig{
		ID:         "written",
		Name:       "Written",
		SpawnPoint: Vec2Config{X: 1, Y: 2},
		Surfaces: []SurfaceConfig{
			{P1: Vec2Config{X: -1, Y: 0}, P2: Vec2Config{X: 1, Y: 0.5}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLevel(&buf, cfg))
	assert.Contains(t, buf.String(), `"spawnPoint"`)

	got, err := ParseLevel(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	assert.ErrorIs(t, WriteLevel(&buf, &LevelConfig{}), ErrInvalidLevel)
}
