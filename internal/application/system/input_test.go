package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputSystem(t *testing.T) {
	cfg := createTestPhysicsConfig()

	sys := NewInputSystem(cfg)

	require.NotNil(t, sys)
	assert.Equal(t, cfg, sys.config)
	assert.Equal(t, mgl64.Vec2{}, sys.HandTarget())
}

func TestInputSystem_Control_Movement(t *testing.T) {
	tests := []struct {
		name       string
		input      InputState
		wantMove   float64
		wantHeight float64
	}{
		{name: "idle", input: InputState{}, wantMove: 0, wantHeight: 0.5},
		{name: "right", input: InputState{Right: true}, wantMove: 1, wantHeight: 0.5},
		{name: "left", input: InputState{Left: true}, wantMove: -1, wantHeight: 0.5},
		{name: "both cancel", input: InputState{Left: true, Right: true}, wantMove: 0, wantHeight: 0.5},
		{name: "up", input: InputState{Up: true}, wantMove: 0, wantHeight: 1},
		{name: "down", input: InputState{Down: true}, wantMove: 0, wantHeight: 0},
		{name: "up and down", input: InputState{Up: true, Down: true}, wantMove: 0, wantHeight: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewInputSystem(createTestPhysicsConfig())

			c := sys.Control(tt.input, 1.65)

			assert.Equal(t, tt.wantMove, c.MoveSpeed)
			assert.Equal(t, tt.wantHeight, c.TargetHeight)
		})
	}
}

func TestInputSystem_Control_HandTarget(t *testing.T) {
	sys := NewInputSystem(createTestPhysicsConfig())

	// 100px right and 40px up at 0.005 units per pixel.
	c := sys.Control(InputState{MouseDX: 100, MouseDY: -40}, 1.65)
	assert.InDelta(t, 0.5, c.HandTarget[0], 1e-12)
	assert.InDelta(t, 0.2, c.HandTarget[1], 1e-12)

	// Motion accumulates.
	c = sys.Control(InputState{MouseDX: -100}, 1.65)
	assert.InDelta(t, 0.0, c.HandTarget[0], 1e-12)
	assert.InDelta(t, 0.2, c.HandTarget[1], 1e-12)

	// Far motion is bounded.
	c = sys.Control(InputState{MouseDY: 10000}, 1.65)
	assert.InDelta(t, 1.65, c.HandTarget.Len(), 1e-12)
	assert.Less(t, c.HandTarget[1], 0.0)

	sys.Reset()
	assert.Equal(t, mgl64.Vec2{}, sys.HandTarget())
}

func TestInputSystem_Control_Buttons(t *testing.T) {
	sys := NewInputSystem(createTestPhysicsConfig())

	c := sys.Control(InputState{Hold: true, Jump: true}, 1.65)

	assert.True(t, c.Hold)
	assert.True(t, c.Jump)
}
