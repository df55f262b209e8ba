package entity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestBodyControl_Verify(t *testing.T) {
	body := NewBody(mgl64.Vec2{}, testBodyParams())

	tests := []struct {
		name   string
		input  BodyControl
		expect BodyControl
	}{
		{
			name:   "in range is untouched",
			input:  BodyControl{HandTarget: mgl64.Vec2{0.5, 1}, MoveSpeed: 0.5, TargetHeight: 0.3, Hold: true},
			expect: BodyControl{HandTarget: mgl64.Vec2{0.5, 1}, MoveSpeed: 0.5, TargetHeight: 0.3, Hold: true},
		},
		{
			name:   "far target clamps to overreach",
			input:  BodyControl{HandTarget: mgl64.Vec2{3, 0}},
			expect: BodyControl{HandTarget: mgl64.Vec2{1.65, 0}},
		},
		{
			name:   "move speed clamped",
			input:  BodyControl{MoveSpeed: -7, Jump: true},
			expect: BodyControl{MoveSpeed: -1, Jump: true},
		},
		{
			name:   "target height clamped",
			input:  BodyControl{TargetHeight: 2},
			expect: BodyControl{TargetHeight: 1},
		},
		{
			name:   "negative target height clamped",
			input:  BodyControl{TargetHeight: -0.5},
			expect: BodyControl{TargetHeight: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Verify(body).Control()
			assert.InDelta(t, tt.expect.HandTarget[0], got.HandTarget[0], 1e-12)
			assert.InDelta(t, tt.expect.HandTarget[1], got.HandTarget[1], 1e-12)
			assert.Equal(t, tt.expect.MoveSpeed, got.MoveSpeed)
			assert.Equal(t, tt.expect.TargetHeight, got.TargetHeight)
			assert.Equal(t, tt.expect.Hold, got.Hold)
			assert.Equal(t, tt.expect.Jump, got.Jump)
		})
	}
}

func TestBodyControl_Verify_KeepsDirection(t *testing.T) {
	body := NewBody(mgl64.Vec2{}, testBodyParams())
	raw := mgl64.Vec2{-1.8, 2.4} // length 3

	got := BodyControl{HandTarget: raw}.Verify(body).Control().HandTarget

	assert.InDelta(t, 1.65, got.Len(), 1e-12)
	assert.InDelta(t, math.Atan2(raw[1], raw[0]), math.Atan2(got[1], got[0]), 1e-12)
}

func TestBodyControl_Verify_Idempotent(t *testing.T) {
	body := NewBody(mgl64.Vec2{}, testBodyParams())

	for _, c := range []BodyControl{
		{},
		{HandTarget: mgl64.Vec2{100, -100}, MoveSpeed: 3, TargetHeight: -3},
		{HandTarget: mgl64.Vec2{1.2, 0.9}, MoveSpeed: -0.2, TargetHeight: 0.99, Hold: true, Jump: true},
		{HandTarget: mgl64.Vec2{0, -1.65}, MoveSpeed: 1, TargetHeight: 1},
	} {
		once := c.Verify(body).Control()
		twice := once.Verify(body).Control()

		assert.Equal(t, once, twice)
	}
}

func TestBodyControl_Verify_IdempotentRandomTargets(t *testing.T) {
	body := NewBody(mgl64.Vec2{}, testBodyParams())
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		c := BodyControl{
			HandTarget: mgl64.Vec2{rng.Float64()*20 - 10, rng.Float64()*20 - 10},
			MoveSpeed:  rng.Float64()*4 - 2,
		}
		once := c.Verify(body).Control()
		twice := once.Verify(body).Control()

		if !assert.Equal(t, once, twice, "target %v", c.HandTarget) {
			return
		}
	}
}
