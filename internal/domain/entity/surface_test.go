package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestSurface_Geometry(t *testing.T) {
	s := Surface{P1: mgl64.Vec2{0, 0}, P2: mgl64.Vec2{4, 0}}

	assert.Equal(t, mgl64.Vec2{1, 0}, s.Direction())
	assert.Equal(t, mgl64.Vec2{0, 1}, s.Normal())
	assert.Equal(t, 4.0, s.Length())
	assert.Equal(t, 1.5, s.Project(mgl64.Vec2{1.5, 7}))
	assert.Equal(t, s.P2, s.Collider().Shape.Points()[1])
}

func TestSurface_DeltaTo(t *testing.T) {
	s := Surface{P1: mgl64.Vec2{0, 0}, P2: mgl64.Vec2{4, 0}}

	tests := []struct {
		name  string
		point mgl64.Vec2
		want  mgl64.Vec2
	}{
		{name: "above middle", point: mgl64.Vec2{2, 1}, want: mgl64.Vec2{0, -1}},
		{name: "below middle", point: mgl64.Vec2{1, -0.5}, want: mgl64.Vec2{0, 0.5}},
		{name: "before start", point: mgl64.Vec2{-1, 1}, want: mgl64.Vec2{1, -1}},
		{name: "after end", point: mgl64.Vec2{6, 0}, want: mgl64.Vec2{-2, 0}},
		{name: "on surface", point: mgl64.Vec2{3, 0}, want: mgl64.Vec2{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.DeltaTo(tt.point)
			assert.InDelta(t, tt.want[0], got[0], 1e-12)
			assert.InDelta(t, tt.want[1], got[1], 1e-12)
		})
	}

	degenerate := Surface{P1: mgl64.Vec2{1, 1}, P2: mgl64.Vec2{1, 1}}
	assert.Equal(t, mgl64.Vec2{1, 1}, degenerate.DeltaTo(mgl64.Vec2{0, 0}))
}

func TestLevel_NearestPoint(t *testing.T) {
	level := &Level{
		Surfaces: []Surface{
			{P1: mgl64.Vec2{0, 0}, P2: mgl64.Vec2{4, 0}},
			{P1: mgl64.Vec2{0, 2}, P2: mgl64.Vec2{4, 2}},
			{P1: mgl64.Vec2{5, 0}, P2: mgl64.Vec2{5, 2}},
		},
	}

	t.Run("closest wins", func(t *testing.T) {
		p, index, ok := level.NearestPoint(mgl64.Vec2{1, 1.7}, 1)
		assert.True(t, ok)
		assert.Equal(t, 1, index)
		assert.InDelta(t, 1.0, p[0], 1e-12)
		assert.InDelta(t, 2.0, p[1], 1e-12)
	})

	t.Run("tie resolves to lowest index", func(t *testing.T) {
		_, index, ok := level.NearestPoint(mgl64.Vec2{1, 1}, 1)
		assert.True(t, ok)
		assert.Equal(t, 0, index)
	})

	t.Run("out of range", func(t *testing.T) {
		_, index, ok := level.NearestPoint(mgl64.Vec2{10, 10}, 1)
		assert.False(t, ok)
		assert.Equal(t, -1, index)
	})

	t.Run("empty level", func(t *testing.T) {
		_, _, ok := (&Level{}).NearestPoint(mgl64.Vec2{}, 100)
		assert.False(t, ok)
	})
}
