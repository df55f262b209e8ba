// Package levelgen builds climbing levels from Perlin noise.
package levelgen

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/climb/internal/infrastructure/config"
)

// Params controls the generated terrain.
type Params struct {
	Seed         int64
	Width        float64 // horizontal extent, centered on x = 0
	Segments     int     // ground polyline segments
	Roughness    float64 // max ground height deviation
	WallHeight   float64
	Ledges       int
	LedgeSpacing float64 // vertical distance between ledges
	LedgeLength  float64
}

// DefaultParams returns a level roughly the size of the shipped one.
func DefaultParams(seed int64) Params {
	return Params{
		Seed:         seed,
		Width:        40,
		Segments:     32,
		Roughness:    1.2,
		WallHeight:   20,
		Ledges:       8,
		LedgeSpacing: 2,
		LedgeLength:  3,
	}
}

// Standard Perlin parameters.
const (
	alpha = 2.0
	beta  = 2.0
	n     = int32(3)
)

// Generate returns a level whose ground follows 1-D noise, enclosed by two
// walls and with a column of ledges to climb. The same params always give
// the same level.
func Generate(p Params) *config.LevelConfig {
	ground := perlin.NewPerlin(alpha, beta, n, p.Seed)
	ledges := perlin.NewPerlin(alpha, beta, n, p.Seed+1) // offset seed for ledge placement

	segments := max(p.Segments, 1)
	left := -p.Width / 2
	step := p.Width / float64(segments)

	height := func(x float64) float64 {
		// Offset keeps samples off the lattice, where the noise is zero.
		return mgl64.Clamp(ground.Noise1D(x*0.11+0.5), -1, 1) * p.Roughness
	}

	cfg := &config.LevelConfig{
		ID:   fmt.Sprintf("gen-%d", p.Seed),
		Name: fmt.Sprintf("Generated %d", p.Seed),
	}

	prev := config.Vec2Config{X: left, Y: height(left)}
	points := []config.Vec2Config{prev}
	for i := 1; i <= segments; i++ {
		x := left + step*float64(i)
		next := config.Vec2Config{X: x, Y: height(x)}
		cfg.Surfaces = append(cfg.Surfaces, config.SurfaceConfig{P1: prev, P2: next})
		points = append(points, next)
		prev = next
	}

	first, last := points[0], points[len(points)-1]
	cfg.Surfaces = append(cfg.Surfaces,
		config.SurfaceConfig{P1: first, P2: config.Vec2Config{X: first.X, Y: first.Y + p.WallHeight}},
		config.SurfaceConfig{P1: config.Vec2Config{X: last.X, Y: last.Y + p.WallHeight}, P2: last},
	)

	reach := p.Width/2 - p.LedgeLength
	for i := 1; i <= p.Ledges; i++ {
		cx := mgl64.Clamp(ledges.Noise1D(float64(i)*0.37+0.5), -1, 1) * reach / 2
		y := float64(i)*p.LedgeSpacing + p.Roughness
		cfg.Surfaces = append(cfg.Surfaces, config.SurfaceConfig{
			P1: config.Vec2Config{X: cx - p.LedgeLength/2, Y: y},
			P2: config.Vec2Config{X: cx + p.LedgeLength/2, Y: y},
		})
	}

	cfg.SpawnPoint = config.Vec2Config{X: 0, Y: groundAt(points, 0) + 0.5}
	return cfg
}

// groundAt interpolates the polyline height at x.
func groundAt(points []config.Vec2Config, x float64) float64 {
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if x <= b.X {
			t := (x - a.X) / (b.X - a.X)
			return a.Y + (b.Y-a.Y)*mgl64.Clamp(t, 0, 1)
		}
	}
	return points[len(points)-1].Y
}
