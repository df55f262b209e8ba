// Package geom holds the small amount of 2D vector and angle math shared by
// the collider and entity packages. Vectors are mgl64.Vec2 in a y-up world.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance used for degenerate-length checks.
const Epsilon = 1e-9

// Up is the world up direction.
var Up = mgl64.Vec2{0, 1}

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// is (nearly) zero-length.
func NormalizeOrZero(v mgl64.Vec2) mgl64.Vec2 {
	l := v.Len()
	if l < Epsilon {
		return mgl64.Vec2{}
	}
	return v.Mul(1 / l)
}

// Perp rotates v by 90 degrees counter-clockwise.
func Perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v[1], v[0]}
}

// Arg returns the angle of v to the positive x axis in (-π, π].
func Arg(v mgl64.Vec2) float64 {
	return math.Atan2(v[1], v[0])
}

// UnitVec returns the unit vector pointing at angle a.
func UnitVec(a float64) mgl64.Vec2 {
	return mgl64.Vec2{math.Cos(a), math.Sin(a)}
}

// clampSlack is the relative length error a rescaled vector may carry.
const clampSlack = 1e-12

// ClampLen shortens v to at most maxLen, keeping its direction.
// A vector already within rounding of maxLen is returned unchanged, so
// clamping twice gives the same bits as clamping once.
func ClampLen(v mgl64.Vec2, maxLen float64) mgl64.Vec2 {
	l := v.Len()
	if l <= maxLen*(1+clampSlack) || l < Epsilon {
		return v
	}
	return v.Mul(maxLen / l)
}

// ClampAbs clamps x into [-limit, limit].
func ClampAbs(x, limit float64) float64 {
	return mgl64.Clamp(x, -limit, limit)
}

// NormalizeAngle wraps a into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// AngleTo returns the signed shortest rotation from a to b, in (-π, π].
func AngleTo(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d <= -math.Pi {
		d += 2 * math.Pi
	} else if d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

// IsFinite reports whether both components are finite numbers.
func IsFinite(v mgl64.Vec2) bool {
	return !math.IsNaN(v[0]) && !math.IsNaN(v[1]) && !math.IsInf(v[0], 0) && !math.IsInf(v[1], 0)
}
