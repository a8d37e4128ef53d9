package game

import "math"

type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Dot(b Vec2) float64   { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dist(b Vec2) float64  { return a.Sub(b).Len() }

// Normalize returns the unit vector of a. The zero vector normalizes to the
// zero vector rather than NaN.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l <= 1e-9 {
		return Vec2{}
	}
	return a.Scale(1.0 / l)
}

// Lerp interpolates between a and b; t is clamped to [0, 1].
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	t = Clamp(t, 0, 1)
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

func (a Vec2) IsZero() bool { return a.X == 0 && a.Y == 0 }

// Sanitize maps NaN or infinite coordinates to zero so one corrupted entity
// cannot poison the rest of the tick.
func (a Vec2) Sanitize() Vec2 {
	if math.IsNaN(a.X) || math.IsInf(a.X, 0) {
		a.X = 0
	}
	if math.IsNaN(a.Y) || math.IsInf(a.Y, 0) {
		a.Y = 0
	}
	return a
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func orthogonal(v Vec2) Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// rotate returns v rotated by the given angle in radians.
func rotate(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

func lerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}
