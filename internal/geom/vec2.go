package geom

import "math"

// Epsilon is the tolerance used by approximate comparisons.
const Epsilon = 1e-9

// Vec2 представляет 2D вектор в мировых координатах.
// Value type, передаётся по значению (immutable).
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Zero is the zero vector.
var Zero = Vec2{}

// V creates a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// NormalizeOrZero returns the unit vector in v's direction,
// or the zero vector when v is too short to have one.
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Len()
	if l < Epsilon || math.IsNaN(l) || math.IsInf(l, 0) {
		return Zero
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rotate rotates v counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// ApproxEq reports whether v and o differ by at most eps per component.
func (v Vec2) ApproxEq(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// ApproxZero reports whether x is within Epsilon of zero.
func ApproxZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// Signum returns 1 for +0 and positive x, -1 for -0 and negative x.
// NaN is returned unchanged.
func Signum(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	return math.Copysign(1, x)
}
