package effect

import (
	"math"

	"github.com/udisondev/skirmish/internal/geom"
)

// Aim is a launch velocity and the flight time it takes to reach the target.
type Aim struct {
	Velocity geom.Vec2
	Time     float64
}

// AimBallistically finds a launch velocity of magnitude speed that lands a
// projectile at delta under vertical gravity.
//
// Solves
//
//	dx = vx·t
//	dy = vy·t + g·t²/2
//	vx² + vy² = s²
//
// as a quadratic in vx². Of the (up to two) solutions the one with the
// smallest flight time is returned. ok is false when the target is out of
// reach at this speed, and also when dx == 0: vertical shots have no positive
// vx² root and callers fall back to straight-line aim.
func AimBallistically(delta geom.Vec2, gravity, speed float64) (aim Aim, ok bool) {
	x, y := delta.X, delta.Y
	s, g := speed, gravity

	root := s*s*s*s + 2*g*y*s*s - g*g*x*x
	if root < 0 {
		return Aim{}, false
	}
	root = math.Sqrt(root)

	mult := x * x / 2 / (x*x + y*y)
	term := g*y + s*s
	for _, vx2 := range [2]float64{mult * (term + root), mult * (term - root)} {
		// Also rejects NaN from a zero delta.
		if !(vx2 > 0) {
			continue
		}
		vx := math.Sqrt(vx2) * geom.Signum(x)
		t := x / vx
		vy := (2*y - g*t*t) / (2 * t)
		if !ok || t < aim.Time {
			aim = Aim{Velocity: geom.V(vx, vy), Time: t}
			ok = true
		}
	}
	return aim, ok
}
