package effect

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/geom"
)

// assertLands checks the returned aim against the equations of motion.
func assertLands(t *testing.T, delta geom.Vec2, g, s float64, aim Aim) {
	t.Helper()
	tol := 1e-6 * max(1, math.Abs(delta.X), math.Abs(delta.Y), s*s)

	assert.Greater(t, aim.Time, 0.0)
	assert.InDelta(t, delta.X, aim.Velocity.X*aim.Time, tol, "dx")
	assert.InDelta(t, delta.Y, aim.Velocity.Y*aim.Time+g*aim.Time*aim.Time/2, tol, "dy")
	assert.InDelta(t, s, aim.Velocity.Len(), 1e-6*max(1, s), "speed")
}

// flightTimes finds every flight time hitting delta at speed s by scanning
// launch angles. Independent of the closed-form solver. Requires dx > 0.
func flightTimes(delta geom.Vec2, g, s float64) []float64 {
	const steps = 200000
	miss := func(theta float64) float64 {
		t := delta.X / (s * math.Cos(theta))
		return s*math.Sin(theta)*t + g*t*t/2 - delta.Y
	}

	var times []float64
	lo := -math.Pi/2 + 1e-6
	hi := math.Pi/2 - 1e-6
	step := (hi - lo) / steps
	prev := miss(lo)
	for i := 1; i <= steps; i++ {
		a, b := lo+float64(i-1)*step, lo+float64(i)*step
		cur := miss(b)
		if math.Signbit(prev) != math.Signbit(cur) {
			for range 100 {
				m := (a + b) / 2
				if math.Signbit(miss(m)) == math.Signbit(miss(a)) {
					a = m
				} else {
					b = m
				}
			}
			times = append(times, delta.X/(s*math.Cos((a+b)/2)))
		}
		prev = cur
	}
	return times
}

func TestAimBallistically_Example(t *testing.T) {
	delta := geom.V(10, 0)
	aim, ok := AimBallistically(delta, -1, 5)
	require.True(t, ok)
	assertLands(t, delta, -1, 5, aim)

	// Low arc: vx² = (25 + √525) / 2.
	assert.InDelta(t, math.Sqrt((25+math.Sqrt(525))/2), aim.Velocity.X, 1e-9)
	assert.Greater(t, aim.Velocity.Y, 0.0)
}

func TestAimBallistically_PicksEarliestImpact(t *testing.T) {
	tests := []struct {
		name  string
		delta geom.Vec2
		g, s  float64
	}{
		{"flat", geom.V(10, 0), -1, 5},
		{"uphill", geom.V(8, 3), -9.8, 14},
		{"downhill", geom.V(20, -6), -9.8, 15},
		{"leftward", geom.V(-12, 2), -5, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aim, ok := AimBallistically(tt.delta, tt.g, tt.s)
			require.True(t, ok)
			assertLands(t, tt.delta, tt.g, tt.s, aim)

			// Mirror leftward shots so the angle scan can work with dx > 0.
			mirrored := geom.V(math.Abs(tt.delta.X), tt.delta.Y)
			times := flightTimes(mirrored, tt.g, tt.s)
			require.Len(t, times, 2, "expected a low and a high arc")
			assert.InDelta(t, min(times[0], times[1]), aim.Time, 1e-6)
		})
	}
}

func TestAimBallistically_OutOfReach(t *testing.T) {
	// 625 + 0 - 100·10000 < 0
	_, ok := AimBallistically(geom.V(100, 0), -10, 5)
	assert.False(t, ok)

	// Target far above what speed can reach.
	_, ok = AimBallistically(geom.V(1, 100), -10, 5)
	assert.False(t, ok)
}

func TestAimBallistically_Vertical(t *testing.T) {
	_, ok := AimBallistically(geom.V(0, 10), -1, 20)
	assert.False(t, ok, "vertical shots fall back to straight aim")

	_, ok = AimBallistically(geom.Zero, -1, 20)
	assert.False(t, ok, "zero delta")
}

func TestAimBallistically_NoGravity(t *testing.T) {
	delta := geom.V(3, 4)
	aim, ok := AimBallistically(delta, 0, 10)
	require.True(t, ok)

	assert.True(t, aim.Velocity.ApproxEq(geom.V(6, 8), 1e-9), "got %v", aim.Velocity)
	assert.InDelta(t, 0.5, aim.Time, 1e-9)
}

func TestAimBallistically_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 2000 {
		delta := geom.V(rng.Float64()*100-50, rng.Float64()*100-50)
		g := -(rng.Float64()*20 + 0.1)
		s := rng.Float64()*40 + 1
		if math.Abs(delta.X) < 1 {
			// Near-vertical shots are covered by TestAimBallistically_Vertical.
			continue
		}

		disc := s*s*s*s + 2*g*delta.Y*s*s - g*g*delta.X*delta.X
		aim, ok := AimBallistically(delta, g, s)
		if disc < 0 {
			assert.False(t, ok, "negative discriminant must have no solution: %v g=%v s=%v", delta, g, s)
			continue
		}
		if ok {
			assertLands(t, delta, g, s, aim)
		}
	}
}
