package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	assert.Equal(t, V(4, -2), a.Add(b))
	assert.Equal(t, V(-2, 6), a.Sub(b))
	assert.Equal(t, V(2, 4), a.Scale(2))
	assert.InDelta(t, 5.0, b.Len(), 1e-12)
}

func TestNormalizeOrZero(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"axis", V(10, 0), V(1, 0)},
		{"diagonal", V(3, 4), V(0.6, 0.8)},
		{"zero", Zero, Zero},
		{"tiny", V(1e-12, 0), Zero},
		{"nan", V(math.NaN(), 1), Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.NormalizeOrZero()
			assert.True(t, got.ApproxEq(tt.want, 1e-12), "got %v, want %v", got, tt.want)
		})
	}
}

func TestRotate(t *testing.T) {
	got := V(1, 0).Rotate(math.Pi / 2)
	assert.True(t, got.ApproxEq(V(0, 1), 1e-12), "got %v", got)

	got = V(0, 2).Rotate(math.Pi)
	assert.True(t, got.ApproxEq(V(0, -2), 1e-12), "got %v", got)
}

func TestSignum(t *testing.T) {
	assert.Equal(t, 1.0, Signum(3))
	assert.Equal(t, -1.0, Signum(-0.5))
	assert.Equal(t, 1.0, Signum(0))
	assert.Equal(t, -1.0, Signum(math.Copysign(0, -1)))
	assert.True(t, math.IsNaN(Signum(math.NaN())))
}
