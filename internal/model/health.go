package model

// Health is a clamped hit point pool.
type Health struct {
	current float64
	max     float64
}

// NewHealth creates a full Health with the given maximum.
// Maximum is clamped to at least 1.
func NewHealth(maxHP float64) Health {
	maxHP = max(maxHP, 1)
	return Health{current: maxHP, max: maxHP}
}

// Current returns current hit points.
func (h *Health) Current() float64 {
	return h.current
}

// Max returns maximum hit points.
func (h *Health) Max() float64 {
	return h.max
}

// Set sets current hit points, clamped to [0, max].
func (h *Health) Set(hp float64) {
	h.current = min(max(hp, 0), h.max)
}

// Change adds delta (negative for damage), clamped to [0, max].
func (h *Health) Change(delta float64) {
	h.Set(h.current + delta)
}

// IsDead returns true when no hit points remain.
func (h *Health) IsDead() bool {
	return h.current <= 0
}

// Ratio returns current/max in [0, 1].
func (h *Health) Ratio() float64 {
	if h.max <= 0 {
		return 0
	}
	return h.current / h.max
}
