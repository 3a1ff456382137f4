package model

import (
	"github.com/udisondev/skirmish/internal/geom"
)

// ExtraRender is an optional render variant of a unit.
// Closed set: *TankRender.
type ExtraRender interface {
	extraRender()
}

// TankRender describes a unit holding a rotating weapon.
// Projectiles leave from the weapon's muzzle instead of a static offset.
type TankRender struct {
	HandPos   geom.Vec2
	WeaponPos geom.Vec2
	ShootPos  geom.Vec2
	Rotation  float64
}

func (*TankRender) extraRender() {}

// MuzzleOffset returns the shoot point relative to the unit position,
// before horizontal flipping.
func (r *TankRender) MuzzleOffset() geom.Vec2 {
	return r.HandPos.Add(r.WeaponPos.Add(r.ShootPos).Rotate(r.Rotation))
}

// Unit is a live combatant.
// Plain fields: effect processing is the single writer while it runs.
type Unit struct {
	ID       ID
	Name     string
	Position geom.Vec2
	Velocity geom.Vec2
	Health   Health
	Collider Collider

	Statuses []Status

	FlipSprite  bool
	ExtraRender ExtraRender
}

// NewUnit creates a unit at full health with a 1×1 collider.
func NewUnit(id ID, name string, pos geom.Vec2, maxHP float64) *Unit {
	return &Unit{
		ID:       id,
		Name:     name,
		Position: pos,
		Health:   NewHealth(maxHP),
		Collider: Collider{Size: geom.V(1, 1)},
	}
}

// EntityID implements world.Entity.
func (u *Unit) EntityID() ID { return u.ID }

// AddStatus appends a status.
func (u *Unit) AddStatus(s Status) {
	u.Statuses = append(u.Statuses, s)
}

// TickStatuses advances all statuses by dt and drops expired ones.
// Returns the statuses that expired.
func (u *Unit) TickStatuses(dt float64) []Status {
	var expired []Status
	kept := u.Statuses[:0]
	for _, s := range u.Statuses {
		if s.Tick(dt) {
			kept = append(kept, s)
		} else {
			expired = append(expired, s)
		}
	}
	clear(u.Statuses[len(kept):])
	u.Statuses = kept
	return expired
}

// Charge returns the first active ChargeStatus, if any.
func (u *Unit) Charge() (*ChargeStatus, bool) {
	for _, s := range u.Statuses {
		if c, ok := s.(*ChargeStatus); ok {
			return c, true
		}
	}
	return nil, false
}

// RemoveStatus removes s from the unit.
func (u *Unit) RemoveStatus(s Status) {
	for i, existing := range u.Statuses {
		if existing == s {
			u.Statuses = append(u.Statuses[:i], u.Statuses[i+1:]...)
			return
		}
	}
}
