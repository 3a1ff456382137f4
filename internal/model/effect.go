package model

import (
	"fmt"

	"github.com/udisondev/skirmish/internal/asset"
	"github.com/udisondev/skirmish/internal/geom"
)

// Effect is a one-shot description of a state mutation.
// Closed set: Noop, *ProjectileEffect, *DamageEffect, *HealEffect, *DashEffect.
// A nil Effect behaves as Noop.
//
// Effects are consumed by processing. Nested effects (OnHit, OnContact) are
// moved into the spawned entity and stay inert until a host fires them.
type Effect interface {
	effect()
}

// Noop does nothing.
type Noop struct{}

// ProjectileEffect spawns a projectile aimed at the target.
type ProjectileEffect struct {
	Offset geom.Vec2
	AI     ProjectileAI
	Speed  float64
	OnHit  Effect

	// Shared between every projectile spawned from this definition.
	Animation *asset.Animation
}

// DamageEffect reduces the target's health.
type DamageEffect struct {
	Type  DamageType
	Value float64
}

// HealEffect restores the target's health.
type HealEffect struct {
	Value float64
}

// DashEffect launches the caster horizontally and arms OnContact for the
// duration of the dash.
type DashEffect struct {
	Speed     float64
	Duration  float64
	OnContact Effect
}

func (Noop) effect()              {}
func (*ProjectileEffect) effect() {}
func (*DamageEffect) effect()     {}
func (*HealEffect) effect()       {}
func (*DashEffect) effect()       {}

// Effect kind names, used by the effect registry and in logs.
const (
	KindNoop       = "Noop"
	KindProjectile = "Projectile"
	KindDamage     = "Damage"
	KindHeal       = "Heal"
	KindDash       = "Dash"
)

// KindOf returns the kind name of e.
func KindOf(e Effect) string {
	switch e.(type) {
	case nil, Noop, *Noop:
		return KindNoop
	case *ProjectileEffect:
		return KindProjectile
	case *DamageEffect:
		return KindDamage
	case *HealEffect:
		return KindHeal
	case *DashEffect:
		return KindDash
	default:
		return fmt.Sprintf("%T", e)
	}
}

// Clone returns a deep copy of e. Animations stay shared.
func Clone(e Effect) Effect {
	switch v := e.(type) {
	case nil:
		return nil
	case Noop, *Noop:
		return Noop{}
	case *ProjectileEffect:
		c := *v
		c.OnHit = Clone(v.OnHit)
		return &c
	case *DamageEffect:
		c := *v
		return &c
	case *HealEffect:
		c := *v
		return &c
	case *DashEffect:
		c := *v
		c.OnContact = Clone(v.OnContact)
		return &c
	default:
		panic(fmt.Sprintf("model: clone of unknown effect %T", e))
	}
}

// DamageType classifies damage.
// Carried through processing but not yet used to modify the outcome.
type DamageType int32

const (
	DamageTypePhysical DamageType = iota
	DamageTypeEnergy
	DamageTypeExplosive
)

func (t DamageType) String() string {
	switch t {
	case DamageTypePhysical:
		return "Physical"
	case DamageTypeEnergy:
		return "Energy"
	case DamageTypeExplosive:
		return "Explosive"
	default:
		return fmt.Sprintf("DamageType(%d)", int32(t))
	}
}

// ParseDamageType converts a name to DamageType.
// Empty string defaults to Physical.
func ParseDamageType(s string) (DamageType, error) {
	switch s {
	case "", "Physical":
		return DamageTypePhysical, nil
	case "Energy":
		return DamageTypeEnergy, nil
	case "Explosive":
		return DamageTypeExplosive, nil
	default:
		return 0, fmt.Errorf("unknown damage type: %s", s)
	}
}
