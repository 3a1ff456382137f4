package model

import (
	"fmt"

	"github.com/udisondev/skirmish/internal/asset"
	"github.com/udisondev/skirmish/internal/geom"
)

// ProjectileAI tags how a spawned projectile is steered by the AI layer.
type ProjectileAI int32

const (
	ProjectileAISimple ProjectileAI = iota
	ProjectileAIHoming
	ProjectileAIRoll
)

func (ai ProjectileAI) String() string {
	switch ai {
	case ProjectileAISimple:
		return "Simple"
	case ProjectileAIHoming:
		return "Homing"
	case ProjectileAIRoll:
		return "Roll"
	default:
		return fmt.Sprintf("ProjectileAI(%d)", int32(ai))
	}
}

// ParseProjectileAI converts a name to ProjectileAI.
// Empty string defaults to Simple.
func ParseProjectileAI(s string) (ProjectileAI, error) {
	switch s {
	case "", "Simple":
		return ProjectileAISimple, nil
	case "Homing":
		return ProjectileAIHoming, nil
	case "Roll":
		return ProjectileAIRoll, nil
	default:
		return 0, fmt.Errorf("unknown projectile ai: %s", s)
	}
}

// Collider is an axis-aligned box centered on the owner's position.
type Collider struct {
	Size geom.Vec2
}

// Overlaps reports whether a box at p overlaps other's box at q.
func (c Collider) Overlaps(p geom.Vec2, other Collider, q geom.Vec2) bool {
	hx := (c.Size.X + other.Size.X) / 2
	hy := (c.Size.Y + other.Size.Y) / 2
	d := q.Sub(p)
	return d.X > -hx && d.X < hx && d.Y > -hy && d.Y < hy
}

// Projectile is a moving entity carrying a deferred impact effect.
type Projectile struct {
	ID             ID
	AnimationState asset.AnimationState
	AI             ProjectileAI
	Lifetime       float64
	Collider       Collider

	// OnHit is fired by the host on impact; never by the effect engine.
	OnHit Effect

	Caster ID
	Target ID

	Position geom.Vec2
	Velocity geom.Vec2
}

// EntityID implements world.Entity.
func (p *Projectile) EntityID() ID { return p.ID }
