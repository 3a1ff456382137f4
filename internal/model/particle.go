package model

import (
	"github.com/udisondev/skirmish/internal/asset"
	"github.com/udisondev/skirmish/internal/geom"
)

// Particle is a purely cosmetic entity.
type Particle struct {
	ID             ID
	Alive          bool
	FollowUnit     ID
	Position       geom.Vec2
	AnimationState asset.AnimationState
}

// EntityID implements world.Entity.
func (p *Particle) EntityID() ID { return p.ID }
