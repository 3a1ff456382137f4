package effect

import (
	"log/slog"

	"github.com/udisondev/skirmish/internal/asset"
	"github.com/udisondev/skirmish/internal/geom"
	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/world"
)

// HealParticleDuration is how long the heal glow plays, in simulation time.
const HealParticleDuration = 1.0

// HealParticleScale is applied to the heal template's sprites.
var HealParticleScale = geom.V(2, 2)

// processHeal restores the target's health and spawns a cosmetic particle
// following it.
func processHeal(e *model.HealEffect, ctx Context, st *world.State) {
	target := ctx.MustGet(Target, st)
	target.Health.Change(e.Value)

	anim := asset.ToAnimation(st.Assets.HealTemplate(), HealParticleScale, HealParticleDuration, nil)
	p := &model.Particle{
		ID:             st.NextID(),
		Alive:          true,
		FollowUnit:     ctx.Target,
		Position:       target.Position,
		AnimationState: asset.NewAnimationState(anim),
	}
	st.Particles.Insert(p)

	slog.Debug("heal",
		"value", e.Value,
		"caster", ctx.Caster,
		"target", ctx.Target,
		"hp", target.Health.Current(),
		"particle", p.ID)
}
