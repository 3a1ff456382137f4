package effect

import (
	"log/slog"

	"github.com/udisondev/skirmish/internal/asset"
	"github.com/udisondev/skirmish/internal/geom"
	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/world"
)

const (
	// ProjectileLifetime is how long a spawned projectile lives, in time units.
	ProjectileLifetime = 10.0
)

// ProjectileColliderSize is the AABB size of a spawned projectile.
var ProjectileColliderSize = geom.V(1, 1)

// processProjectile spawns a projectile aimed at where the target will be.
// No target: nothing happens.
func processProjectile(e *model.ProjectileEffect, ctx Context, st *world.State) {
	caster := ctx.MustGet(Caster, st)
	target, ok := ctx.Get(Target, st)
	if !ok {
		slog.Debug("projectile skipped, no target",
			"caster", ctx.Caster,
			"target", ctx.Target)
		return
	}

	position := muzzlePosition(e, caster)

	// First guess: straight-line flight time to the target's current position.
	delta := target.Position.Sub(position)
	var flight float64
	if !geom.ApproxZero(e.Speed) {
		flight = delta.Len() / e.Speed
	}
	predicted := target.Position.Add(target.Velocity.Scale(flight))

	gravity := st.Gravity.Y
	velocity := predicted.Sub(position).NormalizeOrZero().Scale(e.Speed)
	if first, ok := AimBallistically(predicted.Sub(position), gravity, e.Speed); ok {
		// Flight time under gravity differs from the straight-line guess,
		// so re-predict with it.
		refined := target.Position.Add(target.Velocity.Scale(first.Time))
		if second, ok := AimBallistically(refined.Sub(position), gravity, e.Speed); ok {
			velocity = second.Velocity
		}
	}

	p := &model.Projectile{
		ID:             st.NextID(),
		AnimationState: asset.NewAnimationState(e.Animation),
		AI:             e.AI,
		Lifetime:       ProjectileLifetime,
		Collider:       model.Collider{Size: ProjectileColliderSize},
		OnHit:          e.OnHit,
		Caster:         ctx.Caster,
		Target:         ctx.Target,
		Position:       position,
		Velocity:       velocity,
	}
	st.Projectiles.Insert(p)

	slog.Debug("projectile spawned",
		"id", p.ID,
		"caster", ctx.Caster,
		"target", ctx.Target,
		"ai", p.AI,
		"velocity", velocity,
		"onHit", model.KindOf(p.OnHit))
}

// muzzlePosition returns where the projectile leaves the caster.
// Units holding a weapon shoot from its rotated muzzle.
func muzzlePosition(e *model.ProjectileEffect, caster *model.Unit) geom.Vec2 {
	offset := e.Offset
	if tank, ok := caster.ExtraRender.(*model.TankRender); ok {
		offset = tank.MuzzleOffset()
	}
	if caster.FlipSprite {
		offset.X = -offset.X
	}
	return caster.Position.Add(offset)
}
