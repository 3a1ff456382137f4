package effect

import (
	"log/slog"

	"github.com/udisondev/skirmish/internal/geom"
	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/world"
)

// processDash launches the caster horizontally toward the target (or the way
// it faces) and arms a Charge status carrying OnContact.
func processDash(e *model.DashEffect, ctx Context, st *world.State) {
	var targetPos geom.Vec2
	target, hasTarget := ctx.Get(Target, st)
	if hasTarget {
		targetPos = target.Position
	}
	caster := ctx.MustGet(Caster, st)

	var dir float64
	switch {
	case hasTarget:
		dir = geom.Signum(targetPos.X - caster.Position.X)
	case caster.FlipSprite:
		dir = -1
	default:
		dir = 1
	}

	caster.Velocity = geom.V(dir*e.Speed, 0)
	caster.AddStatus(&model.ChargeStatus{
		Time:      e.Duration,
		OnContact: e.OnContact,
	})

	slog.Debug("dash",
		"caster", ctx.Caster,
		"target", ctx.Target,
		"velocity", caster.Velocity,
		"duration", e.Duration,
		"onContact", model.KindOf(e.OnContact))
}
