package effect

import (
	"log/slog"

	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/world"
)

// processDamage reduces the target's health by the effect value.
// TODO: scale by DamageType once units carry resistances.
func processDamage(e *model.DamageEffect, ctx Context, st *world.State) {
	target := ctx.MustGet(Target, st)
	target.Health.Change(-e.Value)

	slog.Debug("damage dealt",
		"type", e.Type,
		"value", e.Value,
		"caster", ctx.Caster,
		"target", ctx.Target,
		"hp", target.Health.Current())
}
