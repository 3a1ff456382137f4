package effect

import (
	"fmt"

	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/world"
)

// Process applies e to st.
//
// e is consumed: nested effects are moved into spawned entities, so the caller
// must not process the same value twice (use model.Clone to reuse a template).
// Nested effects are never run here; a host passes them back to Process when
// their trigger fires.
func Process(e model.Effect, ctx Context, st *world.State) {
	switch e := e.(type) {
	case nil, model.Noop, *model.Noop:
	case *model.ProjectileEffect:
		processProjectile(e, ctx, st)
	case *model.DamageEffect:
		processDamage(e, ctx, st)
	case *model.HealEffect:
		processHeal(e, ctx, st)
	case *model.DashEffect:
		processDash(e, ctx, st)
	default:
		panic(fmt.Sprintf("effect: unknown effect %T", e))
	}
}

// RequiresTarget reports whether processing e needs a resolvable target.
// Processing such an effect without one panics.
func RequiresTarget(e model.Effect) bool {
	switch e.(type) {
	case *model.DamageEffect, *model.HealEffect:
		return true
	default:
		return false
	}
}
