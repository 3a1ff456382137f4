package effect

import (
	"fmt"

	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/world"
)

// Who names a role an effect is resolved against.
type Who int

const (
	Caster Who = iota
	Target
)

func (w Who) String() string {
	switch w {
	case Caster:
		return "caster"
	case Target:
		return "target"
	default:
		return fmt.Sprintf("Who(%d)", int(w))
	}
}

// Context binds roles to entity IDs. Resolution against the state happens on
// every lookup; nothing is cached.
type Context struct {
	Caster model.ID
	Target model.ID // model.NoID when the ability has no target
}

// ID returns the entity ID bound to who.
func (c Context) ID(who Who) model.ID {
	switch who {
	case Caster:
		return c.Caster
	case Target:
		return c.Target
	default:
		panic(fmt.Sprintf("effect: unknown role %d", int(who)))
	}
}

// Get resolves who to a live unit.
// Returns false when the unit was removed or never existed.
func (c Context) Get(who Who, st *world.State) (*model.Unit, bool) {
	return st.Unit(c.ID(who))
}

// MustGet resolves who to a live unit and panics if it is gone.
// Only for roles that cannot be absent while the effect runs (the caster of
// its own effect); a failure means the simulation state is inconsistent.
func (c Context) MustGet(who Who, st *world.State) *model.Unit {
	u, ok := c.Get(who, st)
	if !ok {
		panic(fmt.Sprintf("effect: %s %d not found", who, c.ID(who)))
	}
	return u
}
