package main

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/udisondev/skirmish/internal/config"
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/effect"
	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/world"
)

// Host drives a world.State the way a game loop would: it casts scripted
// abilities, moves entities and fires deferred effects on impact/contact.
// The effect engine itself never steps time.
type Host struct {
	state   *world.State
	catalog *data.AbilityCatalog

	units map[string]model.ID
	casts []config.Cast

	now float64
}

// NewHost spawns the configured roster into st.
func NewHost(st *world.State, catalog *data.AbilityCatalog, cfg config.Skirmish) *Host {
	h := &Host{
		state:   st,
		catalog: catalog,
		units:   make(map[string]model.ID, len(cfg.Units)),
		casts:   slices.Clone(cfg.Casts),
	}
	slices.SortStableFunc(h.casts, func(a, b config.Cast) int {
		switch {
		case a.At < b.At:
			return -1
		case a.At > b.At:
			return 1
		default:
			return 0
		}
	})

	for _, uc := range cfg.Units {
		u := model.NewUnit(model.NoID, uc.Name, uc.Position, uc.MaxHP)
		u.Velocity = uc.Velocity
		u.FlipSprite = uc.Flip
		if uc.HP > 0 {
			u.Health.Set(uc.HP)
		}
		if uc.Tank != nil {
			u.ExtraRender = &model.TankRender{
				HandPos:   uc.Tank.HandPos,
				WeaponPos: uc.Tank.WeaponPos,
				ShootPos:  uc.Tank.ShootPos,
				Rotation:  uc.Tank.Rotation,
			}
		}
		h.units[uc.Name] = st.SpawnUnit(u)
	}
	return h
}

// Now returns elapsed simulation time.
func (h *Host) Now() float64 {
	return h.now
}

// Run steps the host every tickRate until duration of simulation time has
// passed or ctx is done.
func (h *Host) Run(ctx context.Context, tickRate time.Duration, dt, duration float64) error {
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	slog.Info("host started", "match", h.state.MatchID, "units", h.state.Units.Len())

	for h.now < duration {
		select {
		case <-ctx.Done():
			slog.Info("host stopping", "at", h.now)
			return ctx.Err()
		case <-ticker.C:
			if err := h.Step(dt); err != nil {
				return err
			}
		}
	}

	slog.Info("host finished", "at", h.now)
	return nil
}

// Step advances the simulation by dt.
func (h *Host) Step(dt float64) error {
	if err := h.castDue(); err != nil {
		return err
	}
	h.moveProjectiles(dt)
	h.moveUnits(dt)
	h.updateParticles(dt)
	h.now += dt
	return nil
}

// castDue processes every scripted cast whose time has come.
func (h *Host) castDue() error {
	for len(h.casts) > 0 && h.casts[0].At <= h.now {
		c := h.casts[0]
		h.casts = h.casts[1:]

		caster, ok := h.state.Unit(h.units[c.Caster])
		if !ok || caster.Health.IsDead() {
			slog.Debug("cast skipped, caster gone", "ability", c.Ability, "caster", c.Caster)
			continue
		}
		e, err := h.catalog.Effect(c.Ability)
		if err != nil {
			return fmt.Errorf("cast %s at %.2f: %w", c.Ability, c.At, err)
		}
		ctx := effect.Context{Caster: caster.ID}
		if c.Target != "" {
			ctx.Target = h.units[c.Target]
		}
		if _, ok := ctx.Get(effect.Target, h.state); !ok && effect.RequiresTarget(e) {
			slog.Warn("cast skipped, target required",
				"match", h.state.MatchID,
				"ability", c.Ability,
				"caster", c.Caster,
				"target", c.Target)
			continue
		}
		slog.Info("cast",
			"match", h.state.MatchID,
			"ability", c.Ability,
			"caster", c.Caster,
			"target", c.Target,
			"at", h.now)
		effect.Process(e, ctx, h.state)
	}
	return nil
}

func (h *Host) moveProjectiles(dt float64) {
	st := h.state
	st.Projectiles.Each(func(p *model.Projectile) bool {
		p.Velocity = p.Velocity.Add(st.Gravity.Scale(dt))
		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		p.AnimationState.Advance(dt)
		p.Lifetime -= dt

		if hit, ok := h.projectileHit(p); ok {
			st.Projectiles.Remove(p.ID)
			h.fireDeferred("on_hit", p.OnHit, effect.Context{Caster: p.Caster, Target: hit.ID})
			return true
		}
		if p.Lifetime <= 0 {
			st.Projectiles.Remove(p.ID)
			slog.Debug("projectile expired", "id", p.ID)
		}
		return true
	})
}

// projectileHit returns the first living unit other than the caster that the
// projectile overlaps, in ID order.
func (h *Host) projectileHit(p *model.Projectile) (*model.Unit, bool) {
	var hit *model.Unit
	h.state.Units.Each(func(u *model.Unit) bool {
		if u.ID == p.Caster || u.Health.IsDead() {
			return true
		}
		if p.Collider.Overlaps(p.Position, u.Collider, u.Position) {
			hit = u
			return false
		}
		return true
	})
	return hit, hit != nil
}

func (h *Host) moveUnits(dt float64) {
	st := h.state
	st.Units.Each(func(u *model.Unit) bool {
		u.Position = u.Position.Add(u.Velocity.Scale(dt))

		if charge, ok := u.Charge(); ok {
			if other, ok := h.contact(u); ok {
				u.RemoveStatus(charge)
				u.Velocity.X = 0
				h.fireDeferred("on_contact", charge.TakeOnContact(), effect.Context{Caster: u.ID, Target: other.ID})
				return true
			}
		}

		for _, s := range u.TickStatuses(dt) {
			if _, ok := s.(*model.ChargeStatus); ok {
				// Dash over without contact.
				u.Velocity.X = 0
			}
		}
		return true
	})
}

// contact returns a living unit touching u.
func (h *Host) contact(u *model.Unit) (*model.Unit, bool) {
	var other *model.Unit
	h.state.Units.Each(func(o *model.Unit) bool {
		if o.ID == u.ID || o.Health.IsDead() {
			return true
		}
		if u.Collider.Overlaps(u.Position, o.Collider, o.Position) {
			other = o
			return false
		}
		return true
	})
	return other, other != nil
}

func (h *Host) updateParticles(dt float64) {
	st := h.state
	st.Particles.Each(func(p *model.Particle) bool {
		if u, ok := st.Unit(p.FollowUnit); ok {
			p.Position = u.Position
		}
		p.AnimationState.Advance(dt)
		if p.AnimationState.Finished {
			p.Alive = false
			st.Particles.Remove(p.ID)
		}
		return true
	})
}

// fireDeferred hands a stored effect back to the engine.
// A deferred effect whose caster is gone is dropped.
func (h *Host) fireDeferred(trigger string, e model.Effect, ctx effect.Context) {
	if _, ok := h.state.Unit(ctx.Caster); !ok {
		slog.Debug("deferred effect dropped, caster gone", "trigger", trigger, "caster", ctx.Caster)
		return
	}
	slog.Debug("deferred effect fired",
		"match", h.state.MatchID,
		"trigger", trigger,
		"effect", model.KindOf(e),
		"caster", ctx.Caster,
		"target", ctx.Target)
	effect.Process(e, ctx, h.state)
}

// Summary logs the current state of every unit, tagged with the match ID.
func (h *Host) Summary() {
	h.state.Units.Each(func(u *model.Unit) bool {
		slog.Info("unit",
			"match", h.state.MatchID,
			"name", u.Name,
			"hp", u.Health.Current(),
			"max_hp", u.Health.Max(),
			"x", u.Position.X,
			"y", u.Position.Y)
		return true
	})
	slog.Info("entities",
		"match", h.state.MatchID,
		"at", h.now,
		"projectiles", h.state.Projectiles.Len(),
		"particles", h.state.Particles.Len())
}
