package effect

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/udisondev/skirmish/internal/asset"
	"github.com/udisondev/skirmish/internal/geom"
	"github.com/udisondev/skirmish/internal/model"
)

// ErrUnknownEffect is returned by Build for an unregistered effect type.
var ErrUnknownEffect = errors.New("unknown effect type")

// Definition is the declarative form of an effect, as written in ability
// files. Nested definitions become the deferred OnHit/OnContact effects.
type Definition struct {
	Type      string            `yaml:"type"`
	Params    map[string]string `yaml:"params"`
	OnHit     *Definition       `yaml:"on_hit"`
	OnContact *Definition       `yaml:"on_contact"`
}

// Factory builds an effect from its definition.
type Factory func(def *Definition, assets asset.Registry) (model.Effect, error)

// effectRegistry maps effect type name → factory.
// Populated by init() below.
var effectRegistry = map[string]Factory{}

// RegisterEffect registers an effect factory by type name.
func RegisterEffect(name string, factory Factory) {
	effectRegistry[name] = factory
}

// Build creates an effect tree from def. A nil def builds Noop.
func Build(def *Definition, assets asset.Registry) (model.Effect, error) {
	if def == nil {
		return model.Noop{}, nil
	}
	factory, ok := effectRegistry[def.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, def.Type)
	}
	e, err := factory(def, assets)
	if err != nil {
		return nil, fmt.Errorf("building %s effect: %w", def.Type, err)
	}
	return e, nil
}

func init() {
	RegisterEffect(model.KindNoop, newNoop)
	RegisterEffect(model.KindProjectile, newProjectileEffect)
	RegisterEffect(model.KindDamage, newDamageEffect)
	RegisterEffect(model.KindHeal, newHealEffect)
	RegisterEffect(model.KindDash, newDashEffect)
}

func newNoop(_ *Definition, _ asset.Registry) (model.Effect, error) {
	return model.Noop{}, nil
}

// Params: "speed", "animation" (required); "ai", "offset_x", "offset_y".
func newProjectileEffect(def *Definition, assets asset.Registry) (model.Effect, error) {
	speed, err := floatParam(def.Params, "speed", 0)
	if err != nil {
		return nil, err
	}
	ox, err := floatParam(def.Params, "offset_x", 0)
	if err != nil {
		return nil, err
	}
	oy, err := floatParam(def.Params, "offset_y", 0)
	if err != nil {
		return nil, err
	}
	ai, err := model.ParseProjectileAI(def.Params["ai"])
	if err != nil {
		return nil, err
	}
	if assets == nil {
		return nil, errors.New("no asset registry for projectile animation")
	}
	anim, err := assets.Animation(def.Params["animation"])
	if err != nil {
		return nil, err
	}
	onHit, err := Build(def.OnHit, assets)
	if err != nil {
		return nil, fmt.Errorf("on_hit: %w", err)
	}
	return &model.ProjectileEffect{
		Offset:    geom.V(ox, oy),
		AI:        ai,
		Speed:     speed,
		OnHit:     onHit,
		Animation: anim,
	}, nil
}

// Params: "value"; "type" (Physical by default).
func newDamageEffect(def *Definition, _ asset.Registry) (model.Effect, error) {
	value, err := floatParam(def.Params, "value", 0)
	if err != nil {
		return nil, err
	}
	dt, err := model.ParseDamageType(def.Params["type"])
	if err != nil {
		return nil, err
	}
	return &model.DamageEffect{Type: dt, Value: value}, nil
}

// Params: "value".
func newHealEffect(def *Definition, _ asset.Registry) (model.Effect, error) {
	value, err := floatParam(def.Params, "value", 0)
	if err != nil {
		return nil, err
	}
	return &model.HealEffect{Value: value}, nil
}

// Params: "speed", "duration".
func newDashEffect(def *Definition, assets asset.Registry) (model.Effect, error) {
	speed, err := floatParam(def.Params, "speed", 0)
	if err != nil {
		return nil, err
	}
	duration, err := floatParam(def.Params, "duration", 0)
	if err != nil {
		return nil, err
	}
	onContact, err := Build(def.OnContact, assets)
	if err != nil {
		return nil, fmt.Errorf("on_contact: %w", err)
	}
	return &model.DashEffect{
		Speed:     speed,
		Duration:  duration,
		OnContact: onContact,
	}, nil
}

func floatParam(params map[string]string, key string, def float64) (float64, error) {
	raw, ok := params[key]
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("param %s=%q: %w", key, raw, err)
	}
	return v, nil
}
