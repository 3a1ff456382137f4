package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/skirmish/internal/geom"
)

// TankRender describes a unit's weapon anchor.
type TankRender struct {
	HandPos   geom.Vec2 `yaml:"hand_pos"`
	WeaponPos geom.Vec2 `yaml:"weapon_pos"`
	ShootPos  geom.Vec2 `yaml:"shoot_pos"`
	Rotation  float64   `yaml:"rotation"` // radians
}

// Unit is a roster entry of the demo scenario.
type Unit struct {
	Name     string      `yaml:"name"`
	Position geom.Vec2   `yaml:"position"`
	Velocity geom.Vec2   `yaml:"velocity"`
	MaxHP    float64     `yaml:"max_hp"`
	HP       float64     `yaml:"hp"` // 0 = full
	Flip     bool        `yaml:"flip"`
	Tank     *TankRender `yaml:"tank"`
}

// Cast is a scripted ability use.
type Cast struct {
	At      float64 `yaml:"at"` // simulation time
	Ability string  `yaml:"ability"`
	Caster  string  `yaml:"caster"`
	Target  string  `yaml:"target"` // empty = no target
}

// Skirmish holds all configuration for the skirmish demo host.
type Skirmish struct {
	LogLevel string `yaml:"log_level"`

	// Assets
	AssetsPath    string `yaml:"assets_path"`
	AbilitiesPath string `yaml:"abilities_path"`

	// World
	Gravity geom.Vec2 `yaml:"gravity"`

	// Host loop
	TickRate time.Duration `yaml:"tick_rate"` // wall-clock time per tick (default: 50ms)
	TimeStep float64       `yaml:"time_step"` // simulation time per tick
	Duration float64       `yaml:"duration"`  // simulation time to run

	Units []Unit `yaml:"units"`
	Casts []Cast `yaml:"casts"`
}

// DefaultSkirmish returns Skirmish config with sensible defaults.
func DefaultSkirmish() Skirmish {
	return Skirmish{
		LogLevel:      "info",
		AssetsPath:    "config/assets.yaml",
		AbilitiesPath: "config/abilities.yaml",
		Gravity:       geom.V(0, -9.8),
		TickRate:      50 * time.Millisecond,
		TimeStep:      0.05,
		Duration:      10,
	}
}

// LoadSkirmish loads skirmish config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSkirmish(path string) (Skirmish, error) {
	cfg := DefaultSkirmish()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks cross-references between casts and the roster.
func (c Skirmish) Validate() error {
	if c.TimeStep <= 0 {
		return fmt.Errorf("time_step must be positive, got %v", c.TimeStep)
	}
	names := make(map[string]struct{}, len(c.Units))
	for _, u := range c.Units {
		if _, dup := names[u.Name]; dup {
			return fmt.Errorf("duplicate unit %q", u.Name)
		}
		names[u.Name] = struct{}{}
	}
	for i, cast := range c.Casts {
		if _, ok := names[cast.Caster]; !ok {
			return fmt.Errorf("cast %d: unknown caster %q", i, cast.Caster)
		}
		if cast.Target == "" {
			continue
		}
		if _, ok := names[cast.Target]; !ok {
			return fmt.Errorf("cast %d: unknown target %q", i, cast.Target)
		}
	}
	return nil
}
