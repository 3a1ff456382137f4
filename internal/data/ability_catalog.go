package data

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/skirmish/internal/asset"
	"github.com/udisondev/skirmish/internal/effect"
	"github.com/udisondev/skirmish/internal/model"
)

// ErrUnknownAbility is returned for an ability name not in the catalog.
var ErrUnknownAbility = errors.New("unknown ability")

type abilityFile struct {
	Abilities map[string]*effect.Definition `yaml:"abilities"`
}

// AbilityCatalog maps ability name → effect template.
// Templates are built once at load; every lookup returns a fresh deep copy
// because effects are consumed when processed.
type AbilityCatalog struct {
	abilities map[string]model.Effect
}

// LoadAbilities reads an ability catalog from a YAML file.
func LoadAbilities(path string, assets asset.Registry) (*AbilityCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading abilities %s: %w", path, err)
	}
	c, err := ParseAbilities(data, assets)
	if err != nil {
		return nil, fmt.Errorf("parsing abilities %s: %w", path, err)
	}
	slog.Info("loaded abilities", "count", len(c.abilities))
	return c, nil
}

// ParseAbilities builds a catalog from YAML bytes.
func ParseAbilities(data []byte, assets asset.Registry) (*AbilityCatalog, error) {
	var f abilityFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	c := &AbilityCatalog{abilities: make(map[string]model.Effect, len(f.Abilities))}
	for _, name := range sortedKeys(f.Abilities) {
		def := f.Abilities[name]
		if def == nil {
			return nil, fmt.Errorf("ability %q: empty definition", name)
		}
		e, err := effect.Build(def, assets)
		if err != nil {
			return nil, fmt.Errorf("ability %q: %w", name, err)
		}
		c.abilities[name] = e
	}
	return c, nil
}

// Effect returns a fresh, single-use effect for the ability.
func (c *AbilityCatalog) Effect(name string) (model.Effect, error) {
	e, ok := c.abilities[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAbility, name)
	}
	return model.Clone(e), nil
}

// Names returns all ability names, sorted.
func (c *AbilityCatalog) Names() []string {
	return sortedKeys(c.abilities)
}

// Len returns number of abilities.
func (c *AbilityCatalog) Len() int {
	return len(c.abilities)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
