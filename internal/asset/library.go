package asset

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/skirmish/internal/geom"
)

// animationDef is the on-disk form of a named animation.
type animationDef struct {
	Template string    `yaml:"template"`
	Scale    geom.Vec2 `yaml:"scale"`
	Duration float64   `yaml:"duration"`
	Loop     *bool     `yaml:"loop"`
}

type libraryFile struct {
	HealTemplate string                  `yaml:"heal_template"`
	Templates    map[string]*Template    `yaml:"templates"`
	Animations   map[string]animationDef `yaml:"animations"`
}

// Library is the in-memory Registry built from an asset file.
// Immutable after construction.
type Library struct {
	templates  map[string]*Template
	animations map[string]*Animation
	heal       *Template
}

var _ Registry = (*Library)(nil)

// LoadLibrary reads an asset library from a YAML file.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading asset library %s: %w", path, err)
	}
	lib, err := ParseLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("parsing asset library %s: %w", path, err)
	}
	slog.Info("loaded assets",
		"templates", len(lib.templates),
		"animations", len(lib.animations))
	return lib, nil
}

// ParseLibrary builds a Library from YAML bytes.
func ParseLibrary(data []byte) (*Library, error) {
	var f libraryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	lib := &Library{
		templates:  make(map[string]*Template, len(f.Templates)),
		animations: make(map[string]*Animation, len(f.Animations)),
	}
	for name, tpl := range f.Templates {
		if tpl == nil || len(tpl.Frames) == 0 {
			return nil, fmt.Errorf("template %q has no frames", name)
		}
		tpl.Name = name
		lib.templates[name] = tpl
	}

	// Sorted so that errors are reported deterministically.
	names := make([]string, 0, len(f.Animations))
	for name := range f.Animations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		def := f.Animations[name]
		tpl, ok := lib.templates[def.Template]
		if !ok {
			return nil, fmt.Errorf("animation %q: template %q: %w", name, def.Template, ErrUnknownAnimation)
		}
		scale := def.Scale
		if scale == geom.Zero {
			scale = geom.V(1, 1)
		}
		anim := ToAnimation(tpl, scale, def.Duration, def.Loop)
		anim.Name = name
		lib.animations[name] = anim
	}

	heal, ok := lib.templates[f.HealTemplate]
	if !ok {
		return nil, fmt.Errorf("heal template %q: %w", f.HealTemplate, ErrUnknownAnimation)
	}
	lib.heal = heal
	return lib, nil
}

// Animation returns the shared animation registered under name.
func (l *Library) Animation(name string) (*Animation, error) {
	anim, ok := l.animations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAnimation, name)
	}
	return anim, nil
}

// Template returns the template registered under name.
func (l *Library) Template(name string) (*Template, error) {
	tpl, ok := l.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: template %s", ErrUnknownAnimation, name)
	}
	return tpl, nil
}

// HealTemplate returns the template used for heal particles.
func (l *Library) HealTemplate() *Template {
	return l.heal
}
