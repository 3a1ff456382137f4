package asset

import "errors"

// ErrUnknownAnimation is returned when a name is not in the registry.
var ErrUnknownAnimation = errors.New("unknown animation")

//go:generate mockgen -destination=mocks/mock_registry.go -package=mocks github.com/udisondev/skirmish/internal/asset Registry

// Registry supplies animation data to the effect engine.
// Animations returned by the same name are the same shared pointer.
type Registry interface {
	Animation(name string) (*Animation, error)
	Template(name string) (*Template, error)
	HealTemplate() *Template
}
