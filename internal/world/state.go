package world

import (
	"github.com/google/uuid"

	"github.com/udisondev/skirmish/internal/asset"
	"github.com/udisondev/skirmish/internal/geom"
	"github.com/udisondev/skirmish/internal/model"
)

// State is the mutable simulation state effects operate on.
// Exclusively owned by one writer while an effect is processed.
type State struct {
	MatchID string

	Gravity geom.Vec2
	Assets  asset.Registry

	Units       *Collection[*model.Unit]
	Projectiles *Collection[*model.Projectile]
	Particles   *Collection[*model.Particle]

	ids *IDGenerator
}

// Option configures a State.
type Option func(*State)

// WithIDGenerator shares an ID generator between states.
func WithIDGenerator(g *IDGenerator) Option {
	return func(s *State) { s.ids = g }
}

// WithMatchID overrides the random match ID.
func WithMatchID(id string) Option {
	return func(s *State) { s.MatchID = id }
}

// NewState creates an empty State.
func NewState(gravity geom.Vec2, assets asset.Registry, opts ...Option) *State {
	s := &State{
		MatchID:     uuid.NewString(),
		Gravity:     gravity,
		Assets:      assets,
		Units:       NewCollection[*model.Unit](),
		Projectiles: NewCollection[*model.Projectile](),
		Particles:   NewCollection[*model.Particle](),
		ids:         NewIDGenerator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextID allocates a fresh entity ID.
func (s *State) NextID() model.ID {
	return s.ids.Next()
}

// IDs returns the state's ID generator.
func (s *State) IDs() *IDGenerator {
	return s.ids
}

// Unit returns unit by ID. NoID never resolves.
func (s *State) Unit(id model.ID) (*model.Unit, bool) {
	if id == model.NoID {
		return nil, false
	}
	return s.Units.Get(id)
}

// SpawnUnit assigns a fresh ID to u and inserts it.
func (s *State) SpawnUnit(u *model.Unit) model.ID {
	u.ID = s.NextID()
	s.Units.Insert(u)
	return u.ID
}
