package world

import (
	"sync/atomic"

	"github.com/udisondev/skirmish/internal/model"
)

// FirstID is the first ID issued by a fresh generator.
// 0 is reserved (model.NoID).
const FirstID model.ID = 1

// IDGenerator issues unique, monotonically increasing entity IDs.
// Units, projectiles and particles share one sequence so an ID never
// refers to two entities.
type IDGenerator struct {
	next atomic.Uint32
}

// NewIDGenerator creates a generator starting at FirstID.
func NewIDGenerator() *IDGenerator {
	return NewIDGeneratorFrom(FirstID)
}

// NewIDGeneratorFrom creates a generator whose first ID is start.
// Used when restoring a roster with pre-assigned IDs.
func NewIDGeneratorFrom(start model.ID) *IDGenerator {
	g := &IDGenerator{}
	g.next.Store(uint32(max(start, FirstID)) - 1)
	return g
}

// Next returns the next unique ID.
// Thread-safe via atomic increment.
func (g *IDGenerator) Next() model.ID {
	return model.ID(g.next.Add(1))
}

// Peek returns the ID the next call to Next will issue.
func (g *IDGenerator) Peek() model.ID {
	return model.ID(g.next.Load() + 1)
}
