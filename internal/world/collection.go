package world

import (
	"slices"

	"github.com/udisondev/skirmish/internal/model"
)

// Entity is anything stored in a Collection.
type Entity interface {
	EntityID() model.ID
}

// Collection is an id-indexed set of entities.
// Not thread-safe: owned by a single State writer.
type Collection[T Entity] struct {
	items map[model.ID]T
}

// NewCollection creates an empty collection.
func NewCollection[T Entity]() *Collection[T] {
	return &Collection[T]{items: make(map[model.ID]T)}
}

// Insert adds e, replacing any entity with the same ID.
func (c *Collection[T]) Insert(e T) {
	c.items[e.EntityID()] = e
}

// Get returns entity by ID.
func (c *Collection[T]) Get(id model.ID) (T, bool) {
	e, ok := c.items[id]
	return e, ok
}

// Remove deletes entity by ID and returns it.
func (c *Collection[T]) Remove(id model.ID) (T, bool) {
	e, ok := c.items[id]
	if ok {
		delete(c.items, id)
	}
	return e, ok
}

// Len returns number of entities.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// IDs returns all IDs in ascending order.
func (c *Collection[T]) IDs() []model.ID {
	ids := make([]model.ID, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Each calls fn for every entity in ascending ID order until fn returns false.
// fn may remove the entity it is given.
func (c *Collection[T]) Each(fn func(T) bool) {
	for _, id := range c.IDs() {
		e, ok := c.items[id]
		if !ok {
			continue
		}
		if !fn(e) {
			return
		}
	}
}
