package object

import (
	"github.com/kamstrup/intmap"
	"github.com/tomz197/orbit-arcade/internal/invariant"
)

// Store is an insertion-ordered collection of entities with an id index.
//
// Iteration order is insertion order, which the collision resolver relies on
// ("first bullet in store order wins"). Ids handed out by NextID increase
// monotonically for the lifetime of the store and survive Clear, so an id is
// never reused while something could still hold it.
type Store[T Entity] struct {
	items  []T
	index  *intmap.Map[int, int] // id -> position in items
	nextID int
}

// NewStore creates an empty store.
func NewStore[T Entity]() *Store[T] {
	return &Store[T]{
		index:  intmap.New[int, int](32),
		nextID: 1,
	}
}

// NextID reserves the next identifier.
func (s *Store[T]) NextID() int {
	id := s.nextID
	s.nextID++
	return id
}

// Add appends an entity. Adding an id that is already live is a contract
// violation; the duplicate is dropped.
func (s *Store[T]) Add(item T) {
	id := item.EntityID()
	_, dup := s.index.Get(id)
	if !invariant.Check(!dup, "duplicate entity id %d", id) {
		return
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}
	s.index.Put(id, len(s.items))
	s.items = append(s.items, item)
}

// Get returns the live entity with the given id.
func (s *Store[T]) Get(id int) (T, bool) {
	pos, ok := s.index.Get(id)
	if !ok {
		var zero T
		return zero, false
	}
	return s.items[pos], true
}

// Has reports whether an entity with the given id is live.
func (s *Store[T]) Has(id int) bool {
	_, ok := s.index.Get(id)
	return ok
}

// Remove deletes the entity with the given id, keeping the order of the rest.
func (s *Store[T]) Remove(id int) bool {
	pos, ok := s.index.Get(id)
	if !ok {
		return false
	}
	copy(s.items[pos:], s.items[pos+1:])
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	s.index.Del(id)
	s.reindex(pos)
	return true
}

// Len returns the number of live entities.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// All returns the live entities in insertion order. The slice is owned by the
// store and only valid until the next mutation.
func (s *Store[T]) All() []T {
	return s.items
}

// Filter keeps the entities for which keep returns true, compacting in place.
func (s *Store[T]) Filter(keep func(T) bool) {
	kept := s.items[:0]
	for _, item := range s.items {
		if keep(item) {
			kept = append(kept, item)
		} else {
			s.index.Del(item.EntityID())
		}
	}
	clear(s.items[len(kept):])
	s.items = kept
	s.reindex(0)
}

// Clear removes every entity. The id counter is not reset.
func (s *Store[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
	s.index.Clear()
}

func (s *Store[T]) reindex(from int) {
	for i := from; i < len(s.items); i++ {
		s.index.Put(s.items[i].EntityID(), i)
	}
}
