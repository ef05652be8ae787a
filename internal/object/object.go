// Package object holds the arcade game's entities, the ordered stores that own
// them, and the spawner that creates them.
package object

// Entity is anything that can be kept in a Store.
type Entity interface {
	// EntityID returns the store-unique identifier of the entity.
	EntityID() int
}

// Object is an entity advanced once per rendered frame.
type Object interface {
	Entity

	// Update advances the object by one frame. Returns true if the object
	// should be removed from its store.
	Update() (remove bool)
}

// UpdateAll advances every object in the store by one frame and drops the
// ones that ask to be removed, preserving the order of the rest.
func UpdateAll[T Object](s *Store[T]) (removed int) {
	before := s.Len()
	s.Filter(func(obj T) bool {
		return !obj.Update()
	})
	return before - s.Len()
}
