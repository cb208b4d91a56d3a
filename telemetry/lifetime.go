package telemetry

import "github.com/kamstrup/intmap"

// LifetimeTracker remembers the spawn tick of transient entities by entity ID.
type LifetimeTracker struct {
	born *intmap.Map[uint32, int32]
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		born: intmap.New[uint32, int32](64),
	}
}

// Register records that an entity spawned at tick.
func (lt *LifetimeTracker) Register(entityID uint32, tick int32) {
	lt.born.Put(entityID, tick)
}

// Remove forgets an entity and returns how many ticks it lived.
// ok is false if the entity was never registered.
func (lt *LifetimeTracker) Remove(entityID uint32, tick int32) (lived int32, ok bool) {
	birth, ok := lt.born.Get(entityID)
	if !ok {
		return 0, false
	}
	lt.born.Del(entityID)
	return tick - birth, true
}

// Len returns the number of tracked entities.
func (lt *LifetimeTracker) Len() int {
	return lt.born.Len()
}
