package ecs

// Store is the typed container for one component type. It maps slot index to
// *T; pointer values mean a component obtained with Get is mutated in place,
// no write-back call needed. All handle-keyed operations are gated on entity
// liveness through the owning World, so a stale handle can never read or
// clobber data belonging to a slot's next occupant.
type Store[T any] struct {
	world *World
	cid   ComponentID
	name  string
	data  map[uint32]*T
}

// ID returns the stable component type ID assigned at registration.
func (s *Store[T]) ID() ComponentID { return s.cid }

// Name returns the component's type name, for logs and diagnostics.
func (s *Store[T]) Name() string { return s.name }

// Add attaches the component to a live entity, replacing any existing value
// (overwriting is not an error). Dead or stale handles are ignored so no
// store ever holds orphaned data; the return value reports whether the
// component was stored.
func (s *Store[T]) Add(h Handle, c *T) bool {
	if !s.world.pool.Alive(h) {
		return false
	}
	s.data[h.Index()] = c
	return true
}

// Get returns the entity's component. Absent when the entity is dead — even
// if the slot still holds data for a previous occupant — or when the
// component was never attached; callers treat the two identically and skip
// the entity for the frame.
func (s *Store[T]) Get(h Handle) (*T, bool) {
	if !s.world.pool.Alive(h) {
		return nil, false
	}
	c, ok := s.data[h.Index()]
	return c, ok
}

// Remove detaches the component if the entity is alive and has one.
// Returns false (no-op) otherwise.
func (s *Store[T]) Remove(h Handle) bool {
	if !s.world.pool.Alive(h) {
		return false
	}
	idx := h.Index()
	if _, ok := s.data[idx]; !ok {
		return false
	}
	delete(s.data, idx)
	return true
}

// Has reports whether the entity is alive and has this component.
func (s *Store[T]) Has(h Handle) bool {
	if !s.world.pool.Alive(h) {
		return false
	}
	_, ok := s.data[h.Index()]
	return ok
}

// Len returns the number of entities holding this component.
func (s *Store[T]) Len() int { return len(s.data) }

// Each calls fn for every live entity holding this component. The iteration
// is live, not a snapshot: callers must not add or remove components of this
// type during it. Deferred destruction via MarkForDestruction is safe.
func (s *Store[T]) Each(fn func(h Handle, c *T)) {
	for idx, c := range s.data {
		if !s.world.pool.aliveAt(idx) {
			continue
		}
		fn(s.world.pool.handleAt(idx), c)
	}
}

func (s *Store[T]) id() ComponentID { return s.cid }

func (s *Store[T]) hasIndex(idx uint32) bool {
	_, ok := s.data[idx]
	return ok
}

func (s *Store[T]) eachIndex(fn func(idx uint32) bool) {
	for idx := range s.data {
		if !fn(idx) {
			return
		}
	}
}

func (s *Store[T]) removeIndex(idx uint32) bool {
	if _, ok := s.data[idx]; !ok {
		return false
	}
	delete(s.data, idx)
	return true
}
