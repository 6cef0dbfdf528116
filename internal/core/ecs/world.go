package ecs

import "reflect"

// World is the top-level ECS container. It owns the entity pool, the table
// of registered component stores, and a deferred destruction queue flushed
// at the end of each tick. The pool and store table are private: all entity
// and component access goes through World and Store methods, which is what
// enforces the liveness checks.
//
// A World is not safe for concurrent use. The game loop owns it and runs
// systems one at a time.
type World struct {
	pool         *Pool
	stores       []Queryable
	types        map[reflect.Type]ComponentID
	destroyQueue []Handle
}

// NewWorld creates an empty world. capacity pre-sizes the entity pool for
// the expected live-entity peak; values <= 0 fall back to a default.
func NewWorld(capacity int) *World {
	return &World{
		pool:         NewPool(capacity),
		stores:       make([]Queryable, 0, 16),
		types:        make(map[reflect.Type]ComponentID, 16),
		destroyQueue: make([]Handle, 0, 64),
	}
}

// CreateEntity allocates a new live entity with no components.
func (w *World) CreateEntity() Handle {
	return w.pool.Create()
}

// DestroyEntity destroys the entity and detaches its components from every
// registered store, so no store is left holding data for a dead slot. Stale
// and already-destroyed handles are ignored; the return value reports
// whether anything was destroyed, which also makes double-destroy harmless.
func (w *World) DestroyEntity(h Handle) bool {
	if !w.pool.Destroy(h) {
		return false
	}
	idx := h.Index()
	for _, s := range w.stores {
		s.removeIndex(idx)
	}
	return true
}

// Alive reports whether the handle refers to a currently live entity.
func (w *World) Alive(h Handle) bool {
	return w.pool.Alive(h)
}

// EntityCount returns the number of currently live entities.
func (w *World) EntityCount() int {
	return w.pool.Count()
}

// MarkForDestruction queues the entity for destruction at the next flush.
// Marking is idempotent in effect: duplicates in the queue destroy once.
// Systems that decide deaths mid-iteration use this instead of
// DestroyEntity so the stores they are walking stay untouched.
func (w *World) MarkForDestruction(h Handle) {
	w.destroyQueue = append(w.destroyQueue, h)
}

// FlushDestroyQueue destroys every queued entity and clears the queue,
// returning how many were actually destroyed. Handles that went stale while
// queued (destroyed directly, or destroyed and their slot reused) are
// skipped by the generation check in DestroyEntity.
func (w *World) FlushDestroyQueue() int {
	destroyed := 0
	for _, h := range w.destroyQueue {
		if w.DestroyEntity(h) {
			destroyed++
		}
	}
	w.destroyQueue = w.destroyQueue[:0]
	return destroyed
}
