package ecs

import "sort"

// Queryable is the type-erased view of a component store that World.Query
// and the destroy cascade operate on. Its unexported methods mean only
// Store[T] values registered through RegisterStore satisfy it.
type Queryable interface {
	// Len returns the number of entities holding the component.
	Len() int

	id() ComponentID
	hasIndex(idx uint32) bool
	eachIndex(fn func(idx uint32) bool)
	removeIndex(idx uint32) bool
}

// Query returns the handles of all live entities that hold every one of the
// given components. The result is a snapshot: a fresh slice the caller owns,
// unaffected by anything created or destroyed afterwards. Callers that may
// destroy entities mid-walk re-check Alive before touching each handle.
//
// Results are sorted by slot index, so the same world state always yields
// the same order regardless of how the stores are listed. Duplicate stores
// in the argument list are ignored. Querying with no stores returns nothing:
// there is no "all entities" query, and a system that wants one names a
// component every entity carries.
func (w *World) Query(stores ...Queryable) []Handle {
	if len(stores) == 0 {
		return nil
	}

	var seen [MaxComponentTypes / 64]uint64
	uniq := make([]Queryable, 0, len(stores))
	for _, s := range stores {
		id := uint(s.id())
		if seen[id/64]&(1<<(id%64)) != 0 {
			continue
		}
		seen[id/64] |= 1 << (id % 64)
		uniq = append(uniq, s)
	}

	// Drive the scan from the smallest store; every other store only gets
	// membership probes. An empty store empties the intersection outright.
	smallest := 0
	for i, s := range uniq {
		if s.Len() == 0 {
			return nil
		}
		if s.Len() < uniq[smallest].Len() {
			smallest = i
		}
	}

	out := make([]Handle, 0, uniq[smallest].Len())
	uniq[smallest].eachIndex(func(idx uint32) bool {
		if !w.pool.aliveAt(idx) {
			return true
		}
		for i, s := range uniq {
			if i == smallest {
				continue
			}
			if !s.hasIndex(idx) {
				return true
			}
		}
		out = append(out, w.pool.handleAt(idx))
		return true
	})

	sort.Slice(out, func(i, j int) bool { return out[i].Index() < out[j].Index() })
	return out
}
