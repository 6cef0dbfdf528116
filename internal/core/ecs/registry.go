package ecs

import "reflect"

// ComponentID is the stable identity of one component type within a World,
// assigned sequentially at registration. Two stores in the same world never
// share an ID, which is what lets the query engine deduplicate repeated
// stores in an argument list.
type ComponentID uint8

// MaxComponentTypes bounds how many component types one world can register.
const MaxComponentTypes = 256

// RegisterStore creates the store for component type T and registers it with
// the world. Call once per type during setup, before systems run; the
// returned store is the only way to access T components.
//
// Registering the same type twice panics: duplicate stores for one type
// would silently split an entity's data across containers, and that is a
// wiring bug worth failing loudly on at startup.
func RegisterStore[T any](w *World) *Store[T] {
	var zero T
	t := reflect.TypeOf(zero)
	if _, dup := w.types[t]; dup {
		panic("ecs: component type " + t.String() + " registered twice")
	}
	if len(w.stores) >= MaxComponentTypes {
		panic("ecs: component type limit reached")
	}
	s := &Store[T]{
		world: w,
		cid:   ComponentID(len(w.stores)),
		name:  t.Name(),
		data:  make(map[uint32]*T, 256),
	}
	w.types[t] = s.cid
	w.stores = append(w.stores, s)
	return s
}
