package event

import "reflect"

// Bus is a double-buffered event bus. Events emitted during tick N are
// delivered at the start of tick N+1: SwapBuffers rotates the buffers, then
// DispatchAll drains the front one. The one-tick delay means systems never
// observe events from a phase that has not finished yet, and emitting while
// dispatching is safe because emits land in the back buffer.
//
// The bus is single-threaded like the world that owns it.
type Bus struct {
	front    map[reflect.Type][]any
	back     map[reflect.Type][]any
	handlers map[reflect.Type][]func(any)
}

func NewBus() *Bus {
	return &Bus{
		front:    make(map[reflect.Type][]any),
		back:     make(map[reflect.Type][]any),
		handlers: make(map[reflect.Type][]func(any)),
	}
}

// Emit queues the event for delivery on the next tick.
func Emit[T any](b *Bus, ev T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.back[t] = append(b.back[t], ev)
}

// Subscribe registers a handler for events of type T. Handlers for one type
// run in subscription order.
func Subscribe[T any](b *Bus, fn func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], func(ev any) {
		fn(ev.(T))
	})
}

// SwapBuffers rotates back to front and clears the new back buffer.
// Called once at tick start, before DispatchAll.
func (b *Bus) SwapBuffers() {
	b.front, b.back = b.back, b.front
	for k := range b.back {
		b.back[k] = b.back[k][:0]
	}
}

// DispatchAll delivers every front-buffer event to its subscribed handlers.
// Events with no handler are dropped silently.
func (b *Bus) DispatchAll() {
	for t, events := range b.front {
		handlers := b.handlers[t]
		if len(handlers) == 0 {
			continue
		}
		for _, ev := range events {
			for _, h := range handlers {
				h(ev)
			}
		}
	}
}

// Pending returns how many events are queued for the next dispatch.
func (b *Bus) Pending() int {
	n := 0
	for _, evs := range b.back {
		n += len(evs)
	}
	return n
}
