package system

import (
	"time"

	"github.com/voidfall/voidfall/internal/core/ecs"
	"github.com/voidfall/voidfall/internal/core/event"
	coresys "github.com/voidfall/voidfall/internal/core/system"
)

// EventDispatchSystem rotates the event bus buffers and delivers last
// tick's events to their subscribers. Runs first in the tick so every
// other system sees a settled event state. Phase 1 (PreUpdate).
type EventDispatchSystem struct {
	bus *event.Bus
}

func NewEventDispatchSystem(bus *event.Bus) *EventDispatchSystem {
	return &EventDispatchSystem{bus: bus}
}

func (s *EventDispatchSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *EventDispatchSystem) Update(_ *ecs.World, _ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
