package system

import (
	"time"

	"github.com/voidfall/voidfall/internal/component"
	"github.com/voidfall/voidfall/internal/core/ecs"
	coresys "github.com/voidfall/voidfall/internal/core/system"
	"github.com/voidfall/voidfall/internal/game"
)

// LifetimeSystem ages projectiles, debris, and stale power-ups. Expired
// entities are queued for destruction rather than removed on the spot,
// so every system later in the tick still sees a consistent world; the
// queue drains during cleanup. Phase 3 (PostUpdate).
type LifetimeSystem struct {
	deps *game.Deps
}

func NewLifetimeSystem(d *game.Deps) *LifetimeSystem { return &LifetimeSystem{deps: d} }

func (s *LifetimeSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *LifetimeSystem) Update(w *ecs.World, dt time.Duration) {
	s.deps.Stores.Lifetime.Each(func(h ecs.Handle, lt *component.Lifetime) {
		lt.Remaining -= dt
		if lt.Remaining <= 0 {
			w.MarkForDestruction(h)
		}
	})
}
