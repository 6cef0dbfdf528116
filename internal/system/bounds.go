package system

import (
	"time"

	"github.com/voidfall/voidfall/internal/core/ecs"
	coresys "github.com/voidfall/voidfall/internal/core/system"
	"github.com/voidfall/voidfall/internal/game"
)

// escapeMargin is how far past the playfield edge an entity may drift
// before it counts as gone, in world units.
const escapeMargin = 120.0

// BoundsSystem retires entities that have flown off the playfield.
// Escaped hostiles leave the wave without scoring, and stray
// projectiles stop burning their remaining lifetime off-screen. The
// player ship is exempt; the autopilot brings it back on its own.
// Removal is deferred to the cleanup phase. Phase 3 (PostUpdate).
type BoundsSystem struct {
	deps *game.Deps
}

func NewBoundsSystem(d *game.Deps) *BoundsSystem { return &BoundsSystem{deps: d} }

func (s *BoundsSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *BoundsSystem) Update(w *ecs.World, _ time.Duration) {
	st := s.deps.Stores
	cfg := s.deps.Config.World

	for _, h := range w.Query(st.Transform, st.Motion) {
		if st.Player.Has(h) {
			continue
		}
		tf, ok := st.Transform.Get(h)
		if !ok {
			continue
		}
		if tf.X < -escapeMargin || tf.X > cfg.Width+escapeMargin ||
			tf.Y < -escapeMargin || tf.Y > cfg.Height+escapeMargin {
			w.MarkForDestruction(h)
		}
	}
}
