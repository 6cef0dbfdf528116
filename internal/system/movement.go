package system

import (
	"math"
	"time"

	"github.com/voidfall/voidfall/internal/core/ecs"
	coresys "github.com/voidfall/voidfall/internal/core/system"
	"github.com/voidfall/voidfall/internal/game"
)

// MovementSystem integrates velocity into position for every moving
// entity and keeps the heading aligned with the velocity. Plain
// integration, nothing else: velocities are chosen by steering and
// spawn aiming, and entities that leave the field are retired by
// BoundsSystem. Phase 2 (Update).
type MovementSystem struct {
	deps *game.Deps
}

func NewMovementSystem(d *game.Deps) *MovementSystem { return &MovementSystem{deps: d} }

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MovementSystem) Update(w *ecs.World, dt time.Duration) {
	st := s.deps.Stores
	step := dt.Seconds()

	for _, h := range w.Query(st.Transform, st.Motion) {
		tf, ok := st.Transform.Get(h)
		if !ok {
			continue
		}
		mot, ok := st.Motion.Get(h)
		if !ok {
			continue
		}

		tf.X += mot.VX * step
		tf.Y += mot.VY * step
		if mot.VX != 0 || mot.VY != 0 {
			tf.Heading = math.Atan2(mot.VY, mot.VX)
		}
	}
}
