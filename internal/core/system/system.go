package system

import (
	"time"

	"github.com/voidfall/voidfall/internal/core/ecs"
)

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: apply player commands
	PhasePreUpdate               // 1: deliver last tick's events
	PhaseUpdate                  // 2: movement, weapons, game logic
	PhasePostUpdate              // 3: collisions, lifetimes, spawning
	PhaseOutput                  // 4: diagnostics and reporting
	PhaseCleanup                 // 5: destroy queued entities
)

// System is the interface every game system implements. The world is passed
// on each call rather than captured at construction, so a system holds no
// hidden reference to shared state and can be exercised against any world.
type System interface {
	Phase() Phase
	Update(w *ecs.World, dt time.Duration)
}
