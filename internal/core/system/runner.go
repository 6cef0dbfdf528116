package system

import (
	"sort"
	"time"

	"github.com/voidfall/voidfall/internal/core/ecs"
)

// Runner executes systems in phase order each tick. Within a phase, systems
// run in registration order; the sort is stable so registration order is
// the tie-break, which keeps tick execution deterministic.
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 16),
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Tick runs every registered system once, in phase order.
func (r *Runner) Tick(w *ecs.World, dt time.Duration) {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update(w, dt)
	}
}

// TickPhase runs only the systems of one phase. The shutdown path uses it
// to run PhaseCleanup a final time so queued destroys settle before the
// session summary is taken.
func (r *Runner) TickPhase(w *ecs.World, phase Phase, dt time.Duration) {
	r.ensureSorted()
	for _, s := range r.systems {
		if s.Phase() == phase {
			s.Update(w, dt)
		}
	}
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
