package system

import (
	"time"

	"github.com/voidfall/voidfall/internal/core/ecs"
	coresys "github.com/voidfall/voidfall/internal/core/system"
)

// CleanupSystem flushes the deferred entity destruction queue at tick end.
// Phase 5 (Cleanup).
type CleanupSystem struct{}

func NewCleanupSystem() *CleanupSystem {
	return &CleanupSystem{}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(w *ecs.World, _ time.Duration) {
	w.FlushDestroyQueue()
}
