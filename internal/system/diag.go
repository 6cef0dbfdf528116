package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/voidfall/voidfall/internal/core/ecs"
	coresys "github.com/voidfall/voidfall/internal/core/system"
	"github.com/voidfall/voidfall/internal/diag"
	"github.com/voidfall/voidfall/internal/game"
)

// DiagSystem logs a one-line session health report at a fixed
// interval and, when a snapshot path is configured, refreshes the
// on-disk JSON snapshot at the same cadence. Phase 4 (Output).
type DiagSystem struct {
	deps     *game.Deps
	interval time.Duration
	elapsed  time.Duration
}

func NewDiagSystem(d *game.Deps) *DiagSystem {
	interval := d.Config.Diag.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &DiagSystem{deps: d, interval: interval}
}

func (s *DiagSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *DiagSystem) Update(w *ecs.World, dt time.Duration) {
	s.elapsed += dt
	if s.elapsed < s.interval {
		return
	}
	s.elapsed = 0

	d := s.deps
	d.Log.Info("session stats",
		zap.Int("entities", w.EntityCount()),
		zap.Int("hostiles", hostileCount(d.Stores)),
		zap.Int("wave", d.Session.Wave),
		zap.Int("score", d.Session.Score),
		zap.Int("kills", d.Session.Kills),
		zap.Int("pending_events", d.Bus.Pending()),
		zap.Duration("uptime", d.Session.Elapsed()))

	if path := d.Config.Diag.SnapshotPath; path != "" {
		if err := diag.Capture(w, d).WriteFile(path); err != nil {
			d.Log.Warn("write snapshot", zap.String("path", path), zap.Error(err))
		}
	}
}
