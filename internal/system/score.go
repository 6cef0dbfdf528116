package system

import (
	"go.uber.org/zap"

	"github.com/voidfall/voidfall/internal/core/event"
	"github.com/voidfall/voidfall/internal/game"
)

// waveClearBonus is the score paid per wave number on a full clear.
const waveClearBonus = 50

// ScoreKeeper turns bus traffic into session bookkeeping: credited
// kills add points, wave clears pay a bonus, and the player's death
// flips the session to over. It is not a ticked system; its handlers
// run while EventDispatchSystem delivers the previous tick's events.
type ScoreKeeper struct {
	deps *game.Deps
}

func NewScoreKeeper(d *game.Deps) *ScoreKeeper {
	k := &ScoreKeeper{deps: d}
	event.Subscribe(d.Bus, k.onEntityDestroyed)
	event.Subscribe(d.Bus, k.onWaveCleared)
	event.Subscribe(d.Bus, k.onPlayerDied)
	return k
}

func (k *ScoreKeeper) onEntityDestroyed(ev event.EntityDestroyed) {
	if ev.Points <= 0 {
		return
	}
	sess := k.deps.Session
	sess.Score += ev.Points
	sess.Kills++
	k.deps.Log.Debug("kill scored",
		zap.String("name", ev.Name),
		zap.Int("points", ev.Points),
		zap.Int("score", sess.Score))
}

func (k *ScoreKeeper) onWaveCleared(ev event.WaveCleared) {
	bonus := ev.Number * waveClearBonus
	k.deps.Session.Score += bonus
	k.deps.Log.Info("wave clear bonus",
		zap.Int("wave", ev.Number),
		zap.Int("bonus", bonus))
}

func (k *ScoreKeeper) onPlayerDied(ev event.PlayerDied) {
	sess := k.deps.Session
	if sess.Over {
		return
	}
	sess.Over = true
	k.deps.Log.Info("ship destroyed, session over",
		zap.Int("wave", ev.Wave),
		zap.Int("score", sess.Score),
		zap.Int("kills", sess.Kills))
}
