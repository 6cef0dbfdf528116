package system

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/voidfall/voidfall/internal/core/ecs"
	"github.com/voidfall/voidfall/internal/core/event"
	coresys "github.com/voidfall/voidfall/internal/core/system"
	"github.com/voidfall/voidfall/internal/data"
	"github.com/voidfall/voidfall/internal/factory"
	"github.com/voidfall/voidfall/internal/game"
	"github.com/voidfall/voidfall/internal/scripting"
)

// aimJitter widens the entry angle of spawned hostiles so a wave does
// not arrive as a single line, in radians.
const aimJitter = 0.35

// SpawnSystem is the wave director. It watches for the current wave to
// be wiped out, waits out the breather, then spawns the next wave from
// the wave table at the playfield edges, aimed at the player. Waves
// past the end of the table repeat the last one with one extra hostile
// per wave. The Lua hook gets the final say on count, speed, and boss
// flag. Phase 3 (PostUpdate).
type SpawnSystem struct {
	deps *game.Deps

	waveActive   bool
	delayLeft    time.Duration
	bossTemplate string
}

func NewSpawnSystem(d *game.Deps) *SpawnSystem {
	s := &SpawnSystem{
		deps:      d,
		delayLeft: d.Config.Spawn.WaveDelay,
	}
	// Remember which template plays the boss so script-forced boss
	// waves know what to spawn.
	for _, wv := range d.Waves.All() {
		if !wv.Boss {
			continue
		}
		for _, e := range wv.Entries {
			if t := d.Templates.Get(e.Template); t != nil && t.Boss {
				s.bossTemplate = e.Template
			}
		}
	}
	return s
}

func (s *SpawnSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *SpawnSystem) Update(w *ecs.World, dt time.Duration) {
	d := s.deps
	if d.Session.Over {
		return
	}

	if s.waveActive {
		if hostileCount(d.Stores) > 0 {
			return
		}
		s.waveActive = false
		s.delayLeft = d.Config.Spawn.WaveDelay
		event.Emit(d.Bus, event.WaveCleared{Number: d.Session.Wave})
		d.Log.Info("wave cleared", zap.Int("wave", d.Session.Wave))
		return
	}

	s.delayLeft -= dt
	if s.delayLeft > 0 {
		return
	}
	s.startWave(w, d.Session.Wave+1)
}

func (s *SpawnSystem) startWave(w *ecs.World, number int) {
	d := s.deps

	wave := d.Waves.Get(number)
	baseBonus := 0
	if wave == nil {
		wave = d.Waves.Get(d.Waves.Max())
		if wave == nil {
			return
		}
		baseBonus = number - d.Waves.Max()
	}

	baseCount := baseBonus
	for _, e := range wave.Entries {
		baseCount += e.Count
	}

	plan := scripting.WavePlan{Count: baseCount, SpeedScale: wave.SpeedScale, Boss: wave.Boss}
	if plan.SpeedScale <= 0 {
		plan.SpeedScale = 1
	}
	if d.Script != nil {
		plan = d.Script.TuneWave(scripting.WaveContext{
			Number:    number,
			BaseCount: baseCount,
			BaseSpeed: wave.SpeedScale,
			Boss:      wave.Boss,
			Score:     d.Session.Score,
			HealthPct: s.playerHealthPct(),
		})
	}
	if limit := d.Config.Spawn.MaxHostiles; limit > 0 && plan.Count > limit {
		plan.Count = limit
	}

	tx, ty := s.aimTarget()
	spawned := 0
	var bossHandle ecs.Handle
	bossName := ""

	for i, count := range distribute(wave.Entries, plan.Count, baseCount) {
		for n := 0; n < count; n++ {
			x, y := s.edgePosition(tx, ty)
			h, ok := factory.Spawn(w, d, wave.Entries[i].Template, x, y)
			if !ok {
				continue
			}
			s.launch(h, x, y, tx, ty, plan.SpeedScale)
			spawned++
			if bossName == "" && d.Stores.Boss.Has(h) {
				bossHandle, bossName = h, wave.Entries[i].Template
			}
		}
	}

	// The script can force a boss onto a wave the table left plain.
	if plan.Boss && bossName == "" && s.bossTemplate != "" {
		x, y := s.edgePosition(tx, ty)
		if h, ok := factory.Spawn(w, d, s.bossTemplate, x, y); ok {
			s.launch(h, x, y, tx, ty, plan.SpeedScale)
			spawned++
			bossHandle, bossName = h, s.bossTemplate
		}
	}

	d.Session.Wave = number
	s.waveActive = true
	event.Emit(d.Bus, event.WaveStarted{Number: number, Enemies: spawned, Boss: bossName != ""})
	if bossName != "" {
		event.Emit(d.Bus, event.BossSpawned{Handle: bossHandle, Name: bossName, Wave: number})
	}
	d.Log.Info("wave started",
		zap.Int("wave", number),
		zap.Int("enemies", spawned),
		zap.Float64("speed_scale", plan.SpeedScale),
		zap.Bool("boss", bossName != ""))
}

// distribute scales per-entry counts so their sum lands on want,
// pushing any rounding gap onto the first entry.
func distribute(entries []data.WaveEntry, want, base int) []int {
	counts := make([]int, len(entries))
	if len(entries) == 0 {
		return counts
	}
	total := 0
	for i, e := range entries {
		c := e.Count
		if want != base && base > 0 {
			c = e.Count * want / base
			if c < 1 {
				c = 1
			}
		}
		counts[i] = c
		total += c
	}
	if diff := want - total; diff > 0 {
		counts[0] += diff
	}
	return counts
}

// launch points a freshly spawned hostile at the target with a little
// angular jitter and applies the wave speed scale.
func (s *SpawnSystem) launch(h ecs.Handle, x, y, tx, ty float64, speedScale float64) {
	mot, ok := s.deps.Stores.Motion.Get(h)
	if !ok {
		return
	}
	if speedScale > 0 {
		mot.Cruise *= speedScale
	}
	ang := math.Atan2(ty-y, tx-x) + (s.deps.Rand.Float64()*2-1)*aimJitter
	mot.VX = math.Cos(ang) * mot.Cruise
	mot.VY = math.Sin(ang) * mot.Cruise
}

// edgePosition picks a random point on the playfield border at least
// the configured safe radius away from (tx, ty). When the target sits
// close to an edge a roll can land on top of it, so bad rolls are
// retried a few times before falling back to the corner farthest from
// the target, which is outside any sane radius.
func (s *SpawnSystem) edgePosition(tx, ty float64) (float64, float64) {
	safe := s.deps.Config.Spawn.SafeRadius
	for try := 0; try < 8; try++ {
		x, y := s.rollEdge()
		if safe <= 0 || dist2(x, y, tx, ty) >= safe*safe {
			return x, y
		}
	}
	return s.farCorner(tx, ty)
}

func (s *SpawnSystem) rollEdge() (float64, float64) {
	cfg := s.deps.Config.World
	switch s.deps.Rand.Intn(4) {
	case 0:
		return s.deps.Rand.Float64() * cfg.Width, 0
	case 1:
		return s.deps.Rand.Float64() * cfg.Width, cfg.Height
	case 2:
		return 0, s.deps.Rand.Float64() * cfg.Height
	default:
		return cfg.Width, s.deps.Rand.Float64() * cfg.Height
	}
}

func (s *SpawnSystem) farCorner(tx, ty float64) (float64, float64) {
	cfg := s.deps.Config.World
	x, y := 0.0, 0.0
	if tx < cfg.Width/2 {
		x = cfg.Width
	}
	if ty < cfg.Height/2 {
		y = cfg.Height
	}
	return x, y
}

// aimTarget is the player ship when it lives, else the field center.
func (s *SpawnSystem) aimTarget() (float64, float64) {
	d := s.deps
	if ship, ok := playerShip(d); ok {
		if tf, ok := d.Stores.Transform.Get(ship); ok {
			return tf.X, tf.Y
		}
	}
	return d.Config.World.Width / 2, d.Config.World.Height / 2
}

func (s *SpawnSystem) playerHealthPct() int {
	d := s.deps
	ship, ok := playerShip(d)
	if !ok {
		return 0
	}
	hp, ok := d.Stores.Health.Get(ship)
	if !ok || hp.Max <= 0 {
		return 0
	}
	return hp.Current * 100 / hp.Max
}
