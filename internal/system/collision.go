package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/voidfall/voidfall/internal/component"
	"github.com/voidfall/voidfall/internal/core/ecs"
	"github.com/voidfall/voidfall/internal/core/event"
	coresys "github.com/voidfall/voidfall/internal/core/system"
	"github.com/voidfall/voidfall/internal/factory"
	"github.com/voidfall/voidfall/internal/game"
)

// CollisionSystem resolves circle overlaps between collidable entities.
// Opposing teams exchange contact damage, the player ship picks up
// power-ups, and anything reduced to zero health is destroyed on the
// spot with its death announced on the bus. Phase 3 (PostUpdate).
type CollisionSystem struct {
	deps *game.Deps
}

func NewCollisionSystem(d *game.Deps) *CollisionSystem { return &CollisionSystem{deps: d} }

func (s *CollisionSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *CollisionSystem) Update(w *ecs.World, _ time.Duration) {
	st := s.deps.Stores
	bodies := w.Query(st.Transform, st.Collider, st.Health)

	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		// Earlier pairs may have destroyed either side mid-walk.
		if !w.Alive(a) {
			continue
		}
		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j]
			if !w.Alive(a) {
				break
			}
			if !w.Alive(b) {
				continue
			}
			s.resolve(w, a, b)
		}
	}
}

func (s *CollisionSystem) resolve(w *ecs.World, a, b ecs.Handle) {
	st := s.deps.Stores
	tfA, ok := st.Transform.Get(a)
	if !ok {
		return
	}
	tfB, ok := st.Transform.Get(b)
	if !ok {
		return
	}
	colA, ok := st.Collider.Get(a)
	if !ok {
		return
	}
	colB, ok := st.Collider.Get(b)
	if !ok {
		return
	}

	reach := colA.Radius + colB.Radius
	if dist2(tfA.X, tfA.Y, tfB.X, tfB.Y) > reach*reach {
		return
	}

	if s.pickup(w, a, b) || s.pickup(w, b, a) {
		return
	}
	if colA.Team == colB.Team || colA.Team == component.TeamNeutral || colB.Team == component.TeamNeutral {
		return
	}

	// Contact damage is exchanged simultaneously, so a mutual ram
	// kills both sides.
	s.hit(w, a, tfA, colB)
	s.hit(w, b, tfB, colA)
}

// pickup heals the player ship and consumes the power-up. Returns false
// when the pair is not a power-up touching the player.
func (s *CollisionSystem) pickup(w *ecs.World, item, collector ecs.Handle) bool {
	st := s.deps.Stores
	pu, ok := st.PowerUp.Get(item)
	if !ok || !st.Player.Has(collector) {
		return false
	}
	if hp, ok := st.Health.Get(collector); ok && pu.Heal > 0 {
		hp.Current += pu.Heal
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
	}
	s.deps.Log.Debug("power-up collected", zap.Int("heal", pu.Heal))
	w.DestroyEntity(item)
	return true
}

func (s *CollisionSystem) hit(w *ecs.World, victim ecs.Handle, tf *component.Transform, from *component.Collider) {
	if from.Damage <= 0 {
		return
	}
	hp, ok := s.deps.Stores.Health.Get(victim)
	if !ok {
		return
	}
	hp.Current -= from.Damage
	if hp.Current > 0 {
		s.enrage(victim, hp)
		return
	}
	s.kill(w, victim, tf, from.Team == component.TeamPlayer)
}

// enrage advances a boss to its next stage once its health drops below
// the current threshold. Each stage tightens the fire rate and widens
// the volley.
func (s *CollisionSystem) enrage(h ecs.Handle, hp *component.Health) {
	st := s.deps.Stores
	boss, ok := st.Boss.Get(h)
	if !ok || boss.NextEnrage <= 0 || hp.Max <= 0 {
		return
	}
	if float64(hp.Current)/float64(hp.Max) >= boss.NextEnrage {
		return
	}
	boss.Stage++
	boss.NextEnrage -= 0.25
	if wpn, ok := st.Weapon.Get(h); ok {
		wpn.Cooldown = wpn.Cooldown * 4 / 5
		wpn.Spread++
	}
	s.deps.Log.Info("boss enraged",
		zap.Int("stage", boss.Stage),
		zap.Int("health", hp.Current))
}

func (s *CollisionSystem) kill(w *ecs.World, victim ecs.Handle, tf *component.Transform, playerCredit bool) {
	d := s.deps
	st := d.Stores

	if st.Player.Has(victim) {
		event.Emit(d.Bus, event.PlayerDied{Handle: victim, Wave: d.Session.Wave})
		w.DestroyEntity(victim)
		return
	}

	name := ""
	score := 0
	pieces := 0
	if kind, ok := st.Kind.Get(victim); ok {
		name = kind.Name
		score = kind.Score
		pieces = kind.Debris
	}

	// Projectiles and other worthless entities vanish quietly.
	if score > 0 {
		factory.Debris(w, d, tf.X, tf.Y, pieces)
		points := 0
		if playerCredit {
			points = score
			if d.Script != nil {
				points += d.Script.KillBonus(d.Session.Wave, score)
			}
			if s.rollDrop() {
				factory.Spawn(w, d, d.Config.Spawn.Drop, tf.X, tf.Y)
			}
		}
		event.Emit(d.Bus, event.EntityDestroyed{Handle: victim, Name: name, Points: points})
	}
	w.DestroyEntity(victim)
}

func (s *CollisionSystem) rollDrop() bool {
	d := s.deps
	if d.Script == nil {
		return false
	}
	chance := d.Script.PowerUpChance(d.Session.Wave)
	if chance <= 0 {
		return false
	}
	return d.Rand.Float64() < chance
}
