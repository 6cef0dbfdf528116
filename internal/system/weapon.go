package system

import (
	"math"
	"time"

	"github.com/voidfall/voidfall/internal/component"
	"github.com/voidfall/voidfall/internal/core/ecs"
	coresys "github.com/voidfall/voidfall/internal/core/system"
	"github.com/voidfall/voidfall/internal/factory"
	"github.com/voidfall/voidfall/internal/game"
)

// fanStep is the angular gap between projectiles in a spread volley.
const fanStep = 0.12

// WeaponSystem advances weapon cooldowns and fires volleys when they
// elapse. The player ship shoots at the nearest hostile, hostiles shoot
// at the player ship, and bosses fire their spread as a full ring.
// Entities with no target hold fire. Phase 2 (Update).
type WeaponSystem struct {
	deps *game.Deps
}

func NewWeaponSystem(d *game.Deps) *WeaponSystem { return &WeaponSystem{deps: d} }

func (s *WeaponSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *WeaponSystem) Update(w *ecs.World, dt time.Duration) {
	d := s.deps
	st := d.Stores

	for _, h := range w.Query(st.Transform, st.Weapon, st.Collider) {
		wpn, ok := st.Weapon.Get(h)
		if !ok {
			continue
		}
		wpn.Elapsed += dt
		if wpn.Cooldown <= 0 || wpn.Elapsed < wpn.Cooldown {
			continue
		}

		tf, ok := st.Transform.Get(h)
		if !ok {
			continue
		}
		col, ok := st.Collider.Get(h)
		if !ok {
			continue
		}

		aim, hasTarget := s.aimFor(w, h, tf, col.Team)
		if !hasTarget {
			// Stay ready so the volley leaves the instant a target shows up.
			wpn.Elapsed = wpn.Cooldown
			continue
		}

		wpn.Elapsed = 0
		s.fire(w, h, tf, col.Team, wpn, aim)
	}
}

// aimFor picks the firing angle for an armed entity, or reports that it
// has nothing to shoot at.
func (s *WeaponSystem) aimFor(w *ecs.World, self ecs.Handle, tf *component.Transform, team component.Team) (float64, bool) {
	d := s.deps
	switch team {
	case component.TeamPlayer:
		if _, target, found := nearestOnTeam(w, d.Stores, self, tf.X, tf.Y, component.TeamHostile); found {
			return math.Atan2(target.Y-tf.Y, target.X-tf.X), true
		}
	case component.TeamHostile:
		if ship, ok := playerShip(d); ok {
			if target, ok := d.Stores.Transform.Get(ship); ok {
				return math.Atan2(target.Y-tf.Y, target.X-tf.X), true
			}
		}
	}
	return 0, false
}

func (s *WeaponSystem) fire(w *ecs.World, h ecs.Handle, tf *component.Transform, team component.Team, wpn *component.Weapon, aim float64) {
	d := s.deps
	shots := wpn.Spread
	if shots < 1 {
		shots = 1
	}

	if d.Stores.Boss.Has(h) {
		// Bosses spray their whole volley as an evenly spaced ring.
		for i := 0; i < shots; i++ {
			ang := aim + float64(i)*(2*math.Pi/float64(shots))
			factory.Projectile(w, d, tf.X, tf.Y, ang, team, wpn)
		}
		return
	}

	half := float64(shots-1) / 2
	for i := 0; i < shots; i++ {
		ang := aim + (float64(i)-half)*fanStep
		factory.Projectile(w, d, tf.X, tf.Y, ang, team, wpn)
	}
}
